package controller

import (
	"context"
	"net/http"

	"github.com/bloghub/bloghub-client/internal/domain"
	"github.com/bloghub/bloghub-client/internal/gateway"
)

// SessionService is the slice of the session store the auth endpoints use.
type SessionService interface {
	Login(ctx context.Context, credentials gateway.Credentials) (gateway.AuthResponse, error)
	Register(ctx context.Context, input gateway.RegisterInput) (gateway.AuthResponse, error)
	Logout(ctx context.Context) error
	Snapshot() domain.Session
}

type AuthLogin struct {
	Sessions SessionService
}

func (c AuthLogin) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var credentials gateway.Credentials
	if err := decodeBody(r, &credentials); err != nil {
		logger.ErrorContext(ctx, "unable to parse login body", "error", err)
		writeJSON(w, r, http.StatusBadRequest, errorResponse{Message: "unable to parse login body"})
		return
	}

	response, err := c.Sessions.Login(ctx, credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, response)
}

type AuthRegister struct {
	Sessions SessionService
}

func (c AuthRegister) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var input gateway.RegisterInput
	if err := decodeBody(r, &input); err != nil {
		logger.ErrorContext(ctx, "unable to parse registration body", "error", err)
		writeJSON(w, r, http.StatusBadRequest, errorResponse{Message: "unable to parse registration body"})
		return
	}

	response, err := c.Sessions.Register(ctx, input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, response)
}

type AuthLogout struct {
	Sessions SessionService
}

func (c AuthLogout) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := c.Sessions.Logout(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type SessionGet struct {
	Sessions SessionService
}

type SessionResponse struct {
	User            *domain.User `json:"user"`
	IsAuthenticated bool         `json:"is_authenticated"`
}

func (c SessionGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	snapshot := c.Sessions.Snapshot()

	writeJSON(w, r, http.StatusOK, SessionResponse{
		User:            snapshot.User,
		IsAuthenticated: snapshot.IsAuthenticated,
	})
}
