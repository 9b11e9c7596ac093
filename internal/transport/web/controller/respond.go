package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bloghub/bloghub-client/internal/domain"
	"github.com/bloghub/bloghub-client/internal/gateway"
	"github.com/bloghub/bloghub-client/internal/session"
)

type errorResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write response body", "error", err)
	}
}

// writeError maps the client core's error taxonomy onto HTTP statuses for
// the UI. Remote failures keep their upstream status and message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var remote *gateway.RemoteError
	if errors.As(err, &remote) {
		logger.WarnContext(ctx, "remote API reported failure",
			"status", remote.StatusCode,
			"message", remote.Message,
		)
		writeJSON(w, r, remote.StatusCode, errorResponse{Message: remote.Error()})
		return
	}

	var authErr *session.AuthError
	if errors.As(err, &authErr) {
		logger.WarnContext(ctx, "authentication failed", "error", err)
		writeJSON(w, r, http.StatusUnauthorized, errorResponse{Message: authErr.Message})
		return
	}

	if errors.Is(err, gateway.ErrNetwork) {
		logger.ErrorContext(ctx, "no response from remote API", "error", err)
		writeJSON(w, r, http.StatusBadGateway, errorResponse{Message: gateway.ErrNetwork.Error()})
		return
	}

	if errors.Is(err, session.ErrInvalidServerResponse) {
		logger.ErrorContext(ctx, "remote API response missing required fields", "error", err)
		writeJSON(w, r, http.StatusBadGateway, errorResponse{Message: err.Error()})
		return
	}

	logger.ErrorContext(ctx, "request failed", "error", err)
	writeJSON(w, r, http.StatusInternalServerError, errorResponse{Message: "internal error"})
}

func decodeBody(r *http.Request, into any) error {
	return json.NewDecoder(r.Body).Decode(into)
}
