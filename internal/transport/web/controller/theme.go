package controller

import (
	"context"
	"errors"
	"net/http"

	"github.com/bloghub/bloghub-client/internal/domain"
	"github.com/bloghub/bloghub-client/internal/localstore"
)

const defaultTheme = "light"

var validThemes = map[string]bool{
	"light": true,
	"dark":  true,
}

// PreferenceStore is the slice of the local store the theme endpoints use.
type PreferenceStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

type ThemeGet struct {
	Preferences PreferenceStore
}

type ThemeResponse struct {
	Theme string `json:"theme"`
}

func (c ThemeGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	theme, err := c.Preferences.Get(r.Context(), localstore.KeyTheme)
	if errors.Is(err, localstore.ErrNotFound) {
		theme = defaultTheme
	} else if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, ThemeResponse{Theme: theme})
}

type ThemeSet struct {
	Preferences PreferenceStore
}

func (c ThemeSet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var body ThemeResponse
	if err := decodeBody(r, &body); err != nil {
		logger.ErrorContext(ctx, "unable to parse theme body", "error", err)
		writeJSON(w, r, http.StatusBadRequest, errorResponse{Message: "unable to parse theme body"})
		return
	}

	if !validThemes[body.Theme] {
		writeJSON(w, r, http.StatusBadRequest, errorResponse{Message: "theme must be light or dark"})
		return
	}

	if err := c.Preferences.Set(ctx, localstore.KeyTheme, body.Theme); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, body)
}
