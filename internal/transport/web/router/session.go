package router

import (
	"net/http"

	"github.com/bloghub/bloghub-client/internal/domain"
)

// SessionSource yields the current session snapshot.
type SessionSource interface {
	Snapshot() domain.Session
}

// NewSessionMiddleware attaches a fresh session snapshot to every request's
// context. Taking the snapshot per request is what keeps route gating
// current: a logout is visible to the very next navigation, never a stale
// render later.
func NewSessionMiddleware(sessions SessionSource) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := domain.ContextWithSession(r.Context(), sessions.Snapshot())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
