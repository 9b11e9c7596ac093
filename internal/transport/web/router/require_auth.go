package router

import (
	"net/http"

	"github.com/bloghub/bloghub-client/internal/domain"
)

// requireSessionMiddleware gates protected views. The predicate runs
// against the request's session snapshot on every attempt.
func requireSessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !domain.CanEnter(domain.SessionFromContext(r.Context())) {
			logger := domain.LoggerFromContext(r.Context())
			logger.WarnContext(r.Context(), "attempt to use endpoint requiring an authenticated session")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"authentication required"}`))
			return
		}

		next.ServeHTTP(w, r)
	})
}
