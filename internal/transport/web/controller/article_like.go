package controller

import (
	"net/http"

	"github.com/bloghub/bloghub-client/internal/domain"
	"github.com/bloghub/bloghub-client/internal/gateway"
	"github.com/gorilla/mux"
)

type ArticleLike struct {
	Liker gateway.ArticleLiker
}

type ArticleLikeResponse struct {
	Liked bool `json:"liked"`
}

// ServeHTTP records a like toggle with the remote API. The optimistic
// counter adjustment is the caller's concern (domain.ApplyLikeToggle); this
// endpoint only reports whether the server accepted the toggle.
func (c ArticleLike) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["article_id"]

	logger := domain.LoggerFromContext(r.Context())
	ctx := domain.ContextWithLogger(r.Context(), logger.With("article_id", id))

	if err := c.Liker.Like(ctx, id); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, ArticleLikeResponse{Liked: true})
}
