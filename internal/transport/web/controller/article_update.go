package controller

import (
	"net/http"

	"github.com/bloghub/bloghub-client/internal/domain"
	"github.com/bloghub/bloghub-client/internal/gateway"
	"github.com/gorilla/mux"
)

type ArticleUpdate struct {
	Updater gateway.ArticleUpdater
}

func (c ArticleUpdate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	vars := mux.Vars(r)
	id := vars["article_id"]

	input, err := articleInputFromRequest(r)
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse article payload", "error", err, "article_id", id)
		writeJSON(w, r, http.StatusBadRequest, errorResponse{Message: err.Error()})
		return
	}

	raw, err := c.Updater.UpdateArticle(ctx, id, input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, domain.MapArticle(raw))
}
