package controller

import (
	"net/http"

	"github.com/bloghub/bloghub-client/internal/domain"
	"github.com/bloghub/bloghub-client/internal/gateway"
	"github.com/gorilla/mux"
)

type ArticleGet struct {
	Fetcher gateway.ArticleFetcher
}

func (c ArticleGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["article_id"]

	raw, err := c.Fetcher.GetArticle(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, domain.MapArticle(raw))
}
