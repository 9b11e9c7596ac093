package controller

import (
	"net/http"

	"github.com/bloghub/bloghub-client/internal/gateway"
	"github.com/gorilla/mux"
)

type ArticleDelete struct {
	Remover gateway.ArticleRemover
}

func (c ArticleDelete) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["article_id"]

	if err := c.Remover.DeleteArticle(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
