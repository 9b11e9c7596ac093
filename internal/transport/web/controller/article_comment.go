package controller

import (
	"net/http"
	"strings"

	"github.com/bloghub/bloghub-client/internal/domain"
	"github.com/bloghub/bloghub-client/internal/gateway"
	"github.com/gorilla/mux"
)

type ArticleComment struct {
	Commenter gateway.ArticleCommenter
}

type ArticleCommentRequest struct {
	Comment string `json:"comment"`
}

func (c ArticleComment) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["article_id"]

	logger := domain.LoggerFromContext(r.Context())
	ctx := domain.ContextWithLogger(r.Context(), logger.With("article_id", id))

	var body ArticleCommentRequest
	if err := decodeBody(r, &body); err != nil {
		logger.ErrorContext(ctx, "unable to parse comment body", "error", err)
		writeJSON(w, r, http.StatusBadRequest, errorResponse{Message: "unable to parse comment body"})
		return
	}

	if strings.TrimSpace(body.Comment) == "" {
		writeJSON(w, r, http.StatusBadRequest, errorResponse{Message: "comment must not be empty"})
		return
	}

	raw, err := c.Commenter.Comment(ctx, id, body.Comment)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, domain.MapArticle(raw))
}
