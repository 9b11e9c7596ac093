package controller

import (
	"net/http"

	"github.com/bloghub/bloghub-client/internal/domain"
	"github.com/bloghub/bloghub-client/internal/gateway"
)

type ArticlesList struct {
	Lister gateway.ArticleLister
}

type ArticlesListResponse struct {
	Data     []domain.Article     `json:"data"`
	Metadata ArticlesListMetadata `json:"metadata"`
}

type ArticlesListMetadata struct {
	TotalPages int `json:"total_pages"`
	Total      int `json:"total"`
}

// ServeHTTP fetches a page of articles from the remote API, maps them to
// display form, and derives the visible subset for the request's query
// state. Derivation always runs fresh; nothing is cached between requests.
func (c ArticlesList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	params, err := listParamsFromQuery(r.URL.Query())
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse list params in query string", "error", err)
		writeJSON(w, r, http.StatusBadRequest, errorResponse{Message: err.Error()})
		return
	}

	query, err := articleQueryFromQuery(r.URL.Query())
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse article query in query string", "error", err)
		writeJSON(w, r, http.StatusBadRequest, errorResponse{Message: err.Error()})
		return
	}

	page, err := c.Lister.ListArticles(ctx, params)
	if err != nil {
		writeError(w, r, err)
		return
	}

	visible := domain.DeriveVisible(domain.MapArticles(page.Articles), query)

	writeJSON(w, r, http.StatusOK, ArticlesListResponse{
		Data: visible,
		Metadata: ArticlesListMetadata{
			TotalPages: page.TotalPages,
			Total:      page.Total,
		},
	})
}
