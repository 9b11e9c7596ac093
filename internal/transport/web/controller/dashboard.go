package controller

import (
	"net/http"

	"github.com/bloghub/bloghub-client/internal/domain"
	"github.com/bloghub/bloghub-client/internal/gateway"
)

type Dashboard struct {
	Lister gateway.ArticleLister
}

type DashboardResponse struct {
	Articles []domain.Article      `json:"articles"`
	Stats    domain.DashboardStats `json:"stats"`
}

// ServeHTTP lists the session user's own articles with aggregate stats.
// The route is protected, so the session snapshot always has a user here.
func (c Dashboard) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	snapshot := domain.SessionFromContext(ctx)

	page, err := c.Lister.ListArticles(ctx, gateway.ListParams{
		AuthorID: snapshot.User.Key(),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	articles := domain.MapArticles(page.Articles)

	writeJSON(w, r, http.StatusOK, DashboardResponse{
		Articles: articles,
		Stats:    domain.ComputeStats(articles),
	})
}
