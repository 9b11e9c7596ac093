package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/bloghub/bloghub-client/internal/domain"
	"github.com/bloghub/bloghub-client/internal/gateway"
	"github.com/gorilla/feeds"
)

// RSS renders the currently visible article list as an RSS feed. The same
// query parameters as the articles listing apply, so a feed can be scoped
// to a category or search.
type RSS struct {
	FeedHostname    string
	FeedPath        string
	FeedAuthorName  string
	FeedAuthorEmail string
	Lister          gateway.ArticleLister
	CacheMaxAge     time.Duration
}

func (c RSS) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	feed := &feeds.Feed{
		Title:       "BlogHub Articles",
		Link:        &feeds.Link{Href: c.FeedHostname + c.FeedPath},
		Description: "Latest articles published on BlogHub",
		Author:      &feeds.Author{Name: c.FeedAuthorName, Email: c.FeedAuthorEmail},
		Created:     time.Now(),
	}

	params, err := listParamsFromQuery(r.URL.Query())
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse list params in query string", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	query, err := articleQueryFromQuery(r.URL.Query())
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse article query in query string", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	page, err := c.Lister.ListArticles(ctx, params)
	if err != nil {
		logger.ErrorContext(ctx, "unable to fetch articles for feed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	for _, a := range domain.DeriveVisible(domain.MapArticles(page.Articles), query) {
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          a.ID,
			IsPermaLink: "false",
			Title:       a.Title,
			Link:        &feeds.Link{Href: c.FeedHostname + "/articles/" + a.ID},
			Description: a.Excerpt,
			Author: &feeds.Author{
				Name: a.Author,
			},
			Created: a.EffectiveDate,
		})
	}

	rss, err := feed.ToRss()
	if err != nil {
		logger.ErrorContext(ctx, "unable to format feed as RSS", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/xml")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if _, err := w.Write([]byte(rss)); err != nil {
		logger.ErrorContext(ctx, "unable to write feed to response", "error", err)
	}
}
