package router

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/bloghub/bloghub-client/internal/gateway"
	"github.com/bloghub/bloghub-client/internal/transport/web/controller"
)

// MakeRouter assembles the local gateway surface the UI consumes.
func MakeRouter(
	api *gateway.Client,
	sessions controller.SessionService,
	drafts controller.DraftStore,
	preferences controller.PreferenceStore,
	rssFeedBaseURL, rssFeedAuthorName, rssFeedAuthorEmail string,
	rssCacheMaxAge time.Duration,
) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.Use(NewSessionMiddleware(sessions))

	r.Handle("/v1/auth/login", controller.AuthLogin{
		Sessions: sessions,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/auth/register", controller.AuthRegister{
		Sessions: sessions,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/auth/logout", controller.AuthLogout{
		Sessions: sessions,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/auth/session", controller.SessionGet{
		Sessions: sessions,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/articles", controller.ArticlesList{
		Lister: api,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/articles", requireSessionMiddleware(controller.ArticleCreate{
		Publisher: api,
	})).Methods(http.MethodPost)

	r.Handle("/v1/articles/{article_id}", controller.ArticleGet{
		Fetcher: api,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/articles/{article_id}", requireSessionMiddleware(controller.ArticleUpdate{
		Updater: api,
	})).Methods(http.MethodPut)

	r.Handle("/v1/articles/{article_id}", requireSessionMiddleware(controller.ArticleDelete{
		Remover: api,
	})).Methods(http.MethodDelete)

	r.Handle("/v1/articles/{article_id}/like", requireSessionMiddleware(controller.ArticleLike{
		Liker: api,
	})).Methods(http.MethodPatch, http.MethodOptions)

	r.Handle("/v1/articles/{article_id}/comment", requireSessionMiddleware(controller.ArticleComment{
		Commenter: api,
	})).Methods(http.MethodPatch, http.MethodOptions)

	r.Handle("/v1/dashboard", requireSessionMiddleware(controller.Dashboard{
		Lister: api,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/drafts", requireSessionMiddleware(controller.DraftsList{
		Drafts: drafts,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/drafts", requireSessionMiddleware(controller.DraftsAppend{
		Drafts: drafts,
	})).Methods(http.MethodPost)

	r.Handle("/v1/theme", controller.ThemeGet{
		Preferences: preferences,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/theme", controller.ThemeSet{
		Preferences: preferences,
	}).Methods(http.MethodPut)

	r.Handle("/rss", controller.RSS{
		FeedHostname:    rssFeedBaseURL,
		FeedPath:        "/rss",
		FeedAuthorName:  rssFeedAuthorName,
		FeedAuthorEmail: rssFeedAuthorEmail,
		Lister:          api,
		CacheMaxAge:     rssCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	return r, nil
}
