package app

import (
	"context"
	"fmt"
	"time"

	"github.com/bloghub/bloghub-client/internal/gateway"
	"github.com/bloghub/bloghub-client/internal/localstore"
	"github.com/bloghub/bloghub-client/internal/session"
	"github.com/bloghub/bloghub-client/internal/transport/web/router"
	"github.com/bloghub/bloghub-client/internal/transport/web/server"
)

type Component interface {
	Run(ctx context.Context) error
}

// Setup wires the client core. The session store is fully rehydrated before
// the web component is returned, so no request is ever served against an
// uninitialized session.
func Setup(ctx context.Context) ([]Component, error) {
	store, err := setupLocalStore(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up local store: %w", err)
	}

	api, sessions := setupSessionAndGateway(ctx, store)

	if err := sessions.Initialize(ctx); err != nil {
		return nil, fmt.Errorf("rehydrating session: %w", err)
	}

	httpRouter, err := router.MakeRouter(
		api,
		sessions,
		store,
		store,
		GetEnvAsStringWithDefault("RSS_FEED_BASE_URL", "http://localhost:5173"),
		GetEnvAsStringWithDefault("RSS_FEED_AUTHOR_NAME", "BlogHub"),
		GetEnvAsStringWithDefault("RSS_FEED_AUTHOR_EMAIL", ""),
		GetEnvAsDurationWithDefault(ctx, "RSS_FEED_CACHE_MAX_AGE", time.Hour),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	return []Component{
		&server.Server{
			TLSDisabled:       MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
			TLSDisabledPort:   MustGetEnvAsInt(ctx, "PORT"),
			AutocertHostnames: MustGetEnvAsStrings(ctx, "HTTP_AUTOCERT_HOSTNAMES"),
			Router:            httpRouter,
		},
	}, nil
}

func setupLocalStore(ctx context.Context) (*localstore.Store, error) {
	path := GetEnvAsStringWithDefault("STATE_FILE_PATH", "bloghub-state.db")
	return localstore.Open(path)
}

// setupSessionAndGateway resolves the mutual dependency between the API
// client (which needs the session's token) and the session store (which
// logs in through the API client).
func setupSessionAndGateway(ctx context.Context, store *localstore.Store) (*gateway.Client, *session.Store) {
	var sessions *session.Store

	api := gateway.NewClient(
		MustGetEnvAsString(ctx, "API_BASE_URL"),
		gateway.TokenFunc(func() string {
			if sessions == nil {
				return ""
			}
			return sessions.Token()
		}),
		GetEnvAsDurationWithDefault(ctx, "API_REQUEST_TIMEOUT", 30*time.Second),
	)

	sessions = session.NewStore(api, store)

	return api, sessions
}
