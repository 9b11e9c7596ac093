package domain

import (
	"context"
	"log/slog"
)

type contextKey string

const loggerContextKey contextKey = "logger"

func ContextWithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey, logger)
}

func LoggerFromContext(ctx context.Context) *slog.Logger {
	logger := ctx.Value(loggerContextKey)
	if logger == nil {
		logger = slog.Default()
	}

	return logger.(*slog.Logger)
}

const sessionContextKey contextKey = "session"

// ContextWithSession attaches a session snapshot taken at the start of a
// request. Handlers read the snapshot rather than the live store, so a
// logout mid-request cannot produce a half-authenticated render.
func ContextWithSession(ctx context.Context, session Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, session)
}

func SessionFromContext(ctx context.Context) Session {
	session := ctx.Value(sessionContextKey)
	if session == nil {
		return Session{}
	}
	return session.(Session)
}
