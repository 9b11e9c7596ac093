package controller

import (
	"context"
	"net/http"

	"github.com/bloghub/bloghub-client/internal/domain"
	"github.com/bloghub/bloghub-client/internal/localstore"
)

// DraftStore is the slice of the local store the draft endpoints use.
type DraftStore interface {
	AppendDraft(ctx context.Context, draft localstore.Draft) (localstore.Draft, error)
	ListDrafts(ctx context.Context) ([]localstore.Draft, error)
}

type DraftsList struct {
	Drafts DraftStore
}

func (c DraftsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	drafts, err := c.Drafts.ListDrafts(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, drafts)
}

type DraftsAppend struct {
	Drafts DraftStore
}

func (c DraftsAppend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var draft localstore.Draft
	if err := decodeBody(r, &draft); err != nil {
		logger.ErrorContext(ctx, "unable to parse draft body", "error", err)
		writeJSON(w, r, http.StatusBadRequest, errorResponse{Message: "unable to parse draft body"})
		return
	}

	saved, err := c.Drafts.AppendDraft(ctx, draft)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, saved)
}
