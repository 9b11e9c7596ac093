package localstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/huandu/go-sqlbuilder"
)

// Draft is an unsaved article payload. Drafts are append-only: saving again
// adds a new row rather than replacing an earlier one.
type Draft struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Content  string    `json:"content"`
	Category string    `json:"category"`
	Tags     []string  `json:"tags"`
	Excerpt  string    `json:"excerpt"`
	SavedAt  time.Time `json:"savedAt"`
}

// AppendDraft stores a new draft and returns it with ID and SavedAt filled.
func (s *Store) AppendDraft(ctx context.Context, draft Draft) (Draft, error) {
	draft.ID = uuid.NewString()
	draft.SavedAt = time.Now().UTC()

	payload, err := json.Marshal(draft)
	if err != nil {
		return Draft{}, fmt.Errorf("serializing draft: %w", err)
	}

	ib := sqlbuilder.InsertInto("article_drafts")
	ib.Cols("id", "payload", "saved_at")
	ib.Values(draft.ID, string(payload), draft.SavedAt)

	query, args := ib.BuildWithFlavor(sqlbuilder.SQLite)
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return Draft{}, fmt.Errorf("storing draft: %w", err)
	}

	return draft, nil
}

// ListDrafts returns all drafts in save order, oldest first.
func (s *Store) ListDrafts(ctx context.Context) ([]Draft, error) {
	sb := sqlbuilder.Select("payload")
	sb.From("article_drafts")
	sb.OrderBy("saved_at", "rowid").Asc()

	query, args := sb.BuildWithFlavor(sqlbuilder.SQLite)
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running drafts query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	drafts := []Draft{}
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scanning draft: %w", err)
		}

		var draft Draft
		if err := json.Unmarshal([]byte(payload), &draft); err != nil {
			return nil, fmt.Errorf("parsing stored draft: %w", err)
		}
		drafts = append(drafts, draft)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return drafts, nil
}
