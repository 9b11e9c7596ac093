package localstore_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bloghub/bloghub-client/internal/localstore"
)

func openTestStore(t *testing.T) *localstore.Store {
	t.Helper()

	store, err := localstore.Open(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestStore_KeyValue(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	_, err := store.Get(ctx, localstore.KeyTheme)
	assert.ErrorIs(t, err, localstore.ErrNotFound)

	require.NoError(t, store.Set(ctx, localstore.KeyTheme, "dark"))

	got, err := store.Get(ctx, localstore.KeyTheme)
	require.NoError(t, err)
	assert.Equal(t, "dark", got)

	// Overwrite replaces, not appends.
	require.NoError(t, store.Set(ctx, localstore.KeyTheme, "light"))
	got, err = store.Get(ctx, localstore.KeyTheme)
	require.NoError(t, err)
	assert.Equal(t, "light", got)

	require.NoError(t, store.Delete(ctx, localstore.KeyTheme))
	_, err = store.Get(ctx, localstore.KeyTheme)
	assert.ErrorIs(t, err, localstore.ErrNotFound)

	// Deleting an absent key is fine.
	require.NoError(t, store.Delete(ctx, localstore.KeyTheme))
}

func TestStore_Pair(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	require.NoError(t, store.SetPair(ctx, "tok-123", `{"name":"Sara"}`))

	token, err := store.Get(ctx, localstore.KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)

	user, err := store.Get(ctx, localstore.KeyUser)
	require.NoError(t, err)
	assert.Equal(t, `{"name":"Sara"}`, user)

	require.NoError(t, store.ClearPair(ctx))

	_, err = store.Get(ctx, localstore.KeyToken)
	assert.ErrorIs(t, err, localstore.ErrNotFound)
	_, err = store.Get(ctx, localstore.KeyUser)
	assert.ErrorIs(t, err, localstore.ErrNotFound)
}

func TestStore_DraftsAppendOnly(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	first, err := store.AppendDraft(ctx, localstore.Draft{Title: "First", Category: "Programming"})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.False(t, first.SavedAt.IsZero())

	second, err := store.AppendDraft(ctx, localstore.Draft{Title: "Second", Tags: []string{"go"}})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	// Saving the same title again adds a row rather than replacing one.
	third, err := store.AppendDraft(ctx, localstore.Draft{Title: "First"})
	require.NoError(t, err)

	drafts, err := store.ListDrafts(ctx)
	require.NoError(t, err)
	require.Len(t, drafts, 3)
	assert.Equal(t, first.ID, drafts[0].ID)
	assert.Equal(t, second.ID, drafts[1].ID)
	assert.Equal(t, third.ID, drafts[2].ID)
	assert.Equal(t, []string{"go"}, drafts[1].Tags)
}

func TestStore_ListDraftsEmpty(t *testing.T) {
	store := openTestStore(t)

	drafts, err := store.ListDrafts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, drafts)
}
