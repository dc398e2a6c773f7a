package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/artpar/auweb/internal/core"
	"github.com/artpar/auweb/internal/draft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDraft() *draft.Draft {
	return &draft.Draft{
		URL:       "https://api.example.com/items",
		Method:    core.MethodPostForm,
		Headers:   "Accept: application/json\nX-Token: abc",
		Body:      "a=1\nb=2",
		Highlight: "json",
	}
}

func TestStore_LoadEmpty(t *testing.T) {
	store, err := NewInMemory()
	require.NoError(t, err)
	defer store.Close()

	_, err = store.Load(context.Background())
	assert.ErrorIs(t, err, draft.ErrNotFound)
}

func TestStore_SaveLoad(t *testing.T) {
	store, err := NewInMemory()
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.Save(ctx, sampleDraft()))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)

	want := sampleDraft()
	assert.Equal(t, want.URL, loaded.URL)
	assert.Equal(t, want.Method, loaded.Method)
	assert.Equal(t, want.Headers, loaded.Headers)
	assert.Equal(t, want.Body, loaded.Body)
	assert.Equal(t, want.Highlight, loaded.Highlight)
	assert.False(t, loaded.SavedAt.IsZero())
}

func TestStore_SaveReplaces(t *testing.T) {
	store, err := NewInMemory()
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.Save(ctx, sampleDraft()))

	second := sampleDraft()
	second.URL = "https://other.example.com"
	second.Method = core.MethodGet
	require.NoError(t, store.Save(ctx, second))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "https://other.example.com", loaded.URL)
	assert.Equal(t, core.MethodGet, loaded.Method)
}

func TestStore_Clear(t *testing.T) {
	store, err := NewInMemory()
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.Save(ctx, sampleDraft()))
	require.NoError(t, store.Clear(ctx))

	_, err = store.Load(ctx)
	assert.ErrorIs(t, err, draft.ErrNotFound)
}

func TestStore_Closed(t *testing.T) {
	store, err := NewInMemory()
	require.NoError(t, err)
	require.NoError(t, store.Close())
	require.NoError(t, store.Close())

	ctx := context.Background()
	_, err = store.Load(ctx)
	assert.ErrorIs(t, err, draft.ErrStoreClosed)
	assert.ErrorIs(t, store.Save(ctx, sampleDraft()), draft.ErrStoreClosed)
	assert.ErrorIs(t, store.Clear(ctx), draft.ErrStoreClosed)
}

func TestStore_PersistsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "auweb.db")
	ctx := context.Background()

	store, err := New(path)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, sampleDraft()))
	require.NoError(t, store.Close())

	reopened, err := New(path)
	require.NoError(t, err)
	defer reopened.Close()

	loaded, err := reopened.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleDraft().URL, loaded.URL)
}
