package sqlite

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"pamphlets-api/core/domain"
	coreerrors "pamphlets-api/core/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func article(id string, updated time.Time) *domain.Article {
	return &domain.Article{
		ID:          id,
		Title:       "Title " + id,
		Author:      "Author",
		PublishedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		UpdatedAt:   updated,
		Content: []domain.ContentBlock{
			{Type: domain.BlockHeading, Content: "Heading"},
			{Type: domain.BlockParagraph, Content: "Body of " + id},
			{Type: domain.BlockImage, URL: "https://example.com/i.png", Caption: "cap"},
		},
	}
}

func TestStore_SaveAndGet(t *testing.T) {
	store := mustStore(t)
	ctx := context.Background()
	want := article("a1", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))

	require.NoError(t, store.Save(ctx, want))

	got, err := store.Get(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, want.Title, got.Title)
	assert.Equal(t, want.Content, got.Content)
	assert.True(t, want.PublishedAt.Equal(got.PublishedAt))
	assert.True(t, want.UpdatedAt.Equal(got.UpdatedAt))
}

func TestStore_SaveReplaces(t *testing.T) {
	store := mustStore(t)
	ctx := context.Background()

	a := article("a1", time.Now())
	require.NoError(t, store.Save(ctx, a))
	a.Title = "Renamed"
	require.NoError(t, store.Save(ctx, a))

	got, err := store.Get(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestStore_SaveRequiresID(t *testing.T) {
	store := mustStore(t)

	assert.Error(t, store.Save(context.Background(), &domain.Article{Title: "x"}))
}

func TestStore_GetMissing(t *testing.T) {
	store := mustStore(t)

	_, err := store.Get(context.Background(), "nope")

	require.Error(t, err)
	assert.True(t, coreerrors.IsNotFound(err))
}

func TestStore_ZeroTimesRoundTrip(t *testing.T) {
	store := mustStore(t)
	ctx := context.Background()
	a := &domain.Article{ID: "z", Title: "Zero"}

	require.NoError(t, store.Save(ctx, a))

	got, err := store.Get(ctx, "z")
	require.NoError(t, err)
	assert.True(t, got.PublishedAt.IsZero())
	assert.True(t, got.UpdatedAt.IsZero())
	assert.Empty(t, got.Content)
}

func TestStore_ListNewestFirst(t *testing.T) {
	store := mustStore(t)
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		require.NoError(t, store.Save(ctx, article(fmt.Sprintf("a%d", i), base.Add(time.Duration(i)*time.Hour))))
	}

	page, err := store.List(ctx, 2, 0)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "a4", page[0].ID)
	assert.Equal(t, "a3", page[1].ID)

	page, err = store.List(ctx, 2, 4)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "a0", page[0].ID)

	page, err = store.List(ctx, 2, 10)
	require.NoError(t, err)
	assert.Empty(t, page)
}

func TestStore_Delete(t *testing.T) {
	store := mustStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, article("a1", time.Now())))
	require.NoError(t, store.Delete(ctx, "a1"))
	require.NoError(t, store.Delete(ctx, "never-existed"))

	_, err := store.Get(ctx, "a1")
	assert.True(t, coreerrors.IsNotFound(err))
}

func mustStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "articles.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "articles.db")
	ctx := context.Background()

	store, err := NewStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, article("kept", time.Now())))
	require.NoError(t, store.Close())

	reopened, err := NewStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get(ctx, "kept")
	require.NoError(t, err)
	assert.Equal(t, "Title kept", got.Title)
}

func TestStore_HostileIDsAreParameterized(t *testing.T) {
	store := mustStore(t)
	ctx := context.Background()

	ids := []string{
		"id'; DROP TABLE articles; --",
		"id' OR '1'='1",
		"id\" OR \"1\"=\"1",
		"id with spaces\nand newlines",
	}
	for _, id := range ids {
		require.NoError(t, store.Save(ctx, article(id, time.Now())))
	}

	for _, id := range ids {
		got, err := store.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, id, got.ID)
	}
	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(ids), count)
}

func TestStore_Stats(t *testing.T) {
	store := mustStore(t)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, article("a", time.Now())))

	stats, err := store.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats["total_articles"])
	assert.Contains(t, stats, "db_size_bytes")
}
