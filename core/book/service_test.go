package book

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"pamphlets-api/core/domain"
	coreerrors "pamphlets-api/core/errors"
	"pamphlets-api/core/interfaces"
	"pamphlets-api/core/markdown"
	"pamphlets-api/pkg/featureflags"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, cache interfaces.Cache, logger *mockLogger) *Service {
	t.Helper()
	deps := interfaces.Dependencies{Logger: logger}
	if cache != nil {
		deps.Cache = cache
	}
	svc, err := NewService(deps, Options{MaxChars: 100, PageCacheTTL: time.Hour, RenderMemoSize: 8})
	require.NoError(t, err)
	svc.now = func() time.Time { return time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC) }
	return svc
}

func paragraphs(n int) []domain.ContentBlock {
	var blocks []domain.ContentBlock
	for i := 0; i < n; i++ {
		blocks = append(blocks, domain.ContentBlock{
			Type:    domain.BlockParagraph,
			Content: strings.Repeat(string(rune('a'+i)), 60),
		})
	}
	return blocks
}

func TestNewService_Defaults(t *testing.T) {
	svc, err := NewService(interfaces.Dependencies{Logger: &mockLogger{}}, Options{})
	require.NoError(t, err)

	assert.Equal(t, 1200, svc.opts.MaxChars)
	assert.Equal(t, 24*time.Hour, svc.opts.PageCacheTTL)
	assert.Equal(t, 256, svc.opts.RenderMemoSize)
}

func TestPageSize(t *testing.T) {
	svc := newTestService(t, nil, &mockLogger{})

	assert.Equal(t, 100, svc.PageSize(0))
	assert.Equal(t, 100, svc.PageSize(-5))
	assert.Equal(t, 400, svc.PageSize(400))
}

func TestPaginate_UsesDefaultMaxChars(t *testing.T) {
	svc := newTestService(t, nil, &mockLogger{})
	text := strings.Repeat("a", 60) + "\n\n" + strings.Repeat("b", 60)

	pages, err := svc.Paginate(context.Background(), text, 0)
	require.NoError(t, err)

	assert.Len(t, pages, 2)
}

func TestPaginate_CachesPages(t *testing.T) {
	cache := newMockCache()
	svc := newTestService(t, cache, &mockLogger{})
	ctx := context.Background()
	text := "One.\n\nTwo."

	first, err := svc.Paginate(ctx, text, 500)
	require.NoError(t, err)
	second, err := svc.Paginate(ctx, text, 500)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, cache.sets)
	assert.Equal(t, 2, cache.gets)
	assert.Equal(t, time.Hour, cache.lastTTL)
	assert.True(t, strings.HasPrefix(cache.lastKey, "pages:"))
	assert.True(t, strings.HasSuffix(cache.lastKey, ":500"))
}

func TestPaginate_ServesFromCache(t *testing.T) {
	cache := newMockCache()
	svc := newTestService(t, cache, &mockLogger{})
	data, _ := json.Marshal([]string{"cached page"})
	cache.data[pagesKey("anything", 100)] = data

	pages, err := svc.Paginate(context.Background(), "anything", 100)
	require.NoError(t, err)

	assert.Equal(t, []string{"cached page"}, pages)
}

func TestPaginate_CacheErrorsAreIgnored(t *testing.T) {
	cache := newMockCache()
	cache.getFunc = func(ctx context.Context, key string) ([]byte, error) {
		return nil, errors.New("connection refused")
	}
	cache.setFunc = func(ctx context.Context, key string, value []byte, ttl time.Duration) error {
		return errors.New("connection refused")
	}
	logger := &mockLogger{}
	svc := newTestService(t, cache, logger)

	pages, err := svc.Paginate(context.Background(), "Text.", 100)
	require.NoError(t, err)

	assert.Equal(t, []string{"Text."}, pages)
	assert.Len(t, logger.warns, 2)
}

func TestPaginate_CorruptCacheEntry(t *testing.T) {
	cache := newMockCache()
	cache.data[pagesKey("Text.", 100)] = []byte("not json")
	logger := &mockLogger{}
	svc := newTestService(t, cache, logger)

	pages, err := svc.Paginate(context.Background(), "Text.", 100)
	require.NoError(t, err)

	assert.Equal(t, []string{"Text."}, pages)
	assert.Len(t, logger.warns, 1)
}

func TestPaginate_CacheDisabledByFlag(t *testing.T) {
	cache := newMockCache()
	svc := newTestService(t, cache, &mockLogger{})
	flags := featureflags.NewStaticManager(featureflags.Defaults)
	flags.SetEnabled(featureflags.CacheEnabled, false)
	ctx := featureflags.WithManager(context.Background(), flags)

	_, err := svc.Paginate(ctx, "Text.", 100)
	require.NoError(t, err)

	assert.Equal(t, 0, cache.gets)
	assert.Equal(t, 0, cache.sets)
}

func TestOpenBook_FirstSpread(t *testing.T) {
	svc := newTestService(t, nil, &mockLogger{})
	article := &domain.Article{
		ID:          "a1",
		Title:       "Book",
		Author:      "Ada",
		PublishedAt: time.Date(2024, 6, 7, 12, 0, 0, 0, time.UTC),
		Content:     paragraphs(4),
	}

	view, err := svc.OpenBook(context.Background(), article, 0, 0)
	require.NoError(t, err)

	assert.Equal(t, 4, view.PageCount)
	assert.Equal(t, 3, view.SpreadCount)
	assert.True(t, view.Spread.Cover)
	assert.False(t, view.HasPrev)
	assert.True(t, view.HasNext)
	require.Len(t, view.Pages, 1)
	assert.Equal(t, 1, view.Pages[0].Number)
	assert.Equal(t, strings.Repeat("a", 60), view.Pages[0].Text)
	require.Len(t, view.Pages[0].Nodes, 1)
	assert.Equal(t, markdown.KindParagraph, view.Pages[0].Nodes[0].Kind)

	assert.Equal(t, "Book", view.Meta.Title)
	assert.Equal(t, "3d ago", view.Meta.Published)
	assert.Equal(t, "1 min read", view.Meta.ReadingTime)
	assert.Equal(t, 100, view.MaxChars)
}

func TestOpenBook_MiddleAndLastSpread(t *testing.T) {
	svc := newTestService(t, nil, &mockLogger{})
	article := &domain.Article{ID: "a1", Title: "Book", Content: paragraphs(4)}

	middle, err := svc.OpenBook(context.Background(), article, 1, 0)
	require.NoError(t, err)
	require.Len(t, middle.Pages, 2)
	assert.Equal(t, 2, middle.Pages[0].Number)
	assert.Equal(t, 3, middle.Pages[1].Number)
	assert.True(t, middle.HasPrev)
	assert.True(t, middle.HasNext)

	last, err := svc.OpenBook(context.Background(), article, 2, 0)
	require.NoError(t, err)
	require.Len(t, last.Pages, 1)
	assert.Equal(t, 4, last.Pages[0].Number)
	assert.False(t, last.HasNext)
	assert.Empty(t, last.Meta.Published)
}

func TestOpenBook_SpreadOutOfRange(t *testing.T) {
	svc := newTestService(t, nil, &mockLogger{})
	article := &domain.Article{ID: "a1", Title: "Book", Content: paragraphs(2)}

	for _, spread := range []int{-1, 2, 99} {
		_, err := svc.OpenBook(context.Background(), article, spread, 0)
		require.Error(t, err)
		assert.True(t, coreerrors.IsValidation(err), "spread %d", spread)
	}
}

func TestOpenBook_EmptyArticle(t *testing.T) {
	svc := newTestService(t, nil, &mockLogger{})

	view, err := svc.OpenBook(context.Background(), &domain.Article{ID: "e", Title: "Empty"}, 0, 0)
	require.NoError(t, err)

	assert.Equal(t, 1, view.PageCount)
	require.Len(t, view.Pages, 1)
	assert.Equal(t, "", view.Pages[0].Text)
	assert.Empty(t, view.Pages[0].Nodes)
}

func TestOpenBook_NilArticle(t *testing.T) {
	svc := newTestService(t, nil, &mockLogger{})

	_, err := svc.OpenBook(context.Background(), nil, 0, 0)

	assert.True(t, coreerrors.IsValidation(err))
}

func TestRenderDocument_Memoizes(t *testing.T) {
	svc := newTestService(t, nil, &mockLogger{})
	ctx := context.Background()

	first := svc.RenderDocument(ctx, "# Title\n\nBody")
	second := svc.RenderDocument(ctx, "# Title\n\nBody")

	assert.Equal(t, first, second)
	assert.Equal(t, 1, svc.memo.Len())
}

func TestRenderDocument_YouTubeFlag(t *testing.T) {
	svc := newTestService(t, nil, &mockLogger{})
	text := "https://youtu.be/dQw4w9WgXcQ"

	embedded := svc.RenderDocument(context.Background(), text)
	require.Len(t, embedded, 1)
	assert.Equal(t, markdown.KindYouTube, embedded[0].Kind)

	flags := featureflags.NewStaticManager(featureflags.Defaults)
	flags.SetEnabled(featureflags.YouTubeEmbeds, false)
	ctx := featureflags.WithManager(context.Background(), flags)

	plain := svc.RenderDocument(ctx, text)
	require.Len(t, plain, 1)
	assert.Equal(t, markdown.KindParagraph, plain[0].Kind)
	assert.Equal(t, text, plain[0].Runs[0].URL)

	again := svc.RenderDocument(context.Background(), text)
	assert.Equal(t, markdown.KindYouTube, again[0].Kind, "memoized nodes must not be rewritten")
}
