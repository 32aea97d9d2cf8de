// ABOUTME: Book service that lays an article out as paginated, rendered spreads
// ABOUTME: Pages are memoized in the shared cache; rendered nodes in an in-process LRU

package book

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"pamphlets-api/core/domain"
	coreerrors "pamphlets-api/core/errors"
	"pamphlets-api/core/interfaces"
	"pamphlets-api/core/markdown"
	"pamphlets-api/core/paginate"
	"pamphlets-api/pkg/featureflags"
	"pamphlets-api/pkg/utils/duration"
	timeutil "pamphlets-api/pkg/utils/time"
)

// Options tunes the book service
type Options struct {
	// MaxChars is the page size used when a request does not give one
	MaxChars int

	// PageCacheTTL is how long paginated pages stay in the cache
	PageCacheTTL time.Duration

	// RenderMemoSize bounds the number of rendered pages kept in memory
	RenderMemoSize int
}

// Service implements interfaces.BookService
type Service struct {
	deps interfaces.Dependencies
	opts Options
	memo *lru.Cache[string, []markdown.Node]
	now  func() time.Time
}

// NewService creates a book service. Zero options fall back to defaults.
func NewService(deps interfaces.Dependencies, opts Options) (*Service, error) {
	if opts.MaxChars <= 0 {
		opts.MaxChars = paginate.DefaultMaxChars
	}
	if opts.PageCacheTTL <= 0 {
		opts.PageCacheTTL = 24 * time.Hour
	}
	if opts.RenderMemoSize <= 0 {
		opts.RenderMemoSize = 256
	}

	memo, err := lru.New[string, []markdown.Node](opts.RenderMemoSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create render memo: %w", err)
	}

	return &Service{deps: deps, opts: opts, memo: memo, now: time.Now}, nil
}

// RenderDocument renders text as display nodes.
func (s *Service) RenderDocument(ctx context.Context, text string) []markdown.Node {
	return s.renderPage(ctx, text)
}

// PageSize returns maxChars, or the configured default when it is not positive.
func (s *Service) PageSize(maxChars int) int {
	if maxChars <= 0 {
		return s.opts.MaxChars
	}
	return maxChars
}

// Paginate splits text into pages of at most maxChars characters. Results
// are memoized against the text; cache failures are logged and ignored.
func (s *Service) Paginate(ctx context.Context, text string, maxChars int) ([]string, error) {
	maxChars = s.PageSize(maxChars)

	useCache := s.deps.Cache != nil && featureflags.IsEnabled(ctx, featureflags.CacheEnabled)
	key := pagesKey(text, maxChars)

	if useCache {
		if pages, ok := s.cachedPages(ctx, key); ok {
			return pages, nil
		}
	}

	pages := paginate.Paginate(text, maxChars)

	if useCache {
		s.storePages(ctx, key, pages)
	}
	return pages, nil
}

// OpenBook paginates article and renders the pages of one spread.
func (s *Service) OpenBook(ctx context.Context, article *domain.Article, spread, maxChars int) (*domain.BookView, error) {
	if article == nil {
		return nil, &coreerrors.ValidationError{Field: "article", Message: "article is required"}
	}
	maxChars = s.PageSize(maxChars)

	pages, err := s.Paginate(ctx, article.SourceText(), maxChars)
	if err != nil {
		return nil, coreerrors.WrapError(err, "failed to paginate article")
	}

	spreads := paginate.Spreads(len(pages))
	if spread < 0 || spread >= len(spreads) {
		return nil, &coreerrors.ValidationError{
			Field:   "spread",
			Message: fmt.Sprintf("spread %d out of range [0, %d)", spread, len(spreads)),
		}
	}
	current := spreads[spread]

	view := &domain.BookView{
		Meta:        s.meta(article),
		Spread:      current,
		PageCount:   len(pages),
		SpreadCount: len(spreads),
		MaxChars:    maxChars,
		HasPrev:     spread > 0,
		HasNext:     spread < len(spreads)-1,
	}
	for _, p := range current.Pages() {
		view.Pages = append(view.Pages, domain.RenderedPage{
			Number: p + 1,
			Text:   pages[p],
			Nodes:  s.renderPage(ctx, pages[p]),
		})
	}

	s.deps.Logger.Debug("Opened book", map[string]interface{}{
		"article_id": article.ID,
		"spread":     spread,
		"pages":      len(pages),
		"max_chars":  maxChars,
	})
	return view, nil
}

func (s *Service) meta(article *domain.Article) domain.BookMeta {
	words := article.WordCount()
	meta := domain.BookMeta{
		ID:          article.ID,
		Title:       article.Title,
		Author:      article.Author,
		Genre:       article.Genre,
		CoverImage:  article.CoverImage,
		ReadingTime: duration.ReadingLabel(words),
		WordCount:   words,
	}
	if !article.PublishedAt.IsZero() {
		meta.Published = timeutil.Relative(article.PublishedAt, s.now())
	}
	return meta
}

// renderPage renders through the LRU memo. Memoized trees are shared, so
// anything that rewrites nodes must copy them first.
func (s *Service) renderPage(ctx context.Context, page string) []markdown.Node {
	key := hash(page)
	nodes, ok := s.memo.Get(key)
	if !ok {
		nodes = markdown.RenderBlocks(page)
		s.memo.Add(key, nodes)
	}

	if !featureflags.IsEnabled(ctx, featureflags.YouTubeEmbeds) {
		return withoutEmbeds(nodes)
	}
	return nodes
}

// withoutEmbeds turns YouTube embeds into paragraphs linking to the video.
func withoutEmbeds(nodes []markdown.Node) []markdown.Node {
	out := make([]markdown.Node, len(nodes))
	for i, n := range nodes {
		if n.Kind == markdown.KindYouTube && n.Video != nil {
			out[i] = markdown.Node{
				Kind: markdown.KindParagraph,
				Runs: []markdown.Run{{Kind: markdown.RunLink, Text: n.Video.URL, URL: n.Video.URL}},
			}
			continue
		}
		out[i] = n
	}
	return out
}

func (s *Service) cachedPages(ctx context.Context, key string) ([]string, bool) {
	data, err := s.deps.Cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, interfaces.ErrCacheMiss) {
			s.deps.Logger.Warn("Page cache read failed", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
		}
		return nil, false
	}

	var pages []string
	if err := json.Unmarshal(data, &pages); err != nil || len(pages) == 0 {
		s.deps.Logger.Warn("Discarding corrupt page cache entry", map[string]interface{}{"key": key})
		return nil, false
	}
	return pages, true
}

func (s *Service) storePages(ctx context.Context, key string, pages []string) {
	data, err := json.Marshal(pages)
	if err != nil {
		return
	}
	if err := s.deps.Cache.Set(ctx, key, data, s.opts.PageCacheTTL); err != nil {
		s.deps.Logger.Warn("Page cache write failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}

func pagesKey(text string, maxChars int) string {
	return fmt.Sprintf("pages:%s:%d", hash(text), maxChars)
}

func hash(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
