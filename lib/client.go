// ABOUTME: Main client for the Pamphlets library providing rendering, pagination and import
// ABOUTME: Offers the core services without the HTTP layer

package pamphlets

import (
	"context"
	"errors"
	"sync"
	"time"

	"pamphlets-api/core/articles"
	"pamphlets-api/core/book"
	"pamphlets-api/core/importer"
	"pamphlets-api/core/interfaces"
	"pamphlets-api/core/markdown"
	"pamphlets-api/pkg/featureflags"
	timeutil "pamphlets-api/pkg/utils/time"
)

// Client is the main entry point for the Pamphlets library
type Client struct {
	bookService    *book.Service
	articleService *articles.Service
	importer       *importer.Service

	config Config

	mu     sync.RWMutex
	closed bool
}

// NewClient creates a new client with the given options
func NewClient(options ...Option) (*Client, error) {
	config := defaultConfig()
	for _, opt := range options {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}
	if config.Logger == nil {
		config.Logger = QuietLogger()
	}

	deps := interfaces.Dependencies{
		Cache:      config.Cache,
		HTTPClient: config.HTTPClient,
		Logger:     config.Logger,
		Storage:    config.Storage,
	}

	bookService, err := book.NewService(deps, book.Options{
		MaxChars:       config.MaxChars,
		PageCacheTTL:   config.PageCacheTTL,
		RenderMemoSize: config.RenderMemoSize,
	})
	if err != nil {
		return nil, NewError(ErrorTypeConfiguration, "failed to create book service").WithCause(err)
	}

	return &Client{
		bookService:    bookService,
		articleService: articles.NewService(deps),
		importer:       importer.NewService(deps, importer.Options{Concurrency: config.ImportConcurrency}),
		config:         config,
	}, nil
}

// Close releases resources opened by options such as WithSQLiteStorage
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true

	var errs []error
	for _, closeFn := range c.config.closers {
		if err := closeFn(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (c *Client) ready(ctx context.Context) (context.Context, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return ctx, ErrClientClosed
	}
	if c.config.Flags != nil {
		ctx = featureflags.WithManager(ctx, c.config.Flags)
	}
	return ctx, nil
}

// RenderBlocks renders page text into display nodes
func (c *Client) RenderBlocks(ctx context.Context, text string) ([]Node, error) {
	ctx, err := c.ready(ctx)
	if err != nil {
		return nil, err
	}
	return c.bookService.RenderDocument(ctx, text), nil
}

// RenderInline renders a single line into typed runs
func (c *Client) RenderInline(text string) []Run {
	return markdown.RenderInline(text)
}

// Paginate splits text into pages of at most maxChars characters; zero
// uses the configured default
func (c *Client) Paginate(ctx context.Context, text string, maxChars int) ([]string, error) {
	ctx, err := c.ready(ctx)
	if err != nil {
		return nil, err
	}
	pages, err := c.bookService.Paginate(ctx, text, maxChars)
	return pages, wrapError(err, "failed to paginate")
}

// OpenBook lays article out as a book and renders one spread
func (c *Client) OpenBook(ctx context.Context, article *Article, spread, maxChars int) (*BookView, error) {
	ctx, err := c.ready(ctx)
	if err != nil {
		return nil, err
	}
	view, err := c.bookService.OpenBook(ctx, article, spread, maxChars)
	if err != nil {
		return nil, wrapError(err, "failed to open book")
	}
	return view, nil
}

// Import fetches a web page and converts it into an article without storing it
func (c *Client) Import(ctx context.Context, url string) (*Article, error) {
	ctx, err := c.ready(ctx)
	if err != nil {
		return nil, err
	}
	article, err := c.importer.Import(ctx, url)
	if err != nil {
		return nil, classify(err, "failed to import").WithContext("url", url)
	}
	return article, nil
}

// ImportBatch imports several pages concurrently; results keep input order
func (c *Client) ImportBatch(ctx context.Context, urls []string) ([]ImportResult, error) {
	ctx, err := c.ready(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]ImportResult, 0, len(urls))
	for _, r := range c.importer.ImportBatch(ctx, urls) {
		results = append(results, ImportResult{
			URL:     r.URL,
			Article: r.Article,
			Err:     wrapError(r.Err, "failed to import"),
		})
	}
	return results, nil
}

// SaveArticle stores article, stamping its update time
func (c *Client) SaveArticle(ctx context.Context, article *Article) (*Article, error) {
	ctx, err := c.storageReady(ctx)
	if err != nil {
		return nil, err
	}
	saved, err := c.articleService.Save(ctx, article)
	if err != nil {
		return nil, wrapError(err, "failed to save article")
	}
	return saved, nil
}

// GetArticle returns a stored article
func (c *Client) GetArticle(ctx context.Context, id string) (*Article, error) {
	ctx, err := c.storageReady(ctx)
	if err != nil {
		return nil, err
	}
	article, err := c.articleService.Get(ctx, id)
	if err != nil {
		return nil, classify(err, "failed to get article").WithContext("id", id)
	}
	return article, nil
}

// ListArticles returns one page of stored article summaries
func (c *Client) ListArticles(ctx context.Context, page, perPage int) (*ArticlePage, error) {
	ctx, err := c.storageReady(ctx)
	if err != nil {
		return nil, err
	}
	result, err := c.articleService.List(ctx, page, perPage)
	if err != nil {
		return nil, wrapError(err, "failed to list articles")
	}
	return result, nil
}

// DeleteArticle removes a stored article
func (c *Client) DeleteArticle(ctx context.Context, id string) error {
	ctx, err := c.storageReady(ctx)
	if err != nil {
		return err
	}
	if err := c.articleService.Delete(ctx, id); err != nil {
		return classify(err, "failed to delete article").WithContext("id", id)
	}
	return nil
}

func (c *Client) storageReady(ctx context.Context) (context.Context, error) {
	if c.config.Storage == nil {
		return ctx, ErrNoStorage
	}
	return c.ready(ctx)
}

// YouTubeVideoID extracts the video ID from a YouTube link
func YouTubeVideoID(url string) (string, bool) {
	return markdown.YouTubeVideoID(url)
}

// RelativeTime formats t relative to now, e.g. "5m ago" or "3d ago"
func RelativeTime(t, now time.Time) string {
	return timeutil.Relative(t, now)
}
