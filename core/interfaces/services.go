// ABOUTME: Service interfaces consumed by the API handlers
// ABOUTME: Handlers depend on these so tests can swap in function-field mocks

package interfaces

import (
	"context"

	"pamphlets-api/core/domain"
	"pamphlets-api/core/markdown"
)

// BookService paginates and renders articles as books.
type BookService interface {
	RenderDocument(ctx context.Context, text string) []markdown.Node
	Paginate(ctx context.Context, text string, maxChars int) ([]string, error)
	OpenBook(ctx context.Context, article *domain.Article, spread, maxChars int) (*domain.BookView, error)

	// PageSize resolves a requested page size, mapping zero to the default.
	PageSize(maxChars int) int
}

// ArticleService stores and lists articles.
type ArticleService interface {
	Save(ctx context.Context, article *domain.Article) (*domain.Article, error)
	Get(ctx context.Context, id string) (*domain.Article, error)
	List(ctx context.Context, page, perPage int) (*domain.ArticlePage, error)
	Delete(ctx context.Context, id string) error
}

// ImportResult is the outcome of importing one URL.
type ImportResult struct {
	URL     string
	Article *domain.Article
	Err     error
}

// Importer turns web pages into articles.
type Importer interface {
	Import(ctx context.Context, url string) (*domain.Article, error)
	ImportBatch(ctx context.Context, urls []string) []ImportResult
}
