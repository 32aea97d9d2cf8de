// ABOUTME: Storage interface for persisting articles
// ABOUTME: Implemented by the in-memory and SQLite stores

package interfaces

import (
	"context"

	"pamphlets-api/core/domain"
)

// ArticleStorage persists articles by ID.
type ArticleStorage interface {
	// Save inserts or replaces an article
	Save(ctx context.Context, article *domain.Article) error

	// Get returns the article with id, or a NotFoundError
	Get(ctx context.Context, id string) (*domain.Article, error)

	// List returns articles ordered by UpdatedAt, newest first
	List(ctx context.Context, limit, offset int) ([]*domain.Article, error)

	// Count returns the number of stored articles
	Count(ctx context.Context) (int, error)

	// Delete removes an article; deleting a missing ID is not an error
	Delete(ctx context.Context, id string) error
}
