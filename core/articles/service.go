// ABOUTME: Article service validating, storing and listing pamphlets
// ABOUTME: Thin layer over ArticleStorage that owns timestamps and page clamping

package articles

import (
	"context"
	"time"

	"pamphlets-api/core/domain"
	coreerrors "pamphlets-api/core/errors"
	"pamphlets-api/core/interfaces"
)

const (
	defaultPerPage = 10
	maxPerPage     = 100
)

// Service implements interfaces.ArticleService
type Service struct {
	deps interfaces.Dependencies
	now  func() time.Time
}

// NewService creates an article service; deps.Storage is required.
func NewService(deps interfaces.Dependencies) *Service {
	return &Service{deps: deps, now: time.Now}
}

// Save validates article, stamps UpdatedAt and stores it.
func (s *Service) Save(ctx context.Context, article *domain.Article) (*domain.Article, error) {
	if article == nil {
		return nil, &coreerrors.ValidationError{Field: "article", Message: "article is required"}
	}
	if err := article.Validate(); err != nil {
		return nil, err
	}

	saved := *article
	saved.UpdatedAt = s.now().UTC()

	if err := s.deps.Storage.Save(ctx, &saved); err != nil {
		return nil, coreerrors.WrapError(err, "failed to save article")
	}

	s.deps.Logger.Info("Saved article", map[string]interface{}{
		"article_id": saved.ID,
		"blocks":     len(saved.Content),
	})
	return &saved, nil
}

// Get returns the article with id or a NotFoundError.
func (s *Service) Get(ctx context.Context, id string) (*domain.Article, error) {
	if id == "" {
		return nil, &coreerrors.ValidationError{Field: "id", Message: "id is required"}
	}
	return s.deps.Storage.Get(ctx, id)
}

// List returns one page of summaries, newest first. page starts at 1;
// out-of-range values are clamped.
func (s *Service) List(ctx context.Context, page, perPage int) (*domain.ArticlePage, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	total, err := s.deps.Storage.Count(ctx)
	if err != nil {
		return nil, coreerrors.WrapError(err, "failed to count articles")
	}

	stored, err := s.deps.Storage.List(ctx, perPage, (page-1)*perPage)
	if err != nil {
		return nil, coreerrors.WrapError(err, "failed to list articles")
	}

	result := &domain.ArticlePage{
		Articles:   make([]domain.ArticleSummary, 0, len(stored)),
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: (total + perPage - 1) / perPage,
	}
	for _, a := range stored {
		result.Articles = append(result.Articles, a.Summary())
	}
	return result, nil
}

// Delete removes the article with id.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.deps.Storage.Delete(ctx, id); err != nil {
		return coreerrors.WrapError(err, "failed to delete article")
	}
	s.deps.Logger.Info("Deleted article", map[string]interface{}{"article_id": id})
	return nil
}
