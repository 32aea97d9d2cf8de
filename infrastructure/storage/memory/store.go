// ABOUTME: In-memory article store for development and tests
// ABOUTME: Holds copies of articles so callers cannot mutate stored state

package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"pamphlets-api/core/domain"
	coreerrors "pamphlets-api/core/errors"
)

// Store implements interfaces.ArticleStorage in memory.
type Store struct {
	mu       sync.RWMutex
	articles map[string]*domain.Article
}

func NewStore() *Store {
	return &Store{articles: make(map[string]*domain.Article)}
}

func (s *Store) Save(ctx context.Context, article *domain.Article) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if article == nil || article.ID == "" {
		return errors.New("article id cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.articles[article.ID] = clone(article)
	return nil
}

func (s *Store) Get(ctx context.Context, id string) (*domain.Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	article, ok := s.articles[id]
	if !ok {
		return nil, &coreerrors.NotFoundError{Resource: "article", ID: id}
	}
	return clone(article), nil
}

// List returns articles newest first; ties are broken by id.
func (s *Store) List(ctx context.Context, limit, offset int) ([]*domain.Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	all := make([]*domain.Article, 0, len(s.articles))
	for _, a := range s.articles {
		all = append(all, a)
	}
	s.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		if !all[i].UpdatedAt.Equal(all[j].UpdatedAt) {
			return all[i].UpdatedAt.After(all[j].UpdatedAt)
		}
		return all[i].ID < all[j].ID
	})

	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}

	out := make([]*domain.Article, 0, end-offset)
	for _, a := range all[offset:end] {
		out = append(out, clone(a))
	}
	return out, nil
}

func (s *Store) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.articles), nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.articles, id)
	return nil
}

func clone(a *domain.Article) *domain.Article {
	c := *a
	if a.Content != nil {
		c.Content = append([]domain.ContentBlock(nil), a.Content...)
	}
	return &c
}
