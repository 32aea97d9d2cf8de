package articles

import (
	"context"

	"pamphlets-api/core/domain"
)

// mockStorage is a function-field implementation of ArticleStorage
type mockStorage struct {
	saveFunc   func(ctx context.Context, article *domain.Article) error
	getFunc    func(ctx context.Context, id string) (*domain.Article, error)
	listFunc   func(ctx context.Context, limit, offset int) ([]*domain.Article, error)
	countFunc  func(ctx context.Context) (int, error)
	deleteFunc func(ctx context.Context, id string) error
}

func (m *mockStorage) Save(ctx context.Context, article *domain.Article) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, article)
	}
	return nil
}

func (m *mockStorage) Get(ctx context.Context, id string) (*domain.Article, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockStorage) List(ctx context.Context, limit, offset int) ([]*domain.Article, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, limit, offset)
	}
	return nil, nil
}

func (m *mockStorage) Count(ctx context.Context) (int, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx)
	}
	return 0, nil
}

func (m *mockStorage) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

// mockLogger discards everything
type mockLogger struct{}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}
