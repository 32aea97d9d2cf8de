package handlers

import (
	"context"
	"sync"

	"pamphlets-api/core/domain"
	"pamphlets-api/core/interfaces"
	"pamphlets-api/core/markdown"
	"pamphlets-api/core/paginate"
)

// mockBookService is a mock implementation of the book service
type mockBookService struct {
	renderDocumentFunc func(ctx context.Context, text string) []markdown.Node
	paginateFunc       func(ctx context.Context, text string, maxChars int) ([]string, error)
	openBookFunc       func(ctx context.Context, article *domain.Article, spread, maxChars int) (*domain.BookView, error)
}

func (m *mockBookService) RenderDocument(ctx context.Context, text string) []markdown.Node {
	if m.renderDocumentFunc != nil {
		return m.renderDocumentFunc(ctx, text)
	}
	return markdown.RenderBlocks(text)
}

func (m *mockBookService) Paginate(ctx context.Context, text string, maxChars int) ([]string, error) {
	if m.paginateFunc != nil {
		return m.paginateFunc(ctx, text, maxChars)
	}
	return paginate.Paginate(text, m.PageSize(maxChars)), nil
}

func (m *mockBookService) OpenBook(ctx context.Context, article *domain.Article, spread, maxChars int) (*domain.BookView, error) {
	if m.openBookFunc != nil {
		return m.openBookFunc(ctx, article, spread, maxChars)
	}
	return &domain.BookView{Meta: domain.BookMeta{Title: article.Title}}, nil
}

func (m *mockBookService) PageSize(maxChars int) int {
	if maxChars <= 0 {
		return paginate.DefaultMaxChars
	}
	return maxChars
}

// mockArticleService is a mock implementation of the article service
type mockArticleService struct {
	saveFunc   func(ctx context.Context, article *domain.Article) (*domain.Article, error)
	getFunc    func(ctx context.Context, id string) (*domain.Article, error)
	listFunc   func(ctx context.Context, page, perPage int) (*domain.ArticlePage, error)
	deleteFunc func(ctx context.Context, id string) error
}

func (m *mockArticleService) Save(ctx context.Context, article *domain.Article) (*domain.Article, error) {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, article)
	}
	return article, nil
}

func (m *mockArticleService) Get(ctx context.Context, id string) (*domain.Article, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockArticleService) List(ctx context.Context, page, perPage int) (*domain.ArticlePage, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, page, perPage)
	}
	return &domain.ArticlePage{Page: page, PerPage: perPage}, nil
}

func (m *mockArticleService) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

// mockImporter is a mock implementation of the importer
type mockImporter struct {
	importBatchFunc func(ctx context.Context, urls []string) []interfaces.ImportResult
}

func (m *mockImporter) Import(ctx context.Context, url string) (*domain.Article, error) {
	results := m.ImportBatch(ctx, []string{url})
	return results[0].Article, results[0].Err
}

func (m *mockImporter) ImportBatch(ctx context.Context, urls []string) []interfaces.ImportResult {
	if m.importBatchFunc != nil {
		return m.importBatchFunc(ctx, urls)
	}
	results := make([]interfaces.ImportResult, len(urls))
	for i, u := range urls {
		results[i] = interfaces.ImportResult{URL: u, Article: &domain.Article{ID: u, Title: u}}
	}
	return results
}

// mockLogger records warnings
type mockLogger struct {
	mu    sync.Mutex
	warns []string
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}

func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warns = append(m.warns, msg)
}
