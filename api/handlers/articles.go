// ABOUTME: Article handler for the Huma API
// ABOUTME: Stores, fetches, lists and deletes articles

package handlers

import (
	"context"
	"net/http"
	"time"

	"pamphlets-api/api/dto/mappers"
	"pamphlets-api/api/dto/requests"
	"pamphlets-api/api/dto/responses"
	"pamphlets-api/core/interfaces"

	"github.com/danielgtaylor/huma/v2"
)

// ArticleHandler handles article storage requests
type ArticleHandler struct {
	articleService interfaces.ArticleService
	now            func() time.Time
}

// NewArticleHandler creates a new article handler
func NewArticleHandler(articleService interfaces.ArticleService) *ArticleHandler {
	return &ArticleHandler{
		articleService: articleService,
		now:            time.Now,
	}
}

// RegisterRoutes registers all article routes
func (h *ArticleHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "putArticle",
		Method:      http.MethodPut,
		Path:        "/articles/{id}",
		Summary:     "Store an article",
		Description: "Creates or replaces the article with the given ID",
		Tags:        []string{"Articles"},
	}, h.PutArticle)

	huma.Register(api, huma.Operation{
		OperationID: "getArticle",
		Method:      http.MethodGet,
		Path:        "/articles/{id}",
		Summary:     "Get an article",
		Tags:        []string{"Articles"},
	}, h.GetArticle)

	huma.Register(api, huma.Operation{
		OperationID: "listArticles",
		Method:      http.MethodGet,
		Path:        "/articles",
		Summary:     "List articles",
		Description: "Lists article summaries, most recently updated first",
		Tags:        []string{"Articles"},
	}, h.ListArticles)

	huma.Register(api, huma.Operation{
		OperationID:   "deleteArticle",
		Method:        http.MethodDelete,
		Path:          "/articles/{id}",
		Summary:       "Delete an article",
		Tags:          []string{"Articles"},
		DefaultStatus: http.StatusNoContent,
	}, h.DeleteArticle)
}

// PutArticleInput defines the input for PutArticle
type PutArticleInput struct {
	ID   string `path:"id" maxLength:"200" doc:"Article ID"`
	Body requests.ArticleRequest
}

// ArticleOutput carries a single article
type ArticleOutput struct {
	Body responses.ArticleResponse
}

// PutArticle handles PUT /articles/{id}
func (h *ArticleHandler) PutArticle(ctx context.Context, input *PutArticleInput) (*ArticleOutput, error) {
	saved, err := h.articleService.Save(ctx, mappers.FromArticleRequest(input.ID, input.Body))
	if err != nil {
		return nil, toHumaError(err)
	}
	return &ArticleOutput{Body: *mappers.ToArticleResponse(saved, h.now())}, nil
}

// ArticleIDInput identifies an article by path
type ArticleIDInput struct {
	ID string `path:"id" doc:"Article ID"`
}

// GetArticle handles GET /articles/{id}
func (h *ArticleHandler) GetArticle(ctx context.Context, input *ArticleIDInput) (*ArticleOutput, error) {
	article, err := h.articleService.Get(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &ArticleOutput{Body: *mappers.ToArticleResponse(article, h.now())}, nil
}

// ListArticlesInput defines the query for ListArticles
type ListArticlesInput struct {
	Page    int `query:"page" minimum:"1" default:"1" doc:"Page number (1-based)"`
	PerPage int `query:"per_page" minimum:"1" maximum:"100" default:"10" doc:"Articles per page"`
}

// ListArticlesOutput defines the output for ListArticles
type ListArticlesOutput struct {
	Body responses.ArticleListResponse
}

// ListArticles handles GET /articles
func (h *ArticleHandler) ListArticles(ctx context.Context, input *ListArticlesInput) (*ListArticlesOutput, error) {
	page, err := h.articleService.List(ctx, input.Page, input.PerPage)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &ListArticlesOutput{Body: *mappers.ToArticleListResponse(page, h.now())}, nil
}

// DeleteArticle handles DELETE /articles/{id}
func (h *ArticleHandler) DeleteArticle(ctx context.Context, input *ArticleIDInput) (*struct{}, error) {
	if err := h.articleService.Delete(ctx, input.ID); err != nil {
		return nil, toHumaError(err)
	}
	return nil, nil
}
