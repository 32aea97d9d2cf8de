// ABOUTME: Book handler for the Huma API
// ABOUTME: Opens posted or stored articles as paginated two-page spreads

package handlers

import (
	"context"
	"net/http"

	"pamphlets-api/api/dto/mappers"
	"pamphlets-api/api/dto/requests"
	"pamphlets-api/api/dto/responses"
	"pamphlets-api/core/interfaces"
	"pamphlets-api/core/paginate"

	"github.com/danielgtaylor/huma/v2"
)

// BookHandler handles book view requests
type BookHandler struct {
	bookService    interfaces.BookService
	articleService interfaces.ArticleService
}

// NewBookHandler creates a new book handler
func NewBookHandler(bookService interfaces.BookService, articleService interfaces.ArticleService) *BookHandler {
	return &BookHandler{
		bookService:    bookService,
		articleService: articleService,
	}
}

// RegisterRoutes registers all book-related routes
func (h *BookHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "openBook",
		Method:      http.MethodPost,
		Path:        "/book",
		Summary:     "Open an article as a book",
		Description: "Paginates the posted article and renders the pages of one spread. Spread 0 pairs the cover with the first page.",
		Tags:        []string{"Book"},
	}, h.OpenBook)

	huma.Register(api, huma.Operation{
		OperationID: "openStoredBook",
		Method:      http.MethodGet,
		Path:        "/articles/{id}/book",
		Summary:     "Open a stored article as a book",
		Description: "Paginates a stored article and renders the pages of one spread",
		Tags:        []string{"Book"},
	}, h.OpenStoredBook)
}

// OpenBookInput defines the input for OpenBook
type OpenBookInput struct {
	Body requests.BookRequest
}

// BookOutput is the output of both book operations
type BookOutput struct {
	Body responses.BookResponse
}

// OpenBook handles POST /book
func (h *BookHandler) OpenBook(ctx context.Context, input *OpenBookInput) (*BookOutput, error) {
	article := mappers.FromArticleRequest("", input.Body.Article)

	view, err := h.bookService.OpenBook(ctx, article, input.Body.Spread, input.Body.MaxChars)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &BookOutput{Body: responses.BookResponse{BookView: *view}}, nil
}

// OpenStoredBookInput defines the input for OpenStoredBook
type OpenStoredBookInput struct {
	ID       string `path:"id" doc:"Article ID"`
	Spread   int    `query:"spread" minimum:"0" default:"0" doc:"Spread to render; 0 is the cover"`
	Page     int    `query:"page" minimum:"0" default:"0" doc:"1-based page to open; overrides spread when set"`
	MaxChars int    `query:"maxChars" minimum:"0" maximum:"100000" default:"0" doc:"Maximum characters per page (0 uses the server default)"`
}

// OpenStoredBook handles GET /articles/{id}/book
func (h *BookHandler) OpenStoredBook(ctx context.Context, input *OpenStoredBookInput) (*BookOutput, error) {
	article, err := h.articleService.Get(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}

	spread := input.Spread
	if input.Page > 0 {
		spread = paginate.SpreadOf(input.Page - 1)
	}

	view, err := h.bookService.OpenBook(ctx, article, spread, input.MaxChars)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &BookOutput{Body: responses.BookResponse{BookView: *view}}, nil
}
