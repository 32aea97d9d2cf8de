// ABOUTME: Render and paginate handlers for the Huma API
// ABOUTME: Exposes the markdown renderer and paginator over HTTP

package handlers

import (
	"context"
	"net/http"

	"pamphlets-api/api/dto/requests"
	"pamphlets-api/api/dto/responses"
	"pamphlets-api/core/interfaces"
	"pamphlets-api/core/markdown"

	"github.com/danielgtaylor/huma/v2"
)

// RenderHandler handles markdown rendering and pagination
type RenderHandler struct {
	bookService interfaces.BookService
}

// NewRenderHandler creates a new render handler
func NewRenderHandler(bookService interfaces.BookService) *RenderHandler {
	return &RenderHandler{bookService: bookService}
}

// RegisterRoutes registers all render-related routes
func (h *RenderHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "renderBlocks",
		Method:      http.MethodPost,
		Path:        "/render",
		Summary:     "Render markdown blocks",
		Description: "Renders page text into display nodes: headings, lists, tables, code, images, quotes and YouTube embeds",
		Tags:        []string{"Render"},
	}, h.RenderBlocks)

	huma.Register(api, huma.Operation{
		OperationID: "renderInline",
		Method:      http.MethodPost,
		Path:        "/render/inline",
		Summary:     "Render inline markdown",
		Description: "Renders a single line into typed runs for bold, italic, strikethrough, code, links and images",
		Tags:        []string{"Render"},
	}, h.RenderInline)

	huma.Register(api, huma.Operation{
		OperationID: "paginate",
		Method:      http.MethodPost,
		Path:        "/paginate",
		Summary:     "Paginate text",
		Description: "Splits book text into pages of bounded length on block boundaries",
		Tags:        []string{"Book"},
	}, h.Paginate)
}

// RenderInput defines the input for the render operations
type RenderInput struct {
	Body requests.RenderRequest
}

// RenderBlocksOutput defines the output for RenderBlocks
type RenderBlocksOutput struct {
	Body responses.RenderResponse
}

// RenderBlocks handles POST /render
func (h *RenderHandler) RenderBlocks(ctx context.Context, input *RenderInput) (*RenderBlocksOutput, error) {
	nodes := h.bookService.RenderDocument(ctx, input.Body.Content)
	if nodes == nil {
		nodes = []markdown.Node{}
	}
	return &RenderBlocksOutput{Body: responses.RenderResponse{Nodes: nodes}}, nil
}

// RenderInlineOutput defines the output for RenderInline
type RenderInlineOutput struct {
	Body responses.InlineResponse
}

// RenderInline handles POST /render/inline
func (h *RenderHandler) RenderInline(ctx context.Context, input *RenderInput) (*RenderInlineOutput, error) {
	runs := markdown.RenderInline(input.Body.Content)
	if runs == nil {
		runs = []markdown.Run{}
	}
	return &RenderInlineOutput{Body: responses.InlineResponse{Runs: runs}}, nil
}

// PaginateInput defines the input for Paginate
type PaginateInput struct {
	Body requests.PaginateRequest
}

// PaginateOutput defines the output for Paginate
type PaginateOutput struct {
	Body responses.PaginateResponse
}

// Paginate handles POST /paginate
func (h *RenderHandler) Paginate(ctx context.Context, input *PaginateInput) (*PaginateOutput, error) {
	pages, err := h.bookService.Paginate(ctx, input.Body.Content, input.Body.MaxChars)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &PaginateOutput{
		Body: responses.PaginateResponse{
			Pages:     pages,
			PageCount: len(pages),
			MaxChars:  h.bookService.PageSize(input.Body.MaxChars),
		},
	}, nil
}
