// ABOUTME: Import handler for the Huma API
// ABOUTME: Imports web pages as articles and stores the ones that succeed

package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"pamphlets-api/api/dto/mappers"
	"pamphlets-api/api/dto/requests"
	"pamphlets-api/api/dto/responses"
	coreerrors "pamphlets-api/core/errors"
	"pamphlets-api/core/interfaces"
	"pamphlets-api/pkg/featureflags"

	"github.com/danielgtaylor/huma/v2"
)

// DefaultMaxImportBatch bounds a batch when no limit is configured.
const DefaultMaxImportBatch = 20

// ImportHandler handles article imports
type ImportHandler struct {
	importer       interfaces.Importer
	articleService interfaces.ArticleService
	logger         interfaces.Logger
	maxBatch       int
	now            func() time.Time
}

// NewImportHandler creates a new import handler. maxBatch caps the number
// of URLs per request.
func NewImportHandler(importer interfaces.Importer, articleService interfaces.ArticleService, logger interfaces.Logger, maxBatch int) *ImportHandler {
	if maxBatch <= 0 {
		maxBatch = DefaultMaxImportBatch
	}
	return &ImportHandler{
		importer:       importer,
		articleService: articleService,
		logger:         logger,
		maxBatch:       maxBatch,
		now:            time.Now,
	}
}

// RegisterRoutes registers the import route
func (h *ImportHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "importArticles",
		Method:      http.MethodPost,
		Path:        "/articles/import",
		Summary:     "Import web pages as articles",
		Description: "Fetches each URL, extracts the main content and stores it as an article. Failures are reported per URL.",
		Tags:        []string{"Articles"},
	}, h.ImportArticles)
}

// ImportInput defines the input for ImportArticles
type ImportInput struct {
	Body requests.ImportRequest
}

// ImportOutput defines the output for ImportArticles
type ImportOutput struct {
	Body responses.ImportResponse
}

// ImportArticles handles POST /articles/import
func (h *ImportHandler) ImportArticles(ctx context.Context, input *ImportInput) (*ImportOutput, error) {
	if !featureflags.IsEnabled(ctx, featureflags.ImportEnabled) {
		return nil, toHumaError(&coreerrors.DisabledError{Feature: string(featureflags.ImportEnabled)})
	}
	if len(input.Body.URLs) > h.maxBatch {
		return nil, huma.Error400BadRequest(fmt.Sprintf("at most %d URLs per import", h.maxBatch))
	}

	now := h.now()
	out := &ImportOutput{}
	out.Body.Results = make([]responses.ImportResult, 0, len(input.Body.URLs))

	for _, result := range h.importer.ImportBatch(ctx, input.Body.URLs) {
		item := responses.ImportResult{URL: result.URL}

		err := result.Err
		if err == nil {
			saved, saveErr := h.articleService.Save(ctx, result.Article)
			if saveErr == nil {
				summary := mappers.ToArticleSummaryResponse(saved.Summary(), now)
				item.Article = &summary
			}
			err = saveErr
		}

		if err != nil {
			item.Error = err.Error()
			out.Body.Failed++
			h.logger.Warn("Import failed", map[string]interface{}{
				"url":   result.URL,
				"error": err.Error(),
			})
		} else {
			out.Body.Imported++
		}
		out.Body.Results = append(out.Body.Results, item)
	}

	return out, nil
}
