package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"pamphlets-api/api/dto/responses"
	"pamphlets-api/core/markdown"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRenderAPI(t *testing.T, svc *mockBookService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewRenderHandler(svc).RegisterRoutes(api)
	return api
}

func TestRenderHandler_RegisterRoutes(t *testing.T) {
	api := newRenderAPI(t, &mockBookService{})

	paths := api.OpenAPI().Paths
	for _, p := range []string{"/render", "/render/inline", "/paginate"} {
		require.NotNil(t, paths[p], p)
		assert.NotNil(t, paths[p].Post, p)
	}
}

func TestRenderHandler_RenderBlocks(t *testing.T) {
	api := newRenderAPI(t, &mockBookService{})

	resp := api.Post("/render", map[string]interface{}{
		"content": "# Title\n\nHello **world**",
	})
	require.Equal(t, 200, resp.Code)

	var body responses.RenderResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Len(t, body.Nodes, 2)
	assert.Equal(t, markdown.KindHeading, body.Nodes[0].Kind)
	assert.Equal(t, 1, body.Nodes[0].Level)
	assert.Equal(t, markdown.KindParagraph, body.Nodes[1].Kind)
	assert.Equal(t, "Hello world", markdown.PlainText(body.Nodes[1].Runs))
}

func TestRenderHandler_RenderBlocks_EmptyContent(t *testing.T) {
	api := newRenderAPI(t, &mockBookService{})

	resp := api.Post("/render", map[string]interface{}{"content": ""})

	require.Equal(t, 200, resp.Code)
	assert.Contains(t, resp.Body.String(), `"nodes":[]`)
}

func TestRenderHandler_RenderBlocks_MissingContent(t *testing.T) {
	api := newRenderAPI(t, &mockBookService{})

	resp := api.Post("/render", map[string]interface{}{})

	assert.Equal(t, 422, resp.Code)
}

func TestRenderHandler_RenderInline(t *testing.T) {
	api := newRenderAPI(t, &mockBookService{})

	resp := api.Post("/render/inline", map[string]interface{}{
		"content": "a **b** c",
	})
	require.Equal(t, 200, resp.Code)

	var body responses.InlineResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, []markdown.Run{
		{Kind: markdown.RunPlain, Text: "a "},
		{Kind: markdown.RunBold, Text: "b"},
		{Kind: markdown.RunPlain, Text: " c"},
	}, body.Runs)
}

func TestRenderHandler_Paginate(t *testing.T) {
	var gotMax int
	svc := &mockBookService{}
	svc.paginateFunc = func(ctx context.Context, text string, maxChars int) ([]string, error) {
		gotMax = maxChars
		return []string{"one", "two"}, nil
	}
	api := newRenderAPI(t, svc)

	resp := api.Post("/paginate", map[string]interface{}{
		"content":  strings.Repeat("x", 10),
		"maxChars": 300,
	})
	require.Equal(t, 200, resp.Code)

	var body responses.PaginateResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, 300, gotMax)
	assert.Equal(t, []string{"one", "two"}, body.Pages)
	assert.Equal(t, 2, body.PageCount)
	assert.Equal(t, 300, body.MaxChars)
}

func TestRenderHandler_Paginate_DefaultMaxChars(t *testing.T) {
	api := newRenderAPI(t, &mockBookService{})

	resp := api.Post("/paginate", map[string]interface{}{"content": "short text"})
	require.Equal(t, 200, resp.Code)

	var body responses.PaginateResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, []string{"short text"}, body.Pages)
	assert.Equal(t, 1200, body.MaxChars)
}

func TestRenderHandler_Paginate_RejectsNegativeMaxChars(t *testing.T) {
	api := newRenderAPI(t, &mockBookService{})

	resp := api.Post("/paginate", map[string]interface{}{"content": "x", "maxChars": -1})

	assert.Equal(t, 422, resp.Code)
}

func TestRenderHandler_Paginate_ServiceError(t *testing.T) {
	svc := &mockBookService{
		paginateFunc: func(ctx context.Context, text string, maxChars int) ([]string, error) {
			return nil, errors.New("boom")
		},
	}
	api := newRenderAPI(t, svc)

	resp := api.Post("/paginate", map[string]interface{}{"content": "x"})

	assert.Equal(t, 500, resp.Code)
}
