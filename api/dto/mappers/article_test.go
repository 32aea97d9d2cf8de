package mappers

import (
	"testing"
	"time"

	"pamphlets-api/api/dto/requests"
	"pamphlets-api/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func TestFromArticleRequest(t *testing.T) {
	published := time.Date(2024, 6, 1, 9, 0, 0, 0, time.FixedZone("CEST", 2*3600))
	req := requests.ArticleRequest{
		Title:       "On Bees",
		Author:      "A. Keeper",
		PublishedAt: &published,
		Content: []requests.ContentBlockRequest{
			{Type: domain.BlockParagraph, Content: "Bees dance."},
			{Type: domain.BlockImage, URL: "https://example.com/hive.png", Caption: "A hive"},
		},
	}

	article := FromArticleRequest("bees", req)

	assert.Equal(t, "bees", article.ID)
	assert.Equal(t, "On Bees", article.Title)
	assert.Equal(t, time.UTC, article.PublishedAt.Location())
	assert.True(t, published.Equal(article.PublishedAt))
	require.Len(t, article.Content, 2)
	assert.Equal(t, "https://example.com/hive.png", article.Content[1].URL)
}

func TestFromArticleRequest_NoPublishTime(t *testing.T) {
	article := FromArticleRequest("x", requests.ArticleRequest{Title: "X"})

	assert.True(t, article.PublishedAt.IsZero())
	assert.NotNil(t, article.Content)
}

func TestToArticleResponse(t *testing.T) {
	article := &domain.Article{
		ID:          "bees",
		Title:       "On Bees",
		PublishedAt: now.Add(-3 * 24 * time.Hour),
		Content: []domain.ContentBlock{
			{Type: domain.BlockParagraph, Content: "one two three"},
		},
	}

	resp := ToArticleResponse(article, now)

	require.NotNil(t, resp)
	assert.Equal(t, "3d ago", resp.Published)
	assert.Equal(t, 3, resp.WordCount)
	assert.Equal(t, "1 min read", resp.ReadingTime)
	assert.Nil(t, ToArticleResponse(nil, now))
}

func TestToArticleResponse_UnpublishedHasNoRelativeTime(t *testing.T) {
	resp := ToArticleResponse(&domain.Article{ID: "x", Title: "X"}, now)

	assert.Empty(t, resp.Published)
	assert.NotNil(t, resp.Content)
}

func TestToArticleListResponse(t *testing.T) {
	page := &domain.ArticlePage{
		Articles: []domain.ArticleSummary{
			{ID: "a", Title: "A", PublishedAt: now.Add(-2 * time.Hour), WordCount: 460},
			{ID: "b", Title: "B"},
		},
		Total:      12,
		Page:       2,
		PerPage:    2,
		TotalPages: 6,
	}

	resp := ToArticleListResponse(page, now)

	require.Len(t, resp.Articles, 2)
	assert.Equal(t, "2h ago", resp.Articles[0].Published)
	assert.Equal(t, "2 min read", resp.Articles[0].ReadingTime)
	assert.Empty(t, resp.Articles[1].Published)
	assert.Equal(t, 12, resp.Total)
	assert.Equal(t, 6, resp.TotalPages)
}

func TestToYouTubeResponse(t *testing.T) {
	resp := ToYouTubeResponse("dQw4w9WgXcQ")

	assert.Equal(t, "https://www.youtube.com/watch?v=dQw4w9WgXcQ", resp.WatchURL)
	assert.Equal(t, "https://www.youtube.com/embed/dQw4w9WgXcQ", resp.EmbedURL)
}
