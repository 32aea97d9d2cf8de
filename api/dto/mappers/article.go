// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Keeps display formatting such as relative times out of the domain layer

package mappers

import (
	"time"

	"pamphlets-api/api/dto/requests"
	"pamphlets-api/api/dto/responses"
	"pamphlets-api/core/domain"
	"pamphlets-api/pkg/utils/duration"
	timeutil "pamphlets-api/pkg/utils/time"
)

// FromArticleRequest builds a domain article with the given ID.
func FromArticleRequest(id string, req requests.ArticleRequest) *domain.Article {
	article := &domain.Article{
		ID:         id,
		Title:      req.Title,
		Author:     req.Author,
		Genre:      req.Genre,
		CoverImage: req.CoverImage,
		SourceURL:  req.SourceURL,
		Content:    make([]domain.ContentBlock, 0, len(req.Content)),
	}
	if req.PublishedAt != nil {
		article.PublishedAt = req.PublishedAt.UTC()
	}
	for _, block := range req.Content {
		article.Content = append(article.Content, domain.ContentBlock{
			Type:    block.Type,
			Content: block.Content,
			URL:     block.URL,
			Caption: block.Caption,
		})
	}
	return article
}

// ToArticleResponse converts a domain Article, formatting times against now.
func ToArticleResponse(article *domain.Article, now time.Time) *responses.ArticleResponse {
	if article == nil {
		return nil
	}

	words := article.WordCount()
	content := article.Content
	if content == nil {
		content = []domain.ContentBlock{}
	}

	return &responses.ArticleResponse{
		ID:          article.ID,
		Title:       article.Title,
		Author:      article.Author,
		Genre:       article.Genre,
		CoverImage:  article.CoverImage,
		SourceURL:   article.SourceURL,
		PublishedAt: article.PublishedAt,
		Published:   relative(article.PublishedAt, now),
		UpdatedAt:   article.UpdatedAt,
		ReadingTime: duration.ReadingLabel(words),
		WordCount:   words,
		Content:     content,
	}
}

// ToArticleSummaryResponse converts a summary, formatting times against now.
func ToArticleSummaryResponse(summary domain.ArticleSummary, now time.Time) responses.ArticleSummaryResponse {
	return responses.ArticleSummaryResponse{
		ID:          summary.ID,
		Title:       summary.Title,
		Author:      summary.Author,
		Genre:       summary.Genre,
		CoverImage:  summary.CoverImage,
		Published:   relative(summary.PublishedAt, now),
		UpdatedAt:   summary.UpdatedAt,
		ReadingTime: duration.ReadingLabel(summary.WordCount),
		WordCount:   summary.WordCount,
	}
}

// ToArticleListResponse converts a page of summaries
func ToArticleListResponse(page *domain.ArticlePage, now time.Time) *responses.ArticleListResponse {
	if page == nil {
		return nil
	}

	response := &responses.ArticleListResponse{
		Articles:   make([]responses.ArticleSummaryResponse, 0, len(page.Articles)),
		Total:      page.Total,
		Page:       page.Page,
		PerPage:    page.PerPage,
		TotalPages: page.TotalPages,
	}
	for _, summary := range page.Articles {
		response.Articles = append(response.Articles, ToArticleSummaryResponse(summary, now))
	}
	return response
}

// ToYouTubeResponse builds the watch and embed links for a video ID
func ToYouTubeResponse(videoID string) *responses.YouTubeResponse {
	return &responses.YouTubeResponse{
		VideoID:  videoID,
		WatchURL: "https://www.youtube.com/watch?v=" + videoID,
		EmbedURL: "https://www.youtube.com/embed/" + videoID,
	}
}

func relative(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	return timeutil.Relative(t, now)
}
