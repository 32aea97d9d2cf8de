// ABOUTME: Response DTOs for article endpoints
// ABOUTME: Adds display fields such as relative publish time and reading time

package responses

import (
	"time"

	"pamphlets-api/core/domain"
)

// ArticleResponse is a stored article with display fields
type ArticleResponse struct {
	ID          string                `json:"id" doc:"Article ID"`
	Title       string                `json:"title" doc:"Article title"`
	Author      string                `json:"author,omitempty" doc:"Author name"`
	Genre       string                `json:"genre,omitempty" doc:"Genre"`
	CoverImage  string                `json:"coverImage,omitempty" doc:"Cover image URL"`
	SourceURL   string                `json:"sourceUrl,omitempty" doc:"Original page"`
	PublishedAt time.Time             `json:"publishedAt" doc:"Publication time"`
	Published   string                `json:"published,omitempty" doc:"Publication time relative to now, e.g. 3d ago"`
	UpdatedAt   time.Time             `json:"updatedAt" doc:"Last save time"`
	ReadingTime string                `json:"readingTime" doc:"Estimated reading time"`
	WordCount   int                   `json:"wordCount" doc:"Words in the book text"`
	Content     []domain.ContentBlock `json:"content" doc:"Ordered content blocks"`
}

// ArticleSummaryResponse is the list form of an article
type ArticleSummaryResponse struct {
	ID          string    `json:"id" doc:"Article ID"`
	Title       string    `json:"title" doc:"Article title"`
	Author      string    `json:"author,omitempty" doc:"Author name"`
	Genre       string    `json:"genre,omitempty" doc:"Genre"`
	CoverImage  string    `json:"coverImage,omitempty" doc:"Cover image URL"`
	Published   string    `json:"published,omitempty" doc:"Publication time relative to now"`
	UpdatedAt   time.Time `json:"updatedAt" doc:"Last save time"`
	ReadingTime string    `json:"readingTime" doc:"Estimated reading time"`
	WordCount   int       `json:"wordCount" doc:"Words in the book text"`
}

// ArticleListResponse is one page of article summaries
type ArticleListResponse struct {
	Articles   []ArticleSummaryResponse `json:"articles" doc:"Articles, most recently updated first"`
	Total      int                      `json:"total" doc:"Total number of articles"`
	Page       int                      `json:"page" doc:"Current page number"`
	PerPage    int                      `json:"perPage" doc:"Articles per page"`
	TotalPages int                      `json:"totalPages" doc:"Number of pages"`
}

// ImportResult reports the outcome for one imported URL
type ImportResult struct {
	URL     string                  `json:"url" doc:"Requested URL"`
	Article *ArticleSummaryResponse `json:"article,omitempty" doc:"Stored article on success"`
	Error   string                  `json:"error,omitempty" doc:"Failure reason"`
}

// ImportResponse reports a batch import
type ImportResponse struct {
	Results  []ImportResult `json:"results" doc:"Per-URL results in request order"`
	Imported int            `json:"imported" doc:"Number of stored articles"`
	Failed   int            `json:"failed" doc:"Number of failures"`
}
