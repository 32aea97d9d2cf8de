// ABOUTME: Article domain model stored and opened as a pamphlet
// ABOUTME: Content is an ordered list of typed blocks; paragraphs flatten into book source text

package domain

import (
	"fmt"
	"strings"
	"time"

	coreerrors "pamphlets-api/core/errors"
	"pamphlets-api/pkg/utils/duration"
)

// Content block types.
const (
	BlockParagraph = "paragraph"
	BlockHeading   = "heading"
	BlockImage     = "image"
	BlockQuote     = "quote"
	BlockCode      = "code"
)

var blockTypes = map[string]bool{
	BlockParagraph: true,
	BlockHeading:   true,
	BlockImage:     true,
	BlockQuote:     true,
	BlockCode:      true,
}

// sourceSeparator joins paragraph blocks into book source text.
const sourceSeparator = "\n\n"

// ContentBlock is one stored unit of article content.
type ContentBlock struct {
	Type    string `json:"type"`
	Content string `json:"content"`
	URL     string `json:"url,omitempty"`
	Caption string `json:"caption,omitempty"`
}

// Article is a stored pamphlet
type Article struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Author      string         `json:"author,omitempty"`
	Genre       string         `json:"genre,omitempty"`
	CoverImage  string         `json:"coverImage,omitempty"`
	SourceURL   string         `json:"sourceUrl,omitempty"`
	PublishedAt time.Time      `json:"publishedAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	Content     []ContentBlock `json:"content"`
}

// ArticleSummary is the list form of an article, without content.
type ArticleSummary struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author,omitempty"`
	Genre       string    `json:"genre,omitempty"`
	CoverImage  string    `json:"coverImage,omitempty"`
	PublishedAt time.Time `json:"publishedAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	WordCount   int       `json:"wordCount"`
}

// SourceText concatenates the paragraph blocks, in order, separated by a
// blank line. Other block types are not part of the book text.
func (a *Article) SourceText() string {
	var parts []string
	for _, block := range a.Content {
		if block.Type != BlockParagraph {
			continue
		}
		if text := strings.TrimSpace(block.Content); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, sourceSeparator)
}

// WordCount counts whitespace-separated words across the paragraph blocks.
func (a *Article) WordCount() int {
	return len(strings.Fields(a.SourceText()))
}

// ReadingTime estimates the time needed to read the book text.
func (a *Article) ReadingTime() time.Duration {
	return duration.ReadingTime(a.WordCount())
}

// Summary returns the list form of the article.
func (a *Article) Summary() ArticleSummary {
	return ArticleSummary{
		ID:          a.ID,
		Title:       a.Title,
		Author:      a.Author,
		Genre:       a.Genre,
		CoverImage:  a.CoverImage,
		PublishedAt: a.PublishedAt,
		UpdatedAt:   a.UpdatedAt,
		WordCount:   a.WordCount(),
	}
}

// Validate checks the fields required to store an article.
func (a *Article) Validate() error {
	if strings.TrimSpace(a.ID) == "" {
		return &coreerrors.ValidationError{Field: "id", Message: "id is required"}
	}
	if strings.TrimSpace(a.Title) == "" {
		return &coreerrors.ValidationError{Field: "title", Message: "title is required"}
	}
	for i, block := range a.Content {
		if !blockTypes[block.Type] {
			return &coreerrors.ValidationError{
				Field:   "content",
				Message: fmt.Sprintf("unknown block type %q at index %d", block.Type, i),
			}
		}
	}
	return nil
}

// ArticlePage is one page of article summaries.
type ArticlePage struct {
	Articles   []ArticleSummary `json:"articles"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	PerPage    int              `json:"perPage"`
	TotalPages int              `json:"totalPages"`
}
