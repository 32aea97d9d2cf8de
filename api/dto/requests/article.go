// ABOUTME: Request DTOs for article storage and import endpoints
// ABOUTME: Articles arrive as typed content blocks, imports as a list of URLs

package requests

import "time"

// ContentBlockRequest is one block of article content
type ContentBlockRequest struct {
	Type    string `json:"type" enum:"paragraph,heading,image,quote,code" doc:"Block type; only paragraphs form the book text"`
	Content string `json:"content,omitempty" doc:"Block text"`
	URL     string `json:"url,omitempty" doc:"Image URL for image blocks"`
	Caption string `json:"caption,omitempty" doc:"Image caption"`
}

// ArticleRequest is the writable part of an article
type ArticleRequest struct {
	Title       string                `json:"title" minLength:"1" maxLength:"500" doc:"Article title"`
	Author      string                `json:"author,omitempty" doc:"Author name"`
	Genre       string                `json:"genre,omitempty" doc:"Genre shown on the cover"`
	CoverImage  string                `json:"coverImage,omitempty" doc:"Cover image URL"`
	SourceURL   string                `json:"sourceUrl,omitempty" doc:"Where the article came from"`
	PublishedAt *time.Time            `json:"publishedAt,omitempty" doc:"Publication time"`
	Content     []ContentBlockRequest `json:"content" maxItems:"10000" doc:"Ordered content blocks"`
}

// ImportRequest lists pages to import as articles
type ImportRequest struct {
	URLs []string `json:"urls" minItems:"1" maxItems:"100" doc:"Web pages to import"`
}
