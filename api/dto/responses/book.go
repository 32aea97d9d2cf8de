// ABOUTME: Response DTOs for render, paginate, book and embed endpoints
// ABOUTME: Node trees come straight from the markdown renderer

package responses

import (
	"pamphlets-api/core/domain"
	"pamphlets-api/core/markdown"
)

// RenderResponse is a rendered block tree
type RenderResponse struct {
	Nodes []markdown.Node `json:"nodes" doc:"Rendered display nodes"`
}

// InlineResponse is a rendered inline run list
type InlineResponse struct {
	Runs []markdown.Run `json:"runs" doc:"Rendered inline runs"`
}

// PaginateResponse lists the pages of a text
type PaginateResponse struct {
	Pages     []string `json:"pages" doc:"Page texts in reading order"`
	PageCount int      `json:"pageCount" doc:"Number of pages"`
	MaxChars  int      `json:"maxChars" doc:"Page size used"`
}

// BookResponse is one spread of a book
type BookResponse struct {
	domain.BookView
}

// YouTubeResponse describes a recognized YouTube link
type YouTubeResponse struct {
	VideoID  string `json:"videoId" doc:"11-character video ID"`
	WatchURL string `json:"watchUrl" doc:"Canonical watch URL"`
	EmbedURL string `json:"embedUrl" doc:"URL for an embedded player"`
}
