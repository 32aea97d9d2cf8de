// ABOUTME: Book view models returned when an article is opened as a book
// ABOUTME: A view holds one spread of rendered pages plus article metadata

package domain

import (
	"pamphlets-api/core/markdown"
	"pamphlets-api/core/paginate"
)

// RenderedPage is a page of book text and its display nodes.
type RenderedPage struct {
	Number int             `json:"number"`
	Text   string          `json:"text"`
	Nodes  []markdown.Node `json:"nodes"`
}

// BookMeta is the article metadata shown on the cover.
type BookMeta struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Author      string `json:"author,omitempty"`
	Genre       string `json:"genre,omitempty"`
	CoverImage  string `json:"coverImage,omitempty"`
	Published   string `json:"published,omitempty"`
	ReadingTime string `json:"readingTime"`
	WordCount   int    `json:"wordCount"`
}

// BookView is one spread of an article laid out as a book.
type BookView struct {
	Meta        BookMeta        `json:"meta"`
	Spread      paginate.Spread `json:"spread"`
	Pages       []RenderedPage  `json:"pages"`
	PageCount   int             `json:"pageCount"`
	SpreadCount int             `json:"spreadCount"`
	MaxChars    int             `json:"maxChars"`
	HasPrev     bool            `json:"hasPrev"`
	HasNext     bool            `json:"hasNext"`
}
