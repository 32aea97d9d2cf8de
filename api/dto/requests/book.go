// ABOUTME: Request DTOs for render, paginate and book endpoints
// ABOUTME: Validation limits live in the struct tags so Huma enforces them

package requests

// RenderRequest carries markdown to render
type RenderRequest struct {
	Content string `json:"content" maxLength:"1000000" doc:"Markdown text to render"`
}

// PaginateRequest carries book text to split into pages
type PaginateRequest struct {
	Content  string `json:"content" maxLength:"1000000" doc:"Book text to paginate"`
	MaxChars int    `json:"maxChars,omitempty" minimum:"0" maximum:"100000" doc:"Maximum characters per page (0 uses the server default)"`
}

// BookRequest opens an unsaved article as a book
type BookRequest struct {
	Article  ArticleRequest `json:"article" doc:"Article to lay out"`
	Spread   int            `json:"spread,omitempty" minimum:"0" doc:"Spread to render; 0 is the cover"`
	MaxChars int            `json:"maxChars,omitempty" minimum:"0" maximum:"100000" doc:"Maximum characters per page (0 uses the server default)"`
}
