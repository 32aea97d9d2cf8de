// ABOUTME: Public types for the Pamphlets library API
// ABOUTME: Aliases of the domain and renderer models so callers need a single import

package pamphlets

import (
	"pamphlets-api/core/domain"
	"pamphlets-api/core/markdown"
	"pamphlets-api/core/paginate"
)

// Article is a stored pamphlet
type Article = domain.Article

// ContentBlock is one block of article content
type ContentBlock = domain.ContentBlock

// ArticlePage is one page of article summaries
type ArticlePage = domain.ArticlePage

// BookView is one rendered spread of an article
type BookView = domain.BookView

// Spread is a pair of facing pages
type Spread = paginate.Spread

// Node is a rendered display block
type Node = markdown.Node

// Run is a rendered inline span
type Run = markdown.Run

// Content block types
const (
	BlockParagraph = domain.BlockParagraph
	BlockHeading   = domain.BlockHeading
	BlockImage     = domain.BlockImage
	BlockQuote     = domain.BlockQuote
	BlockCode      = domain.BlockCode
)

// ImportResult is the outcome of importing one URL
type ImportResult struct {
	URL     string
	Article *Article
	Err     error
}
