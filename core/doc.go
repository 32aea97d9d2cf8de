// Package core contains the business logic for the Pamphlets API.
// It is framework-agnostic and can be used without the HTTP layer.
//
// The core package is organized into several sub-packages:
//
// - blocks: Splits text into blank-line separated blocks
// - markdown: Renders blocks and inline spans into display nodes
// - paginate: Splits text into pages and lays pages out as spreads
// - domain: Pure domain models (Article, BookView)
// - book: Pagination and rendering of articles as books
// - articles: Article storage and listing
// - importer: Turns web pages into articles
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger, storage)
//
// # Usage Example
//
//	import (
//	    "pamphlets-api/core/book"
//	    "pamphlets-api/core/interfaces"
//	)
//
//	deps := interfaces.Dependencies{
//	    Cache:  myCache,  // implements interfaces.Cache
//	    Logger: myLogger, // implements interfaces.Logger
//	}
//
//	bookService, err := book.NewService(deps, book.Options{MaxChars: 1200})
//	view, err := bookService.OpenBook(ctx, article, 0, 0)
package core
