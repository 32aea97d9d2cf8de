// ABOUTME: Dependencies container handed to the core services
// ABOUTME: Lets cmd/api and the embeddable client wire infrastructure in one place

package interfaces

// Dependencies holds the external dependencies required by the core services.
type Dependencies struct {
	// Cache memoizes paginated pages
	Cache Cache

	// HTTPClient fetches pages for import
	HTTPClient HTTPClient

	// Logger provides structured logging
	Logger Logger

	// Storage persists articles
	Storage ArticleStorage
}
