package interfaces

import (
	"context"
	"io"
)

// HTTPClient fetches remote pages for the importer.
type HTTPClient interface {
	// Get performs a GET request. Transport failures are errors; HTTP error
	// statuses are returned as a Response.
	Get(ctx context.Context, url string) (Response, error)
}

// Response is the part of an HTTP response the importer reads.
type Response interface {
	StatusCode() int

	// Body must be closed by the caller.
	Body() io.ReadCloser

	// Header returns the named header, or "" when absent.
	Header(key string) string

	// URL is the final URL after redirects.
	URL() string
}