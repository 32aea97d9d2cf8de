// ABOUTME: net/http client used by the importer to fetch article pages
// ABOUTME: Retries transport failures and 5xx responses with exponential backoff

package standard

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"pamphlets-api/core/interfaces"
)

const (
	defaultRetries = 3
	userAgent      = "PamphletsImporter/1.0 (+https://pamphlets.app)"
	acceptHTML     = "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8"
)

// Client implements interfaces.HTTPClient on net/http.
type Client struct {
	client  *http.Client
	retries int
	backoff time.Duration
}

// NewClient creates a client with the given per-request timeout.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		client:  &http.Client{Timeout: timeout},
		retries: defaultRetries,
		backoff: 100 * time.Millisecond,
	}
}

// Get fetches url. Server errors are retried; the last response is returned
// even when it is still a 5xx so the caller can report the status.
func (c *Client) Get(ctx context.Context, url string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", acceptHTML)

	var lastErr error
	for attempt := 0; attempt < c.retries; attempt++ {
		if attempt > 0 {
			// 100ms, 200ms, 400ms...
			wait := c.backoff * time.Duration(1<<(attempt-1))
			select {
			case <-time.After(wait):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		resp, err := c.client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}
		if resp.StatusCode < 500 || attempt == c.retries-1 {
			return &httpResponse{resp: resp}, nil
		}

		resp.Body.Close()
		lastErr = fmt.Errorf("server returned %d", resp.StatusCode)
	}

	return nil, lastErr
}

type httpResponse struct {
	resp *http.Response
}

func (r *httpResponse) StatusCode() int {
	return r.resp.StatusCode
}

func (r *httpResponse) Body() io.ReadCloser {
	return r.resp.Body
}

func (r *httpResponse) Header(key string) string {
	return r.resp.Header.Get(key)
}

func (r *httpResponse) URL() string {
	if r.resp.Request != nil && r.resp.Request.URL != nil {
		return r.resp.Request.URL.String()
	}
	return ""
}
