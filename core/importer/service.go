// ABOUTME: Importer that turns a web article into a stored pamphlet
// ABOUTME: Fetches the page, extracts it with go-readability and converts it to markdown paragraphs

package importer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
	"github.com/google/uuid"

	"pamphlets-api/core/blocks"
	"pamphlets-api/core/domain"
	coreerrors "pamphlets-api/core/errors"
	"pamphlets-api/core/interfaces"
	"pamphlets-api/pkg/featureflags"
	htmlutil "pamphlets-api/pkg/utils/html"
	timeutil "pamphlets-api/pkg/utils/time"
)

const (
	maxBodyBytes       = 5 << 20
	defaultConcurrency = 4
)

// Options tunes the importer
type Options struct {
	// Concurrency bounds parallel fetches in ImportBatch
	Concurrency int
}

// Service implements interfaces.Importer
type Service struct {
	deps        interfaces.Dependencies
	concurrency int
	newID       func() string
	converter   *md.Converter
}

// NewService creates an importer; deps.HTTPClient is required.
func NewService(deps interfaces.Dependencies, opts Options) *Service {
	if opts.Concurrency <= 0 {
		opts.Concurrency = defaultConcurrency
	}
	return &Service{
		deps:        deps,
		concurrency: opts.Concurrency,
		newID:       uuid.NewString,
		converter:   md.NewConverter("", true, nil),
	}
}

// Import fetches rawURL and converts its main content into an article.
// The article is not stored.
func (s *Service) Import(ctx context.Context, rawURL string) (*domain.Article, error) {
	if !featureflags.IsEnabled(ctx, featureflags.ImportEnabled) {
		return nil, &coreerrors.DisabledError{Feature: string(featureflags.ImportEnabled)}
	}

	pageURL, err := validateURL(rawURL)
	if err != nil {
		return nil, err
	}

	body, finalURL, err := s.fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	parsed, err := readability.FromReader(bytes.NewReader(body), finalURL)
	if err != nil {
		return nil, &coreerrors.ValidationError{Field: "url", Message: "page has no readable content: " + err.Error()}
	}

	markdown, err := s.converter.ConvertString(parsed.Content)
	if err != nil {
		return nil, coreerrors.WrapError(err, "failed to convert article to markdown")
	}

	content := paragraphBlocks(cleanMarkdown(markdown))
	if len(content) == 0 {
		return nil, &coreerrors.ValidationError{Field: "url", Message: "page has no readable content"}
	}

	meta := readMeta(body)
	article := &domain.Article{
		ID:          s.newID(),
		Title:       htmlutil.StripHTML(firstNonEmpty(parsed.Title, meta.title, finalURL.Host)),
		Author:      htmlutil.StripHTML(firstNonEmpty(parsed.Byline, meta.author)),
		Genre:       meta.section,
		CoverImage:  firstNonEmpty(parsed.Image, meta.image),
		SourceURL:   finalURL.String(),
		PublishedAt: publishedAt(parsed, meta),
		Content:     content,
	}

	s.deps.Logger.Info("Imported article", map[string]interface{}{
		"url":        article.SourceURL,
		"article_id": article.ID,
		"blocks":     len(content),
	})
	return article, nil
}

// ImportBatch imports urls concurrently. Results keep the input order.
func (s *Service) ImportBatch(ctx context.Context, urls []string) []interfaces.ImportResult {
	results := make([]interfaces.ImportResult, len(urls))
	sem := make(chan struct{}, s.concurrency)
	var wg sync.WaitGroup

	for i, u := range urls {
		wg.Add(1)
		go func(index int, u string) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[index] = interfaces.ImportResult{URL: u, Err: ctx.Err()}
				return
			}

			article, err := s.Import(ctx, u)
			if err != nil {
				s.deps.Logger.Warn("Import failed", map[string]interface{}{
					"url":   u,
					"error": err.Error(),
				})
			}
			results[index] = interfaces.ImportResult{URL: u, Article: article, Err: err}
		}(i, u)
	}

	wg.Wait()
	return results
}

func (s *Service) fetch(ctx context.Context, pageURL *url.URL) ([]byte, *url.URL, error) {
	resp, err := s.deps.HTTPClient.Get(ctx, pageURL.String())
	if err != nil {
		return nil, nil, &coreerrors.ExternalAPIError{
			StatusCode: http.StatusBadGateway,
			Message:    err.Error(),
			API:        pageURL.Host,
		}
	}
	defer resp.Body().Close()

	if resp.StatusCode() >= 400 {
		return nil, nil, &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    http.StatusText(resp.StatusCode()),
			API:        pageURL.Host,
		}
	}

	if ct := resp.Header("Content-Type"); ct != "" && !strings.Contains(ct, "html") {
		return nil, nil, &coreerrors.ValidationError{Field: "url", Message: "unsupported content type " + ct}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body(), maxBodyBytes))
	if err != nil {
		return nil, nil, coreerrors.WrapError(err, "failed to read page")
	}

	finalURL := pageURL
	if u, err := url.Parse(resp.URL()); err == nil && u.Host != "" {
		finalURL = u
	}
	return body, finalURL, nil
}

func validateURL(rawURL string) (*url.URL, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, &coreerrors.ValidationError{Field: "url", Message: "url is required"}
	}
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, &coreerrors.ValidationError{Field: "url", Message: fmt.Sprintf("invalid URL %q", rawURL)}
	}
	return u, nil
}

// paragraphBlocks stores each markdown block as a paragraph so headings,
// lists and images reach the book renderer unchanged.
func paragraphBlocks(markdown string) []domain.ContentBlock {
	var content []domain.ContentBlock
	for _, block := range blocks.Split(markdown) {
		content = append(content, domain.ContentBlock{Type: domain.BlockParagraph, Content: block})
	}
	return content
}

type pageMeta struct {
	title     string
	author    string
	section   string
	image     string
	published string
}

func readMeta(body []byte) pageMeta {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return pageMeta{}
	}

	content := func(selectors ...string) string {
		for _, sel := range selectors {
			if v, ok := doc.Find(sel).First().Attr("content"); ok && strings.TrimSpace(v) != "" {
				return strings.TrimSpace(v)
			}
		}
		return ""
	}

	return pageMeta{
		title:     content(`meta[property="og:title"]`, `meta[name="twitter:title"]`),
		author:    content(`meta[name="author"]`, `meta[property="article:author"]`),
		section:   content(`meta[property="article:section"]`),
		image:     content(`meta[property="og:image"]`, `meta[name="twitter:image"]`),
		published: content(`meta[property="article:published_time"]`, `meta[name="date"]`, `meta[itemprop="datePublished"]`),
	}
}

func publishedAt(parsed readability.Article, meta pageMeta) time.Time {
	if parsed.PublishedTime != nil && !parsed.PublishedTime.IsZero() {
		return parsed.PublishedTime.UTC()
	}
	return timeutil.ParseWithDefault(meta.published, time.Time{}).UTC()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
