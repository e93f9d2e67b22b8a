package scout

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultScrapeTimeout = 30 * time.Second
	defaultUserAgent     = "AdvoAi/1.0 (+https://github.com/doniyor117/AdvoAi)"

	// maxResponseBytes bounds how much of a page is read.
	maxResponseBytes = 4 << 20
)

// HTTPScraper fetches pages over HTTP with a bounded timeout.
// Redirects are followed by the underlying client.
type HTTPScraper struct {
	client    *http.Client
	userAgent string
}

var _ Scraper = (*HTTPScraper)(nil)

// ScraperOption configures an HTTPScraper.
type ScraperOption func(*HTTPScraper)

// WithScrapeTimeout sets the per-request timeout.
// Default is 30 seconds.
func WithScrapeTimeout(timeout time.Duration) ScraperOption {
	return func(s *HTTPScraper) {
		s.client.Timeout = timeout
	}
}

// WithHTTPClient replaces the HTTP client, mainly for tests.
func WithHTTPClient(client *http.Client) ScraperOption {
	return func(s *HTTPScraper) {
		s.client = client
	}
}

// NewHTTPScraper creates a scraper with default settings.
func NewHTTPScraper(opts ...ScraperOption) *HTTPScraper {
	s := &HTTPScraper{
		client:    &http.Client{Timeout: defaultScrapeTimeout},
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Fetch returns the raw HTML of the page at url.
func (s *HTTPScraper) Fetch(ctx context.Context, url string) (string, error) {
	if url == "" {
		return "", fmt.Errorf("empty url")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("fetching %s: status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", url, err)
	}

	return string(body), nil
}
