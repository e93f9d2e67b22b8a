package scout

import (
	"context"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/doniyor117/AdvoAi/core"
)

const defaultSearchEndpoint = "https://html.duckduckgo.com/html/"

// Result markup of the DuckDuckGo HTML endpoint.
var (
	resultLink    = regexp.MustCompile(`(?is)<a[^>]*class="[^"]*result__a[^"]*"[^>]*href="([^"]+)"[^>]*>(.*?)</a>`)
	resultSnippet = regexp.MustCompile(`(?is)<a[^>]*class="[^"]*result__snippet[^"]*"[^>]*>(.*?)</a>`)
)

// DuckDuckGo searches the DuckDuckGo HTML endpoint, which needs no API key.
type DuckDuckGo struct {
	client   *http.Client
	endpoint string
}

var _ SearchProvider = (*DuckDuckGo)(nil)

// SearchOption configures a DuckDuckGo client.
type SearchOption func(*DuckDuckGo)

// WithSearchEndpoint overrides the search endpoint, mainly for tests.
func WithSearchEndpoint(endpoint string) SearchOption {
	return func(d *DuckDuckGo) {
		d.endpoint = endpoint
	}
}

// WithSearchClient replaces the HTTP client.
func WithSearchClient(client *http.Client) SearchOption {
	return func(d *DuckDuckGo) {
		d.client = client
	}
}

// NewDuckDuckGo creates a search client with default settings.
func NewDuckDuckGo(opts ...SearchOption) *DuckDuckGo {
	d := &DuckDuckGo{
		client:   &http.Client{Timeout: 20 * time.Second},
		endpoint: defaultSearchEndpoint,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Search returns up to maxResults hits for the query.
func (d *DuckDuckGo) Search(ctx context.Context, query string, maxResults int) ([]core.CandidateDocument, error) {
	endpoint := d.endpoint + "?q=" + url.QueryEscape(query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building search request: %w", err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("searching %q: %w", query, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("searching %q: status %d", query, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("reading search results: %w", err)
	}

	return parseResults(string(body), maxResults), nil
}

// parseResults extracts candidates from the HTML result page.
func parseResults(page string, maxResults int) []core.CandidateDocument {
	links := resultLink.FindAllStringSubmatch(page, -1)
	snippets := resultSnippet.FindAllStringSubmatch(page, -1)

	var candidates []core.CandidateDocument
	for i, link := range links {
		if maxResults > 0 && len(candidates) >= maxResults {
			break
		}

		target := resolveRedirect(html.UnescapeString(link[1]))
		if target == "" {
			continue
		}

		snippet := ""
		if i < len(snippets) {
			snippet = stripHTML(snippets[i][1])
		}

		candidates = append(candidates, core.CandidateDocument{
			URL:     target,
			Title:   stripHTML(link[2]),
			Snippet: snippet,
		})
	}

	return candidates
}

// resolveRedirect unwraps DuckDuckGo's /l/?uddg=<url> redirect links.
func resolveRedirect(href string) string {
	if strings.HasPrefix(href, "//") {
		href = "https:" + href
	}

	parsed, err := url.Parse(href)
	if err != nil {
		return ""
	}

	if uddg := parsed.Query().Get("uddg"); uddg != "" {
		return uddg
	}
	return href
}
