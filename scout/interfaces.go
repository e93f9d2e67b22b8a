package scout

import (
	"context"

	"github.com/doniyor117/AdvoAi/core"
)

// SearchProvider finds candidate documents for a query.
type SearchProvider interface {
	// Search returns up to maxResults hits for the query.
	Search(ctx context.Context, query string, maxResults int) ([]core.CandidateDocument, error)
}

// Scraper fetches raw page content for a URL.
type Scraper interface {
	// Fetch returns the raw HTML of the page, following redirects.
	Fetch(ctx context.Context, url string) (string, error)
}
