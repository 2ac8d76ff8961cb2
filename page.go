package wikidex

import "context"

// PageRef identifies a wiki page known to the remote API.
type PageRef struct {
	PageID int
	Title  string
}

// PageLister enumerates all content pages of a wiki.
// Implementations hide API pagination.
type PageLister interface {
	ListPages(ctx context.Context) ([]PageRef, error)
}

// PageFetcher retrieves the rendered HTML of a single wiki page.
type PageFetcher interface {
	FetchPage(ctx context.Context, title string) (string, error)
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
