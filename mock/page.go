package mock

import (
	"context"

	"github.com/wikidex/wikidex"
)

var _ wikidex.PageLister = (*PageLister)(nil)

// PageLister is a mock implementation of wikidex.PageLister.
type PageLister struct {
	ListPagesFn func(ctx context.Context) ([]wikidex.PageRef, error)
}

func (l *PageLister) ListPages(ctx context.Context) ([]wikidex.PageRef, error) {
	return l.ListPagesFn(ctx)
}

var _ wikidex.PageFetcher = (*PageFetcher)(nil)

// PageFetcher is a mock implementation of wikidex.PageFetcher.
type PageFetcher struct {
	FetchPageFn func(ctx context.Context, title string) (string, error)
}

func (f *PageFetcher) FetchPage(ctx context.Context, title string) (string, error) {
	return f.FetchPageFn(ctx, title)
}

var _ wikidex.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of wikidex.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return d.WaitFn(ctx, domain)
}
