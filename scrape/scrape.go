// Package scrape provides wiki scraping orchestration.
// It coordinates page listing, fetching, extraction, and storage of
// wiki pages fetched over the MediaWiki web API.
package scrape

import (
	"context"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/wikidex/wikidex"
	"github.com/wikidex/wikidex/bloom"
	"golang.org/x/sync/errgroup"
)

// Defaults chosen to stay polite toward small self-hosted wikis.
const (
	DefaultConcurrency   = 10
	DefaultBatchSize     = 50
	DefaultBatchPause    = 1 * time.Second
	DefaultMinContentLen = 50
)

// Bloom filter sizing for title deduplication.
const (
	expectedTitles    = 10000
	falsePositiveRate = 0.01
)

// Scraper orchestrates a full scrape of a wiki.
type Scraper struct {
	Pages       wikidex.PageLister
	Fetcher     wikidex.PageFetcher
	Extractor   wikidex.Extractor
	Converter   wikidex.Converter // optional; when set, content is Markdown converted from the page HTML
	Records     wikidex.RecordService
	RateLimiter wikidex.DomainLimiter
	BaseURL     string

	Concurrency   int
	BatchSize     int
	BatchPause    time.Duration
	MinContentLen int
	RetryDelays   []time.Duration
}

// Result holds the outcome of a scrape operation.
type Result struct {
	Saved   int
	Skipped int
	Failed  int
	Bytes   int
}

// ProgressEvent reports progress during a scrape operation.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Title     string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressSkipped
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting scrape progress.
type ProgressFunc func(event ProgressEvent)

// pageResult holds the outcome of processing a single page.
type pageResult struct {
	position int
	page     wikidex.PageRef
	content  string
	skipped  bool
	err      error
}

// ScrapeAll fetches every listed page and replaces the stored record
// set with the results. The progress callback, if provided, receives
// events as scraping proceeds.
func (s *Scraper) ScrapeAll(ctx context.Context, progress ProgressFunc) (*Result, error) {
	pages, err := s.Pages.ListPages(ctx)
	if err != nil {
		return nil, err
	}

	// Deduplicate titles; continuation listings can repeat a page.
	seen := bloom.NewFilter(expectedTitles, falsePositiveRate)
	unique := pages[:0]
	for _, p := range pages {
		if seen.Test(p.Title) {
			continue
		}
		seen.Add(p.Title)
		unique = append(unique, p)
	}
	pages = unique

	total := len(pages)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	batchSize := s.BatchSize
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	pause := s.BatchPause
	if pause <= 0 {
		pause = DefaultBatchPause
	}

	var completed atomic.Int64
	results := make([]pageResult, total)

	for start := 0; start < total; start += batchSize {
		end := min(start+batchSize, total)
		batch := pages[start:end]

		resultCh := make(chan pageResult, len(batch))

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(concurrency)

		go func(offset int) {
			for i, page := range batch {
				i, page := i, page
				g.Go(func() error {
					resultCh <- s.scrapePage(gctx, offset+i, page)
					return nil
				})
			}
			_ = g.Wait()
			close(resultCh)
		}(start)

		for result := range resultCh {
			completed.Add(1)
			results[result.position] = result

			if progress == nil {
				continue
			}
			event := ProgressEvent{
				Completed: int(completed.Load()),
				Total:     total,
				Title:     result.page.Title,
			}
			switch {
			case result.err != nil:
				event.Type = ProgressFailed
				event.Error = result.err
			case result.skipped:
				event.Type = ProgressSkipped
			default:
				event.Type = ProgressCompleted
			}
			progress(event)
		}

		if err := ctx.Err(); err != nil {
			return nil, err
		}

		// Pause between batches to spread load on the wiki.
		if end < total {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(pause):
			}
		}
	}

	var out Result
	recs := make([]*wikidex.Record, 0, total)
	for _, result := range results {
		switch {
		case result.err != nil:
			out.Failed++
		case result.skipped:
			out.Skipped++
		default:
			recs = append(recs, &wikidex.Record{
				PageID:  result.page.PageID,
				Title:   result.page.Title,
				Content: result.content,
				URL:     pageURL(s.BaseURL, result.page.Title),
			})
			out.Saved++
			out.Bytes += len(result.content)
		}
	}

	if err := s.Records.ReplaceRecords(ctx, recs); err != nil {
		return nil, err
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return &out, nil
}

// scrapePage fetches and processes a single page.
func (s *Scraper) scrapePage(ctx context.Context, position int, page wikidex.PageRef) pageResult {
	result := pageResult{position: position, page: page}

	if s.RateLimiter != nil {
		if err := s.RateLimiter.Wait(ctx, hostOf(s.BaseURL)); err != nil {
			result.err = err
			return result
		}
	}

	delays := s.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	html, err := FetchWithRetryDelays(ctx, page.Title, s.Fetcher.FetchPage, nil, delays)
	if err != nil {
		result.err = err
		return result
	}

	var content string
	if s.Converter != nil {
		content, err = s.Converter.Convert(html)
	} else {
		var extracted *wikidex.ExtractResult
		extracted, err = s.Extractor.Extract(html)
		if err == nil {
			content = extracted.Text
		}
	}
	if err != nil {
		result.err = err
		return result
	}

	content = strings.TrimSpace(content)

	minLen := s.MinContentLen
	if minLen <= 0 {
		minLen = DefaultMinContentLen
	}
	if len(content) < minLen {
		result.skipped = true
		return result
	}

	result.content = content
	return result
}

func pageURL(baseURL, title string) string {
	return strings.TrimSuffix(baseURL, "/") + "/" + strings.ReplaceAll(title, " ", "_")
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	return u.Host
}
