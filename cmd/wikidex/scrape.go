package main

import (
	"fmt"

	"github.com/wikidex/wikidex"
	"github.com/wikidex/wikidex/fs"
	"github.com/wikidex/wikidex/scrape"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	progress := func(event scrape.ProgressEvent) {
		switch event.Type {
		case scrape.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "  Found %d pages\n", event.Total)
		case scrape.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.Title, event.Error)
		}
	}

	result, err := deps.Scraper.ScrapeAll(deps.Ctx, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error scraping: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "  Saved %d pages (%s), skipped %d, failed %d\n",
		result.Saved, scrape.FormatBytes(result.Bytes), result.Skipped, result.Failed)

	if c.Out != "" {
		recs, err := deps.Records.FindRecords(deps.Ctx, wikidex.RecordFilter{})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", wikidex.ErrorMessage(err))
			return err
		}
		if err := fs.NewWriter(c.Out).WriteRecords(deps.Ctx, recs); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %v\n", err)
			return err
		}
		fmt.Fprintf(deps.Stdout, "  Wrote %s\n", c.Out)
	}

	return nil
}
