package main

import (
	"fmt"

	"github.com/wikidex/wikidex"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := wikidex.RecordFilter{SortBy: wikidex.SortByTitle}
	if c.Title != "" {
		filter.Title = &c.Title
	}

	recs, err := deps.Records.FindRecords(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikidex.ErrorMessage(err))
		return err
	}

	if len(recs) == 0 {
		fmt.Fprintln(deps.Stdout, "No records found. Use 'wikidex parse' or 'wikidex scrape' to load a wiki.")
		return nil
	}

	for _, rec := range recs {
		fmt.Fprintf(deps.Stdout, "%d  %s  %s\n", rec.PageID, rec.Title, rec.URL)
		if c.Full {
			fmt.Fprintln(deps.Stdout, rec.Content)
			fmt.Fprintln(deps.Stdout)
		}
	}

	return nil
}
