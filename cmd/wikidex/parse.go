package main

import (
	"fmt"
	"os"

	"github.com/wikidex/wikidex"
	"github.com/wikidex/wikidex/fs"
	"github.com/wikidex/wikidex/sqldump"
	"github.com/wikidex/wikidex/wikitext"
)

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.Dump)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	parser := &sqldump.Parser{BaseURL: c.BaseURL}
	recs, stats := parser.Parse(string(data))

	if c.Plain {
		renderPlain(recs)
	}

	if err := deps.Records.ReplaceRecords(deps.Ctx, recs); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikidex.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Found %d pages, %d revisions, %d texts\n",
		stats.Pages, stats.Revisions, stats.Texts)
	fmt.Fprintf(deps.Stdout, "Stored %d records%s\n", len(recs), tokenSummary(deps, recs))

	if c.Out != "" {
		if err := fs.NewWriter(c.Out).WriteRecords(deps.Ctx, recs); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %v\n", err)
			return err
		}
		fmt.Fprintf(deps.Stdout, "Wrote %s\n", c.Out)
	}

	return nil
}

// renderPlain converts each record's wikitext content to plain text.
func renderPlain(recs []*wikidex.Record) {
	r := wikitext.NewRenderer()
	for _, rec := range recs {
		rec.Content = r.Render(rec.Title, rec.Content)
	}
}

// tokenSummary formats an approximate token count for the stored
// content, or an empty string when no token counter is available.
func tokenSummary(deps *Dependencies, recs []*wikidex.Record) string {
	if deps.TokenCounter == nil {
		return ""
	}
	total, err := deps.TokenCounter.CountRecordTokens(deps.Ctx, recs)
	if err != nil {
		return ""
	}
	return fmt.Sprintf(" (~%d tokens)", total)
}
