package main

import (
	"fmt"
	"os"

	"github.com/wikidex/wikidex"
	"github.com/wikidex/wikidex/mediawiki"
)

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	f, err := os.Open(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	defer f.Close()

	recs, err := mediawiki.ParseExport(f, c.BaseURL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikidex.ErrorMessage(err))
		return err
	}

	if c.Plain {
		renderPlain(recs)
	}

	if err := deps.Records.ReplaceRecords(deps.Ctx, recs); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikidex.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Imported %d records%s\n", len(recs), tokenSummary(deps, recs))
	return nil
}
