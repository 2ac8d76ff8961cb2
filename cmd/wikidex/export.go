package main

import (
	"fmt"

	"github.com/wikidex/wikidex"
	"github.com/wikidex/wikidex/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	recs, err := deps.Records.FindRecords(deps.Ctx, wikidex.RecordFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikidex.ErrorMessage(err))
		return err
	}

	if err := fs.NewWriter(c.Out).WriteRecords(deps.Ctx, recs); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Wrote %d records to %s\n", len(recs), c.Out)
	return nil
}
