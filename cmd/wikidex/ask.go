package main

import (
	"fmt"

	"github.com/wikidex/wikidex"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	answer, err := deps.Asker.Ask(deps.Ctx, c.Question)
	if err != nil {
		if wikidex.ErrorCode(err) == wikidex.ENOTFOUND {
			fmt.Fprintln(deps.Stderr, "error: no records stored. Use 'wikidex parse' or 'wikidex scrape' first.")
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikidex.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, answer)
	return nil
}
