package main

import (
	"fmt"

	"github.com/Bluscream/acedocs"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	filter := acedocs.RecordFilter{Query: &c.Query, Limit: c.Limit}
	if c.Page != "" {
		filter.Page = &c.Page
	}

	records, err := deps.Records.FindRecords(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", acedocs.ErrorMessage(err))
		return err
	}

	if len(records) == 0 {
		fmt.Fprintf(deps.Stdout, "No entries match %q. Run 'acedocs build' if the index is empty.\n", c.Query)
		return nil
	}

	fmt.Fprintln(deps.Stdout, acedocs.FormatRecords(records))
	return nil
}
