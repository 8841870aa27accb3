package main

import (
	"fmt"

	"github.com/Bluscream/acedocs"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	rec, err := deps.Records.FindRecordByName(deps.Ctx, c.Name)
	if acedocs.ErrorCode(err) == acedocs.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: no entry named %q. Use 'acedocs search' to look for similar names.\n", c.Name)
		return err
	} else if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", acedocs.ErrorMessage(err))
		return err
	}

	var body string
	if !c.Raw && rec.HTML != "" {
		opts := c.Options()
		if opts.BaseURL == "" {
			opts.BaseURL = deps.Plan.PageURL(rec.Page)
		}
		body = deps.Renderer.Render(rec.HTML, opts)
	}

	fmt.Fprintln(deps.Stdout, acedocs.FormatRecord(rec, body, deps.Plan.DocsURL))
	return nil
}
