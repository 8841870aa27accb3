package main

import (
	"fmt"

	"github.com/Bluscream/acedocs"
	"github.com/Bluscream/acedocs/build"
)

// Run executes the build command.
func (c *BuildCmd) Run(deps *Dependencies) error {
	deps.Builder.Concurrency = c.Concurrency

	progress := func(status string) {
		fmt.Fprintln(deps.Stdout, status)
	}

	run := deps.Builder.Start(deps.Ctx, build.Options{Fetch: !c.NoFetch}, progress)
	result, err := run.Wait()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", acedocs.ErrorMessage(err))
		return err
	}

	if result.Failed > 0 {
		fmt.Fprintf(deps.Stderr, "warning: %d pages could not be parsed\n", result.Failed)
	}
	return nil
}
