package main

import (
	"fmt"
	"io"
	"os"
)

// Run executes the render command.
func (c *RenderCmd) Run(deps *Dependencies) error {
	var input []byte
	var err error
	if c.File != "" {
		input, err = os.ReadFile(c.File)
	} else {
		input, err = io.ReadAll(deps.Stdin)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	fmt.Fprintln(deps.Stdout, deps.Renderer.Render(string(input), c.Options()))
	return nil
}
