package main

import (
	"context"
	"io"

	"github.com/Bluscream/acedocs"
	"github.com/Bluscream/acedocs/build"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
	Plan     *acedocs.Plan
	Records  acedocs.RecordService
	Renderer acedocs.Renderer
	Builder  *build.Builder
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool   `short:"v" help:"Log service calls to stderr"`
	Plan    string `type:"path" env:"ACEDOCS_PLAN" help:"Build plan YAML file (defaults to the built-in AutoHotkey v2 plan)"`

	Build  BuildCmd  `cmd:"" help:"Download the documentation and rebuild the index"`
	Show   ShowCmd   `cmd:"" help:"Show the entry for a name"`
	Search SearchCmd `cmd:"" help:"List entries whose names contain a query"`
	Render RenderCmd `cmd:"" help:"Render an HTML fragment within a length budget"`
}

// BuildCmd is the "build" subcommand.
type BuildCmd struct {
	NoFetch     bool `name:"no-fetch" help:"Reuse the previously downloaded documentation"`
	Concurrency int  `short:"c" default:"8" help:"Concurrent page parsing limit"`
}

// RenderFlags are the budgeted renderer options shared by commands that
// render documentation.
type RenderFlags struct {
	MaxLength int    `name:"max-length" short:"m" default:"2000" help:"Maximum output length in characters"`
	BaseURL   string `name:"base-url" help:"Base URL for relative links"`
	Lang      string `help:"Language tag for fenced code blocks"`
	BigBox    bool   `name:"big-box" help:"Render code as fenced blocks"`
	Escape    bool   `help:"Escape chat markdown in text"`
}

// Options converts the flags into renderer options.
func (f *RenderFlags) Options() acedocs.RenderOptions {
	opts := acedocs.RenderOptions{
		MaxLength:    f.MaxLength,
		BaseURL:      f.BaseURL,
		CodeLanguage: f.Lang,
		BigBox:       f.BigBox,
	}
	if f.Escape {
		opts.Escaper = acedocs.EscapeMarkdown
	}
	return opts
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Name string `arg:"" help:"Entry name (case-insensitive)"`
	Raw  bool   `help:"Print the stored markdown instead of rendering the description"`

	RenderFlags `embed:""`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query string `arg:"" help:"Substring of an entry name"`
	Page  string `help:"Only list entries of this page"`
	Limit int    `short:"n" default:"20" help:"Maximum number of entries"`
}

// RenderCmd is the "render" subcommand.
type RenderCmd struct {
	File string `arg:"" optional:"" type:"existingfile" help:"HTML file to render (reads stdin when omitted)"`

	RenderFlags `embed:""`
}
