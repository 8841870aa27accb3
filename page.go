package acedocs

import "context"

// Page is a documentation file loaded for parsing.
type Page struct {
	Path string // Relative to the docs folder, e.g. "lib/Gui.htm"
	URL  string
	Body string
}

// PageSource reads documentation files from the extracted docs folder.
type PageSource interface {
	// ReadPage returns the file at the relative path.
	// Returns ENOTFOUND if the file does not exist.
	ReadPage(ctx context.Context, path string) (*Page, error)

	// ListPages returns the relative paths of files directly inside dir
	// whose name ends in ext, sorted by name.
	ListPages(ctx context.Context, dir string, ext string) ([]string, error)
}

// PageParser extracts entries from one page.
type PageParser interface {
	Parse(ctx context.Context, page *Page) ([]*Entry, error)
}

// ParserFactory builds the parser for a build plan step.
type ParserFactory interface {
	ParserFor(step PlanStep) (PageParser, error)
}

// Workspace holds extracted documentation with atomic replace semantics.
// Archives are extracted into StagingDir; Commit makes them the content of
// Dir; Abort discards the staging directory.
type Workspace interface {
	StagingDir() string
	Dir() string
	Commit() error
	Abort() error
}
