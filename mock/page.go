package mock

import (
	"context"

	"github.com/Bluscream/acedocs"
)

var _ acedocs.PageSource = (*PageSource)(nil)

// PageSource is a mock implementation of acedocs.PageSource.
type PageSource struct {
	ReadPageFn  func(ctx context.Context, path string) (*acedocs.Page, error)
	ListPagesFn func(ctx context.Context, dir string, ext string) ([]string, error)
}

func (s *PageSource) ReadPage(ctx context.Context, path string) (*acedocs.Page, error) {
	return s.ReadPageFn(ctx, path)
}

func (s *PageSource) ListPages(ctx context.Context, dir string, ext string) ([]string, error) {
	return s.ListPagesFn(ctx, dir, ext)
}

var _ acedocs.PageParser = (*PageParser)(nil)

// PageParser is a mock implementation of acedocs.PageParser.
type PageParser struct {
	ParseFn func(ctx context.Context, page *acedocs.Page) ([]*acedocs.Entry, error)
}

func (p *PageParser) Parse(ctx context.Context, page *acedocs.Page) ([]*acedocs.Entry, error) {
	return p.ParseFn(ctx, page)
}

var _ acedocs.ParserFactory = (*ParserFactory)(nil)

// ParserFactory is a mock implementation of acedocs.ParserFactory.
type ParserFactory struct {
	ParserForFn func(step acedocs.PlanStep) (acedocs.PageParser, error)
}

func (f *ParserFactory) ParserFor(step acedocs.PlanStep) (acedocs.PageParser, error) {
	return f.ParserForFn(step)
}
