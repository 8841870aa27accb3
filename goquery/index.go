package goquery

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/Bluscream/acedocs"
	"github.com/PuerkitoBio/goquery"
)

// Ensure IndexParser implements acedocs.PageParser at compile time.
var _ acedocs.PageParser = (*IndexParser)(nil)

// IndexParser reads the documentation's name index, a JSON array of
// [name, page, ...] tuples optionally wrapped in a script assignment. Every
// tuple becomes an entry with secondary names only. Its description is the
// element with the page's anchor id, or the page's first paragraph.
type IndexParser struct {
	Converter acedocs.Converter
	Pages     acedocs.PageSource
}

// NewIndexParser creates a new IndexParser.
func NewIndexParser(conv acedocs.Converter, pages acedocs.PageSource) *IndexParser {
	return &IndexParser{Converter: conv, Pages: pages}
}

// Parse returns one entry per index tuple, in index order. Tuples whose page
// or anchor cannot be read or described produce no description; they never
// fail the parse.
func (p *IndexParser) Parse(ctx context.Context, page *acedocs.Page) ([]*acedocs.Entry, error) {
	tuples, err := ParseIndex(page.Body)
	if err != nil {
		return nil, err
	}

	docs := make(map[string]*pageDoc)
	entries := make([]*acedocs.Entry, 0, len(tuples))
	for _, tuple := range tuples {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		path, fragment, _ := strings.Cut(tuple.Page, "#")
		name, names := SplitName(acedocs.TreatName(tuple.Name))
		entry := &acedocs.Entry{
			Name:           name,
			SecondaryNames: names,
			Page:           path,
			Fragment:       fragment,
		}
		entries = append(entries, entry)

		doc := p.load(ctx, docs, path)
		if doc == nil {
			continue
		}

		target := doc.Find("p").First()
		if fragment != "" {
			target = doc.Find("[id]").FilterFunction(func(_ int, s *goquery.Selection) bool {
				id, _ := s.Attr("id")
				return id == fragment
			}).First()
		}
		if target.Length() == 0 {
			continue
		}

		markup, err := goquery.OuterHtml(target)
		if err != nil {
			continue
		}
		entry.Content, entry.HTML, entry.Version, _ = describe(p.Converter, markup, doc.url)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

type pageDoc struct {
	*goquery.Document
	url string
}

// load returns the parsed page at path, caching it in docs. Pages that
// cannot be read or parsed are cached as nil.
func (p *IndexParser) load(ctx context.Context, docs map[string]*pageDoc, path string) *pageDoc {
	if doc, ok := docs[path]; ok {
		return doc
	}
	docs[path] = nil

	page, err := p.Pages.ReadPage(ctx, path)
	if err != nil {
		return nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page.Body))
	if err != nil {
		return nil
	}
	docs[path] = &pageDoc{Document: doc, url: page.URL}
	return docs[path]
}

// IndexTuple is one row of the documentation name index.
type IndexTuple struct {
	Name string
	Page string
}

// ParseIndex decodes the name index. Text around the outermost JSON array
// is ignored; rows shorter than two strings are skipped.
func ParseIndex(body string) ([]IndexTuple, error) {
	start := strings.Index(body, "[")
	end := strings.LastIndex(body, "]")
	if start < 0 || end < start {
		return nil, acedocs.Errorf(acedocs.EINVALID, "name index contains no array")
	}

	var rows [][]any
	if err := json.Unmarshal([]byte(body[start:end+1]), &rows); err != nil {
		return nil, acedocs.Errorf(acedocs.EINVALID, "invalid name index: %v", err)
	}

	tuples := make([]IndexTuple, 0, len(rows))
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		name, ok1 := row[0].(string)
		page, ok2 := row[1].(string)
		if !ok1 || !ok2 || name == "" || page == "" {
			continue
		}
		tuples = append(tuples, IndexTuple{Name: name, Page: page})
	}
	return tuples, nil
}
