package goquery

import (
	"context"
	"strings"

	"github.com/Bluscream/acedocs"
	"github.com/PuerkitoBio/goquery"
)

// Ensure TableParser implements acedocs.PageParser at compile time.
var _ acedocs.PageParser = (*TableParser)(nil)

// TableParser extracts one entry per table row carrying an id. The first
// cell holds the names, the last cell the description.
type TableParser struct {
	Converter acedocs.Converter
}

// NewTableParser creates a new TableParser.
func NewTableParser(conv acedocs.Converter) *TableParser {
	return &TableParser{Converter: conv}
}

// Parse returns the page's row entries in document order. Rows without
// cells are skipped.
func (p *TableParser) Parse(ctx context.Context, page *acedocs.Page) ([]*acedocs.Entry, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page.Body))
	if err != nil {
		return nil, acedocs.Errorf(acedocs.EINVALID, "failed to parse HTML: %v", err)
	}

	set := newEntrySet()
	var parseErr error
	doc.Find("tr[id]").EachWithBreak(func(_ int, tr *goquery.Selection) bool {
		if err := ctx.Err(); err != nil {
			parseErr = err
			return false
		}

		cells := tr.Find("td")
		if cells.Length() == 0 {
			return true
		}

		first := cells.First()
		version := StripVersion(first)
		name, names := SplitName(TagText(first))

		var content, cleaned, descVersion string
		if cells.Length() > 1 {
			// A row whose description fails to convert keeps no content.
			if markup, err := cells.Last().Html(); err == nil {
				content, cleaned, descVersion, _ = describe(p.Converter, markup, page.URL)
			}
		}
		if version == "" {
			version = descVersion
		}

		id, _ := tr.Attr("id")
		set.add(&acedocs.Entry{
			Name:         name,
			PrimaryNames: names,
			Page:         page.Path,
			Fragment:     id,
			Content:      content,
			HTML:         cleaned,
			Version:      version,
		})
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return set.entries, nil
}
