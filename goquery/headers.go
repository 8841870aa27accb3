package goquery

import (
	"context"
	"strings"

	"github.com/Bluscream/acedocs"
	"github.com/PuerkitoBio/goquery"
)

// Ensure HeadersParser implements acedocs.PageParser at compile time.
var _ acedocs.PageParser = (*HeadersParser)(nil)

// maxHeadingLevel is the deepest heading level tracked as an ancestor.
const maxHeadingLevel = 9

// HeadersParser extracts one entry per heading. The description is the
// markup following the heading up to the next block.
type HeadersParser struct {
	Converter acedocs.Converter

	// Ignore skips a heading. It defaults to false when nil or panicking.
	Ignore Predicate

	// NameCheck decides whether the bare heading name is kept. It defaults
	// to true when nil or panicking.
	NameCheck Predicate

	// Rules derive extra names. The first matching rule wins.
	Rules []PrefixRule

	// Prefix and Postfix add a decorated synonym for each name when set.
	Prefix  string
	Postfix string
}

// NewHeadersParser creates a HeadersParser with no heuristics.
func NewHeadersParser(conv acedocs.Converter) *HeadersParser {
	return &HeadersParser{Converter: conv}
}

// Parse returns the page's entries in document order. A heading sharing a
// fragment with an earlier one replaces it.
func (p *HeadersParser) Parse(ctx context.Context, page *acedocs.Page) ([]*acedocs.Entry, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page.Body))
	if err != nil {
		return nil, acedocs.Errorf(acedocs.EINVALID, "failed to parse HTML: %v", err)
	}

	set := newEntrySet()
	var parents [maxHeadingLevel + 1]*acedocs.Entry

	var parseErr error
	doc.Find("*").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if err := ctx.Err(); err != nil {
			parseErr = err
			return false
		}

		level := headingLevel(goquery.NodeName(sel))
		if level == 0 {
			return true
		}
		id, _ := sel.Attr("id")
		if strings.Contains(id, "toc") {
			return true
		}

		tagParents := parents[:level]
		h := heading(sel, level, tagParents)
		if evaluate(p.Ignore, h, false) {
			return true
		}
		version := StripVersion(sel)

		entry := p.entry(sel, h, version, page, tagParents)
		set.add(entry)

		parents[level] = entry
		clear(parents[level+1:])
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return set.entries, nil
}

// entry builds the entry for a heading. A description that fails to convert
// leaves the entry without content.
func (p *HeadersParser) entry(sel *goquery.Selection, h acedocs.Heading, headerVersion string, page *acedocs.Page, parents []*acedocs.Entry) *acedocs.Entry {
	name, texts := SplitName(TagText(sel))

	var names []string
	for _, text := range texts {
		names = append(names, p.names(text, h, parents)...)
	}

	markup, syntax := nearby(sel)
	content, cleaned, version, _ := describe(p.Converter, markup, page.URL)
	if headerVersion != "" {
		version = headerVersion
	}

	fragment := h.ID
	if fragment == "" {
		fragment = methodShortID(sel)
	}

	var ancestors []*acedocs.Entry
	for _, parent := range parents {
		if parent != nil {
			ancestors = append(ancestors, parent)
		}
	}

	return &acedocs.Entry{
		Name:         name,
		PrimaryNames: names,
		Page:         page.Path,
		Fragment:     fragment,
		Content:      content,
		HTML:         cleaned,
		Syntax:       syntax,
		Version:      version,
		Parents:      ancestors,
	}
}

// names returns the names a single heading text contributes.
func (p *HeadersParser) names(text string, h acedocs.Heading, parents []*acedocs.Entry) []string {
	var names []string
	h.Text = text

	if evaluate(p.NameCheck, h, true) {
		names = append(names, text)
	}

	for _, rule := range p.Rules {
		if !rule.matches(h) {
			continue
		}
		if name, ok := apply(rule.Action, text, parents); ok {
			names = append(names, name)
		}
		break
	}

	if p.Prefix != "" || p.Postfix != "" {
		names = append(names, p.Prefix+text+p.Postfix)
	}
	return names
}

// heading describes sel to the parser heuristics. ParentIDs lists the
// fragment, or else the name, of every known ancestor.
func heading(sel *goquery.Selection, level int, parents []*acedocs.Entry) acedocs.Heading {
	id, _ := sel.Attr("id")
	class, _ := sel.Attr("class")

	var parentIDs []string
	for _, parent := range parents {
		if parent == nil {
			continue
		}
		if parent.Fragment != "" {
			parentIDs = append(parentIDs, parent.Fragment)
		} else {
			parentIDs = append(parentIDs, parent.Name)
		}
	}

	return acedocs.Heading{
		Level:     level,
		Text:      TagText(sel),
		ID:        id,
		Classes:   strings.Fields(class),
		ParentIDs: parentIDs,
	}
}

// headingLevel returns the level of an h1 to h9 tag name, or 0.
func headingLevel(tag string) int {
	if len(tag) != 2 || tag[0] != 'h' || tag[1] < '1' || tag[1] > '9' {
		return 0
	}
	return int(tag[1] - '0')
}

// methodShortID returns the id of the div.methodShort container that
// carries the anchor of a method heading, either as its previous sibling
// or as its parent.
func methodShortID(sel *goquery.Selection) string {
	for _, candidate := range []*goquery.Selection{sel.Prev(), sel.Parent()} {
		if candidate.Length() == 0 || goquery.NodeName(candidate) != "div" || !candidate.HasClass("methodShort") {
			continue
		}
		if id, ok := candidate.Attr("id"); ok {
			return id
		}
	}
	return ""
}

// entrySet keeps entries in document order, unique by fragment.
type entrySet struct {
	entries    []*acedocs.Entry
	byFragment map[string]int
}

func newEntrySet() *entrySet {
	return &entrySet{byFragment: make(map[string]int)}
}

func (s *entrySet) add(e *acedocs.Entry) {
	if i, ok := s.byFragment[e.Fragment]; ok {
		s.entries[i] = e
		return
	}
	s.byFragment[e.Fragment] = len(s.entries)
	s.entries = append(s.entries, e)
}
