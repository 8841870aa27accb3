// Package goquery extracts documentation entries from HTML pages using
// goquery selections.
package goquery

import (
	"strings"

	"github.com/Bluscream/acedocs"
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// nameSeparators are tried in order; the first one present splits a name.
var nameSeparators = []string{" / ", "\n"}

// SplitName splits a raw heading or cell text into its synonyms. It returns
// the synonyms rejoined with " / " and the individual names. Parts are
// trimmed and empty parts dropped.
func SplitName(raw string) (string, []string) {
	parts := []string{raw}
	for _, sep := range nameSeparators {
		if strings.Contains(raw, sep) {
			parts = strings.Split(raw, sep)
			break
		}
	}

	var names []string
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			names = append(names, part)
		}
	}
	return strings.Join(names, " / "), names
}

// StripVersion returns the text of the first version annotation inside sel
// and removes every annotation from the tree. It returns "" if sel has none.
func StripVersion(sel *goquery.Selection) string {
	found := sel.Find("span.ver")
	if found.Length() == 0 {
		return ""
	}
	version := TagText(found.First())
	found.Remove()
	return version
}

// TagText returns the text of sel with line breaks kept as newlines,
// trimmed of surrounding whitespace.
func TagText(sel *goquery.Selection) string {
	var b strings.Builder
	for _, n := range sel.Nodes {
		writeText(&b, n)
	}
	return strings.TrimSpace(b.String())
}

func writeText(b *strings.Builder, n *html.Node) {
	switch {
	case n.Type == html.TextNode:
		b.WriteString(n.Data)
	case n.Type == html.ElementNode && n.Data == "br":
		b.WriteString("\n")
	default:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			writeText(b, c)
		}
	}
}

// nearby collects the description markup following a heading: loose text,
// the first paragraph, and a directly following syntax block. Scanning
// stops at a second paragraph, a pre block or any other element.
func nearby(heading *goquery.Selection) (markup string, syntax string) {
	var b strings.Builder
	foundParagraph := false

scan:
	for n := heading.Nodes[0].NextSibling; n != nil; n = n.NextSibling {
		switch {
		case n.Type == html.TextNode:
			b.WriteString(html.EscapeString(n.Data))
		case n.Type == html.CommentNode:
		case n.Type == html.ElementNode && n.Data == "p" && !foundParagraph:
			foundParagraph = true
			if outer, err := goquery.OuterHtml(selectionOf(n)); err == nil {
				b.WriteString(outer)
			}
		case n.Type == html.ElementNode && n.Data == "pre":
			if sel := selectionOf(n); sel.HasClass("Syntax") {
				syntax = TagText(sel)
			}
			break scan
		default:
			break scan
		}
	}

	return strings.TrimSpace(b.String()), syntax
}

func selectionOf(n *html.Node) *goquery.Selection {
	return goquery.NewDocumentFromNode(n).Selection
}

// describe converts description markup into markdown. Version annotations
// inside the markup are removed and returned.
func describe(conv acedocs.Converter, markup, pageURL string) (content, cleaned, version string, err error) {
	if strings.TrimSpace(markup) == "" {
		return "", "", "", nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return "", "", "", acedocs.Errorf(acedocs.EINVALID, "failed to parse HTML: %v", err)
	}
	body := doc.Find("body")
	version = StripVersion(body)

	cleaned, err = body.Html()
	if err != nil {
		return "", "", "", err
	}
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return "", "", version, nil
	}

	content, err = conv.Convert(cleaned, pageURL)
	if err != nil {
		return "", "", "", err
	}
	return strings.TrimSpace(content), cleaned, version, nil
}
