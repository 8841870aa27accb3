package html

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Bluscream/acedocs"
)

// Ensure Renderer implements acedocs.Renderer at compile time.
var _ acedocs.Renderer = (*Renderer)(nil)

// minMaxLength is the smallest budget a render call accepts.
const minMaxLength = 8

var (
	prependTags = map[string]string{
		"br": "\n",
	}

	wrapTags = map[string]string{
		"b":      "**",
		"strong": "**",
		"i":      "*",
		"em":     "*",
	}

	listItemFront = " - "
	listItemBack  = "\n"

	spacingTags = map[string]int{
		"p":   2,
		"div": 2,
		"ul":  2,
		"ol":  2,
	}
)

// Renderer converts HTML fragments into markdown text bounded by
// RenderOptions.MaxLength. It holds no state and is safe for concurrent use.
type Renderer struct{}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render converts fragment. Output that did not fit ends in the ellipsis.
func (r *Renderer) Render(fragment string, opts acedocs.RenderOptions) string {
	maxLength := opts.MaxLength
	if maxLength == 0 {
		maxLength = acedocs.DefaultMaxLength
	}
	maxLength = max(maxLength, minMaxLength)

	root, err := Parse(fragment)
	if err != nil {
		// x/net/html only fails on reader errors; render the raw text.
		root = &acedocs.Element{Children: []acedocs.Node{&acedocs.Text{Value: fragment}}}
	}

	w := &walker{
		opts: opts,
		res:  newResult(maxLength - len(acedocs.Ellipsis) - 1),
	}
	if err := w.traverse(root); errors.Is(err, errCreditsEmpty) {
		if w.res.endsWith(" ") {
			w.res.add(acedocs.Ellipsis)
		} else {
			w.res.add(" " + acedocs.Ellipsis)
		}
	}

	return strings.Trim(w.res.String(), "\n")
}

// walker renders one node tree into its result.
type walker struct {
	opts acedocs.RenderOptions
	res  *result
}

func (w *walker) traverse(el *acedocs.Element) error {
	for _, child := range el.Children {
		var err error
		switch n := child.(type) {
		case *acedocs.Text:
			err = w.text(n.Value)
		case *acedocs.Element:
			err = w.element(n)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (w *walker) text(s string) error {
	if s == "\n" {
		return nil
	}
	if w.opts.Escaper != nil {
		s = w.opts.Escaper(s)
	}
	return w.res.addAndConsume(s, true)
}

func (w *walker) element(el *acedocs.Element) error {
	switch el.Tag {
	case "code", "pre":
		return w.codebox(el)
	case "a":
		return w.link(el)
	}

	var front, back string
	closeRequired := false
	spacing, spaced := spacingTags[el.Tag]

	switch {
	case prependTags[el.Tag] != "":
		front = prependTags[el.Tag]
	case wrapTags[el.Tag] != "":
		front, back = wrapTags[el.Tag], wrapTags[el.Tag]
		closeRequired = true
	case el.Tag == "li":
		front, back = listItemFront, listItemBack
	case spaced:
		if err := w.res.ensureSpacing(spacing); err != nil {
			return err
		}
	}

	if !w.res.canAfford(front, back, " ") {
		return errCreditsEmpty
	}
	if err := w.res.addAndConsume(front, false); err != nil {
		return err
	}

	// The closing marker is paid for up front so it can always be written.
	if closeRequired {
		if err := w.res.consume(utf8.RuneCountInString(back)); err != nil {
			return err
		}
	}

	err := w.traverse(el)
	if closeRequired {
		w.res.add(back)
		return err
	}
	if err != nil {
		return err
	}
	if spaced {
		return w.res.ensureSpacing(spacing)
	}
	return w.res.addAndConsume(back, false)
}

func (w *walker) codebox(el *acedocs.Element) error {
	el.ReplaceTag("br", "\n")
	contents := el.TextContent()

	if w.opts.BigBox {
		return w.res.addAndConsume("```"+w.opts.CodeLanguage+"\n"+contents+"\n```\n", false)
	}
	return w.res.addAndConsume("`"+contents+"`", false)
}

func (w *walker) link(el *acedocs.Element) error {
	contents := el.TextContent()

	href, ok := el.Attr("href")
	if !ok {
		return w.res.addAndConsume(contents, true)
	}
	url := ResolveLink(href, w.opts.BaseURL)
	if url == "" {
		return w.res.addAndConsume(contents, true)
	}

	credits := w.res.credits
	full := fmt.Sprintf("[%s](%s)", contents, url)
	urlLen := utf8.RuneCountInString(url)

	switch {
	case credits >= utf8.RuneCountInString(full):
		return w.res.addAndConsume(full, false)
	case credits >= urlLen+5:
		return w.res.addAndConsume(fmt.Sprintf("[%s](%s)", truncate(contents, credits-urlLen-4), url), false)
	default:
		return w.res.addAndConsume(contents, true)
	}
}

// ResolveLink returns href as an absolute URL. Hrefs with a scheme are
// returned unchanged; "#fragment" hrefs are appended to base; other hrefs
// replace the last path segment of base. Relative hrefs resolve to "" when
// base is empty.
func ResolveLink(href, base string) string {
	if i := strings.Index(href, "://"); i > 0 {
		return href
	}
	if base == "" {
		return ""
	}
	if strings.HasPrefix(href, "#") {
		return base + href
	}
	if i := strings.LastIndex(base, "/"); i >= 0 {
		return base[:i] + "/" + href
	}
	return "/" + href
}
