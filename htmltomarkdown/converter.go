// Package htmltomarkdown converts documentation markup to Markdown using
// JohannesKaufmann/html-to-markdown.
package htmltomarkdown

import (
	"slices"
	"strings"

	"github.com/Bluscream/acedocs"
	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"golang.org/x/net/html"
)

// Ensure Converter implements acedocs.Converter at compile time.
var _ acedocs.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to Markdown.
// Optional syntax parameters (span.optional) are rendered in brackets.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	conv.Register.RendererFor("span", converter.TagTypeInline, renderOptional, converter.PriorityEarly)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown. Relative links are
// resolved against pageURL when it is set.
func (c *Converter) Convert(html string, pageURL string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", acedocs.Errorf(acedocs.EINVALID, "empty HTML input")
	}

	var opts []converter.ConvertOptionFunc
	if pageURL != "" {
		opts = append(opts, converter.WithDomain(pageURL))
	}

	result, err := c.conv.ConvertString(html, opts...)
	if err != nil {
		return "", err
	}

	return result, nil
}

func renderOptional(ctx converter.Context, w converter.Writer, n *html.Node) converter.RenderStatus {
	if !hasClass(n, "optional") {
		return converter.RenderTryNext
	}
	w.WriteString("[")
	ctx.RenderChildNodes(ctx, w, n)
	w.WriteString("]")
	return converter.RenderSuccess
}

func hasClass(n *html.Node, class string) bool {
	for _, a := range n.Attr {
		if a.Key == "class" && slices.Contains(strings.Fields(a.Val), class) {
			return true
		}
	}
	return false
}
