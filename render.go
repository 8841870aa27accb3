package acedocs

import "strings"

// DefaultMaxLength is the render budget used when RenderOptions.MaxLength
// is zero. It matches the message size limit of the chat surface.
const DefaultMaxLength = 2000

// Ellipsis marks output that was cut to fit the budget.
const Ellipsis = "..."

// RenderOptions configures a single render call.
type RenderOptions struct {
	// MaxLength caps the total output length in characters.
	// Values below 8 are raised to 8; zero means DefaultMaxLength.
	MaxLength int

	// BaseURL resolves relative links. Relative links are rendered as
	// plain text when it is empty.
	BaseURL string

	// CodeLanguage tags fenced code blocks when BigBox is set.
	CodeLanguage string

	// BigBox renders code as fenced multi-line blocks instead of inline spans.
	BigBox bool

	// Escaper, if set, is applied to every literal text run.
	Escaper func(string) string
}

// Renderer converts HTML fragments into markdown-flavored text that never
// exceeds the configured budget.
type Renderer interface {
	// Render converts the fragment. It never fails: malformed or oversized
	// input degrades to truncated output ending in Ellipsis.
	Render(html string, opts RenderOptions) string
}

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// Relative links are resolved against pageURL.
	Convert(html string, pageURL string) (string, error)
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"~", `\~`,
	"`", "\\`",
	"|", `\|`,
	">", `\>`,
)

// EscapeMarkdown neutralizes chat markdown control characters in s.
// It is suitable as RenderOptions.Escaper.
func EscapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
