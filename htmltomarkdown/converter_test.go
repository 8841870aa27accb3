package htmltomarkdown_test

import (
	"testing"

	"github.com/Bluscream/acedocs"
	"github.com/Bluscream/acedocs/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements acedocs.Converter at compile time.
var _ acedocs.Converter = (*htmltomarkdown.Converter)(nil)

const pageURL = "https://www.autohotkey.com/docs/v2/lib/MsgBox.htm"

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts basic paragraph", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p>Displays the specified text in a small window.</p>`, pageURL)

		require.NoError(t, err)
		assert.Equal(t, "Displays the specified text in a small window.", md)
	})

	t.Run("resolves relative links against the page", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p>See <a href="Gui.htm#Add">Gui.Add</a>.</p>`, pageURL)

		require.NoError(t, err)
		assert.Contains(t, md, "[Gui.Add](https://www.autohotkey.com/docs/v2/lib/Gui.htm#Add)")
	})

	t.Run("resolves fragment links against the page", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p>See <a href="#Options">options</a>.</p>`, pageURL)

		require.NoError(t, err)
		assert.Contains(t, md, "[options](https://www.autohotkey.com/docs/v2/lib/MsgBox.htm#Options)")
	})

	t.Run("keeps relative links without page URL", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p><a href="Gui.htm">Gui</a></p>`, "")

		require.NoError(t, err)
		assert.Contains(t, md, "[Gui](Gui.htm)")
	})

	t.Run("brackets optional parameters", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p>MsgBox <span class="optional">Text</span></p>`, pageURL)

		require.NoError(t, err)
		assert.Contains(t, md, "MsgBox [Text]")
	})

	t.Run("leaves other spans alone", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p>Value <span class="note">Text</span></p>`, pageURL)

		require.NoError(t, err)
		assert.Contains(t, md, "Value Text")
		assert.NotContains(t, md, "[Text]")
	})

	t.Run("converts inline code", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p>Use <code>MsgBox "Hi"</code> to greet.</p>`, pageURL)

		require.NoError(t, err)
		assert.Contains(t, md, "`MsgBox \"Hi\"`")
	})

	t.Run("converts bold and italic", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p><strong>Bold</strong> and <em>italic</em> text.</p>`, pageURL)

		require.NoError(t, err)
		assert.Contains(t, md, "**Bold**")
		assert.Contains(t, md, "*italic*")
	})

	t.Run("converts tables", func(t *testing.T) {
		t.Parallel()

		html := `<table>
<thead><tr><th>Value</th><th>Meaning</th></tr></thead>
<tbody><tr><td>0</td><td>OK</td></tr><tr><td>1</td><td>OK/Cancel</td></tr></tbody>
</table>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html, pageURL)

		require.NoError(t, err)
		assert.Contains(t, md, "Value")
		assert.Contains(t, md, "OK/Cancel")
		assert.Contains(t, md, "|")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.Convert("  ", pageURL)

		require.Error(t, err)
		assert.Equal(t, acedocs.EINVALID, acedocs.ErrorCode(err))
	})
}
