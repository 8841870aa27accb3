package goquery_test

import (
	"strings"
	"testing"

	"github.com/Bluscream/acedocs/goquery"
	pq "github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw       string
		wantName  string
		wantNames []string
	}{
		{"MsgBox", "MsgBox", []string{"MsgBox"}},
		{"Foo / Bar", "Foo / Bar", []string{"Foo", "Bar"}},
		{"  Foo  /  Bar ", "Foo / Bar", []string{"Foo", "Bar"}},
		{"A\nB\n\nC", "A / B / C", []string{"A", "B", "C"}},
		{"A / B\nC", "A / B\nC", []string{"A", "B\nC"}},
		{"a/b", "a/b", []string{"a/b"}},
		{"   ", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()

			name, names := goquery.SplitName(tt.raw)

			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantNames, names)
		})
	}
}

func TestStripVersion(t *testing.T) {
	t.Parallel()

	t.Run("returns first version and removes all", func(t *testing.T) {
		t.Parallel()

		doc, err := pq.NewDocumentFromReader(strings.NewReader(`<h2>Run <span class="ver">v2.0</span> <span class="ver">v2.1</span></h2>`))
		require.NoError(t, err)
		h := doc.Find("h2")

		version := goquery.StripVersion(h)

		assert.Equal(t, "v2.0", version)
		assert.Equal(t, 0, h.Find("span").Length())
		assert.Equal(t, "Run", goquery.TagText(h))
	})

	t.Run("returns empty without annotation", func(t *testing.T) {
		t.Parallel()

		doc, err := pq.NewDocumentFromReader(strings.NewReader(`<h2>Run <span>x</span></h2>`))
		require.NoError(t, err)

		assert.Empty(t, goquery.StripVersion(doc.Find("h2")))
		assert.Equal(t, 1, doc.Find("span").Length())
	})
}

func TestTagText(t *testing.T) {
	t.Parallel()

	doc, err := pq.NewDocumentFromReader(strings.NewReader(`<table><tr><td> A_Index<br>A_LoopField <i>x</i> </td></tr></table>`))
	require.NoError(t, err)

	assert.Equal(t, "A_Index\nA_LoopField x", goquery.TagText(doc.Find("td")))
}
