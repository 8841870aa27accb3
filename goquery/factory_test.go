package goquery_test

import (
	"context"
	"testing"

	"github.com/Bluscream/acedocs"
	"github.com/Bluscream/acedocs/goquery"
	"github.com/Bluscream/acedocs/htmltomarkdown"
	"github.com/Bluscream/acedocs/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Factory implements acedocs.ParserFactory at compile time.
var _ acedocs.ParserFactory = (*goquery.Factory)(nil)

func intPtr(n int) *int { return &n }

func TestFactory_ParserFor(t *testing.T) {
	t.Parallel()

	t.Run("builds parser for each step kind", func(t *testing.T) {
		t.Parallel()

		f := goquery.NewFactory(htmltomarkdown.NewConverter(), &mock.PageSource{})

		headers, err := f.ParserFor(acedocs.PlanStep{Kind: acedocs.StepHeaders, Dir: "lib"})
		require.NoError(t, err)
		assert.IsType(t, &goquery.HeadersParser{}, headers)

		table, err := f.ParserFor(acedocs.PlanStep{Kind: acedocs.StepTable, Pages: []string{"Variables.htm"}})
		require.NoError(t, err)
		assert.IsType(t, &goquery.TableParser{}, table)

		index, err := f.ParserFor(acedocs.PlanStep{Kind: acedocs.StepIndex, Pages: []string{"static/source/data_index.js"}})
		require.NoError(t, err)
		assert.IsType(t, &goquery.IndexParser{}, index)
	})

	t.Run("rejects invalid steps", func(t *testing.T) {
		t.Parallel()

		f := goquery.NewFactory(htmltomarkdown.NewConverter(), nil)

		_, err := f.ParserFor(acedocs.PlanStep{Kind: acedocs.StepHeaders})

		assert.Equal(t, acedocs.EINVALID, acedocs.ErrorCode(err))
	})

	t.Run("requires a page source for index steps", func(t *testing.T) {
		t.Parallel()

		f := goquery.NewFactory(htmltomarkdown.NewConverter(), nil)

		_, err := f.ParserFor(acedocs.PlanStep{Kind: acedocs.StepIndex, Pages: []string{"data_index.js"}})

		assert.Equal(t, acedocs.EINVALID, acedocs.ErrorCode(err))
	})

	t.Run("compiles step heuristics", func(t *testing.T) {
		t.Parallel()

		f := goquery.NewFactory(htmltomarkdown.NewConverter(), nil)
		step := acedocs.PlanStep{
			Kind:           acedocs.StepHeaders,
			Pages:          []string{"lib/Gui.htm"},
			Prefix:         "Gui: ",
			Ignore:         []string{"Remarks"},
			IgnoreUnder:    []string{"Events"},
			SkipNameLevels: []int{3},
			Rules: []acedocs.PlanRule{
				{Level: 2, Parent: intPtr(1)},
				{Level: 3, Format: "Gui.{}"},
			},
		}

		p, err := f.ParserFor(step)
		require.NoError(t, err)

		entries, err := p.Parse(context.Background(), testPage(`<h1 id="Gui">Gui</h1><p>g</p>
<h2 id="Add">Add</h2><p>a</p>
<h3 id="Opt">Opt</h3><p>o</p>
<h2 id="Remarks">Remarks</h2><p>r</p>
<h2 id="Events">Events</h2><p>e</p>
<h3 id="Close">Close</h3><p>c</p>`))
		require.NoError(t, err)

		require.Len(t, entries, 4)
		assert.Equal(t, []string{"Gui", "Gui: Gui"}, entries[0].PrimaryNames)
		assert.Equal(t, []string{"Add", "Gui • Add", "Gui: Add"}, entries[1].PrimaryNames)
		assert.Equal(t, []string{"Gui.Opt", "Gui: Opt"}, entries[2].PrimaryNames)
		assert.Equal(t, "Events", entries[3].Fragment)
	})

	t.Run("uses registered builders", func(t *testing.T) {
		t.Parallel()

		want := &mock.PageParser{}
		f := goquery.NewFactory(htmltomarkdown.NewConverter(), nil)
		f.Register(acedocs.StepTable, func(acedocs.PlanStep) (acedocs.PageParser, error) {
			return want, nil
		})

		got, err := f.ParserFor(acedocs.PlanStep{Kind: acedocs.StepTable, Pages: []string{"x.htm"}})

		require.NoError(t, err)
		assert.Same(t, want, got)
	})
}

func TestFactory_Kinds(t *testing.T) {
	t.Parallel()

	f := goquery.NewFactory(htmltomarkdown.NewConverter(), nil)

	assert.Equal(t, []acedocs.StepKind{acedocs.StepHeaders, acedocs.StepIndex, acedocs.StepTable}, f.Kinds())
}
