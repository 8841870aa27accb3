package acedocs_test

import (
	"testing"

	"github.com/Bluscream/acedocs"
	"github.com/stretchr/testify/assert"
)

func intPtr(n int) *int { return &n }

func TestPlan_Validate(t *testing.T) {
	t.Parallel()

	valid := func() acedocs.Plan {
		return acedocs.Plan{
			DocsURL: "https://www.autohotkey.com/docs/v2/",
			Steps: []acedocs.PlanStep{
				{Kind: acedocs.StepHeaders, Dir: "lib"},
				{Kind: acedocs.StepIndex, Pages: []string{"static/source/data_index.js"}},
			},
		}
	}

	t.Run("accepts a complete plan", func(t *testing.T) {
		t.Parallel()

		p := valid()

		assert.NoError(t, p.Validate())
	})

	t.Run("requires docs URL", func(t *testing.T) {
		t.Parallel()

		p := valid()
		p.DocsURL = ""

		err := p.Validate()

		assert.Equal(t, acedocs.EINVALID, acedocs.ErrorCode(err))
	})

	t.Run("requires steps", func(t *testing.T) {
		t.Parallel()

		p := valid()
		p.Steps = nil

		assert.Equal(t, acedocs.EINVALID, acedocs.ErrorCode(p.Validate()))
	})

	t.Run("reports the failing step", func(t *testing.T) {
		t.Parallel()

		p := valid()
		p.Steps = append(p.Steps, acedocs.PlanStep{Kind: "list"})

		err := p.Validate()

		assert.Equal(t, acedocs.EINVALID, acedocs.ErrorCode(err))
		assert.Equal(t, `step 3: unknown step kind "list"`, acedocs.ErrorMessage(err))
	})

	t.Run("rejects aliases without names", func(t *testing.T) {
		t.Parallel()

		p := valid()
		p.Aliases = []acedocs.Alias{{Page: "lib/For.htm"}}

		assert.Equal(t, acedocs.EINVALID, acedocs.ErrorCode(p.Validate()))
	})
}

func TestPlanStep_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		step    acedocs.PlanStep
		wantErr bool
	}{
		{"headers with dir", acedocs.PlanStep{Kind: acedocs.StepHeaders, Dir: "lib"}, false},
		{"table with pages", acedocs.PlanStep{Kind: acedocs.StepTable, Pages: []string{"Variables.htm"}}, false},
		{"headers without pages", acedocs.PlanStep{Kind: acedocs.StepHeaders}, true},
		{"index with dir", acedocs.PlanStep{Kind: acedocs.StepIndex, Dir: "static"}, true},
		{"index with two pages", acedocs.PlanStep{Kind: acedocs.StepIndex, Pages: []string{"a.js", "b.js"}}, true},
		{"rule with parent", acedocs.PlanStep{Kind: acedocs.StepHeaders, Dir: "lib", Rules: []acedocs.PlanRule{{Level: 3, Parent: intPtr(2)}}}, false},
		{"rule with format", acedocs.PlanStep{Kind: acedocs.StepHeaders, Dir: "lib", Rules: []acedocs.PlanRule{{Level: 3, Format: "Gui.{}"}}}, false},
		{"rule with both", acedocs.PlanStep{Kind: acedocs.StepHeaders, Dir: "lib", Rules: []acedocs.PlanRule{{Level: 3, Parent: intPtr(2), Format: "{}"}}}, true},
		{"rule with neither", acedocs.PlanStep{Kind: acedocs.StepHeaders, Dir: "lib", Rules: []acedocs.PlanRule{{Level: 3}}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.step.Validate()

			if tt.wantErr {
				assert.Equal(t, acedocs.EINVALID, acedocs.ErrorCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPlan_PageURL(t *testing.T) {
	t.Parallel()

	p := acedocs.Plan{DocsURL: "https://www.autohotkey.com/docs/v2/"}

	assert.Equal(t, "https://www.autohotkey.com/docs/v2/lib/Gui.htm", p.PageURL("lib/Gui.htm"))
	assert.Equal(t, "https://www.autohotkey.com/docs/v2/Hotkeys.htm", p.PageURL("/Hotkeys.htm"))
}

func TestPlanStep_String(t *testing.T) {
	t.Parallel()

	dir := acedocs.PlanStep{Kind: acedocs.StepHeaders, Dir: "lib"}
	pages := acedocs.PlanStep{Kind: acedocs.StepTable, Pages: []string{"Variables.htm", "Hotkeys.htm"}}

	assert.Equal(t, "headers lib/*.htm", dir.String())
	assert.Equal(t, "table Variables.htm,Hotkeys.htm", pages.String())
}
