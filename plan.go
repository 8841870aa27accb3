package acedocs

import (
	"fmt"
	"strings"
)

// StepKind selects the extraction strategy of a plan step.
type StepKind string

// Supported step kinds.
const (
	StepHeaders StepKind = "headers"
	StepTable   StepKind = "table"
	StepIndex   StepKind = "index"
)

// DefaultPageExt is the extension of documentation pages listed from a
// step directory.
const DefaultPageExt = ".htm"

// Plan describes how a documentation archive is turned into an index.
// Steps run in order; their order decides which entry wins a contested name.
type Plan struct {
	DocsURL    string     `json:"docsUrl"`
	ArchiveURL string     `json:"archiveUrl"`
	Folder     string     `json:"folder"` // Docs root inside the extracted archive
	Steps      []PlanStep `json:"steps"`
	Aliases    []Alias    `json:"aliases"`
}

// PlanStep runs one parser over a set of pages.
type PlanStep struct {
	Kind StepKind `json:"kind"`

	// Pages lists explicit page paths. Dir adds every page with extension
	// Ext found directly in that directory, in sorted order.
	Pages []string `json:"pages,omitempty"`
	Dir   string   `json:"dir,omitempty"`
	Ext   string   `json:"ext,omitempty"`

	// Prefix and Postfix add a decorated synonym for every heading name.
	Prefix  string `json:"prefix,omitempty"`
	Postfix string `json:"postfix,omitempty"`

	// Ignore skips headings with these exact texts; IgnoreUnder skips
	// headings below an ancestor with one of these ids.
	Ignore      []string `json:"ignore,omitempty"`
	IgnoreUnder []string `json:"ignoreUnder,omitempty"`

	// SkipNameLevels drops the bare heading name on these levels, keeping
	// only names produced by rules.
	SkipNameLevels []int `json:"skipNameLevels,omitempty"`

	Rules []PlanRule `json:"rules,omitempty"`
}

// PlanRule adds a prefixed name to headings of a given level. Exactly one of
// Parent or Format is set.
type PlanRule struct {
	Level  int    `json:"level"`
	Parent *int   `json:"parent,omitempty"`
	Format string `json:"format,omitempty"`
}

// Alias reserves extra names for a single page.
type Alias struct {
	Page  string   `json:"page"`
	Names []string `json:"names"`
}

// DefaultAliases is the alias table used when a plan does not set one.
var DefaultAliases = []Alias{
	{Page: "lib/For.htm", Names: []string{"For"}},
	{Page: "lib/If.htm", Names: []string{"If"}},
	{Page: "misc/EscapeChar.htm", Names: []string{"EscapeChar"}},
	{Page: "Hotstrings.htm", Names: []string{"hotstrings"}},
}

// Validate returns an error if the plan contains invalid fields.
func (p *Plan) Validate() error {
	if p.DocsURL == "" {
		return Errorf(EINVALID, "plan docs URL required")
	}
	if len(p.Steps) == 0 {
		return Errorf(EINVALID, "plan requires at least one step")
	}
	for i, step := range p.Steps {
		if err := step.Validate(); err != nil {
			return Errorf(EINVALID, "step %d: %s", i+1, ErrorMessage(err))
		}
	}
	for _, alias := range p.Aliases {
		if alias.Page == "" || len(alias.Names) == 0 {
			return Errorf(EINVALID, "alias requires a page and at least one name")
		}
	}
	return nil
}

// PageURL returns the public URL of a documentation page.
func (p *Plan) PageURL(path string) string {
	return strings.TrimSuffix(p.DocsURL, "/") + "/" + strings.TrimPrefix(path, "/")
}

// Validate returns an error if the step contains invalid fields.
func (s *PlanStep) Validate() error {
	switch s.Kind {
	case StepHeaders, StepTable:
		if len(s.Pages) == 0 && s.Dir == "" {
			return Errorf(EINVALID, "%s step requires pages or dir", s.Kind)
		}
	case StepIndex:
		if len(s.Pages) != 1 || s.Dir != "" {
			return Errorf(EINVALID, "index step requires exactly one page")
		}
	default:
		return Errorf(EINVALID, "unknown step kind %q", s.Kind)
	}
	for _, rule := range s.Rules {
		if (rule.Parent == nil) == (rule.Format == "") {
			return Errorf(EINVALID, "rule for level %d needs exactly one of parent or format", rule.Level)
		}
	}
	return nil
}

// String describes the step for logs.
func (s *PlanStep) String() string {
	if s.Dir != "" {
		return fmt.Sprintf("%s %s/*%s", s.Kind, s.Dir, s.PageExt())
	}
	return fmt.Sprintf("%s %s", s.Kind, strings.Join(s.Pages, ","))
}

// PageExt returns the extension used when listing Dir.
func (s *PlanStep) PageExt() string {
	if s.Ext == "" {
		return DefaultPageExt
	}
	return s.Ext
}
