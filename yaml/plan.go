// Package yaml loads acedocs build plans from YAML documents.
package yaml

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/Bluscream/acedocs"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultPlan []byte

// planFile is the on-disk shape of a plan.
type planFile struct {
	DocsURL    string      `yaml:"docs_url"`
	ArchiveURL string      `yaml:"archive_url"`
	Folder     string      `yaml:"folder"`
	Steps      []stepFile  `yaml:"steps"`
	Aliases    []aliasFile `yaml:"aliases"`
}

type stepFile struct {
	Kind           string     `yaml:"kind"`
	Pages          []string   `yaml:"pages"`
	Dir            string     `yaml:"dir"`
	Ext            string     `yaml:"ext"`
	Prefix         string     `yaml:"prefix"`
	Postfix        string     `yaml:"postfix"`
	Ignore         []string   `yaml:"ignore"`
	IgnoreUnder    []string   `yaml:"ignore_under"`
	SkipNameLevels []int      `yaml:"skip_name_levels"`
	Rules          []ruleFile `yaml:"rules"`
}

type ruleFile struct {
	Level  int    `yaml:"level"`
	Parent *int   `yaml:"parent"`
	Format string `yaml:"format"`
}

type aliasFile struct {
	Page  string   `yaml:"page"`
	Names []string `yaml:"names"`
}

// DefaultPlan returns the built-in plan for the AutoHotkey v2 documentation.
func DefaultPlan() (*acedocs.Plan, error) {
	return ParsePlan(bytes.NewReader(defaultPlan))
}

// LoadPlan reads and validates the plan file at path.
func LoadPlan(path string) (*acedocs.Plan, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, acedocs.Errorf(acedocs.ENOTFOUND, "plan file %q not found", path)
	} else if err != nil {
		return nil, fmt.Errorf("open plan: %w", err)
	}
	defer f.Close()

	return ParsePlan(f)
}

// ParsePlan decodes and validates a plan. Unknown keys are rejected.
func ParsePlan(r io.Reader) (*acedocs.Plan, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var pf planFile
	if err := dec.Decode(&pf); err == io.EOF {
		return nil, acedocs.Errorf(acedocs.EINVALID, "plan is empty")
	} else if err != nil {
		return nil, acedocs.Errorf(acedocs.EINVALID, "invalid plan: %v", err)
	}

	plan := pf.plan()
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	return plan, nil
}

func (pf *planFile) plan() *acedocs.Plan {
	plan := &acedocs.Plan{
		DocsURL:    pf.DocsURL,
		ArchiveURL: pf.ArchiveURL,
		Folder:     pf.Folder,
	}
	for _, s := range pf.Steps {
		step := acedocs.PlanStep{
			Kind:           acedocs.StepKind(s.Kind),
			Pages:          s.Pages,
			Dir:            s.Dir,
			Ext:            s.Ext,
			Prefix:         s.Prefix,
			Postfix:        s.Postfix,
			Ignore:         s.Ignore,
			IgnoreUnder:    s.IgnoreUnder,
			SkipNameLevels: s.SkipNameLevels,
		}
		for _, r := range s.Rules {
			step.Rules = append(step.Rules, acedocs.PlanRule{Level: r.Level, Parent: r.Parent, Format: r.Format})
		}
		plan.Steps = append(plan.Steps, step)
	}
	// An absent alias list keeps the compiled-in table.
	if pf.Aliases != nil {
		plan.Aliases = make([]acedocs.Alias, 0, len(pf.Aliases))
		for _, a := range pf.Aliases {
			plan.Aliases = append(plan.Aliases, acedocs.Alias{Page: a.Page, Names: a.Names})
		}
	}
	return plan
}
