package goquery

import (
	"slices"

	"github.com/Bluscream/acedocs"
)

// Ensure Factory implements acedocs.ParserFactory at compile time.
var _ acedocs.ParserFactory = (*Factory)(nil)

// BuildFunc compiles a validated plan step into a parser.
type BuildFunc func(step acedocs.PlanStep) (acedocs.PageParser, error)

// Factory builds page parsers for plan steps. Each step kind maps to a
// registered BuildFunc; headers, table and index steps are registered by
// NewFactory.
type Factory struct {
	converter acedocs.Converter
	pages     acedocs.PageSource
	builders  map[acedocs.StepKind]BuildFunc
}

// NewFactory creates a Factory whose parsers convert descriptions with conv
// and read index targets from pages.
func NewFactory(conv acedocs.Converter, pages acedocs.PageSource) *Factory {
	f := &Factory{
		converter: conv,
		pages:     pages,
		builders:  make(map[acedocs.StepKind]BuildFunc),
	}
	f.Register(acedocs.StepHeaders, f.headers)
	f.Register(acedocs.StepTable, f.table)
	f.Register(acedocs.StepIndex, f.index)
	return f
}

// Register sets the builder for a step kind, replacing any existing one.
func (f *Factory) Register(kind acedocs.StepKind, fn BuildFunc) {
	f.builders[kind] = fn
}

// Kinds returns the registered step kinds in sorted order.
func (f *Factory) Kinds() []acedocs.StepKind {
	kinds := make([]acedocs.StepKind, 0, len(f.builders))
	for kind := range f.builders {
		kinds = append(kinds, kind)
	}
	slices.Sort(kinds)
	return kinds
}

// ParserFor returns the parser for step.
// Returns EINVALID if the step is invalid or its kind is not registered.
func (f *Factory) ParserFor(step acedocs.PlanStep) (acedocs.PageParser, error) {
	if err := step.Validate(); err != nil {
		return nil, err
	}
	fn, ok := f.builders[step.Kind]
	if !ok {
		return nil, acedocs.Errorf(acedocs.EINVALID, "no parser for step kind %q", step.Kind)
	}
	return fn(step)
}

func (f *Factory) headers(step acedocs.PlanStep) (acedocs.PageParser, error) {
	p := NewHeadersParser(f.converter)
	p.Prefix = step.Prefix
	p.Postfix = step.Postfix

	var ignores []Predicate
	if len(step.Ignore) > 0 {
		ignores = append(ignores, IgnoreTexts(step.Ignore...))
	}
	if len(step.IgnoreUnder) > 0 {
		ignores = append(ignores, IgnoreUnder(step.IgnoreUnder...))
	}
	if len(ignores) > 0 {
		p.Ignore = AnyOf(ignores...)
	}

	if len(step.SkipNameLevels) > 0 {
		p.NameCheck = SkipLevels(step.SkipNameLevels...)
	}

	for _, rule := range step.Rules {
		var action Action
		if rule.Parent != nil {
			action = ParentAction(*rule.Parent)
		} else {
			action = FormatAction(rule.Format)
		}
		p.Rules = append(p.Rules, PrefixRule{Level: rule.Level, Action: action})
	}
	return p, nil
}

func (f *Factory) table(acedocs.PlanStep) (acedocs.PageParser, error) {
	return NewTableParser(f.converter), nil
}

func (f *Factory) index(acedocs.PlanStep) (acedocs.PageParser, error) {
	if f.pages == nil {
		return nil, acedocs.Errorf(acedocs.EINVALID, "index step requires a page source")
	}
	return NewIndexParser(f.converter, f.pages), nil
}
