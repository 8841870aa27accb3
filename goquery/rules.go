package goquery

import (
	"slices"
	"strings"

	"github.com/Bluscream/acedocs"
)

// Bullet joins a parent name and a child name.
const Bullet = "•"

// Predicate is a heuristic evaluated against a heading. Predicates may
// panic on irregular markup; callers substitute a documented default.
type Predicate func(h acedocs.Heading) bool

// Action derives an extra name for a heading text. parents holds the
// current ancestor entry per heading level, index 0 being unused. It
// reports false when it has nothing to add.
type Action func(text string, parents []*acedocs.Entry) (string, bool)

// PrefixRule adds a derived name to headings it matches. A rule with a
// Match predicate ignores Level.
type PrefixRule struct {
	Level  int
	Match  Predicate
	Action Action
}

// ParentAction prefixes the text with the first primary name of the
// ancestor at heading level n. Negative n counts back from the nearest
// level above the heading. A prefix the text already starts with is not
// repeated.
func ParentAction(n int) Action {
	return func(text string, parents []*acedocs.Entry) (string, bool) {
		i := n
		if i < 0 {
			i += len(parents)
		}
		if i < 0 || i >= len(parents) {
			return "", false
		}
		parent := parents[i]
		if parent == nil || len(parent.PrimaryNames) == 0 {
			return "", false
		}

		name := parent.PrimaryNames[0]
		rest := text
		if strings.HasPrefix(text, name) {
			rest = strings.TrimSpace(text[len(name):])
		}
		return name + " " + Bullet + " " + rest, true
	}
}

// FormatAction substitutes the text for every "{}" in template.
func FormatAction(template string) Action {
	return func(text string, _ []*acedocs.Entry) (string, bool) {
		return strings.ReplaceAll(template, "{}", text), true
	}
}

// TransformAction applies fn to the text.
func TransformAction(fn func(string) string) Action {
	return func(text string, _ []*acedocs.Entry) (string, bool) {
		return fn(text), true
	}
}

// IgnoreTexts matches headings whose text is one of texts.
func IgnoreTexts(texts ...string) Predicate {
	return func(h acedocs.Heading) bool {
		return slices.Contains(texts, h.Text)
	}
}

// IgnoreUnder matches headings nested below an ancestor with one of ids.
func IgnoreUnder(ids ...string) Predicate {
	return func(h acedocs.Heading) bool {
		for _, id := range h.ParentIDs {
			if slices.Contains(ids, id) {
				return true
			}
		}
		return false
	}
}

// SkipLevels rejects the bare name of headings on the given levels.
func SkipLevels(levels ...int) Predicate {
	return func(h acedocs.Heading) bool {
		return !slices.Contains(levels, h.Level)
	}
}

// AnyOf matches when any of preds matches.
func AnyOf(preds ...Predicate) Predicate {
	return func(h acedocs.Heading) bool {
		for _, p := range preds {
			if p(h) {
				return true
			}
		}
		return false
	}
}

// evaluate runs p and returns fallback if p is nil or panics.
func evaluate(p Predicate, h acedocs.Heading, fallback bool) (ok bool) {
	if p == nil {
		return fallback
	}
	defer func() {
		if recover() != nil {
			ok = fallback
		}
	}()
	return p(h)
}

// apply runs action, treating a panic as nothing to add.
func apply(action Action, text string, parents []*acedocs.Entry) (name string, ok bool) {
	defer func() {
		if recover() != nil {
			name, ok = "", false
		}
	}()
	return action(text, parents)
}

// matches reports whether rule applies to h. A panicking Match predicate
// does not match.
func (r PrefixRule) matches(h acedocs.Heading) bool {
	if r.Match != nil {
		return evaluate(r.Match, h, false)
	}
	return r.Level == h.Level
}
