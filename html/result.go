package html

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// errCreditsEmpty signals that the budget ran out. It never leaves Render.
var errCreditsEmpty = errors.New("credits empty")

// result accumulates output against a closed character budget. Every
// character written is debited from credits first.
type result struct {
	credits int
	content []byte
}

func newResult(credits int) *result {
	return &result{credits: credits}
}

func (r *result) String() string {
	return string(r.content)
}

func (r *result) consume(n int) error {
	if n > r.credits {
		return errCreditsEmpty
	}
	r.credits -= n
	return nil
}

func (r *result) feed(n int) {
	r.credits += n
}

func (r *result) canAfford(parts ...string) bool {
	total := 0
	for _, p := range parts {
		total += utf8.RuneCountInString(p)
	}
	return total <= r.credits
}

// add appends s without debiting. Callers must have consumed for it.
func (r *result) add(s string) {
	r.content = append(r.content, s...)
}

// addAndConsume debits and appends s. With trunc set, s is cut to the
// remaining credits and errCreditsEmpty is returned after the cut part was
// written.
func (r *result) addAndConsume(s string, trunc bool) error {
	n := utf8.RuneCountInString(s)
	if trunc && n > r.credits {
		s = truncate(s, r.credits)
		r.credits = 0
		r.add(s)
		return errCreditsEmpty
	}
	if err := r.consume(n); err != nil {
		return err
	}
	r.add(s)
	return nil
}

// ensureSpacing makes the content end in exactly n newlines, refunding the
// excess and paying for the deficit.
func (r *result) ensureSpacing(n int) error {
	for r.trailingNewlines() > n {
		r.content = r.content[:len(r.content)-1]
		r.feed(1)
	}
	for r.trailingNewlines() < n {
		if err := r.consume(1); err != nil {
			return err
		}
		r.content = append(r.content, '\n')
	}
	return nil
}

func (r *result) trailingNewlines() int {
	n := 0
	for i := len(r.content) - 1; i >= 0 && r.content[i] == '\n'; i-- {
		n++
	}
	return n
}

func (r *result) endsWith(s string) bool {
	return strings.HasSuffix(string(r.content), s)
}

// truncate returns the first n runes of s.
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
