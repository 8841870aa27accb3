package acedocs

import (
	"iter"
	"slices"
	"strings"
)

// Aggregator resolves entry names across all parsed pages of one build.
//
// A name is either unclaimed, claimed as a fill name, or claimed as a force
// name. Fill names give way to a later force claim on the same lowercase
// string; force names are never displaced.
type Aggregator struct {
	aliases []Alias

	forceNames map[string]struct{}
	fillNames  map[string]struct{}

	records  []*Record
	byTarget map[string]*Record
}

// NewAggregator returns an empty Aggregator using the given alias table.
// A nil table selects DefaultAliases.
func NewAggregator(aliases []Alias) *Aggregator {
	if aliases == nil {
		aliases = DefaultAliases
	}
	a := &Aggregator{aliases: aliases}
	a.Reset()
	return a
}

// Reset forgets every claimed name and record.
func (a *Aggregator) Reset() {
	a.forceNames = make(map[string]struct{})
	a.fillNames = make(map[string]struct{})
	a.records = nil
	a.byTarget = make(map[string]*Record)
}

// NameCheck tries to claim name and reports whether the claim succeeded.
//
// A force claim on a current fill name promotes it and takes the name away
// from the record that held it.
func (a *Aggregator) NameCheck(name string, force bool) bool {
	key := strings.ToLower(name)

	if _, ok := a.forceNames[key]; ok {
		return false
	}

	if _, ok := a.fillNames[key]; ok {
		if !force {
			return false
		}
		delete(a.fillNames, key)
		a.forceNames[key] = struct{}{}
		a.release(key)
		return true
	}

	if force {
		a.forceNames[key] = struct{}{}
	} else {
		a.fillNames[key] = struct{}{}
	}
	return true
}

// release removes the first occurrence of the lowercase name key from the
// records accepted so far.
func (a *Aggregator) release(key string) {
	for _, rec := range a.records {
		for i, name := range rec.Names {
			if strings.ToLower(name) == key {
				rec.Names = slices.Delete(rec.Names, i, i+1)
				return
			}
		}
	}
}

// AddEntry admits a candidate into the index and returns the record that
// now holds its names. Candidates without content or names are dropped and
// nil is returned.
//
// A candidate pointing at the same page and fragment as an earlier record is
// merged into that record instead of creating a new one.
func (a *Aggregator) AddEntry(c Candidate) *Record {
	if c.Content == "" {
		return nil
	}

	force := slices.Clone(c.ForceNames)
	fill := slices.Clone(c.FillNames)

	var main string
	switch {
	case len(force) > 0:
		main = force[0]
	case len(fill) > 0:
		main = fill[0]
	default:
		return nil
	}

	for _, alias := range a.aliases {
		if c.Page == alias.Page {
			force = append(force, alias.Names...)
			continue
		}
		force = slices.DeleteFunc(force, func(name string) bool { return slices.Contains(alias.Names, name) })
		fill = slices.DeleteFunc(fill, func(name string) bool { return slices.Contains(alias.Names, name) })
	}

	var names []string
	for _, name := range force {
		name = TreatName(name)
		if !slices.Contains(names, name) && a.NameCheck(name, true) {
			names = append(names, name)
		}
	}
	for _, name := range fill {
		name = TreatName(name)
		if !slices.Contains(names, name) && a.NameCheck(name, false) {
			names = append(names, name)
		}
	}

	key := c.Target()
	if existing, ok := a.byTarget[key]; ok {
		for _, name := range names {
			if !slices.Contains(existing.Names, name) {
				existing.Names = append(existing.Names, name)
			}
		}
		if existing.Syntax == "" {
			existing.Syntax = c.Syntax
		}
		if existing.Version == "" {
			existing.Version = c.Version
		}
		return existing
	}

	rec := &Record{
		Main:     main,
		Names:    names,
		Page:     c.Page,
		Fragment: c.Fragment,
		Content:  c.Content,
		HTML:     c.HTML,
		Syntax:   c.Syntax,
		Version:  c.Version,
		Position: len(a.records),
	}
	a.records = append(a.records, rec)
	if c.Page != "" {
		a.byTarget[key] = rec
	}
	return rec
}

// Records returns the accepted records in the order they were added.
// The slice is owned by the Aggregator.
func (a *Aggregator) Records() []*Record {
	return a.records
}

// All iterates over the accepted records in order. The sequence can be
// ranged over any number of times.
func (a *Aggregator) All() iter.Seq[*Record] {
	return func(yield func(*Record) bool) {
		for _, rec := range a.records {
			if !yield(rec) {
				return
			}
		}
	}
}

// Len returns the number of records.
func (a *Aggregator) Len() int {
	return len(a.records)
}

// NameCount returns the number of names held by all records.
func (a *Aggregator) NameCount() int {
	n := 0
	for _, rec := range a.records {
		n += len(rec.Names)
	}
	return n
}

// TreatName strips a trailing call suffix, so "StrLen()" becomes "StrLen".
func TreatName(name string) string {
	return strings.TrimSuffix(name, "()")
}
