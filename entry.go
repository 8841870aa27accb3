package acedocs

import "slices"

// Entry is one documentation unit parsed from a page.
//
// PrimaryNames are the names the entry insists on; SecondaryNames are only
// used when nothing else in the index claims them.
type Entry struct {
	Name           string   `json:"name"`
	PrimaryNames   []string `json:"primaryNames"`
	SecondaryNames []string `json:"secondaryNames,omitempty"`
	Page           string   `json:"page"`
	Fragment       string   `json:"fragment,omitempty"`
	Content        string   `json:"content,omitempty"` // Markdown
	HTML           string   `json:"html,omitempty"`
	Syntax         string   `json:"syntax,omitempty"`
	Version        string   `json:"version,omitempty"`

	// Parents are the entries of the enclosing headings, outermost first.
	// They are borrowed references used for name prefixing only.
	Parents []*Entry `json:"-"`
}

// Merge backfills empty optional fields from other and adds other's primary
// names as secondary names of e.
func (e *Entry) Merge(other *Entry) {
	if other == nil {
		return
	}
	if e.Content == "" {
		e.Content = other.Content
	}
	if e.HTML == "" {
		e.HTML = other.HTML
	}
	if e.Syntax == "" {
		e.Syntax = other.Syntax
	}
	if e.Version == "" {
		e.Version = other.Version
	}
	for _, name := range other.PrimaryNames {
		if !slices.Contains(e.SecondaryNames, name) {
			e.SecondaryNames = append(e.SecondaryNames, name)
		}
	}
}

// Candidate converts the entry into aggregator input. Primary names become
// force names and secondary names become fill names.
func (e *Entry) Candidate() Candidate {
	return Candidate{
		ForceNames: append([]string(nil), e.PrimaryNames...),
		FillNames:  append([]string(nil), e.SecondaryNames...),
		Page:       e.Page,
		Fragment:   e.Fragment,
		Content:    e.Content,
		HTML:       e.HTML,
		Syntax:     e.Syntax,
		Version:    e.Version,
	}
}

// Heading describes a heading element to the caller-supplied parser
// heuristics.
type Heading struct {
	Level     int
	Text      string
	ID        string
	Classes   []string
	ParentIDs []string
}
