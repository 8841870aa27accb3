package acedocs

import (
	"context"
	"strings"
	"time"
)

// Candidate is a parsed entry offered to the Aggregator.
type Candidate struct {
	ForceNames []string
	FillNames  []string
	Page       string
	Fragment   string
	Content    string
	HTML       string
	Syntax     string
	Version    string
}

// Target returns the page and fragment the candidate points at.
func (c *Candidate) Target() string {
	return target(c.Page, c.Fragment)
}

// Record is a finalized entry of the documentation index.
type Record struct {
	ID          string    `json:"id"`
	Main        string    `json:"main"`
	Names       []string  `json:"names"`
	Page        string    `json:"page"`
	Fragment    string    `json:"fragment,omitempty"`
	Content     string    `json:"content"`
	HTML        string    `json:"html,omitempty"`
	Syntax      string    `json:"syntax,omitempty"`
	Version     string    `json:"version,omitempty"`
	ContentHash string    `json:"contentHash"`
	Position    int       `json:"position"`
	BuiltAt     time.Time `json:"builtAt"`
}

// Validate returns an error if the record contains invalid fields.
func (r *Record) Validate() error {
	if r.Main == "" {
		return Errorf(EINVALID, "record main name required")
	}
	if r.Content == "" {
		return Errorf(EINVALID, "record content required")
	}
	return nil
}

// Target returns the page and fragment the record points at.
func (r *Record) Target() string {
	return target(r.Page, r.Fragment)
}

// URL resolves the record's documentation URL against the docs base URL.
func (r *Record) URL(base string) string {
	if base == "" {
		return r.Target()
	}
	return strings.TrimSuffix(base, "/") + "/" + r.Target()
}

func target(page, fragment string) string {
	if fragment == "" {
		return page
	}
	return page + "#" + fragment
}

// RecordService represents a service for managing the documentation index.
type RecordService interface {
	// ReplaceRecords atomically replaces the whole index with records.
	ReplaceRecords(ctx context.Context, records []*Record) error

	// FindRecordByName retrieves the record owning name, compared
	// case-insensitively.
	// Returns ENOTFOUND if no record has that name.
	FindRecordByName(ctx context.Context, name string) (*Record, error)

	// FindRecords retrieves records matching the filter.
	FindRecords(ctx context.Context, filter RecordFilter) ([]*Record, error)
}

// RecordFilter represents a filter for FindRecords.
type RecordFilter struct {
	Page  *string `json:"page"`
	Query *string `json:"query"` // Case-insensitive substring of any name

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
