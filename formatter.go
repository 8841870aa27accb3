package acedocs

import (
	"fmt"
	"strings"
)

// FormatRecord formats a record for display. body is the rendered
// description; the record's markdown content is used when it is empty.
func FormatRecord(rec *Record, body, docsURL string) string {
	if body == "" {
		body = rec.Content
	}

	var b strings.Builder
	b.WriteString("## " + rec.Main)
	if rec.Version != "" {
		b.WriteString(" (v" + strings.TrimPrefix(rec.Version, "v") + ")")
	}
	b.WriteString("\n")

	if rec.Syntax != "" {
		b.WriteString("```\n" + rec.Syntax + "\n```\n")
	}
	b.WriteString(body)

	if others := otherNames(rec); len(others) > 0 {
		b.WriteString("\n\nAlso: " + strings.Join(others, ", "))
	}
	b.WriteString("\n" + rec.URL(docsURL))

	return b.String()
}

// FormatRecords formats records as a list, one per line.
func FormatRecords(records []*Record) string {
	if len(records) == 0 {
		return ""
	}

	lines := make([]string, 0, len(records))
	for _, rec := range records {
		line := fmt.Sprintf("- %s: %s", rec.Main, rec.Target())
		if others := otherNames(rec); len(others) > 0 {
			line += " [" + strings.Join(others, ", ") + "]"
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// otherNames returns the record's names except its main name.
func otherNames(rec *Record) []string {
	var out []string
	for _, name := range rec.Names {
		if name != rec.Main {
			out = append(out, name)
		}
	}
	return out
}
