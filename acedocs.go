// Package acedocs builds a searchable index of a third-party HTML
// documentation set and renders documentation fragments into short,
// length-bounded text for a chat help command.
//
// The pipeline downloads the documentation archive, parses entries out of
// heading, table and name-index structures, resolves and deduplicates entry
// names across pages, and renders HTML on demand under a fixed character
// budget.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, yaml/).
package acedocs
