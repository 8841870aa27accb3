package acedocs

import "context"

// ArchiveExtractor unpacks a downloaded documentation archive.
type ArchiveExtractor interface {
	// Extract writes every file of the archive below dir, keeping the
	// archive's relative paths. Entries escaping dir are rejected.
	Extract(ctx context.Context, data []byte, dir string) error
}
