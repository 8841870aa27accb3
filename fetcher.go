package acedocs

import "context"

// Fetcher downloads the documentation archive.
type Fetcher interface {
	// Fetch returns the body served at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) ([]byte, error)

	// Close releases resources.
	Close() error
}

// ProgressFunc receives coarse build status messages.
type ProgressFunc func(status string)
