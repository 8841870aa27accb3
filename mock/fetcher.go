package mock

import (
	"context"

	"github.com/Bluscream/acedocs"
)

var _ acedocs.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of acedocs.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) ([]byte, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}
