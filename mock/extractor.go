package mock

import (
	"context"

	"github.com/Bluscream/acedocs"
)

var _ acedocs.ArchiveExtractor = (*ArchiveExtractor)(nil)

// ArchiveExtractor is a mock implementation of acedocs.ArchiveExtractor.
type ArchiveExtractor struct {
	ExtractFn func(ctx context.Context, data []byte, dir string) error
}

func (e *ArchiveExtractor) Extract(ctx context.Context, data []byte, dir string) error {
	return e.ExtractFn(ctx, data, dir)
}
