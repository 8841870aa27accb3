// Package zip extracts documentation archives using klauspost/compress.
package zip

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Bluscream/acedocs"
	"github.com/klauspost/compress/zip"
)

// Ensure Extractor implements acedocs.ArchiveExtractor at compile time.
var _ acedocs.ArchiveExtractor = (*Extractor)(nil)

// Extractor unpacks zip archives.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract writes every file of the zip archive in data below dir.
// Returns EINVALID if data is not a zip archive or an entry escapes dir.
func (e *Extractor) Extract(ctx context.Context, data []byte, dir string) error {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return acedocs.Errorf(acedocs.EINVALID, "invalid archive: %v", err)
	}

	for _, f := range r.File {
		if err := ctx.Err(); err != nil {
			return err
		}

		name := filepath.FromSlash(f.Name)
		if !filepath.IsLocal(name) {
			return acedocs.Errorf(acedocs.EINVALID, "archive entry %q escapes target directory", f.Name)
		}
		dest := filepath.Join(dir, name)

		if f.FileInfo().IsDir() || strings.HasSuffix(f.Name, "/") {
			if err := os.MkdirAll(dest, 0755); err != nil {
				return err
			}
			continue
		}

		if err := extractFile(f, dest); err != nil {
			return fmt.Errorf("extracting %s: %w", f.Name, err)
		}
	}
	return nil
}

func extractFile(f *zip.File, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return err
	}

	src, err := f.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
