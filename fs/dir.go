package fs

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/Bluscream/acedocs"
)

// Ensure Dir implements acedocs.PageSource at compile time.
var _ acedocs.PageSource = (*Dir)(nil)

// Dir reads documentation pages from a directory. Page paths are slash
// separated and relative to the directory.
type Dir struct {
	root    string
	baseURL string
}

// NewDir creates a Dir rooted at root. Pages get their URL by joining
// baseURL and the page path; an empty baseURL leaves URLs empty.
func NewDir(root, baseURL string) *Dir {
	return &Dir{root: root, baseURL: baseURL}
}

// ReadPage returns the page at the relative path.
func (d *Dir) ReadPage(ctx context.Context, p string) (*acedocs.Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	clean, err := cleanPath(p)
	if err != nil {
		return nil, err
	}

	body, err := os.ReadFile(filepath.Join(d.root, filepath.FromSlash(clean)))
	if os.IsNotExist(err) {
		return nil, acedocs.Errorf(acedocs.ENOTFOUND, "page %q not found", p)
	} else if err != nil {
		return nil, err
	}

	page := &acedocs.Page{Path: clean, Body: string(body)}
	if d.baseURL != "" {
		page.URL = strings.TrimSuffix(d.baseURL, "/") + "/" + clean
	}
	return page, nil
}

// ListPages returns the paths of files directly inside dir ending in ext,
// sorted by name.
func (d *Dir) ListPages(ctx context.Context, dir string, ext string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	clean, err := cleanPath(dir)
	if err != nil {
		return nil, err
	}

	// os.ReadDir returns entries sorted by filename.
	entries, err := os.ReadDir(filepath.Join(d.root, filepath.FromSlash(clean)))
	if os.IsNotExist(err) {
		return nil, acedocs.Errorf(acedocs.ENOTFOUND, "directory %q not found", dir)
	} else if err != nil {
		return nil, err
	}

	var paths []string
	for _, e := range entries {
		if !e.Type().IsRegular() || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		paths = append(paths, path.Join(clean, e.Name()))
	}
	return paths, nil
}

// cleanPath normalizes a relative page path and rejects paths leaving the
// root.
func cleanPath(p string) (string, error) {
	if p == "" {
		return ".", nil
	}
	if !filepath.IsLocal(filepath.FromSlash(p)) {
		return "", acedocs.Errorf(acedocs.EINVALID, "path traversal in %q", p)
	}
	return path.Clean(filepath.ToSlash(p)), nil
}
