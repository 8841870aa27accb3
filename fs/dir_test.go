package fs_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Bluscream/acedocs"
	"github.com/Bluscream/acedocs/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Dir implements acedocs.PageSource at compile time.
var _ acedocs.PageSource = (*fs.Dir)(nil)

func TestDir_ReadPage(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "lib", "MsgBox.htm"), "<h1>MsgBox</h1>")

	t.Run("reads page with URL", func(t *testing.T) {
		t.Parallel()

		d := fs.NewDir(root, "https://www.autohotkey.com/docs/v2/")

		page, err := d.ReadPage(context.Background(), "lib/MsgBox.htm")

		require.NoError(t, err)
		assert.Equal(t, "lib/MsgBox.htm", page.Path)
		assert.Equal(t, "https://www.autohotkey.com/docs/v2/lib/MsgBox.htm", page.URL)
		assert.Equal(t, "<h1>MsgBox</h1>", page.Body)
	})

	t.Run("normalizes path", func(t *testing.T) {
		t.Parallel()

		d := fs.NewDir(root, "")

		page, err := d.ReadPage(context.Background(), "lib/../lib/./MsgBox.htm")

		require.NoError(t, err)
		assert.Equal(t, "lib/MsgBox.htm", page.Path)
		assert.Empty(t, page.URL)
	})

	t.Run("returns ENOTFOUND for missing page", func(t *testing.T) {
		t.Parallel()

		d := fs.NewDir(root, "")

		_, err := d.ReadPage(context.Background(), "lib/Nope.htm")

		assert.Equal(t, acedocs.ENOTFOUND, acedocs.ErrorCode(err))
	})

	t.Run("rejects path traversal", func(t *testing.T) {
		t.Parallel()

		d := fs.NewDir(root, "")

		_, err := d.ReadPage(context.Background(), "../../etc/passwd")

		assert.Equal(t, acedocs.EINVALID, acedocs.ErrorCode(err))
		assert.Contains(t, acedocs.ErrorMessage(err), "path traversal")
	})
}

func TestDir_ListPages(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "lib", "WinMove.htm"), "")
	writeFile(t, filepath.Join(root, "lib", "Abs.htm"), "")
	writeFile(t, filepath.Join(root, "lib", "MsgBox.htm"), "")
	writeFile(t, filepath.Join(root, "lib", "notes.txt"), "")
	writeFile(t, filepath.Join(root, "lib", "sub", "Deep.htm"), "")
	writeFile(t, filepath.Join(root, "Hotkeys.htm"), "")

	t.Run("lists matching files in sorted order", func(t *testing.T) {
		t.Parallel()

		d := fs.NewDir(root, "")

		paths, err := d.ListPages(context.Background(), "lib", ".htm")

		require.NoError(t, err)
		assert.Equal(t, []string{"lib/Abs.htm", "lib/MsgBox.htm", "lib/WinMove.htm"}, paths)
	})

	t.Run("lists the root directory", func(t *testing.T) {
		t.Parallel()

		d := fs.NewDir(root, "")

		paths, err := d.ListPages(context.Background(), "", ".htm")

		require.NoError(t, err)
		assert.Equal(t, []string{"Hotkeys.htm"}, paths)
	})

	t.Run("returns ENOTFOUND for missing directory", func(t *testing.T) {
		t.Parallel()

		d := fs.NewDir(root, "")

		_, err := d.ListPages(context.Background(), "objects", ".htm")

		assert.Equal(t, acedocs.ENOTFOUND, acedocs.ErrorCode(err))
	})
}
