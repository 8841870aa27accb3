// Package fs provides file-based access to the extracted documentation.
package fs

import (
	"os"
	"path/filepath"

	"github.com/Bluscream/acedocs"
)

// Ensure Workspace implements acedocs.Workspace at compile time.
var _ acedocs.Workspace = (*Workspace)(nil)

// Workspace implements acedocs.Workspace with atomic update semantics.
// Archives are extracted to a staging directory, then moved atomically on
// Commit.
type Workspace struct {
	baseDir string
	name    string
}

// NewWorkspace creates a new Workspace.
// baseDir is the parent directory, name is the docs directory name.
// Files are staged in baseDir/name.tmp and moved to baseDir/name on Commit.
func NewWorkspace(baseDir, name string) *Workspace {
	return &Workspace{
		baseDir: baseDir,
		name:    name,
	}
}

// StagingDir returns the directory archives are extracted into.
func (w *Workspace) StagingDir() string {
	return filepath.Join(w.baseDir, w.name+".tmp")
}

// Dir returns the directory holding the committed documentation.
func (w *Workspace) Dir() string {
	return filepath.Join(w.baseDir, w.name)
}

func (w *Workspace) Commit() error {
	if _, err := os.Stat(w.StagingDir()); err != nil {
		if os.IsNotExist(err) {
			return acedocs.Errorf(acedocs.ENOTFOUND, "nothing staged in %s", w.StagingDir())
		}
		return err
	}

	// Remove existing final directory if present
	if err := os.RemoveAll(w.Dir()); err != nil {
		return err
	}

	return os.Rename(w.StagingDir(), w.Dir())
}

func (w *Workspace) Abort() error {
	return os.RemoveAll(w.StagingDir())
}
