package mock

import "github.com/Bluscream/acedocs"

var _ acedocs.Workspace = (*Workspace)(nil)

// Workspace is a mock implementation of acedocs.Workspace.
type Workspace struct {
	StagingDirFn func() string
	DirFn        func() string
	CommitFn     func() error
	AbortFn      func() error
}

func (w *Workspace) StagingDir() string {
	return w.StagingDirFn()
}

func (w *Workspace) Dir() string {
	return w.DirFn()
}

func (w *Workspace) Commit() error {
	return w.CommitFn()
}

func (w *Workspace) Abort() error {
	return w.AbortFn()
}
