// Package adapter contains the infrastructure adapters the snipcomp domain
// relies on.
package adapter

import (
	"os"
	"path/filepath"

	m "snipcomp.dev/pkg/snipcomp/internal/model"
)

const outputDirPerm = 0o750

// SourceFSAdapter is the domain's only door to the disk: spec documents and
// example files are read through it, merged documents and reports written.
type SourceFSAdapter interface {
	// ReadFile returns the whole content of a spec or example file.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile replaces path with content, creating parent directories.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// JoinPath builds an example file path from its directory and name.
	JoinPath(elem ...string) m.Path
}

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter returns the adapter used outside of tests.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	// #nosec G304 - reading user-named spec and example files is the purpose
	return os.ReadFile(string(path))
}

func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	if dir := filepath.Dir(string(path)); dir != "." {
		if err := os.MkdirAll(dir, outputDirPerm); err != nil {
			return err
		}
	}

	return os.WriteFile(string(path), content, perm)
}

func (a *LocalSourceFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
