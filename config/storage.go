package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
)

const (
	filePerm = 0o600
	dirPerm  = 0o750
)

// readFile returns the contents of path, or exists=false when there is no such file.
func readFile(fsys afero.Fs, path string) ([]byte, bool, error) {
	stat, err := fsys.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, fmt.Errorf("%w: stat file %q: %w", ErrIO, path, err)
	}

	if stat.IsDir() {
		return nil, false, fmt.Errorf("path %q: %w", path, ErrPathIsDirectory)
	}

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, false, fmt.Errorf("%w: reading file %q: %w", ErrIO, path, err)
	}

	return data, true, nil
}

// writeFile replaces path with data through a temporary sibling, creating parent directories.
// An existing file keeps its permission bits; new files get filePerm.
func writeFile(fsys afero.Fs, path string, data []byte) error {
	err := fsys.MkdirAll(filepath.Dir(path), dirPerm)
	if err != nil {
		return fmt.Errorf("%w: creating directory for %q: %w", ErrIO, path, err)
	}

	perm := fs.FileMode(filePerm)
	if stat, statErr := fsys.Stat(path); statErr == nil {
		perm = stat.Mode().Perm()
	}

	tmp := path + ".tmp"

	err = afero.WriteFile(fsys, tmp, data, perm)
	if err != nil {
		return fmt.Errorf("%w: writing file %q: %w", ErrIO, tmp, err)
	}

	err = fsys.Rename(tmp, path)
	if err != nil {
		_ = fsys.Remove(tmp)

		return fmt.Errorf("%w: replacing file %q: %w", ErrIO, path, err)
	}

	return nil
}

// copyResource writes the named resource to path and returns its contents. found is false, and
// nothing is written, when the resource does not exist.
func copyResource(fsys afero.Fs, path string, resource fs.FS, name string) ([]byte, bool, error) {
	data, err := fs.ReadFile(resource, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, fmt.Errorf("%w: reading default resource %q: %w", ErrIO, name, err)
	}

	err = writeFile(fsys, path, data)
	if err != nil {
		return nil, false, err
	}

	return data, true, nil
}
