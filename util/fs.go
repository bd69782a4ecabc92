package util

import (
	"path/filepath"

	"github.com/mediabar/mediabar/filesystem"
)

// ClearDir removes everything inside dir and keeps dir itself. It returns the number of entries removed.
func ClearDir(dir string) (removed int, err error) {
	fs := filesystem.API()

	entries, err := fs.ReadDir(dir)
	if err != nil {
		return 0, err
	}

	for _, entry := range entries {
		if err := fs.RemoveAll(filepath.Join(dir, entry.Name())); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}
