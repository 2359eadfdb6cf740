package fs

import (
	"os"
)

// EntryType represents the type of a filesystem entry.
type EntryType string

const (
	TypeDir  EntryType = "dir"
	TypeFile EntryType = "file" // anything that is not a directory
)

// Classify stats path, following symlinks, and reports whether it names a
// directory. A missing path returns an error matching os.ErrNotExist.
func Classify(path string) (EntryType, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return TypeDir, nil
	}
	return TypeFile, nil
}
