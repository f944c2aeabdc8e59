package jsonsheet

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Inbox lists and reads input documents.
type Inbox interface {
	// Exists reports whether the inbox is present.
	Exists() (bool, error)
	// List returns document paths in processing order.
	List() ([]string, error)
	// Read returns the content of a listed document.
	Read(path string) ([]byte, error)
}

// DirInbox is an Inbox backed by a directory.
type DirInbox struct {
	dir string
}

// NewDirInbox creates a DirInbox for dir.
func NewDirInbox(dir string) *DirInbox {
	return &DirInbox{dir: dir}
}

// Exists reports whether the directory is present.
func (b *DirInbox) Exists() (bool, error) {
	info, err := os.Stat(b.dir)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

// List returns the immediate *.json files of the directory (extension
// matched case-insensitively), sorted by name.
func (b *DirInbox) List() ([]string, error) {
	entries, err := os.ReadDir(b.dir)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !IsJSONName(e.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(b.dir, e.Name()))
	}
	return paths, nil
}

// Read returns the file content.
func (b *DirInbox) Read(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// IsJSONName reports whether name carries a .json extension in any case.
func IsJSONName(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".json")
}
