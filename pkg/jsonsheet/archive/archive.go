// Package archive moves processed input files into an archive folder.
package archive

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// SuffixLayout is the timestamp inserted before the extension on a name collision.
const SuffixLayout = "20060102150405"

// Archiver relocates a processed file and returns its new path.
type Archiver interface {
	Archive(path string) (string, error)
}

// DirArchiver moves files into a single directory, never overwriting.
type DirArchiver struct {
	dir string
	now func() time.Time
}

// NewDirArchiver creates a DirArchiver targeting dir.
// The directory is created on the first Archive call.
func NewDirArchiver(dir string, now func() time.Time) *DirArchiver {
	if now == nil {
		now = time.Now
	}
	return &DirArchiver{dir: dir, now: now}
}

// Archive moves path into the archive directory.
// If the name is taken, "_<timestamp>" is inserted before the extension,
// then "-2", "-3", ... until the destination is free.
func (a *DirArchiver) Archive(path string) (string, error) {
	if err := os.MkdirAll(a.dir, 0755); err != nil {
		return "", fmt.Errorf("creating archive directory: %w", err)
	}

	dest, err := a.destination(filepath.Base(path))
	if err != nil {
		return "", err
	}

	if err := os.Rename(path, dest); err != nil {
		return "", fmt.Errorf("moving %s: %w", filepath.Base(path), err)
	}
	return dest, nil
}

// destination resolves a free path for name inside the archive directory.
func (a *DirArchiver) destination(name string) (string, error) {
	dest := filepath.Join(a.dir, name)
	taken, err := exists(dest)
	if err != nil || !taken {
		return dest, err
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	stamped := base + "_" + a.now().Format(SuffixLayout)

	dest = filepath.Join(a.dir, stamped+ext)
	for n := 2; ; n++ {
		taken, err := exists(dest)
		if err != nil || !taken {
			return dest, err
		}
		dest = filepath.Join(a.dir, fmt.Sprintf("%s-%d%s", stamped, n, ext))
	}
}

func exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}
