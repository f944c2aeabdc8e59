// Package sheet persists tables as single-sheet xlsx workbooks.
package sheet

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/ukaji3/jsonsheet-go/pkg/jsonsheet/models"
	"github.com/xuri/excelize/v2"
)

// DefaultSheetName is the worksheet name used when none is configured.
const DefaultSheetName = "Sheet1"

// Store loads and saves the output table.
type Store interface {
	Exists() (bool, error)
	Load() (*models.Table, error)
	Save(t *models.Table) error
}

// FileStore implements Store on an xlsx file.
type FileStore struct {
	path      string
	sheetName string
}

// NewFileStore creates a FileStore writing sheetName in the workbook at path.
func NewFileStore(path, sheetName string) *FileStore {
	if sheetName == "" {
		sheetName = DefaultSheetName
	}
	return &FileStore{path: path, sheetName: sheetName}
}

// Exists reports whether the workbook file is present.
func (s *FileStore) Exists() (bool, error) {
	_, err := os.Stat(s.path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Load reads the first worksheet of the workbook.
func (s *FileStore) Load() (*models.Table, error) {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, &LoadError{Path: s.path, Err: err}
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &LoadError{Path: s.path, Err: errors.New("workbook has no sheets")}
	}

	t, err := ReadTable(f, sheets[0])
	if err != nil {
		return nil, &LoadError{Path: s.path, Err: err}
	}
	return t, nil
}

// Save replaces the workbook with t. The workbook is written to a temporary
// file next to the target and renamed over it.
func (s *FileStore) Save(t *models.Table) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if s.sheetName != DefaultSheetName {
		if err := f.SetSheetName(DefaultSheetName, s.sheetName); err != nil {
			return fmt.Errorf("naming sheet: %w", err)
		}
	}
	if err := WriteTable(f, s.sheetName, t); err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	tmp := filepath.Join(dir, "."+uuid.New().String()+".xlsx.tmp")
	out, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	if err := f.Write(out); err != nil {
		out.Close()
		os.Remove(tmp)
		return fmt.Errorf("writing workbook: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("writing workbook: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing %s: %w", s.path, err)
	}
	return nil
}
