package jsonsheet

import (
	"errors"
	"fmt"
)

// ErrInputNotFound indicates the input folder does not exist.
var ErrInputNotFound = errors.New("input folder not found")

// ErrNoRows indicates no document produced a row.
var ErrNoRows = errors.New("no JSON files found")

// ErrArchiveIsInput indicates the archive folder resolves to the input folder.
var ErrArchiveIsInput = errors.New("archive folder must differ from the input folder")

// Stage names the step a FileError happened in.
type Stage string

const (
	// StageRead covers reading and flattening a document.
	StageRead Stage = "read"
	// StageArchive covers moving a document into the archive folder.
	StageArchive Stage = "archive"
)

// FileError represents a failure confined to one input file.
type FileError struct {
	Name  string
	Stage Stage
	Err   error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s (%s): %v", e.Name, e.Stage, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// NewFileError creates a new FileError.
func NewFileError(name string, stage Stage, err error) *FileError {
	return &FileError{
		Name:  name,
		Stage: stage,
		Err:   err,
	}
}
