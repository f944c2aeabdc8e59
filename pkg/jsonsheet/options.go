// Package jsonsheet converts folders of field/confidence JSON documents into
// a cumulative spreadsheet.
package jsonsheet

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/ukaji3/jsonsheet-go/pkg/jsonsheet/flatten"
	"github.com/ukaji3/jsonsheet-go/pkg/jsonsheet/sheet"
)

const (
	// DefaultInputDir is the folder scanned for *.json files.
	DefaultInputDir = "json_input"
	// DefaultOutputFile is the cumulative workbook.
	DefaultOutputFile = "output.xlsx"
	// DefaultArchiveDir is the archive folder name under the input folder.
	DefaultArchiveDir = "processed"
)

// Options configures a run.
type Options struct {
	// InputDir is the folder holding *.json documents.
	InputDir string
	// OutputFile is the xlsx workbook receiving the rows.
	OutputFile string
	// ArchiveDir receives processed documents. A relative path is
	// resolved against InputDir.
	ArchiveDir string
	// SheetName names the worksheet written to OutputFile.
	SheetName string
	// Missing is rendered for an absent or null value/confidence.
	Missing string
	// StrictOutput fails the run when an existing OutputFile cannot be read
	// instead of replacing it with the new rows.
	StrictOutput bool
	// Now returns the current time. If nil, time.Now is used.
	Now func() time.Time
	// Logger receives progress messages. If nil, log.Default() is used.
	Logger *log.Logger
}

// DefaultOptions returns default run options.
func DefaultOptions() Options {
	return Options{
		InputDir:   DefaultInputDir,
		OutputFile: DefaultOutputFile,
		ArchiveDir: DefaultArchiveDir,
		SheetName:  sheet.DefaultSheetName,
		Missing:    flatten.DefaultMissing,
	}
}

// ArchivePath returns the resolved archive folder.
func (o Options) ArchivePath() string {
	dir := o.ArchiveDir
	if dir == "" {
		dir = DefaultArchiveDir
	}
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(o.InputDir, dir)
}

// Validate checks that the options describe a usable run.
func (o Options) Validate() error {
	if o.InputDir == "" {
		return errors.New("input folder must not be empty")
	}
	if o.OutputFile == "" {
		return errors.New("output file must not be empty")
	}

	input, err := filepath.Abs(o.InputDir)
	if err != nil {
		return fmt.Errorf("resolving input folder: %w", err)
	}
	archiveDir, err := filepath.Abs(o.ArchivePath())
	if err != nil {
		return fmt.Errorf("resolving archive folder: %w", err)
	}
	if input == archiveDir {
		return fmt.Errorf("%w: %s", ErrArchiveIsInput, o.ArchivePath())
	}
	return nil
}

func (o Options) clock() func() time.Time {
	if o.Now != nil {
		return o.Now
	}
	return time.Now
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.Default()
}
