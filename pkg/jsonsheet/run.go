package jsonsheet

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/ukaji3/jsonsheet-go/pkg/jsonsheet/archive"
	"github.com/ukaji3/jsonsheet-go/pkg/jsonsheet/flatten"
	"github.com/ukaji3/jsonsheet-go/pkg/jsonsheet/models"
	"github.com/ukaji3/jsonsheet-go/pkg/jsonsheet/sheet"
)

// Status is the terminal state of a run.
type Status string

const (
	// StatusNoInput means the input folder was missing; nothing changed.
	StatusNoInput Status = "no_input"
	// StatusNoRows means no document produced a row; the output was not touched.
	StatusNoRows Status = "no_rows"
	// StatusDone means the output table was written.
	StatusDone Status = "done"
)

// Result summarizes a run.
type Result struct {
	// RunID identifies the run in log output.
	RunID string
	// Status is the terminal state.
	Status Status
	// Rows is the number of rows collected in this run.
	Rows int
	// TotalRows is the number of rows in the written table.
	TotalRows int
	// Archived lists archive destinations in processing order.
	Archived []string
	// Failures lists files that were skipped or left unarchived.
	Failures []*FileError
	// PriorDiscarded is set when an unreadable output table was replaced.
	PriorDiscarded bool
}

// Err returns the sentinel matching an early terminal state, or nil.
func (r *Result) Err() error {
	switch r.Status {
	case StatusNoInput:
		return ErrInputNotFound
	case StatusNoRows:
		return ErrNoRows
	}
	return nil
}

// Runner drives one pass over an inbox.
type Runner struct {
	Inbox    Inbox
	Archiver archive.Archiver
	Store    sheet.Store
	Flatten  flatten.Options

	// StrictOutput fails the run on an unreadable output table.
	StrictOutput bool
	Now          func() time.Time
	Logger       *log.Logger
}

// NewRunner wires file system implementations from opts.
func NewRunner(opts Options) (*Runner, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	now := opts.clock()
	return &Runner{
		Inbox:        NewDirInbox(opts.InputDir),
		Archiver:     archive.NewDirArchiver(opts.ArchivePath(), now),
		Store:        sheet.NewFileStore(opts.OutputFile, opts.SheetName),
		Flatten:      flatten.Options{Missing: opts.Missing},
		StrictOutput: opts.StrictOutput,
		Now:          now,
		Logger:       opts.logger(),
	}, nil
}

// Run processes the input folder described by opts.
func Run(opts Options) (*Result, error) {
	r, err := NewRunner(opts)
	if err != nil {
		return nil, err
	}
	return r.Run()
}

// Run processes every document in the inbox, archives the ones that
// flattened, and appends their rows to the output table.
// Per-file failures are recorded in the Result and do not stop the run.
func (r *Runner) Run() (*Result, error) {
	res := &Result{RunID: uuid.New().String()}
	logger := r.Logger
	if logger == nil {
		logger = log.Default()
	}
	now := r.Now
	if now == nil {
		now = time.Now
	}

	ok, err := r.Inbox.Exists()
	if err != nil {
		return nil, fmt.Errorf("checking input folder: %w", err)
	}
	if !ok {
		res.Status = StatusNoInput
		logger.Printf("Input folder not found.")
		return res, nil
	}

	paths, err := r.Inbox.List()
	if err != nil {
		return nil, fmt.Errorf("listing input folder: %w", err)
	}

	logger.Printf("Run %s: %d file(s) to process", res.RunID, len(paths))

	var rows []models.Row
	for _, path := range paths {
		name := filepath.Base(path)
		logger.Printf("Processing: %s", name)

		row, err := r.flatten(path, now())
		if err != nil {
			res.Failures = append(res.Failures, NewFileError(name, StageRead, err))
			logger.Printf("Error processing %s: %v", name, err)
			continue
		}
		rows = append(rows, row)

		dest, err := r.Archiver.Archive(path)
		if err != nil {
			res.Failures = append(res.Failures, NewFileError(name, StageArchive, err))
			logger.Printf("Error processing %s: %v", name, err)
			continue
		}
		res.Archived = append(res.Archived, dest)
	}

	res.Rows = len(rows)
	if len(rows) == 0 {
		res.Status = StatusNoRows
		logger.Printf("No JSON files found.")
		return res, nil
	}

	final, err := r.merge(models.NewTable(rows...), res, logger)
	if err != nil {
		return nil, err
	}

	if err := r.Store.Save(final); err != nil {
		return nil, fmt.Errorf("saving output table: %w", err)
	}

	res.Status = StatusDone
	res.TotalRows = final.Len()
	logger.Printf("Excel updated successfully! (%d new rows, %d total)", res.Rows, res.TotalRows)
	return res, nil
}

func (r *Runner) flatten(path string, now time.Time) (models.Row, error) {
	data, err := r.Inbox.Read(path)
	if err != nil {
		return models.Row{}, err
	}
	return flatten.Flatten(data, now, r.Flatten)
}

// merge prepends the existing output table to next, if there is one.
func (r *Runner) merge(next *models.Table, res *Result, logger *log.Logger) (*models.Table, error) {
	ok, err := r.Store.Exists()
	if err == nil && !ok {
		return next, nil
	}

	var prior *models.Table
	if err == nil {
		prior, err = r.Store.Load()
	}
	if err != nil {
		if r.StrictOutput {
			return nil, fmt.Errorf("reading existing output table: %w", err)
		}
		logger.Printf("Warning: existing output is unreadable and will be replaced: %v", err)
		res.PriorDiscarded = true
		return next, nil
	}
	return models.Concat(prior, next), nil
}
