package repository

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/calldesk-team/call-insight/internal/domain/entities"
)

// csvHeader is written once, when the log file is first created
var csvHeader = []string{"Transcript", "Summary", "Sentiment"}

// CSVAnalysisLog appends analyses to a local CSV file. The file is opened
// in append mode for each call; there is no persistent handle and no
// locking, so concurrent writers may interleave at write-call granularity.
type CSVAnalysisLog struct {
	path string
}

// NewCSVAnalysisLog creates a CSV-backed analysis log at the given path
func NewCSVAnalysisLog(path string) *CSVAnalysisLog {
	return &CSVAnalysisLog{path: path}
}

// Path returns the log file location
func (r *CSVAnalysisLog) Path() string {
	return r.path
}

// Append writes one analysis row, preceded by the header row when the file
// does not yet exist.
func (r *CSVAnalysisLog) Append(ctx context.Context, analysis *entities.Analysis) error {
	_, statErr := os.Stat(r.path)
	fileExists := statErr == nil

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open csv log: %w", err)
	}

	w := csv.NewWriter(f)
	if !fileExists {
		if err := w.Write(csvHeader); err != nil {
			f.Close()
			return fmt.Errorf("failed to write csv header: %w", err)
		}
	}
	row := []string{analysis.Transcript, analysis.Result.Summary, analysis.Result.Sentiment.String()}
	if err := w.Write(row); err != nil {
		f.Close()
		return fmt.Errorf("failed to write csv row: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("failed to flush csv log: %w", err)
	}
	return f.Close()
}
