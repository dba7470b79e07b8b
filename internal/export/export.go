package export

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/Tiliavir/hours-tracker/internal/model"
	"github.com/Tiliavir/hours-tracker/internal/timecalc"
)

// ErrNothingToExport is returned when there are no entries.
var ErrNothingToExport = errors.New("no entries to export")

// Writer serializes a workbook to path.
type Writer interface {
	WriteWorkbook(ctx context.Context, wb Workbook, path string) error
}

// FileName is the export file name for the given YYYY-MM-DD date.
func FileName(today string) string {
	return fmt.Sprintf("hours-tracker-%s.xlsx", today)
}

// Export builds the workbook for entries and writes it into dir as
// FileName(today). It returns the written path.
func Export(ctx context.Context, entries []model.TimeEntry, w Writer, dir string, now time.Time) (string, error) {
	if len(entries) == 0 {
		return "", ErrNothingToExport
	}
	wb := BuildWorkbook(entries, timecalc.LongDate)
	path := filepath.Join(dir, FileName(timecalc.Today(now)))
	if err := w.WriteWorkbook(ctx, wb, path); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
