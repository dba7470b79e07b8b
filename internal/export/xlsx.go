package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// XLSXWriter writes workbooks as Office Open XML spreadsheets.
type XLSXWriter struct{}

// WriteWorkbook writes wb to path, one worksheet per sheet. Sheet naming
// rules (length, characters, uniqueness) are enforced by excelize.
func (XLSXWriter) WriteWorkbook(_ context.Context, wb Workbook, path string) error {
	if len(wb.Sheets) == 0 {
		return ErrNothingToExport
	}

	f := excelize.NewFile()
	defer f.Close()

	styles := map[*Style]int{}
	for i, sh := range wb.Sheets {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sh.Name); err != nil {
				return fmt.Errorf("naming sheet %q: %w", sh.Name, err)
			}
		} else if _, err := f.NewSheet(sh.Name); err != nil {
			return fmt.Errorf("adding sheet %q: %w", sh.Name, err)
		}
		if err := writeSheet(f, sh, styles); err != nil {
			return err
		}
	}
	f.SetActiveSheet(0)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating export directory: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sh Sheet, styles map[*Style]int) error {
	for c, w := range sh.ColumnWidths {
		col, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sh.Name, col, col, w); err != nil {
			return fmt.Errorf("setting width of column %s: %w", col, err)
		}
	}

	for r, row := range sh.Rows {
		for c, cell := range row {
			name, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			if cell.Value != "" {
				if err := f.SetCellValue(sh.Name, name, cell.Value); err != nil {
					return fmt.Errorf("writing %s!%s: %w", sh.Name, name, err)
				}
			}
			if cell.Style == nil {
				continue
			}
			id, ok := styles[cell.Style]
			if !ok {
				id, err = f.NewStyle(toExcelStyle(cell.Style))
				if err != nil {
					return fmt.Errorf("creating style: %w", err)
				}
				styles[cell.Style] = id
			}
			if err := f.SetCellStyle(sh.Name, name, name, id); err != nil {
				return fmt.Errorf("styling %s!%s: %w", sh.Name, name, err)
			}
		}
	}
	return nil
}

func toExcelStyle(s *Style) *excelize.Style {
	out := &excelize.Style{
		Font: &excelize.Font{Bold: s.Bold, Color: s.FontColor},
	}
	if s.Fill != "" {
		out.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{s.Fill}}
	}
	if s.Align != "" {
		out.Alignment = &excelize.Alignment{Horizontal: s.Align}
	}
	return out
}
