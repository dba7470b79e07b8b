package export

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Tiliavir/hours-tracker/internal/model"
)

func exportEntries() []model.TimeEntry {
	return []model.TimeEntry{
		{Date: "2024-01-02", Time: "1h", Comment: "Deploy", TicketRef: "OPS-7", Timestamp: 1},
		{Date: "2024-01-01", Time: "1h 15m", Comment: "Planning", TicketRef: "PROJ-1", Timestamp: 2},
		{Date: "2024-01-02", Time: "30m", Comment: "Standup", Timestamp: 3},
	}
}

func TestBuildWorkbook_SheetPerDateInFirstSeenOrder(t *testing.T) {
	wb := BuildWorkbook(exportEntries(), nil)

	require.Len(t, wb.Sheets, 2)
	assert.Equal(t, "2024-01-02", wb.Sheets[0].Name)
	assert.Equal(t, "2024-01-01", wb.Sheets[1].Name)
}

func TestBuildWorkbook_SheetLayout(t *testing.T) {
	wb := BuildWorkbook(exportEntries(), nil)
	sheet := wb.Sheets[0]

	assert.Equal(t, [][]string{
		{"Date", "Time", "Ticket Reference", "Comment", "Total Hours"},
		{"Tuesday, January 2, 2024", "1h", "OPS-7", "Deploy", "1.00"},
		{"Tuesday, January 2, 2024", "30m", "-", "Standup", "0.50"},
		{"", "", "", "TOTAL HOURS", "1.50"},
	}, sheet.Values())
	assert.Equal(t, ColumnWidths, sheet.ColumnWidths)
}

func TestBuildWorkbook_HalfCentRoundsUp(t *testing.T) {
	wb := BuildWorkbook([]model.TimeEntry{
		{Date: "2024-01-01", Time: "7m 30s", Comment: "Review", Timestamp: 1},
		{Date: "2024-01-02", Time: "1h 450s", Comment: "Call", Timestamp: 2},
	}, nil)

	require.Len(t, wb.Sheets, 2)
	assert.Equal(t, [][]string{
		{"Date", "Time", "Ticket Reference", "Comment", "Total Hours"},
		{"Monday, January 1, 2024", "7m 30s", "-", "Review", "0.13"},
		{"", "", "", "TOTAL HOURS", "0.13"},
	}, wb.Sheets[0].Values())
	assert.Equal(t, "1.13", wb.Sheets[1].Values()[1][4])
	assert.Equal(t, "1.13", wb.Sheets[1].Values()[2][4])
}

func TestBuildWorkbook_Styles(t *testing.T) {
	sheet := BuildWorkbook(exportEntries(), nil).Sheets[0]

	for _, c := range sheet.Rows[0] {
		assert.Same(t, HeaderStyle, c.Style)
	}
	for _, c := range sheet.Rows[1] {
		assert.Nil(t, c.Style)
	}
	last := sheet.Rows[len(sheet.Rows)-1]
	assert.Same(t, TotalLabelStyle, last[3].Style)
	assert.Same(t, TotalValueStyle, last[4].Style)
}

func TestBuildWorkbook_CustomDateFormat(t *testing.T) {
	wb := BuildWorkbook(exportEntries()[1:2], func(d string) string { return "day " + d })
	assert.Equal(t, "day 2024-01-01", wb.Sheets[0].Values()[1][0])
	assert.Equal(t, "1.25", wb.Sheets[0].Values()[2][4])
}

func TestBuildWorkbook_Empty(t *testing.T) {
	assert.Empty(t, BuildWorkbook(nil, nil).Sheets)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "hours-tracker-2024-01-02.xlsx", FileName("2024-01-02"))
}

type recordingWriter struct {
	wb   Workbook
	path string
	err  error
}

func (r *recordingWriter) WriteWorkbook(_ context.Context, wb Workbook, path string) error {
	r.wb = wb
	r.path = path
	return r.err
}

func TestExport_HandsWorkbookToWriter(t *testing.T) {
	w := &recordingWriter{}
	now := time.Date(2024, 1, 3, 10, 0, 0, 0, time.UTC)

	path, err := Export(context.Background(), exportEntries(), w, "out", now)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("out", "hours-tracker-2024-01-03.xlsx"), path)
	assert.Equal(t, path, w.path)
	assert.Len(t, w.wb.Sheets, 2)
}

func TestExport_WriterFailure(t *testing.T) {
	w := &recordingWriter{err: errors.New("permission denied")}

	_, err := Export(context.Background(), exportEntries(), w, ".", time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "permission denied")
}

func TestExport_NoEntries(t *testing.T) {
	_, err := Export(context.Background(), nil, &recordingWriter{}, ".", time.Now())
	assert.ErrorIs(t, err, ErrNothingToExport)
}

func TestXLSXWriter_WritesReadableWorkbook(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2024, 1, 3, 10, 0, 0, 0, time.UTC)

	path, err := Export(context.Background(), exportEntries(), XLSXWriter{}, dir, now)
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })

	assert.Equal(t, []string{"2024-01-02", "2024-01-01"}, f.GetSheetList())

	rows, err := f.GetRows("2024-01-02")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Date", "Time", "Ticket Reference", "Comment", "Total Hours"}, rows[0])
	assert.Equal(t, "-", rows[2][2])
	assert.Equal(t, []string{"", "", "", "TOTAL HOURS", "1.50"}, rows[3])

	width, err := f.GetColWidth("2024-01-02", "D")
	require.NoError(t, err)
	assert.InDelta(t, 50, width, 0.01)
}

func TestXLSXWriter_EmptyWorkbook(t *testing.T) {
	err := XLSXWriter{}.WriteWorkbook(context.Background(), Workbook{}, filepath.Join(t.TempDir(), "x.xlsx"))
	assert.ErrorIs(t, err, ErrNothingToExport)
}
