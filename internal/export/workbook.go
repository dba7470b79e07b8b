package export

import (
	"github.com/Tiliavir/hours-tracker/internal/model"
	"github.com/Tiliavir/hours-tracker/internal/timecalc"
	"github.com/Tiliavir/hours-tracker/internal/tracker"
)

// Header is the first row of every sheet.
var Header = []string{"Date", "Time", "Ticket Reference", "Comment", "Total Hours"}

// ColumnWidths are the width hints for the five columns, in characters.
var ColumnWidths = []float64{20, 15, 20, 50, 15}

const (
	// TotalLabel marks the trailing totals row.
	TotalLabel = "TOTAL HOURS"
	// NoTicket stands in for an empty ticket reference.
	NoTicket = "-"
)

// Cosmetic styles for the header and totals rows.
var (
	HeaderStyle     = &Style{Bold: true, FontColor: "FFFFFF", Fill: "4A90E2", Align: "center"}
	TotalLabelStyle = &Style{Bold: true, FontColor: "FFFFFF", Fill: "2ECC71", Align: "right"}
	TotalValueStyle = &Style{Bold: true, FontColor: "FFFFFF", Fill: "2ECC71", Align: "center"}
)

// Style is optional per-cell presentation metadata. It carries no data.
type Style struct {
	Bold      bool
	FontColor string
	Fill      string
	Align     string
}

// Cell is one spreadsheet cell.
type Cell struct {
	Value string
	Style *Style
}

// Sheet is a named 2-D grid of cells.
type Sheet struct {
	Name         string
	Rows         [][]Cell
	ColumnWidths []float64
}

// Workbook is an ordered list of sheets.
type Workbook struct {
	Sheets []Sheet
}

// Values returns the sheet's cell values without styles.
func (s Sheet) Values() [][]string {
	out := make([][]string, len(s.Rows))
	for i, row := range s.Rows {
		out[i] = make([]string, len(row))
		for j, c := range row {
			out[i][j] = c.Value
		}
	}
	return out
}

// BuildWorkbook lays out one sheet per date. Sheets appear in the order each
// date first occurs in entries, and rows keep insertion order within a date.
// formatDate renders the Date column; nil means timecalc.LongDate.
func BuildWorkbook(entries []model.TimeEntry, formatDate func(string) string) Workbook {
	if formatDate == nil {
		formatDate = timecalc.LongDate
	}

	var order []string
	byDate := map[string][]model.TimeEntry{}
	for _, e := range entries {
		if _, seen := byDate[e.Date]; !seen {
			order = append(order, e.Date)
		}
		byDate[e.Date] = append(byDate[e.Date], e)
	}

	wb := Workbook{Sheets: make([]Sheet, 0, len(order))}
	for _, date := range order {
		wb.Sheets = append(wb.Sheets, buildSheet(date, byDate[date], formatDate))
	}
	return wb
}

func buildSheet(date string, entries []model.TimeEntry, formatDate func(string) string) Sheet {
	rows := make([][]Cell, 0, len(entries)+2)

	header := make([]Cell, len(Header))
	for i, h := range Header {
		header[i] = Cell{Value: h, Style: HeaderStyle}
	}
	rows = append(rows, header)

	long := formatDate(date)
	for _, e := range entries {
		ticket := e.TicketRef
		if ticket == "" {
			ticket = NoTicket
		}
		rows = append(rows, []Cell{
			{Value: long},
			{Value: e.Time},
			{Value: ticket},
			{Value: e.Comment},
			{Value: timecalc.FormatHours(timecalc.ParseHours(e.Time))},
		})
	}

	rows = append(rows, []Cell{
		{}, {}, {},
		{Value: TotalLabel, Style: TotalLabelStyle},
		{Value: timecalc.FormatHours(tracker.TotalHours(entries, date)), Style: TotalValueStyle},
	})

	return Sheet{
		Name:         date,
		Rows:         rows,
		ColumnWidths: append([]float64(nil), ColumnWidths...),
	}
}
