package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Tiliavir/hours-tracker/internal/model"
	"github.com/Tiliavir/hours-tracker/internal/timecalc"
	"github.com/Tiliavir/hours-tracker/internal/tracker"
)

// EntryRows turns entries into table rows: ID, time, ticket, comment.
func EntryRows(entries []model.TimeEntry) [][]string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			strconv.FormatInt(e.Timestamp, 10),
			StyleTime.Render(e.Time),
			e.TicketRef,
			e.Comment,
		})
	}
	return rows
}

// RenderEntries renders a titled entry table followed by the day's total.
func RenderEntries(title string, entries []model.TimeEntry, total float64) string {
	var b strings.Builder
	b.WriteString(Header(title))
	b.WriteString("\n")
	if len(entries) == 0 {
		b.WriteString(Dim("No entries found."))
		b.WriteString("\n")
	} else {
		b.WriteString(RenderTable([]string{"ID", "Time", "Ticket", "Comment"}, EntryRows(entries)))
	}
	b.WriteString(RenderTotal(total))
	return b.String()
}

// RenderTotal renders "Total: 1.75h (1h 45m)".
func RenderTotal(total float64) string {
	return fmt.Sprintf("%s %s\n",
		StyleTotal.Render("Total: "+timecalc.FormatHours(total)+"h"),
		Dim("("+timecalc.FormatDuration(timecalc.HoursToSeconds(total))+")"),
	)
}

// RenderHistoryPage renders one page of history: each date with its total
// and entries, then the page indicator. cursor marks one date; pass -1 for none.
func RenderHistoryPage(store *tracker.Store, dates []string, page, totalPages, cursor int) string {
	var b strings.Builder
	if len(dates) == 0 {
		b.WriteString(Dim("No history yet."))
		b.WriteString("\n")
	}
	for i, date := range dates {
		marker := "  "
		title := timecalc.LongDate(date)
		if i == cursor {
			marker = StyleCursor.Render("> ")
			title = StyleCursor.Render(title)
		}
		fmt.Fprintf(&b, "%s%s  %s\n", marker, title,
			StyleTotal.Render(timecalc.FormatHours(store.TotalHours(date))+"h total"))
		for _, e := range store.ByDate(date) {
			line := "    " + StyleTime.Render(e.Time)
			if e.TicketRef != "" {
				line += "  " + e.TicketRef
			}
			line += "  " + e.Comment + "  " + Dim("#"+strconv.FormatInt(e.Timestamp, 10))
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	if totalPages > 1 {
		b.WriteString(Dim(fmt.Sprintf("Page %d of %d", page, totalPages)))
		b.WriteString("\n")
	}
	return b.String()
}
