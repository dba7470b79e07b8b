package tracker

import (
	"sort"

	"github.com/Tiliavir/hours-tracker/internal/model"
	"github.com/Tiliavir/hours-tracker/internal/timecalc"
)

// TotalHours sums ParseHours over the entries logged against date.
func TotalHours(entries []model.TimeEntry, date string) float64 {
	var total float64
	for _, e := range entries {
		if e.Date == date {
			total += timecalc.ParseHours(e.Time)
		}
	}
	return total
}

// DistinctDates returns the set of entry dates sorted descending. For
// YYYY-MM-DD strings lexicographic order is chronological order.
func DistinctDates(entries []model.TimeEntry) []string {
	seen := map[string]bool{}
	dates := []string{}
	for _, e := range entries {
		if seen[e.Date] {
			continue
		}
		seen[e.Date] = true
		dates = append(dates, e.Date)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	return dates
}

func filterByDate(entries []model.TimeEntry, date string) []model.TimeEntry {
	out := []model.TimeEntry{}
	for _, e := range entries {
		if e.Date == date {
			out = append(out, e)
		}
	}
	return out
}
