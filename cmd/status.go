package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/hours-tracker/internal/timecalc"
	"github.com/Tiliavir/hours-tracker/internal/tracker"
)

var statusCmd = &cobra.Command{
	Use:     "status",
	Aliases: []string{"total"},
	Short:   "Show total hours for the selected date",
	Args:    cobra.NoArgs,
	RunE:    runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	date, err := selectedDate()
	if err != nil {
		return err
	}

	store, closeStore, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	session := tracker.NewSession(store, now, cfg.PageSize)
	if err := selectDate(session, date); err != nil {
		return err
	}
	total := session.TotalHours()

	fmt.Fprintf(cmd.OutOrStdout(), "Total Hours for %s: %sh (%s, %d entries)\n",
		timecalc.LongDate(date),
		timecalc.FormatHours(total),
		timecalc.FormatDuration(timecalc.HoursToSeconds(total)),
		len(session.Entries()),
	)
	return nil
}
