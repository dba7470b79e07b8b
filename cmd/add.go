package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/Tiliavir/hours-tracker/internal/timecalc"
	"github.com/Tiliavir/hours-tracker/internal/tracker"
	"github.com/Tiliavir/hours-tracker/internal/ui"
)

var addTicket string

var addCmd = &cobra.Command{
	Use:   "add [duration] [comment...]",
	Short: "Log a time entry on the selected date",
	Long: `Log a time entry on the selected date (--date, default today).

Durations use days, hours, minutes and seconds in that order, e.g.
"45m", "1h 45m" or "2d 1h 45m 35s". Run without arguments in a terminal
to fill in an interactive form.`,
	Example: `  hours add "1h 45m" Code review --ticket PROJ-123
  hours add 30m Standup --date 2024-01-15`,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addTicket, "ticket", "", "Optional ticket reference, e.g. #123 or PROJ-123")
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	date, err := selectedDate()
	if err != nil {
		return err
	}

	in := ui.EntryInput{TicketRef: addTicket}
	if len(args) > 0 {
		in.Time = args[0]
	}
	if len(args) > 1 {
		in.Comment = strings.Join(args[1:], " ")
	}
	if len(args) < 2 && interactive() {
		if err := ui.NewEntryForm("New entry for "+timecalc.LongDate(date), &in).Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				fmt.Fprintln(out, "Cancelled.")
				return nil
			}
			return err
		}
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
	session.SetTime(in.Time)
	session.SetComment(in.Comment)
	session.SetTicketRef(in.TicketRef)

	before := len(store.All())
	fieldErrs, err := session.Submit(ctx)
	if !fieldErrs.OK() {
		return usageError(formErrors(cmd.ErrOrStderr(), fieldErrs))
	}
	if err != nil {
		return storageError(err)
	}

	added := store.All()[before]
	fmt.Fprintf(out, "Added %s (%sh) on %s [id %d]\n",
		added.Time, timecalc.FormatHours(timecalc.ParseHours(added.Time)), added.Date, added.Timestamp)
	fmt.Fprint(out, ui.RenderTotal(store.TotalHours(added.Date)))
	return nil
}

// formErrors prints each field message and returns a summary error.
func formErrors(w io.Writer, fe tracker.FieldErrors) error {
	if fe.Time != "" {
		fmt.Fprintln(w, ui.FieldError("time", fe.Time))
	}
	if fe.Comment != "" {
		fmt.Fprintln(w, ui.FieldError("comment", fe.Comment))
	}
	return errors.New("entry not saved")
}
