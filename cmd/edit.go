package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/Tiliavir/hours-tracker/internal/timecalc"
	"github.com/Tiliavir/hours-tracker/internal/tracker"
	"github.com/Tiliavir/hours-tracker/internal/ui"
)

var (
	editTime    string
	editComment string
	editTicket  string
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an entry's time, comment or ticket reference",
	Long: `Edit an entry by its id (shown by "hours list" and "hours history").
Only the given flags change; the entry keeps its id and date. Without
flags in a terminal, an interactive form opens pre-filled.`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVar(&editTime, "time", "", "New duration, e.g. 2h 15m")
	editCmd.Flags().StringVar(&editComment, "comment", "", "New comment")
	editCmd.Flags().StringVar(&editTicket, "ticket", "", "New ticket reference (use --ticket= to clear)")
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, usageError(fmt.Errorf("invalid entry id %q", s))
	}
	return id, nil
}

func runEdit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	store, closeStore, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	entry, ok := store.Get(id)
	if !ok {
		return usageError(fmt.Errorf("no entry with id %d", id))
	}

	session := tracker.NewSession(store, now, cfg.PageSize)
	session.BeginEdit(entry)

	in := ui.EntryInput{Time: entry.Time, Comment: entry.Comment, TicketRef: entry.TicketRef}
	flags := cmd.Flags()
	changed := flags.Changed("time") || flags.Changed("comment") || flags.Changed("ticket")
	switch {
	case changed:
		if flags.Changed("time") {
			in.Time = editTime
		}
		if flags.Changed("comment") {
			in.Comment = editComment
		}
		if flags.Changed("ticket") {
			in.TicketRef = editTicket
		}
	case interactive():
		if err := ui.NewEntryForm("Edit entry "+strconv.FormatInt(id, 10), &in).Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				session.Cancel()
				fmt.Fprintln(out, "Cancelled.")
				return nil
			}
			return err
		}
	default:
		return usageError(errors.New("nothing to change: pass --time, --comment or --ticket"))
	}

	session.SetTime(in.Time)
	session.SetComment(in.Comment)
	session.SetTicketRef(in.TicketRef)
	fieldErrs, err := session.Submit(ctx)
	if !fieldErrs.OK() {
		return usageError(formErrors(cmd.ErrOrStderr(), fieldErrs))
	}
	if err != nil {
		return storageError(err)
	}

	updated, _ := store.Get(id)
	fmt.Fprintf(out, "Updated entry %d: %s (%sh) %s\n",
		id, updated.Time, timecalc.FormatHours(timecalc.ParseHours(updated.Time)), updated.Comment)
	return nil
}
