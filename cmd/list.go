package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/hours-tracker/internal/tracker"
	"github.com/Tiliavir/hours-tracker/internal/ui"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the entries of the selected date",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
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
	fmt.Fprint(cmd.OutOrStdout(), ui.RenderEntries(session.Title(), session.Entries(), session.TotalHours()))
	return nil
}
