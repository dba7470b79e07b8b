package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/hours-tracker/internal/tracker"
	"github.com/Tiliavir/hours-tracker/internal/ui"
)

var (
	historyPage        int
	historySize        int
	historyInteractive bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show logged dates with their totals, newest first",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyPage, "page", 1, "Page number (1-based)")
	historyCmd.Flags().IntVar(&historySize, "size", 0, "Dates per page (default from config, 5)")
	historyCmd.Flags().BoolVarP(&historyInteractive, "interactive", "i", false, "Browse history interactively")
}

func runHistory(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	size := historySize
	if size <= 0 {
		size = cfg.PageSize
	}

	store, closeStore, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	session := tracker.NewSession(store, now, size)
	session.ToggleHistory()

	if historyInteractive {
		if !interactive() {
			return usageError(fmt.Errorf("--interactive needs a terminal"))
		}
		chosen, err := ui.RunHistory(session, store)
		if err != nil {
			return err
		}
		if chosen != "" {
			fmt.Fprint(out, ui.RenderEntries(session.Title(), session.Entries(), session.TotalHours()))
		}
		return nil
	}

	if !session.SetPage(historyPage) {
		return usageError(fmt.Errorf("page %d out of range (1-%d)", historyPage, session.TotalPages()))
	}
	fmt.Fprintln(out, ui.Header("History"))
	fmt.Fprint(out, ui.RenderHistoryPage(store, session.HistoryPage(), session.Page(), session.TotalPages(), -1))
	return nil
}
