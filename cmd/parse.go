package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/hours-tracker/internal/timecalc"
	"github.com/Tiliavir/hours-tracker/internal/tracker"
)

var parseCmd = &cobra.Command{
	Use:   "parse <duration>",
	Short: "Check a duration expression and show it in hours",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	expr := args[0]
	hours := timecalc.ParseHours(expr)

	if msg := tracker.ValidateTime(expr); msg != "" {
		fmt.Fprintf(out, "%q: %s\n", expr, msg)
		return usageError(fmt.Errorf("invalid duration %q", expr))
	}
	fmt.Fprintf(out, "%q = %sh (%s)\n", expr, timecalc.FormatHours(hours),
		timecalc.FormatDuration(timecalc.HoursToSeconds(hours)))
	return nil
}
