package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/hours-tracker/internal/config"
	"github.com/Tiliavir/hours-tracker/internal/logging"
	"github.com/Tiliavir/hours-tracker/internal/timecalc"
	"github.com/Tiliavir/hours-tracker/internal/tracker"
)

var (
	rootDate       string
	rootConfigPath string
)

// cfg is loaded once per invocation by the root PersistentPreRunE.
var cfg config.Config

// now is the clock used by every command.
var now = time.Now

var rootCmd = &cobra.Command{
	Use:   "hours",
	Short: "Hours Tracker – log work against calendar dates",
	Long: `hours is a single-user, file-based hours tracker.
Log durations like "1h 45m" against a date, review and edit them,
browse history and export everything to an Excel workbook.
Data is stored in ~/.hours/ unless configured otherwise.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootDate, "date", "", "Selected date (YYYY-MM-DD, today or earlier); defaults to today")
	rootCmd.PersistentFlags().StringVar(&rootConfigPath, "config", "", "Config file path (default ~/.hours/config.json)")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(parseCmd)
}

func loadConfig(cmd *cobra.Command, args []string) error {
	var err error
	if rootConfigPath != "" {
		cfg, err = config.LoadFile(rootConfigPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return usageError(err)
	}
	logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	return nil
}

// selectedDate resolves --date, defaulting to today. Future dates are
// rejected like the date picker's upper bound.
func selectedDate() (string, error) {
	if rootDate == "" {
		return timecalc.Today(now()), nil
	}
	if _, err := timecalc.ParseDate(rootDate); err != nil {
		return "", usageError(err)
	}
	if !timecalc.NotAfterToday(rootDate, now()) {
		return "", usageError(fmt.Errorf("date %s is in the future", rootDate))
	}
	return rootDate, nil
}

// selectDate points session at date. A date the session refuses is a usage
// error rather than a silent fallback to today.
func selectDate(session *tracker.Session, date string) error {
	if !session.SelectDate(date) {
		return usageError(fmt.Errorf("cannot select date %s", date))
	}
	return nil
}

// exitError carries the process exit code: 1 for usage and validation
// problems, 2 for storage failures.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func usageError(err error) error   { return &exitError{code: 1, err: err} }
func storageError(err error) error { return &exitError{code: 2, err: err} }

func exitCode(err error) int {
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return 1
}
