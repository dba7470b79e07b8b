package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/hours-tracker/internal/export"
	"github.com/Tiliavir/hours-tracker/internal/timecalc"
)

var (
	exportFormat string
	exportDir    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all entries, one sheet per date",
	Long: `Export all entries. The default xlsx format writes
hours-tracker-<today>.xlsx with one sheet per date; csv and json print
to stdout instead.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "xlsx", "Output format: xlsx, csv, json")
	exportCmd.Flags().StringVar(&exportDir, "dir", "", "Directory for the xlsx file (default from config)")
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	store, closeStore, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	entries := store.All()

	switch exportFormat {
	case "json":
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("error encoding JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
	case "csv":
		printCSV(out, export.BuildWorkbook(entries, timecalc.LongDate))
	case "xlsx":
		dir := exportDir
		if dir == "" {
			dir = cfg.ExportDir
		}
		path, err := export.Export(ctx, entries, export.XLSXWriter{}, dir, now())
		if errors.Is(err, export.ErrNothingToExport) {
			fmt.Fprintln(out, "No entries found.")
			return nil
		}
		if err != nil {
			return storageError(err)
		}
		fmt.Fprintf(out, "Exported %d entries on %d dates to %s\n",
			len(entries), len(store.DistinctDates()), path)
	default:
		return usageError(fmt.Errorf("unknown format %q (expected xlsx, csv or json)", exportFormat))
	}
	return nil
}

// printCSV writes every sheet's rows with the sheet name as first column.
func printCSV(w io.Writer, wb export.Workbook) {
	fmt.Fprintln(w, "sheet,"+strings.Join(csvHeader(), ","))
	for _, sheet := range wb.Sheets {
		for _, row := range sheet.Values()[1:] {
			fields := make([]string, 0, len(row)+1)
			fields = append(fields, csvEscape(sheet.Name))
			for _, v := range row {
				fields = append(fields, csvEscape(v))
			}
			fmt.Fprintln(w, strings.Join(fields, ","))
		}
	}
}

func csvHeader() []string {
	h := make([]string, len(export.Header))
	for i, name := range export.Header {
		h[i] = strings.ReplaceAll(strings.ToLower(name), " ", "_")
	}
	return h
}

// csvEscape wraps a field in quotes if it contains a comma, quote, or newline.
func csvEscape(s string) string {
	if !strings.ContainsAny(s, ",\"\n\r") {
		return s
	}
	// Escape internal double quotes by doubling them.
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
