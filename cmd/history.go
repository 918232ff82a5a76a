package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/theirongolddev/dreamcalc/internal/cli"
	"github.com/theirongolddev/dreamcalc/internal/export"
	"github.com/theirongolddev/dreamcalc/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagExportFormat string
	flagExportOut    string
	flagYes          bool
)

var historyCmd = &cobra.Command{
	Use:     "history",
	Aliases: []string{"hist"},
	Short:   "Show and manage saved calculations",
	RunE:    runHistoryList,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved calculations, newest first",
	RunE:  runHistoryList,
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a calculation by id or id prefix",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDelete,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all saved calculations",
	RunE:  runHistoryClear,
}

var historyStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summary statistics over saved calculations",
	RunE:  runHistoryStats,
}

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export history to a file (json, yaml or xlsx)",
	Long: `Export history to a file.

JSON exports can be imported again with ` + "`dreamcalc history import`" + `.
Without --out the export is written to dreamcalc-history-<date>.<format>.`,
	RunE: runHistoryExport,
}

var historyImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace history with a JSON export",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryImport,
}

func init() {
	historyListCmd.Flags().BoolVar(&flagJSON, "json", false, "Print records as JSON")
	historyStatsCmd.Flags().BoolVar(&flagJSON, "json", false, "Print statistics as JSON")
	historyClearCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "Do not ask for confirmation")
	historyExportCmd.Flags().StringVarP(&flagExportFormat, "format", "f", "json", "Export format: json, yaml or xlsx")
	historyExportCmd.Flags().StringVarP(&flagExportOut, "out", "o", "", "Output file, - for stdout")

	historyCmd.AddCommand(historyListCmd, historyDeleteCmd, historyClearCmd, historyStatsCmd, historyExportCmd, historyImportCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(_ *cobra.Command, _ []string) error {
	a := openApp()
	defer a.close()

	records := a.history.List()
	if flagJSON {
		return printJSON(records)
	}

	fmt.Println()
	cli.PrintHistoryTable(os.Stdout, records, a.money)
	fmt.Println()
	return nil
}

func runHistoryDelete(_ *cobra.Command, args []string) error {
	a := openApp()
	defer a.close()

	rec, err := findRecord(a.history.List(), args[0])
	if err != nil {
		return err
	}
	a.history.Delete(rec.ID)
	fmt.Printf("  Deleted %q (%s)\n", rec.DreamName, rec.ID)
	return nil
}

// findRecord resolves a full id or a unique id prefix.
func findRecord(records []model.CalculationRecord, id string) (model.CalculationRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return model.CalculationRecord{}, errors.New("calculation id must not be empty")
	}

	var matches []model.CalculationRecord
	for _, r := range records {
		if r.ID == id {
			return r, nil
		}
		if strings.HasPrefix(r.ID, id) {
			matches = append(matches, r)
		}
	}
	switch len(matches) {
	case 0:
		return model.CalculationRecord{}, fmt.Errorf("no calculation with id %q", id)
	case 1:
		return matches[0], nil
	}
	return model.CalculationRecord{}, fmt.Errorf("id %q matches %d calculations, use more characters", id, len(matches))
}

func runHistoryClear(_ *cobra.Command, _ []string) error {
	a := openApp()
	defer a.close()

	n := a.history.Len()
	if n == 0 {
		fmt.Println("  History is already empty.")
		return nil
	}
	if !flagYes && !confirm(fmt.Sprintf("  Delete all %d calculations?", n)) {
		fmt.Println("  Cancelled.")
		return nil
	}
	a.history.Clear()
	fmt.Printf("  Cleared %d calculations.\n", n)
	return nil
}

func runHistoryStats(_ *cobra.Command, _ []string) error {
	a := openApp()
	defer a.close()

	stats := a.history.Statistics()
	if flagJSON {
		return printJSON(stats)
	}

	fmt.Println()
	fmt.Print(cli.RenderStats(stats, a.money))
	return nil
}

func runHistoryExport(_ *cobra.Command, _ []string) error {
	format, err := export.ParseFormat(flagExportFormat)
	if err != nil {
		return err
	}

	a := openApp()
	defer a.close()

	snap := a.history.Snapshot()

	if flagExportOut == "-" {
		return export.Write(os.Stdout, format, snap)
	}

	out := flagExportOut
	if out == "" {
		out = fmt.Sprintf("dreamcalc-history-%s.%s", snap.ExportDate.Format("2006-01-02"), format.Extension())
	}

	f, err := os.Create(out) //nolint:gosec // user-chosen output path
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	if err := export.Write(f, format, snap); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing export file: %w", err)
	}

	abs, _ := filepath.Abs(out)
	fmt.Printf("  Exported %d calculations to %s\n", len(snap.History), abs)
	return nil
}

func runHistoryImport(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading import file: %w", err)
	}

	a := openApp()
	defer a.close()

	if !a.history.Import(data) {
		return fmt.Errorf("%s is not a dreamcalc history export", args[0])
	}
	fmt.Printf("  Imported %d calculations.\n", a.history.Len())
	return nil
}
