package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/theirongolddev/dreamcalc/internal/config"
	"github.com/theirongolddev/dreamcalc/internal/store"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Currency:     %s\n", cfg.General.Currency)
	fmt.Printf("    Locale:       %s\n", cfg.General.Locale)
	fmt.Printf("    Default goal: %s\n", cfg.General.DefaultGoal)
	fmt.Println()

	fmt.Println("  [Storage]")
	fmt.Printf("    Backend: %s\n", cfg.Storage.Backend)
	if cfg.Storage.Backend == config.BackendSQLite {
		path := config.HistoryPath(cfg, flagDataDir)
		fmt.Printf("    History: %s\n", path)
		if _, err := os.Stat(path); err == nil {
			printStoredKeys(path)
		} else {
			fmt.Println("    Stored:  nothing yet")
		}
	}
	fmt.Println()

	fmt.Println("  [Calculation]")
	fmt.Printf("    Delay:     %d ms\n", cfg.Calculation.DelayMs)
	if cfg.Calculation.InflationPercent > 0 {
		fmt.Printf("    Inflation: %.1f%% a year\n", cfg.Calculation.InflationPercent)
	} else {
		fmt.Println("    Inflation: off")
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `dreamcalc setup` to reconfigure.")
	return nil
}

// keyLister is a storage backend that can enumerate its keys.
type keyLister interface {
	Keys() ([]string, error)
}

func printStoredKeys(path string) {
	db, err := store.Open(path)
	if err != nil {
		fmt.Printf("    Stored:  unreadable (%v)\n", err)
		return
	}
	defer func() { _ = db.Close() }()

	fmt.Printf("    Stored:  %s\n", describeKeys(db))
}

// describeKeys lists the keys held by storage, or a short reason when it cannot.
func describeKeys(storage keyLister) string {
	keys, err := storage.Keys()
	switch {
	case err != nil:
		return fmt.Sprintf("unreadable (%v)", err)
	case len(keys) == 0:
		return "nothing yet"
	}
	return strings.Join(keys, ", ")
}
