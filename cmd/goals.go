package cmd

import (
	"fmt"

	"github.com/theirongolddev/dreamcalc/internal/cli"
	"github.com/theirongolddev/dreamcalc/internal/model"

	"github.com/spf13/cobra"
)

var goalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "List goal presets and their suggested amounts",
	RunE:  runGoals,
}

func init() {
	goalsCmd.Flags().BoolVar(&flagJSON, "json", false, "Print the presets as JSON")
	rootCmd.AddCommand(goalsCmd)
}

func runGoals(_ *cobra.Command, _ []string) error {
	if flagJSON {
		return printJSON(model.Goals)
	}

	cfg := loadConfig()
	fmt.Println()
	fmt.Print(cli.RenderGoals(model.Goals, cli.NewMoney(cfg.General.Currency, cfg.General.Locale)))
	fmt.Println()
	fmt.Println("  Use a type with `dreamcalc plan --goal <type>`.")
	return nil
}
