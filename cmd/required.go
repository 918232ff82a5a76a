package cmd

import (
	"fmt"

	"github.com/theirongolddev/dreamcalc/internal/cli"

	"github.com/spf13/cobra"
)

var (
	flagReqCost    float64
	flagReqInitial float64
	flagReqMonths  int
)

var requiredCmd = &cobra.Command{
	Use:     "required",
	Short:   "Monthly amount needed to reach a goal within a term",
	Example: "  dreamcalc required --cost 100000 --initial 20000 --months 12",
	RunE:    runRequired,
}

func init() {
	requiredCmd.Flags().Float64Var(&flagReqCost, "cost", 0, "Goal cost")
	requiredCmd.Flags().Float64Var(&flagReqInitial, "initial", 0, "Amount already saved")
	requiredCmd.Flags().IntVar(&flagReqMonths, "months", 12, "Target term in months")
	requiredCmd.Flags().BoolVar(&flagJSON, "json", false, "Print the result as JSON")
	_ = requiredCmd.MarkFlagRequired("cost")
	rootCmd.AddCommand(requiredCmd)
}

func runRequired(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	money := cli.NewMoney(cfg.General.Currency, cfg.General.Locale)
	calc := newCalculator(cfg)

	monthly, err := calc.RequiredMonthlySave(flagReqCost, flagReqInitial, flagReqMonths)
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(map[string]any{
			"totalCost":     flagReqCost,
			"initialAmount": flagReqInitial,
			"months":        flagReqMonths,
			"monthlySave":   monthly,
			"currency":      calc.Currency(),
		})
	}

	fmt.Println()
	if monthly == 0 {
		fmt.Println("  You already have enough for this goal.")
	} else {
		fmt.Printf("  Save %s a month to reach %s in %s.\n",
			money.Format(monthly), money.Format(flagReqCost), cli.FormatMonths(flagReqMonths))
	}
	fmt.Println()
	return nil
}
