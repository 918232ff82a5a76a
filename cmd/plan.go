package cmd

import (
	"fmt"
	"math"
	"strings"

	"github.com/theirongolddev/dreamcalc/internal/cli"
	"github.com/theirongolddev/dreamcalc/internal/history"
	"github.com/theirongolddev/dreamcalc/internal/model"
	"github.com/theirongolddev/dreamcalc/internal/planner"

	"github.com/spf13/cobra"
)

var (
	flagGoal      string
	flagName      string
	flagCost      float64
	flagInitial   float64
	flagMonthly   float64
	flagInflation float64
	flagJSON      bool
	flagNoSave    bool
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Calculate when a savings goal will be reached",
	Long: `Calculate when a savings goal will be reached.

Amounts not given on the command line are filled in from the goal preset:
its suggested cost, 20% of it as already saved, and 5% of it per month.`,
	Example: `  dreamcalc plan --goal car
  dreamcalc plan --goal custom --name "Piano" --cost 40000 --initial 5000 --monthly 2500`,
	RunE: runPlan,
}

func init() {
	planCmd.Flags().StringVarP(&flagGoal, "goal", "g", "", "Goal preset (see `dreamcalc goals`; default from config)")
	planCmd.Flags().StringVarP(&flagName, "name", "n", "", "Name for the goal (default: preset name)")
	planCmd.Flags().Float64Var(&flagCost, "cost", 0, "Goal cost")
	planCmd.Flags().Float64Var(&flagInitial, "initial", 0, "Amount already saved")
	planCmd.Flags().Float64Var(&flagMonthly, "monthly", 0, "Monthly contribution")
	planCmd.Flags().Float64Var(&flagInflation, "inflation", -1, "Annual inflation percent (default from config)")
	planCmd.Flags().BoolVar(&flagJSON, "json", false, "Print the result as JSON")
	planCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not add the result to history")
	rootCmd.AddCommand(planCmd)
}

// planOutput is the --json shape of a plan.
type planOutput struct {
	Name      string                 `json:"name"`
	Input     model.PlanInput        `json:"input"`
	Result    model.PlanResult       `json:"result"`
	Inflation *model.InflationResult `json:"inflation,omitempty"`
	RecordID  string                 `json:"recordId,omitempty"`
}

func runPlan(cmd *cobra.Command, _ []string) error {
	a := openApp()
	defer a.close()

	goalType := flagGoal
	if goalType == "" {
		goalType = a.cfg.General.DefaultGoal
	}
	goal := model.GoalByType(goalType)
	if flagGoal != "" && goal.Type != flagGoal {
		return fmt.Errorf("unknown goal %q (run `dreamcalc goals` to list presets)", flagGoal)
	}

	in := goal.Suggested()
	flags := cmd.Flags()
	if flags.Changed("cost") {
		in.TotalCost = flagCost
	}
	if flags.Changed("initial") {
		in.InitialAmount = flagInitial
	}
	if flags.Changed("monthly") {
		in.MonthlySave = flagMonthly
	}
	if err := planner.Validate(in); err != nil {
		return err
	}

	name := strings.TrimSpace(flagName)
	if name == "" && !goal.IsCustom() {
		name = goal.Name
	}

	result := a.calc.ComputePlan(in)

	inflationPct := a.cfg.Calculation.InflationPercent
	if flags.Changed("inflation") {
		if math.IsNaN(flagInflation) || math.IsInf(flagInflation, 0) {
			return fmt.Errorf("invalid inflation %v: %w", flagInflation, planner.ErrNotFinite)
		}
		inflationPct = flagInflation
	}
	var inflation *model.InflationResult
	if inflationPct > 0 && !result.IsAlreadyReached {
		inf := a.calc.ApplyInflation(in.TotalCost, in.MonthlySave, result.Months, inflationPct)
		inflation = &inf
	}

	var recordID string
	if !flagNoSave {
		recordID = a.history.Record(name, in, result).ID
	}

	if name == "" {
		name = history.DefaultDreamName
	}
	if flagJSON {
		return printJSON(planOutput{Name: name, Input: in, Result: result, Inflation: inflation, RecordID: recordID})
	}

	fmt.Println()
	fmt.Print(cli.RenderPlan(goal.Icon+" "+name, in, result, a.money))
	if inflation != nil {
		fmt.Print(cli.RenderInflation(*inflation, a.money))
	}
	fmt.Println()
	return nil
}
