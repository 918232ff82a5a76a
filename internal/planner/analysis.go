package planner

import (
	"fmt"

	"github.com/theirongolddev/dreamcalc/internal/model"

	"github.com/shopspring/decimal"
)

// Month bands for the analysis message.
const (
	soonMonths     = 6
	goodPaceMonths = 24
	longTermMonths = 60
)

// Scenario assumptions.
var (
	contributionBoost = decimal.RequireFromString("1.2")
	raisedDepositRate = decimal.RequireFromString("0.3")
	// defaultDepositRate is the share the goal picker autofills as already saved.
	// The deposit scenario is framed against it, not against the user's figure.
	defaultDepositRate = decimal.RequireFromString("0.2")
)

const sideIncomeMinMonths = 12

func (c *Calculator) analyze(months int, remaining, monthly, cost decimal.Decimal) model.Analysis {
	tips := []string{}
	var message string

	switch {
	case months <= soonMonths:
		message = "Great plan! The goal is within reach soon."
	case months <= goodPaceMonths:
		message = "Good pace! The goal will be reached within 2 years."
	case months <= longTermMonths:
		message = "A long-term goal. Consider saving more to get there faster."
		tips = append(tips, "Increase monthly contributions by 10-20% to speed things up")
	default:
		message = "A very long-term goal. We recommend revisiting the parameters."
		tips = append(tips,
			"Consider investing to grow your savings faster",
			"Split the big goal into several stages",
		)
	}

	share := monthly.Div(cost).Mul(decimal.NewFromInt(100))
	switch {
	case share.LessThan(decimal.NewFromInt(5)):
		tips = append(tips, "Monthly contributions are under 5% of the goal. Try to increase them")
	case share.GreaterThan(decimal.NewFromInt(30)):
		tips = append(tips, "You put aside more than 30% of the goal every month. Excellent discipline!")
	}

	return model.Analysis{
		Message:   message,
		Tips:      tips,
		Scenarios: c.scenarios(months, remaining, monthly, cost),
	}
}

// scenarios builds the what-if variants. Each heuristic is independent and is
// dropped when it would not shorten the plan.
func (c *Calculator) scenarios(baseMonths int, remaining, monthly, cost decimal.Decimal) []model.Scenario {
	out := []model.Scenario{}

	boosted := monthly.Mul(contributionBoost)
	boostedMonths := ceilDiv(remaining, boosted)
	if saved := baseMonths - boostedMonths; saved > 0 {
		out = append(out, model.Scenario{
			Kind:             model.ScenarioIncreasedContribution,
			Title:            "Increase savings by 20%",
			Description:      fmt.Sprintf("You would reach the goal %s sooner", monthsText(saved)),
			NewMonthlyAmount: boosted.InexactFloat64(),
			NewMonths:        boostedMonths,
			MonthsSaved:      saved,
		})
	}

	raised := cost.Mul(raisedDepositRate)
	depositMonths := ceilDiv(cost.Sub(raised), monthly)
	if saved := baseMonths - depositMonths; saved > 0 {
		extra := raised.Sub(cost.Mul(defaultDepositRate)).Round(0)
		out = append(out, model.Scenario{
			Kind:         model.ScenarioIncreasedDeposit,
			Title:        "Increase the initial deposit",
			Description:  fmt.Sprintf("Add %s %s to your savings", extra.String(), c.currency),
			NewMonths:    depositMonths,
			MonthsSaved:  saved,
			ExtraDeposit: extra.InexactFloat64(),
			Benefit:      fmt.Sprintf("Saves %s", monthsText(saved)),
		})
	}

	if baseMonths > sideIncomeMinMonths {
		out = append(out, model.Scenario{
			Kind:        model.ScenarioSideIncome,
			Title:       "Find additional income",
			Description: "A side job or freelancing can speed things up considerably",
			Benefit:     "Even +10% income shortens the term by 1-3 months",
		})
	}

	return out
}

func monthsText(n int) string {
	if n == 1 {
		return "1 month"
	}
	return fmt.Sprintf("%d months", n)
}
