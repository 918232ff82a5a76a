package planner

import (
	"errors"
	"fmt"
	"math"

	"github.com/theirongolddev/dreamcalc/internal/model"

	"github.com/shopspring/decimal"
)

// MaxMonths is the longest plan term Validate accepts (1000 years).
const MaxMonths = 12000

// Input validation errors.
var (
	ErrNotFinite          = errors.New("amounts must be finite numbers")
	ErrCostNotPositive    = errors.New("goal cost must be greater than zero")
	ErrMonthlyNotPositive = errors.New("monthly savings must be greater than zero")
	ErrInitialNegative    = errors.New("amount already saved cannot be negative")
	ErrTermTooLong        = fmt.Errorf("plan would take more than %d months", MaxMonths)
)

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// ValidateGoal checks the cost and the amount already saved.
func ValidateGoal(totalCost, initialAmount float64) error {
	switch {
	case !finite(totalCost):
		return fmt.Errorf("invalid cost %v: %w", totalCost, ErrNotFinite)
	case !finite(initialAmount):
		return fmt.Errorf("invalid initial amount %v: %w", initialAmount, ErrNotFinite)
	case totalCost <= 0:
		return fmt.Errorf("invalid cost %v: %w", totalCost, ErrCostNotPositive)
	case initialAmount < 0:
		return fmt.Errorf("invalid initial amount %v: %w", initialAmount, ErrInitialNegative)
	}
	return nil
}

// Validate rejects input ComputePlan is not defined for, including plans
// longer than MaxMonths.
func Validate(in model.PlanInput) error {
	if err := ValidateGoal(in.TotalCost, in.InitialAmount); err != nil {
		return err
	}
	switch {
	case !finite(in.MonthlySave):
		return fmt.Errorf("invalid monthly savings %v: %w", in.MonthlySave, ErrNotFinite)
	case in.MonthlySave <= 0:
		return fmt.Errorf("invalid monthly savings %v: %w", in.MonthlySave, ErrMonthlyNotPositive)
	}

	remaining := amount(in.TotalCost).Sub(amount(in.InitialAmount))
	if remaining.IsPositive() && remaining.Div(amount(in.MonthlySave)).Ceil().GreaterThan(decimal.NewFromInt(MaxMonths)) {
		return fmt.Errorf("saving %v a month toward %v: %w", in.MonthlySave, in.TotalCost, ErrTermTooLong)
	}
	return nil
}
