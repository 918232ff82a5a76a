// Package planner computes savings plans: time to goal, advice and what-if scenarios.
package planner

import (
	"errors"
	"fmt"
	"time"

	"github.com/theirongolddev/dreamcalc/internal/model"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency code attached to results when none is configured.
const DefaultCurrency = "TJS"

// ErrInvalidTargetMonths is returned by RequiredMonthlySave for a non-positive term.
var ErrInvalidTargetMonths = errors.New("target term must be greater than 0 months")

// Calculator computes plans. It holds no mutable state; the clock is only read.
type Calculator struct {
	now      func() time.Time
	currency string
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithClock sets the source of "now" used for goal dates.
func WithClock(now func() time.Time) Option {
	return func(c *Calculator) { c.now = now }
}

// WithCurrency sets the currency code reported in results.
func WithCurrency(code string) Option {
	return func(c *Calculator) {
		if code != "" {
			c.currency = code
		}
	}
}

// New returns a Calculator using the wall clock and DefaultCurrency unless overridden.
func New(opts ...Option) *Calculator {
	c := &Calculator{now: time.Now, currency: DefaultCurrency}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Currency returns the configured currency code.
func (c *Calculator) Currency() string {
	return c.currency
}

// ComputePlan projects when the goal in in will be reached.
// Callers must reject invalid input with Validate first; a zero MonthlySave
// with an unreached goal has no defined result.
func (c *Calculator) ComputePlan(in model.PlanInput) model.PlanResult {
	if in.InitialAmount >= in.TotalCost {
		return c.alreadyReached(in.TotalCost)
	}

	cost := amount(in.TotalCost)
	initial := amount(in.InitialAmount)
	monthly := amount(in.MonthlySave)

	remaining := cost.Sub(initial)
	months := ceilDiv(remaining, monthly)
	totalSaved := initial.Add(monthly.Mul(decimal.NewFromInt(int64(months))))

	return model.PlanResult{
		Months:     months,
		Years:      yearsOf(months),
		GoalDate:   c.now().AddDate(0, months, 0),
		TotalSaved: totalSaved.InexactFloat64(),
		ExtraSaved: totalSaved.Sub(cost).InexactFloat64(),
		Remaining:  remaining.InexactFloat64(),
		Currency:   c.currency,
		Analysis:   c.analyze(months, remaining, monthly, cost),
	}
}

func (c *Calculator) alreadyReached(totalCost float64) model.PlanResult {
	return model.PlanResult{
		GoalDate:   c.now(),
		TotalSaved: totalCost,
		Currency:   c.currency,
		Analysis: model.Analysis{
			Message: "🎉 Congratulations! You already have enough money for this goal.",
			Tips: []string{
				"Consider a more ambitious goal",
				"You could start investing this money",
			},
		},
		IsAlreadyReached: true,
	}
}

// RequiredMonthlySave returns the whole-unit monthly amount that reaches
// totalCost from initialAmount within targetMonths. Amounts are checked
// with ValidateGoal.
func (c *Calculator) RequiredMonthlySave(totalCost, initialAmount float64, targetMonths int) (float64, error) {
	if targetMonths <= 0 {
		return 0, fmt.Errorf("required monthly save for %d months: %w", targetMonths, ErrInvalidTargetMonths)
	}
	if err := ValidateGoal(totalCost, initialAmount); err != nil {
		return 0, err
	}

	remaining := amount(totalCost).Sub(amount(initialAmount))
	if !remaining.IsPositive() {
		return 0, nil
	}

	return remaining.Div(decimal.NewFromInt(int64(targetMonths))).Ceil().InexactFloat64(), nil
}

// ApplyInflation compounds totalCost monthly over months periods at
// annualPercent/12 per month and recomputes the term against the inflated cost.
// Terms longer than MaxMonths compound over MaxMonths periods; a rate that is
// not a positive finite number applies no inflation.
func (c *Calculator) ApplyInflation(totalCost, monthlySave float64, months int, annualPercent float64) model.InflationResult {
	if !finite(annualPercent) || annualPercent <= 0 {
		return model.InflationResult{
			OriginalMonths: months,
			AdjustedMonths: months,
			FutureCost:     totalCost,
			Currency:       c.currency,
			Note:           "No inflation applied",
		}
	}

	monthlyRate := amount(annualPercent).Div(decimal.NewFromInt(12)).Div(decimal.NewFromInt(100))
	factor := decimal.NewFromInt(1).Add(monthlyRate)

	future := amount(totalCost)
	for i := 0; i < min(months, MaxMonths); i++ {
		future = future.Mul(factor).Round(compoundPrecision)
	}

	return model.InflationResult{
		OriginalMonths:          months,
		AdjustedMonths:          ceilDiv(future, amount(monthlySave)),
		FutureCost:              future.Round(0).InexactFloat64(),
		MonthlyInflationPercent: monthlyRate.Mul(decimal.NewFromInt(100)).InexactFloat64(),
		Currency:                c.currency,
		Note:                    fmt.Sprintf("Adjusted for %s%% annual inflation", amount(annualPercent).String()),
	}
}
