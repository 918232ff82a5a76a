package model

import "time"

// PlanInput holds the three figures a plan is computed from.
type PlanInput struct {
	TotalCost     float64 `json:"totalCost" yaml:"total_cost"`
	InitialAmount float64 `json:"initialAmount" yaml:"initial_amount"`
	MonthlySave   float64 `json:"monthlySave" yaml:"monthly_save"`
}

// ScenarioKind tags the what-if heuristic that produced a Scenario.
type ScenarioKind string

const (
	ScenarioIncreasedContribution ScenarioKind = "increased_contribution"
	ScenarioIncreasedDeposit      ScenarioKind = "increased_deposit"
	ScenarioSideIncome            ScenarioKind = "side_income"
)

// Scenario is an alternative variant of a plan surfaced as advice.
// Numeric fields are zero when the kind does not carry them.
type Scenario struct {
	Kind             ScenarioKind `json:"kind"`
	Title            string       `json:"title"`
	Description      string       `json:"description"`
	NewMonthlyAmount float64      `json:"newMonthly,omitempty"`
	NewMonths        int          `json:"newMonths,omitempty"`
	MonthsSaved      int          `json:"monthsSaved,omitempty"`
	ExtraDeposit     float64      `json:"extraDeposit,omitempty"`
	Benefit          string       `json:"benefit,omitempty"`
}

// Analysis is the advice attached to a plan.
type Analysis struct {
	Message   string     `json:"message"`
	Tips      []string   `json:"tips"`
	Scenarios []Scenario `json:"scenarios"`
}

// PlanResult is the time-to-goal projection for a PlanInput.
type PlanResult struct {
	Months           int       `json:"months"`
	Years            float64   `json:"years"`
	GoalDate         time.Time `json:"goalDate"`
	TotalSaved       float64   `json:"totalSaved"`
	ExtraSaved       float64   `json:"extraSaved"`
	Remaining        float64   `json:"remaining"`
	Currency         string    `json:"currency"`
	Analysis         Analysis  `json:"analysis"`
	IsAlreadyReached bool      `json:"isAlreadyReached"`
}

// InflationResult compares a projection before and after inflating the cost.
type InflationResult struct {
	OriginalMonths          int     `json:"originalMonths"`
	AdjustedMonths          int     `json:"adjustedMonths"`
	FutureCost              float64 `json:"futureCost"`
	MonthlyInflationPercent float64 `json:"monthlyInflation"`
	Currency                string  `json:"currency"`
	Note                    string  `json:"note"`
}

// Series is the month-by-month progress chart data for a plan.
// Index 0 is the starting point; GoalPoint is non-nil only where the goal is reached.
type Series struct {
	Labels    []string   `json:"labels"`
	Savings   []float64  `json:"savings"`
	Goal      []float64  `json:"goal"`
	GoalPoint []*float64 `json:"goalPoint"`
}

// Distribution splits a goal into what is already saved and what is left.
type Distribution struct {
	Have      float64 `json:"have"`
	Remaining float64 `json:"remaining"`
}
