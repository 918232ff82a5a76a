package model

import "time"

// GoalDateReached marks a record whose goal was already reached when it was computed.
const GoalDateReached = "today"

// ResultSummary is the part of a PlanResult kept in history.
type ResultSummary struct {
	Months     int     `json:"months" yaml:"months"`
	Years      float64 `json:"years" yaml:"years"`
	GoalDate   string  `json:"goalDate" yaml:"goal_date"`
	TotalSaved float64 `json:"totalSaved" yaml:"total_saved"`
}

// Summarize reduces a result to the fields persisted with a record.
func Summarize(r PlanResult) ResultSummary {
	goalDate := GoalDateReached
	if !r.IsAlreadyReached {
		goalDate = r.GoalDate.Format("2006-01-02")
	}
	return ResultSummary{
		Months:     r.Months,
		Years:      r.Years,
		GoalDate:   goalDate,
		TotalSaved: r.TotalSaved,
	}
}

// CalculationRecord is one persisted entry of the history log.
type CalculationRecord struct {
	ID        string        `json:"id" yaml:"id"`
	Timestamp time.Time     `json:"timestamp" yaml:"timestamp"`
	DreamName string        `json:"dreamName" yaml:"dream_name"`
	Input     PlanInput     `json:"calculationData" yaml:"calculation_data"`
	Result    ResultSummary `json:"results" yaml:"results"`
}

// NoGoal is the most-common-goal placeholder for an empty history.
const NoGoal = "—"

// Statistics is derived from the history log on demand.
type Statistics struct {
	TotalCalculations int       `json:"totalCalculations"`
	MostCommonGoal    string    `json:"mostCommonGoal"`
	TotalAmount       float64   `json:"totalAmount"`
	AverageMonths     int       `json:"averageTime"`
	LastCalculation   time.Time `json:"lastCalculation,omitzero"`
}

// Snapshot is the export file layout.
type Snapshot struct {
	ExportDate time.Time           `json:"exportDate" yaml:"export_date"`
	App        string              `json:"app" yaml:"app"`
	Version    string              `json:"version" yaml:"version"`
	History    []CalculationRecord `json:"history" yaml:"history"`
}
