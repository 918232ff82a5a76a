package planner

import (
	"fmt"
	"math"

	"github.com/theirongolddev/dreamcalc/internal/model"
)

// ProgressSeries returns the month-by-month savings curve for a plan of the given length.
// Savings after the start are capped at the goal cost.
func ProgressSeries(in model.PlanInput, months int) model.Series {
	months = max(months, 0)
	idx := make([]int, months+1)
	for i := range idx {
		idx[i] = i
	}
	return seriesAt(in, idx)
}

// SampledProgressSeries returns at most points evenly spaced entries of the
// ProgressSeries curve, always keeping the start and the final month. Each
// point is computed directly, so the cost does not grow with the term.
func SampledProgressSeries(in model.PlanInput, months, points int) model.Series {
	months = max(months, 0)
	if points < 2 || months+1 <= points {
		return ProgressSeries(in, months)
	}

	idx := make([]int, points)
	for k := range idx {
		idx[k] = int(math.Round(float64(k) * float64(months) / float64(points-1)))
	}
	return seriesAt(in, idx)
}

// seriesAt builds the curve at the given ascending month indexes. The last
// index marks the goal.
func seriesAt(in model.PlanInput, idx []int) model.Series {
	n := len(idx)
	s := model.Series{
		Labels:    make([]string, n),
		Savings:   make([]float64, n),
		Goal:      make([]float64, n),
		GoalPoint: make([]*float64, n),
	}

	for k, i := range idx {
		s.Goal[k] = in.TotalCost
		if i == 0 {
			s.Labels[k] = "Start"
			s.Savings[k] = in.InitialAmount
			continue
		}
		s.Labels[k] = fmt.Sprintf("Month %d", i)
		s.Savings[k] = math.Min(in.InitialAmount+in.MonthlySave*float64(i), in.TotalCost)
	}

	goal := in.TotalCost
	s.GoalPoint[n-1] = &goal

	return s
}

// Split returns how much of the goal is already saved and how much is left.
func Split(in model.PlanInput) model.Distribution {
	return model.Distribution{
		Have:      in.InitialAmount,
		Remaining: math.Max(in.TotalCost-in.InitialAmount, 0),
	}
}

// Progress returns the saved fraction of the goal in [0, 1].
func Progress(in model.PlanInput) float64 {
	if in.TotalCost <= 0 {
		return 0
	}
	return math.Min(math.Max(in.InitialAmount/in.TotalCost, 0), 1)
}
