package history

import (
	"math"
	"sort"

	"github.com/theirongolddev/dreamcalc/internal/model"
)

// Statistics aggregates the current log.
func (s *Store) Statistics() model.Statistics {
	return Aggregate(s.List())
}

// Aggregate computes statistics over records ordered newest first.
// The most common goal is the first-seen name among those with the highest count.
func Aggregate(records []model.CalculationRecord) model.Statistics {
	if len(records) == 0 {
		return model.Statistics{MostCommonGoal: model.NoGoal}
	}

	type goalCount struct {
		name  string
		count int
	}
	var counts []goalCount
	index := make(map[string]int)

	var totalAmount float64
	var totalMonths int
	for _, r := range records {
		i, ok := index[r.DreamName]
		if !ok {
			i = len(counts)
			index[r.DreamName] = i
			counts = append(counts, goalCount{name: r.DreamName})
		}
		counts[i].count++

		totalAmount += r.Input.TotalCost
		totalMonths += r.Result.Months
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].count > counts[j].count
	})

	return model.Statistics{
		TotalCalculations: len(records),
		MostCommonGoal:    counts[0].name,
		TotalAmount:       totalAmount,
		AverageMonths:     int(math.Round(float64(totalMonths) / float64(len(records)))),
		LastCalculation:   records[0].Timestamp,
	}
}
