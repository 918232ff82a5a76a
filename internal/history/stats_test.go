package history

import (
	"testing"

	"github.com/theirongolddev/dreamcalc/internal/model"
	"github.com/theirongolddev/dreamcalc/internal/store"

	"github.com/stretchr/testify/assert"
)

func TestStatistics_Empty(t *testing.T) {
	s := newTestStore(t, store.NewMemory())

	stats := s.Statistics()
	assert.Equal(t, 0, stats.TotalCalculations)
	assert.Equal(t, "—", stats.MostCommonGoal)
	assert.Equal(t, 0.0, stats.TotalAmount)
	assert.Equal(t, 0, stats.AverageMonths)
	assert.True(t, stats.LastCalculation.IsZero())
}

func TestStatistics(t *testing.T) {
	s := newTestStore(t, store.NewMemory())
	s.Record("Car", model.PlanInput{TotalCost: 100000}, plan(16))
	s.Record("Phone", model.PlanInput{TotalCost: 1500}, plan(3))
	s.Record("Car", model.PlanInput{TotalCost: 90000}, plan(12))
	last := s.Record("Laptop", model.PlanInput{TotalCost: 5000}, plan(6))

	stats := s.Statistics()
	assert.Equal(t, 4, stats.TotalCalculations)
	assert.Equal(t, "Car", stats.MostCommonGoal)
	assert.Equal(t, 196500.0, stats.TotalAmount)
	// (16 + 3 + 12 + 6) / 4 = 9.25
	assert.Equal(t, 9, stats.AverageMonths)
	assert.True(t, stats.LastCalculation.Equal(last.Timestamp))
}

func TestAggregate_TieGoesToFirstSeen(t *testing.T) {
	records := []model.CalculationRecord{
		{DreamName: "Travel", Result: model.ResultSummary{Months: 1}},
		{DreamName: "House", Result: model.ResultSummary{Months: 2}},
		{DreamName: "House", Result: model.ResultSummary{Months: 2}},
		{DreamName: "Travel", Result: model.ResultSummary{Months: 2}},
		{DreamName: "Bicycle", Result: model.ResultSummary{Months: 2}},
	}

	stats := Aggregate(records)
	assert.Equal(t, "Travel", stats.MostCommonGoal)
	// 9 / 5 = 1.8
	assert.Equal(t, 2, stats.AverageMonths)
}

func TestAggregate_RoundsHalfUp(t *testing.T) {
	records := []model.CalculationRecord{
		{DreamName: "A", Result: model.ResultSummary{Months: 1}},
		{DreamName: "B", Result: model.ResultSummary{Months: 2}},
	}
	assert.Equal(t, 2, Aggregate(records).AverageMonths)
}
