package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/theirongolddev/dreamcalc/internal/model"
	"github.com/theirongolddev/dreamcalc/internal/planner"
)

func TestRenderSparkline(t *testing.T) {
	if got := RenderSparkline(nil); got != "" {
		t.Errorf("empty sparkline = %q", got)
	}
	got := RenderSparkline([]float64{0, 50, 100})
	if got != "▁▄█" {
		t.Errorf("RenderSparkline = %q, want ▁▄█", got)
	}
	if got := RenderSparkline([]float64{0, 0}); got != "▁▁" {
		t.Errorf("all-zero sparkline = %q", got)
	}
}

func TestRenderPlan(t *testing.T) {
	now := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)
	calc := planner.New(planner.WithClock(func() time.Time { return now }))
	in := model.PlanInput{TotalCost: 100000, InitialAmount: 20000, MonthlySave: 5000}
	r := calc.ComputePlan(in)

	out := RenderPlan("Car", in, r, NewMoney("TJS", "en"))
	for _, want := range []string{"Car", "100,000 TJS", "May 15, 2027", "16 months", "1.3 years", "What if", "Increase savings by 20%"} {
		if !strings.Contains(out, want) {
			t.Errorf("plan card missing %q", want)
		}
	}
}

func TestRenderPlan_AlreadyReached(t *testing.T) {
	calc := planner.New()
	in := model.PlanInput{TotalCost: 1000, InitialAmount: 1000, MonthlySave: 100}
	out := RenderPlan("Phone", in, calc.ComputePlan(in), NewMoney("TJS", "en"))
	if !strings.Contains(out, "Today!") {
		t.Error("reached plan should show Today!")
	}
	if strings.Contains(out, "What if") {
		t.Error("reached plan should not list scenarios")
	}
}

func TestPrintHistoryTable(t *testing.T) {
	var buf bytes.Buffer
	PrintHistoryTable(&buf, nil, NewMoney("TJS", "en"))
	if !strings.Contains(buf.String(), "No calculations yet") {
		t.Errorf("empty history output = %q", buf.String())
	}

	buf.Reset()
	records := []model.CalculationRecord{{
		ID:        "0123456789abcdef",
		Timestamp: time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC),
		DreamName: "Car",
		Input:     model.PlanInput{TotalCost: 100000, InitialAmount: 20000, MonthlySave: 5000},
		Result:    model.ResultSummary{Months: 16, Years: 1.3, GoalDate: "2027-05-15", TotalSaved: 100000},
	}}
	PrintHistoryTable(&buf, records, NewMoney("TJS", "en"))
	out := buf.String()
	for _, want := range []string{"01234567", "Car", "100,000 TJS", "1y 4m", "May 15, 2027", "1 saved"} {
		if !strings.Contains(out, want) {
			t.Errorf("history table missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "0123456789abcdef") {
		t.Error("ids should be shortened")
	}
}

func TestRenderStats_Empty(t *testing.T) {
	out := RenderStats(model.Statistics{MostCommonGoal: model.NoGoal}, NewMoney("TJS", "en"))
	if !strings.Contains(out, "never") {
		t.Errorf("empty stats should show never:\n%s", out)
	}
}
