package planner

import (
	"testing"
	"time"

	"github.com/theirongolddev/dreamcalc/internal/model"
)

func TestProgressSeries(t *testing.T) {
	in := model.PlanInput{TotalCost: 100000, InitialAmount: 20000, MonthlySave: 7000}
	s := ProgressSeries(in, 12)

	if len(s.Labels) != 13 || len(s.Savings) != 13 || len(s.Goal) != 13 || len(s.GoalPoint) != 13 {
		t.Fatalf("series lengths = %d/%d/%d/%d, want 13",
			len(s.Labels), len(s.Savings), len(s.Goal), len(s.GoalPoint))
	}
	if s.Labels[0] != "Start" || s.Labels[12] != "Month 12" {
		t.Errorf("labels = %q .. %q", s.Labels[0], s.Labels[12])
	}
	if s.Savings[0] != 20000 || s.Savings[1] != 27000 {
		t.Errorf("Savings[0:2] = %v", s.Savings[:2])
	}
	// 20000 + 12*7000 = 104000, capped at the goal.
	if s.Savings[12] != 100000 {
		t.Errorf("Savings[12] = %.0f, want 100000", s.Savings[12])
	}
	for i, p := range s.GoalPoint {
		if i < 12 && p != nil {
			t.Errorf("GoalPoint[%d] = %v, want nil", i, *p)
		}
	}
	if s.GoalPoint[12] == nil || *s.GoalPoint[12] != 100000 {
		t.Error("GoalPoint[12] should mark the goal")
	}
}

func TestProgressSeries_Reached(t *testing.T) {
	s := ProgressSeries(model.PlanInput{TotalCost: 500, InitialAmount: 700}, 0)
	if len(s.Savings) != 1 {
		t.Fatalf("Savings len = %d, want 1", len(s.Savings))
	}
	if s.GoalPoint[0] == nil {
		t.Error("GoalPoint[0] should mark a reached goal")
	}
}

func TestSampledProgressSeries(t *testing.T) {
	in := model.PlanInput{TotalCost: 100000, InitialAmount: 20000, MonthlySave: 7000}

	s := SampledProgressSeries(in, 12, 40)
	if len(s.Savings) != 13 {
		t.Fatalf("short plan: len = %d, want the full 13 points", len(s.Savings))
	}

	s = SampledProgressSeries(in, 120, 5)
	wantLabels := []string{"Start", "Month 30", "Month 60", "Month 90", "Month 120"}
	if len(s.Labels) != len(wantLabels) {
		t.Fatalf("len = %d, want %d", len(s.Labels), len(wantLabels))
	}
	for i, want := range wantLabels {
		if s.Labels[i] != want {
			t.Errorf("Labels[%d] = %q, want %q", i, s.Labels[i], want)
		}
	}
	if s.Savings[0] != 20000 || s.Savings[4] != 100000 {
		t.Errorf("Savings = %v", s.Savings)
	}
	if s.GoalPoint[4] == nil || s.GoalPoint[3] != nil {
		t.Error("only the final point should mark the goal")
	}
}

func TestSampledProgressSeries_LongTerm(t *testing.T) {
	in := model.PlanInput{TotalCost: 100000000, MonthlySave: 1}
	start := time.Now()
	s := SampledProgressSeries(in, 100000000, 40)
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("took %v", elapsed)
	}

	if len(s.Savings) != 40 {
		t.Fatalf("len = %d, want 40", len(s.Savings))
	}
	if s.Labels[39] != "Month 100000000" {
		t.Errorf("last label = %q", s.Labels[39])
	}
	if s.Savings[39] != 100000000 {
		t.Errorf("last point = %v, want the goal", s.Savings[39])
	}
	for i := 1; i < len(s.Savings); i++ {
		if s.Savings[i] < s.Savings[i-1] {
			t.Fatalf("series decreases at %d: %v -> %v", i, s.Savings[i-1], s.Savings[i])
		}
	}
}

func TestSplitAndProgress(t *testing.T) {
	in := model.PlanInput{TotalCost: 1000, InitialAmount: 250}
	d := Split(in)
	if d.Have != 250 || d.Remaining != 750 {
		t.Errorf("Split = %+v, want 250/750", d)
	}
	if p := Progress(in); p != 0.25 {
		t.Errorf("Progress = %v, want 0.25", p)
	}
	if p := Progress(model.PlanInput{TotalCost: 100, InitialAmount: 400}); p != 1 {
		t.Errorf("Progress over goal = %v, want 1", p)
	}
	if d := Split(model.PlanInput{TotalCost: 100, InitialAmount: 400}); d.Remaining != 0 {
		t.Errorf("Remaining over goal = %v, want 0", d.Remaining)
	}
}
