package tui

import (
	"errors"
	"testing"
	"time"

	"github.com/theirongolddev/dreamcalc/internal/cli"
	"github.com/theirongolddev/dreamcalc/internal/config"
	"github.com/theirongolddev/dreamcalc/internal/history"
	"github.com/theirongolddev/dreamcalc/internal/model"
	"github.com/theirongolddev/dreamcalc/internal/planner"
	"github.com/theirongolddev/dreamcalc/internal/store"
	"github.com/theirongolddev/dreamcalc/internal/tui/components"

	tea "github.com/charmbracelet/bubbletea"
)

var testNow = time.Date(2026, time.January, 15, 9, 0, 0, 0, time.UTC)

func newTestApp(t *testing.T) (App, *history.Store) {
	t.Helper()
	h := history.New(store.NewMemory(), history.WithClock(func() time.Time { return testNow }))
	app := NewApp(Options{
		Calculator: planner.New(planner.WithClock(func() time.Time { return testNow })),
		History:    h,
		Money:      cli.NewMoney("TJS", "en"),
		Config:     config.DefaultConfig(),
	})
	return app, h
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, a App, msg tea.Msg) (App, tea.Cmd) {
	t.Helper()
	m, cmd := a.Update(msg)
	next, ok := m.(App)
	if !ok {
		t.Fatalf("Update returned %T, want App", m)
	}
	return next, cmd
}

func TestNewerCalculationSupersedesPending(t *testing.T) {
	a, h := newTestApp(t)

	car := model.PlanInput{TotalCost: 100000, InitialAmount: 20000, MonthlySave: 5000}
	phone := model.PlanInput{TotalCost: 1500, InitialAmount: 300, MonthlySave: 75}

	a.schedule("Car", car)
	first := a.calcSeq
	a.schedule("Phone", phone)

	// The first request's tick arrives late and must be dropped.
	a, cmd := update(t, a, calcTickMsg{seq: first})
	if cmd != nil {
		t.Error("stale tick should not produce a command")
	}
	if a.plan != nil {
		t.Fatal("stale tick produced a plan")
	}
	if a.pending == nil || a.pending.name != "Phone" {
		t.Fatalf("pending = %+v, want the Phone request", a.pending)
	}

	a, cmd = update(t, a, calcTickMsg{seq: a.calcSeq})
	if a.plan == nil || a.plan.name != "Phone" {
		t.Fatalf("plan = %+v, want Phone", a.plan)
	}
	if a.plan.result.Months != 16 {
		t.Errorf("Months = %d, want 16", a.plan.result.Months)
	}
	if a.pending != nil {
		t.Error("pending should be cleared once computed")
	}
	if h.Len() != 0 {
		t.Error("history written before the result was handed off")
	}

	if cmd == nil {
		t.Fatal("expected a record command")
	}
	a, _ = update(t, a, cmd())
	if h.Len() != 1 {
		t.Fatalf("history has %d records, want 1", h.Len())
	}
	if len(a.records) != 1 || a.records[0].DreamName != "Phone" {
		t.Errorf("records = %+v", a.records)
	}
	if a.status != "Saved to history" {
		t.Errorf("status = %q", a.status)
	}
}

func TestAlreadyReachedPlanHasNoSeries(t *testing.T) {
	a, _ := newTestApp(t)
	a.cfg.Calculation.InflationPercent = 10

	a.schedule("", model.PlanInput{TotalCost: 1000, InitialAmount: 1500, MonthlySave: 10})
	a, _ = update(t, a, calcTickMsg{seq: a.calcSeq})

	if a.plan == nil || !a.plan.result.IsAlreadyReached {
		t.Fatalf("plan = %+v, want already reached", a.plan)
	}
	if len(a.plan.series.Savings) != 0 {
		t.Error("reached plan should have no savings series")
	}
	if a.plan.inflation != nil {
		t.Error("reached plan should skip inflation")
	}
	if a.plan.name != history.DefaultDreamName {
		t.Errorf("name = %q, want %q", a.plan.name, history.DefaultDreamName)
	}
}

func TestInflationShownWhenConfigured(t *testing.T) {
	a, _ := newTestApp(t)
	a.cfg.Calculation.InflationPercent = 12

	a.schedule("Car", model.PlanInput{TotalCost: 100000, InitialAmount: 20000, MonthlySave: 5000})
	a, _ = update(t, a, calcTickMsg{seq: a.calcSeq})

	if a.plan.inflation == nil {
		t.Fatal("expected inflation result")
	}
	if a.plan.inflation.AdjustedMonths <= a.plan.result.Months {
		t.Errorf("adjusted %d should exceed %d", a.plan.inflation.AdjustedMonths, a.plan.result.Months)
	}
}

func TestPlanValuesResolve(t *testing.T) {
	tests := []struct {
		name     string
		vals     planValues
		wantName string
		want     model.PlanInput
		wantErr  error
	}{
		{
			name:     "blank amounts autofill from preset",
			vals:     planValues{goal: "car"},
			wantName: "Car",
			want:     model.PlanInput{TotalCost: 100000, InitialAmount: 20000, MonthlySave: 5000},
		},
		{
			name:     "typed amounts win",
			vals:     planValues{goal: "car", name: "  Red car ", cost: "120,000", initial: "0", monthly: "10 000"},
			wantName: "Red car",
			want:     model.PlanInput{TotalCost: 120000, InitialAmount: 0, MonthlySave: 10000},
		},
		{
			name:     "custom goal keeps blank name",
			vals:     planValues{goal: model.CustomGoalType},
			wantName: "",
			want:     model.PlanInput{TotalCost: 50000, InitialAmount: 10000, MonthlySave: 2500},
		},
		{
			name:    "zero monthly rejected",
			vals:    planValues{goal: "car", monthly: "0"},
			wantErr: planner.ErrMonthlyNotPositive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, in, err := tt.vals.resolve()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if name != tt.wantName {
				t.Errorf("name = %q, want %q", name, tt.wantName)
			}
			if in != tt.want {
				t.Errorf("input = %+v, want %+v", in, tt.want)
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	if _, ok, err := parseAmount("   "); ok || err != nil {
		t.Errorf("blank: ok=%v err=%v", ok, err)
	}
	if v, ok, err := parseAmount("1,500.50"); !ok || err != nil || v != 1500.5 {
		t.Errorf("1,500.50 -> %v %v %v", v, ok, err)
	}
	if _, _, err := parseAmount("abc"); err == nil {
		t.Error("abc should fail")
	}
	if _, _, err := parseAmount("-5"); err == nil {
		t.Error("negative should fail")
	}
	for _, s := range []string{"NaN", "Inf", "+inf", "-Infinity", "1e400"} {
		if _, ok, err := parseAmount(s); ok || err == nil {
			t.Errorf("%q should fail, got ok=%v err=%v", s, ok, err)
		}
	}
}

func TestResolveRejectsOverlongTerm(t *testing.T) {
	vals := planValues{goal: model.CustomGoalType, name: "Island", cost: "1e20", initial: "0", monthly: "1"}
	if _, _, err := vals.resolve(); !errors.Is(err, planner.ErrTermTooLong) {
		t.Errorf("err = %v, want ErrTermTooLong", err)
	}
}

func TestHistoryDeleteAndClear(t *testing.T) {
	a, h := newTestApp(t)
	in := model.PlanInput{TotalCost: 1000, InitialAmount: 0, MonthlySave: 100}
	calc := planner.New()
	for _, name := range []string{"Phone", "Bike", "Car"} {
		h.Record(name, in, calc.ComputePlan(in))
	}
	a.records = h.List()
	a.form = nil
	a.activeTab = tabHistory

	a, _ = update(t, a, keyMsg("j"))
	if a.cursor != 1 {
		t.Fatalf("cursor = %d, want 1", a.cursor)
	}

	a, _ = update(t, a, keyMsg("d"))
	if h.Len() != 2 {
		t.Fatalf("history has %d records after delete, want 2", h.Len())
	}
	for _, r := range a.records {
		if r.DreamName == "Bike" {
			t.Error("Bike should have been deleted")
		}
	}

	a, _ = update(t, a, keyMsg("C"))
	if !a.confirmClear {
		t.Fatal("C should ask for confirmation")
	}
	a, _ = update(t, a, keyMsg("n"))
	if h.Len() != 2 {
		t.Fatal("declined clear still removed records")
	}

	a, _ = update(t, a, keyMsg("C"))
	a, _ = update(t, a, keyMsg("y"))
	if h.Len() != 0 || len(a.records) != 0 {
		t.Errorf("history not cleared: store=%d view=%d", h.Len(), len(a.records))
	}
}

func TestHistoryEnterLoadsForm(t *testing.T) {
	a, h := newTestApp(t)
	in := model.PlanInput{TotalCost: 3000, InitialAmount: 600, MonthlySave: 150}
	h.Record("Bicycle", in, planner.New().ComputePlan(in))
	a.records = h.List()
	a.form = nil
	a.activeTab = tabHistory

	a, cmd := update(t, a, keyMsg("enter"))
	if cmd == nil || a.form == nil {
		t.Fatal("enter should open the plan form")
	}
	if a.activeTab != tabPlan {
		t.Errorf("activeTab = %d, want plan", a.activeTab)
	}
	if a.vals.goal != "bike" || a.vals.cost != "3000" || a.vals.monthly != "150" {
		t.Errorf("vals = %+v", *a.vals)
	}
}

func TestTabKeys(t *testing.T) {
	a, _ := newTestApp(t)
	a.form = nil

	a, _ = update(t, a, keyMsg("h"))
	if a.activeTab != tabHistory {
		t.Errorf("h -> tab %d", a.activeTab)
	}
	a, _ = update(t, a, keyMsg("s"))
	if a.activeTab != tabStats {
		t.Errorf("s -> tab %d", a.activeTab)
	}
	a, _ = update(t, a, tea.KeyMsg{Type: tea.KeyRight})
	if a.activeTab != tabPlan {
		t.Errorf("right from stats -> tab %d, want wrap to plan", a.activeTab)
	}
}

func TestTabAtXMatchesTabWidths(t *testing.T) {
	for active := range components.Tabs {
		a := App{activeTab: active}
		pos := 0
		for i, tab := range components.Tabs {
			w := components.TabVisualWidth(tab, i == active)
			if got := a.tabAtX(pos + w/2); got != i {
				t.Fatalf("active=%d x=%d -> tab=%d, want %d", active, pos+w/2, got, i)
			}
			pos += w + 1
		}
		if got := a.tabAtX(pos + 50); got != -1 {
			t.Errorf("x past the last tab -> %d, want -1", got)
		}
	}
}

func TestViewRendersEachTab(t *testing.T) {
	a, _ := newTestApp(t)
	a, _ = update(t, a, tea.WindowSizeMsg{Width: 120, Height: 40})

	a.schedule("Car", model.PlanInput{TotalCost: 100000, InitialAmount: 20000, MonthlySave: 5000})
	a, cmd := update(t, a, calcTickMsg{seq: a.calcSeq})
	a, _ = update(t, a, cmd())

	for _, tab := range []int{tabPlan, tabHistory, tabStats} {
		a.activeTab = tab
		if v := a.View(); v == "" {
			t.Errorf("tab %d rendered empty", tab)
		}
	}

	a.width = 40
	if v := a.View(); v == "" {
		t.Error("narrow view rendered empty")
	}
}

func TestSetupValuesApply(t *testing.T) {
	cfg := config.DefaultConfig()
	vals := SetupValues{Currency: " usd ", DefaultGoal: "house", Theme: "terminal", Backend: config.BackendMemory, Inflation: "7.5%"}
	if err := vals.Apply(&cfg); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if cfg.General.Currency != "USD" || cfg.General.DefaultGoal != "house" ||
		cfg.Appearance.Theme != "terminal" || cfg.Storage.Backend != config.BackendMemory ||
		cfg.Calculation.InflationPercent != 7.5 {
		t.Errorf("cfg = %+v", cfg)
	}

	vals.Inflation = "lots"
	if err := vals.Apply(&cfg); err == nil {
		t.Error("bad inflation should fail")
	}
}

func TestValidateCurrency(t *testing.T) {
	for _, ok := range []string{"TJS", "usd", " EUR "} {
		if err := validateCurrency(ok); err != nil {
			t.Errorf("validateCurrency(%q) = %v", ok, err)
		}
	}
	for _, bad := range []string{"", "US", "US1", "EURO"} {
		if err := validateCurrency(bad); err == nil {
			t.Errorf("validateCurrency(%q) should fail", bad)
		}
	}
}
