package cli

import (
	"testing"
	"time"

	"github.com/theirongolddev/dreamcalc/internal/model"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-50000, "-50,000"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMoneyFormat(t *testing.T) {
	tests := []struct {
		code   string
		locale string
		amount float64
		want   string
	}{
		{"TJS", "en", 100000, "100,000 TJS"},
		{"tjs", "en", 80000, "80,000 TJS"},
		{"USD", "en", 999.6, "1,000 USD"},
		{"TJS", "not a locale!!", 5000, "5,000 TJS"},
		{"EUR", "de", 1234567, "1.234.567 EUR"},
	}
	for _, tt := range tests {
		got := NewMoney(tt.code, tt.locale).Format(tt.amount)
		if got != tt.want {
			t.Errorf("NewMoney(%q, %q).Format(%v) = %q, want %q", tt.code, tt.locale, tt.amount, got, tt.want)
		}
	}
}

func TestFormatMonthsAndYears(t *testing.T) {
	if got := FormatMonths(1); got != "1 month" {
		t.Errorf("FormatMonths(1) = %q", got)
	}
	if got := FormatMonths(16); got != "16 months" {
		t.Errorf("FormatMonths(16) = %q", got)
	}
	if got := FormatYears(1); got != "1 year" {
		t.Errorf("FormatYears(1) = %q", got)
	}
	if got := FormatYears(1.3); got != "1.3 years" {
		t.Errorf("FormatYears(1.3) = %q", got)
	}
	if got := FormatYears(0); got != "0.0 years" {
		t.Errorf("FormatYears(0) = %q", got)
	}
}

func TestFormatGoalDate(t *testing.T) {
	r := model.PlanResult{GoalDate: time.Date(2027, time.May, 15, 0, 0, 0, 0, time.UTC)}
	if got := FormatGoalDate(r); got != "May 15, 2027" {
		t.Errorf("FormatGoalDate = %q", got)
	}
	r.IsAlreadyReached = true
	if got := FormatGoalDate(r); got != "Today!" {
		t.Errorf("FormatGoalDate(reached) = %q", got)
	}
}

func TestFormatRecordDate(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"2027-05-15", "May 15, 2027"},
		{model.GoalDateReached, "Today!"},
		{"garbage", "garbage"},
	}
	for _, tt := range tests {
		if got := FormatRecordDate(tt.in); got != tt.want {
			t.Errorf("FormatRecordDate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		months int
		want   string
	}{
		{0, "now"},
		{5, "5m"},
		{12, "1y"},
		{16, "1y 4m"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.months); got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.months, got, tt.want)
		}
	}
}
