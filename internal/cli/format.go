// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/theirongolddev/dreamcalc/internal/model"
)

// LongDate is the layout used for goal dates.
const LongDate = "January 2, 2006"

// Money formats amounts in a single currency for one locale.
type Money struct {
	Code    string
	printer *message.Printer
}

// NewMoney returns a formatter for the currency code. An unparsable locale
// falls back to English.
func NewMoney(code, locale string) Money {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return Money{
		Code:    strings.ToUpper(code),
		printer: message.NewPrinter(tag),
	}
}

// Format renders a whole-unit amount with thousands separators and a trailing
// currency code, e.g. 100000 -> "100,000 TJS".
func (m Money) Format(amount float64) string {
	return m.Number(amount) + " " + m.Code
}

// Number renders a whole-unit amount without the currency code.
func (m Money) Number(amount float64) string {
	return m.printer.Sprint(number.Decimal(math.Round(amount), number.MaxFractionDigits(0)))
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatMonths returns "1 month" or "N months".
func FormatMonths(n int) string {
	if n == 1 {
		return "1 month"
	}
	return strconv.Itoa(n) + " months"
}

// FormatYears returns the one-decimal year count with a pluralized unit.
func FormatYears(y float64) string {
	s := strconv.FormatFloat(y, 'f', 1, 64)
	if s == "1.0" {
		return "1 year"
	}
	return s + " years"
}

// FormatGoalDate renders the completion date of a plan result.
func FormatGoalDate(r model.PlanResult) string {
	if r.IsAlreadyReached {
		return "Today!"
	}
	return r.GoalDate.Format(LongDate)
}

// FormatRecordDate renders the stored goal date of a history record. Values
// that fail to parse are shown as stored.
func FormatRecordDate(goalDate string) string {
	if goalDate == model.GoalDateReached {
		return "Today!"
	}
	t, err := time.Parse(time.DateOnly, goalDate)
	if err != nil {
		return goalDate
	}
	return t.Format(LongDate)
}

// FormatTimestamp renders when a record was created, in local time.
func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return t.Local().Format("Jan 2, 2006 15:04")
}

// FormatDuration formats a month count as "Xy Ym" for compact columns.
// e.g., 16 -> "1y 4m", 5 -> "5m", 0 -> "now"
func FormatDuration(months int) string {
	if months <= 0 {
		return "now"
	}
	years := months / 12
	rest := months % 12
	if years > 0 && rest > 0 {
		return fmt.Sprintf("%dy %dm", years, rest)
	}
	if years > 0 {
		return fmt.Sprintf("%dy", years)
	}
	return fmt.Sprintf("%dm", rest)
}
