package planner

import (
	"math"

	"github.com/shopspring/decimal"
)

// compoundPrecision bounds the digits kept between compounding steps.
const compoundPrecision = 16

var maxCount = decimal.NewFromInt(math.MaxInt32)

// amount converts a float64 currency figure to its shortest decimal representation.
func amount(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

// ceilDiv returns ceil(a / b) as a month count, saturating at math.MaxInt32.
func ceilDiv(a, b decimal.Decimal) int {
	q := a.Div(b).Ceil()
	if q.GreaterThan(maxCount) {
		return math.MaxInt32
	}
	return int(q.IntPart())
}

// yearsOf reports months as years rounded to one decimal place.
func yearsOf(months int) float64 {
	return decimal.NewFromInt(int64(months)).Div(decimal.NewFromInt(12)).Round(1).InexactFloat64()
}
