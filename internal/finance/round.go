// Package finance holds the money math shared by the calculation engines:
// rounding, guarded ratios, the fixed-rate amortization recurrence and
// aggregated input validation.
package finance

import (
	"math"

	"github.com/shopspring/decimal"
)

// MoneyPlaces is the number of decimal places used for every returned amount.
const MoneyPlaces = 2

// Round rounds v half away from zero to two decimal places.
// NaN and infinities collapse to 0 so results always encode as JSON.
func Round(v float64) float64 {
	return RoundTo(v, MoneyPlaces)
}

// RoundTo rounds v half away from zero to the given number of places.
func RoundTo(v float64, places int32) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}
