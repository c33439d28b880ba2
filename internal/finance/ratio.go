package finance

import "math"

// Ratio returns num/den, or 0 when den is not positive.
func Ratio(num, den float64) float64 {
	if den <= 0 {
		return 0
	}
	return num / den
}

// Percent returns num/den*100, or 0 when den is not positive.
func Percent(num, den float64) float64 {
	return Ratio(num, den) * 100
}

// OfPercent returns pct percent of base.
func OfPercent(base, pct float64) float64 {
	return base * pct / 100
}

// Compound grows v at ratePct per period for the given number of periods.
func Compound(v, ratePct float64, periods int) float64 {
	if periods <= 0 {
		return v
	}
	return v * math.Pow(1+ratePct/100, float64(periods))
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// ValueOr dereferences p, falling back to def when p is nil.
func ValueOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}
