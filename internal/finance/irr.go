package finance

import "math"

const (
	irrLow        = -0.9999
	irrHigh       = 10.0
	irrIterations = 200
	irrTolerance  = 1e-9
)

// NPV discounts periodic cash flows at rate; flows[0] occurs at time zero.
func NPV(rate float64, flows []float64) float64 {
	total := 0.0
	for i, f := range flows {
		total += f / math.Pow(1+rate, float64(i))
	}
	return total
}

// IRR finds the periodic rate at which NPV is zero by bisection. It reports
// false when the flows do not change sign across the search range.
func IRR(flows []float64) (float64, bool) {
	if len(flows) < 2 {
		return 0, false
	}
	lo, hi := irrLow, irrHigh
	npvLo := NPV(lo, flows)
	npvHi := NPV(hi, flows)
	if math.IsNaN(npvLo) || math.IsNaN(npvHi) || npvLo*npvHi > 0 {
		return 0, false
	}

	for i := 0; i < irrIterations; i++ {
		mid := (lo + hi) / 2
		npvMid := NPV(mid, flows)
		if math.Abs(npvMid) < irrTolerance || (hi-lo)/2 < irrTolerance {
			return mid, true
		}
		if npvLo*npvMid < 0 {
			hi = mid
		} else {
			lo, npvLo = mid, npvMid
		}
	}
	return (lo + hi) / 2, true
}
