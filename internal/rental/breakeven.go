package rental

import "github.com/stwalsh4118/propcalc/api/internal/finance"

const breakEvenSearchYears = 30

// breakEven finds the occupancy and rent at which cash flow reaches zero. When
// the property runs negative it searches forward under the growth assumptions
// for the first year with positive cash flow.
func (a *analysis) breakEven() *BreakEvenAnalysis {
	costs := a.opex + a.debtService
	b := &BreakEvenAnalysis{
		BreakEvenOccupancyRate: finance.Round(finance.Percent(costs, a.rent)),
		BreakEvenRent:          finance.Round(a.rentForCashFlow(0)),
		CashFlowBreakEvenPoint: finance.Round(costs),
	}

	if a.cashFlow >= 0 {
		b.ReachesPositiveCashFlow = true
		return b
	}
	for i, y := range a.yearly(breakEvenSearchYears) {
		if y.annualCashFlow > 0 {
			b.MonthsToPositiveCashFlow = i * monthsPerYear
			b.ReachesPositiveCashFlow = true
			break
		}
	}
	return b
}
