package rental

import (
	"math"

	"github.com/stwalsh4118/propcalc/api/internal/finance"
)

// projectionHorizon guarantees the year 5 and year 10 snapshots exist.
const projectionHorizon = 10

type yearState struct {
	year           int
	rent           float64
	opex           float64
	annualCashFlow float64
	value          float64
	balance        float64
	equity         float64
	cumulative     float64
	totalReturn    float64
}

type exitState struct {
	years            int
	salePrice        float64
	sellingCosts     float64
	payoff           float64
	netProceeds      float64
	capitalGain      float64
	capitalGainsTax  float64
	totalCashFlow    float64
	totalReturn      float64
	annualizedReturn float64
	equityMultiple   float64
	irr              float64
	irrConverged     bool
}

type projection struct {
	holding int
	years   []yearState
	exit    exitState
}

// yearly projects n years. Value, rent and expenses compound annually; the
// loan balance replays the monthly recurrence and stops at the end of the term.
// Rent and expenses for year y are the year-one figures grown y-1 times, so
// year one reproduces the current cash flow.
func (a *analysis) yearly(n int) []yearState {
	q := a.quote
	appreciation := finance.ValueOr(a.in.AppreciationRate, DefaultAppreciationRate)
	rentGrowth := finance.ValueOr(a.in.RentGrowthRate, DefaultRentGrowthRate)
	expenseGrowth := finance.ValueOr(a.in.ExpenseGrowthRate, DefaultExpenseGrowthRate)
	occupancy := 1 - a.vacancyRate/100

	years := make([]yearState, 0, n)
	cumulative := 0.0
	for y := 1; y <= n; y++ {
		startBalance := q.BalanceAfter((y - 1) * monthsPerYear)
		balance := q.BalanceAfter(y * monthsPerYear)
		payments := finance.Clamp(float64(q.Months-(y-1)*monthsPerYear), 0, monthsPerYear)
		pmi := q.ProjectedPMI(startBalance)

		rent := finance.Compound(a.rent, rentGrowth, y-1)
		opex := finance.Compound(a.opex, expenseGrowth, y-1)
		debtService := (q.PrincipalAndInterest+pmi)*payments + q.HOA*monthsPerYear
		annualCashFlow := (rent*occupancy-opex)*monthsPerYear - debtService
		cumulative += annualCashFlow

		value := finance.Compound(a.price(), appreciation, y)
		equity := value - balance
		years = append(years, yearState{
			year:           y,
			rent:           rent,
			opex:           opex,
			annualCashFlow: annualCashFlow,
			value:          value,
			balance:        balance,
			equity:         equity,
			cumulative:     cumulative,
			totalReturn:    equity + cumulative - a.cashInvested,
		})
	}
	return years
}

func (a *analysis) project(holding int) *projection {
	horizon := holding
	if horizon < projectionHorizon {
		horizon = projectionHorizon
	}
	years := a.yearly(horizon)
	return &projection{
		holding: holding,
		years:   years,
		exit:    a.exit(years[:holding]),
	}
}

// exit sells at the end of the last projected year.
func (a *analysis) exit(years []yearState) exitState {
	last := years[len(years)-1]
	held := float64(len(years))
	invested := a.cashInvested

	e := exitState{
		years:         len(years),
		salePrice:     last.value,
		sellingCosts:  last.value * SellingCostPercent / 100,
		payoff:        last.balance,
		totalCashFlow: last.cumulative,
	}
	e.netProceeds = e.salePrice - e.sellingCosts - e.payoff
	e.totalReturn = e.netProceeds + e.totalCashFlow - invested

	costs := finance.ValueOr(a.in.ClosingCosts, 0) + finance.ValueOr(a.in.RehabCosts, 0)
	basis := math.Max(0, a.price()+costs-a.depreciation()*held)
	e.capitalGain = e.salePrice - e.sellingCosts - basis
	e.capitalGainsTax = math.Max(0, e.capitalGain) * finance.ValueOr(a.in.CapitalGainsTaxRate, DefaultCapitalGainsTaxRate) / 100

	if invested > 0 {
		growth := (e.totalReturn + invested) / invested
		if growth > 0 {
			e.annualizedReturn = (math.Pow(growth, 1/held) - 1) * 100
		} else {
			e.annualizedReturn = -100
		}
		e.equityMultiple = (e.totalCashFlow + e.netProceeds) / invested

		flows := make([]float64, 0, len(years)+1)
		flows = append(flows, -invested)
		for _, y := range years {
			flows = append(flows, y.annualCashFlow)
		}
		flows[len(flows)-1] += e.netProceeds
		rate, ok := finance.IRR(flows)
		e.irr = rate * 100
		e.irrConverged = ok
	}
	return e
}

func (y yearState) rounded() YearlyProjection {
	return YearlyProjection{
		Year:               y.year,
		MonthlyRent:        finance.Round(y.rent),
		MonthlyExpenses:    finance.Round(y.opex),
		AnnualCashFlow:     finance.Round(y.annualCashFlow),
		PropertyValue:      finance.Round(y.value),
		LoanBalance:        finance.Round(y.balance),
		Equity:             finance.Round(y.equity),
		CumulativeCashFlow: finance.Round(y.cumulative),
		TotalReturn:        finance.Round(y.totalReturn),
	}
}

func (p *projection) returns() *ProjectedReturns {
	series := make([]YearlyProjection, 0, p.holding)
	for _, y := range p.years[:p.holding] {
		series = append(series, y.rounded())
	}

	e := p.exit
	return &ProjectedReturns{
		Year1:  p.years[0].rounded(),
		Year5:  p.years[4].rounded(),
		Year10: p.years[9].rounded(),
		Years:  series,
		ExitAnalysis: ExitAnalysis{
			HoldingPeriodYears:    e.years,
			SalePrice:             finance.Round(e.salePrice),
			SellingCosts:          finance.Round(e.sellingCosts),
			LoanPayoff:            finance.Round(e.payoff),
			NetProceeds:           finance.Round(e.netProceeds),
			CapitalGain:           finance.Round(e.capitalGain),
			CapitalGainsTax:       finance.Round(e.capitalGainsTax),
			AfterTaxNetProceeds:   finance.Round(e.netProceeds - e.capitalGainsTax),
			TotalCashFlow:         finance.Round(e.totalCashFlow),
			TotalReturn:           finance.Round(e.totalReturn),
			AnnualizedReturn:      finance.Round(e.annualizedReturn),
			EquityMultiple:        finance.Round(e.equityMultiple),
			InternalRateOfReturn:  finance.Round(e.irr),
			InternalRateConverged: e.irrConverged,
		},
	}
}
