package rental

import (
	"math"

	"github.com/stwalsh4118/propcalc/api/internal/finance"
)

func (a *analysis) annualRent() float64        { return a.rent * monthsPerYear }
func (a *analysis) annualNOI() float64         { return a.noi * monthsPerYear }
func (a *analysis) annualCashFlow() float64    { return a.cashFlow * monthsPerYear }
func (a *analysis) annualDebtService() float64 { return a.debtService * monthsPerYear }
func (a *analysis) annualOpex() float64        { return a.opex * monthsPerYear }

func (a *analysis) capRate() float64 {
	return finance.Percent(a.annualNOI(), a.price())
}

func (a *analysis) cashOnCash() float64 {
	return finance.Percent(a.annualCashFlow(), a.cashInvested)
}

func (a *analysis) debtCoverage() float64 {
	ds := a.annualDebtService()
	if ds < MinimumDebtService {
		return 0
	}
	return a.annualNOI() / ds
}

// metrics computes the core ratios.
func (a *analysis) metrics() Metrics {
	return Metrics{
		CapRate:               finance.Round(a.capRate()),
		CashOnCashReturn:      finance.Round(a.cashOnCash()),
		GrossRentMultiplier:   finance.Round(finance.Ratio(a.price(), a.annualRent())),
		DebtCoverageRatio:     finance.Round(a.debtCoverage()),
		OperatingExpenseRatio: finance.Round(finance.Percent(a.annualOpex(), a.annualRent())),
		BreakEvenOccupancy:    finance.Round(finance.Percent(a.annualOpex()+a.annualDebtService(), a.annualRent())),
	}
}

func (a *analysis) landValue() float64 {
	if a.in.LandValue != nil {
		return *a.in.LandValue
	}
	return a.price() * DefaultLandValuePercent / 100
}

// depreciation is straight-line on the building value.
func (a *analysis) depreciation() float64 {
	years := finance.ValueOr(a.in.DepreciationYears, DefaultDepreciationYears)
	return finance.Ratio(math.Max(0, a.price()-a.landValue()), years)
}

func (a *analysis) taxShelter() float64 {
	return a.depreciation() * finance.ValueOr(a.in.MarginalTaxRate, 0) / 100
}

func (a *analysis) equityBuildupYear1() float64 {
	q := a.quote
	return finance.PrincipalPaid(q.LoanAmount, q.AnnualInterestRate, q.Months, monthsPerYear)
}

func (a *analysis) interestYear1() float64 {
	payments := math.Min(monthsPerYear, float64(a.quote.Months))
	return a.quote.PrincipalAndInterest*payments - a.equityBuildupYear1()
}

func (a *analysis) appreciationYear1() float64 {
	return a.price() * finance.ValueOr(a.in.AppreciationRate, DefaultAppreciationRate) / 100
}

// totalROI counts cash flow, appreciation, principal paydown and tax savings
// against the cash invested.
func (a *analysis) totalROI() float64 {
	gain := a.annualCashFlow() + a.appreciationYear1() + a.equityBuildupYear1() + a.taxShelter()
	return finance.Percent(gain, a.cashInvested)
}

// afterTaxCashFlow deducts income tax on NOI less interest, PMI, HOA and
// depreciation. A negative taxable income produces a tax saving.
func (a *analysis) afterTaxCashFlow() float64 {
	q := a.quote
	taxable := a.annualNOI() - a.interestYear1() - (q.PMI+q.HOA)*monthsPerYear - a.depreciation()
	tax := taxable * finance.ValueOr(a.in.MarginalTaxRate, 0) / 100
	return a.annualCashFlow() - tax
}

func (a *analysis) units() float64 {
	if a.in.Units == nil {
		return 1
	}
	return float64(*a.in.Units)
}

// interestRateSensitivity is the change in annual debt service for a one
// point rise in the interest rate.
func (a *analysis) interestRateSensitivity() float64 {
	q := a.quote
	bumped := finance.MonthlyPayment(q.LoanAmount, q.AnnualInterestRate+1, q.Months)
	return (bumped - q.PrincipalAndInterest) * monthsPerYear
}

// enhancedMetrics extends the core metrics. proj may be nil when no holding
// period was given.
func (a *analysis) enhancedMetrics(proj *projection) EnhancedMetrics {
	q := a.quote
	buildup := a.equityBuildupYear1()
	appreciation := a.appreciationYear1()
	equity := q.DownPayment + buildup + appreciation
	perUnit := a.cashFlow / a.units()
	totalROI := a.totalROI()

	m := EnhancedMetrics{
		Metrics:                 a.metrics(),
		TotalReturnOnInvestment: finance.Round(totalROI),
		AnnualizedReturn:        finance.Round(totalROI),
		RentToValueRatio:        finance.Round(finance.Percent(a.rent, a.price())),
		ExpenseToIncomeRatio:    finance.Round(finance.Percent(a.opex, a.effectiveRent)),
		OnePercentRule:          a.rent >= a.price()*0.01,
		TwoPercentRule:          a.rent >= a.price()*0.02,
		FiftyPercentRule:        finance.Round(a.rent * 0.5),
		CashFlowPerUnit:         finance.Round(perUnit),
		CashFlowPerDoor:         finance.Round(perUnit),
		LoanConstant:            finance.Round(finance.Percent(q.PrincipalAndInterest*monthsPerYear, q.LoanAmount)),
		DebtYieldRatio:          finance.Round(finance.Percent(a.annualNOI(), q.LoanAmount)),
		BreakEvenRatio:          finance.Round(finance.Percent(a.annualOpex()+a.annualDebtService(), a.effectiveRent*monthsPerYear)),

		AnnualDepreciation:      finance.Round(a.depreciation()),
		TaxShelterValue:         finance.Round(a.taxShelter()),
		AfterTaxCashFlow:        finance.Round(a.afterTaxCashFlow()),
		EquityBuildupYear1:      finance.Round(buildup),
		AppreciationYear1:       finance.Round(appreciation),
		TotalEquityYear1:        finance.Round(equity),
		ReturnOnEquity:          finance.Round(finance.Percent(a.annualCashFlow()+buildup+appreciation, equity)),
		VacancySensitivity:      finance.Round(a.annualRent() * 0.01),
		InterestRateSensitivity: finance.Round(a.interestRateSensitivity()),
		MaintenanceReserveRatio: finance.Round(finance.Percent(a.items.Maintenance+a.items.Capex, a.rent)),
	}

	if proj != nil {
		exit := proj.exit
		m.AnnualizedReturn = finance.Round(exit.annualizedReturn)
		irr := finance.Round(exit.irr)
		multiple := finance.Round(exit.equityMultiple)
		m.InternalRateOfReturn = &irr
		m.EquityMultiple = &multiple
	}
	return m
}
