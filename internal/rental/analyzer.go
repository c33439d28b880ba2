package rental

import (
	"github.com/stwalsh4118/propcalc/api/internal/finance"
	"github.com/stwalsh4118/propcalc/api/internal/mortgage"
)

// Validate reports every problem with in at once, mortgage fields included.
func Validate(in Input) error {
	v := finance.NewViolations("")
	mortgage.Check(v, in.FlexibleInput)

	v.Positive("monthlyRent", in.MonthlyRent)
	if in.Expenses == nil {
		v.Addf("expenses is required")
	} else {
		checkExpenses(v, *in.Expenses)
	}

	v.OptionalNonNegative("closingCosts", in.ClosingCosts)
	v.OptionalNonNegative("rehabCosts", in.RehabCosts)
	for _, g := range []struct {
		name  string
		value *float64
	}{
		{"appreciationRate", in.AppreciationRate},
		{"rentGrowthRate", in.RentGrowthRate},
		{"expenseGrowthRate", in.ExpenseGrowthRate},
	} {
		if g.value != nil && *g.value <= -100 {
			v.Addf("%s must be greater than -100", g.name)
		}
	}
	v.Percentage("marginalTaxRate", in.MarginalTaxRate)
	v.Percentage("capitalGainsTaxRate", in.CapitalGainsTaxRate)
	if in.DepreciationYears != nil && *in.DepreciationYears <= 0 {
		v.Addf("depreciationYears must be greater than 0")
	}
	v.OptionalNonNegative("landValue", in.LandValue)
	if in.HoldingPeriodYears != nil && (*in.HoldingPeriodYears < 1 || *in.HoldingPeriodYears > MaxHoldingPeriodYears) {
		v.Addf("holdingPeriodYears must be between 1 and %d", MaxHoldingPeriodYears)
	}
	if in.Units != nil && *in.Units < 1 {
		v.Addf("units must be at least 1")
	}

	return v.Err()
}

// analysis carries the unrounded figures of one pass through the pipeline.
type analysis struct {
	in    Input
	quote mortgage.Quote
	items LineItems

	rent          float64
	vacancyRate   float64
	effectiveRent float64
	opex          float64
	noi           float64
	debtService   float64
	cashFlow      float64
	cashInvested  float64
}

// run validates in and takes it through normalization, the mortgage engine,
// expense resolution and cash flow.
func run(in Input) (*analysis, error) {
	if err := Validate(in); err != nil {
		return nil, err
	}
	terms, err := mortgage.Normalize(in.FlexibleInput)
	if err != nil {
		return nil, err
	}

	a := &analysis{in: in, quote: mortgage.NewQuote(terms), rent: in.MonthlyRent}
	a.items = ResolveExpenses(*in.Expenses, a.rent, terms.PropertyPrice)
	a.vacancyRate = in.Expenses.VacancyPercent()
	a.effectiveRent = a.rent - a.items.Vacancy
	a.opex = a.items.Operating() + a.quote.PropertyTax + a.quote.HomeInsurance
	a.noi = a.effectiveRent - a.opex
	a.debtService = a.quote.DebtService()
	a.cashFlow = a.noi - a.debtService
	a.cashInvested = a.quote.DownPayment + finance.ValueOr(in.ClosingCosts, 0) + finance.ValueOr(in.RehabCosts, 0)
	return a, nil
}

func (a *analysis) price() float64 { return a.quote.PropertyPrice }

// cashFlowAtRent is the monthly cash flow if the property rented at rent with
// every other assumption unchanged.
func (a *analysis) cashFlowAtRent(rent float64) float64 {
	items := ResolveExpenses(*a.in.Expenses, rent, a.price())
	opex := items.Operating() + a.quote.PropertyTax + a.quote.HomeInsurance
	return rent - items.Vacancy - opex - a.debtService
}

// rentForCashFlow solves for the rent producing target monthly cash flow.
// Cash flow is linear in rent, so the slope is measured over one dollar.
func (a *analysis) rentForCashFlow(target float64) float64 {
	slope := a.cashFlowAtRent(a.rent+1) - a.cashFlowAtRent(a.rent)
	if slope <= 0 {
		return 0
	}
	return a.rent + (target-a.cashFlow)/slope
}

// Analyze runs the full rental pipeline. The amortization schedule is attached
// only when withSchedule is set. Projections and exit analysis require a
// holding period.
func Analyze(in Input, withSchedule bool) (*Result, error) {
	a, err := run(in)
	if err != nil {
		return nil, err
	}

	result := a.result()
	if withSchedule {
		result.AmortizationSchedule = a.quote.Schedule()
	}

	var proj *projection
	if in.HoldingPeriodYears != nil {
		proj = a.project(*in.HoldingPeriodYears)
		result.ProjectedReturns = proj.returns()
	}
	result.Metrics = a.enhancedMetrics(proj)
	result.InvestmentSummary = a.summary()
	result.BreakEvenAnalysis = a.breakEven()
	result.TargetAnalysis = a.targets()

	sensitivity, err := Sensitivity(in)
	if err != nil {
		return nil, err
	}
	result.SensitivityAnalysis = sensitivity

	return result, nil
}

// result rounds the pipeline figures shared by every rental result.
func (a *analysis) result() *Result {
	q := a.quote
	return &Result{
		Result:               q.Result(),
		MonthlyRent:          finance.Round(a.rent),
		EffectiveMonthlyRent: finance.Round(a.effectiveRent),
		OperatingExpenses:    a.operatingExpenses(),
		CashFlow: CashFlow{
			GrossRent:          finance.Round(a.rent),
			EffectiveRent:      finance.Round(a.effectiveRent),
			TotalExpenses:      finance.Round(a.opex),
			NetOperatingIncome: finance.Round(a.noi),
			DebtService:        finance.Round(a.debtService),
			CashFlowMonthly:    finance.Round(a.cashFlow),
			CashFlowAnnual:     finance.Round(a.cashFlow * monthsPerYear),
		},
		Metrics: EnhancedMetrics{Metrics: a.metrics()},
	}
}

func (a *analysis) operatingExpenses() OperatingExpenses {
	l := a.items
	return OperatingExpenses{
		Vacancy:            finance.Round(l.Vacancy),
		PropertyManagement: finance.Round(l.PropertyManagement),
		Maintenance:        finance.Round(l.Maintenance),
		Capex:              finance.Round(l.Capex),
		Utilities:          finance.Round(l.Utilities),
		Landscaping:        finance.Round(l.Landscaping),
		PestControl:        finance.Round(l.PestControl),
		LegalFees:          finance.Round(l.LegalFees),
		LandlordInsurance:  finance.Round(l.LandlordInsurance),
		SpecialAssessments: finance.Round(l.SpecialAssessments),
		Advertising:        finance.Round(l.Advertising),
		Turnover:           finance.Round(l.Turnover),
		PropertyTax:        finance.Round(a.quote.PropertyTax),
		HomeInsurance:      finance.Round(a.quote.HomeInsurance),
		TotalMonthly:       finance.Round(a.opex),
	}
}

func (a *analysis) summary() *InvestmentSummary {
	annual := a.cashFlow * monthsPerYear
	s := &InvestmentSummary{
		TotalCashNeeded:    finance.Round(a.cashInvested),
		AllInCost:          finance.Round(a.price() + finance.ValueOr(a.in.ClosingCosts, 0) + finance.ValueOr(a.in.RehabCosts, 0)),
		MonthlyGrossIncome: finance.Round(a.rent),
		MonthlyNetIncome:   finance.Round(a.cashFlow),
		AnnualNetIncome:    finance.Round(annual),
		TotalROI:           finance.Round(a.totalROI()),
	}
	if annual > 0 && a.cashInvested > 0 {
		s.PaybackPeriod = finance.Round(a.cashInvested / annual)
		s.PaysBack = true
	}
	return s
}

func (a *analysis) targets() *TargetAnalysis {
	if a.in.TargetCashFlow == nil && a.in.TargetCapRate == nil {
		return nil
	}

	t := &TargetAnalysis{}
	if target := a.in.TargetCashFlow; target != nil {
		meets := a.cashFlow >= *target
		rent := finance.Round(a.rentForCashFlow(*target))
		t.TargetCashFlow = target
		t.MeetsCashFlowTarget = &meets
		t.RentForTargetCashFlow = &rent
	}
	if target := a.in.TargetCapRate; target != nil {
		meets := a.capRate() >= *target
		price := finance.Round(finance.Ratio(a.noi*monthsPerYear, *target/100))
		t.TargetCapRate = target
		t.MeetsCapRateTarget = &meets
		t.PriceForTargetCapRate = &price
	}
	return t
}
