// Package rental analyzes a financed rental property: operating expenses, cash
// flow, return metrics, multi-year projections, break-even and sensitivity.
package rental

import "github.com/stwalsh4118/propcalc/api/internal/mortgage"

// Investment assumptions applied when the caller does not override them.
const (
	DefaultVacancyRate         = 8.0
	DefaultAppreciationRate    = 3.0
	DefaultRentGrowthRate      = 3.0
	DefaultExpenseGrowthRate   = 2.5
	DefaultCapitalGainsTaxRate = 15.0
	DefaultDepreciationYears   = 27.5
	DefaultLandValuePercent    = 20.0
	SellingCostPercent         = 8.0
	MinimumDebtService         = 0.01
	MaxHoldingPeriodYears      = 50
	monthsPerYear              = mortgage.MonthsPerYear
)

// Expenses lists the operating expense categories. Categories that can be
// stated several ways resolve in the order annual or flat amount, percent of
// rent, percent of value; the first one present wins.
type Expenses struct {
	VacancyRate *float64 `json:"vacancyRate,omitempty"`

	PropertyManagementFlat    *float64 `json:"propertyManagementFlat,omitempty"`
	PropertyManagementPercent *float64 `json:"propertyManagementPercent,omitempty"`

	MaintenanceAnnual         *float64 `json:"maintenanceAnnual,omitempty"`
	MaintenancePercentOfRent  *float64 `json:"maintenancePercentOfRent,omitempty"`
	MaintenancePercentOfValue *float64 `json:"maintenancePercentOfValue,omitempty"`

	CapexAnnual         *float64 `json:"capexAnnual,omitempty"`
	CapexPercentOfRent  *float64 `json:"capexPercentOfRent,omitempty"`
	CapexPercentOfValue *float64 `json:"capexPercentOfValue,omitempty"`

	UtilitiesMonthly   *float64 `json:"utilitiesMonthly,omitempty"`
	LandscapingMonthly *float64 `json:"landscapingMonthly,omitempty"`
	PestControlMonthly *float64 `json:"pestControlMonthly,omitempty"`

	LegalFeesAnnual          *float64 `json:"legalFeesAnnual,omitempty"`
	LandlordInsuranceAnnual  *float64 `json:"landlordInsuranceAnnual,omitempty"`
	SpecialAssessmentsAnnual *float64 `json:"specialAssessmentsAnnual,omitempty"`
	AdvertisingAnnual        *float64 `json:"advertisingAnnual,omitempty"`
	TurnoverCostPerYear      *float64 `json:"turnoverCostPerYear,omitempty"`
}

// Input is a mortgage request plus the rental assumptions for the property.
type Input struct {
	mortgage.FlexibleInput

	MonthlyRent float64   `json:"monthlyRent"`
	Expenses    *Expenses `json:"expenses"`
	Units       *int      `json:"units,omitempty"`

	ClosingCosts *float64 `json:"closingCosts,omitempty"`
	RehabCosts   *float64 `json:"rehabCosts,omitempty"`

	AppreciationRate  *float64 `json:"appreciationRate,omitempty"`
	RentGrowthRate    *float64 `json:"rentGrowthRate,omitempty"`
	ExpenseGrowthRate *float64 `json:"expenseGrowthRate,omitempty"`

	MarginalTaxRate     *float64 `json:"marginalTaxRate,omitempty"`
	CapitalGainsTaxRate *float64 `json:"capitalGainsTaxRate,omitempty"`
	DepreciationYears   *float64 `json:"depreciationYears,omitempty"`
	LandValue           *float64 `json:"landValue,omitempty"`

	HoldingPeriodYears *int     `json:"holdingPeriodYears,omitempty"`
	TargetCashFlow     *float64 `json:"targetCashFlow,omitempty"`
	TargetCapRate      *float64 `json:"targetCapRate,omitempty"`
}

// OperatingExpenses is the monthly expense breakdown. Vacancy is reported for
// reference; it reduces rent rather than adding to TotalMonthly.
type OperatingExpenses struct {
	Vacancy            float64 `json:"vacancy"`
	PropertyManagement float64 `json:"propertyManagement"`
	Maintenance        float64 `json:"maintenance"`
	Capex              float64 `json:"capex"`
	Utilities          float64 `json:"utilities"`
	Landscaping        float64 `json:"landscaping"`
	PestControl        float64 `json:"pestControl"`
	LegalFees          float64 `json:"legalFees"`
	LandlordInsurance  float64 `json:"landlordInsurance"`
	SpecialAssessments float64 `json:"specialAssessments"`
	Advertising        float64 `json:"advertising"`
	Turnover           float64 `json:"turnover"`
	PropertyTax        float64 `json:"propertyTax"`
	HomeInsurance      float64 `json:"homeInsurance"`
	TotalMonthly       float64 `json:"totalMonthly"`
}

// CashFlow summarizes monthly income after expenses and debt service.
type CashFlow struct {
	GrossRent          float64 `json:"grossRent"`
	EffectiveRent      float64 `json:"effectiveRent"`
	TotalExpenses      float64 `json:"totalExpenses"`
	NetOperatingIncome float64 `json:"netOperatingIncome"`
	DebtService        float64 `json:"debtService"`
	CashFlowMonthly    float64 `json:"cashFlowMonthly"`
	CashFlowAnnual     float64 `json:"cashFlowAnnual"`
}

// Metrics are the core return ratios.
type Metrics struct {
	CapRate               float64 `json:"capRate"`
	CashOnCashReturn      float64 `json:"cashOnCashReturn"`
	GrossRentMultiplier   float64 `json:"grossRentMultiplier"`
	DebtCoverageRatio     float64 `json:"debtCoverageRatio"`
	OperatingExpenseRatio float64 `json:"operatingExpenseRatio"`
	BreakEvenOccupancy    float64 `json:"breakEvenOccupancy"`
}

// EnhancedMetrics extends Metrics with return, tax and screening figures.
type EnhancedMetrics struct {
	Metrics

	TotalReturnOnInvestment float64 `json:"totalReturnOnInvestment"`
	AnnualizedReturn        float64 `json:"annualizedReturn"`
	RentToValueRatio        float64 `json:"rentToValueRatio"`
	ExpenseToIncomeRatio    float64 `json:"expenseToIncomeRatio"`
	OnePercentRule          bool    `json:"onePercentRule"`
	TwoPercentRule          bool    `json:"twoPercentRule"`
	FiftyPercentRule        float64 `json:"fiftyPercentRule"`
	CashFlowPerUnit         float64 `json:"cashFlowPerUnit"`
	CashFlowPerDoor         float64 `json:"cashFlowPerDoor"`
	LoanConstant            float64 `json:"loanConstant"`
	DebtYieldRatio          float64 `json:"debtYieldRatio"`
	BreakEvenRatio          float64 `json:"breakEvenRatio"`

	AnnualDepreciation      float64 `json:"annualDepreciation"`
	TaxShelterValue         float64 `json:"taxShelterValue"`
	AfterTaxCashFlow        float64 `json:"afterTaxCashFlow"`
	EquityBuildupYear1      float64 `json:"equityBuildupYear1"`
	AppreciationYear1       float64 `json:"appreciationYear1"`
	TotalEquityYear1        float64 `json:"totalEquityYear1"`
	ReturnOnEquity          float64 `json:"returnOnEquity"`
	VacancySensitivity      float64 `json:"vacancySensitivity"`
	InterestRateSensitivity float64 `json:"interestRateSensitivity"`
	MaintenanceReserveRatio float64 `json:"maintenanceReserveRatio"`

	InternalRateOfReturn *float64 `json:"internalRateOfReturn,omitempty"`
	EquityMultiple       *float64 `json:"equityMultiple,omitempty"`
}

// InvestmentSummary is the cash required and how quickly it comes back.
type InvestmentSummary struct {
	TotalCashNeeded    float64 `json:"totalCashNeeded"`
	AllInCost          float64 `json:"allInCost"`
	MonthlyGrossIncome float64 `json:"monthlyGrossIncome"`
	MonthlyNetIncome   float64 `json:"monthlyNetIncome"`
	AnnualNetIncome    float64 `json:"annualNetIncome"`
	TotalROI           float64 `json:"totalROI"`
	PaybackPeriod      float64 `json:"paybackPeriod"`
	PaysBack           bool    `json:"paysBack"`
}

// YearlyProjection is the state of the investment at the end of a year.
type YearlyProjection struct {
	Year               int     `json:"year"`
	MonthlyRent        float64 `json:"monthlyRent"`
	MonthlyExpenses    float64 `json:"monthlyExpenses"`
	AnnualCashFlow     float64 `json:"annualCashFlow"`
	PropertyValue      float64 `json:"propertyValue"`
	LoanBalance        float64 `json:"loanBalance"`
	Equity             float64 `json:"equity"`
	CumulativeCashFlow float64 `json:"cumulativeCashFlow"`
	TotalReturn        float64 `json:"totalReturn"`
}

// ExitAnalysis values a sale at the end of the holding period.
type ExitAnalysis struct {
	HoldingPeriodYears    int     `json:"holdingPeriodYears"`
	SalePrice             float64 `json:"salePrice"`
	SellingCosts          float64 `json:"sellingCosts"`
	LoanPayoff            float64 `json:"loanPayoff"`
	NetProceeds           float64 `json:"netProceeds"`
	CapitalGain           float64 `json:"capitalGain"`
	CapitalGainsTax       float64 `json:"capitalGainsTax"`
	AfterTaxNetProceeds   float64 `json:"afterTaxNetProceeds"`
	TotalCashFlow         float64 `json:"totalCashFlow"`
	TotalReturn           float64 `json:"totalReturn"`
	AnnualizedReturn      float64 `json:"annualizedReturn"`
	EquityMultiple        float64 `json:"equityMultiple"`
	InternalRateOfReturn  float64 `json:"internalRateOfReturn"`
	InternalRateConverged bool    `json:"internalRateConverged"`
}

// ProjectedReturns holds snapshots at years 1, 5 and 10, the per-year series
// through the holding period and the exit.
type ProjectedReturns struct {
	Year1        YearlyProjection   `json:"year1"`
	Year5        YearlyProjection   `json:"year5"`
	Year10       YearlyProjection   `json:"year10"`
	Years        []YearlyProjection `json:"years"`
	ExitAnalysis ExitAnalysis       `json:"exitAnalysis"`
}

// BreakEvenAnalysis describes the income needed to cover costs.
type BreakEvenAnalysis struct {
	BreakEvenOccupancyRate   float64 `json:"breakEvenOccupancyRate"`
	BreakEvenRent            float64 `json:"breakEvenRent"`
	MonthsToPositiveCashFlow int     `json:"monthsToPositiveCashFlow"`
	ReachesPositiveCashFlow  bool    `json:"reachesPositiveCashFlow"`
	CashFlowBreakEvenPoint   float64 `json:"cashFlowBreakEvenPoint"`
}

// SensitivityResult is the outcome of one perturbed recalculation.
type SensitivityResult struct {
	Change     float64 `json:"change"`
	CashFlow   float64 `json:"cashFlow"`
	CapRate    float64 `json:"capRate"`
	CashOnCash float64 `json:"cashOnCash"`
}

// SensitivityAnalysis holds one sweep per assumption.
type SensitivityAnalysis struct {
	VacancyImpact       []SensitivityResult `json:"vacancyImpact"`
	RentChangeImpact    []SensitivityResult `json:"rentChangeImpact"`
	InterestRateImpact  []SensitivityResult `json:"interestRateImpact"`
	ExpenseChangeImpact []SensitivityResult `json:"expenseChangeImpact"`
}

// TargetAnalysis compares the deal to the caller's targets.
type TargetAnalysis struct {
	TargetCashFlow        *float64 `json:"targetCashFlow,omitempty"`
	MeetsCashFlowTarget   *bool    `json:"meetsCashFlowTarget,omitempty"`
	RentForTargetCashFlow *float64 `json:"rentForTargetCashFlow,omitempty"`
	TargetCapRate         *float64 `json:"targetCapRate,omitempty"`
	MeetsCapRateTarget    *bool    `json:"meetsCapRateTarget,omitempty"`
	PriceForTargetCapRate *float64 `json:"priceForTargetCapRate,omitempty"`
}

// Result is the full rental analysis.
type Result struct {
	mortgage.Result

	MonthlyRent          float64           `json:"monthlyRent"`
	EffectiveMonthlyRent float64           `json:"effectiveMonthlyRent"`
	OperatingExpenses    OperatingExpenses `json:"operatingExpenses"`
	CashFlow             CashFlow          `json:"cashFlow"`
	Metrics              EnhancedMetrics   `json:"metrics"`

	InvestmentSummary   *InvestmentSummary   `json:"investmentSummary,omitempty"`
	ProjectedReturns    *ProjectedReturns    `json:"projectedReturns,omitempty"`
	BreakEvenAnalysis   *BreakEvenAnalysis   `json:"breakEvenAnalysis,omitempty"`
	SensitivityAnalysis *SensitivityAnalysis `json:"sensitivityAnalysis,omitempty"`
	TargetAnalysis      *TargetAnalysis      `json:"targetAnalysis,omitempty"`
}
