package strategy

import (
	"math"

	"github.com/stwalsh4118/propcalc/api/internal/finance"
	"github.com/stwalsh4118/propcalc/api/internal/rental"
)

// BRRRRInput describes a buy, rehab, rent, refinance, repeat deal.
type BRRRRInput struct {
	PurchasePrice                float64         `json:"purchasePrice" binding:"required,gt=0"`
	RehabCosts                   float64         `json:"rehabCosts" binding:"gte=0"`
	ARV                          float64         `json:"arv" binding:"required,gt=0"`
	RefinanceLTV                 float64         `json:"refinanceLTV" binding:"gte=0,lte=100"`
	MonthlyRent                  float64         `json:"monthlyRent" binding:"required,gt=0"`
	HoldingMonthsBeforeRefinance int             `json:"holdingMonthsBeforeRefinance" binding:"gte=0"`
	ClosingCosts                 *float64        `json:"closingCosts,omitempty" binding:"omitempty,gte=0"`
	RefinanceClosingCosts        *float64        `json:"refinanceClosingCosts,omitempty" binding:"omitempty,gte=0"`
	Expenses                     rental.Expenses `json:"expenses"`
	InterestRateDuringRehab      *float64        `json:"interestRateDuringRehab,omitempty" binding:"omitempty,gte=0"`
	RefinanceInterestRate        float64         `json:"refinanceInterestRate" binding:"gte=0"`
	RefinanceLoanTermYears       int             `json:"refinanceLoanTermYears" binding:"required,gt=0"`
}

// BRRRRResult is the position after the refinance.
type BRRRRResult struct {
	TotalInvestment     float64 `json:"totalInvestment"`
	RehabCarryingCost   float64 `json:"rehabCarryingCost"`
	ARVEstimate         float64 `json:"arvEstimate"`
	RefinanceLoanAmount float64 `json:"refinanceLoanAmount"`
	RefinancePayment    float64 `json:"refinancePayment"`
	CashRecovered       float64 `json:"cashRecovered"`
	CashLeftIn          float64 `json:"cashLeftIn"`
	MonthlyRentIncome   float64 `json:"monthlyRentIncome"`
	MonthlyExpenses     float64 `json:"monthlyExpenses"`
	MonthlyCashFlow     float64 `json:"monthlyCashFlow"`
	InfiniteReturn      bool    `json:"infiniteReturn"`
	CashOnCashReturn    float64 `json:"cashOnCashReturn"`
	CapRate             float64 `json:"capRate"`
	Equity              float64 `json:"equity"`
}

// BRRRR refinances at ARV x LTV and measures the cash that stays in the deal.
// Interest accrues on the purchase price through the rehab when a rehab rate
// is given. When no cash is left in and the property cash flows, the return
// is reported as infinite and CashOnCashReturn is 0.
func BRRRR(in BRRRRInput) (*BRRRRResult, error) {
	v := finance.NewViolations("")
	v.Positive("purchasePrice", in.PurchasePrice)
	v.NonNegative("rehabCosts", in.RehabCosts)
	v.Positive("arv", in.ARV)
	percentage(v, "refinanceLTV", in.RefinanceLTV)
	v.Positive("monthlyRent", in.MonthlyRent)
	if in.HoldingMonthsBeforeRefinance < 0 {
		v.Addf("holdingMonthsBeforeRefinance cannot be negative")
	}
	v.OptionalNonNegative("closingCosts", in.ClosingCosts)
	v.OptionalNonNegative("refinanceClosingCosts", in.RefinanceClosingCosts)
	v.OptionalNonNegative("interestRateDuringRehab", in.InterestRateDuringRehab)
	v.NonNegative("refinanceInterestRate", in.RefinanceInterestRate)
	if in.RefinanceLoanTermYears <= 0 {
		v.Addf("refinanceLoanTermYears must be greater than 0")
	}
	checkExpenses(v, in.Expenses)
	if err := v.Err(); err != nil {
		return nil, err
	}

	carrying := in.PurchasePrice * finance.MonthlyRate(finance.ValueOr(in.InterestRateDuringRehab, 0)) *
		float64(in.HoldingMonthsBeforeRefinance)
	invested := in.PurchasePrice + in.RehabCosts + finance.ValueOr(in.ClosingCosts, 0) + carrying

	loan := in.ARV * in.RefinanceLTV / 100
	recovered := loan - invested - finance.ValueOr(in.RefinanceClosingCosts, 0)
	leftIn := math.Max(0, -recovered)
	payment := finance.MonthlyPayment(loan, in.RefinanceInterestRate, in.RefinanceLoanTermYears*12)

	items := rental.ResolveExpenses(in.Expenses, in.MonthlyRent, in.ARV)
	noi := in.MonthlyRent - items.Vacancy - items.Operating()
	cashFlow := noi - payment

	return &BRRRRResult{
		TotalInvestment:     finance.Round(invested),
		RehabCarryingCost:   finance.Round(carrying),
		ARVEstimate:         finance.Round(in.ARV),
		RefinanceLoanAmount: finance.Round(loan),
		RefinancePayment:    finance.Round(payment),
		CashRecovered:       finance.Round(recovered),
		CashLeftIn:          finance.Round(leftIn),
		MonthlyRentIncome:   finance.Round(in.MonthlyRent),
		MonthlyExpenses:     finance.Round(items.Operating()),
		MonthlyCashFlow:     finance.Round(cashFlow),
		InfiniteReturn:      leftIn == 0 && cashFlow > 0,
		CashOnCashReturn:    finance.Round(finance.Percent(cashFlow*12, leftIn)),
		CapRate:             finance.Round(finance.Percent(noi*12, in.ARV)),
		Equity:              finance.Round(in.ARV - loan),
	}, nil
}

func checkExpenses(v *finance.Violations, e rental.Expenses) {
	v.Merge(rental.ValidateExpenses(e))
}
