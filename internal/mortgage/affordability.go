package mortgage

import (
	"math"

	"github.com/stwalsh4118/propcalc/api/internal/finance"
)

// Affordability defaults.
const (
	DefaultFrontEndDTI         = 28.0
	DefaultBackEndDTI          = 36.0
	DefaultClosingCostsPercent = 3.0
)

// AffordabilityInput describes a buyer's payment budget. Percentages, including
// the debt-to-income targets, are expressed on a 0-100 scale.
type AffordabilityInput struct {
	MaxMonthlyPayment     float64  `json:"maxMonthlyPayment"`
	AnnualInterestRate    float64  `json:"annualInterestRate"`
	LoanTermYears         int      `json:"loanTermYears"`
	DownPaymentPercentage float64  `json:"downPaymentPercentage"`
	PropertyTaxRate       *float64 `json:"propertyTaxRate,omitempty"`
	HomeInsuranceAnnual   *float64 `json:"homeInsuranceAnnual,omitempty"`
	HOAMonthly            float64  `json:"hoaMonthly"`
	PMIAssume             *bool    `json:"pmiAssume,omitempty"`

	GrossMonthlyIncome           *float64 `json:"grossMonthlyIncome,omitempty"`
	TargetFrontEndDTI            *float64 `json:"targetFrontEndDTI,omitempty"`
	TargetBackEndDTI             *float64 `json:"targetBackEndDTI,omitempty"`
	OtherMonthlyDebts            float64  `json:"otherMonthlyDebts"`
	EstimatedClosingCostsPercent *float64 `json:"estimatedClosingCostsPercent,omitempty"`
}

// AffordabilityResult is the most expensive property the budget supports.
type AffordabilityResult struct {
	MaxPropertyPrice        float64 `json:"maxPropertyPrice"`
	MaxLoanAmount           float64 `json:"maxLoanAmount"`
	DownPayment             float64 `json:"downPayment"`
	EstimatedMonthlyPayment float64 `json:"estimatedMonthlyPayment"`
	QualifyingPayment       float64 `json:"qualifyingPayment"`
	EstimatedClosingCosts   float64 `json:"estimatedClosingCosts"`
	EstimatedCashToClose    float64 `json:"estimatedCashToClose"`
	Breakdown               Payment `json:"breakdown"`

	ImpliedFrontEndDTI *float64 `json:"impliedFrontEndDTI,omitempty"`
	ImpliedBackEndDTI  *float64 `json:"impliedBackEndDTI,omitempty"`
}

// ValidateAffordability reports every problem with in at once.
func ValidateAffordability(in AffordabilityInput) error {
	v := finance.NewViolations("")
	v.Positive("maxMonthlyPayment", in.MaxMonthlyPayment)
	v.NonNegative("annualInterestRate", in.AnnualInterestRate)
	if in.LoanTermYears <= 0 {
		v.Addf("loanTermYears must be greater than 0")
	}
	if in.DownPaymentPercentage < 0 || in.DownPaymentPercentage > 100 {
		v.Addf("downPaymentPercentage must be between 0 and 100")
	}
	v.OptionalNonNegative("propertyTaxRate", in.PropertyTaxRate)
	v.OptionalNonNegative("homeInsuranceAnnual", in.HomeInsuranceAnnual)
	v.NonNegative("hoaMonthly", in.HOAMonthly)
	v.OptionalNonNegative("grossMonthlyIncome", in.GrossMonthlyIncome)
	v.Percentage("targetFrontEndDTI", in.TargetFrontEndDTI)
	v.Percentage("targetBackEndDTI", in.TargetBackEndDTI)
	v.NonNegative("otherMonthlyDebts", in.OtherMonthlyDebts)
	v.Percentage("estimatedClosingCostsPercent", in.EstimatedClosingCostsPercent)
	return v.Err()
}

// Affordability inverts the payment formula. The qualifying payment is the
// stated maximum, tightened by the front-end and back-end DTI limits when a
// gross income is supplied. Tax is a percent of price, so the price solves
//
//	available = price * (tax/12 + (1-dp) * (paymentPerDollar + pmiRate))
//
// where available is the qualifying payment less insurance and HOA.
func Affordability(in AffordabilityInput) (*AffordabilityResult, error) {
	if err := ValidateAffordability(in); err != nil {
		return nil, err
	}

	taxRate := finance.ValueOr(in.PropertyTaxRate, DefaultPropertyTaxRate)
	insuranceAnnual := finance.ValueOr(in.HomeInsuranceAnnual, DefaultHomeInsuranceAnnual)
	closingPct := finance.ValueOr(in.EstimatedClosingCostsPercent, DefaultClosingCostsPercent)
	assumePMI := in.PMIAssume == nil || *in.PMIAssume

	budget := in.MaxMonthlyPayment
	income := finance.ValueOr(in.GrossMonthlyIncome, 0)
	if income > 0 {
		front := income * finance.ValueOr(in.TargetFrontEndDTI, DefaultFrontEndDTI) / 100
		back := income*finance.ValueOr(in.TargetBackEndDTI, DefaultBackEndDTI)/100 - in.OtherMonthlyDebts
		budget = math.Min(budget, math.Min(front, back))
	}

	months := in.LoanTermYears * MonthsPerYear
	dp := in.DownPaymentPercentage / 100
	pmiRate := 0.0
	if assumePMI && PMIRequired(in.DownPaymentPercentage) {
		pmiRate = PMIAnnualRate / MonthsPerYear
	}

	available := budget - insuranceAnnual/MonthsPerYear - in.HOAMonthly
	factor := taxRate/100/MonthsPerYear + (1-dp)*(finance.MonthlyPayment(1, in.AnnualInterestRate, months)+pmiRate)

	price := 0.0
	if available > 0 {
		price = finance.Ratio(available, factor)
	}
	down := price * dp
	loan := price - down

	payment := Payment{
		PrincipalAndInterest: finance.MonthlyPayment(loan, in.AnnualInterestRate, months),
		PropertyTax:          price * taxRate / 100 / MonthsPerYear,
		HomeInsurance:        insuranceAnnual / MonthsPerYear,
		PMI:                  loan * pmiRate,
		HOA:                  in.HOAMonthly,
	}
	payment.TotalMonthlyPayment = payment.PrincipalAndInterest + payment.PropertyTax +
		payment.HomeInsurance + payment.PMI + payment.HOA
	closing := price * closingPct / 100

	result := &AffordabilityResult{
		MaxPropertyPrice:        finance.Round(price),
		MaxLoanAmount:           finance.Round(loan),
		DownPayment:             finance.Round(down),
		EstimatedMonthlyPayment: finance.Round(payment.TotalMonthlyPayment),
		QualifyingPayment:       finance.Round(budget),
		EstimatedClosingCosts:   finance.Round(closing),
		EstimatedCashToClose:    finance.Round(down + closing),
		Breakdown:               roundPayment(payment),
	}

	if income > 0 {
		frontDTI := finance.Round(finance.Percent(payment.TotalMonthlyPayment, income))
		backDTI := finance.Round(finance.Percent(payment.TotalMonthlyPayment+in.OtherMonthlyDebts, income))
		result.ImpliedFrontEndDTI = &frontDTI
		result.ImpliedBackEndDTI = &backDTI
	}

	return result, nil
}

func roundPayment(p Payment) Payment {
	return Payment{
		PrincipalAndInterest: finance.Round(p.PrincipalAndInterest),
		PropertyTax:          finance.Round(p.PropertyTax),
		HomeInsurance:        finance.Round(p.HomeInsurance),
		PMI:                  finance.Round(p.PMI),
		HOA:                  finance.Round(p.HOA),
		TotalMonthlyPayment:  finance.Round(p.TotalMonthlyPayment),
	}
}
