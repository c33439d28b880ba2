// Package mortgage resolves flexible mortgage inputs into canonical terms and
// computes fixed-rate payments, PMI, escrow amounts and amortization schedules.
package mortgage

// Lending assumptions applied when the caller does not override them.
const (
	PMIAnnualRate              = 0.0075
	PMIDownPaymentThreshold    = 20.0
	PMILoanToValueThreshold    = 80.0
	DefaultPropertyTaxRate     = 1.2
	DefaultHomeInsuranceAnnual = 1200.0
	MonthsPerYear              = 12
)

// FlexibleInput is a mortgage request where the loan, down payment, property
// tax and insurance may each be given as an absolute amount or as a percent of
// the property price, but not both.
type FlexibleInput struct {
	PropertyPrice float64 `json:"propertyPrice"`

	LoanAmount        *float64 `json:"loanAmount,omitempty"`
	LoanAmountPercent *float64 `json:"loanAmountPercent,omitempty"`

	DownPayment        *float64 `json:"downPayment,omitempty"`
	DownPaymentPercent *float64 `json:"downPaymentPercent,omitempty"`

	AnnualInterestRate float64 `json:"annualInterestRate"`
	LoanTermYears      int     `json:"loanTermYears"`

	PropertyTaxAnnual  *float64 `json:"propertyTaxAnnual,omitempty"`
	PropertyTaxPercent *float64 `json:"propertyTaxPercent,omitempty"`

	HomeInsuranceAnnual  *float64 `json:"homeInsuranceAnnual,omitempty"`
	HomeInsurancePercent *float64 `json:"homeInsurancePercent,omitempty"`

	HOAMonthly       *float64 `json:"hoaMonthly,omitempty"`
	PMIMonthly       *float64 `json:"pmiMonthly,omitempty"`
	AutoCalculatePMI *bool    `json:"autoCalculatePMI,omitempty"`
}

// Basis says how an Amount is expressed.
type Basis int

const (
	// Unset means neither form was supplied.
	Unset Basis = iota
	// Absolute is a dollar amount.
	Absolute
	// PercentOfPrice is a percentage of the property price.
	PercentOfPrice
)

// Amount is one side of an absolute-or-percent pair.
type Amount struct {
	Basis Basis
	Value float64
}

// Fixed is an absolute dollar Amount.
func Fixed(v float64) Amount { return Amount{Basis: Absolute, Value: v} }

// PercentOf is an Amount expressed as a percent of the property price.
func PercentOf(pct float64) Amount { return Amount{Basis: PercentOfPrice, Value: pct} }

// Resolve converts the amount to dollars against price. Unset resolves to 0.
func (a Amount) Resolve(price float64) float64 {
	switch a.Basis {
	case Absolute:
		return a.Value
	case PercentOfPrice:
		return price * a.Value / 100
	default:
		return 0
	}
}

// amountOf picks the populated side of a pair. Callers validate exclusivity first.
func amountOf(abs, pct *float64) Amount {
	switch {
	case abs != nil:
		return Fixed(*abs)
	case pct != nil:
		return PercentOf(*pct)
	default:
		return Amount{}
	}
}

// Terms is the canonical mortgage input produced by Normalize.
type Terms struct {
	PropertyPrice       float64
	Loan                Amount
	DownPayment         Amount
	AnnualInterestRate  float64
	LoanTermYears       int
	PropertyTaxAnnual   float64
	HomeInsuranceAnnual float64
	HOAMonthly          float64
	PMIOverride         *float64
	AutoCalculatePMI    bool
}

// Payment is a monthly payment broken into its components.
type Payment struct {
	PrincipalAndInterest float64 `json:"principalAndInterest"`
	PropertyTax          float64 `json:"propertyTax"`
	HomeInsurance        float64 `json:"homeInsurance"`
	PMI                  float64 `json:"pmi"`
	HOA                  float64 `json:"hoa"`
	TotalMonthlyPayment  float64 `json:"totalMonthlyPayment"`
}

// Result is the outcome of a mortgage calculation.
type Result struct {
	Payment

	TotalPayment          float64 `json:"totalPayment"`
	TotalInterest         float64 `json:"totalInterest"`
	LoanAmount            float64 `json:"loanAmount"`
	DownPaymentAmount     float64 `json:"downPaymentAmount"`
	DownPaymentPercentage float64 `json:"downPaymentPercentage"`
	LoanToValue           float64 `json:"loanToValue"`

	AmortizationSchedule []AmortizationEntry `json:"amortizationSchedule,omitempty"`
}

// AmortizationEntry is one month of the schedule.
type AmortizationEntry struct {
	Month                int     `json:"month"`
	PrincipalAndInterest float64 `json:"principalAndInterest"`
	Principal            float64 `json:"principal"`
	Interest             float64 `json:"interest"`
	PropertyTax          float64 `json:"propertyTax"`
	HomeInsurance        float64 `json:"homeInsurance"`
	PMI                  float64 `json:"pmi"`
	HOA                  float64 `json:"hoa"`
	TotalPayment         float64 `json:"totalPayment"`
	RemainingBalance     float64 `json:"remainingBalance"`
	LoanToValue          float64 `json:"loanToValue"`
	TotalPrincipalPaid   float64 `json:"totalPrincipalPaid"`
	TotalInterestPaid    float64 `json:"totalInterestPaid"`
	PrincipalPaidPercent float64 `json:"principalPaidPercent"`
	InterestPaidPercent  float64 `json:"interestPaidPercent"`
}
