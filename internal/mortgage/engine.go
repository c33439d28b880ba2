package mortgage

import (
	"math"

	"github.com/stwalsh4118/propcalc/api/internal/finance"
)

// Quote holds the unrounded monthly figures for a set of Terms. Downstream
// calculators work from a Quote so rounding happens only once, on return.
type Quote struct {
	Terms

	LoanAmount         float64
	DownPayment        float64
	DownPaymentPercent float64
	LoanToValue        float64
	Months             int

	PrincipalAndInterest float64
	PropertyTax          float64
	HomeInsurance        float64
	PMI                  float64
	HOA                  float64
}

// NewQuote prices the Terms. When the loan is unset it is derived from the
// price less the down payment, and vice versa.
func NewQuote(t Terms) Quote {
	price := t.PropertyPrice
	loan := t.Loan.Resolve(price)
	down := t.DownPayment.Resolve(price)

	switch {
	case t.Loan.Basis == Unset:
		loan = price - down
	case t.DownPayment.Basis == Unset:
		down = price - loan
	}
	loan = math.Max(0, loan)
	down = math.Max(0, down)

	q := Quote{
		Terms:              t,
		LoanAmount:         loan,
		DownPayment:        down,
		DownPaymentPercent: finance.Percent(down, price),
		LoanToValue:        finance.Percent(loan, price),
		Months:             t.LoanTermYears * MonthsPerYear,
		PropertyTax:        t.PropertyTaxAnnual / MonthsPerYear,
		HomeInsurance:      t.HomeInsuranceAnnual / MonthsPerYear,
		HOA:                t.HOAMonthly,
	}
	q.PrincipalAndInterest = finance.MonthlyPayment(loan, t.AnnualInterestRate, q.Months)

	switch {
	case t.PMIOverride != nil:
		q.PMI = *t.PMIOverride
	case t.AutoCalculatePMI && PMIRequired(q.DownPaymentPercent):
		q.PMI = BasePMI(loan)
	}

	return q
}

// PMIRequired reports whether a down payment percentage triggers PMI.
func PMIRequired(downPaymentPercent float64) bool {
	return downPaymentPercent > 0 && downPaymentPercent < PMIDownPaymentThreshold
}

// BasePMI is the monthly PMI premium on loan.
func BasePMI(loan float64) float64 {
	return loan * PMIAnnualRate / MonthsPerYear
}

// MonthlyTotal is P&I plus tax, insurance, PMI and HOA.
func (q Quote) MonthlyTotal() float64 {
	return q.PrincipalAndInterest + q.PropertyTax + q.HomeInsurance + q.PMI + q.HOA
}

// DebtService is the monthly financing cost: P&I, PMI and HOA.
func (q Quote) DebtService() float64 {
	return q.PrincipalAndInterest + q.PMI + q.HOA
}

// ScheduledPMI is the PMI charged in a month that ends at balance. PMI lapses
// once the balance falls to 80% of the original loan, and is never charged when
// the original down payment was at least 20%.
func (q Quote) ScheduledPMI(balance float64) float64 {
	if q.DownPaymentPercent >= PMIDownPaymentThreshold {
		return 0
	}
	if finance.Percent(balance, q.LoanAmount) <= PMILoanToValueThreshold {
		return 0
	}
	return q.PMI
}

// ProjectedPMI is the PMI carried in a projection year that starts at
// balance. A caller-supplied PMI is kept for the whole loan; computed PMI
// follows the ScheduledPMI lapse rule.
func (q Quote) ProjectedPMI(balance float64) float64 {
	if q.PMIOverride != nil {
		return q.PMI
	}
	return q.ScheduledPMI(balance)
}

// BalanceAfter is the loan balance after months payments.
func (q Quote) BalanceAfter(months int) float64 {
	return finance.BalanceAfter(q.LoanAmount, q.AnnualInterestRate, q.Months, months)
}

// Result rounds the quote for return.
func (q Quote) Result() Result {
	totalPayment := q.PrincipalAndInterest * float64(q.Months)
	return Result{
		Payment:               q.payment(),
		TotalPayment:          finance.Round(totalPayment),
		TotalInterest:         finance.Round(totalPayment - q.LoanAmount),
		LoanAmount:            finance.Round(q.LoanAmount),
		DownPaymentAmount:     finance.Round(q.DownPayment),
		DownPaymentPercentage: finance.Round(q.DownPaymentPercent),
		LoanToValue:           finance.Round(q.LoanToValue),
	}
}

func (q Quote) payment() Payment {
	return roundPayment(Payment{
		PrincipalAndInterest: q.PrincipalAndInterest,
		PropertyTax:          q.PropertyTax,
		HomeInsurance:        q.HomeInsurance,
		PMI:                  q.PMI,
		HOA:                  q.HOA,
		TotalMonthlyPayment:  q.MonthlyTotal(),
	})
}

// Calculate validates in, prices it and optionally attaches the full schedule.
func Calculate(in FlexibleInput, withSchedule bool) (*Result, error) {
	terms, err := Normalize(in)
	if err != nil {
		return nil, err
	}

	q := NewQuote(terms)
	result := q.Result()
	if withSchedule {
		result.AmortizationSchedule = q.Schedule()
	}
	return &result, nil
}
