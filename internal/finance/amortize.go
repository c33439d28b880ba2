package finance

import "math"

// MonthlyRate converts an annual percentage rate to a monthly decimal rate.
func MonthlyRate(annualRatePct float64) float64 {
	return annualRatePct / 100 / 12
}

// MonthlyPayment returns the fixed principal-and-interest payment that retires
// principal over months payments at annualRatePct. A zero rate spreads the
// principal evenly.
func MonthlyPayment(principal, annualRatePct float64, months int) float64 {
	if principal <= 0 || months <= 0 {
		return 0
	}
	r := MonthlyRate(annualRatePct)
	if r == 0 {
		return principal / float64(months)
	}
	growth := math.Pow(1+r, float64(months))
	return principal * r * growth / (growth - 1)
}

// Step is one month of the amortization recurrence, unrounded.
type Step struct {
	Month     int
	Interest  float64
	Principal float64
	Balance   float64
}

// Amortizer replays the amortization recurrence month by month.
type Amortizer struct {
	rate    float64
	payment float64
	balance float64
	month   int
	term    int
}

// NewAmortizer starts a recurrence at principal with the given payment.
func NewAmortizer(principal, annualRatePct, payment float64, termMonths int) *Amortizer {
	return &Amortizer{
		rate:    MonthlyRate(annualRatePct),
		payment: payment,
		balance: math.Max(0, principal),
		term:    termMonths,
	}
}

// Next advances one month. It reports false once the term is exhausted.
func (a *Amortizer) Next() (Step, bool) {
	if a.month >= a.term {
		return Step{}, false
	}
	a.month++
	interest := a.balance * a.rate
	principal := a.payment - interest
	a.balance -= principal
	return Step{
		Month:     a.month,
		Interest:  interest,
		Principal: principal,
		Balance:   a.balance,
	}, true
}

// Balance is the unrounded balance after the last step.
func (a *Amortizer) Balance() float64 {
	return a.balance
}

// BalanceAfter returns the remaining balance after months payments, never below
// zero. months is capped at the loan term.
func BalanceAfter(principal, annualRatePct float64, termMonths, months int) float64 {
	payment := MonthlyPayment(principal, annualRatePct, termMonths)
	a := NewAmortizer(principal, annualRatePct, payment, termMonths)
	for i := 0; i < months; i++ {
		if _, ok := a.Next(); !ok {
			break
		}
	}
	return math.Max(0, a.Balance())
}

// PrincipalPaid sums the principal portions of the first months payments.
func PrincipalPaid(principal, annualRatePct float64, termMonths, months int) float64 {
	payment := MonthlyPayment(principal, annualRatePct, termMonths)
	a := NewAmortizer(principal, annualRatePct, payment, termMonths)
	total := 0.0
	for i := 0; i < months; i++ {
		step, ok := a.Next()
		if !ok {
			break
		}
		total += step.Principal
	}
	return total
}
