package mortgage

import (
	"math"

	"github.com/stwalsh4118/propcalc/api/internal/finance"
)

// Schedule materializes one entry per month of the loan term.
func (q Quote) Schedule() []AmortizationEntry {
	entries := make([]AmortizationEntry, 0, q.Months)
	a := finance.NewAmortizer(q.LoanAmount, q.AnnualInterestRate, q.PrincipalAndInterest, q.Months)

	var principalPaid, interestPaid float64
	for {
		step, ok := a.Next()
		if !ok {
			break
		}
		principalPaid += step.Principal
		interestPaid += step.Interest

		balance := math.Max(0, step.Balance)
		pmi := q.ScheduledPMI(balance)

		entries = append(entries, AmortizationEntry{
			Month:                step.Month,
			PrincipalAndInterest: finance.Round(q.PrincipalAndInterest),
			Principal:            finance.Round(step.Principal),
			Interest:             finance.Round(step.Interest),
			PropertyTax:          finance.Round(q.PropertyTax),
			HomeInsurance:        finance.Round(q.HomeInsurance),
			PMI:                  finance.Round(pmi),
			HOA:                  finance.Round(q.HOA),
			TotalPayment:         finance.Round(q.PrincipalAndInterest + q.PropertyTax + q.HomeInsurance + pmi + q.HOA),
			RemainingBalance:     math.Max(0, finance.Round(balance)),
			LoanToValue:          finance.Round(finance.Percent(balance, q.PropertyPrice)),
			TotalPrincipalPaid:   finance.Round(principalPaid),
			TotalInterestPaid:    finance.Round(interestPaid),
			PrincipalPaidPercent: finance.Round(finance.Percent(principalPaid, q.LoanAmount)),
			InterestPaidPercent:  finance.Round(finance.Percent(interestPaid, q.LoanAmount)),
		})
	}
	return entries
}
