package strategy

import "github.com/stwalsh4118/propcalc/api/internal/finance"

// Exit strategies a hard money borrower can plan on.
const (
	ExitRefinance = "refinance"
	ExitSale      = "sale"
)

// IsExitStrategy reports whether s names a supported exit strategy.
func IsExitStrategy(s string) bool {
	return s == ExitRefinance || s == ExitSale
}

// HardMoneyInput describes a short-term asset-based loan.
type HardMoneyInput struct {
	LoanAmount   float64 `json:"loanAmount" binding:"required,gt=0"`
	InterestRate float64 `json:"interestRate" binding:"gte=0"`
	Points       float64 `json:"points" binding:"gte=0,lte=100"`
	TermMonths   int     `json:"termMonths" binding:"required,gt=0"`
	InterestOnly bool    `json:"interestOnly"`
	ExitStrategy string  `json:"exitStrategy,omitempty" binding:"omitempty,exit_strategy"`
}

// HardMoneyResult is the borrower's cost of the loan.
type HardMoneyResult struct {
	MonthlyPayment float64 `json:"monthlyPayment"`
	PointsCost     float64 `json:"pointsCost"`
	TotalInterest  float64 `json:"totalInterest"`
	TotalCost      float64 `json:"totalCost"`
	TotalPayments  float64 `json:"totalPayments"`
	EffectiveRate  float64 `json:"effectiveRate"`
	BalloonPayment float64 `json:"balloonPayment"`
	ExitStrategy   string  `json:"exitStrategy,omitempty"`
}

// HardMoney prices points plus interest. Interest-only loans repay the full
// principal as a balloon at maturity. EffectiveRate annualizes points and
// interest over the term.
func HardMoney(in HardMoneyInput) (*HardMoneyResult, error) {
	v := finance.NewViolations("")
	v.Positive("loanAmount", in.LoanAmount)
	v.NonNegative("interestRate", in.InterestRate)
	percentage(v, "points", in.Points)
	if in.TermMonths <= 0 {
		v.Addf("termMonths must be greater than 0")
	}
	if in.ExitStrategy != "" && !IsExitStrategy(in.ExitStrategy) {
		v.Addf("exitStrategy must be one of %s, %s", ExitRefinance, ExitSale)
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	months := float64(in.TermMonths)
	points := in.LoanAmount * in.Points / 100

	var payment, interest, balloon float64
	if in.InterestOnly {
		payment = in.LoanAmount * finance.MonthlyRate(in.InterestRate)
		interest = payment * months
		balloon = in.LoanAmount
	} else {
		payment = finance.MonthlyPayment(in.LoanAmount, in.InterestRate, in.TermMonths)
		interest = payment*months - in.LoanAmount
	}
	cost := points + interest

	return &HardMoneyResult{
		MonthlyPayment: finance.Round(payment),
		PointsCost:     finance.Round(points),
		TotalInterest:  finance.Round(interest),
		TotalCost:      finance.Round(cost),
		TotalPayments:  finance.Round(payment*months + balloon),
		EffectiveRate:  finance.Round(cost / in.LoanAmount / (months / 12) * 100),
		BalloonPayment: finance.Round(balloon),
		ExitStrategy:   in.ExitStrategy,
	}, nil
}

// PrivateLendingInput describes a note from the lender's side.
type PrivateLendingInput struct {
	LoanAmount          float64  `json:"loanAmount" binding:"required,gt=0"`
	InterestRate        float64  `json:"interestRate" binding:"gte=0"`
	TermMonths          int      `json:"termMonths" binding:"required,gt=0"`
	Points              float64  `json:"points" binding:"gte=0,lte=100"`
	ServicingFeeMonthly *float64 `json:"servicingFeeMonthly,omitempty" binding:"omitempty,gte=0"`
}

// PrivateLendingResult is the lender's income and yield.
type PrivateLendingResult struct {
	MonthlyIncome   float64 `json:"monthlyIncome"`
	TotalPoints     float64 `json:"totalPoints"`
	TotalInterest   float64 `json:"totalInterest"`
	TotalReturn     float64 `json:"totalReturn"`
	AnnualizedYield float64 `json:"annualizedYield"`
}

// PrivateLending computes interest-only income plus points and servicing
// fees. TotalReturn includes the returned principal.
func PrivateLending(in PrivateLendingInput) (*PrivateLendingResult, error) {
	v := finance.NewViolations("")
	v.Positive("loanAmount", in.LoanAmount)
	v.NonNegative("interestRate", in.InterestRate)
	if in.TermMonths <= 0 {
		v.Addf("termMonths must be greater than 0")
	}
	percentage(v, "points", in.Points)
	v.OptionalNonNegative("servicingFeeMonthly", in.ServicingFeeMonthly)
	if err := v.Err(); err != nil {
		return nil, err
	}

	months := float64(in.TermMonths)
	points := in.LoanAmount * in.Points / 100
	interest := in.LoanAmount * finance.MonthlyRate(in.InterestRate)
	income := interest + finance.ValueOr(in.ServicingFeeMonthly, 0)
	total := points + income*months + in.LoanAmount

	return &PrivateLendingResult{
		MonthlyIncome:   finance.Round(income),
		TotalPoints:     finance.Round(points),
		TotalInterest:   finance.Round(interest * months),
		TotalReturn:     finance.Round(total),
		AnnualizedYield: finance.Round((total - in.LoanAmount) / in.LoanAmount / (months / 12) * 100),
	}, nil
}
