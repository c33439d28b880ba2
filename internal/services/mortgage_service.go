package services

import (
	"context"

	"github.com/stwalsh4118/propcalc/api/internal/logger"
	"github.com/stwalsh4118/propcalc/api/internal/mortgage"
)

// MortgageService runs payment and affordability calculations.
type MortgageService interface {
	// Calculate returns the monthly payment breakdown, with the full
	// amortization schedule when withSchedule is set.
	Calculate(ctx context.Context, in mortgage.FlexibleInput, withSchedule bool) (*mortgage.Result, error)

	// Affordability returns the most expensive property a payment budget supports.
	Affordability(ctx context.Context, in mortgage.AffordabilityInput) (*mortgage.AffordabilityResult, error)
}

type mortgageService struct {
	log *logger.Logger
}

// NewMortgageService creates a MortgageService.
func NewMortgageService(log *logger.Logger) MortgageService {
	return &mortgageService{log: log}
}

func (s *mortgageService) Calculate(ctx context.Context, in mortgage.FlexibleInput, withSchedule bool) (*mortgage.Result, error) {
	op := "mortgage.calculate"
	if withSchedule {
		op = "mortgage.schedule"
	}

	return calculate(ctx, s.log, op, in,
		func(in mortgage.FlexibleInput) (*mortgage.Result, error) {
			return mortgage.Calculate(in, withSchedule)
		},
		func(r *mortgage.Result) map[string]interface{} {
			return map[string]interface{}{
				"property_price":  in.PropertyPrice,
				"loan_amount":     r.LoanAmount,
				"monthly_payment": r.TotalMonthlyPayment,
				"pmi":             r.PMI,
				"schedule_months": len(r.AmortizationSchedule),
			}
		})
}

func (s *mortgageService) Affordability(ctx context.Context, in mortgage.AffordabilityInput) (*mortgage.AffordabilityResult, error) {
	return calculate(ctx, s.log, "mortgage.affordability", in, mortgage.Affordability,
		func(r *mortgage.AffordabilityResult) map[string]interface{} {
			return map[string]interface{}{
				"max_monthly_payment": in.MaxMonthlyPayment,
				"qualifying_payment":  r.QualifyingPayment,
				"max_property_price":  r.MaxPropertyPrice,
			}
		})
}
