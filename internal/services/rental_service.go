package services

import (
	"context"
	"fmt"

	"github.com/stwalsh4118/propcalc/api/internal/logger"
	"github.com/stwalsh4118/propcalc/api/internal/rental"
	"github.com/stwalsh4118/propcalc/api/internal/strategy"
)

// RentalService runs buy-and-hold rental analyses.
type RentalService interface {
	// Analyze returns the full rental analysis of one property.
	Analyze(ctx context.Context, in rental.Input, withSchedule bool) (*rental.Result, error)

	// Compare analyzes each scenario and picks the best by headline metric.
	// Returns ErrTooManyScenarios past the configured maximum.
	Compare(ctx context.Context, in strategy.CompareInput) (*strategy.CompareResult, error)

	// HouseHacking analyzes an owner-occupied multi-unit purchase.
	HouseHacking(ctx context.Context, in strategy.HouseHackingInput) (*strategy.HouseHackingResult, error)
}

type rentalService struct {
	log          *logger.Logger
	maxScenarios int
}

// NewRentalService creates a RentalService that accepts at most maxScenarios
// scenarios per comparison.
func NewRentalService(log *logger.Logger, maxScenarios int) RentalService {
	return &rentalService{log: log, maxScenarios: maxScenarios}
}

func rentalSummary(r *rental.Result) map[string]interface{} {
	return map[string]interface{}{
		"monthly_rent":       r.MonthlyRent,
		"noi_monthly":        r.CashFlow.NetOperatingIncome,
		"cash_flow_monthly":  r.CashFlow.CashFlowMonthly,
		"cap_rate":           r.Metrics.CapRate,
		"cash_on_cash":       r.Metrics.CashOnCashReturn,
		"debt_coverage":      r.Metrics.DebtCoverageRatio,
		"total_monthly_debt": r.TotalMonthlyPayment,
	}
}

func (s *rentalService) Analyze(ctx context.Context, in rental.Input, withSchedule bool) (*rental.Result, error) {
	op := "rental.analyze"
	if withSchedule {
		op = "rental.schedule"
	}

	result, err := calculate(ctx, s.log, op, in,
		func(in rental.Input) (*rental.Result, error) {
			return rental.Analyze(in, withSchedule)
		},
		rentalSummary)
	if err == nil && result.ProjectedReturns != nil {
		s.log.Debug("Rental projection", map[string]interface{}{
			"holding_years": result.ProjectedReturns.ExitAnalysis.HoldingPeriodYears,
			"irr":           result.ProjectedReturns.ExitAnalysis.InternalRateOfReturn,
			"irr_converged": result.ProjectedReturns.ExitAnalysis.InternalRateConverged,
		})
	}
	return result, err
}

func (s *rentalService) Compare(ctx context.Context, in strategy.CompareInput) (*strategy.CompareResult, error) {
	if s.maxScenarios > 0 && len(in.Scenarios) > s.maxScenarios {
		s.log.Warn("Too many scenarios to compare", map[string]interface{}{
			"scenarios": len(in.Scenarios),
			"max":       s.maxScenarios,
		})
		return nil, fmt.Errorf("%w: got %d, max %d", ErrTooManyScenarios, len(in.Scenarios), s.maxScenarios)
	}

	return calculate(ctx, s.log, "rental.compare", in, strategy.Compare,
		func(r *strategy.CompareResult) map[string]interface{} {
			return map[string]interface{}{
				"scenarios":         len(r.Scenarios),
				"best_cash_flow":    r.Comparison.BestCashFlowScenario,
				"best_cap_rate":     r.Comparison.BestCapRateScenario,
				"best_cash_on_cash": r.Comparison.BestCashOnCashScenario,
				"best_total_roi":    r.Comparison.BestTotalROIScenario,
			}
		})
}

func (s *rentalService) HouseHacking(ctx context.Context, in strategy.HouseHackingInput) (*strategy.HouseHackingResult, error) {
	return calculate(ctx, s.log, "rental.house_hacking", in, strategy.HouseHacking,
		func(r *strategy.HouseHackingResult) map[string]interface{} {
			fields := rentalSummary(&r.Result)
			fields["owner_units"] = r.OwnerOccupiedUnits
			fields["total_units"] = r.TotalUnits
			fields["net_housing_cost"] = r.NetHousingCost
			return fields
		})
}
