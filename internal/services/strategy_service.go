package services

import (
	"context"

	"github.com/stwalsh4118/propcalc/api/internal/logger"
	"github.com/stwalsh4118/propcalc/api/internal/strategy"
)

// StrategyService runs the investment-strategy analyses.
type StrategyService interface {
	MaximumAllowableOffer(ctx context.Context, in strategy.MAOInput) (*strategy.MAOResult, error)
	FixAndFlip(ctx context.Context, in strategy.FixAndFlipInput) (*strategy.FixAndFlipResult, error)
	BRRRR(ctx context.Context, in strategy.BRRRRInput) (*strategy.BRRRRResult, error)
	Wholesale(ctx context.Context, in strategy.WholesaleInput) (*strategy.WholesaleResult, error)
	Airbnb(ctx context.Context, in strategy.AirbnbInput) (*strategy.ShortTermRentalResult, error)
	CommercialNOI(ctx context.Context, in strategy.CommercialNOIInput) (*strategy.CommercialNOIResult, error)
	ValueAdd(ctx context.Context, in strategy.ValueAddInput) (*strategy.ValueAddResult, error)
	Syndication(ctx context.Context, in strategy.SyndicationInput) (*strategy.SyndicationResult, error)
	HardMoney(ctx context.Context, in strategy.HardMoneyInput) (*strategy.HardMoneyResult, error)
	PrivateLending(ctx context.Context, in strategy.PrivateLendingInput) (*strategy.PrivateLendingResult, error)
	LandDevelopment(ctx context.Context, in strategy.LandDevelopmentInput) (*strategy.LandDevelopmentResult, error)
}

type strategyService struct {
	log *logger.Logger
}

// NewStrategyService creates a StrategyService.
func NewStrategyService(log *logger.Logger) StrategyService {
	return &strategyService{log: log}
}

func (s *strategyService) MaximumAllowableOffer(ctx context.Context, in strategy.MAOInput) (*strategy.MAOResult, error) {
	return calculate(ctx, s.log, "strategy.mao", in, strategy.MaximumAllowableOffer,
		func(r *strategy.MAOResult) map[string]interface{} {
			return map[string]interface{}{"arv": in.AfterRepairValue, "mao": r.MAO}
		})
}

func (s *strategyService) FixAndFlip(ctx context.Context, in strategy.FixAndFlipInput) (*strategy.FixAndFlipResult, error) {
	return calculate(ctx, s.log, "strategy.fix_and_flip", in, strategy.FixAndFlip,
		func(r *strategy.FixAndFlipResult) map[string]interface{} {
			return map[string]interface{}{
				"purchase_price":   in.PurchasePrice,
				"projected_profit": r.ProjectedProfit,
				"roi":              r.ROI,
				"seventy_percent":  r.MeetsSeventyPercentRule,
			}
		})
}

func (s *strategyService) BRRRR(ctx context.Context, in strategy.BRRRRInput) (*strategy.BRRRRResult, error) {
	return calculate(ctx, s.log, "strategy.brrrr", in, strategy.BRRRR,
		func(r *strategy.BRRRRResult) map[string]interface{} {
			return map[string]interface{}{
				"cash_left_in":      r.CashLeftIn,
				"cash_flow_monthly": r.MonthlyCashFlow,
				"infinite_return":   r.InfiniteReturn,
			}
		})
}

func (s *strategyService) Wholesale(ctx context.Context, in strategy.WholesaleInput) (*strategy.WholesaleResult, error) {
	return calculate(ctx, s.log, "strategy.wholesale", in, strategy.Wholesale,
		func(r *strategy.WholesaleResult) map[string]interface{} {
			return map[string]interface{}{"net_profit": r.NetProfit, "end_buyer_price": r.EndBuyerPrice}
		})
}

func (s *strategyService) Airbnb(ctx context.Context, in strategy.AirbnbInput) (*strategy.ShortTermRentalResult, error) {
	return calculate(ctx, s.log, "strategy.airbnb", in, strategy.Airbnb,
		func(r *strategy.ShortTermRentalResult) map[string]interface{} {
			return map[string]interface{}{"net_monthly_income": r.NetMonthlyIncome, "cap_rate": r.CapRate}
		})
}

func (s *strategyService) CommercialNOI(ctx context.Context, in strategy.CommercialNOIInput) (*strategy.CommercialNOIResult, error) {
	return calculate(ctx, s.log, "strategy.commercial_noi", in, strategy.CommercialNOI,
		func(r *strategy.CommercialNOIResult) map[string]interface{} {
			return map[string]interface{}{"noi": r.NOI, "expense_ratio": r.ExpenseRatio}
		})
}

func (s *strategyService) ValueAdd(ctx context.Context, in strategy.ValueAddInput) (*strategy.ValueAddResult, error) {
	return calculate(ctx, s.log, "strategy.value_add", in, strategy.ValueAdd,
		func(r *strategy.ValueAddResult) map[string]interface{} {
			return map[string]interface{}{"value_created": r.ValueCreated, "roi": r.ROI}
		})
}

func (s *strategyService) Syndication(ctx context.Context, in strategy.SyndicationInput) (*strategy.SyndicationResult, error) {
	return calculate(ctx, s.log, "strategy.syndication", in, strategy.Syndication,
		func(r *strategy.SyndicationResult) map[string]interface{} {
			return map[string]interface{}{"lp_multiple": r.LPMultiple, "gp_multiple": r.GPMultiple}
		})
}

func (s *strategyService) HardMoney(ctx context.Context, in strategy.HardMoneyInput) (*strategy.HardMoneyResult, error) {
	return calculate(ctx, s.log, "strategy.hard_money", in, strategy.HardMoney,
		func(r *strategy.HardMoneyResult) map[string]interface{} {
			return map[string]interface{}{"total_cost": r.TotalCost, "effective_rate": r.EffectiveRate}
		})
}

func (s *strategyService) PrivateLending(ctx context.Context, in strategy.PrivateLendingInput) (*strategy.PrivateLendingResult, error) {
	return calculate(ctx, s.log, "strategy.private_lending", in, strategy.PrivateLending,
		func(r *strategy.PrivateLendingResult) map[string]interface{} {
			return map[string]interface{}{"total_return": r.TotalReturn, "annualized_yield": r.AnnualizedYield}
		})
}

func (s *strategyService) LandDevelopment(ctx context.Context, in strategy.LandDevelopmentInput) (*strategy.LandDevelopmentResult, error) {
	return calculate(ctx, s.log, "strategy.land_development", in, strategy.LandDevelopment,
		func(r *strategy.LandDevelopmentResult) map[string]interface{} {
			return map[string]interface{}{"net_profit": r.NetProfit, "profit_per_lot": r.ProfitPerLot}
		})
}
