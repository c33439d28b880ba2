// Package strategy implements the investment strategy calculators: offers,
// flips, BRRRR, wholesale, short-term rentals, commercial and value-add
// deals, syndications, lending, land development, house hacking and
// side-by-side rental comparisons. Every calculator is a pure function of its
// input.
package strategy

import "github.com/stwalsh4118/propcalc/api/internal/finance"

// DefaultProfitMargin is the share of ARV an investor is willing to pay
// including repairs, the classic 70% rule.
const DefaultProfitMargin = 70.0

// MAOInput describes a distressed purchase.
type MAOInput struct {
	AfterRepairValue float64  `json:"afterRepairValue" binding:"required,gt=0"`
	RepairCosts      float64  `json:"repairCosts" binding:"gte=0"`
	WholesaleFee     *float64 `json:"wholesaleFee,omitempty" binding:"omitempty,gte=0"`
	ProfitMargin     *float64 `json:"profitMargin,omitempty" binding:"omitempty,gt=0,lte=100"`
}

// MAOResult is the maximum allowable offer and the profit it leaves.
type MAOResult struct {
	MAO             float64 `json:"mao"`
	PotentialProfit float64 `json:"potentialProfit"`
	ROI             float64 `json:"roi"`
}

// percentage records a violation when a required percentage is outside 0-100.
func percentage(v *finance.Violations, name string, value float64) {
	v.Percentage(name, &value)
}

// MaximumAllowableOffer computes ARV x margin - repairs - fee.
func MaximumAllowableOffer(in MAOInput) (*MAOResult, error) {
	v := finance.NewViolations("")
	v.Positive("afterRepairValue", in.AfterRepairValue)
	v.NonNegative("repairCosts", in.RepairCosts)
	v.OptionalNonNegative("wholesaleFee", in.WholesaleFee)
	if in.ProfitMargin != nil && (*in.ProfitMargin <= 0 || *in.ProfitMargin > 100) {
		v.Addf("profitMargin must be greater than 0 and at most 100")
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	fee := finance.ValueOr(in.WholesaleFee, 0)
	margin := finance.ValueOr(in.ProfitMargin, DefaultProfitMargin)

	mao := in.AfterRepairValue*margin/100 - in.RepairCosts - fee
	invested := mao + in.RepairCosts + fee
	profit := in.AfterRepairValue - invested

	return &MAOResult{
		MAO:             finance.Round(mao),
		PotentialProfit: finance.Round(profit),
		ROI:             finance.Round(finance.Percent(profit, invested)),
	}, nil
}
