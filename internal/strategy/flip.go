package strategy

import "github.com/stwalsh4118/propcalc/api/internal/finance"

// FixAndFlipInput describes a buy, renovate and resell project.
type FixAndFlipInput struct {
	PurchasePrice  float64  `json:"purchasePrice" binding:"required,gt=0"`
	RehabCosts     float64  `json:"rehabCosts" binding:"gte=0"`
	HoldingCosts   float64  `json:"holdingCosts" binding:"gte=0"`
	HoldingMonths  int      `json:"holdingMonths" binding:"required,gt=0"`
	ARV            float64  `json:"arv" binding:"required,gt=0"`
	SellingCosts   *float64 `json:"sellingCosts,omitempty" binding:"omitempty,gte=0"`
	ClosingCosts   *float64 `json:"closingCosts,omitempty" binding:"omitempty,gte=0"`
	FinancingCosts *float64 `json:"financingCosts,omitempty" binding:"omitempty,gte=0"`
}

// FixAndFlipResult is the projected outcome of a flip.
type FixAndFlipResult struct {
	TotalInvestment         float64 `json:"totalInvestment"`
	ProjectedProfit         float64 `json:"projectedProfit"`
	ROI                     float64 `json:"roi"`
	AnnualizedReturn        float64 `json:"annualizedReturn"`
	ProfitMargin            float64 `json:"profitMargin"`
	BreakEvenARV            float64 `json:"breakEvenARV"`
	BreakEvenSellingCosts   float64 `json:"breakEvenSellingCosts"`
	MeetsSeventyPercentRule bool    `json:"meetsSeventyPercentRule"`
}

// FixAndFlip totals the project costs against the ARV. BreakEvenSellingCosts
// is the most that could be spent selling before the profit reaches zero.
func FixAndFlip(in FixAndFlipInput) (*FixAndFlipResult, error) {
	v := finance.NewViolations("")
	v.Positive("purchasePrice", in.PurchasePrice)
	v.NonNegative("rehabCosts", in.RehabCosts)
	v.NonNegative("holdingCosts", in.HoldingCosts)
	if in.HoldingMonths <= 0 {
		v.Addf("holdingMonths must be greater than 0")
	}
	v.Positive("arv", in.ARV)
	v.OptionalNonNegative("sellingCosts", in.SellingCosts)
	v.OptionalNonNegative("closingCosts", in.ClosingCosts)
	v.OptionalNonNegative("financingCosts", in.FinancingCosts)
	if err := v.Err(); err != nil {
		return nil, err
	}

	beforeSale := in.PurchasePrice + in.RehabCosts + in.HoldingCosts +
		finance.ValueOr(in.ClosingCosts, 0) + finance.ValueOr(in.FinancingCosts, 0)
	total := beforeSale + finance.ValueOr(in.SellingCosts, 0)
	profit := in.ARV - total
	roi := finance.Percent(profit, total)

	return &FixAndFlipResult{
		TotalInvestment:         finance.Round(total),
		ProjectedProfit:         finance.Round(profit),
		ROI:                     finance.Round(roi),
		AnnualizedReturn:        finance.Round(roi / float64(in.HoldingMonths) * 12),
		ProfitMargin:            finance.Round(finance.Percent(profit, in.ARV)),
		BreakEvenARV:            finance.Round(total),
		BreakEvenSellingCosts:   finance.Round(in.ARV - beforeSale),
		MeetsSeventyPercentRule: in.PurchasePrice+in.RehabCosts <= in.ARV*DefaultProfitMargin/100,
	}, nil
}
