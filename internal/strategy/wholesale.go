package strategy

import "github.com/stwalsh4118/propcalc/api/internal/finance"

// WholesaleInput describes assigning a purchase contract to an end buyer.
// ARV and RepairEstimate are optional and only feed the buyer-side check.
type WholesaleInput struct {
	ContractPrice  float64  `json:"contractPrice" binding:"required,gt=0"`
	AssignmentFee  float64  `json:"assignmentFee" binding:"gte=0"`
	MarketingCosts *float64 `json:"marketingCosts,omitempty" binding:"omitempty,gte=0"`
	OtherCosts     *float64 `json:"otherCosts,omitempty" binding:"omitempty,gte=0"`
	ARV            *float64 `json:"arv,omitempty" binding:"omitempty,gt=0"`
	RepairEstimate *float64 `json:"repairEstimate,omitempty" binding:"omitempty,gte=0"`
}

// WholesaleResult is the wholesaler's profit and the price the end buyer pays.
type WholesaleResult struct {
	GrossProfit           float64  `json:"grossProfit"`
	TotalCosts            float64  `json:"totalCosts"`
	NetProfit             float64  `json:"netProfit"`
	ROI                   float64  `json:"roi"`
	EndBuyerPrice         float64  `json:"endBuyerPrice"`
	BuyerMaxPurchasePrice *float64 `json:"buyerMaxPurchasePrice,omitempty"`
	WorksForBuyer         *bool    `json:"worksForBuyer,omitempty"`
}

// Wholesale nets the assignment fee against marketing and other costs. When
// an ARV is given, the end buyer's price is checked against the 70% rule.
func Wholesale(in WholesaleInput) (*WholesaleResult, error) {
	v := finance.NewViolations("")
	v.Positive("contractPrice", in.ContractPrice)
	v.NonNegative("assignmentFee", in.AssignmentFee)
	v.OptionalNonNegative("marketingCosts", in.MarketingCosts)
	v.OptionalNonNegative("otherCosts", in.OtherCosts)
	if in.ARV != nil && *in.ARV <= 0 {
		v.Addf("arv must be greater than 0")
	}
	v.OptionalNonNegative("repairEstimate", in.RepairEstimate)
	if err := v.Err(); err != nil {
		return nil, err
	}

	costs := finance.ValueOr(in.MarketingCosts, 0) + finance.ValueOr(in.OtherCosts, 0)
	profit := in.AssignmentFee - costs
	buyerPrice := in.ContractPrice + in.AssignmentFee

	r := &WholesaleResult{
		GrossProfit:   finance.Round(in.AssignmentFee),
		TotalCosts:    finance.Round(costs),
		NetProfit:     finance.Round(profit),
		ROI:           finance.Round(finance.Percent(profit, costs)),
		EndBuyerPrice: finance.Round(buyerPrice),
	}
	if in.ARV != nil {
		ceiling := finance.Round(*in.ARV*DefaultProfitMargin/100 - finance.ValueOr(in.RepairEstimate, 0))
		works := buyerPrice <= ceiling
		r.BuyerMaxPurchasePrice = &ceiling
		r.WorksForBuyer = &works
	}
	return r, nil
}
