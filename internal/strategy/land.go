package strategy

import "github.com/stwalsh4118/propcalc/api/internal/finance"

// LandDevelopmentInput describes subdividing land into lots for sale.
type LandDevelopmentInput struct {
	LandCost              float64 `json:"landCost" binding:"gte=0"`
	DevelopmentCosts      float64 `json:"developmentCosts" binding:"gte=0"`
	SoftCosts             float64 `json:"softCosts" binding:"gte=0"`
	CarryingCosts         float64 `json:"carryingCosts" binding:"gte=0"`
	NumberOfLots          int     `json:"numberOfLots" binding:"required,gt=0"`
	AverageLotPrice       float64 `json:"averageLotPrice" binding:"gte=0"`
	DevelopmentTimeMonths int     `json:"developmentTimeMonths" binding:"required,gt=0"`
}

// LandDevelopmentResult is the project's profit and return.
type LandDevelopmentResult struct {
	TotalCosts    float64 `json:"totalCosts"`
	GrossRevenue  float64 `json:"grossRevenue"`
	NetProfit     float64 `json:"netProfit"`
	ProfitMargin  float64 `json:"profitMargin"`
	ProfitPerLot  float64 `json:"profitPerLot"`
	CostPerLot    float64 `json:"costPerLot"`
	ROI           float64 `json:"roi"`
	AnnualizedROI float64 `json:"annualizedROI"`
}

// LandDevelopment nets lot sales against land, development, soft and carrying
// costs. AnnualizedROI scales the ROI by the development time in months.
func LandDevelopment(in LandDevelopmentInput) (*LandDevelopmentResult, error) {
	v := finance.NewViolations("")
	v.NonNegative("landCost", in.LandCost)
	v.NonNegative("developmentCosts", in.DevelopmentCosts)
	v.NonNegative("softCosts", in.SoftCosts)
	v.NonNegative("carryingCosts", in.CarryingCosts)
	if in.NumberOfLots <= 0 {
		v.Addf("numberOfLots must be greater than 0")
	}
	v.NonNegative("averageLotPrice", in.AverageLotPrice)
	if in.DevelopmentTimeMonths <= 0 {
		v.Addf("developmentTimeMonths must be greater than 0")
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	lots := float64(in.NumberOfLots)
	costs := in.LandCost + in.DevelopmentCosts + in.SoftCosts + in.CarryingCosts
	revenue := lots * in.AverageLotPrice
	profit := revenue - costs
	roi := finance.Percent(profit, costs)

	return &LandDevelopmentResult{
		TotalCosts:    finance.Round(costs),
		GrossRevenue:  finance.Round(revenue),
		NetProfit:     finance.Round(profit),
		ProfitMargin:  finance.Round(finance.Percent(profit, revenue)),
		ProfitPerLot:  finance.Round(profit / lots),
		CostPerLot:    finance.Round(costs / lots),
		ROI:           finance.Round(roi),
		AnnualizedROI: finance.Round(roi / float64(in.DevelopmentTimeMonths) * 12),
	}, nil
}
