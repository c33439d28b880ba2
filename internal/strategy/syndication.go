package strategy

import (
	"math"

	"github.com/stwalsh4118/propcalc/api/internal/finance"
)

// SyndicationInput describes an LP/GP equity structure with a preferred
// return.
type SyndicationInput struct {
	TotalEquityRaised float64 `json:"totalEquityRaised" binding:"gte=0"`
	GPInvestment      float64 `json:"gpInvestment" binding:"gte=0"`
	LPInvestment      float64 `json:"lpInvestment" binding:"required,gt=0"`
	PreferredReturn   float64 `json:"preferredReturn" binding:"gte=0,lte=100"`
	LPSplit           float64 `json:"lpSplit" binding:"gte=0,lte=100"`
	GPSplit           float64 `json:"gpSplit" binding:"gte=0,lte=100"`
	AnnualCashFlow    float64 `json:"annualCashFlow"`
	SaleProceeds      float64 `json:"saleProceeds" binding:"gte=0"`
	HoldPeriod        int     `json:"holdPeriod" binding:"required,gt=0"`
}

// SyndicationResult is each class's total return over the hold.
type SyndicationResult struct {
	LPOwnershipShare float64 `json:"lpOwnershipShare"`
	LPTotalReturn    float64 `json:"lpTotalReturn"`
	GPTotalReturn    float64 `json:"gpTotalReturn"`
	LPMultiple       float64 `json:"lpMultiple"`
	GPMultiple       float64 `json:"gpMultiple"`
	LPIRR            float64 `json:"lpIRR"`
	GPIRR            float64 `json:"gpIRR"`
	LPAnnualCashFlow float64 `json:"lpAnnualCashFlow"`
	GPAnnualCashFlow float64 `json:"gpAnnualCashFlow"`
}

// Syndication runs a single-tier waterfall. The LP receives the preferred
// return first; cash flow above it and sale profit above returned capital are
// split by LPSplit and GPSplit. The IRR figures compound the total multiple
// over the hold period rather than discounting dated cash flows.
func Syndication(in SyndicationInput) (*SyndicationResult, error) {
	v := finance.NewViolations("")
	v.NonNegative("totalEquityRaised", in.TotalEquityRaised)
	v.NonNegative("gpInvestment", in.GPInvestment)
	v.Positive("lpInvestment", in.LPInvestment)
	percentage(v, "preferredReturn", in.PreferredReturn)
	percentage(v, "lpSplit", in.LPSplit)
	percentage(v, "gpSplit", in.GPSplit)
	if in.LPSplit+in.GPSplit > 100 {
		v.Addf("lpSplit and gpSplit cannot exceed 100 combined")
	}
	v.NonNegative("saleProceeds", in.SaleProceeds)
	if in.HoldPeriod <= 0 {
		v.Addf("holdPeriod must be greater than 0")
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	years := float64(in.HoldPeriod)
	pref := in.LPInvestment * in.PreferredReturn / 100
	excess := math.Max(0, in.AnnualCashFlow-pref)
	lpCash := excess * in.LPSplit / 100
	gpCash := excess * in.GPSplit / 100

	capital := in.LPInvestment + in.GPInvestment
	saleProfit := math.Max(0, in.SaleProceeds-capital)
	lpTotal := (pref+lpCash)*years + in.LPInvestment + saleProfit*in.LPSplit/100
	gpTotal := gpCash*years + in.GPInvestment + saleProfit*in.GPSplit/100

	equity := in.TotalEquityRaised
	if equity <= 0 {
		equity = capital
	}
	lpMultiple := lpTotal / in.LPInvestment
	gpMultiple := finance.Ratio(gpTotal, in.GPInvestment)

	return &SyndicationResult{
		LPOwnershipShare: finance.Round(finance.Percent(in.LPInvestment, equity)),
		LPTotalReturn:    finance.Round(lpTotal),
		GPTotalReturn:    finance.Round(gpTotal),
		LPMultiple:       finance.Round(lpMultiple),
		GPMultiple:       finance.Round(gpMultiple),
		LPIRR:            finance.Round(compoundRate(lpMultiple, years)),
		GPIRR:            finance.Round(compoundRate(gpMultiple, years)),
		LPAnnualCashFlow: finance.Round(pref + lpCash),
		GPAnnualCashFlow: finance.Round(gpCash),
	}, nil
}

// compoundRate is the annual percentage rate that grows 1 into multiple over
// years. A zero multiple means no investment was recovered.
func compoundRate(multiple, years float64) float64 {
	if multiple <= 0 || years <= 0 {
		return 0
	}
	return (math.Pow(multiple, 1/years) - 1) * 100
}
