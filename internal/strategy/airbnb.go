package strategy

import "github.com/stwalsh4118/propcalc/api/internal/finance"

// DaysPerMonth is the month length used for short-term rental occupancy.
const DaysPerMonth = 30.0

// AirbnbInput describes a short-term rental.
type AirbnbInput struct {
	AverageDailyRate     float64  `json:"averageDailyRate" binding:"gte=0"`
	OccupancyRate        float64  `json:"occupancyRate" binding:"gte=0,lte=100"`
	CleaningFeePerStay   float64  `json:"cleaningFeePerStay" binding:"gte=0"`
	AverageStayLength    float64  `json:"averageStayLength" binding:"required,gt=0"`
	MonthlyExpenses      float64  `json:"monthlyExpenses" binding:"gte=0"`
	ManagementFeePercent *float64 `json:"managementFeePercent,omitempty" binding:"omitempty,gte=0,lte=100"`
	PropertyPrice        float64  `json:"propertyPrice" binding:"required,gt=0"`
	DownPayment          float64  `json:"downPayment" binding:"gte=0"`
}

// ShortTermRentalResult is the monthly and annual performance of the listing.
type ShortTermRentalResult struct {
	GrossMonthlyRevenue float64 `json:"grossMonthlyRevenue"`
	ManagementFees      float64 `json:"managementFees"`
	NetMonthlyIncome    float64 `json:"netMonthlyIncome"`
	AnnualGrossRevenue  float64 `json:"annualGrossRevenue"`
	AnnualNetIncome     float64 `json:"annualNetIncome"`
	CashOnCashReturn    float64 `json:"cashOnCashReturn"`
	CapRate             float64 `json:"capRate"`
	GrossYield          float64 `json:"grossYield"`
	RevPAR              float64 `json:"revPAR"`
	AverageOccupiedDays float64 `json:"averageOccupiedDays"`
	MonthlyStays        float64 `json:"monthlyStays"`
}

// Airbnb computes revenue from nightly rates and cleaning fees over a 30 day
// month. RevPAR is the daily rate weighted by occupancy.
func Airbnb(in AirbnbInput) (*ShortTermRentalResult, error) {
	v := finance.NewViolations("")
	v.NonNegative("averageDailyRate", in.AverageDailyRate)
	percentage(v, "occupancyRate", in.OccupancyRate)
	v.NonNegative("cleaningFeePerStay", in.CleaningFeePerStay)
	v.Positive("averageStayLength", in.AverageStayLength)
	v.NonNegative("monthlyExpenses", in.MonthlyExpenses)
	v.Percentage("managementFeePercent", in.ManagementFeePercent)
	v.Positive("propertyPrice", in.PropertyPrice)
	v.NonNegative("downPayment", in.DownPayment)
	if err := v.Err(); err != nil {
		return nil, err
	}

	occupied := DaysPerMonth * in.OccupancyRate / 100
	stays := occupied / in.AverageStayLength
	gross := in.AverageDailyRate*occupied + in.CleaningFeePerStay*stays
	management := gross * finance.ValueOr(in.ManagementFeePercent, 0) / 100
	net := gross - in.MonthlyExpenses - management
	annualNet := net * 12
	annualGross := gross * 12

	return &ShortTermRentalResult{
		GrossMonthlyRevenue: finance.Round(gross),
		ManagementFees:      finance.Round(management),
		NetMonthlyIncome:    finance.Round(net),
		AnnualGrossRevenue:  finance.Round(annualGross),
		AnnualNetIncome:     finance.Round(annualNet),
		CashOnCashReturn:    finance.Round(finance.Percent(annualNet, in.DownPayment)),
		CapRate:             finance.Round(finance.Percent(annualNet, in.PropertyPrice)),
		GrossYield:          finance.Round(finance.Percent(annualGross, in.PropertyPrice)),
		RevPAR:              finance.Round(in.AverageDailyRate * in.OccupancyRate / 100),
		AverageOccupiedDays: finance.Round(occupied),
		MonthlyStays:        finance.Round(stays),
	}, nil
}
