package strategy

import "github.com/stwalsh4118/propcalc/api/internal/finance"

// CommercialNOIInput is an annual operating statement.
type CommercialNOIInput struct {
	GrossScheduledIncome float64  `json:"grossScheduledIncome" binding:"gte=0"`
	VacancyLoss          float64  `json:"vacancyLoss" binding:"gte=0"`
	OtherIncome          float64  `json:"otherIncome" binding:"gte=0"`
	OperatingExpenses    float64  `json:"operatingExpenses" binding:"gte=0"`
	ManagementFees       float64  `json:"managementFees" binding:"gte=0"`
	Reserves             float64  `json:"reserves" binding:"gte=0"`
	MarketCapRate        *float64 `json:"marketCapRate,omitempty" binding:"omitempty,gt=0,lte=100"`
}

// CommercialNOIResult is the NOI and, given a market cap rate, the value it
// supports.
type CommercialNOIResult struct {
	EffectiveGrossIncome float64  `json:"effectiveGrossIncome"`
	TotalExpenses        float64  `json:"totalExpenses"`
	NOI                  float64  `json:"noi"`
	ExpenseRatio         float64  `json:"expenseRatio"`
	ImpliedValue         *float64 `json:"impliedValue,omitempty"`
}

// CommercialNOI computes EGI - (opex + management + reserves).
func CommercialNOI(in CommercialNOIInput) (*CommercialNOIResult, error) {
	v := finance.NewViolations("")
	v.NonNegative("grossScheduledIncome", in.GrossScheduledIncome)
	v.NonNegative("vacancyLoss", in.VacancyLoss)
	v.NonNegative("otherIncome", in.OtherIncome)
	v.NonNegative("operatingExpenses", in.OperatingExpenses)
	v.NonNegative("managementFees", in.ManagementFees)
	v.NonNegative("reserves", in.Reserves)
	if in.MarketCapRate != nil && (*in.MarketCapRate <= 0 || *in.MarketCapRate > 100) {
		v.Addf("marketCapRate must be greater than 0 and at most 100")
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	egi := in.GrossScheduledIncome - in.VacancyLoss + in.OtherIncome
	expenses := in.OperatingExpenses + in.ManagementFees + in.Reserves
	noi := egi - expenses

	r := &CommercialNOIResult{
		EffectiveGrossIncome: finance.Round(egi),
		TotalExpenses:        finance.Round(expenses),
		NOI:                  finance.Round(noi),
		ExpenseRatio:         finance.Round(finance.Percent(expenses, egi)),
	}
	if in.MarketCapRate != nil {
		value := finance.Round(noi / (*in.MarketCapRate / 100))
		r.ImpliedValue = &value
	}
	return r, nil
}
