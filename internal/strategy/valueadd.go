package strategy

import "github.com/stwalsh4118/propcalc/api/internal/finance"

// ValueAddInput describes raising NOI through renovation.
type ValueAddInput struct {
	CurrentNOI      float64 `json:"currentNOI" binding:"gte=0"`
	ProjectedNOI    float64 `json:"projectedNOI" binding:"gte=0"`
	CurrentCapRate  float64 `json:"currentCapRate" binding:"required,gt=0,lte=100"`
	ExitCapRate     float64 `json:"exitCapRate" binding:"required,gt=0,lte=100"`
	RenovationCosts float64 `json:"renovationCosts" binding:"gte=0"`
	CurrentValue    float64 `json:"currentValue" binding:"gte=0"`
}

// ValueAddResult compares the value before and after the business plan.
type ValueAddResult struct {
	CurrentValueByCap float64 `json:"currentValueByCap"`
	ProjectedValue    float64 `json:"projectedValue"`
	ValueCreated      float64 `json:"valueCreated"`
	ROI               float64 `json:"roi"`
	EquityMultiple    float64 `json:"equityMultiple"`
}

// ValueAdd values the property by cap rate before and after renovation.
// Invested capital is the current value plus renovation costs.
func ValueAdd(in ValueAddInput) (*ValueAddResult, error) {
	v := finance.NewViolations("")
	v.NonNegative("currentNOI", in.CurrentNOI)
	v.NonNegative("projectedNOI", in.ProjectedNOI)
	for _, rate := range []struct {
		name  string
		value float64
	}{
		{"currentCapRate", in.CurrentCapRate},
		{"exitCapRate", in.ExitCapRate},
	} {
		if rate.value <= 0 || rate.value > 100 {
			v.Addf("%s must be greater than 0 and at most 100", rate.name)
		}
	}
	v.NonNegative("renovationCosts", in.RenovationCosts)
	v.NonNegative("currentValue", in.CurrentValue)
	if err := v.Err(); err != nil {
		return nil, err
	}

	current := in.CurrentNOI / (in.CurrentCapRate / 100)
	projected := in.ProjectedNOI / (in.ExitCapRate / 100)
	invested := in.CurrentValue + in.RenovationCosts
	created := projected - invested

	return &ValueAddResult{
		CurrentValueByCap: finance.Round(current),
		ProjectedValue:    finance.Round(projected),
		ValueCreated:      finance.Round(created),
		ROI:               finance.Round(finance.Percent(created, invested)),
		EquityMultiple:    finance.Round(finance.Ratio(projected, invested)),
	}, nil
}
