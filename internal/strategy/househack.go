package strategy

import (
	"github.com/stwalsh4118/propcalc/api/internal/finance"
	"github.com/stwalsh4118/propcalc/api/internal/rental"
)

// HouseHackingInput is a rental analysis of a small multifamily where the
// owner lives in some of the units. MonthlyRent is the market rent of the
// whole building.
type HouseHackingInput struct {
	rental.Input

	OwnerOccupiedUnits int `json:"ownerOccupiedUnits"`
	TotalUnits         int `json:"totalUnits"`
}

// HouseHackingResult is the rental analysis of the tenant-occupied units plus
// the owner's housing cost.
type HouseHackingResult struct {
	rental.Result

	OwnerOccupiedUnits       int     `json:"ownerOccupiedUnits"`
	TotalUnits               int     `json:"totalUnits"`
	RentedUnitsRent          float64 `json:"rentedUnitsRent"`
	OwnerUnitMarketRent      float64 `json:"ownerUnitMarketRent"`
	EffectiveLivingCost      float64 `json:"effectiveLivingCost"`
	PercentOfMortgageCovered float64 `json:"percentOfMortgageCovered"`
	NetHousingCost           float64 `json:"netHousingCost"`
}

// ValidateHouseHacking reports the rental violations together with the unit
// split.
func ValidateHouseHacking(in HouseHackingInput) error {
	v := finance.NewViolations("")
	v.Merge(rental.Validate(in.Input))
	if in.TotalUnits < 2 {
		v.Addf("totalUnits must be at least 2")
	}
	if in.OwnerOccupiedUnits < 1 {
		v.Addf("ownerOccupiedUnits must be at least 1")
	}
	if in.TotalUnits >= 2 && in.OwnerOccupiedUnits >= in.TotalUnits {
		v.Addf("ownerOccupiedUnits must be less than totalUnits")
	}
	return v.Err()
}

// HouseHacking analyzes the property on the rent from the units the owner
// does not occupy. The owner's effective living cost is the negative of that
// cash flow; NetHousingCost compares it with renting the owner's unit at
// market rent, so a negative value means house hacking is cheaper.
func HouseHacking(in HouseHackingInput) (*HouseHackingResult, error) {
	if err := ValidateHouseHacking(in); err != nil {
		return nil, err
	}

	total := float64(in.TotalUnits)
	rented := in.TotalUnits - in.OwnerOccupiedUnits
	ownerRent := in.MonthlyRent / total * float64(in.OwnerOccupiedUnits)

	tenant := in.Input
	tenant.MonthlyRent = in.MonthlyRent - ownerRent
	if tenant.Units == nil {
		tenant.Units = &rented
	}

	base, err := rental.Analyze(tenant, false)
	if err != nil {
		return nil, err
	}

	living := -base.CashFlow.CashFlowMonthly
	return &HouseHackingResult{
		Result:                   *base,
		OwnerOccupiedUnits:       in.OwnerOccupiedUnits,
		TotalUnits:               in.TotalUnits,
		RentedUnitsRent:          finance.Round(tenant.MonthlyRent),
		OwnerUnitMarketRent:      finance.Round(ownerRent),
		EffectiveLivingCost:      finance.Round(living),
		PercentOfMortgageCovered: finance.Round(finance.Percent(base.CashFlow.EffectiveRent, base.TotalMonthlyPayment)),
		NetHousingCost:           finance.Round(living - ownerRent),
	}, nil
}
