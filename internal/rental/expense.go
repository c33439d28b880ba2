package rental

import "github.com/stwalsh4118/propcalc/api/internal/finance"

// ExpenseBasis says how an expense category is stated.
type ExpenseBasis int

const (
	// NotSpecified contributes nothing.
	NotSpecified ExpenseBasis = iota
	// FlatMonthly is a dollar amount per month.
	FlatMonthly
	// FlatAnnual is a dollar amount per year.
	FlatAnnual
	// PercentOfRent is a percentage of gross monthly rent.
	PercentOfRent
	// PercentOfValue is an annual percentage of the property value.
	PercentOfValue
)

// ExpenseSpec is the resolved specification of one category.
type ExpenseSpec struct {
	Basis ExpenseBasis
	Value float64
}

func specOf(basis ExpenseBasis, v *float64) ExpenseSpec {
	if v == nil {
		return ExpenseSpec{}
	}
	return ExpenseSpec{Basis: basis, Value: *v}
}

// firstSpecified returns the first candidate that was supplied.
func firstSpecified(candidates ...ExpenseSpec) ExpenseSpec {
	for _, c := range candidates {
		if c.Basis != NotSpecified {
			return c
		}
	}
	return ExpenseSpec{}
}

// Monthly converts the expense to a monthly dollar amount.
func (s ExpenseSpec) Monthly(rent, value float64) float64 {
	switch s.Basis {
	case FlatMonthly:
		return s.Value
	case FlatAnnual:
		return s.Value / monthsPerYear
	case PercentOfRent:
		return rent * s.Value / 100
	case PercentOfValue:
		return value * s.Value / 100 / monthsPerYear
	default:
		return 0
	}
}

// Scale multiplies the expense value by factor. Percentages stay within 0-100.
func (s ExpenseSpec) Scale(factor float64) ExpenseSpec {
	v := s.Value * factor
	if s.Basis == PercentOfRent || s.Basis == PercentOfValue {
		v = finance.Clamp(v, 0, 100)
	}
	return ExpenseSpec{Basis: s.Basis, Value: v}
}

// ManagementSpec resolves property management.
func (e Expenses) ManagementSpec() ExpenseSpec {
	return firstSpecified(
		specOf(FlatMonthly, e.PropertyManagementFlat),
		specOf(PercentOfRent, e.PropertyManagementPercent),
	)
}

// MaintenanceSpec resolves maintenance.
func (e Expenses) MaintenanceSpec() ExpenseSpec {
	return firstSpecified(
		specOf(FlatAnnual, e.MaintenanceAnnual),
		specOf(PercentOfRent, e.MaintenancePercentOfRent),
		specOf(PercentOfValue, e.MaintenancePercentOfValue),
	)
}

// CapexSpec resolves capital expenditure reserves.
func (e Expenses) CapexSpec() ExpenseSpec {
	return firstSpecified(
		specOf(FlatAnnual, e.CapexAnnual),
		specOf(PercentOfRent, e.CapexPercentOfRent),
		specOf(PercentOfValue, e.CapexPercentOfValue),
	)
}

// WithMaintenance returns a copy of e whose maintenance is stated by s alone.
func (e Expenses) WithMaintenance(s ExpenseSpec) Expenses {
	e.MaintenanceAnnual, e.MaintenancePercentOfRent, e.MaintenancePercentOfValue = nil, nil, nil
	switch s.Basis {
	case FlatAnnual:
		e.MaintenanceAnnual = &s.Value
	case PercentOfRent:
		e.MaintenancePercentOfRent = &s.Value
	case PercentOfValue:
		e.MaintenancePercentOfValue = &s.Value
	}
	return e
}

// WithCapex returns a copy of e whose capex is stated by s alone.
func (e Expenses) WithCapex(s ExpenseSpec) Expenses {
	e.CapexAnnual, e.CapexPercentOfRent, e.CapexPercentOfValue = nil, nil, nil
	switch s.Basis {
	case FlatAnnual:
		e.CapexAnnual = &s.Value
	case PercentOfRent:
		e.CapexPercentOfRent = &s.Value
	case PercentOfValue:
		e.CapexPercentOfValue = &s.Value
	}
	return e
}

// VacancyPercent is the stated vacancy rate or the default.
func (e Expenses) VacancyPercent() float64 {
	return finance.ValueOr(e.VacancyRate, DefaultVacancyRate)
}

// LineItems are the unrounded monthly amounts per category.
type LineItems struct {
	Vacancy            float64
	PropertyManagement float64
	Maintenance        float64
	Capex              float64
	Utilities          float64
	Landscaping        float64
	PestControl        float64
	LegalFees          float64
	LandlordInsurance  float64
	SpecialAssessments float64
	Advertising        float64
	Turnover           float64
}

// Operating sums every category except vacancy.
func (l LineItems) Operating() float64 {
	return l.PropertyManagement + l.Maintenance + l.Capex + l.Utilities + l.Landscaping +
		l.PestControl + l.LegalFees + l.LandlordInsurance + l.SpecialAssessments +
		l.Advertising + l.Turnover
}

// ResolveExpenses converts e to monthly amounts for a property renting at rent
// and worth value.
func ResolveExpenses(e Expenses, rent, value float64) LineItems {
	monthly := func(v *float64) float64 { return specOf(FlatMonthly, v).Monthly(rent, value) }
	annual := func(v *float64) float64 { return specOf(FlatAnnual, v).Monthly(rent, value) }

	return LineItems{
		Vacancy:            rent * e.VacancyPercent() / 100,
		PropertyManagement: e.ManagementSpec().Monthly(rent, value),
		Maintenance:        e.MaintenanceSpec().Monthly(rent, value),
		Capex:              e.CapexSpec().Monthly(rent, value),
		Utilities:          monthly(e.UtilitiesMonthly),
		Landscaping:        monthly(e.LandscapingMonthly),
		PestControl:        monthly(e.PestControlMonthly),
		LegalFees:          annual(e.LegalFeesAnnual),
		LandlordInsurance:  annual(e.LandlordInsuranceAnnual),
		SpecialAssessments: annual(e.SpecialAssessmentsAnnual),
		Advertising:        annual(e.AdvertisingAnnual),
		Turnover:           annual(e.TurnoverCostPerYear),
	}
}

// ValidateExpenses reports every problem with an expense block on its own.
func ValidateExpenses(e Expenses) error {
	v := finance.NewViolations("")
	checkExpenses(v, e)
	return v.Err()
}

// checkExpenses records expense violations on v.
func checkExpenses(v *finance.Violations, e Expenses) {
	v.Percentage("vacancyRate", e.VacancyRate)
	v.Percentage("propertyManagementPercent", e.PropertyManagementPercent)
	v.Percentage("maintenancePercentOfRent", e.MaintenancePercentOfRent)
	v.Percentage("maintenancePercentOfValue", e.MaintenancePercentOfValue)
	v.Percentage("capexPercentOfRent", e.CapexPercentOfRent)
	v.Percentage("capexPercentOfValue", e.CapexPercentOfValue)

	for _, f := range []struct {
		name  string
		value *float64
	}{
		{"propertyManagementFlat", e.PropertyManagementFlat},
		{"maintenanceAnnual", e.MaintenanceAnnual},
		{"capexAnnual", e.CapexAnnual},
		{"utilitiesMonthly", e.UtilitiesMonthly},
		{"landscapingMonthly", e.LandscapingMonthly},
		{"pestControlMonthly", e.PestControlMonthly},
		{"legalFeesAnnual", e.LegalFeesAnnual},
		{"landlordInsuranceAnnual", e.LandlordInsuranceAnnual},
		{"specialAssessmentsAnnual", e.SpecialAssessmentsAnnual},
		{"advertisingAnnual", e.AdvertisingAnnual},
		{"turnoverCostPerYear", e.TurnoverCostPerYear},
	} {
		v.OptionalNonNegative(f.name, f.value)
	}
}
