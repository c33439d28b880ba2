package rental

import "github.com/stwalsh4118/propcalc/api/internal/finance"

// SensitivitySteps are the perturbations applied on every axis.
var SensitivitySteps = []float64{-10, -5, 0, 5, 10}

type perturbation func(in Input, change float64) Input

// Sensitivity recalculates the property once per step on each axis: vacancy
// shifts by absolute points, while rent, interest rate and the maintenance and
// capex expenses scale by percent.
func Sensitivity(in Input) (*SensitivityAnalysis, error) {
	if err := Validate(in); err != nil {
		return nil, err
	}

	s := &SensitivityAnalysis{}
	var err error
	if s.VacancyImpact, err = sweep(in, perturbVacancy); err != nil {
		return nil, err
	}
	if s.RentChangeImpact, err = sweep(in, perturbRent); err != nil {
		return nil, err
	}
	if s.InterestRateImpact, err = sweep(in, perturbInterestRate); err != nil {
		return nil, err
	}
	if s.ExpenseChangeImpact, err = sweep(in, perturbExpenses); err != nil {
		return nil, err
	}
	return s, nil
}

func sweep(in Input, perturb perturbation) ([]SensitivityResult, error) {
	results := make([]SensitivityResult, 0, len(SensitivitySteps))
	for _, change := range SensitivitySteps {
		a, err := run(perturb(in, change))
		if err != nil {
			return nil, err
		}
		results = append(results, SensitivityResult{
			Change:     change,
			CashFlow:   finance.Round(a.cashFlow),
			CapRate:    finance.Round(a.capRate()),
			CashOnCash: finance.Round(a.cashOnCash()),
		})
	}
	return results, nil
}

func withExpenses(in Input, e Expenses) Input {
	in.Expenses = &e
	return in
}

func perturbVacancy(in Input, change float64) Input {
	e := *in.Expenses
	rate := finance.Clamp(e.VacancyPercent()+change, 0, 100)
	e.VacancyRate = &rate
	return withExpenses(in, e)
}

func perturbRent(in Input, change float64) Input {
	in.MonthlyRent *= 1 + change/100
	return in
}

func perturbInterestRate(in Input, change float64) Input {
	in.AnnualInterestRate *= 1 + change/100
	return in
}

func perturbExpenses(in Input, change float64) Input {
	factor := 1 + change/100
	e := *in.Expenses
	e = e.WithMaintenance(e.MaintenanceSpec().Scale(factor))
	e = e.WithCapex(e.CapexSpec().Scale(factor))
	return withExpenses(in, e)
}
