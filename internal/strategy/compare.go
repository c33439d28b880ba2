package strategy

import (
	"fmt"

	"github.com/stwalsh4118/propcalc/api/internal/finance"
	"github.com/stwalsh4118/propcalc/api/internal/rental"
)

// CompareInput holds the rental scenarios to compare. ScenarioNames is
// optional; when given it must name every scenario.
type CompareInput struct {
	Scenarios     []rental.Input `json:"scenarios"`
	ScenarioNames []string       `json:"scenarioNames,omitempty"`
}

// Comparison holds the best value of each headline metric and the scenario
// that achieved it. Ties go to the earlier scenario.
type Comparison struct {
	BestCashFlow           float64 `json:"bestCashFlow"`
	BestCashFlowScenario   string  `json:"bestCashFlowScenario"`
	BestCapRate            float64 `json:"bestCapRate"`
	BestCapRateScenario    string  `json:"bestCapRateScenario"`
	BestCashOnCash         float64 `json:"bestCashOnCash"`
	BestCashOnCashScenario string  `json:"bestCashOnCashScenario"`
	BestTotalROI           float64 `json:"bestTotalROI"`
	BestTotalROIScenario   string  `json:"bestTotalROIScenario"`
}

// CompareResult is every scenario's full analysis plus the comparison.
type CompareResult struct {
	Scenarios     []rental.Result `json:"scenarios"`
	ScenarioNames []string        `json:"scenarioNames"`
	Comparison    Comparison      `json:"comparison"`
}

// ValidateCompare reports every violation of every scenario, each prefixed
// with the scenario's index.
func ValidateCompare(in CompareInput) error {
	v := finance.NewViolations("")
	if len(in.Scenarios) == 0 {
		v.Addf("scenarios must contain at least one scenario")
	}
	if len(in.ScenarioNames) > 0 && len(in.ScenarioNames) != len(in.Scenarios) {
		v.Addf("scenarioNames must name every scenario")
	}
	for i, s := range in.Scenarios {
		scenario := finance.NewViolations(fmt.Sprintf("scenarios[%d]: ", i))
		scenario.Merge(rental.Validate(s))
		v.Merge(scenario.Err())
	}
	return v.Err()
}

// Compare runs the full rental analysis once per scenario.
func Compare(in CompareInput) (*CompareResult, error) {
	if err := ValidateCompare(in); err != nil {
		return nil, err
	}

	names := in.ScenarioNames
	if len(names) == 0 {
		names = make([]string, len(in.Scenarios))
		for i := range names {
			names[i] = fmt.Sprintf("Scenario %d", i+1)
		}
	}

	results := make([]rental.Result, 0, len(in.Scenarios))
	for _, s := range in.Scenarios {
		r, err := rental.Analyze(s, false)
		if err != nil {
			return nil, err
		}
		results = append(results, *r)
	}

	return &CompareResult{
		Scenarios:     results,
		ScenarioNames: names,
		Comparison:    compare(results, names),
	}, nil
}

func compare(results []rental.Result, names []string) Comparison {
	best := func(metric func(rental.Result) float64) (float64, string) {
		idx := 0
		for i := range results {
			if metric(results[i]) > metric(results[idx]) {
				idx = i
			}
		}
		return metric(results[idx]), names[idx]
	}

	var c Comparison
	c.BestCashFlow, c.BestCashFlowScenario = best(func(r rental.Result) float64 { return r.CashFlow.CashFlowMonthly })
	c.BestCapRate, c.BestCapRateScenario = best(func(r rental.Result) float64 { return r.Metrics.CapRate })
	c.BestCashOnCash, c.BestCashOnCashScenario = best(func(r rental.Result) float64 { return r.Metrics.CashOnCashReturn })
	c.BestTotalROI, c.BestTotalROIScenario = best(func(r rental.Result) float64 { return r.Metrics.TotalReturnOnInvestment })
	return c
}
