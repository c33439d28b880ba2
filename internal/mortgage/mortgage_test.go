package mortgage

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stwalsh4118/propcalc/api/internal/finance"
)

func ptr[T any](v T) *T { return &v }

func TestCalculate_StandardLoan(t *testing.T) {
	// Arrange
	in := FlexibleInput{
		PropertyPrice:      375000,
		LoanAmount:         ptr(300000.0),
		AnnualInterestRate: 6,
		LoanTermYears:      30,
	}

	// Act
	result, err := Calculate(in, false)

	// Assert
	require.NoError(t, err)
	assert.InDelta(t, 1798.65, result.PrincipalAndInterest, 0.001)
	assert.Equal(t, 300000.0, result.LoanAmount)
	assert.Equal(t, 75000.0, result.DownPaymentAmount)
	assert.Equal(t, 20.0, result.DownPaymentPercentage)
	assert.Equal(t, 80.0, result.LoanToValue)
	assert.Equal(t, 0.0, result.PMI)
	assert.InDelta(t, 647514.57, result.TotalPayment, 0.05)
	assert.InDelta(t, result.TotalPayment-result.LoanAmount, result.TotalInterest, 0.01)
	assert.Nil(t, result.AmortizationSchedule)
}

func TestCalculate_TwentyPercentDownHasNoPMI(t *testing.T) {
	in := FlexibleInput{
		PropertyPrice:      400000,
		DownPaymentPercent: ptr(20.0),
		AnnualInterestRate: 6,
		LoanTermYears:      30,
		AutoCalculatePMI:   ptr(true),
	}

	result, err := Calculate(in, false)

	require.NoError(t, err)
	assert.Equal(t, 320000.0, result.LoanAmount)
	assert.Equal(t, 80000.0, result.DownPaymentAmount)
	assert.Equal(t, 0.0, result.PMI)
}

func TestCalculate_TenPercentDownPMIDropsAtEightyPercent(t *testing.T) {
	// Arrange
	in := FlexibleInput{
		PropertyPrice:      400000,
		DownPaymentPercent: ptr(10.0),
		AnnualInterestRate: 6,
		LoanTermYears:      30,
	}

	// Act
	result, err := Calculate(in, true)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 360000.0, result.LoanAmount)
	assert.Equal(t, 225.0, result.PMI)
	require.Len(t, result.AmortizationSchedule, 360)
	assert.Equal(t, 225.0, result.AmortizationSchedule[0].PMI)

	dropped := -1
	for i, entry := range result.AmortizationSchedule {
		if entry.PMI == 0 {
			dropped = i
			break
		}
	}
	require.Greater(t, dropped, 0, "PMI should lapse during the term")

	first := result.AmortizationSchedule[dropped]
	prev := result.AmortizationSchedule[dropped-1]
	assert.LessOrEqual(t, first.RemainingBalance/360000*100, 80.01)
	assert.Greater(t, prev.RemainingBalance/360000*100, 80.0)
	for _, entry := range result.AmortizationSchedule[dropped:] {
		assert.Equal(t, 0.0, entry.PMI)
	}
}

func TestSchedule_Invariants(t *testing.T) {
	// Arrange
	in := FlexibleInput{
		PropertyPrice:       500000,
		DownPayment:         ptr(50000.0),
		AnnualInterestRate:  7.25,
		LoanTermYears:       15,
		PropertyTaxAnnual:   ptr(6000.0),
		HomeInsuranceAnnual: ptr(1800.0),
		HOAMonthly:          ptr(150.0),
	}

	// Act
	result, err := Calculate(in, true)
	require.NoError(t, err)
	schedule := result.AmortizationSchedule

	// Assert
	require.Len(t, schedule, 180)
	for i, entry := range schedule {
		assert.Equal(t, i+1, entry.Month)
		assert.InDelta(t, entry.PrincipalAndInterest, entry.Principal+entry.Interest, 0.0100001)
		assert.GreaterOrEqual(t, entry.RemainingBalance, 0.0)
	}

	last := schedule[len(schedule)-1]
	assert.InDelta(t, result.LoanAmount, last.TotalPrincipalPaid, 0.05)
	assert.InDelta(t, 0, last.RemainingBalance, 0.05)
	assert.InDelta(t, 100, last.PrincipalPaidPercent, 0.01)
	assert.InDelta(t, result.TotalInterest, last.TotalInterestPaid, 0.5)
}

func TestSchedule_NoPMIWhenDownPaymentAtLeastTwentyPercent(t *testing.T) {
	in := FlexibleInput{
		PropertyPrice:      300000,
		DownPaymentPercent: ptr(25.0),
		AnnualInterestRate: 5,
		LoanTermYears:      30,
		PMIMonthly:         ptr(90.0),
	}

	result, err := Calculate(in, true)

	require.NoError(t, err)
	assert.Equal(t, 90.0, result.PMI)
	for _, entry := range result.AmortizationSchedule {
		require.Equal(t, 0.0, entry.PMI)
	}
}

func TestCalculate_ZeroInterestRate(t *testing.T) {
	in := FlexibleInput{
		PropertyPrice:      240000,
		LoanAmount:         ptr(120000.0),
		AnnualInterestRate: 0,
		LoanTermYears:      10,
	}

	result, err := Calculate(in, true)

	require.NoError(t, err)
	assert.Equal(t, 1000.0, result.PrincipalAndInterest)
	assert.Equal(t, 0.0, result.TotalInterest)
	assert.Equal(t, 0.0, result.AmortizationSchedule[0].Interest)
}

func TestCalculate_PercentOfPriceResolution(t *testing.T) {
	in := FlexibleInput{
		PropertyPrice:        400000,
		LoanAmountPercent:    ptr(75.0),
		AnnualInterestRate:   6.5,
		LoanTermYears:        30,
		PropertyTaxPercent:   ptr(1.2),
		HomeInsurancePercent: ptr(0.3),
	}

	result, err := Calculate(in, false)

	require.NoError(t, err)
	assert.Equal(t, 300000.0, result.LoanAmount)
	assert.Equal(t, 100000.0, result.DownPaymentAmount)
	assert.Equal(t, 400.0, result.PropertyTax)
	assert.Equal(t, 100.0, result.HomeInsurance)
	assert.InDelta(t,
		result.PrincipalAndInterest+result.PropertyTax+result.HomeInsurance+result.PMI+result.HOA,
		result.TotalMonthlyPayment, 0.011)
}

func TestCalculate_PMIOverrides(t *testing.T) {
	base := FlexibleInput{
		PropertyPrice:      400000,
		DownPaymentPercent: ptr(5.0),
		AnnualInterestRate: 6,
		LoanTermYears:      30,
	}

	t.Run("explicit override wins", func(t *testing.T) {
		in := base
		in.PMIMonthly = ptr(150.0)
		result, err := Calculate(in, false)
		require.NoError(t, err)
		assert.Equal(t, 150.0, result.PMI)
	})

	t.Run("auto calculation disabled", func(t *testing.T) {
		in := base
		in.AutoCalculatePMI = ptr(false)
		result, err := Calculate(in, false)
		require.NoError(t, err)
		assert.Equal(t, 0.0, result.PMI)
	})

	t.Run("auto calculation", func(t *testing.T) {
		result, err := Calculate(base, false)
		require.NoError(t, err)
		assert.Equal(t, 237.5, result.PMI)
	})
}

func TestValidate_AggregatesViolations(t *testing.T) {
	// Arrange
	in := FlexibleInput{
		PropertyPrice:      0,
		LoanAmount:         ptr(100.0),
		LoanAmountPercent:  ptr(80.0),
		DownPaymentPercent: ptr(120.0),
		LoanTermYears:      0,
	}

	// Act
	result, err := Calculate(in, false)

	// Assert
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, finance.ErrInvalidInput))

	var verr *finance.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Violations, "propertyPrice is required and must be greater than 0")
	assert.Contains(t, verr.Violations, "cannot specify both loanAmount and loanAmountPercent")
	assert.Contains(t, verr.Violations, "downPaymentPercent must be between 0 and 100")
	assert.Contains(t, verr.Violations, "loanTermYears must be greater than 0")
}

func TestValidate_ConflictingPairs(t *testing.T) {
	in := FlexibleInput{
		PropertyPrice:        300000,
		DownPayment:          ptr(60000.0),
		DownPaymentPercent:   ptr(20.0),
		PropertyTaxAnnual:    ptr(3000.0),
		PropertyTaxPercent:   ptr(1.0),
		HomeInsuranceAnnual:  ptr(1200.0),
		HomeInsurancePercent: ptr(0.4),
		LoanTermYears:        30,
	}

	err := Validate(in)

	require.Error(t, err)
	assert.Equal(t,
		"cannot specify both downPayment and downPaymentPercent, cannot specify both propertyTaxAnnual and propertyTaxPercent, cannot specify both homeInsuranceAnnual and homeInsurancePercent",
		err.Error())
}

func TestCalculate_Idempotent(t *testing.T) {
	in := FlexibleInput{
		PropertyPrice:      350000,
		DownPaymentPercent: ptr(12.5),
		AnnualInterestRate: 6.875,
		LoanTermYears:      30,
		PropertyTaxPercent: ptr(1.1),
	}

	first, err := Calculate(in, true)
	require.NoError(t, err)
	second, err := Calculate(in, true)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAmount_Resolve(t *testing.T) {
	assert.Equal(t, 5000.0, Fixed(5000).Resolve(100000))
	assert.Equal(t, 20000.0, PercentOf(20).Resolve(100000))
	assert.Equal(t, 0.0, Amount{}.Resolve(100000))
}

func TestAffordability_PaymentMatchesBudget(t *testing.T) {
	// Arrange
	in := AffordabilityInput{
		MaxMonthlyPayment:     3000,
		AnnualInterestRate:    6.5,
		LoanTermYears:         30,
		DownPaymentPercentage: 10,
	}

	// Act
	result, err := Affordability(in)

	// Assert
	require.NoError(t, err)
	assert.Greater(t, result.MaxPropertyPrice, 0.0)
	assert.InDelta(t, 3000, result.EstimatedMonthlyPayment, 0.02)
	assert.InDelta(t, result.MaxPropertyPrice*0.1, result.DownPayment, 0.02)
	assert.InDelta(t, result.MaxPropertyPrice-result.DownPayment, result.MaxLoanAmount, 0.02)
	assert.Greater(t, result.Breakdown.PMI, 0.0)
	assert.Equal(t, 100.0, result.Breakdown.HomeInsurance)
	assert.InDelta(t, result.DownPayment+result.EstimatedClosingCosts, result.EstimatedCashToClose, 0.02)
	assert.Nil(t, result.ImpliedFrontEndDTI)
}

func TestAffordability_DTILimitsBudget(t *testing.T) {
	in := AffordabilityInput{
		MaxMonthlyPayment:     5000,
		AnnualInterestRate:    6,
		LoanTermYears:         30,
		DownPaymentPercentage: 20,
		GrossMonthlyIncome:    ptr(10000.0),
		OtherMonthlyDebts:     1000,
	}

	result, err := Affordability(in)

	require.NoError(t, err)
	// front-end 2800, back-end 3600-1000 = 2600
	assert.Equal(t, 2600.0, result.QualifyingPayment)
	assert.InDelta(t, 2600, result.EstimatedMonthlyPayment, 0.02)
	require.NotNil(t, result.ImpliedBackEndDTI)
	assert.InDelta(t, 36, *result.ImpliedBackEndDTI, 0.01)
	assert.Equal(t, 0.0, result.Breakdown.PMI)
}

func TestAffordability_BudgetBelowFixedCosts(t *testing.T) {
	in := AffordabilityInput{
		MaxMonthlyPayment:     150,
		AnnualInterestRate:    6,
		LoanTermYears:         30,
		DownPaymentPercentage: 20,
		HOAMonthly:            100,
	}

	result, err := Affordability(in)

	require.NoError(t, err)
	assert.Equal(t, 0.0, result.MaxPropertyPrice)
	assert.Equal(t, 0.0, result.MaxLoanAmount)
	assert.False(t, math.IsNaN(result.EstimatedMonthlyPayment))
}

func TestAffordability_Validation(t *testing.T) {
	_, err := Affordability(AffordabilityInput{
		MaxMonthlyPayment:     0,
		LoanTermYears:         0,
		DownPaymentPercentage: 101,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, finance.ErrInvalidInput)
	assert.Contains(t, err.Error(), "maxMonthlyPayment must be greater than 0")
	assert.Contains(t, err.Error(), "loanTermYears must be greater than 0")
	assert.Contains(t, err.Error(), "downPaymentPercentage must be between 0 and 100")
}

func TestQuote_ProjectedPMI(t *testing.T) {
	quote := func(in FlexibleInput) Quote {
		terms, err := Normalize(in)
		require.NoError(t, err)
		return NewQuote(terms)
	}
	base := FlexibleInput{PropertyPrice: 400000, AnnualInterestRate: 6, LoanTermYears: 30}

	t.Run("override kept at 20 percent down", func(t *testing.T) {
		in := base
		in.DownPaymentPercent = ptr(20.0)
		in.PMIMonthly = ptr(100.0)
		q := quote(in)

		assert.Equal(t, 0.0, q.ScheduledPMI(q.LoanAmount))
		assert.Equal(t, 100.0, q.ProjectedPMI(q.LoanAmount))
		assert.Equal(t, 100.0, q.ProjectedPMI(q.LoanAmount*0.5))
	})

	t.Run("computed pmi lapses", func(t *testing.T) {
		in := base
		in.DownPaymentPercent = ptr(10.0)
		q := quote(in)

		assert.InDelta(t, 225.0, q.ProjectedPMI(q.LoanAmount), 0.001)
		assert.Equal(t, 0.0, q.ProjectedPMI(q.LoanAmount*0.8))
	})
}
