package finance

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"rounds half away from zero", 1.005, 1.01},
		{"rounds down", 1798.6516, 1798.65},
		{"negative half", -2.675, -2.68},
		{"whole number", 42, 42},
		{"NaN collapses to zero", math.NaN(), 0},
		{"infinity collapses to zero", math.Inf(1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Round(tt.in))
		})
	}
}

func TestRatio_GuardsNonPositiveDenominator(t *testing.T) {
	assert.Equal(t, 0.0, Ratio(10, 0))
	assert.Equal(t, 0.0, Ratio(10, -5))
	assert.Equal(t, 2.0, Ratio(10, 5))
	assert.Equal(t, 0.0, Percent(10, 0))
	assert.Equal(t, 50.0, Percent(5, 10))
}

func TestCompound(t *testing.T) {
	assert.InDelta(t, 103.0, Compound(100, 3, 1), 1e-9)
	assert.InDelta(t, 115.927, Compound(100, 3, 5), 1e-3)
	assert.Equal(t, 100.0, Compound(100, 3, 0))
}

func TestMonthlyPayment(t *testing.T) {
	t.Run("standard thirty year loan", func(t *testing.T) {
		pi := MonthlyPayment(300000, 6, 360)
		assert.InDelta(t, 1798.65, pi, 0.005)
	})

	t.Run("zero rate divides evenly", func(t *testing.T) {
		assert.InDelta(t, 1000.0, MonthlyPayment(360000, 0, 360), 1e-9)
	})

	t.Run("no principal means no payment", func(t *testing.T) {
		assert.Equal(t, 0.0, MonthlyPayment(0, 6, 360))
		assert.Equal(t, 0.0, MonthlyPayment(100000, 6, 0))
	})
}

func TestAmortizer_RetiresLoan(t *testing.T) {
	// Arrange
	principal := 250000.0
	payment := MonthlyPayment(principal, 5.5, 180)
	a := NewAmortizer(principal, 5.5, payment, 180)

	// Act
	total := 0.0
	months := 0
	for {
		step, ok := a.Next()
		if !ok {
			break
		}
		total += step.Principal
		months++
	}

	// Assert
	assert.Equal(t, 180, months)
	assert.InDelta(t, principal, total, 0.01)
	assert.InDelta(t, 0, a.Balance(), 0.01)
}

func TestBalanceAfter(t *testing.T) {
	assert.InDelta(t, 300000.0, BalanceAfter(300000, 6, 360, 0), 1e-9)
	assert.Less(t, BalanceAfter(300000, 6, 360, 12), 300000.0)
	assert.InDelta(t, 0.0, BalanceAfter(300000, 6, 360, 500), 0.01)
}

func TestPrincipalPaid_FirstYear(t *testing.T) {
	paid := PrincipalPaid(300000, 6, 360, 12)
	remaining := BalanceAfter(300000, 6, 360, 12)

	assert.InDelta(t, 300000-remaining, paid, 0.01)
	assert.Greater(t, paid, 3600.0)
	assert.Less(t, paid, 3800.0)
}

func TestViolations(t *testing.T) {
	t.Run("no violations yields nil error", func(t *testing.T) {
		v := NewViolations("")
		v.Positive("propertyPrice", 10)
		assert.NoError(t, v.Err())
	})

	t.Run("aggregates every violation", func(t *testing.T) {
		// Arrange
		v := NewViolations("")
		abs, pct := 1.0, 2.0
		bad := 150.0

		// Act
		v.Positive("propertyPrice", 0)
		v.Exclusive("loanAmount", &abs, "loanAmountPercent", &pct)
		v.Percentage("downPaymentPercent", &bad)
		err := v.Err()

		// Assert
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidInput))
		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Len(t, verr.Violations, 3)
		assert.Equal(t,
			"propertyPrice must be greater than 0, cannot specify both loanAmount and loanAmountPercent, downPaymentPercent must be between 0 and 100",
			err.Error())
	})

	t.Run("merge applies prefix", func(t *testing.T) {
		inner := NewViolations("")
		inner.Positive("monthlyRent", 0)

		outer := NewViolations("scenarios[2]: ")
		outer.Merge(inner.Err())

		assert.Equal(t, "scenarios[2]: monthlyRent must be greater than 0", outer.Err().Error())
	})
}

func TestIRR(t *testing.T) {
	t.Run("single period", func(t *testing.T) {
		rate, ok := IRR([]float64{-100, 110})

		require.True(t, ok)
		assert.InDelta(t, 0.10, rate, 1e-6)
		assert.InDelta(t, 0, NPV(rate, []float64{-100, 110}), 1e-6)
	})

	t.Run("multi period annuity", func(t *testing.T) {
		// 1000 returning 300 a year for five years yields about 15.24%
		flows := []float64{-1000, 300, 300, 300, 300, 300}

		rate, ok := IRR(flows)

		require.True(t, ok)
		assert.InDelta(t, 0.1524, rate, 1e-4)
	})

	t.Run("no sign change", func(t *testing.T) {
		_, ok := IRR([]float64{100, 50, 50})

		assert.False(t, ok)
	})
}
