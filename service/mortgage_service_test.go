package service

import (
	"math"
	"testing"

	"fin-calc/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exampleMortgage() domain.MortgageInput {
	return domain.MortgageInput{
		HomePrice:   300000,
		DownPayment: 60000,
		Interest:    6,
		Years:       30,
		TaxRate:     1.2,
		Insurance:   1200,
		HOA:         50,
	}
}

func TestCalculateMortgage_Example(t *testing.T) {
	result, err := CalculateMortgage(exampleMortgage())
	require.NoError(t, err)

	assert.InDelta(t, 1438.92, result.LoanPayment, 0.01)
	assert.InDelta(t, 300.0, result.Tax, 1e-9)
	assert.InDelta(t, 100.0, result.Insurance, 1e-9)
	assert.Equal(t, 50.0, result.HOA)
	assert.InDelta(t, 1888.92, result.Total, 0.01)
	assert.InDelta(t, result.LoanPayment+result.Tax+result.Insurance+result.HOA, result.Total, 1e-9)
}

func TestCalculateMortgage_ZeroInterest(t *testing.T) {
	input := exampleMortgage()
	input.Interest = 0
	input.Years = 20

	result, err := CalculateMortgage(input)
	require.NoError(t, err)

	assert.Equal(t, 1000.0, result.LoanPayment)
}

func TestCalculateMortgage_AmortizationRoundTrip(t *testing.T) {
	for _, interest := range []float64{0.5, 3, 6, 12.5, 30} {
		for _, years := range []int{1, 5, 15, 30, 40} {
			input := exampleMortgage()
			input.Interest = interest
			input.Years = years

			result, err := CalculateMortgage(input)
			require.NoError(t, err)

			loan := input.HomePrice - input.DownPayment
			r := interest / 100 / 12
			n := float64(years * 12)
			assert.InDelta(t, loan*r, result.LoanPayment*(1-math.Pow(1+r, -n)), 1e-6,
				"interest=%v years=%d", interest, years)
		}
	}
}

func TestCalculateMortgage_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.MortgageInput)
		wantMsg string
	}{
		{"zero years", func(in *domain.MortgageInput) { in.Years = 0 }, "years must be greater than zero"},
		{"negative years", func(in *domain.MortgageInput) { in.Years = -1 }, msgNonNegative},
		{"negative price", func(in *domain.MortgageInput) { in.HomePrice = -1 }, msgNonNegative},
		{"negative hoa", func(in *domain.MortgageInput) { in.HOA = -5 }, msgNonNegative},
		{"down payment above price", func(in *domain.MortgageInput) { in.DownPayment = 400000 }, "downPayment cannot exceed homePrice"},
		{"overflow", func(in *domain.MortgageInput) { in.HomePrice = 1e300; in.TaxRate = 1e20 }, msgOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := exampleMortgage()
			tt.mutate(&input)

			_, err := CalculateMortgage(input)
			require.Error(t, err)
			assert.True(t, domain.IsInvalidInput(err))
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestCalculateMortgage_FullDownPayment(t *testing.T) {
	input := exampleMortgage()
	input.DownPayment = input.HomePrice

	result, err := CalculateMortgage(input)
	require.NoError(t, err)
	assert.Zero(t, result.LoanPayment)
	assert.InDelta(t, 450.0, result.Total, 1e-9)
}
