package service

import (
	"context"
	"math"

	"fin-calc/domain"
	"fin-calc/repository"
	"github.com/sirupsen/logrus"
)

type MortgageService struct {
	memo resultMemo
}

func NewMortgageService(cache repository.CacheRepository, log *logrus.Logger) *MortgageService {
	return &MortgageService{memo: newResultMemo(CalculatorMortgage, cache, log)}
}

// Calculate returns the monthly mortgage breakdown, served from the cache
// when an identical input was seen before.
func (s *MortgageService) Calculate(ctx context.Context, input domain.MortgageInput) (domain.MortgageResult, error) {
	return memoize(ctx, s.memo, input, CalculateMortgage)
}

// CalculateMortgage computes the amortized monthly loan payment plus monthly
// property tax, insurance and HOA. A zero interest rate spreads the loan
// evenly over the term.
func CalculateMortgage(input domain.MortgageInput) (domain.MortgageResult, error) {
	if anyNegative(input.HomePrice, input.DownPayment, input.Interest, float64(input.Years),
		input.TaxRate, input.Insurance, input.HOA) {
		return domain.MortgageResult{}, domain.InvalidInput(msgNonNegative)
	}
	if input.Years == 0 {
		return domain.MortgageResult{}, domain.InvalidInput("years must be greater than zero")
	}
	if input.DownPayment > input.HomePrice {
		return domain.MortgageResult{}, domain.InvalidInput("downPayment cannot exceed homePrice")
	}

	loanAmount := input.HomePrice - input.DownPayment
	r := input.Interest / 100 / monthsPerYear
	n := float64(input.Years) * monthsPerYear

	loanPayment := loanAmount / n
	// A rate too small to move (1+r)^-n away from 1 is treated as zero.
	if denom := 1 - math.Pow(1+r, -n); r != 0 && denom != 0 {
		loanPayment = loanAmount * r / denom
	}

	result := domain.MortgageResult{
		LoanPayment: loanPayment,
		Tax:         input.TaxRate / 100 * input.HomePrice / monthsPerYear,
		Insurance:   input.Insurance / monthsPerYear,
		HOA:         input.HOA,
	}
	result.Total = result.LoanPayment + result.Tax + result.Insurance + result.HOA

	if err := checkFinite(result.LoanPayment, result.Tax, result.Insurance, result.HOA, result.Total); err != nil {
		return domain.MortgageResult{}, err
	}
	return result, nil
}
