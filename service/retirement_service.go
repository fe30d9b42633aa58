package service

import (
	"context"
	"math"

	"fin-calc/domain"
	"fin-calc/repository"
	"github.com/sirupsen/logrus"
)

type RetirementService struct {
	memo resultMemo
}

func NewRetirementService(cache repository.CacheRepository, log *logrus.Logger) *RetirementService {
	return &RetirementService{memo: newResultMemo(CalculatorRetirement, cache, log)}
}

func (s *RetirementService) Calculate(ctx context.Context, input domain.RetirementInput) (domain.RetirementResult, error) {
	return memoize(ctx, s.memo, input, CalculateRetirement)
}

// CalculateRetirement projects a 401(k) balance with monthly compounding.
// The employer matches MatchPercent of the contribution, up to
// MaxMatchPercent of salary.
func CalculateRetirement(input domain.RetirementInput) (domain.RetirementResult, error) {
	if anyNegative(input.CurrentBalance, input.Contribution, float64(input.Years), input.ReturnRate,
		input.Salary, input.MatchPercent, input.MaxMatchPercent) {
		return domain.RetirementResult{}, domain.InvalidInput(msgNonNegative)
	}

	months := float64(input.Years) * monthsPerYear
	r := input.ReturnRate / 100 / monthsPerYear

	monthlyMaxMatch := input.MaxMatchPercent / 100 * input.Salary / monthsPerYear
	employerMatch := math.Min(input.Contribution, monthlyMaxMatch) * (input.MatchPercent / 100)

	growth := math.Pow(1+r, months)
	// Future value factor of an ordinary annuity; its limit at r = 0 is months.
	annuity := months
	if r != 0 && growth != 1 {
		annuity = (growth - 1) / r
	}

	result := domain.RetirementResult{
		FromContributions:    (input.Contribution + employerMatch) * annuity,
		FromCurrentBalance:   input.CurrentBalance * growth,
		EmployerMatchMonthly: employerMatch,
	}
	result.FutureValue = result.FromContributions + result.FromCurrentBalance

	if err := checkFinite(result.FutureValue, result.FromContributions, result.FromCurrentBalance, result.EmployerMatchMonthly); err != nil {
		return domain.RetirementResult{}, err
	}
	return result, nil
}
