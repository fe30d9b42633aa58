package service

import (
	"context"
	"math"

	"fin-calc/domain"
	"fin-calc/repository"
	"github.com/sirupsen/logrus"
)

type IncomeTaxService struct {
	memo resultMemo
}

func NewIncomeTaxService(cache repository.CacheRepository, log *logrus.Logger) *IncomeTaxService {
	return &IncomeTaxService{memo: newResultMemo(CalculatorIncomeTax, cache, log)}
}

func (s *IncomeTaxService) Calculate(ctx context.Context, input domain.IncomeTaxInput) (domain.IncomeTaxResult, error) {
	return memoize(ctx, s.memo, input, CalculateIncomeTax)
}

// CalculateIncomeTax applies the progressive bracket table for the filing
// status to gross income less deductions, then subtracts credits.
func CalculateIncomeTax(input domain.IncomeTaxInput) (domain.IncomeTaxResult, error) {
	if anyNegative(input.Income, input.OtherIncome, input.Deductions, input.TaxCredits) {
		return domain.IncomeTaxResult{}, domain.InvalidInput(msgNonNegative)
	}

	grossIncome := input.Income + input.OtherIncome
	taxableIncome := math.Max(grossIncome-input.Deductions, 0)

	tax := math.Max(bracketTax(taxableIncome, bracketTable(input.FilingStatus))-input.TaxCredits, 0)

	effectiveRate := 0.0
	if grossIncome > 0 {
		effectiveRate = tax / grossIncome * 100
	}

	if err := checkFinite(grossIncome, taxableIncome, tax, effectiveRate); err != nil {
		return domain.IncomeTaxResult{}, err
	}

	return domain.IncomeTaxResult{
		TotalTax:      roundTo2Decimals(tax),
		EffectiveRate: roundTo2Decimals(effectiveRate),
		GrossIncome:   grossIncome,
		TaxableIncome: taxableIncome,
	}, nil
}

// bracketTax walks brackets in ascending order, taxing each band's slice of
// taxable at that band's marginal rate.
func bracketTax(taxable float64, brackets []domain.Bracket) float64 {
	var tax, prev float64
	for _, b := range brackets {
		if taxable > b.Limit {
			tax += (b.Limit - prev) * b.Rate
			prev = b.Limit
			continue
		}
		tax += (taxable - prev) * b.Rate
		break
	}
	return tax
}
