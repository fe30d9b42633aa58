package service

import (
	"math"

	"fin-calc/domain"
	"github.com/shopspring/decimal"
)

// roundTo2Decimals rounds half away from zero on the decimal representation,
// so 2.675 becomes 2.68. v must be finite.
func roundTo2Decimals(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

func anyNegative(values ...float64) bool {
	for _, v := range values {
		if v < 0 {
			return true
		}
	}
	return false
}

// checkFinite rejects NaN and ±Inf, which come from overflowing inputs and
// cannot be encoded as JSON.
func checkFinite(values ...float64) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return domain.InvalidInput(msgOutOfRange)
		}
	}
	return nil
}
