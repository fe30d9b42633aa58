package service

// Calculator names, used in cache keys and metric labels.
const (
	CalculatorMortgage   = "mortgage"
	CalculatorIncomeTax  = "income-tax"
	CalculatorRetirement = "401k"
)

const (
	monthsPerYear  = 12
	cacheKeyPrefix = "fincalc"

	msgNonNegative = "All inputs must be non-negative."
	msgOutOfRange  = "result is out of range"
)
