package service

import (
	"math"
	"slices"

	"fin-calc/domain"
)

// 2023 US federal brackets. Limits are strictly increasing and the last
// band is unbounded.
var (
	singleBrackets = [...]domain.Bracket{
		{Limit: 11000, Rate: 0.10},
		{Limit: 44725, Rate: 0.12},
		{Limit: 95375, Rate: 0.22},
		{Limit: 182100, Rate: 0.24},
		{Limit: 231250, Rate: 0.32},
		{Limit: 578125, Rate: 0.35},
		{Limit: math.Inf(1), Rate: 0.37},
	}

	marriedBrackets = [...]domain.Bracket{
		{Limit: 22000, Rate: 0.10},
		{Limit: 89450, Rate: 0.12},
		{Limit: 190750, Rate: 0.22},
		{Limit: 364200, Rate: 0.24},
		{Limit: 462500, Rate: 0.32},
		{Limit: 693750, Rate: 0.35},
		{Limit: math.Inf(1), Rate: 0.37},
	}
)

// BracketsFor returns a copy of the bracket table for status. Unknown
// statuses get the single table.
func BracketsFor(status domain.FilingStatus) []domain.Bracket {
	return slices.Clone(bracketTable(status))
}

// bracketTable returns a read-only view; callers must not modify it.
func bracketTable(status domain.FilingStatus) []domain.Bracket {
	if status == domain.FilingMarried {
		return marriedBrackets[:]
	}
	return singleBrackets[:]
}
