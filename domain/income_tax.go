package domain

type FilingStatus string

const (
	FilingSingle  FilingStatus = "single"
	FilingMarried FilingStatus = "married"
)

// ParseFilingStatus maps "married" to FilingMarried. Every other value,
// including unknown ones such as "widowed", falls back to FilingSingle.
func ParseFilingStatus(s string) FilingStatus {
	if FilingStatus(s) == FilingMarried {
		return FilingMarried
	}
	return FilingSingle
}

type IncomeTaxInput struct {
	FilingStatus FilingStatus `json:"filingStatus"`
	Income       float64      `json:"income"`
	OtherIncome  float64      `json:"otherIncome"`
	Deductions   float64      `json:"deductions"`
	TaxCredits   float64      `json:"taxCredits"`
}

// IncomeTaxResult carries TotalTax and EffectiveRate rounded to cents;
// GrossIncome and TaxableIncome are left as computed.
type IncomeTaxResult struct {
	TotalTax      float64 `json:"totalTax"`
	EffectiveRate float64 `json:"effectiveRate"`
	GrossIncome   float64 `json:"grossIncome"`
	TaxableIncome float64 `json:"taxableIncome"`
}

// Bracket is one marginal band. Limit is the band's inclusive upper bound;
// the top band uses +Inf.
type Bracket struct {
	Limit float64
	Rate  float64
}
