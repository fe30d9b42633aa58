package domain

type MortgageInput struct {
	HomePrice   float64 `json:"homePrice"`
	DownPayment float64 `json:"downPayment"`
	Interest    float64 `json:"interest"`
	Years       int     `json:"years"`
	TaxRate     float64 `json:"taxRate"`
	Insurance   float64 `json:"insurance"`
	HOA         float64 `json:"hoa"`
}

// MortgageResult holds monthly amounts.
type MortgageResult struct {
	LoanPayment float64 `json:"loanPayment"`
	Tax         float64 `json:"tax"`
	Insurance   float64 `json:"insurance"`
	HOA         float64 `json:"hoa"`
	Total       float64 `json:"total"`
}
