package domain

type RetirementInput struct {
	CurrentBalance  float64 `json:"currentBalance"`
	Contribution    float64 `json:"contribution"` // monthly
	Years           int     `json:"years"`
	ReturnRate      float64 `json:"returnRate"`      // annual, percent
	Salary          float64 `json:"salary"`          // annual
	MatchPercent    float64 `json:"matchPercent"`    // e.g. 50
	MaxMatchPercent float64 `json:"maxMatchPercent"` // e.g. 6, percent of salary
}

type RetirementResult struct {
	FutureValue          float64 `json:"futureValue"`
	FromContributions    float64 `json:"fromContributions"`
	FromCurrentBalance   float64 `json:"fromCurrentBalance"`
	EmployerMatchMonthly float64 `json:"employerMatchMonthly"`
}
