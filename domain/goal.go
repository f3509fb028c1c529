package domain

type GoalInput struct {
	Principal           float64 `json:"principal"`
	AnnualRate          float64 `json:"annualRate"`
	MonthlyContribution float64 `json:"monthlyContribution"`
	TargetBalance       float64 `json:"targetBalance"`
	MaxYears            int     `json:"maxYears"`
}

type GoalResult struct {
	Reached       bool    `json:"reached"`
	Year          int     `json:"year,omitempty"`
	Month         int     `json:"month,omitempty"`
	MonthName     string  `json:"monthName,omitempty"`
	MonthsElapsed int     `json:"monthsElapsed"`
	Balance       float64 `json:"balance"`
	TotalInvested float64 `json:"totalInvested"`
	TotalInterest float64 `json:"totalInterest"`
}

type Insight struct {
	Summary     Summary `json:"summary"`
	Explanation string  `json:"explanation"`
}
