package domain

import "slices"

type ProjectionInput struct {
	Principal           float64 `json:"principal"`
	AnnualRate          float64 `json:"annualRate"` // percent, 7.5 means 7.5%
	Years               int     `json:"years"`
	MonthlyContribution float64 `json:"monthlyContribution"`
	// CompoundingFrequency is accepted but never used: interest always
	// compounds monthly.
	CompoundingFrequency int `json:"compoundingFrequency,omitempty"`
}

type MonthRecord struct {
	Year            int     `json:"year"`
	Month           int     `json:"month"`
	MonthName       string  `json:"monthName"`
	StartingBalance float64 `json:"startingBalance"`
	Contribution    float64 `json:"contribution"`
	InterestEarned  float64 `json:"interestEarned"`
	EndingBalance   float64 `json:"endingBalance"`
}

type YearRecord struct {
	Year                    int     `json:"year"`
	StartingBalance         float64 `json:"startingBalance"`
	Contributions           float64 `json:"contributions"`
	InterestEarned          float64 `json:"interestEarned"`
	EndingBalance           float64 `json:"endingBalance"`
	CumulativeContributions float64 `json:"cumulativeContributions"`
	CumulativeInterest      float64 `json:"cumulativeInterest"`
}

type Summary struct {
	TotalInvested float64 `json:"totalInvested"`
	TotalInterest float64 `json:"totalInterest"`
	FinalBalance  float64 `json:"finalBalance"`
}

type Ledger struct {
	Yearly  []YearRecord          `json:"yearly"`
	Monthly map[int][]MonthRecord `json:"monthly"`
	Summary Summary               `json:"summary"`
}

// Years returns the number of projected years.
func (l Ledger) Years() int {
	return len(l.Yearly)
}

// Year returns the record for a 1-based year index.
func (l Ledger) Year(year int) (YearRecord, bool) {
	if year < 1 || year > len(l.Yearly) {
		return YearRecord{}, false
	}
	return l.Yearly[year-1], true
}

// Months returns a copy of the monthly records of a year, nil when the year
// is out of range.
func (l Ledger) Months(year int) []MonthRecord {
	return slices.Clone(l.Monthly[year])
}
