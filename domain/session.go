package domain

import "time"

type View string

const (
	ViewYearly  View = "yearly"
	ViewMonthly View = "monthly"
)

// Session is the presentation state of one browser: the current view, the
// year picked for the monthly table and the latest Ledger.
type Session struct {
	ID           string
	View         View
	SelectedYear int
	Input        ProjectionInput
	Ledger       *Ledger
	Error        string
	UpdatedAt    time.Time
}
