package report

import (
	"fmt"

	"compound-interest/domain"
)

type Headline struct {
	TotalInvested float64
	TotalInterest float64
	FinalBalance  float64
	// InterestPercentage is total interest as a percent of total invested.
	InterestPercentage float64
	// BalanceMultiplier is the final balance over the principal.
	BalanceMultiplier float64
}

func NewHeadline(principal float64, summary domain.Summary) Headline {
	h := Headline{
		TotalInvested: summary.TotalInvested,
		TotalInterest: summary.TotalInterest,
		FinalBalance:  summary.FinalBalance,
	}
	if summary.TotalInvested != 0 {
		h.InterestPercentage = summary.TotalInterest / summary.TotalInvested * 100
	}
	if principal != 0 {
		h.BalanceMultiplier = summary.FinalBalance / principal
	}
	return h
}

// Multiplier formats the balance multiplier like "3.4x".
func (h Headline) Multiplier() string {
	return fmt.Sprintf("%.1fx", h.BalanceMultiplier)
}

type Slice struct {
	Label   string
	Amount  float64
	Percent float64 // share of the final balance
	Color   string
}

// NewBreakdown splits the final balance into principal, additional
// contributions and interest.
func NewBreakdown(principal float64, summary domain.Summary) []Slice {
	slices := []Slice{
		{Label: "Principal Investment", Amount: principal, Color: "#667eea"},
		{Label: "Additional Contributions", Amount: summary.TotalInvested - principal, Color: "#6f42c1"},
		{Label: "Interest Earned", Amount: summary.TotalInterest, Color: "#28a745"},
	}
	if summary.FinalBalance != 0 {
		for i := range slices {
			slices[i].Percent = slices[i].Amount / summary.FinalBalance * 100
		}
	}
	return slices
}

// Series holds the per-year values plotted by the growth chart and the
// sparklines.
type Series struct {
	Labels   []string
	Invested []float64
	Interest []float64
	Balance  []float64
}

func NewSeries(ledger domain.Ledger) Series {
	n := len(ledger.Yearly)
	s := Series{
		Labels:   make([]string, 0, n),
		Invested: make([]float64, 0, n),
		Interest: make([]float64, 0, n),
		Balance:  make([]float64, 0, n),
	}
	for _, y := range ledger.Yearly {
		s.Labels = append(s.Labels, fmt.Sprintf("Year %d", y.Year))
		s.Invested = append(s.Invested, y.CumulativeContributions)
		s.Interest = append(s.Interest, y.CumulativeInterest)
		s.Balance = append(s.Balance, y.EndingBalance)
	}
	return s
}

type Growth struct {
	Amount  float64
	Percent float64
}

func newGrowth(previous, current float64) *Growth {
	g := &Growth{Amount: current - previous}
	if previous != 0 {
		g.Percent = g.Amount / previous * 100
	}
	return g
}

type YearRow struct {
	domain.YearRecord
	// Growth is nil on the first row.
	Growth *Growth
}

type MonthRow struct {
	domain.MonthRecord
	Growth *Growth
}

// YearRows pairs each year with its change against the previous year's
// ending balance.
func YearRows(ledger domain.Ledger) []YearRow {
	rows := make([]YearRow, 0, len(ledger.Yearly))
	for i, y := range ledger.Yearly {
		row := YearRow{YearRecord: y}
		if i > 0 {
			row.Growth = newGrowth(ledger.Yearly[i-1].EndingBalance, y.EndingBalance)
		}
		rows = append(rows, row)
	}
	return rows
}

func MonthRows(months []domain.MonthRecord) []MonthRow {
	rows := make([]MonthRow, 0, len(months))
	for i, m := range months {
		row := MonthRow{MonthRecord: m}
		if i > 0 {
			row.Growth = newGrowth(months[i-1].EndingBalance, m.EndingBalance)
		}
		rows = append(rows, row)
	}
	return rows
}
