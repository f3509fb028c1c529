package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"compound-interest/domain"
	"compound-interest/report"
)

// BreakdownTable renders the view toggle and either the yearly table or
// the monthly table for the selected year.
func BreakdownTable(session domain.Session, money *report.CurrencyFormatter) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		ledger := *session.Ledger

		h.raw(`<div class="table-section"><div class="view-toggle">`)
		for _, v := range []domain.View{domain.ViewYearly, domain.ViewMonthly} {
			class := "toggle"
			if v == session.View {
				class += " active"
			}
			label := "Yearly"
			if v == domain.ViewMonthly {
				label = "Monthly"
			}
			h.printf(`<a class="%s" href="/?view=%s">%s</a>`, class, v, label)
		}
		h.raw(`</div>`)

		if session.View == domain.ViewMonthly {
			yearPicker(h, ledger.Years(), session.SelectedYear)
			monthlyTable(h, ledger.Months(session.SelectedYear), money)
		} else {
			yearlyTable(h, report.YearRows(ledger), money)
		}

		h.raw(`</div>`)
		return h.err
	})
}

func yearPicker(h *htmlWriter, years, selected int) {
	h.raw(`<form method="get" action="/" class="year-picker"><input type="hidden" name="view" value="monthly">`)
	h.raw(`<label for="year-select">Year</label><select id="year-select" name="year" onchange="this.form.submit()">`)
	for y := 1; y <= years; y++ {
		attr := ""
		if y == selected {
			attr = " selected"
		}
		h.printf(`<option value="%d"%s>Year %d</option>`, y, attr, y)
	}
	h.raw(`</select><noscript><button type="submit">Show</button></noscript></form>`)
}

func yearlyTable(h *htmlWriter, rows []report.YearRow, money *report.CurrencyFormatter) {
	h.raw(`<table id="yearly-table"><thead><tr><th>Year</th><th>Starting Balance</th><th>Contributions</th>`)
	h.raw(`<th>Interest Earned</th><th>Ending Balance</th><th>Total Contributions</th><th>Total Interest</th></tr></thead><tbody>`)
	for _, r := range rows {
		h.raw(`<tr><td>` + strconv.Itoa(r.Year) + `</td>`)
		for _, v := range []float64{r.StartingBalance, r.Contributions, r.InterestEarned} {
			moneyCell(h, money, v)
		}
		h.raw(`<td>`)
		h.text(money.Format(r.EndingBalance))
		growthBadge(h, r.Growth, money, 1)
		h.raw(`</td>`)
		moneyCell(h, money, r.CumulativeContributions)
		moneyCell(h, money, r.CumulativeInterest)
		h.raw(`</tr>`)
	}
	h.raw(`</tbody></table>`)
}

func monthlyTable(h *htmlWriter, months []domain.MonthRecord, money *report.CurrencyFormatter) {
	h.raw(`<table id="monthly-table"><thead><tr><th>Month</th><th>Starting Balance</th><th>Contribution</th>`)
	h.raw(`<th>Interest Earned</th><th>Ending Balance</th></tr></thead><tbody>`)
	for _, r := range report.MonthRows(months) {
		h.raw(`<tr><td>`)
		h.text(r.MonthName)
		h.raw(`</td>`)
		for _, v := range []float64{r.StartingBalance, r.Contribution, r.InterestEarned} {
			moneyCell(h, money, v)
		}
		h.raw(`<td>`)
		h.text(money.Format(r.EndingBalance))
		growthBadge(h, r.Growth, money, 2)
		h.raw(`</td></tr>`)
	}
	h.raw(`</tbody></table>`)
}

func moneyCell(h *htmlWriter, money *report.CurrencyFormatter, v float64) {
	h.raw(`<td>`)
	h.text(money.Format(v))
	h.raw(`</td>`)
}

func growthBadge(h *htmlWriter, g *report.Growth, money *report.CurrencyFormatter, decimals int) {
	if g == nil {
		return
	}
	h.raw(`<span class="growth-badge">+`)
	h.text(money.Format(g.Amount))
	h.raw(` (+` + report.Percent(g.Percent, decimals) + `)</span>`)
}
