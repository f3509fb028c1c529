package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"compound-interest/domain"
	"compound-interest/report"
)

// SummaryCards renders the three headline figures, each with a sparkline
// of its yearly trend.
func SummaryCards(principal float64, ledger domain.Ledger, money *report.CurrencyFormatter) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		headline := report.NewHeadline(principal, ledger.Summary)
		series := report.NewSeries(ledger)

		card := func(id, title, value, detail string, values []float64, color string) {
			sp := report.NewSparkline(values, sparklineWidth, sparklineHeight)
			h.printf(`<div class="summary-card" id="%s"><h3>%s</h3><p class="value">%s</p><p class="detail">%s</p>`,
				id, templ.EscapeString(title), templ.EscapeString(value), templ.EscapeString(detail))
			h.printf(`<svg class="sparkline" viewBox="0 0 %s %s" preserveAspectRatio="none">`, coord(sp.Width), coord(sp.Height))
			if sp.Line != "" {
				h.printf(`<path d="%s" fill="%s" fill-opacity="0.15" stroke="none"/>`, sp.Area, color)
				h.printf(`<path d="%s" fill="none" stroke="%s" stroke-width="2"/>`, sp.Line, color)
			}
			h.raw(`</svg></div>`)
		}

		h.raw(`<div class="summary-cards">`)
		card("total-invested", "Total Invested", money.Format(headline.TotalInvested),
			"Principal plus contributions", series.Invested, "#667eea")
		card("total-interest", "Total Interest", money.Format(headline.TotalInterest),
			report.Percent(headline.InterestPercentage, 1)+" of invested", series.Interest, "#28a745")
		card("final-balance", "Final Balance", money.Format(headline.FinalBalance),
			headline.Multiplier()+" your principal", series.Balance, "#ffc107")
		h.raw(`</div>`)
		return h.err
	})
}

// GrowthChart renders invested, interest and balance over the years.
func GrowthChart(ledger domain.Ledger, money *report.CurrencyFormatter) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		chart := report.NewLineChart(report.NewSeries(ledger), chartWidth, chartHeight, chartPadding)

		h.raw(`<div class="chart" id="growth-chart"><h2>Growth Over Time</h2>`)
		h.printf(`<svg viewBox="0 0 %s %s" role="img" aria-label="Growth over time">`, coord(chart.Width), coord(chart.Height))

		left, right := chart.Padding, chart.Width-chart.Padding
		for _, t := range chart.YTicks {
			h.printf(`<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="#e9ecef"/>`, coord(left), coord(t.Pos), coord(right), coord(t.Pos))
			h.printf(`<text x="%s" y="%s" text-anchor="end" class="axis">%s</text>`,
				coord(left-6), coord(t.Pos+4), templ.EscapeString(money.Format(t.Value)))
		}
		for _, t := range chart.XTicks {
			h.printf(`<text x="%s" y="%s" text-anchor="middle" class="axis">%s</text>`,
				coord(t.Pos), coord(chart.Height-chart.Padding+18), templ.EscapeString(t.Label))
		}
		for _, l := range chart.Lines {
			h.printf(`<polyline points="%s" fill="none" stroke="%s" stroke-width="%s"><title>%s</title></polyline>`,
				l.Points, l.Color, number(l.Stroke), templ.EscapeString(l.Label))
		}
		h.raw(`</svg><ul class="legend">`)
		for _, l := range chart.Lines {
			h.printf(`<li><span class="swatch" style="background:%s"></span>%s</li>`, l.Color, templ.EscapeString(l.Label))
		}
		h.raw(`</ul></div>`)
		return h.err
	})
}

// BreakdownChart renders the doughnut of principal, contributions and
// interest.
func BreakdownChart(principal float64, summary domain.Summary, money *report.CurrencyFormatter) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		arcs := report.DoughnutArcs(report.NewBreakdown(principal, summary), doughnutRadius)
		size := 2*doughnutRadius + 40
		center := float64(size) / 2

		h.raw(`<div class="chart" id="breakdown-chart"><h2>Investment Breakdown</h2>`)
		h.printf(`<svg viewBox="0 0 %d %d" role="img" aria-label="Investment breakdown">`, size, size)
		h.printf(`<g transform="rotate(-90 %s %s)">`, coord(center), coord(center))
		for _, a := range arcs {
			h.printf(`<circle cx="%s" cy="%s" r="%d" fill="none" stroke="%s" stroke-width="28" stroke-dasharray="%s %s" stroke-dashoffset="%s"/>`,
				coord(center), coord(center), doughnutRadius, a.Color, coord(a.Dash), coord(a.Gap), coord(a.Offset))
		}
		h.raw(`</g></svg><ul class="legend">`)
		for _, a := range arcs {
			h.printf(`<li><span class="swatch" style="background:%s"></span>%s: %s (%s)</li>`,
				a.Color, templ.EscapeString(a.Label), templ.EscapeString(money.Format(a.Amount)), report.Percent(a.Percent, 1))
		}
		h.raw(`</ul></div>`)
		return h.err
	})
}
