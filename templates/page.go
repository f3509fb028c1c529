package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"compound-interest/domain"
	"compound-interest/report"
)

const (
	sparklineWidth  = 200
	sparklineHeight = 30
	chartWidth      = 720
	chartHeight     = 320
	chartPadding    = 56
	doughnutRadius  = 70
)

// PageData is everything the calculator page renders.
type PageData struct {
	Session   domain.Session
	Money     *report.CurrencyFormatter
	ExportURL string
}

// DefaultInput fills the form before the first calculation.
var DefaultInput = domain.ProjectionInput{
	Principal:            10000,
	AnnualRate:           7,
	Years:                10,
	MonthlyContribution:  100,
	CompoundingFrequency: 12,
}

// Page renders the full calculator document.
func Page(data PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw(`<title>Compound Interest Calculator</title><style>` + pageCSS + `</style></head><body><main>`)
		h.raw(`<h1>Compound Interest Calculator</h1>`)
		if h.err != nil {
			return h.err
		}

		if err := Form(data.Session).Render(ctx, w); err != nil {
			return err
		}
		if data.Session.Ledger != nil {
			if err := Results(data).Render(ctx, w); err != nil {
				return err
			}
		}

		h.raw(`</main></body></html>`)
		return h.err
	})
}

// Form renders the input form and the last validation message.
func Form(session domain.Session) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTMLWriter(w)

		input := session.Input
		if session.Ledger == nil {
			input = DefaultInput
		}
		if input.CompoundingFrequency == 0 {
			input.CompoundingFrequency = DefaultInput.CompoundingFrequency
		}

		h.raw(`<section class="calculator-card"><form method="get" action="/">`)
		if session.Error != "" {
			h.raw(`<p class="error" role="alert">`)
			h.text(session.Error)
			h.raw(`</p>`)
		}

		field := func(id, label, value, step string) {
			h.printf(`<label for="%s">%s</label><input type="number" id="%s" name="%s" value="%s" step="%s" min="0">`,
				id, templ.EscapeString(label), id, id, templ.EscapeString(value), step)
		}
		field("principal", "Initial Investment", number(input.Principal), "0.01")
		field("rate", "Annual Interest Rate (%)", number(input.AnnualRate), "0.01")
		field("years", "Years", strconv.Itoa(input.Years), "1")

		h.raw(`<label for="compound">Compound Frequency</label><select id="compound" name="compound">`)
		for _, opt := range compoundingOptions {
			selected := ""
			if opt.value == input.CompoundingFrequency {
				selected = " selected"
			}
			h.printf(`<option value="%d"%s>%s</option>`, opt.value, selected, templ.EscapeString(opt.label))
		}
		h.raw(`</select>`)

		field("monthly", "Monthly Contribution", number(input.MonthlyContribution), "0.01")
		h.printf(`<input type="hidden" name="view" value="%s">`, templ.EscapeString(string(session.View)))
		h.raw(`<button type="submit" id="calculate">Calculate</button></form></section>`)
		return h.err
	})
}

var compoundingOptions = []struct {
	value int
	label string
}{
	{1, "Annually"},
	{2, "Semi-annually"},
	{4, "Quarterly"},
	{12, "Monthly"},
	{365, "Daily"},
}

// Results renders the headline cards, the charts and the breakdown table.
func Results(data PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		ledger := *data.Session.Ledger
		principal := data.Session.Input.Principal

		h := newHTMLWriter(w)
		h.raw(`<section id="results-section">`)
		if h.err != nil {
			return h.err
		}

		components := []templ.Component{
			SummaryCards(principal, ledger, data.Money),
			GrowthChart(ledger, data.Money),
			BreakdownChart(principal, ledger.Summary, data.Money),
			BreakdownTable(data.Session, data.Money),
		}
		for _, c := range components {
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}

		if data.ExportURL != "" {
			h.printf(`<p class="export"><a href="%s">Download spreadsheet</a></p>`, templ.EscapeString(data.ExportURL))
		}
		h.raw(`</section>`)
		return h.err
	})
}
