package templates_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"compound-interest/domain"
	"compound-interest/report"
	"compound-interest/service"
	"compound-interest/templates"
)

func calculatedSession(t *testing.T, view domain.View, year int) domain.Session {
	t.Helper()
	input := domain.ProjectionInput{Principal: 1000, AnnualRate: 12, Years: 3, MonthlyContribution: 100}
	ledger, err := service.Project(input.Principal, input.AnnualRate, input.Years, input.MonthlyContribution)
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	return domain.Session{ID: "abc", View: view, SelectedYear: year, Input: input, Ledger: &ledger}
}

func render(t *testing.T, data templates.PageData) string {
	t.Helper()
	var buf bytes.Buffer
	if err := templates.Page(data).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	return buf.String()
}

func TestPage_EmptySessionShowsDefaultsOnly(t *testing.T) {
	html := render(t, templates.PageData{
		Session: domain.Session{View: domain.ViewYearly, SelectedYear: 1},
		Money:   report.DefaultCurrencyFormatter(),
	})

	if !strings.Contains(html, `id="principal" name="principal" value="10000"`) {
		t.Errorf("expected default principal in form")
	}
	if !strings.Contains(html, `<option value="12" selected>Monthly</option>`) {
		t.Errorf("expected monthly compounding selected by default")
	}
	if strings.Contains(html, "results-section") {
		t.Errorf("results must not render before the first calculation")
	}
}

func TestPage_YearlyView(t *testing.T) {
	html := render(t, templates.PageData{
		Session:   calculatedSession(t, domain.ViewYearly, 1),
		Money:     report.DefaultCurrencyFormatter(),
		ExportURL: "/projection/export.xlsx?principal=1000",
	})

	for _, want := range []string{
		`id="yearly-table"`,
		`id="growth-chart"`,
		`id="breakdown-chart"`,
		`Total Invested`,
		`$4,600.00`,
		`<polyline`,
		`class="toggle active" href="/?view=yearly"`,
		`href="/projection/export.xlsx?principal=1000"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("expected page to contain %q", want)
		}
	}
	if got := strings.Count(html, `class="growth-badge"`); got != 2 {
		t.Errorf("expected 2 growth badges for 3 years, got %d", got)
	}
	if strings.Contains(html, `id="monthly-table"`) {
		t.Errorf("monthly table must not render in yearly view")
	}
}

func TestPage_MonthlyView(t *testing.T) {
	html := render(t, templates.PageData{
		Session: calculatedSession(t, domain.ViewMonthly, 2),
		Money:   report.DefaultCurrencyFormatter(),
	})

	if !strings.Contains(html, `id="monthly-table"`) {
		t.Fatalf("expected monthly table")
	}
	if !strings.Contains(html, `<option value="2" selected>Year 2</option>`) {
		t.Errorf("expected year 2 selected in picker")
	}
	if got := strings.Count(html, `class="growth-badge"`); got != 11 {
		t.Errorf("expected 11 growth badges for 12 months, got %d", got)
	}
	if !strings.Contains(html, "<td>December</td>") {
		t.Errorf("expected month names in table")
	}
}

func TestPage_ErrorKeepsPreviousResults(t *testing.T) {
	session := calculatedSession(t, domain.ViewYearly, 1)
	session.Error = service.InvalidInputMessage

	html := render(t, templates.PageData{Session: session, Money: report.DefaultCurrencyFormatter()})

	if !strings.Contains(html, `<p class="error" role="alert">Please enter valid positive values for all fields.</p>`) {
		t.Errorf("expected error message")
	}
	if !strings.Contains(html, `id="yearly-table"`) {
		t.Errorf("expected previous results to stay visible")
	}
}

func TestForm_EscapesValues(t *testing.T) {
	session := domain.Session{View: domain.View(`"><script>`)}

	var buf bytes.Buffer
	if err := templates.Form(session).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(buf.String(), "<script>") {
		t.Errorf("view value was not escaped: %s", buf.String())
	}
}
