package excel

import (
	"bytes"
	"slices"
	"testing"

	"github.com/xuri/excelize/v2"

	"compound-interest/domain"
	"compound-interest/service"
)

func TestLedgerXLSX(t *testing.T) {

	input := domain.ProjectionInput{Principal: 1000, AnnualRate: 12, Years: 3, MonthlyContribution: 50}
	ledger, err := service.Project(input.Principal, input.AnnualRate, input.Years, input.MonthlyContribution)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bs, err := LedgerXLSX(input, ledger)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	xlsx, err := excelize.OpenReader(bytes.NewReader(bs))
	if err != nil {
		t.Fatalf("unreadable workbook: %v", err)
	}
	defer xlsx.Close()

	sheets := xlsx.GetSheetList()
	for _, name := range []string{"Summary", "Yearly", "Monthly"} {
		if !slices.Contains(sheets, name) {
			t.Errorf("missing sheet %s in %v", name, sheets)
		}
	}

	cases := []struct {
		sheet, cell, want string
	}{
		{"Summary", "A1", "Principal"},
		{"Summary", "A9", "Final Balance"},
		{"Yearly", "A1", "Year"},
		{"Yearly", "G1", "Total Interest"},
		{"Yearly", "A4", "3"},
		{"Monthly", "B1", "Month"},
		{"Monthly", "B2", "January"},
		{"Monthly", "A37", "3"},
		{"Monthly", "B37", "December"},
	}
	for _, c := range cases {
		got, err := xlsx.GetCellValue(c.sheet, c.cell)
		if err != nil {
			t.Errorf("%s!%s: %v", c.sheet, c.cell, err)
			continue
		}
		if got != c.want {
			t.Errorf("%s!%s = %q, want %q", c.sheet, c.cell, got, c.want)
		}
	}

	rows, err := xlsx.GetRows("Monthly")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1+3*12 {
		t.Errorf("expected %d monthly rows, got %d", 1+3*12, len(rows))
	}
}

func TestMergeStyles(t *testing.T) {

	style := mergeStyles(defaultStyle(), fontBold(), thinBorder("bottom"))

	if style.Font == nil || !style.Font.Bold {
		t.Errorf("expected bold font")
	}
	if len(style.Border) != 1 || style.Border[0].Type != "bottom" {
		t.Errorf("unexpected borders %+v", style.Border)
	}
	if style.Fill.Type != "pattern" {
		t.Errorf("expected default fill to survive the merge")
	}
	if mergeStyles() != nil {
		t.Errorf("expected nil for no styles")
	}
}
