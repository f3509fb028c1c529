package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"compound-interest/domain"
)

const (
	summarySheet = "Summary"
	yearlySheet  = "Yearly"
	monthlySheet = "Monthly"
)

var (
	yearlyHeader = []string{
		"Year", "Starting Balance", "Annual Contributions", "Interest Earned",
		"Ending Balance", "Total Invested", "Total Interest",
	}
	monthlyHeader = []string{
		"Year", "Month", "Starting Balance", "Monthly Contribution",
		"Interest Earned", "Ending Balance",
	}
)

// LedgerXLSX renders the inputs, the yearly table and every month of a
// Ledger as a workbook.
func LedgerXLSX(input domain.ProjectionInput, ledger domain.Ledger) ([]byte, error) {
	xlsx := excelize.NewFile()
	defer xlsx.Close()

	_ = xlsx.SetAppProps(&excelize.AppProperties{
		Application: "compound-interest",
	})

	if err := xlsx.SetSheetName(xlsx.GetSheetName(xlsx.GetActiveSheetIndex()), summarySheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	for _, name := range []string{yearlySheet, monthlySheet} {
		if _, err := xlsx.NewSheet(name); err != nil {
			return nil, fmt.Errorf("create sheet %s: %w", name, err)
		}
	}

	if err := writeSummarySheet(xlsx, input, ledger.Summary); err != nil {
		return nil, err
	}
	if err := writeYearlySheet(xlsx, ledger); err != nil {
		return nil, err
	}
	if err := writeMonthlySheet(xlsx, ledger); err != nil {
		return nil, err
	}

	buf, err := xlsx.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeSummarySheet(xlsx *excelize.File, input domain.ProjectionInput, summary domain.Summary) error {
	sheet := summarySheet
	_ = xlsx.SetColWidth(sheet, "A", "A", 28)
	_ = xlsx.SetColWidth(sheet, "B", "B", 18)

	rows := []struct {
		label string
		value any
		money bool
	}{
		{"Principal", input.Principal, true},
		{"Annual Rate (%)", input.AnnualRate, false},
		{"Years", input.Years, false},
		{"Monthly Contribution", input.MonthlyContribution, true},
		{"Compounding", "Monthly", false},
		{"", nil, false},
		{"Total Invested", summary.TotalInvested, true},
		{"Total Interest", summary.TotalInterest, true},
		{"Final Balance", summary.FinalBalance, true},
	}

	labelStyle, err := xlsx.NewStyle(mergeStyles(defaultStyle(), fontBold()))
	if err != nil {
		return fmt.Errorf("summary style: %w", err)
	}
	moneyStyle, err := xlsx.NewStyle(mergeStyles(defaultStyle(), moneyFormat()))
	if err != nil {
		return fmt.Errorf("summary style: %w", err)
	}

	for i, r := range rows {
		row := i + 1
		if r.label == "" {
			continue
		}
		_ = xlsx.SetCellValue(sheet, cell('A', row), r.label)
		_ = xlsx.SetCellValue(sheet, cell('B', row), r.value)
		_ = xlsx.SetCellStyle(sheet, cell('A', row), cell('A', row), labelStyle)
		if r.money {
			_ = xlsx.SetCellStyle(sheet, cell('B', row), cell('B', row), moneyStyle)
		}
	}

	totalStyle, err := xlsx.NewStyle(mergeStyles(defaultStyle(), fontBold(), moneyFormat(), thickBorder("top")))
	if err != nil {
		return fmt.Errorf("summary style: %w", err)
	}
	last := len(rows)
	return xlsx.SetCellStyle(sheet, cell('A', last), cell('B', last), totalStyle)
}

func writeYearlySheet(xlsx *excelize.File, ledger domain.Ledger) error {
	sheet := yearlySheet
	_ = xlsx.SetColWidth(sheet, "A", "A", 8)
	_ = xlsx.SetColWidth(sheet, "B", "G", 20)

	if err := writeHeader(xlsx, sheet, yearlyHeader); err != nil {
		return err
	}

	moneyStyle, err := xlsx.NewStyle(mergeStyles(defaultStyle(), moneyFormat()))
	if err != nil {
		return fmt.Errorf("yearly style: %w", err)
	}

	for i, y := range ledger.Yearly {
		row := i + 2
		_ = xlsx.SetCellInt(sheet, cell('A', row), y.Year)
		_ = xlsx.SetCellFloat(sheet, cell('B', row), y.StartingBalance, 2, 64)
		_ = xlsx.SetCellFloat(sheet, cell('C', row), y.Contributions, 2, 64)
		_ = xlsx.SetCellFloat(sheet, cell('D', row), y.InterestEarned, 2, 64)
		_ = xlsx.SetCellFloat(sheet, cell('E', row), y.EndingBalance, 2, 64)
		_ = xlsx.SetCellFloat(sheet, cell('F', row), y.CumulativeContributions, 2, 64)
		_ = xlsx.SetCellFloat(sheet, cell('G', row), y.CumulativeInterest, 2, 64)
		_ = xlsx.SetCellStyle(sheet, cell('B', row), cell('G', row), moneyStyle)
	}

	return xlsx.SetPanes(sheet, frozenHeader())
}

func writeMonthlySheet(xlsx *excelize.File, ledger domain.Ledger) error {
	sheet := monthlySheet
	_ = xlsx.SetColWidth(sheet, "A", "A", 8)
	_ = xlsx.SetColWidth(sheet, "B", "B", 12)
	_ = xlsx.SetColWidth(sheet, "C", "F", 20)

	if err := writeHeader(xlsx, sheet, monthlyHeader); err != nil {
		return err
	}

	moneyStyle, err := xlsx.NewStyle(mergeStyles(defaultStyle(), moneyFormat()))
	if err != nil {
		return fmt.Errorf("monthly style: %w", err)
	}
	yearEndStyle, err := xlsx.NewStyle(mergeStyles(defaultStyle(), moneyFormat(), thinBorder("bottom")))
	if err != nil {
		return fmt.Errorf("monthly style: %w", err)
	}

	row := 2
	for _, y := range ledger.Yearly {
		for _, m := range ledger.Monthly[y.Year] {
			_ = xlsx.SetCellInt(sheet, cell('A', row), m.Year)
			_ = xlsx.SetCellValue(sheet, cell('B', row), m.MonthName)
			_ = xlsx.SetCellFloat(sheet, cell('C', row), m.StartingBalance, 2, 64)
			_ = xlsx.SetCellFloat(sheet, cell('D', row), m.Contribution, 2, 64)
			_ = xlsx.SetCellFloat(sheet, cell('E', row), m.InterestEarned, 2, 64)
			_ = xlsx.SetCellFloat(sheet, cell('F', row), m.EndingBalance, 2, 64)
			style := moneyStyle
			if m.Month == 12 {
				style = yearEndStyle
			}
			_ = xlsx.SetCellStyle(sheet, cell('C', row), cell('F', row), style)
			row++
		}
	}

	return xlsx.SetPanes(sheet, frozenHeader())
}

func writeHeader(xlsx *excelize.File, sheet string, header []string) error {
	for i, title := range header {
		_ = xlsx.SetCellValue(sheet, cell(rune('A'+i), 1), title)
	}
	style, err := xlsx.NewStyle(mergeStyles(defaultStyle(), fontBold(), thinBorder("bottom"), textAlignment("center")))
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	return xlsx.SetCellStyle(sheet, cell('A', 1), cell(rune('A'+len(header)-1), 1), style)
}

func frozenHeader() *excelize.Panes {
	return &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}
}

func cell(col rune, row int) string {
	return fmt.Sprintf("%c%d", col, row)
}
