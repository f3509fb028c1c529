package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/alecthomas/kingpin"

	"compound-interest/domain"
	"compound-interest/excel"
	"compound-interest/report"
	"compound-interest/service"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.Lshortfile)

	principal := kingpin.Flag("principal", "Initial investment").Default("10000").Float64()
	rate := kingpin.Flag("rate", "Annual interest rate in percent").Default("7").Float64()
	years := kingpin.Flag("years", "Projection length in years").Default("10").Int()
	monthly := kingpin.Flag("monthly", "Contribution added at the start of every month").Default("0").Float64()
	compound := kingpin.Flag("compound", "Compounding frequency per year (interest always compounds monthly)").Default("12").Int()

	cmdSummary := kingpin.Command("summary", "Show totals")
	cmdYearly := kingpin.Command("yearly", "Show the year by year table")
	cmdMonthly := kingpin.Command("monthly", "Show the month by month table for one year")
	monthlyYear := cmdMonthly.Flag("year", "Year to show").Default("1").Int()
	cmdXLSX := kingpin.Command("xlsx", "Write the ledger as a spreadsheet")
	outFile := cmdXLSX.Flag("out", "Output file").Default("compound-interest.xlsx").String()
	cmd := kingpin.Parse()

	input := domain.ProjectionInput{
		Principal:            *principal,
		AnnualRate:           *rate,
		Years:                *years,
		MonthlyContribution:  *monthly,
		CompoundingFrequency: *compound,
	}
	ledger, err := service.Project(input.Principal, input.AnnualRate, input.Years, input.MonthlyContribution)
	if err != nil {
		log.Fatal(err)
	}

	money := report.DefaultCurrencyFormatter()
	switch cmd {
	case cmdSummary.FullCommand():
		summaryReport(os.Stdout, money, input, ledger)
	case cmdYearly.FullCommand():
		yearlyReport(os.Stdout, money, ledger)
	case cmdMonthly.FullCommand():
		if err := monthlyReport(os.Stdout, money, ledger, *monthlyYear); err != nil {
			log.Fatal(err)
		}
	case cmdXLSX.FullCommand():
		data, err := excel.LedgerXLSX(input, ledger)
		if err != nil {
			log.Fatal(err)
		}
		if err := os.WriteFile(*outFile, data, 0644); err != nil {
			log.Fatal(err)
		}
		log.Println("wrote", *outFile)
	}
}

func summaryReport(w io.Writer, money *report.CurrencyFormatter, input domain.ProjectionInput, ledger domain.Ledger) {
	h := report.NewHeadline(input.Principal, ledger.Summary)
	fmtLine(w, "Total invested", money.Format(h.TotalInvested))
	fmtLine(w, "Total interest", money.Format(h.TotalInterest)+" ("+report.Percent(h.InterestPercentage, 1)+")")
	fmtLine(w, "Final balance", money.Format(h.FinalBalance)+" ("+h.Multiplier()+")")
}

func yearlyReport(w io.Writer, money *report.CurrencyFormatter, ledger domain.Ledger) {
	fmt.Fprintf(w, "%4s %16s %14s %14s %16s\n", "Year", "Start", "Contributions", "Interest", "End")
	for _, row := range report.YearRows(ledger) {
		fmt.Fprintf(w, "%4d %16s %14s %14s %16s%s\n", row.Year,
			money.Format(row.StartingBalance), money.Format(row.Contributions),
			money.Format(row.InterestEarned), money.Format(row.EndingBalance), growth(row.Growth, 1))
	}
}

func monthlyReport(w io.Writer, money *report.CurrencyFormatter, ledger domain.Ledger, year int) error {
	if _, ok := ledger.Year(year); !ok {
		return fmt.Errorf("year %d is outside 1..%d", year, ledger.Years())
	}

	fmt.Fprintf(w, "%-10s %16s %14s %14s %16s\n", "Month", "Start", "Contribution", "Interest", "End")
	for _, row := range report.MonthRows(ledger.Months(year)) {
		fmt.Fprintf(w, "%-10s %16s %14s %14s %16s%s\n", row.MonthName,
			money.Format(row.StartingBalance), money.Format(row.Contribution),
			money.Format(row.InterestEarned), money.Format(row.EndingBalance), growth(row.Growth, 2))
	}
	return nil
}

func growth(g *report.Growth, decimals int) string {
	if g == nil {
		return ""
	}
	return "  +" + report.Percent(g.Percent, decimals)
}

func fmtLine(w io.Writer, label, value string) {
	fmt.Fprintf(w, "%-16s %s\n", label+":", value)
}
