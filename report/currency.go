// Package report turns a Ledger into the figures the page, the export and
// the CLI display. Nothing here changes the Ledger.
package report

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	DefaultLocale         = "en-US"
	DefaultCurrencySymbol = "$"
)

// CurrencyFormatter prints amounts with two decimals, the locale's digit
// grouping and a currency symbol.
type CurrencyFormatter struct {
	printer *message.Printer
	symbol  string
}

func NewCurrencyFormatter(locale, symbol string) (*CurrencyFormatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	return &CurrencyFormatter{
		printer: message.NewPrinter(tag),
		symbol:  symbol,
	}, nil
}

// DefaultCurrencyFormatter formats US dollars.
func DefaultCurrencyFormatter() *CurrencyFormatter {
	return &CurrencyFormatter{
		printer: message.NewPrinter(language.AmericanEnglish),
		symbol:  DefaultCurrencySymbol,
	}
}

func (f *CurrencyFormatter) Format(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "n/a"
	}

	cents := RoundCents(amount)
	sign := ""
	if cents.IsNegative() {
		sign = "-"
		cents = cents.Abs()
	}
	return sign + f.symbol + f.printer.Sprintf("%.2f", cents.InexactFloat64())
}

// RoundCents rounds half away from zero to two decimals.
func RoundCents(amount float64) decimal.Decimal {
	return decimal.NewFromFloat(amount).Round(2)
}

// Percent formats value with a fixed number of decimals and a % sign.
func Percent(value float64, decimals int) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "n/a"
	}
	return fmt.Sprintf("%.*f%%", decimals, value)
}
