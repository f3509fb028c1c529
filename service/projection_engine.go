package service

import (
	"errors"
	"fmt"
	"math"

	"compound-interest/domain"
)

// ErrInvalidInput is returned when projection inputs are out of range. No
// Ledger is produced alongside it.
var ErrInvalidInput = errors.New("invalid input")

func validateProjection(principal, annualRatePercent float64, years int, monthlyContribution float64) error {
	if !isFinite(principal) || principal <= 0 {
		return fmt.Errorf("%w: principal must be greater than zero", ErrInvalidInput)
	}
	if !isFinite(annualRatePercent) || annualRatePercent <= 0 {
		return fmt.Errorf("%w: annual rate must be greater than zero", ErrInvalidInput)
	}
	if years <= 0 {
		return fmt.Errorf("%w: years must be a positive integer", ErrInvalidInput)
	}
	if !isFinite(monthlyContribution) || monthlyContribution < 0 {
		return fmt.Errorf("%w: monthly contribution cannot be negative", ErrInvalidInput)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Project builds the year-by-year and month-by-month ledger for a balance
// compounded monthly at annualRatePercent/12, with monthlyContribution added
// at the start of every month before interest is applied.
func Project(
	principal float64,
	annualRatePercent float64,
	years int,
	monthlyContribution float64,
) (domain.Ledger, error) {

	if err := validateProjection(principal, annualRatePercent, years, monthlyContribution); err != nil {
		return domain.Ledger{}, err
	}

	monthlyRate := (annualRatePercent / 100) / MonthsPerYear

	ledger := domain.Ledger{
		Yearly:  make([]domain.YearRecord, 0, years),
		Monthly: make(map[int][]domain.MonthRecord, years),
	}

	currentBalance := principal
	totalContributions := principal

	for year := 1; year <= years; year++ {
		startBalance := currentBalance
		months := make([]domain.MonthRecord, 0, MonthsPerYear)

		for month := 1; month <= MonthsPerYear; month++ {
			monthStart := currentBalance

			// Contribution lands before interest is computed
			currentBalance += monthlyContribution
			totalContributions += monthlyContribution

			interestEarned := currentBalance * monthlyRate
			currentBalance += interestEarned

			months = append(months, domain.MonthRecord{
				Year:            year,
				Month:           month,
				MonthName:       MonthName(month),
				StartingBalance: monthStart,
				Contribution:    monthlyContribution,
				InterestEarned:  interestEarned,
				EndingBalance:   currentBalance,
			})
		}

		yearlyContributions := monthlyContribution * MonthsPerYear
		ledger.Monthly[year] = months
		ledger.Yearly = append(ledger.Yearly, domain.YearRecord{
			Year:                    year,
			StartingBalance:         startBalance,
			Contributions:           yearlyContributions,
			InterestEarned:          currentBalance - startBalance - yearlyContributions,
			EndingBalance:           currentBalance,
			CumulativeContributions: totalContributions,
			CumulativeInterest:      currentBalance - totalContributions,
		})
	}

	ledger.Summary = domain.Summary{
		TotalInvested: totalContributions,
		TotalInterest: currentBalance - totalContributions,
		FinalBalance:  currentBalance,
	}

	return ledger, nil
}
