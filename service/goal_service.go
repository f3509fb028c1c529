package service

import (
	"context"
	"fmt"

	"compound-interest/domain"
)

const DefaultGoalYears = 50

type GoalService struct {
	projection *ProjectionService
}

func NewGoalService(projection *ProjectionService) *GoalService {
	return &GoalService{projection: projection}
}

// YearsToTarget projects up to MaxYears and reports the first month whose
// ending balance reaches the target.
func (s *GoalService) YearsToTarget(
	ctx context.Context,
	input domain.GoalInput,
) (domain.GoalResult, error) {

	if input.MaxYears == 0 {
		input.MaxYears = DefaultGoalYears
	}
	if input.MaxYears < 0 || input.MaxYears > MaxYears {
		return domain.GoalResult{}, fmt.Errorf("%w: max years must be between 1 and %d", ErrInvalidInput, MaxYears)
	}
	if !isFinite(input.TargetBalance) {
		return domain.GoalResult{}, fmt.Errorf("%w: target balance must be a number", ErrInvalidInput)
	}
	if input.TargetBalance <= input.Principal {
		return domain.GoalResult{}, fmt.Errorf("%w: target balance must exceed the principal", ErrInvalidInput)
	}

	ledger, err := s.projection.Calculate(ctx, domain.ProjectionInput{
		Principal:           input.Principal,
		AnnualRate:          input.AnnualRate,
		Years:               input.MaxYears,
		MonthlyContribution: input.MonthlyContribution,
	})
	if err != nil {
		return domain.GoalResult{}, err
	}

	elapsed := 0
	for _, year := range ledger.Yearly {
		for _, month := range ledger.Monthly[year.Year] {
			elapsed++
			if month.EndingBalance < input.TargetBalance {
				continue
			}

			invested := input.Principal + input.MonthlyContribution*float64(elapsed)
			return domain.GoalResult{
				Reached:       true,
				Year:          month.Year,
				Month:         month.Month,
				MonthName:     month.MonthName,
				MonthsElapsed: elapsed,
				Balance:       month.EndingBalance,
				TotalInvested: invested,
				TotalInterest: month.EndingBalance - invested,
			}, nil
		}
	}

	return domain.GoalResult{
		Reached:       false,
		MonthsElapsed: elapsed,
		Balance:       ledger.Summary.FinalBalance,
		TotalInvested: ledger.Summary.TotalInvested,
		TotalInterest: ledger.Summary.TotalInterest,
	}, nil
}
