package service

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"compound-interest/domain"
)

func TestYearsToTarget_Reached(t *testing.T) {

	goals := NewGoalService(NewProjectionService(NewMockCache(), nil, time.Hour))

	// 1000 at 12% doubles a little after 69 months
	result, err := goals.YearsToTarget(context.Background(), domain.GoalInput{
		Principal:     1000,
		AnnualRate:    12,
		TargetBalance: 2000,
		MaxYears:      10,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.Reached {
		t.Fatalf("expected target to be reached")
	}
	if result.MonthsElapsed != 70 {
		t.Errorf("expected 70 months, got %d", result.MonthsElapsed)
	}
	if result.Year != 6 || result.Month != 10 || result.MonthName != "October" {
		t.Errorf("unexpected month %d/%d %s", result.Year, result.Month, result.MonthName)
	}
	if result.Balance < 2000 {
		t.Errorf("expected balance at or above the target, got %.2f", result.Balance)
	}
	expected := 1000 * math.Pow(1.01, 70)
	if !approxEqual(result.Balance, expected) {
		t.Errorf("expected %.6f, got %.6f", expected, result.Balance)
	}
	if result.TotalInvested != 1000 {
		t.Errorf("expected invested 1000, got %.2f", result.TotalInvested)
	}
}

func TestYearsToTarget_NotReached(t *testing.T) {

	goals := NewGoalService(NewProjectionService(NewMockCache(), nil, time.Hour))

	result, err := goals.YearsToTarget(context.Background(), domain.GoalInput{
		Principal:     1000,
		AnnualRate:    1,
		TargetBalance: 1_000_000,
		MaxYears:      5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Reached {
		t.Errorf("expected target not to be reached")
	}
	if result.MonthsElapsed != 60 {
		t.Errorf("expected 60 months, got %d", result.MonthsElapsed)
	}
	if result.Balance <= 1000 {
		t.Errorf("expected final balance above principal, got %.2f", result.Balance)
	}
}

func TestYearsToTarget_InvalidInput(t *testing.T) {
	cases := []struct {
		name  string
		input domain.GoalInput
	}{
		{"target below principal", domain.GoalInput{Principal: 1000, AnnualRate: 5, TargetBalance: 500}},
		{"too many years", domain.GoalInput{Principal: 1000, AnnualRate: 5, TargetBalance: 5000, MaxYears: MaxYears + 1}},
		{"negative years", domain.GoalInput{Principal: 1000, AnnualRate: 5, TargetBalance: 5000, MaxYears: -1}},
		{"zero rate", domain.GoalInput{Principal: 1000, AnnualRate: 0, TargetBalance: 5000}},
		{"nan target", domain.GoalInput{Principal: 1000, AnnualRate: 5, TargetBalance: math.NaN()}},
	}

	goals := NewGoalService(NewProjectionService(NewMockCache(), nil, time.Hour))
	for _, c := range cases {
		if _, err := goals.YearsToTarget(context.Background(), c.input); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%s: expected ErrInvalidInput, got %v", c.name, err)
		}
	}
}
