package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"compound-interest/domain"
	"compound-interest/repository"
)

const tracerName = "compound-interest/service"

type ProjectionService struct {
	cache    repository.CacheRepository
	feed     *LedgerFeed
	cacheTTL time.Duration
	tracer   trace.Tracer
}

// NewProjectionService creates a ProjectionService backed by cache. feed may
// be nil.
func NewProjectionService(
	cache repository.CacheRepository,
	feed *LedgerFeed,
	cacheTTL time.Duration,
) *ProjectionService {
	return &ProjectionService{
		cache:    cache,
		feed:     feed,
		cacheTTL: cacheTTL,
		tracer:   otel.Tracer(tracerName),
	}
}

// Calculate validates the request, then returns the cached Ledger for these
// inputs or runs the engine.
func (s *ProjectionService) Calculate(
	ctx context.Context,
	input domain.ProjectionInput,
) (domain.Ledger, error) {

	ctx, span := s.tracer.Start(ctx, "projection.calculate", trace.WithAttributes(
		attribute.Float64("projection.principal", input.Principal),
		attribute.Float64("projection.annual_rate", input.AnnualRate),
		attribute.Int("projection.years", input.Years),
		attribute.Float64("projection.monthly_contribution", input.MonthlyContribution),
	))
	defer span.End()

	if err := ValidateProjectionInput(input); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return domain.Ledger{}, err
	}

	key := cacheKey(input)
	if ledger, ok := s.cached(ctx, key); ok {
		span.SetAttributes(attribute.Bool("projection.cache_hit", true))
		s.feed.Publish(ctx, input, ledger)
		return ledger, nil
	}
	span.SetAttributes(attribute.Bool("projection.cache_hit", false))

	ledger, err := Project(input.Principal, input.AnnualRate, input.Years, input.MonthlyContribution)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return domain.Ledger{}, err
	}

	// Cache write failures are not critical
	if data, err := json.Marshal(ledger); err != nil {
		log.Printf("Warning: failed to encode projection for cache: %v", err)
	} else if err := s.cache.Set(ctx, key, string(data), s.cacheTTL); err != nil {
		log.Printf("Warning: failed to cache projection: %v", err)
	}

	s.feed.Publish(ctx, input, ledger)
	return ledger, nil
}

func (s *ProjectionService) cached(ctx context.Context, key string) (domain.Ledger, bool) {
	raw, ok := s.cache.Get(ctx, key)
	if !ok {
		return domain.Ledger{}, false
	}

	var ledger domain.Ledger
	if err := json.Unmarshal([]byte(raw), &ledger); err != nil {
		log.Printf("Warning: discarding unreadable cached projection %s: %v", key, err)
		return domain.Ledger{}, false
	}
	if len(ledger.Yearly) == 0 {
		return domain.Ledger{}, false
	}
	return ledger, true
}

// ValidateProjectionInput applies the engine preconditions and the request
// limits of the service.
func ValidateProjectionInput(input domain.ProjectionInput) error {
	if err := validateProjection(input.Principal, input.AnnualRate, input.Years, input.MonthlyContribution); err != nil {
		return err
	}
	if input.Principal > MaxPrincipal {
		return fmt.Errorf("%w: principal exceeds the maximum of $%.2f", ErrInvalidInput, MaxPrincipal)
	}
	if input.AnnualRate > MaxInterestRate {
		return fmt.Errorf("%w: annual rate exceeds the maximum of %.2f%%", ErrInvalidInput, MaxInterestRate)
	}
	if input.Years > MaxYears {
		return fmt.Errorf("%w: years exceed the maximum of %d", ErrInvalidInput, MaxYears)
	}
	if input.MonthlyContribution > MaxMonthlyContribution {
		return fmt.Errorf("%w: monthly contribution exceeds the maximum of $%.2f", ErrInvalidInput, MaxMonthlyContribution)
	}
	return nil
}

// cacheKey ignores CompoundingFrequency since it never changes the Ledger.
func cacheKey(input domain.ProjectionInput) string {
	raw := fmt.Sprintf("%v|%v|%d|%v",
		input.Principal, input.AnnualRate, input.Years, input.MonthlyContribution)
	return fmt.Sprintf("projection:%016x", xxhash.Sum64String(raw))
}
