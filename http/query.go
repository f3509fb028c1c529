package http

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"compound-interest/domain"
	"compound-interest/service"
)

var projectionParams = []string{"principal", "rate", "years", "monthly"}

// hasProjectionInput reports whether the query carries a calculator
// submission rather than only a view or year change.
func hasProjectionInput(q url.Values) bool {
	for _, p := range projectionParams {
		if q.Has(p) {
			return true
		}
	}
	return false
}

// parseProjectionQuery reads calculator fields the way the browser form
// sends them. Unparsable numbers become 0 and fail validation later.
func parseProjectionQuery(q url.Values) domain.ProjectionInput {
	input := domain.ProjectionInput{
		Principal:            parseFloat(q.Get("principal")),
		AnnualRate:           parseFloat(q.Get("rate")),
		Years:                parseInt(q.Get("years")),
		MonthlyContribution:  parseFloat(q.Get("monthly")),
		CompoundingFrequency: parseInt(q.Get("compound")),
	}
	if input.CompoundingFrequency <= 0 {
		input.CompoundingFrequency = service.DefaultCompoundingFrequency
	}
	return input
}

func projectionQuery(input domain.ProjectionInput) url.Values {
	q := url.Values{}
	q.Set("principal", strconv.FormatFloat(input.Principal, 'f', -1, 64))
	q.Set("rate", strconv.FormatFloat(input.AnnualRate, 'f', -1, 64))
	q.Set("years", strconv.Itoa(input.Years))
	q.Set("monthly", strconv.FormatFloat(input.MonthlyContribution, 'f', -1, 64))
	if input.CompoundingFrequency > 0 {
		q.Set("compound", strconv.Itoa(input.CompoundingFrequency))
	}
	return q
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// parseInt accepts "10" and "10.0"; fractional years are truncated.
func parseInt(s string) int {
	s = strings.TrimSpace(s)
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	f := parseFloat(s)
	if math.IsNaN(f) || math.Abs(f) > math.MaxInt32 {
		return 0
	}
	return int(f)
}
