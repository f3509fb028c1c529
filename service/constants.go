package service

const (
	MaxPrincipal           = 1_000_000_000_000.0 // 1 trillion
	MaxInterestRate        = 1000.0              // 1000% per year
	MaxYears               = 100
	MaxMonthlyContribution = 1_000_000_000.0

	MonthsPerYear = 12

	// Used when a caller leaves compounding unset. The engine compounds
	// monthly whatever the value.
	DefaultCompoundingFrequency = 12
)

var monthNames = [MonthsPerYear]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthName returns the English name of a 1-based month, or "" when out of
// range.
func MonthName(month int) string {
	if month < 1 || month > MonthsPerYear {
		return ""
	}
	return monthNames[month-1]
}
