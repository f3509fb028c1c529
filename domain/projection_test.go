package domain

import "testing"

func TestLedgerAccessors(t *testing.T) {
	ledger := Ledger{
		Yearly: []YearRecord{{Year: 1, EndingBalance: 110}, {Year: 2, EndingBalance: 121}},
		Monthly: map[int][]MonthRecord{
			1: {{Year: 1, Month: 1, MonthName: "January"}},
			2: {{Year: 2, Month: 1, MonthName: "January"}},
		},
	}

	if got := ledger.Years(); got != 2 {
		t.Errorf("Years() = %d, want 2", got)
	}

	cases := []struct {
		year int
		ok   bool
	}{
		{1, true},
		{2, true},
		{0, false},
		{3, false},
	}
	for _, tc := range cases {
		rec, ok := ledger.Year(tc.year)
		if ok != tc.ok {
			t.Errorf("Year(%d) ok = %v, want %v", tc.year, ok, tc.ok)
		}
		if ok && rec.Year != tc.year {
			t.Errorf("Year(%d) returned year %d", tc.year, rec.Year)
		}
	}

	months := ledger.Months(2)
	months[0].MonthName = "changed"
	if ledger.Monthly[2][0].MonthName != "January" {
		t.Error("Months must return a copy")
	}
	if len(ledger.Months(5)) != 0 {
		t.Error("unknown year should have no months")
	}
}
