package date

import (
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestCompare(t *testing.T) {
	testCases := []struct {
		a, b string
		want int
	}{
		{"2000-01-30", "2000-01-31", -1},
		{"2000-01-31", "2000-01-30", 1},
		{"2000-01-30", "2000-01-30", 0},
		{"2000-01-30", "2000-01-30 18:00:00", -1},
		{"2000-01-30 18:00:00", "2000-01-31", -1},
		{"2000-01-30 00:00:00", "2000-01-30", 0},
		{"1999-12-12", "2000-01-01", -1},
		// malformed dates fall back to a string comparison
		{"garbage", "2000-01-01", 1},
		{"", "2000-01-01", -1},
	}
	for _, tc := range testCases {
		if got := Compare(tc.a, tc.b); got != tc.want {
			t.Errorf("Compare(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestParseStamp(t *testing.T) {
	testCases := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{"2025-09-08", time.Date(2025, time.September, 8, 0, 0, 0, 0, time.UTC), false},
		{"2025-09-08 13:14:15", time.Date(2025, time.September, 8, 13, 14, 15, 0, time.UTC), false},
		{"2025-9-8", time.Time{}, true},
		{"2025-09-08T13:14:15", time.Time{}, true},
		{"", time.Time{}, true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseStamp(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseStamp(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if !got.Equal(tc.want) {
				t.Errorf("ParseStamp(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParse_Lenient(t *testing.T) {
	got, err := Parse("2025-7-1")
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}
	if want := New(2025, time.July, 1); got != want {
		t.Errorf("Parse() = %v, want %v", got, want)
	}
}

func TestNewRange(t *testing.T) {
	wed := New(2025, time.September, 10)
	testCases := []struct {
		period Period
		want   Range
	}{
		{Daily, Range{From: wed, To: wed}},
		{Weekly, Range{From: New(2025, time.September, 8), To: New(2025, time.September, 14)}},
		{Monthly, Range{From: New(2025, time.September, 1), To: New(2025, time.September, 30)}},
		{Quarterly, Range{From: New(2025, time.July, 1), To: New(2025, time.September, 30)}},
		{Yearly, Range{From: New(2025, time.January, 1), To: New(2025, time.December, 31)}},
	}
	for _, tc := range testCases {
		t.Run(tc.period.String(), func(t *testing.T) {
			if got := NewRange(wed, tc.period); got != tc.want {
				t.Errorf("NewRange(%v, %v) = %v, want %v", wed, tc.period, got, tc.want)
			}
		})
	}
}

func TestRange_Identifier(t *testing.T) {
	testCases := []struct {
		name string
		in   Range
		want string
	}{
		{"daily", NewRange(New(2025, time.September, 8), Daily), "2025-09-08"},
		{"weekly", NewRange(New(2025, time.September, 8), Weekly), "2025-W37"},
		{"monthly", NewRange(New(2024, time.February, 1), Monthly), "2024-02"},
		{"quarterly", NewRange(New(2025, time.July, 1), Quarterly), "2025-Q3"},
		{"yearly", NewRange(New(2025, time.January, 1), Yearly), "2025"},
		{"special", Range{From: New(2025, time.September, 2), To: New(2025, time.September, 10)}, "2025-09-02_2025-09-10"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Identifier(); got != tc.want {
				t.Errorf("Identifier() = %q, want %q", got, tc.want)
			}
			if got := tc.in.Name(); got != tc.name {
				t.Errorf("Name() = %q, want %q", got, tc.name)
			}
		})
	}
}

func TestRange_ContainsStamp(t *testing.T) {
	r := NewRange(New(2000, time.January, 15), Monthly)
	testCases := []struct {
		stamp string
		want  bool
	}{
		{"2000-01-01", true},
		{"2000-01-31 23:59:59", true},
		{"2000-02-01", false},
		{"1999-12-31 23:59:59", false},
		{"not a date", false},
	}
	for _, tc := range testCases {
		if got := r.ContainsStamp(tc.stamp); got != tc.want {
			t.Errorf("ContainsStamp(%q) = %v, want %v", tc.stamp, got, tc.want)
		}
	}
}

func TestParsePeriod(t *testing.T) {
	testCases := []struct {
		in      string
		want    Period
		wantErr bool
	}{
		{"daily", Daily, false},
		{"week", Weekly, false},
		{"Month", Monthly, false},
		{"quarterly", Quarterly, false},
		{"year", Yearly, false},
		{"decade", Daily, true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParsePeriod(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParsePeriod(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("ParsePeriod(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}
