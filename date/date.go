// Package date handles the dates of journal transactions.
//
// Transactions carry their date as text, either a day "2006-01-02" or a day
// and a time "2006-01-02 15:04:05". Date is the day-granularity value used
// for periods and ranges.
package date

import (
	"fmt"
	"strings"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02" // write date format

// DateTimeFormat is the format of a transaction date with a time of day.
const DateTimeFormat = "2006-01-02 15:04:05"

// Date represents a date with day-level granularity.
type Date struct {
	y int
	m time.Month
	d int
}

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.time().Month() }

// Weekday returns the day of the week for the date.
func (d Date) Weekday() time.Weekday { return d.time().Weekday() }

// ISOWeek returns the ISO 8601 year and week number in which d occurs.
func (d Date) ISOWeek() (year, week int) { return d.time().ISOWeek() }

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Today returns the current date.
func Today() Date { return New(time.Now().Date()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return New(d.y, d.m, d.d+i) }

// Year returns current year.
func (d Date) Year() int { return d.y }

// Day returns current day of the month.
func (d Date) Day() int { return d.d }

// Format formats the date at midnight UTC with layout.
func (d Date) Format(layout string) string { return d.time().Format(layout) }

// String format the date in its standard format.
func (d Date) String() string { return d.time().Format(DateFormat) }

// StartOf returns the first day of the period containing d. Weeks start on Monday.
func (d Date) StartOf(p Period) Date {
	switch p {
	case Daily:
		return d
	case Weekly:
		offset := (int(d.Weekday()) + 6) % 7
		return d.Add(-offset)
	case Monthly:
		return New(d.y, d.m, 1)
	case Quarterly:
		return New(d.y, (d.m-1)/3*3+1, 1)
	case Yearly:
		return New(d.y, time.January, 1)
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}

// EndOf returns the last day of the period containing d.
func (d Date) EndOf(p Period) Date {
	switch p {
	case Daily:
		return d
	case Weekly:
		return d.StartOf(Weekly).Add(6)
	case Monthly:
		return New(d.y, d.m+1, 0)
	case Quarterly:
		start := d.StartOf(Quarterly)
		return New(start.y, start.m+3, 0)
	case Yearly:
		return New(d.y, time.December, 31)
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}

// Parse parses a Date from a string. It is lenient and accepts formats like "2025-7-1".
func Parse(str string) (Date, error) {
	on, err := time.Parse(readDateFormat, str)
	// We use a slightly more permisive format for read, to support 2025-7-1 instead of 2025-07-01
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, readDateFormat, err)
	}
	return New(on.Date()), nil
}

// ParseStamp parses a transaction date, either in DateFormat or in
// DateTimeFormat. The result is in UTC; a day without time is at midnight.
func ParseStamp(str string) (time.Time, error) {
	if len(str) > len(DateFormat) {
		on, err := time.Parse(DateTimeFormat, str)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date %q want format %q: %w", str, DateTimeFormat, err)
		}
		return on, nil
	}
	on, err := time.Parse(DateFormat, str)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q want format %q: %w", str, DateFormat, err)
	}
	return on, nil
}

// DayOf returns the day of a transaction date. Malformed dates return false.
func DayOf(stamp string) (Date, bool) {
	on, err := ParseStamp(stamp)
	if err != nil {
		return Date{}, false
	}
	return New(on.Date()), true
}

// Compare compares two transaction dates and returns -1, 0 or +1.
//
// When both parse with ParseStamp they are compared as instants, so
// "2000-01-30" is before "2000-01-30 18:00:00". Otherwise they are compared
// as strings.
func Compare(a, b string) int {
	ta, errA := ParseStamp(a)
	tb, errB := ParseStamp(b)
	if errA != nil || errB != nil {
		return strings.Compare(a, b)
	}
	return ta.Compare(tb)
}
