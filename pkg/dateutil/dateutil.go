package dateutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Layout is the only accepted textual date format (dd/mm/yyyy).
const Layout = "02/01/2006"

// ErrInvalidDateFormat is returned when text does not denote a real calendar date in dd/mm/yyyy form.
var ErrInvalidDateFormat = errors.New("invalid date format")

var daysPerYear = decimal.NewFromFloat(365.25)

const secondsPerDay = 24 * 60 * 60

// Date returns the calendar day y-m-d as UTC midnight.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses "dd/mm/yyyy". The triple is rebuilt with time.Date and must come back
// unchanged, so 31/04 or 29/02 of a common year are rejected instead of rolled over.
func ParseDate(text string) (time.Time, error) {
	parts := strings.Split(strings.TrimSpace(text), "/")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("%w: %q (expected dd/mm/yyyy)", ErrInvalidDateFormat, text)
	}
	day, okDay := parseField(parts[0], 1, 2)
	month, okMonth := parseField(parts[1], 1, 2)
	year, okYear := parseField(parts[2], 4, 4)
	if !okDay || !okMonth || !okYear {
		return time.Time{}, fmt.Errorf("%w: %q (expected dd/mm/yyyy)", ErrInvalidDateFormat, text)
	}

	t := Date(year, time.Month(month), day)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, fmt.Errorf("%w: %q is not a calendar date", ErrInvalidDateFormat, text)
	}
	return t, nil
}

func parseField(s string, minLen, maxLen int) (int, bool) {
	if len(s) < minLen || len(s) > maxLen {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// FormatDate renders t as dd/mm/yyyy.
func FormatDate(t time.Time) string {
	return t.Format(Layout)
}

// Age calculates whole years between birthDate and atDate, never negative
func Age(birthDate, atDate time.Time) int {
	age := atDate.Year() - birthDate.Year()
	if atDate.Month() < birthDate.Month() ||
		(atDate.Month() == birthDate.Month() && atDate.Day() < birthDate.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}

// DaysBetween returns the number of calendar days from a to b (negative if b is before a).
// Time of day is ignored. Counted on Unix seconds so spans past the ~292-year range
// of time.Duration stay exact.
func DaysBetween(a, b time.Time) int {
	from := Date(a.Year(), a.Month(), a.Day())
	to := Date(b.Year(), b.Month(), b.Day())
	return int((to.Unix() - from.Unix()) / secondsPerDay)
}

// TenureYears calculates service from start to atDate using a 365.25-day year.
// The result is negative when atDate precedes start; callers guard against that.
func TenureYears(start, atDate time.Time) decimal.Decimal {
	return decimal.NewFromInt(int64(DaysBetween(start, atDate))).Div(daysPerYear)
}

// MonthsBetween counts whole months from d1 to d2. A month only completes once the
// day-of-month of d1 is reached again; returns 0 when d2 is not after d1.
func MonthsBetween(d1, d2 time.Time) int {
	if !d2.After(d1) {
		return 0
	}
	months := (d2.Year()-d1.Year())*12 + int(d2.Month()) - int(d1.Month())
	if d2.Day() < d1.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

// IsLeapYear checks if a year is a leap year
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns the number of days in a given year
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// AddYears adds a specified number of years to a date.
// 29 February rolls over to 1 March when the target year is not a leap year.
func AddYears(date time.Time, years int) time.Time {
	return date.AddDate(years, 0, 0)
}

// Earlier returns whichever of a and b comes first.
func Earlier(a, b time.Time) time.Time {
	if b.Before(a) {
		return b
	}
	return a
}

// Later returns whichever of a and b comes last.
func Later(a, b time.Time) time.Time {
	if b.After(a) {
		return b
	}
	return a
}
