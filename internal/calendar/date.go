// Package calendar recognizes written dates in calendar text and does the
// day arithmetic needed to expand holiday ranges.
package calendar

import (
	"errors"
	"fmt"
	"time"

	"github.com/username/school-calendar/pkg/dateutil"
)

// DisplayLayout is the format used for every expanded holiday date
const DisplayLayout = "January 02, 2006"

// ErrInvalidDate is returned for a year/month/day that does not exist
var ErrInvalidDate = errors.New("invalid calendar date")

// Date represents a calendar day with no time of day or location
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate creates a Date, rejecting months outside 1-12 and days the month does not have
func NewDate(year int, month time.Month, day int) (Date, error) {
	d := Date{Year: year, Month: month, Day: day}
	if !d.IsValid() {
		return Date{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, int(month), day)
	}
	return d, nil
}

// FromTime returns the calendar day of t in t's location
func FromTime(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// IsValid reports whether the date exists, leap years included
func (d Date) IsValid() bool {
	if d.Month < time.January || d.Month > time.December {
		return false
	}
	return d.Day >= 1 && d.Day <= dateutil.DaysInMonth(d.Year, d.Month)
}

// Next returns the following calendar day
func (d Date) Next() Date {
	if d.Day < dateutil.DaysInMonth(d.Year, d.Month) {
		return Date{Year: d.Year, Month: d.Month, Day: d.Day + 1}
	}
	if d.Month < time.December {
		return Date{Year: d.Year, Month: d.Month + 1, Day: 1}
	}
	return Date{Year: d.Year + 1, Month: time.January, Day: 1}
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or after other
func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return sign(d.Year - other.Year)
	case d.Month != other.Month:
		return sign(int(d.Month) - int(other.Month))
	default:
		return sign(d.Day - other.Day)
	}
}

// Before reports whether d is strictly earlier than other
func (d Date) Before(other Date) bool {
	return d.Compare(other) < 0
}

// After reports whether d is strictly later than other
func (d Date) After(other Date) bool {
	return d.Compare(other) > 0
}

// Weekday returns the day of the week
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// Time returns midnight UTC of the date
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Format renders the date as "Month DD, YYYY"
func (d Date) Format() string {
	return d.Time().Format(DisplayLayout)
}

// String renders the date as YYYY-MM-DD
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
