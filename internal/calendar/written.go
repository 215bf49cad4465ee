package calendar

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrWeekdayMismatch is returned when the written weekday disagrees with the date
	ErrWeekdayMismatch = errors.New("weekday does not match date")

	// ErrNotWrittenDate is returned by ParseWritten for text that is not exactly one written date
	ErrNotWrittenDate = errors.New("not a written date")
)

// Field patterns for "<Weekday>, <Month> <Day>, <Year>". Full names are listed
// before abbreviations so the longest name wins.
const (
	weekdayExpr = `(Monday|Tuesday|Wednesday|Thursday|Friday|Saturday|Sunday|Mon|Tues|Tue|Wed|Thurs|Thur|Thu|Fri|Sat|Sun)\.?`
	monthExpr   = `(January|February|March|April|May|June|July|August|September|October|November|December|Jan|Feb|Mar|Apr|Jun|Jul|Aug|Sept|Sep|Oct|Nov|Dec)\.?`
	dayExpr     = `(0?[1-9]|[12][0-9]|3[01])`
	yearExpr    = `([0-9]{4})`

	writtenDateExpr = `\b` + weekdayExpr + `,\s*` + monthExpr + `\s+` + dayExpr + `,\s*` + yearExpr + `\b`
)

// Capture groups per written date: weekday, month, day, year
const groupsPerDate = 4

var dateTokenRe = regexp.MustCompile(`(?i)` + writtenDateExpr)

var weekdayNames = map[string]time.Weekday{
	"sunday": time.Sunday, "sun": time.Sunday,
	"monday": time.Monday, "mon": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday, "tues": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday, "thur": time.Thursday, "thurs": time.Thursday,
	"friday": time.Friday, "fri": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday,
}

var monthNames = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may": time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sep": time.September, "sept": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

// WrittenDate is a date exactly as it appears in a line of text,
// e.g. "Monday, August 26, 2024".
type WrittenDate struct {
	Text    string // verbatim match
	Weekday string
	Month   string
	Day     int
	Year    int
	Start   int // byte offset of Text in the line
	End     int
}

// FindDate returns the first written date in line
func FindDate(line string) (WrittenDate, bool) {
	loc := dateTokenRe.FindStringSubmatchIndex(line)
	if loc == nil {
		return WrittenDate{}, false
	}
	return writtenFromSubmatch(line, loc, 1), true
}

// FindAllDates returns every written date in line, left to right
func FindAllDates(line string) []WrittenDate {
	locs := dateTokenRe.FindAllStringSubmatchIndex(line, -1)
	if len(locs) == 0 {
		return nil
	}

	dates := make([]WrittenDate, 0, len(locs))
	for _, loc := range locs {
		dates = append(dates, writtenFromSubmatch(line, loc, 1))
	}
	return dates
}

// ParseWritten parses text consisting of exactly one written date
func ParseWritten(s string) (Date, error) {
	s = strings.TrimSpace(s)
	w, ok := FindDate(s)
	if !ok || w.Start != 0 || w.End != len(s) {
		return Date{}, fmt.Errorf("%w: %q", ErrNotWrittenDate, s)
	}
	return w.Date()
}

// Date resolves the written date, requiring the weekday to agree with it
func (w WrittenDate) Date() (Date, error) {
	return w.Resolve(true)
}

// Resolve converts the written fields to a Date. The weekday is only checked
// when strictWeekday is set.
func (w WrittenDate) Resolve(strictWeekday bool) (Date, error) {
	month, ok := monthNames[normalizeName(w.Month)]
	if !ok {
		return Date{}, fmt.Errorf("%w: unknown month %q", ErrInvalidDate, w.Month)
	}

	d, err := NewDate(w.Year, month, w.Day)
	if err != nil {
		return Date{}, err
	}

	if strictWeekday {
		weekday, ok := weekdayNames[normalizeName(w.Weekday)]
		if !ok {
			return Date{}, fmt.Errorf("%w: unknown weekday %q", ErrInvalidDate, w.Weekday)
		}
		if weekday != d.Weekday() {
			return Date{}, fmt.Errorf("%w: %s is a %s, not %s", ErrWeekdayMismatch, d, d.Weekday(), w.Weekday)
		}
	}

	return d, nil
}

// writtenFromSubmatch builds a WrittenDate from the four groups starting at group
func writtenFromSubmatch(line string, loc []int, group int) WrittenDate {
	field := func(i int) string {
		g := group + i
		return line[loc[2*g]:loc[2*g+1]]
	}

	// Both fields are digit-only by construction
	day, _ := strconv.Atoi(field(2))
	year, _ := strconv.Atoi(field(3))

	start := loc[2*group]
	end := loc[2*(group+groupsPerDate-1)+1]

	return WrittenDate{
		Text:    line[start:end],
		Weekday: field(0),
		Month:   field(1),
		Day:     day,
		Year:    year,
		Start:   start,
		End:     end,
	}
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSuffix(name, "."))
}
