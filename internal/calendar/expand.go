package calendar

import "github.com/username/school-calendar/pkg/dateutil"

// Expand returns every date from start to end inclusive. A reversed or
// invalid range yields nil.
func Expand(start, end Date) []Date {
	if !start.IsValid() || !end.IsValid() || end.Before(start) {
		return nil
	}

	days := make([]Date, 0, dateutil.DaysBetween(start.Time(), end.Time())+1)
	for d := start; !d.After(end); d = d.Next() {
		days = append(days, d)
	}
	return days
}

// ExpandFormatted is Expand rendered with DisplayLayout
func ExpandFormatted(start, end Date) []string {
	return FormatAll(Expand(start, end))
}

// FormatAll renders dates with DisplayLayout
func FormatAll(dates []Date) []string {
	if len(dates) == 0 {
		return nil
	}
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = d.Format()
	}
	return out
}
