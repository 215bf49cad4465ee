package extract

import (
	"strings"

	"github.com/username/school-calendar/internal/calendar"
)

// Characters trimmed from the ends of a holiday name
const nameCutset = " \t.:;,-–—"

// HolidayName derives the storage key for a holiday line: the text before the
// first written date. Lines that start with a date fall back to the text after
// the last date, then to the whole trimmed line.
func HolidayName(line string) string {
	dates := calendar.FindAllDates(line)
	if len(dates) == 0 {
		return strings.TrimSpace(line)
	}

	if name := strings.Trim(line[:dates[0].Start], nameCutset); name != "" {
		return name
	}
	if name := strings.Trim(line[dates[len(dates)-1].End:], nameCutset); name != "" {
		return name
	}
	return strings.TrimSpace(line)
}
