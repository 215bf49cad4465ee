package export

import (
	"fmt"
	"io"
	"strings"
	"time"
	"unicode"

	ics "github.com/arran4/golang-ical"

	"github.com/username/school-calendar/internal/calendar"
	"github.com/username/school-calendar/internal/extract"
)

// span is a run of consecutive days
type span struct {
	start, end calendar.Date
}

// writeICS emits one all-day VEVENT per event and per consecutive run of
// holiday dates. Events whose date does not resolve are left out.
func writeICS(w io.Writer, res *extract.Result, opts Options) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(opts.productID())

	stamp := opts.now().UTC()

	for _, ev := range res.EventList() {
		if !ev.Valid {
			continue
		}
		addAllDay(cal, ev.Name, span{ev.Date, ev.Date}, stamp)
	}

	for _, h := range res.HolidayList() {
		for _, s := range spans(h.Dates) {
			addAllDay(cal, h.Name, s, stamp)
		}
	}

	if _, err := io.WriteString(w, cal.Serialize()); err != nil {
		return fmt.Errorf("failed to write calendar: %w", err)
	}
	return nil
}

func addAllDay(cal *ics.Calendar, name string, s span, stamp time.Time) {
	e := cal.AddEvent(eventUID(name, s.start))
	e.SetDtStampTime(stamp)
	e.SetSummary(name)
	e.SetAllDayStartAt(s.start.Time())
	// DTEND is exclusive for all-day events
	e.SetAllDayEndAt(s.end.Next().Time())
	e.SetProperty(ics.ComponentPropertyTransp, "TRANSPARENT")
}

// spans groups dates into runs of consecutive days, keeping input order
func spans(dates []calendar.Date) []span {
	var out []span
	for _, d := range dates {
		if n := len(out); n > 0 && out[n-1].end.Next() == d {
			out[n-1].end = d
			continue
		}
		out = append(out, span{d, d})
	}
	return out
}

// eventUID is stable across runs so calendar clients update in place
func eventUID(name string, start calendar.Date) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		slug = "entry"
	}
	return fmt.Sprintf("%s-%s@school-calendar", slug, start.Time().Format("20060102"))
}
