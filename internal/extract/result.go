package extract

import "github.com/username/school-calendar/internal/calendar"

// Event is a named single-day entry such as "School Begins"
type Event struct {
	Name string
	// Written is the date exactly as matched in the source line
	Written string
	// Date is set only when Written resolves to a real calendar date
	Date  calendar.Date
	Valid bool
}

// Holiday is a named run of one or more days
type Holiday struct {
	Name  string
	Dates []calendar.Date
}

// Formatted returns the holiday dates rendered with calendar.DisplayLayout
func (h Holiday) Formatted() []string {
	return calendar.FormatAll(h.Dates)
}

// Result accumulates the events and holidays found during one extraction run.
// Names are unique; a later entry with the same name replaces the earlier one
// but keeps its original position.
type Result struct {
	events       map[string]Event
	holidays     map[string]Holiday
	eventOrder   []string
	holidayOrder []string
}

// NewResult creates an empty Result
func NewResult() *Result {
	return &Result{
		events:   make(map[string]Event),
		holidays: make(map[string]Holiday),
	}
}

// SetEvent records an event, replacing any earlier one with the same name
func (r *Result) SetEvent(ev Event) {
	if _, ok := r.events[ev.Name]; !ok {
		r.eventOrder = append(r.eventOrder, ev.Name)
	}
	r.events[ev.Name] = ev
}

// SetHoliday records a holiday. Holidays without dates are ignored and
// SetHoliday reports false.
func (r *Result) SetHoliday(h Holiday) bool {
	if len(h.Dates) == 0 {
		return false
	}
	if _, ok := r.holidays[h.Name]; !ok {
		r.holidayOrder = append(r.holidayOrder, h.Name)
	}
	r.holidays[h.Name] = h
	return true
}

// Event looks up an event by name
func (r *Result) Event(name string) (Event, bool) {
	ev, ok := r.events[name]
	return ev, ok
}

// Holiday looks up a holiday by name
func (r *Result) Holiday(name string) (Holiday, bool) {
	h, ok := r.holidays[name]
	return h, ok
}

// EventList returns events in first-seen order
func (r *Result) EventList() []Event {
	out := make([]Event, 0, len(r.eventOrder))
	for _, name := range r.eventOrder {
		out = append(out, r.events[name])
	}
	return out
}

// HolidayList returns holidays in first-seen order
func (r *Result) HolidayList() []Holiday {
	out := make([]Holiday, 0, len(r.holidayOrder))
	for _, name := range r.holidayOrder {
		out = append(out, r.holidays[name])
	}
	return out
}

// Events returns event name → written date
func (r *Result) Events() map[string]string {
	out := make(map[string]string, len(r.events))
	for name, ev := range r.events {
		out[name] = ev.Written
	}
	return out
}

// Holidays returns holiday name → formatted dates
func (r *Result) Holidays() map[string][]string {
	out := make(map[string][]string, len(r.holidays))
	for name, h := range r.holidays {
		out[name] = h.Formatted()
	}
	return out
}

// Len returns the number of events plus holidays
func (r *Result) Len() int {
	return len(r.events) + len(r.holidays)
}
