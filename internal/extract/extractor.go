package extract

import (
	"strings"

	"github.com/username/school-calendar/internal/calendar"
	"github.com/username/school-calendar/internal/source"
	"go.uber.org/zap"
)

// DefaultHolidayHeader opens the holidays section
const DefaultHolidayHeader = "Holidays and Other Days Schools Closed for Student Attendance"

// DefaultSectionEndMarkers are the headers of the sections that follow the holidays
var DefaultSectionEndMarkers = []string{
	"Senior High School Parent/Teacher Conference Schedule",
	"Junior High School Parent/Teacher Conference Schedule",
	"Elementary School SEP Conference Schedule",
	"Beginning and Ending of Terms",
}

// DefaultEventMarkers are the single-day events recorded anywhere in the document
var DefaultEventMarkers = []string{
	"School Begins",
	"School Ends",
}

// Options configures the marker vocabulary and date strictness
type Options struct {
	HolidayHeader     string
	SectionEndMarkers []string
	EventMarkers      []string
	StrictWeekday     bool
}

// DefaultOptions returns the vocabulary of the district calendar layout
func DefaultOptions() Options {
	return Options{
		HolidayHeader:     DefaultHolidayHeader,
		SectionEndMarkers: append([]string(nil), DefaultSectionEndMarkers...),
		EventMarkers:      append([]string(nil), DefaultEventMarkers...),
		StrictWeekday:     true,
	}
}

// LineKind is the classification of one processed line
type LineKind int

const (
	LineIgnored LineKind = iota
	LineEvent
	LineSectionStart
	LineSectionEnd
	LineHoliday
)

func (k LineKind) String() string {
	switch k {
	case LineIgnored:
		return "ignored"
	case LineEvent:
		return "event"
	case LineSectionStart:
		return "section-start"
	case LineSectionEnd:
		return "section-end"
	case LineHoliday:
		return "holiday"
	default:
		return "unknown"
	}
}

// LineObserver is called for every classified line
type LineObserver func(page, line int, text string, kind LineKind, state SectionState)

// Extractor classifies the lines of a calendar document and fills a Result
type Extractor struct {
	opts     Options
	tracker  *SectionTracker
	logger   *zap.Logger
	observer LineObserver
}

// NewExtractor creates a new Extractor
func NewExtractor(opts Options, logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Extractor{
		opts:    opts,
		tracker: NewSectionTracker(opts.HolidayHeader, opts.SectionEndMarkers),
		logger:  logger,
	}
}

// SetObserver installs a callback that sees every classified line
func (e *Extractor) SetObserver(fn LineObserver) {
	e.observer = fn
}

// State returns the current section state
func (e *Extractor) State() SectionState {
	return e.tracker.State()
}

// Run reads all pages of doc and extracts from them
func (e *Extractor) Run(doc source.Document) (*Result, error) {
	pages, err := doc.Pages()
	if err != nil {
		return nil, err
	}
	return e.Extract(pages), nil
}

// Extract processes pages in order and returns a fresh Result.
// Pages without text are skipped.
func (e *Extractor) Extract(pages []source.Page) *Result {
	e.tracker.Reset()
	res := NewResult()

	for _, page := range pages {
		if page.Err != nil {
			e.logger.Warn("Skipping page without text",
				zap.Int("page", page.Number),
				zap.Error(page.Err))
			continue
		}

		lines, halted := e.ProcessPage(page.Number, page.Text, res)
		if halted {
			e.logger.Debug("Holidays section ended, skipping rest of page",
				zap.Int("page", page.Number),
				zap.Int("line", lines))
		}
	}

	e.logger.Info("Extraction finished",
		zap.Int("pages", len(pages)),
		zap.Int("events", len(res.events)),
		zap.Int("holidays", len(res.holidays)))

	return res
}

// ProcessPage classifies the lines of one page until the holidays section
// ends. It returns the number of lines read and whether the page was cut short.
func (e *Extractor) ProcessPage(page int, text string, res *Result) (int, bool) {
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	if text == "" {
		lines = nil
	}

	for i, line := range lines {
		n := i + 1
		line = strings.TrimSuffix(line, "\r")
		kind := e.ProcessLine(line, res)

		if e.observer != nil {
			e.observer(page, n, line, kind, e.tracker.State())
		}
		if kind == LineSectionEnd {
			return n, true
		}
	}

	return len(lines), false
}

// ProcessLine classifies one line, recording any event or holiday in res.
// Section transitions take precedence over holiday extraction on the same line.
func (e *Extractor) ProcessLine(line string, res *Result) LineKind {
	kind := LineIgnored

	if ev, ok := e.matchEvent(line); ok {
		res.SetEvent(ev)
		kind = LineEvent
	}

	switch e.tracker.Observe(line) {
	case EnteredHolidays:
		e.logger.Debug("Entered holidays section", zap.String("line", line))
		return LineSectionStart
	case LeftHolidays:
		e.logger.Debug("Left holidays section", zap.String("line", line))
		return LineSectionEnd
	}

	if e.tracker.State() != InsideHolidays {
		return kind
	}

	h, ok := e.matchHoliday(line)
	if !ok || !res.SetHoliday(h) {
		return kind
	}
	return LineHoliday
}

// matchEvent records the first event marker present in a line that has a date
func (e *Extractor) matchEvent(line string) (Event, bool) {
	for _, marker := range e.opts.EventMarkers {
		if marker == "" || !strings.Contains(line, marker) {
			continue
		}

		w, ok := calendar.FindDate(line)
		if !ok {
			return Event{}, false
		}

		ev := Event{Name: marker, Written: w.Text}
		if d, err := w.Resolve(e.opts.StrictWeekday); err == nil {
			ev.Date = d
			ev.Valid = true
		} else {
			e.logger.Debug("Event date is not a calendar date",
				zap.String("event", marker),
				zap.String("date", w.Text),
				zap.Error(err))
		}
		return ev, true
	}

	return Event{}, false
}

// matchHoliday extracts the holiday on a line inside the holidays section.
// A range is expanded to every day it covers; otherwise each valid date on
// the line is kept.
func (e *Extractor) matchHoliday(line string) (Holiday, bool) {
	name := HolidayName(line)

	if rng, ok := calendar.FindRange(line); ok {
		start, err := rng.Start.Resolve(e.opts.StrictWeekday)
		if err != nil {
			e.logger.Debug("Skipping range with invalid start date",
				zap.String("holiday", name),
				zap.String("date", rng.Start.Text),
				zap.Error(err))
			return Holiday{}, false
		}

		end, err := rng.End.Resolve(e.opts.StrictWeekday)
		if err != nil {
			e.logger.Debug("Skipping range with invalid end date",
				zap.String("holiday", name),
				zap.String("date", rng.End.Text),
				zap.Error(err))
			return Holiday{}, false
		}

		if end.Before(start) {
			e.logger.Warn("Skipping reversed date range",
				zap.String("holiday", name),
				zap.String("start", rng.Start.Text),
				zap.String("end", rng.End.Text))
			return Holiday{}, false
		}

		return Holiday{Name: name, Dates: calendar.Expand(start, end)}, true
	}

	var dates []calendar.Date
	for _, w := range calendar.FindAllDates(line) {
		d, err := w.Resolve(e.opts.StrictWeekday)
		if err != nil {
			e.logger.Debug("Skipping invalid holiday date",
				zap.String("holiday", name),
				zap.String("date", w.Text),
				zap.Error(err))
			continue
		}
		dates = append(dates, d)
	}

	if len(dates) == 0 {
		return Holiday{}, false
	}
	return Holiday{Name: name, Dates: dates}, true
}
