// Package schoolyear answers day-level questions about an extracted school
// calendar: whether a date is a school day, and per-month day counts.
package schoolyear

import (
	"errors"
	"fmt"
	"time"

	"github.com/username/school-calendar/internal/calendar"
	"github.com/username/school-calendar/internal/extract"
	"github.com/username/school-calendar/pkg/dateutil"
	"go.uber.org/zap"
)

var (
	// ErrNoTerm means the first or last day of school was not found
	ErrNoTerm = errors.New("school year has no valid begin and end dates")

	// ErrInvertedTerm means school ends before it begins
	ErrInvertedTerm = errors.New("school year ends before it begins")
)

// DayType represents the type of day
type DayType int

const (
	DayTypeSchoolDay DayType = iota + 1
	DayTypeWeekend
	DayTypeHoliday
	DayTypeOutOfTerm
)

func (t DayType) String() string {
	switch t {
	case DayTypeSchoolDay:
		return "school day"
	case DayTypeWeekend:
		return "weekend"
	case DayTypeHoliday:
		return "holiday"
	case DayTypeOutOfTerm:
		return "out of term"
	default:
		return "unknown"
	}
}

// DayInfo represents information about a specific day
type DayInfo struct {
	Date        calendar.Date
	Type        DayType
	IsSchoolDay bool
	Note        string // holiday name, also set for holidays falling on a weekend
}

// MonthInfo represents school calendar information for a month
type MonthInfo struct {
	Year       int
	Month      time.Month
	SchoolDays int
	Weekends   int
	Holidays   int
	OutOfTerm  int
	Days       []DayInfo
}

// Calendar interface for checking school days
type Calendar interface {
	// IsSchoolDay checks if the given date is a day of instruction
	IsSchoolDay(date calendar.Date) (bool, error)

	// GetMonthInfo returns calendar info for the entire month
	GetMonthInfo(year int, month time.Month) (*MonthInfo, error)

	// GetDayInfo returns detailed info for a specific day
	GetDayInfo(date calendar.Date) (*DayInfo, error)
}

// Options names the events that bound the school year
type Options struct {
	BeginEvent string
	EndEvent   string
}

// DefaultOptions uses the default event markers
func DefaultOptions() Options {
	return Options{
		BeginEvent: extract.DefaultEventMarkers[0],
		EndEvent:   extract.DefaultEventMarkers[1],
	}
}

// SchoolYear implements Calendar over an extraction result
type SchoolYear struct {
	begins   calendar.Date
	ends     calendar.Date
	holidays map[calendar.Date]string
	logger   *zap.Logger
}

var _ Calendar = (*SchoolYear)(nil)

// New builds a SchoolYear from the events and holidays in res
func New(res *extract.Result, opts Options, logger *zap.Logger) (*SchoolYear, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	begins, err := termDate(res, opts.BeginEvent)
	if err != nil {
		return nil, err
	}
	ends, err := termDate(res, opts.EndEvent)
	if err != nil {
		return nil, err
	}
	if ends.Before(begins) {
		return nil, fmt.Errorf("%w: %s is after %s", ErrInvertedTerm, begins, ends)
	}

	sy := &SchoolYear{
		begins:   begins,
		ends:     ends,
		holidays: make(map[calendar.Date]string),
		logger:   logger,
	}

	// The first holiday listed for a date names it
	for _, h := range res.HolidayList() {
		for _, d := range h.Dates {
			if other, ok := sy.holidays[d]; ok {
				logger.Debug("Overlapping holidays",
					zap.String("date", d.String()),
					zap.String("kept", other),
					zap.String("ignored", h.Name))
				continue
			}
			sy.holidays[d] = h.Name
		}
	}

	logger.Debug("School year built",
		zap.String("begins", begins.String()),
		zap.String("ends", ends.String()),
		zap.Int("holiday_days", len(sy.holidays)))

	return sy, nil
}

func termDate(res *extract.Result, name string) (calendar.Date, error) {
	ev, ok := res.Event(name)
	if !ok {
		return calendar.Date{}, fmt.Errorf("%w: event %q not found", ErrNoTerm, name)
	}
	if !ev.Valid {
		return calendar.Date{}, fmt.Errorf("%w: event %q has invalid date %q", ErrNoTerm, name, ev.Written)
	}
	return ev.Date, nil
}

// Begins returns the first day of school
func (sy *SchoolYear) Begins() calendar.Date { return sy.begins }

// Ends returns the last day of school
func (sy *SchoolYear) Ends() calendar.Date { return sy.ends }

// IsSchoolDay checks if the given date is a day of instruction
func (sy *SchoolYear) IsSchoolDay(date calendar.Date) (bool, error) {
	info, err := sy.GetDayInfo(date)
	if err != nil {
		return false, err
	}
	return info.IsSchoolDay, nil
}

// GetDayInfo returns detailed info for a specific day
func (sy *SchoolYear) GetDayInfo(date calendar.Date) (*DayInfo, error) {
	if !date.IsValid() {
		return nil, fmt.Errorf("%w: %s", calendar.ErrInvalidDate, date)
	}

	info := &DayInfo{Date: date, Note: sy.holidays[date]}

	switch {
	case date.Before(sy.begins) || date.After(sy.ends):
		info.Type = DayTypeOutOfTerm
	case dateutil.IsWeekend(date.Time()):
		info.Type = DayTypeWeekend
	case info.Note != "":
		info.Type = DayTypeHoliday
	default:
		info.Type = DayTypeSchoolDay
		info.IsSchoolDay = true
	}

	return info, nil
}

// GetMonthInfo returns calendar info for the entire month
func (sy *SchoolYear) GetMonthInfo(year int, month time.Month) (*MonthInfo, error) {
	first, err := calendar.NewDate(year, month, 1)
	if err != nil {
		return nil, err
	}

	monthInfo := &MonthInfo{Year: year, Month: month}
	for d := first; d.Month == month; d = d.Next() {
		info, err := sy.GetDayInfo(d)
		if err != nil {
			return nil, err
		}

		switch info.Type {
		case DayTypeSchoolDay:
			monthInfo.SchoolDays++
		case DayTypeWeekend:
			monthInfo.Weekends++
		case DayTypeHoliday:
			monthInfo.Holidays++
		case DayTypeOutOfTerm:
			monthInfo.OutOfTerm++
		}
		monthInfo.Days = append(monthInfo.Days, *info)
	}

	return monthInfo, nil
}

// Months returns one MonthInfo per month touched by the school year
func (sy *SchoolYear) Months() ([]MonthInfo, error) {
	var months []MonthInfo
	year, month := sy.begins.Year, sy.begins.Month
	for {
		info, err := sy.GetMonthInfo(year, month)
		if err != nil {
			return nil, err
		}
		months = append(months, *info)

		if year == sy.ends.Year && month == sy.ends.Month {
			return months, nil
		}
		if month == time.December {
			year, month = year+1, time.January
		} else {
			month++
		}
	}
}

// SchoolDays counts the days of instruction between begin and end inclusive
func (sy *SchoolYear) SchoolDays() int {
	n := 0
	for _, d := range calendar.Expand(sy.begins, sy.ends) {
		if info, err := sy.GetDayInfo(d); err == nil && info.IsSchoolDay {
			n++
		}
	}
	return n
}
