// Package export renders extraction results for people and other programs.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/username/school-calendar/internal/extract"
)

// Format specifies the output format
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatICS  Format = "ics"
)

// ParseFormat converts a user-supplied name into a Format
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatICS:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format: %s", s)
	}
}

// Options tune the renderers. The zero value is usable.
type Options struct {
	// ProductID is written as the iCalendar PRODID
	ProductID string
	// Now stamps iCalendar events; defaults to time.Now
	Now func() time.Time
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

func (o Options) productID() string {
	if o.ProductID != "" {
		return o.ProductID
	}
	return "-//school-calendar//school-calendar//EN"
}

// Write writes the result in the specified format
func Write(w io.Writer, res *extract.Result, format Format, opts Options) error {
	switch format {
	case FormatText:
		return writeText(w, res)
	case FormatJSON:
		return writeJSON(w, res)
	case FormatICS:
		return writeICS(w, res, opts)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeText prints one line per event and per holiday
func writeText(w io.Writer, res *extract.Result) error {
	for _, ev := range res.EventList() {
		if _, err := fmt.Fprintf(w, "Event: %s, Date: %s\n", ev.Name, ev.Written); err != nil {
			return fmt.Errorf("failed to write event: %w", err)
		}
	}

	for _, h := range res.HolidayList() {
		dates := h.Formatted()
		quoted := make([]string, len(dates))
		for i, d := range dates {
			quoted[i] = fmt.Sprintf("%q", d)
		}
		if _, err := fmt.Fprintf(w, "Holiday: %s, Dates: [%s]\n", h.Name, strings.Join(quoted, ", ")); err != nil {
			return fmt.Errorf("failed to write holiday: %w", err)
		}
	}
	return nil
}

type jsonResult struct {
	Events   map[string]string   `json:"events"`
	Holidays map[string][]string `json:"holidays"`
}

// writeJSON outputs the Events and Holidays maps
func writeJSON(w io.Writer, res *extract.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(jsonResult{
		Events:   res.Events(),
		Holidays: res.Holidays(),
	})
}
