package export

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/username/school-calendar/internal/calendar"
	"github.com/username/school-calendar/internal/extract"
)

func sampleResult(t *testing.T) *extract.Result {
	t.Helper()

	res := extract.NewResult()
	res.SetEvent(extract.Event{
		Name:    "School Begins",
		Written: "Monday, August 26, 2024",
		Date:    calendar.Date{Year: 2024, Month: time.August, Day: 26},
		Valid:   true,
	})
	res.SetEvent(extract.Event{
		Name:    "School Ends",
		Written: "Friday, June 31, 2025",
	})
	res.SetHoliday(extract.Holiday{
		Name:  "Thanksgiving",
		Dates: calendar.Expand(calendar.Date{Year: 2024, Month: time.November, Day: 28}, calendar.Date{Year: 2024, Month: time.November, Day: 29}),
	})
	res.SetHoliday(extract.Holiday{
		Name: "Conferences",
		Dates: []calendar.Date{
			{Year: 2024, Month: time.October, Day: 17},
			{Year: 2024, Month: time.October, Day: 18},
			{Year: 2025, Month: time.March, Day: 27},
		},
	})
	return res
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"text", FormatText, false},
		{"JSON", FormatJSON, false},
		{" ics ", FormatICS, false},
		{"xml", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestWrite_Text(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sampleResult(t), FormatText, Options{}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	want := `Event: School Begins, Date: Monday, August 26, 2024
Event: School Ends, Date: Friday, June 31, 2025
Holiday: Thanksgiving, Dates: ["November 28, 2024", "November 29, 2024"]
Holiday: Conferences, Dates: ["October 17, 2024", "October 18, 2024", "March 27, 2025"]
`
	if buf.String() != want {
		t.Errorf("text output:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sampleResult(t), FormatJSON, Options{}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	var got struct {
		Events   map[string]string   `json:"events"`
		Holidays map[string][]string `json:"holidays"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}

	wantEvents := map[string]string{
		"School Begins": "Monday, August 26, 2024",
		"School Ends":   "Friday, June 31, 2025",
	}
	if !reflect.DeepEqual(got.Events, wantEvents) {
		t.Errorf("events = %v, want %v", got.Events, wantEvents)
	}
	if !reflect.DeepEqual(got.Holidays["Thanksgiving"], []string{"November 28, 2024", "November 29, 2024"}) {
		t.Errorf("Thanksgiving = %v", got.Holidays["Thanksgiving"])
	}
}

func TestWrite_EmptyJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, extract.NewResult(), FormatJSON, Options{}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if !strings.Contains(buf.String(), `"events": {}`) || !strings.Contains(buf.String(), `"holidays": {}`) {
		t.Errorf("empty result should render empty objects, got %s", buf.String())
	}
}

func TestWrite_ICS(t *testing.T) {
	stamp := time.Date(2024, time.July, 1, 12, 0, 0, 0, time.UTC)
	var buf bytes.Buffer
	err := Write(&buf, sampleResult(t), FormatICS, Options{
		ProductID: "-//test//EN",
		Now:       func() time.Time { return stamp },
	})
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	out := buf.String()

	// School Begins + Thanksgiving + two Conference runs; School Ends is invalid
	if n := strings.Count(out, "BEGIN:VEVENT"); n != 4 {
		t.Errorf("VEVENT count = %d, want 4\n%s", n, out)
	}

	for _, want := range []string{
		"PRODID:-//test//EN",
		"METHOD:PUBLISH",
		"UID:thanksgiving-20241128@school-calendar",
		"DTSTART;VALUE=DATE:20241128",
		"DTEND;VALUE=DATE:20241130",
		"UID:conferences-20241017@school-calendar",
		"DTEND;VALUE=DATE:20241019",
		"UID:conferences-20250327@school-calendar",
		"UID:school-begins-20240826@school-calendar",
		"DTSTAMP:20240701T120000Z",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("calendar missing %q\n%s", want, out)
		}
	}
	if strings.Contains(out, "School Ends") {
		t.Error("event with an invalid date should not be exported")
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	if err := Write(&bytes.Buffer{}, extract.NewResult(), Format("xml"), Options{}); err == nil {
		t.Error("Write() with an unknown format should fail")
	}
}

func TestSpans(t *testing.T) {
	d := func(m time.Month, day int) calendar.Date {
		return calendar.Date{Year: 2024, Month: m, Day: day}
	}

	tests := []struct {
		name  string
		dates []calendar.Date
		want  []span
	}{
		{"Empty", nil, nil},
		{"Single", []calendar.Date{d(time.May, 27)}, []span{{d(time.May, 27), d(time.May, 27)}}},
		{"Across month", []calendar.Date{d(time.April, 30), d(time.May, 1)}, []span{{d(time.April, 30), d(time.May, 1)}}},
		{"Gap", []calendar.Date{d(time.May, 1), d(time.May, 3)}, []span{{d(time.May, 1), d(time.May, 1)}, {d(time.May, 3), d(time.May, 3)}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := spans(tt.dates); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("spans() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEventUID(t *testing.T) {
	start := calendar.Date{Year: 2025, Month: time.January, Day: 20}
	tests := []struct {
		name string
		want string
	}{
		{"Dr. Martin Luther King Jr. Day", "dr-martin-luther-king-jr-day-20250120@school-calendar"},
		{"  Winter   Recess ", "winter-recess-20250120@school-calendar"},
		{"---", "entry-20250120@school-calendar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := eventUID(tt.name, start); got != tt.want {
				t.Errorf("eventUID(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}
