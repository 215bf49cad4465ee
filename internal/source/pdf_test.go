package source

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/ledongthuc/pdf"
)

func TestJoinRow(t *testing.T) {
	run := func(s string, x, w float64) pdf.Text {
		return pdf.Text{Font: "Helvetica", FontSize: 10, X: x, Y: 700, W: w, S: s}
	}

	tests := []struct {
		name string
		runs pdf.TextHorizontal
		want string
	}{
		{"Empty", nil, ""},
		{"Adjacent runs", pdf.TextHorizontal{run("Lab", 0, 15), run("or", 15, 10)}, "Labor"},
		{"Out of order", pdf.TextHorizontal{run("or", 15, 10), run("Lab", 0, 15)}, "Labor"},
		{"Wide gap becomes a space", pdf.TextHorizontal{run("Labor", 0, 25), run("Day", 30, 15)}, "Labor Day"},
		{"Kerning gap is ignored", pdf.TextHorizontal{run("Labor", 0, 25), run("Day", 26, 15)}, "LaborDay"},
		{"Explicit space is not doubled", pdf.TextHorizontal{run("Labor ", 0, 30), run("Day", 40, 15)}, "Labor Day"},
		{
			"Scrambled row",
			pdf.TextHorizontal{run("2024", 120, 20), run("Labor Day.", 0, 50), run("Monday,", 60, 35), run("September 2,", 100, 0)},
			"Labor Day. Monday, September 2, 2024",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := joinRow(tt.runs); got != tt.want {
				t.Errorf("joinRow() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPDF_Pages(t *testing.T) {
	data, err := os.ReadFile("testdata/calendar.pdf")
	if err != nil {
		t.Fatalf("failed to read fixture: %v", err)
	}

	pages, err := NewPDF(data).Pages()
	if err != nil {
		t.Fatalf("Pages() error = %v", err)
	}
	if len(pages) != 2 {
		t.Fatalf("Pages() returned %d pages, want 2", len(pages))
	}

	first := pages[0]
	if first.Number != 1 || first.Err != nil {
		t.Fatalf("page 1 = %+v", first)
	}

	wantLines := []string{
		"School Begins Monday, August 26, 2024",
		"Holidays and Other Days Schools Closed for Student Attendance",
		"Labor Day. Monday, September 2, 2024",
	}
	prev := -1
	for _, line := range wantLines {
		idx := strings.Index(first.Text, line)
		if idx < 0 {
			t.Errorf("page 1 missing %q:\n%s", line, first.Text)
			continue
		}
		if idx < prev {
			t.Errorf("line %q is out of order:\n%s", line, first.Text)
		}
		prev = idx
	}

	if !errors.Is(pages[1].Err, ErrNoPageText) {
		t.Errorf("page 2 error = %v, want ErrNoPageText", pages[1].Err)
	}
}
