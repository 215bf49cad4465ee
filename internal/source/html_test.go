package source

import (
	"errors"
	"testing"
)

func TestHTML_Pages(t *testing.T) {
	input := `<html>
<head><title>Calendar</title><style>p { color: red; }</style></head>
<body>
  <h1>District Calendar 2024-2025</h1>
  <p><b>School Begins</b> Monday,
     August 26, 2024</p>
  <script>var ignored = "Friday, May 23, 2025";</script>
  <hr>
  <h2>Holidays and Other Days Schools Closed for Student Attendance</h2>
  <table>
    <tr><td>Labor Day.</td><td>Monday, September 2, 2024</td></tr>
    <tr><td>Thanksgiving Break.</td><td>Thursday, November 28, 2024 through Friday, November 29, 2024</td></tr>
  </table>
  <p>Line one<br>Line two</p>
</body>
</html>`

	pages, err := NewHTML([]byte(input)).Pages()
	if err != nil {
		t.Fatalf("Pages() error = %v", err)
	}

	if len(pages) != 2 {
		t.Fatalf("Pages() returned %d pages, want 2", len(pages))
	}

	wantFirst := "District Calendar 2024-2025\nSchool Begins Monday, August 26, 2024"
	if pages[0].Text != wantFirst {
		t.Errorf("page 1 = %q, want %q", pages[0].Text, wantFirst)
	}

	wantSecond := "Holidays and Other Days Schools Closed for Student Attendance\n" +
		"Labor Day. Monday, September 2, 2024\n" +
		"Thanksgiving Break. Thursday, November 28, 2024 through Friday, November 29, 2024\n" +
		"Line one\n" +
		"Line two"
	if pages[1].Text != wantSecond {
		t.Errorf("page 2 = %q, want %q", pages[1].Text, wantSecond)
	}
}

func TestHTML_EmptyPages(t *testing.T) {
	pages, err := NewHTML([]byte("<body><p>first</p><hr><hr><p>third</p><hr></body>")).Pages()
	if err != nil {
		t.Fatalf("Pages() error = %v", err)
	}

	if len(pages) != 3 {
		t.Fatalf("Pages() returned %d pages, want 3", len(pages))
	}
	if pages[0].Text != "first" || pages[2].Text != "third" {
		t.Errorf("pages = %+v", pages)
	}
	if !errors.Is(pages[1].Err, ErrNoPageText) {
		t.Errorf("page 2 Err = %v, want ErrNoPageText", pages[1].Err)
	}
}

func TestCollapseSpace(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"   ", " "},
		{"a  b", "a b"},
		{" a\n  b ", " a b "},
		{"Monday,\n     August", "Monday, August"},
	}

	for _, tt := range tests {
		if got := collapseSpace(tt.input); got != tt.want {
			t.Errorf("collapseSpace(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
