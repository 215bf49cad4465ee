package calendar

import "testing"

func TestFindRange(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantOK    bool
		wantLabel string
		wantStart string
		wantEnd   string
	}{
		{
			name:      "Named range",
			line:      "Thanksgiving Break. Thursday, November 28, 2024 through Friday, November 29, 2024",
			wantOK:    true,
			wantLabel: "Thanksgiving Break. ",
			wantStart: "Thursday, November 28, 2024",
			wantEnd:   "Friday, November 29, 2024",
		},
		{
			name:      "Range across year",
			line:      "Winter Recess Monday, December 23, 2024 through Friday, January 3, 2025 (inclusive)",
			wantOK:    true,
			wantLabel: "Winter Recess ",
			wantStart: "Monday, December 23, 2024",
			wantEnd:   "Friday, January 3, 2025",
		},
		{
			name:      "No label",
			line:      "Monday, March 24, 2025 through Friday, March 28, 2025",
			wantOK:    true,
			wantLabel: "",
			wantStart: "Monday, March 24, 2025",
			wantEnd:   "Friday, March 28, 2025",
		},
		{
			name:      "Label is shortest prefix",
			line:      "Break Friday, May 23, 2025 and Monday, May 26, 2025 through Friday, June 05, 2025",
			wantOK:    true,
			wantLabel: "Break Friday, May 23, 2025 and ",
			wantStart: "Monday, May 26, 2025",
			wantEnd:   "Friday, June 05, 2025",
		},
		{
			name:   "Single date",
			line:   "Labor Day. Monday, September 2, 2024",
			wantOK: false,
		},
		{
			name:   "Two dates without through",
			line:   "Monday, October 14, 2024 and Thursday, October 17, 2024",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FindRange(tt.line)

			if ok != tt.wantOK {
				t.Fatalf("FindRange(%q) ok = %v, want %v", tt.line, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got.Label != tt.wantLabel {
				t.Errorf("Label = %q, want %q", got.Label, tt.wantLabel)
			}
			if got.Start.Text != tt.wantStart {
				t.Errorf("Start = %q, want %q", got.Start.Text, tt.wantStart)
			}
			if got.End.Text != tt.wantEnd {
				t.Errorf("End = %q, want %q", got.End.Text, tt.wantEnd)
			}
			if tt.line[got.End.Start:got.End.End] != got.End.Text {
				t.Errorf("end offsets do not cover %q", got.End.Text)
			}
		})
	}
}
