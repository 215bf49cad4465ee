package extract

import "testing"

func TestSectionTracker(t *testing.T) {
	tracker := NewSectionTracker(DefaultHolidayHeader, DefaultSectionEndMarkers)

	steps := []struct {
		line      string
		wantTrans Transition
		wantState SectionState
	}{
		{"intro", NoTransition, Outside},
		{"Beginning and Ending of Terms", NoTransition, Outside},
		{"Holidays and Other Days Schools Closed for Student Attendance", EnteredHolidays, InsideHolidays},
		{"h1", NoTransition, InsideHolidays},
		{"Holidays and Other Days Schools Closed for Student Attendance (continued)", EnteredHolidays, InsideHolidays},
		{"Elementary School SEP Conference Schedule", LeftHolidays, Outside},
		{"h2", NoTransition, Outside},
	}

	for i, step := range steps {
		if got := tracker.Observe(step.line); got != step.wantTrans {
			t.Errorf("step %d Observe(%q) = %v, want %v", i, step.line, got, step.wantTrans)
		}
		if got := tracker.State(); got != step.wantState {
			t.Errorf("step %d state = %v, want %v", i, got, step.wantState)
		}
	}

	tracker.Observe(DefaultHolidayHeader)
	tracker.Reset()
	if tracker.State() != Outside {
		t.Errorf("Reset() left state %v", tracker.State())
	}
}

func TestSectionTracker_EachEndMarker(t *testing.T) {
	for _, marker := range DefaultSectionEndMarkers {
		t.Run(marker, func(t *testing.T) {
			tracker := NewSectionTracker(DefaultHolidayHeader, DefaultSectionEndMarkers)
			tracker.Observe(DefaultHolidayHeader)

			if got := tracker.Observe("  " + marker + "  "); got != LeftHolidays {
				t.Errorf("Observe(%q) = %v, want LeftHolidays", marker, got)
			}
		})
	}
}

func TestSectionState_String(t *testing.T) {
	if Outside.String() != "outside" || InsideHolidays.String() != "inside-holidays" {
		t.Errorf("unexpected names %q, %q", Outside, InsideHolidays)
	}
}
