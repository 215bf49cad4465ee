package extract

import "strings"

// SectionState tells whether the scan cursor is inside the holidays section
type SectionState int

const (
	Outside SectionState = iota
	InsideHolidays
)

func (s SectionState) String() string {
	switch s {
	case Outside:
		return "outside"
	case InsideHolidays:
		return "inside-holidays"
	default:
		return "unknown"
	}
}

// Transition is the effect a line had on the section state
type Transition int

const (
	NoTransition Transition = iota
	EnteredHolidays
	LeftHolidays
)

// SectionTracker is a two-state machine over the lines of a document
type SectionTracker struct {
	header     string
	endMarkers []string
	state      SectionState
}

// NewSectionTracker creates a tracker that enters the holidays section on a
// line containing header and leaves it on a line containing any end marker.
func NewSectionTracker(header string, endMarkers []string) *SectionTracker {
	return &SectionTracker{
		header:     header,
		endMarkers: endMarkers,
		state:      Outside,
	}
}

// Observe feeds one line to the tracker and reports the transition it caused
func (t *SectionTracker) Observe(line string) Transition {
	if t.header != "" && strings.Contains(line, t.header) {
		t.state = InsideHolidays
		return EnteredHolidays
	}

	if t.state != InsideHolidays {
		return NoTransition
	}

	for _, marker := range t.endMarkers {
		if marker != "" && strings.Contains(line, marker) {
			t.state = Outside
			return LeftHolidays
		}
	}

	return NoTransition
}

// State returns the current section state
func (t *SectionTracker) State() SectionState {
	return t.state
}

// Reset puts the tracker back in its initial state
func (t *SectionTracker) Reset() {
	t.state = Outside
}
