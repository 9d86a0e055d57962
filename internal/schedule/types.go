package schedule

import (
	"fmt"
	"time"

	"actionsense/pkg/datemath"
)

// Clock is a wall-clock time of day.
type Clock struct {
	Hour   int
	Minute int
}

// ParseClock reads "HH:MM".
func ParseClock(s string) (Clock, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return Clock{}, fmt.Errorf("invalid clock %q: %w", s, err)
	}
	return Clock{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// Add returns c shifted by d, wrapping around midnight.
func (c Clock) Add(d time.Duration) Clock {
	mins := (c.Hour*60 + c.Minute + int(d/time.Minute)) % (24 * 60)
	if mins < 0 {
		mins += 24 * 60
	}
	return Clock{Hour: mins / 60, Minute: mins % 60}
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Valid reports whether c is a real time of day.
func (c Clock) Valid() bool {
	return c.Hour >= 0 && c.Hour < 24 && c.Minute >= 0 && c.Minute < 60
}

// EventDraft is a calendar event read out of free text.
type EventDraft struct {
	Title        string
	Date         datemath.Date
	DateResolved bool
	DateRule     datemath.Rule
	StartTime    Clock
	EndTime      Clock
	Duration     time.Duration
	TimeExplicit bool // false when StartTime is the configured default
	Location     string
	Participants []string
}

// Event is an entry already on the calendar.
type Event struct {
	ID       string
	Title    string
	Start    time.Time
	End      time.Time
	AllDay   bool
	Location string
	Link     string
}

// --- UseCase Inputs ---

// ParseInput is free text such as "내일 오전 10시에 회의실 A에서 디자인 리뷰".
// A zero Reference means now.
type ParseInput struct {
	Text      string
	Reference time.Time
}

type ExportInput struct {
	Draft       EventDraft
	Description string
}

type ListEventsInput struct {
	Date datemath.Date
}

// --- UseCase Outputs ---

type ParseOutput struct {
	Draft EventDraft
}

type ExportOutput struct {
	EventID string
	Link    string
	Start   time.Time
	End     time.Time
}

type ListEventsOutput struct {
	Events []Event
}
