package datemath

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the YYYY-MM-DD layout used for resolved dates.
const DateLayout = "2006-01-02"

// Date is a calendar date with no time-of-day component.
// The zero value means "no date".
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the date y-m-d and reports whether it exists in the calendar.
func NewDate(year int, month time.Month, day int) (Date, bool) {
	if month < time.January || month > time.December {
		return Date{}, false
	}
	if day < 1 || day > daysIn(year, month) {
		return Date{}, false
	}
	return Date{Year: year, Month: month, Day: day}, true
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// IsZero reports whether d is the zero date.
func (d Date) IsZero() bool {
	return d == (Date{})
}

// String formats d as YYYY-MM-DD, or "" for the zero date.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// In returns midnight of d in loc.
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// At returns d at hour:minute in loc.
func (d Date) At(hour, minute int, loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, hour, minute, 0, 0, loc)
}

// civil anchors the date in UTC so day arithmetic never crosses a DST gap.
func (d Date) civil() time.Time {
	return d.In(time.UTC)
}

// AddDays returns d shifted by n days.
func (d Date) AddDays(n int) Date {
	return DateOf(d.civil().AddDate(0, 0, n))
}

// Weekday returns the day of the week of d.
func (d Date) Weekday() time.Weekday {
	return d.civil().Weekday()
}

// Before reports whether d is strictly earlier than o.
func (d Date) Before(o Date) bool {
	return d.civil().Before(o.civil())
}

// After reports whether d is strictly later than o.
func (d Date) After(o Date) bool {
	return d.civil().After(o.civil())
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Empty input yields the zero date.
func (d *Date) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Rule names the rule category that produced a resolution.
type Rule string

const (
	RuleNone           Rule = ""
	RuleDayOffset      Rule = "day_offset"
	RuleEndOfWeek      Rule = "end_of_week"
	RuleEndOfMonth     Rule = "end_of_month"
	RuleWeekWeekday    Rule = "week_weekday"
	RuleWeekday        Rule = "weekday"
	RuleFullDate       Rule = "full_date"
	RuleMonthDay       Rule = "month_day"
	RuleKoreanMonthDay Rule = "korean_month_day"
)

// Outcome is the result of a resolution: either a resolved Date or Unresolved.
type Outcome struct {
	date     Date
	rule     Rule
	resolved bool
}

// Unresolved is the outcome for input without a recognizable date expression.
var Unresolved = Outcome{}

func resolvedAs(d Date, rule Rule) Outcome {
	return Outcome{date: d, rule: rule, resolved: true}
}

// Resolved reports whether a date was determined.
func (o Outcome) Resolved() bool {
	return o.resolved
}

// Date returns the resolved date and true, or the zero date and false.
func (o Outcome) Date() (Date, bool) {
	return o.date, o.resolved
}

// Rule returns the rule category that matched, or RuleNone.
func (o Outcome) Rule() Rule {
	return o.rule
}

// String returns the resolved date as YYYY-MM-DD, or "" when unresolved.
func (o Outcome) String() string {
	if !o.resolved {
		return ""
	}
	return o.date.String()
}

// ParseReference reads a reference instant given as YYYY-MM-DD (noon in loc)
// or RFC3339. An empty string yields the zero time.
func ParseReference(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if d, err := ParseDate(s); err == nil {
		return d.At(12, 0, loc), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("reference %q: want %s or RFC3339", s, DateLayout)
	}
	return t, nil
}
