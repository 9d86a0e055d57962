package datemath

import (
	"fmt"
	"time"
)

// Rule set versions.
const (
	RuleSetV1 = "v1"
	RuleSetV2 = "v2"
)

// WeekConvention selects how "week qualifier + weekday" phrases are resolved.
type WeekConvention int

const (
	// MondayOrigin anchors on the Monday of the reference week and adds
	// 7*weeks plus the Monday-based weekday index.
	MondayOrigin WeekConvention = iota
	// ForwardScan shifts the reference date by 7*weeks and scans forward to
	// the weekday, allowing the shifted day itself.
	ForwardScan
)

// DayOffset maps a keyword pattern to a fixed number of days from the reference date.
type DayOffset struct {
	Pattern string
	Days    int
}

// Qualifier maps a week or month qualifier pattern to an offset in that unit.
type Qualifier struct {
	Pattern string
	Offset  int
}

// WeekdayName maps a literal weekday name to its weekday.
type WeekdayName struct {
	Name    string
	Weekday time.Weekday
}

// RuleSet is the keyword and pattern table a Resolver is built from.
// Pattern fields are regular expression fragments; Name, suffix and
// terminator fields are literals.
type RuleSet struct {
	Version    string
	Convention WeekConvention

	DayOffsets      []DayOffset
	EndOfWeek       []string
	EndOfMonth      []string
	WeekQualifiers  []Qualifier
	MonthQualifiers []Qualifier

	Weekdays      []WeekdayName
	WeekdaySuffix string
	// WeekdayTerminators may directly follow a one-syllable weekday after a
	// week qualifier ("다음주 금까지"). Any non-Hangul rune or end of text is
	// accepted as well.
	WeekdayTerminators []string

	PastMarkers []string
	ByMarkers   []string
}

// DefaultRuleSet returns the canonical rule table.
func DefaultRuleSet() RuleSet {
	return ruleSetV2()
}

// RuleSetFor returns the rule table for a version string. Empty selects the default.
func RuleSetFor(version string) (RuleSet, error) {
	switch version {
	case "", RuleSetV2:
		return ruleSetV2(), nil
	case RuleSetV1:
		return ruleSetV1(), nil
	default:
		return RuleSet{}, fmt.Errorf("unknown rule set version %q", version)
	}
}

func ruleSetV2() RuleSet {
	return RuleSet{
		Version:    RuleSetV2,
		Convention: MondayOrigin,
		DayOffsets: []DayOffset{
			{Pattern: `오늘|(?i:\bEOD\b)`, Days: 0},
			{Pattern: `내일`, Days: 1},
			{Pattern: `모레`, Days: 2},
			{Pattern: `글피`, Days: 3},
		},
		EndOfWeek:  []string{`이번\s*주\s*말`, `(?i:\bEOW\b)`, `주말\s*까지`},
		EndOfMonth: []string{`월말`, `말일`},
		WeekQualifiers: []Qualifier{
			{Pattern: `다다다음\s*주`, Offset: 3},
			{Pattern: `다다음\s*주`, Offset: 2},
			{Pattern: `다음\s*주`, Offset: 1},
			{Pattern: `내주`, Offset: 1},
			{Pattern: `차주`, Offset: 1},
			{Pattern: `이번\s*주`, Offset: 0},
		},
		MonthQualifiers: []Qualifier{
			{Pattern: `다다다음\s*달`, Offset: 3},
			{Pattern: `다다음\s*달`, Offset: 2},
			{Pattern: `다음\s*달`, Offset: 1},
			{Pattern: `이번\s*달`, Offset: 0},
		},
		Weekdays: []WeekdayName{
			{Name: "월", Weekday: time.Monday},
			{Name: "화", Weekday: time.Tuesday},
			{Name: "수", Weekday: time.Wednesday},
			{Name: "목", Weekday: time.Thursday},
			{Name: "금", Weekday: time.Friday},
			{Name: "토", Weekday: time.Saturday},
			{Name: "일", Weekday: time.Sunday},
		},
		WeekdaySuffix:      "요일",
		WeekdayTerminators: []string{"까지", "에", "부터", "은", "는", "엔", "날", "중"},
		PastMarkers:        []string{`지난`, `지난주`, `지난달`, `작년`, `전년`},
		ByMarkers:          []string{`(?i:\bby\b)`, `까지`},
	}
}

// ruleSetV1 keeps the older forward-scan week arithmetic; every other table
// is shared with v2.
func ruleSetV1() RuleSet {
	rs := ruleSetV2()
	rs.Version = RuleSetV1
	rs.Convention = ForwardScan
	return rs
}
