package datemath

import (
	"testing"
	"time"
)

func TestMatchersInIsolation(t *testing.T) {
	r, err := NewResolverIn(time.UTC, DefaultRuleSet())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	today := Date{Year: 2025, Month: time.November, Day: 13}

	tests := []struct {
		name  string
		match func(input) (Date, bool)
		text  string
		past  bool
		want  string
		found bool
	}{
		{name: "day offset", match: r.matchDayOffset, text: "글피", want: "2025-11-16", found: true},
		{name: "day offset miss", match: r.matchDayOffset, text: "다음주"},
		{name: "end of week", match: r.matchEndOfWeek, text: "EOW", want: "2025-11-15", found: true},
		{name: "end of month", match: r.matchEndOfMonth, text: "월말", want: "2025-11-30", found: true},
		{name: "week weekday", match: r.matchWeekWeekday, text: "다음주 화", want: "2025-11-18", found: true},
		{name: "week weekday ignores bare", match: r.matchWeekWeekday, text: "화요일"},
		{name: "weekday", match: r.matchWeekday, text: "일요일", want: "2025-11-16", found: true},
		{name: "full date", match: r.matchFullDate, text: "2025-03-02", want: "2026-03-02", found: true},
		{name: "full date past marker", match: r.matchFullDate, text: "2025-03-02", past: true, want: "2025-03-02", found: true},
		{name: "month day", match: r.matchMonthDay, text: "7/4", want: "2026-07-04", found: true},
		{name: "month day invalid", match: r.matchMonthDay, text: "13/40"},
		{name: "korean month day", match: r.matchKoreanMonthDay, text: "12월 1일", want: "2025-12-01", found: true},
		{name: "korean day alone", match: r.matchKoreanMonthDay, text: "1일"},
		{name: "korean month after next", match: r.matchKoreanMonthDay, text: "다다음달 3일", want: "2026-01-03", found: true},
		{name: "korean stacked qualifier", match: r.matchKoreanMonthDay, text: "다다다다음달 3일"},
		{name: "week weekday stacked qualifier", match: r.matchWeekWeekday, text: "다다다다음주 금"},
		{name: "month day skips invalid", match: r.matchMonthDay, text: "2.30 12/24", want: "2025-12-24", found: true},
		{name: "full date skips invalid", match: r.matchFullDate, text: "2025-02-30 2026-01-02", want: "2026-01-02", found: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.match(input{text: tt.text, today: today, hasPastMarker: tt.past})
			if ok != tt.found {
				t.Fatalf("found = %v, want %v", ok, tt.found)
			}
			if ok && got.String() != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestEnsureFuture(t *testing.T) {
	base := Date{Year: 2025, Month: time.November, Day: 13}

	if got := ensureFuture(base, base); got != base {
		t.Errorf("same day moved to %s", got)
	}
	if got := ensureFuture(base, Date{Year: 2025, Month: time.November, Day: 12}); got.String() != "2026-11-12" {
		t.Errorf("past date rolled to %s", got)
	}
	if got := ensureFuture(base, Date{Year: 2026, Month: time.January, Day: 1}); got.String() != "2026-01-01" {
		t.Errorf("future date moved to %s", got)
	}
}

func TestDate(t *testing.T) {
	if _, ok := NewDate(2025, time.February, 29); ok {
		t.Errorf("2025-02-29 accepted")
	}
	if _, ok := NewDate(2025, 13, 1); ok {
		t.Errorf("month 13 accepted")
	}

	d, err := ParseDate("2025-12-31")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := d.AddDays(1).String(); got != "2026-01-01" {
		t.Errorf("AddDays(1) = %s", got)
	}
	if d.Weekday() != time.Wednesday {
		t.Errorf("Weekday() = %s", d.Weekday())
	}

	var zero Date
	if zero.String() != "" || !zero.IsZero() {
		t.Errorf("zero date = %q", zero.String())
	}
	if err := zero.UnmarshalText([]byte("2025-01-02")); err != nil || zero.String() != "2025-01-02" {
		t.Errorf("UnmarshalText gave %s, %v", zero, err)
	}
	if err := zero.UnmarshalText([]byte("02/01/2025")); err == nil {
		t.Errorf("expected error for bad layout")
	}
}

func TestParseReference(t *testing.T) {
	seoul := time.FixedZone("KST", 9*3600)

	got, err := ParseReference("2025-11-13", seoul)
	if err != nil || !got.Equal(time.Date(2025, 11, 13, 12, 0, 0, 0, seoul)) {
		t.Errorf("date form = %s, %v", got, err)
	}
	got, err = ParseReference("2025-11-13T23:30:00+09:00", seoul)
	if err != nil || !got.Equal(time.Date(2025, 11, 13, 14, 30, 0, 0, time.UTC)) {
		t.Errorf("RFC3339 form = %s, %v", got, err)
	}
	if got, err := ParseReference(" ", seoul); err != nil || !got.IsZero() {
		t.Errorf("empty = %s, %v", got, err)
	}
	if _, err := ParseReference("13/11/2025", seoul); err == nil {
		t.Errorf("expected error for unknown layout")
	}
}
