package datemath_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"actionsense/pkg/datemath"
)

// 2025-11-13 is a Thursday.
var refThursday = time.Date(2025, 11, 13, 15, 30, 0, 0, time.UTC)

func newResolver(t *testing.T) *datemath.Resolver {
	t.Helper()
	r, err := datemath.NewResolver("UTC", datemath.DefaultRuleSet())
	if err != nil {
		t.Fatalf("unexpected error creating resolver: %v", err)
	}
	return r
}

func TestNewResolver(t *testing.T) {
	if _, err := datemath.NewResolver("Asia/Seoul", datemath.DefaultRuleSet()); err != nil {
		t.Fatalf("unexpected error creating valid resolver: %v", err)
	}

	if _, err := datemath.NewResolver("Invalid/Timezone", datemath.DefaultRuleSet()); err == nil {
		t.Fatalf("expected error for invalid timezone")
	}

	if _, err := datemath.NewResolverIn(nil, datemath.DefaultRuleSet()); err == nil {
		t.Fatalf("expected error for nil location")
	}

	broken := datemath.DefaultRuleSet()
	broken.DayOffsets = append(broken.DayOffsets, datemath.DayOffset{Pattern: `(`, Days: 9})
	if _, err := datemath.NewResolver("UTC", broken); err == nil {
		t.Fatalf("expected error for invalid pattern")
	}
}

func TestRuleSetFor(t *testing.T) {
	for _, v := range []string{"", datemath.RuleSetV1, datemath.RuleSetV2} {
		if _, err := datemath.RuleSetFor(v); err != nil {
			t.Errorf("RuleSetFor(%q) unexpected error: %v", v, err)
		}
	}
	if _, err := datemath.RuleSetFor("v9"); err == nil {
		t.Errorf("expected error for unknown version")
	}
	if got := datemath.DefaultRuleSet().Version; got != datemath.RuleSetV2 {
		t.Errorf("default version = %q, want %q", got, datemath.RuleSetV2)
	}
}

func TestResolve(t *testing.T) {
	r := newResolver(t)

	tests := []struct {
		name string
		text string
		ref  time.Time
		want string
		rule datemath.Rule
	}{
		// fixed keywords
		{name: "Today", text: "오늘", want: "2025-11-13", rule: datemath.RuleDayOffset},
		{name: "Today deadline", text: "오늘까지 보고서 제출", want: "2025-11-13", rule: datemath.RuleDayOffset},
		{name: "EOD", text: "EOD까지 부탁해요", want: "2025-11-13", rule: datemath.RuleDayOffset},
		{name: "EOD lower case", text: "eod please", want: "2025-11-13", rule: datemath.RuleDayOffset},
		{name: "Tomorrow", text: "내일", want: "2025-11-14", rule: datemath.RuleDayOffset},
		{name: "Day after tomorrow", text: "모레", want: "2025-11-15", rule: datemath.RuleDayOffset},
		{name: "Three days", text: "글피까지 정리", want: "2025-11-16", rule: datemath.RuleDayOffset},
		{name: "Keyword order wins over text order", text: "내일 말고 오늘", want: "2025-11-13", rule: datemath.RuleDayOffset},

		// week and month boundaries
		{name: "This weekend", text: "이번 주말", want: "2025-11-15", rule: datemath.RuleEndOfWeek},
		{name: "This weekend no space", text: "이번주말까지", want: "2025-11-15", rule: datemath.RuleEndOfWeek},
		{name: "EOW", text: "EOW", want: "2025-11-15", rule: datemath.RuleEndOfWeek},
		{name: "By weekend", text: "주말까지 검토", want: "2025-11-15", rule: datemath.RuleEndOfWeek},
		{name: "Weekend from Sunday", text: "이번 주말", ref: time.Date(2025, 11, 16, 9, 0, 0, 0, time.UTC), want: "2025-11-22", rule: datemath.RuleEndOfWeek},
		{name: "Weekend on Saturday", text: "이번 주말", ref: time.Date(2025, 11, 15, 9, 0, 0, 0, time.UTC), want: "2025-11-15", rule: datemath.RuleEndOfWeek},
		{name: "Month end", text: "월말", want: "2025-11-30", rule: datemath.RuleEndOfMonth},
		{name: "Last day leap February", text: "말일까지", ref: time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC), want: "2024-02-29", rule: datemath.RuleEndOfMonth},

		// week qualifier + weekday
		{name: "Next week Tuesday", text: "다음주 화요일", want: "2025-11-18", rule: datemath.RuleWeekWeekday},
		{name: "Next week spaced", text: "다음 주 월요일에 회의", want: "2025-11-17", rule: datemath.RuleWeekWeekday},
		{name: "Next week short form", text: "내주 일요일", want: "2025-11-23", rule: datemath.RuleWeekWeekday},
		{name: "Next week one syllable", text: "차주 금까지", want: "2025-11-21", rule: datemath.RuleWeekWeekday},
		{name: "Week after next", text: "다다음주 월", want: "2025-11-24", rule: datemath.RuleWeekWeekday},
		{name: "Three weeks ahead", text: "다다다음주 수요일", want: "2025-12-03", rule: datemath.RuleWeekWeekday},
		{name: "This week Friday", text: "이번주 금요일까지 배포", want: "2025-11-14", rule: datemath.RuleWeekWeekday},
		{name: "This week same day", text: "이번주 목요일", want: "2025-11-13", rule: datemath.RuleWeekWeekday},
		{name: "This week past day rolls", text: "이번주 월요일", want: "2025-11-17", rule: datemath.RuleWeekWeekday},
		{name: "This week Sunday", text: "이번 주 일요일", want: "2025-11-16", rule: datemath.RuleWeekWeekday},

		// bare weekday
		{name: "Bare Friday", text: "금요일", want: "2025-11-14", rule: datemath.RuleWeekday},
		{name: "Bare same weekday", text: "목요일까지", want: "2025-11-20", rule: datemath.RuleWeekday},
		{name: "Bare earlier weekday", text: "화요일 오전", want: "2025-11-18", rule: datemath.RuleWeekday},

		// full numeric dates
		{name: "ISO date", text: "2025-11-20", want: "2025-11-20", rule: datemath.RuleFullDate},
		{name: "Dotted date", text: "2025.12.01 마감", want: "2025-12-01", rule: datemath.RuleFullDate},
		{name: "Slashed date", text: "2025/11/13", want: "2025-11-13", rule: datemath.RuleFullDate},
		{name: "Past date this year rolls", text: "2025.01.05", want: "2026-01-05", rule: datemath.RuleFullDate},
		{name: "Explicit past year literal", text: "2024-01-05", want: "2024-01-05", rule: datemath.RuleFullDate},
		{name: "Past marker keeps date", text: "지난 2025-01-05 회의", want: "2025-01-05", rule: datemath.RuleFullDate},
		{name: "Future year literal", text: "2027-03-01", want: "2027-03-01", rule: datemath.RuleFullDate},

		// month/day
		{name: "Month day today", text: "11.13", want: "2025-11-13", rule: datemath.RuleMonthDay},
		{name: "Month day past rolls", text: "1.5", want: "2026-01-05", rule: datemath.RuleMonthDay},
		{name: "Month day slash", text: "12/25까지", want: "2025-12-25", rule: datemath.RuleMonthDay},
		{name: "Month day past marker", text: "지난달 10.3 회의록", want: "2025-10-03", rule: datemath.RuleMonthDay},
		{name: "Leap day rolls to Feb 28", text: "2.29", ref: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), want: "2025-02-28", rule: datemath.RuleMonthDay},

		// korean month/day
		{name: "Next month day", text: "다음달 3일", want: "2025-12-03", rule: datemath.RuleKoreanMonthDay},
		{name: "Next month across year", text: "다음 달 5일", ref: time.Date(2025, 12, 20, 0, 0, 0, 0, time.UTC), want: "2026-01-05", rule: datemath.RuleKoreanMonthDay},
		{name: "Korean month day", text: "11월 20일", want: "2025-11-20", rule: datemath.RuleKoreanMonthDay},
		{name: "Korean month day past rolls", text: "3월 1일까지", want: "2026-03-01", rule: datemath.RuleKoreanMonthDay},
		{name: "This month day", text: "이번달 20일", want: "2025-11-20", rule: datemath.RuleKoreanMonthDay},
		{name: "Korean month day past marker", text: "작년 3월 1일 자료", want: "2025-03-01", rule: datemath.RuleKoreanMonthDay},
		{name: "Skips bare day count", text: "3일 뒤가 아니라 12월 24일", want: "2025-12-24", rule: datemath.RuleKoreanMonthDay},
		{name: "Month after next", text: "다다음달 3일", want: "2026-01-03", rule: datemath.RuleKoreanMonthDay},
		{name: "Three months ahead", text: "다다다음달 1일", want: "2026-02-01", rule: datemath.RuleKoreanMonthDay},

		// invalid candidates are skipped
		{name: "Version number before date", text: "버전 2.30 배포 12/24까지", want: "2025-12-24", rule: datemath.RuleMonthDay},
		{name: "Invalid full date before date", text: "2025.13.5 까지 12/1", want: "2025-12-01", rule: datemath.RuleMonthDay},
		{name: "Second full date", text: "2025-02-30 말고 2025-12-01", want: "2025-12-01", rule: datemath.RuleFullDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref := tt.ref
			if ref.IsZero() {
				ref = refThursday
			}
			got := r.Resolve(tt.text, ref)
			if !got.Resolved() {
				t.Fatalf("Resolve(%q) = Unresolved, want %s", tt.text, tt.want)
			}
			if got.String() != tt.want {
				t.Errorf("Resolve(%q) = %s, want %s", tt.text, got, tt.want)
			}
			if got.Rule() != tt.rule {
				t.Errorf("Resolve(%q) rule = %q, want %q", tt.text, got.Rule(), tt.rule)
			}
		})
	}
}

func TestResolveUnresolved(t *testing.T) {
	r := newResolver(t)

	tests := []struct {
		name string
		text string
	}{
		{name: "Greeting", text: "안녕하세요"},
		{name: "Empty", text: ""},
		{name: "Blank", text: "   "},
		{name: "Until with unparseable tail", text: "보고서 까지 잘 부탁해"},
		{name: "By with unparseable tail", text: "finish by someday"},
		{name: "Invalid full date", text: "2025-02-30"},
		{name: "Invalid next month day", text: "다음달 31일"},
		{name: "Day without month", text: "3일 정도 걸려요"},
		{name: "One syllable weekday alone", text: "일 처리 부탁"},
		{name: "Week qualifier with plain word", text: "이번주 일정 공유"},
		{name: "Unlisted stacked month qualifier", text: "다다다다음달 3일"},
	}

	ref := time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Resolve(tt.text, ref)
			if got.Resolved() {
				t.Errorf("Resolve(%q) = %s (%s), want Unresolved", tt.text, got, got.Rule())
			}
			if got != datemath.Unresolved {
				t.Errorf("expected the Unresolved value, got %+v", got)
			}
		})
	}
}

func TestResolveProperties(t *testing.T) {
	r := newResolver(t)
	start := time.Date(2025, 11, 10, 8, 0, 0, 0, time.UTC) // Monday

	for i := 0; i < 21; i++ {
		ref := start.AddDate(0, 0, i)
		today := datemath.DateOf(ref)

		t.Run(ref.Format("2006-01-02 Mon"), func(t *testing.T) {
			if got := r.Resolve("오늘", ref).String(); got != today.String() {
				t.Errorf("오늘 = %s, want %s", got, today)
			}
			for text, days := range map[string]int{"내일": 1, "모레": 2, "글피": 3} {
				if got, want := r.Resolve(text, ref).String(), today.AddDays(days).String(); got != want {
					t.Errorf("%s = %s, want %s", text, got, want)
				}
			}

			// A bare weekday equal to today's weekday lands exactly a week later.
			own := []string{"일요일", "월요일", "화요일", "수요일", "목요일", "금요일", "토요일"}[ref.Weekday()]
			if got, want := r.Resolve(own, ref).String(), today.AddDays(7).String(); got != want {
				t.Errorf("%s = %s, want %s", own, got, want)
			}

			// "다음주 월요일" always lands in the following Monday-to-Sunday week.
			got, ok := r.Resolve("다음주 월요일", ref).Date()
			if !ok {
				t.Fatalf("다음주 월요일 unresolved")
			}
			if got.Weekday() != time.Monday {
				t.Errorf("다음주 월요일 = %s is a %s", got, got.Weekday())
			}
			monday := today.AddDays(-((int(today.Weekday()) + 6) % 7))
			if want := monday.AddDays(7); got != want {
				t.Errorf("다음주 월요일 = %s, want %s", got, want)
			}
		})
	}
}

func TestResolveThisWeekSameDay(t *testing.T) {
	r := newResolver(t)
	friday := time.Date(2025, 11, 14, 18, 0, 0, 0, time.UTC)

	if got := r.Resolve("이번주 금요일", friday).String(); got != "2025-11-14" {
		t.Errorf("이번주 금요일 on a Friday = %s, want 2025-11-14", got)
	}
}

func TestResolveRoundTrip(t *testing.T) {
	r := newResolver(t)

	for _, s := range []string{"2025-11-13", "2025-11-30", "2025-12-31", "2026-02-28", "2027-07-01"} {
		t.Run(s, func(t *testing.T) {
			first := r.Resolve(s, refThursday)
			if first.String() != s {
				t.Fatalf("Resolve(%q) = %s", s, first)
			}
			// Feeding the result back with a later reference keeps it unless
			// the reference has already passed it.
			later := refThursday.AddDate(0, 0, 10)
			d, _ := first.Date()
			if d.Before(datemath.DateOf(later)) {
				return
			}
			if again := r.Resolve(first.String(), later); again.String() != s {
				t.Errorf("round trip of %s gave %s", s, again)
			}
		})
	}
}

func TestResolveUsesResolverLocation(t *testing.T) {
	r, err := datemath.NewResolver("Asia/Seoul", datemath.DefaultRuleSet())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 20:00 UTC on the 13th is already the 14th in Seoul.
	ref := time.Date(2025, 11, 13, 20, 0, 0, 0, time.UTC)
	if got := r.Resolve("오늘", ref).String(); got != "2025-11-14" {
		t.Errorf("오늘 = %s, want 2025-11-14", got)
	}
	if got := r.Location().String(); got != "Asia/Seoul" {
		t.Errorf("Location() = %s", got)
	}
}

func TestResolveForwardScanVersion(t *testing.T) {
	rules, err := datemath.RuleSetFor(datemath.RuleSetV1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r, err := datemath.NewResolver("UTC", rules)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Version() != datemath.RuleSetV1 {
		t.Errorf("Version() = %s", r.Version())
	}

	tests := []struct {
		text string
		want string
	}{
		// Thursday + 7 days, then forward to Tuesday.
		{text: "다음주 화요일", want: "2025-11-25"},
		{text: "다음주 목요일", want: "2025-11-20"},
		{text: "이번주 월요일", want: "2025-11-17"},
		{text: "모레", want: "2025-11-15"},
	}
	for _, tt := range tests {
		if got := r.Resolve(tt.text, refThursday).String(); got != tt.want {
			t.Errorf("v1 Resolve(%q) = %s, want %s", tt.text, got, tt.want)
		}
	}
}

func TestResolveCustomRuleSet(t *testing.T) {
	rules := datemath.DefaultRuleSet()
	rules.DayOffsets = append(rules.DayOffsets, datemath.DayOffset{Pattern: `(?i)\bASAP\b`, Days: 1})
	rules.ByMarkers = nil

	r, err := datemath.NewResolver("UTC", rules)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := r.Resolve("asap please", refThursday).String(); got != "2025-11-14" {
		t.Errorf("custom keyword = %s, want 2025-11-14", got)
	}
	if got := r.Resolve("보고서 까지 부탁", refThursday); got.Resolved() {
		t.Errorf("expected Unresolved without by markers, got %s", got)
	}
}

func TestResolveByMarkerTail(t *testing.T) {
	rules := datemath.DefaultRuleSet()
	rules.DayOffsets = append(rules.DayOffsets, datemath.DayOffset{Pattern: `^ASAP$`, Days: 1})

	r, err := datemath.NewResolver("UTC", rules)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "Tail after 까지", text: "보고서 까지 ASAP", want: "2025-11-14"},
		{name: "Tail after by", text: "report by ASAP", want: "2025-11-14"},
		{name: "Tail stops at punctuation", text: "보고서 까지 ASAP, 고마워요", want: "2025-11-14"},
		{name: "No marker", text: "보고서 ASAP", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Resolve(tt.text, refThursday)
			if got.String() != tt.want {
				t.Fatalf("Resolve(%q) = %q, want %q", tt.text, got.String(), tt.want)
			}
			if tt.want != "" && got.Rule() != datemath.RuleDayOffset {
				t.Errorf("rule = %s, want %s", got.Rule(), datemath.RuleDayOffset)
			}
		})
	}
}

func TestResolveConcurrent(t *testing.T) {
	r := newResolver(t)

	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ref := refThursday.AddDate(0, 0, i%7)
			want := datemath.DateOf(ref).AddDays(2).String()
			if got := r.Resolve("모레까지", ref).String(); got != want {
				errs <- fmt.Errorf("goroutine %d: got %s want %s", i, got, want)
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
