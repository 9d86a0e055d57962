package datemath

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// Resolver converts Korean date phrases into calendar dates relative to a
// reference instant. A Resolver is immutable after construction and safe for
// concurrent use.
type Resolver struct {
	location   *time.Location
	version    string
	convention WeekConvention

	dayOffsets      []compiledOffset
	endOfWeek       *regexp.Regexp
	endOfMonth      *regexp.Regexp
	weekWeekday     *regexp.Regexp
	weekQualifiers  []compiledOffset
	weekday         *regexp.Regexp
	weekdays        map[string]time.Weekday
	fullDate        *regexp.Regexp
	monthDay        *regexp.Regexp
	koreanMonthDay  *regexp.Regexp
	monthQualifiers []compiledOffset
	pastMarker      *regexp.Regexp
	byMarker        *regexp.Regexp

	matchers []matcher
}

type compiledOffset struct {
	re     *regexp.Regexp
	offset int
}

// input is what every matcher sees for a single resolution.
type input struct {
	text          string
	today         Date
	hasPastMarker bool
}

type matcher struct {
	rule  Rule
	match func(in input) (Date, bool)
}

// NewResolver creates a resolver for the given IANA timezone, e.g. "Asia/Seoul".
func NewResolver(timezone string, rules RuleSet) (*Resolver, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return NewResolverIn(loc, rules)
}

// NewResolverIn creates a resolver that reads reference instants in loc.
func NewResolverIn(loc *time.Location, rules RuleSet) (*Resolver, error) {
	if loc == nil {
		return nil, errors.New("location is required")
	}

	r := &Resolver{
		location:   loc,
		version:    rules.Version,
		convention: rules.Convention,
		weekdays:   make(map[string]time.Weekday, len(rules.Weekdays)),
	}
	if err := r.compile(rules); err != nil {
		return nil, err
	}

	r.matchers = []matcher{
		{rule: RuleDayOffset, match: r.matchDayOffset},
		{rule: RuleEndOfWeek, match: r.matchEndOfWeek},
		{rule: RuleEndOfMonth, match: r.matchEndOfMonth},
		{rule: RuleWeekWeekday, match: r.matchWeekWeekday},
		{rule: RuleWeekday, match: r.matchWeekday},
		{rule: RuleFullDate, match: r.matchFullDate},
		{rule: RuleMonthDay, match: r.matchMonthDay},
		{rule: RuleKoreanMonthDay, match: r.matchKoreanMonthDay},
	}
	return r, nil
}

// Location returns the zone reference instants are interpreted in.
func (r *Resolver) Location() *time.Location {
	return r.location
}

// Version returns the rule set version the resolver was built from.
func (r *Resolver) Version() string {
	return r.version
}

// Today returns the calendar date of ref in the resolver's location.
func (r *Resolver) Today(ref time.Time) Date {
	return DateOf(ref.In(r.location))
}

// Resolve returns the first date expression found in text, interpreted
// against ref. It returns Unresolved when no rule matches.
func (r *Resolver) Resolve(text string, ref time.Time) Outcome {
	text = strings.TrimSpace(text)
	if text == "" {
		return Unresolved
	}
	today := r.Today(ref)

	if out := r.resolveText(text, today); out.Resolved() {
		return out
	}

	// Retry once on whatever follows a "by"/"까지" marker.
	if r.byMarker == nil {
		return Unresolved
	}
	m := r.byMarker.FindStringSubmatch(text)
	if m == nil {
		return Unresolved
	}
	tail := strings.TrimSpace(m[1])
	if tail == "" {
		return Unresolved
	}
	return r.resolveText(tail, today)
}

func (r *Resolver) resolveText(text string, today Date) Outcome {
	in := input{
		text:          text,
		today:         today,
		hasPastMarker: r.pastMarker != nil && r.pastMarker.MatchString(text),
	}
	for _, m := range r.matchers {
		if d, ok := m.match(in); ok {
			return resolvedAs(d, m.rule)
		}
	}
	return Unresolved
}

// --- matchers, in precedence order ---

func (r *Resolver) matchDayOffset(in input) (Date, bool) {
	for _, o := range r.dayOffsets {
		if o.re.MatchString(in.text) {
			return in.today.AddDays(o.offset), true
		}
	}
	return Date{}, false
}

// matchEndOfWeek resolves to the Saturday of the Sunday-origin week.
func (r *Resolver) matchEndOfWeek(in input) (Date, bool) {
	if r.endOfWeek == nil || !r.endOfWeek.MatchString(in.text) {
		return Date{}, false
	}
	return in.today.AddDays(int(time.Saturday - in.today.Weekday())), true
}

func (r *Resolver) matchEndOfMonth(in input) (Date, bool) {
	if r.endOfMonth == nil || !r.endOfMonth.MatchString(in.text) {
		return Date{}, false
	}
	return lastDayOfMonth(in.today), true
}

func (r *Resolver) matchWeekWeekday(in input) (Date, bool) {
	if r.weekWeekday == nil {
		return Date{}, false
	}
	for _, loc := range r.weekWeekday.FindAllStringSubmatchIndex(in.text, -1) {
		if attachedQualifier(in.text, loc[2]) {
			continue
		}
		weeks, ok := lookupOffset(r.weekQualifiers, in.text[loc[2]:loc[3]])
		if !ok {
			continue
		}
		target, ok := r.weekdays[in.text[loc[4]:loc[5]]]
		if !ok {
			continue
		}

		var d Date
		switch r.convention {
		case ForwardScan:
			d = nextWeekday(in.today.AddDays(7*weeks), target, true)
			if d.Before(in.today) {
				d = d.AddDays(7)
			}
		default:
			monday := in.today.AddDays(-mondayIndex(in.today.Weekday()))
			d = monday.AddDays(7*weeks + mondayIndex(target))
			if weeks == 0 && d.Before(in.today) {
				d = d.AddDays(7)
			}
		}
		return d, true
	}
	return Date{}, false
}

// matchWeekday resolves a bare weekday to its next occurrence strictly after today.
func (r *Resolver) matchWeekday(in input) (Date, bool) {
	if r.weekday == nil {
		return Date{}, false
	}
	m := r.weekday.FindStringSubmatch(in.text)
	if m == nil {
		return Date{}, false
	}
	target, ok := r.weekdays[m[1]]
	if !ok {
		return Date{}, false
	}
	return nextWeekday(in.today, target, false), true
}

func (r *Resolver) matchFullDate(in input) (Date, bool) {
	for _, m := range r.fullDate.FindAllStringSubmatch(in.text, -1) {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		d, ok := NewDate(year, time.Month(month), day)
		if !ok {
			continue
		}
		// An explicit year is only reinterpreted when it is the current one.
		if !in.hasPastMarker && year == in.today.Year {
			d = ensureFuture(in.today, d)
		}
		return d, true
	}
	return Date{}, false
}

// matchMonthDay skips invalid candidates such as version numbers ("2.30").
func (r *Resolver) matchMonthDay(in input) (Date, bool) {
	for _, m := range r.monthDay.FindAllStringSubmatch(in.text, -1) {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		d, ok := NewDate(in.today.Year, time.Month(month), day)
		if !ok {
			continue
		}
		if !in.hasPastMarker {
			d = ensureFuture(in.today, d)
		}
		return d, true
	}
	return Date{}, false
}

// matchKoreanMonthDay handles "M월 D일", "다음달 D일" and "이번달 D일".
// A month qualifier takes precedence over a literal month.
func (r *Resolver) matchKoreanMonthDay(in input) (Date, bool) {
	for _, loc := range r.koreanMonthDay.FindAllStringSubmatchIndex(in.text, -1) {
		qualifier, monthText, dayText := group(in.text, loc, 1), group(in.text, loc, 2), group(in.text, loc, 3)
		if qualifier == "" && monthText == "" {
			continue
		}
		if qualifier != "" && attachedQualifier(in.text, loc[2]) {
			continue
		}
		day, _ := strconv.Atoi(dayText)

		year, month := in.today.Year, in.today.Month
		if qualifier != "" {
			months, ok := lookupOffset(r.monthQualifiers, qualifier)
			if !ok {
				continue
			}
			first := Date{Year: year, Month: month, Day: 1}.civil().AddDate(0, months, 0)
			year, month = first.Year(), first.Month()
		} else {
			literal, _ := strconv.Atoi(monthText)
			month = time.Month(literal)
		}

		d, ok := NewDate(year, month, day)
		if !ok {
			continue
		}
		if !in.hasPastMarker {
			d = ensureFuture(in.today, d)
		}
		return d, true
	}
	return Date{}, false
}

// attachedQualifier reports whether the qualifier starting at byte offset i
// is the tail of a longer Hangul word, as in an unlisted "다다다다음주".
func attachedQualifier(text string, i int) bool {
	if i <= 0 {
		return false
	}
	prev, _ := utf8.DecodeLastRuneInString(text[:i])
	return unicode.Is(unicode.Hangul, prev)
}

// group returns submatch n of an index match, or "" when it did not take part.
func group(text string, loc []int, n int) string {
	if loc[2*n] < 0 {
		return ""
	}
	return text[loc[2*n]:loc[2*n+1]]
}

// --- compilation ---

var (
	fullDatePattern       = `(\d{4})[.\-/](\d{1,2})[.\-/](\d{1,2})`
	monthDayPattern       = `\b(\d{1,2})[.\-/](\d{1,2})\b`
	koreanMonthDayPattern = `(?:(%s)\s*)?(?:(\d{1,2})\s*월\s*)?(\d{1,2})\s*일`
)

func (r *Resolver) compile(rules RuleSet) error {
	var err error

	for i, o := range rules.DayOffsets {
		re, cErr := compileRule(fmt.Sprintf("day_offsets[%d]", i), o.Pattern)
		if cErr != nil {
			return cErr
		}
		r.dayOffsets = append(r.dayOffsets, compiledOffset{re: re, offset: o.Days})
	}

	if r.endOfWeek, err = compileRule("end_of_week", anyOf(rules.EndOfWeek)); err != nil {
		return err
	}
	if r.endOfMonth, err = compileRule("end_of_month", anyOf(rules.EndOfMonth)); err != nil {
		return err
	}
	if r.weekQualifiers, err = compileQualifiers("week_qualifiers", rules.WeekQualifiers); err != nil {
		return err
	}
	if r.monthQualifiers, err = compileQualifiers("month_qualifiers", rules.MonthQualifiers); err != nil {
		return err
	}

	names := make([]string, 0, len(rules.Weekdays))
	for _, w := range rules.Weekdays {
		r.weekdays[w.Name] = w.Weekday
		names = append(names, regexp.QuoteMeta(w.Name))
	}
	suffix := regexp.QuoteMeta(rules.WeekdaySuffix)

	if len(names) > 0 && len(rules.WeekQualifiers) > 0 {
		terminators := make([]string, 0, len(rules.WeekdayTerminators)+2)
		if suffix != "" {
			terminators = append(terminators, suffix)
		}
		for _, t := range rules.WeekdayTerminators {
			terminators = append(terminators, regexp.QuoteMeta(t))
		}
		terminators = append(terminators, `[^\p{Hangul}]`, `$`)

		pattern := fmt.Sprintf(`(%s)\s*(%s)(?:%s)`,
			qualifierAlternation(rules.WeekQualifiers),
			strings.Join(names, "|"),
			strings.Join(terminators, "|"))
		if r.weekWeekday, err = compileRule("week_weekday", pattern); err != nil {
			return err
		}
	}

	// A bare weekday needs its suffix: one-syllable names alone collide with
	// ordinary words ("일", "월").
	if len(names) > 0 && suffix != "" {
		pattern := fmt.Sprintf(`(%s)%s`, strings.Join(names, "|"), suffix)
		if r.weekday, err = compileRule("weekday", pattern); err != nil {
			return err
		}
	}

	r.fullDate = regexp.MustCompile(fullDatePattern)
	r.monthDay = regexp.MustCompile(monthDayPattern)

	// With no month qualifiers the group captures "" and only "M월 D일" matches.
	monthQualifier := qualifierAlternation(rules.MonthQualifiers)
	if r.koreanMonthDay, err = compileRule("korean_month_day", fmt.Sprintf(koreanMonthDayPattern, monthQualifier)); err != nil {
		return err
	}

	if r.pastMarker, err = compileRule("past_markers", anyOf(rules.PastMarkers)); err != nil {
		return err
	}
	if len(rules.ByMarkers) > 0 {
		if r.byMarker, err = compileRule("by_markers", anyOf(rules.ByMarkers)+`\s*([^.,;]+)`); err != nil {
			return err
		}
	}
	return nil
}

// compileRule compiles a pattern; an empty pattern yields a nil regexp.
func compileRule(name, pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("rule %s: %w", name, err)
	}
	return re, nil
}

func compileQualifiers(name string, qualifiers []Qualifier) ([]compiledOffset, error) {
	out := make([]compiledOffset, 0, len(qualifiers))
	for i, q := range qualifiers {
		re, err := compileRule(fmt.Sprintf("%s[%d]", name, i), `^(?:`+q.Pattern+`)$`)
		if err != nil {
			return nil, err
		}
		out = append(out, compiledOffset{re: re, offset: q.Offset})
	}
	return out, nil
}

func anyOf(patterns []string) string {
	if len(patterns) == 0 {
		return ""
	}
	return "(?:" + strings.Join(patterns, "|") + ")"
}

func qualifierAlternation(qualifiers []Qualifier) string {
	parts := make([]string, 0, len(qualifiers))
	for _, q := range qualifiers {
		parts = append(parts, "(?:"+q.Pattern+")")
	}
	return strings.Join(parts, "|")
}

func lookupOffset(offsets []compiledOffset, text string) (int, bool) {
	for _, o := range offsets {
		if o.re.MatchString(text) {
			return o.offset, true
		}
	}
	return 0, false
}
