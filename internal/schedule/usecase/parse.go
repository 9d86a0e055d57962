package usecase

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"actionsense/internal/schedule"
)

var (
	handleRe   = regexp.MustCompile(`@([\p{L}\p{N}_.\-]+)`)
	durationRe = regexp.MustCompile(`(\d{1,2})\s*시간(?:\s*(\d{1,2})\s*분)?(?:\s*(?:동안|간))?|(\d{1,3})\s*분\s*(?:동안|간)`)
	hourRe     = regexp.MustCompile(`(?:(오전|오후)\s*)?(\d{1,2})\s*시(?:\s*(\d{1,2})\s*분|\s*(반))?(?:에|부터)?`)
	clockRe    = regexp.MustCompile(`\b([01]?\d|2[0-3]):([0-5]\d)\b(?:에|부터)?`)
	locationRe = regexp.MustCompile(`([\p{Hangul}A-Za-z0-9]+(?:\s+[A-Za-z0-9]{1,3})?)\s*에서`)
	spacesRe   = regexp.MustCompile(`\s+`)

	// Date phrases the resolver understands, removed from the title.
	datePhraseRe = regexp.MustCompile(`(?:` +
		`이번\s*주\s*말|` +
		`(?:다다다음|다다음|다음|이번|지난)\s*(?:주|달)(?:\s*[월화수목금토일]요일)?|` +
		`(?:내주|차주)(?:\s*[월화수목금토일]요일)?|` +
		`오늘|내일|모레|글피|월말|말일|[월화수목금토일]요일|(?i:\bEO[DW]\b)|` +
		`\d{4}[.\-/]\d{1,2}[.\-/]\d{1,2}|\b\d{1,2}[.\-/]\d{1,2}\b|` +
		`(?:\d{1,2}\s*월\s*)?\d{1,2}\s*일` +
		`)(?:까지|부터|에)?`)
)

func (uc *implUseCase) Parse(ctx context.Context, input schedule.ParseInput) (schedule.ParseOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return schedule.ParseOutput{}, schedule.ErrEmptyText
	}
	if utf8.RuneCountInString(text) > maxTextRunes {
		return schedule.ParseOutput{}, schedule.ErrTextTooLong
	}

	ref := input.Reference
	if ref.IsZero() {
		ref = uc.now()
	}

	draft := schedule.EventDraft{
		StartTime: uc.opts.DefaultStart,
		Duration:  uc.opts.DefaultDuration,
	}
	if out := uc.resolver.Resolve(text, ref); out.Resolved() {
		draft.Date, _ = out.Date()
		draft.DateResolved = true
		draft.DateRule = out.Rule()
	}

	rest := text
	draft.Participants, rest = extractParticipants(rest)
	if d, r, ok := extractDuration(rest); ok {
		draft.Duration, rest = d, r
	}
	if c, r, ok := extractTime(rest); ok {
		draft.StartTime, draft.TimeExplicit, rest = c, true, r
	}
	rest = datePhraseRe.ReplaceAllString(rest, " ")
	draft.Location, rest = extractLocation(rest)
	draft.Title = cleanTitle(rest)
	draft.EndTime = draft.StartTime.Add(draft.Duration)

	uc.l.Debugf(ctx, "schedule.Parse text=%q date=%s start=%s location=%q", text, draft.Date, draft.StartTime, draft.Location)
	return schedule.ParseOutput{Draft: draft}, nil
}

func extractParticipants(text string) ([]string, string) {
	var out []string
	seen := make(map[string]bool)
	for _, m := range handleRe.FindAllStringSubmatch(text, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			out = append(out, m[1])
		}
	}
	return out, handleRe.ReplaceAllString(text, " ")
}

func extractDuration(text string) (time.Duration, string, bool) {
	m := durationRe.FindStringSubmatch(text)
	if m == nil {
		return 0, text, false
	}
	var d time.Duration
	if m[1] != "" {
		h, _ := strconv.Atoi(m[1])
		d = time.Duration(h) * time.Hour
		if m[2] != "" {
			mins, _ := strconv.Atoi(m[2])
			d += time.Duration(mins) * time.Minute
		}
	} else {
		mins, _ := strconv.Atoi(m[3])
		d = time.Duration(mins) * time.Minute
	}
	if d <= 0 {
		return 0, text, false
	}
	return d, strings.Replace(text, m[0], " ", 1), true
}

// extractTime reads "오후 3시 반" style times first and "15:30" second.
// Out-of-range values are left in the text.
func extractTime(text string) (schedule.Clock, string, bool) {
	for _, m := range hourRe.FindAllStringSubmatch(text, -1) {
		if c, ok := hourClock(m[1], m[2], m[3], m[4] != ""); ok {
			return c, strings.Replace(text, m[0], " ", 1), true
		}
	}
	if m := clockRe.FindStringSubmatch(text); m != nil {
		h, _ := strconv.Atoi(m[1])
		mins, _ := strconv.Atoi(m[2])
		return schedule.Clock{Hour: h, Minute: mins}, strings.Replace(text, m[0], " ", 1), true
	}
	return schedule.Clock{}, text, false
}

func hourClock(meridiem, hour, minute string, half bool) (schedule.Clock, bool) {
	h, _ := strconv.Atoi(hour)
	mins := 0
	if minute != "" {
		mins, _ = strconv.Atoi(minute)
	} else if half {
		mins = 30
	}

	switch meridiem {
	case "오전":
		if h < 1 || h > 12 {
			return schedule.Clock{}, false
		}
		if h == 12 {
			h = 0
		}
	case "오후":
		if h < 1 || h > 12 {
			return schedule.Clock{}, false
		}
		if h < 12 {
			h += 12
		}
	}

	c := schedule.Clock{Hour: h, Minute: mins}
	return c, c.Valid()
}

func extractLocation(text string) (string, string) {
	m := locationRe.FindStringSubmatch(text)
	if m == nil {
		return "", text
	}
	return strings.TrimSpace(m[1]), strings.Replace(text, m[0], " ", 1)
}

func cleanTitle(text string) string {
	text = strings.TrimSpace(spacesRe.ReplaceAllString(text, " "))
	text = strings.Trim(text, " ,.;:-")
	if text == "" {
		return defaultTitle
	}
	return text
}
