package detector

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"actionsense/internal/model"
	"actionsense/pkg/datemath"
)

// Extracted is the structured part of a detected action.
type Extracted struct {
	Title      string
	AssignedTo string
	DueDate    datemath.Date
	DueRule    datemath.Rule
	Priority   model.Priority
	Tags       []string
}

// Result is the outcome of analyzing one message.
type Result struct {
	IsAction   bool
	Extracted  Extracted
	Confidence float64
}

type priorityMatcher struct {
	level model.Priority
	res   []*regexp.Regexp
}

// Detector finds action requests in chat messages. Safe for concurrent use.
type Detector struct {
	resolver *datemath.Resolver
	rules    Rules

	actions        []*regexp.Regexp
	todo           *regexp.Regexp
	handle         *regexp.Regexp
	assigneeLabel  *regexp.Regexp
	assigneeSuffix *regexp.Regexp
	priorityLabel  *regexp.Regexp
	priorities     []priorityMatcher
	tag            *regexp.Regexp
	spaces         *regexp.Regexp
}

// New compiles rules into a Detector that resolves due dates with resolver.
func New(resolver *datemath.Resolver, rules Rules) (*Detector, error) {
	if resolver == nil {
		return nil, errors.New("detector: resolver is required")
	}
	if rules.TitleMaxRunes <= 0 {
		return nil, errors.New("detector: title length must be positive")
	}
	if !rules.DefaultPriority.IsValid() {
		return nil, fmt.Errorf("detector: invalid default priority %q", rules.DefaultPriority)
	}

	d := &Detector{resolver: resolver, rules: rules}
	var err error

	for _, p := range rules.ActionPatterns {
		re, cerr := regexp.Compile(p)
		if cerr != nil {
			return nil, fmt.Errorf("detector: action pattern %q: %w", p, cerr)
		}
		d.actions = append(d.actions, re)
	}
	if rules.TodoPrefix != "" {
		d.todo = regexp.MustCompile(`(?i)^` + regexp.QuoteMeta(rules.TodoPrefix) + `\s*`)
	}

	if d.handle, err = compileOptional(rules.HandlePattern); err != nil {
		return nil, err
	}
	if d.assigneeLabel, err = compileOptional(rules.AssigneeLabelPattern); err != nil {
		return nil, err
	}
	if d.assigneeSuffix, err = compileOptional(rules.AssigneeSuffixPattern); err != nil {
		return nil, err
	}
	if d.priorityLabel, err = compileOptional(rules.PriorityLabelPattern); err != nil {
		return nil, err
	}
	if d.tag, err = compileOptional(rules.TagPattern); err != nil {
		return nil, err
	}

	for _, pr := range rules.PriorityRules {
		pm := priorityMatcher{level: pr.Level}
		for _, p := range pr.Patterns {
			re, cerr := regexp.Compile(p)
			if cerr != nil {
				return nil, fmt.Errorf("detector: priority pattern %q: %w", p, cerr)
			}
			pm.res = append(pm.res, re)
		}
		d.priorities = append(d.priorities, pm)
	}

	d.spaces = regexp.MustCompile(`\s{2,}`)
	return d, nil
}

func compileOptional(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("detector: pattern %q: %w", pattern, err)
	}
	return re, nil
}

// Analyze inspects one message written at ref.
func (d *Detector) Analyze(text string, ref time.Time) Result {
	text = strings.TrimSpace(text)
	if text == "" {
		return Result{}
	}

	isTodo := d.todo != nil && d.todo.MatchString(text)
	if !isTodo && !d.hasIntent(text) {
		return Result{}
	}

	ex := Extracted{
		Title:      d.title(text),
		AssignedTo: d.assignee(text),
		Priority:   d.priority(text),
		Tags:       d.tags(text),
	}
	if out := d.resolver.Resolve(text, ref); out.Resolved() {
		ex.DueDate, _ = out.Date()
		ex.DueRule = out.Rule()
	}

	return Result{
		IsAction:   true,
		Extracted:  ex,
		Confidence: d.confidence(ex, isTodo),
	}
}

func (d *Detector) hasIntent(text string) bool {
	for _, re := range d.actions {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

func (d *Detector) assignee(text string) string {
	for _, re := range []*regexp.Regexp{d.handle, d.assigneeLabel, d.assigneeSuffix} {
		if re == nil {
			continue
		}
		if m := re.FindStringSubmatch(text); len(m) > 1 && m[1] != "" {
			return m[1]
		}
	}
	return ""
}

func (d *Detector) priority(text string) model.Priority {
	if d.priorityLabel != nil {
		if m := d.priorityLabel.FindStringSubmatch(text); len(m) > 1 {
			if p, ok := d.rules.PriorityLabels[m[1]]; ok {
				return p
			}
		}
		text = d.priorityLabel.ReplaceAllString(text, " ")
	}
	for _, pm := range d.priorities {
		for _, re := range pm.res {
			if re.MatchString(text) {
				return pm.level
			}
		}
	}
	return d.rules.DefaultPriority
}

func (d *Detector) tags(text string) []string {
	if d.tag == nil {
		return nil
	}
	var tags []string
	for _, m := range d.tag.FindAllStringSubmatch(text, -1) {
		tags = append(tags, m[1])
	}
	return tags
}

func (d *Detector) title(text string) string {
	if d.todo != nil {
		text = d.todo.ReplaceAllString(text, "")
	}
	text = strings.TrimSpace(d.spaces.ReplaceAllString(text, " "))
	return Truncate(text, d.rules.TitleMaxRunes, d.rules.Ellipsis)
}

func (d *Detector) confidence(ex Extracted, isTodo bool) float64 {
	w := d.rules.Weights
	score := w.Base + w.Intent
	if ex.AssignedTo != "" {
		score += w.Assignee
	}
	if !ex.DueDate.IsZero() {
		score += w.DueDate
	}
	if ex.Priority != d.rules.DefaultPriority {
		score += w.Priority
	}
	if len(ex.Tags) > 0 {
		score += w.Tags
	}
	if isTodo && score < w.TodoFloor {
		score = w.TodoFloor
	}
	if score > 100 {
		score = 100
	}
	return float64(score) / 100
}

// NormalizeTitle applies the title cleanup used for detected actions to
// text coming from elsewhere, e.g. an LLM.
func (d *Detector) NormalizeTitle(text string) string {
	return d.title(strings.TrimSpace(text))
}

// Truncate cuts s to max runes and appends ellipsis when it had to cut.
func Truncate(s string, max int, ellipsis string) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max]) + ellipsis
}

// Preview renders an extraction as one line,
// e.g. "배포 준비 / 담당:민수 / 기한:2025-11-14 / 우선순위:높음 / #release".
func Preview(ex Extracted) string {
	var sb strings.Builder
	sb.WriteString(ex.Title)
	if ex.AssignedTo != "" {
		sb.WriteString(" / 담당:")
		sb.WriteString(ex.AssignedTo)
	}
	if !ex.DueDate.IsZero() {
		sb.WriteString(" / 기한:")
		sb.WriteString(ex.DueDate.String())
	}
	if ex.Priority != "" {
		sb.WriteString(" / 우선순위:")
		sb.WriteString(string(ex.Priority))
	}
	if len(ex.Tags) > 0 {
		sb.WriteString(" / #")
		sb.WriteString(strings.Join(ex.Tags, " #"))
	}
	return sb.String()
}
