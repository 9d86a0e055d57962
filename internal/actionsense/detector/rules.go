package detector

import "actionsense/internal/model"

// Weights are confidence contributions in percentage points.
type Weights struct {
	Base      int
	Intent    int
	Assignee  int
	DueDate   int
	Priority  int // any priority other than the default
	Tags      int
	TodoFloor int // minimum for messages starting with the todo prefix
}

// PriorityRule assigns Level when any of Patterns matches.
type PriorityRule struct {
	Level    model.Priority
	Patterns []string
}

// Rules holds every pattern and constant the detector uses.
type Rules struct {
	ActionPatterns []string
	TodoPrefix     string // case-insensitive, matched at the start of the message

	HandlePattern         string // first group is the assignee
	AssigneeLabelPattern  string
	AssigneeSuffixPattern string

	// PriorityLabelPattern captures an explicit level such as "우선순위: 하".
	// PriorityLabels maps the captured text to a level. An explicit label wins
	// over keyword rules.
	PriorityLabelPattern string
	PriorityLabels       map[string]model.Priority
	PriorityRules        []PriorityRule // first matching rule wins
	DefaultPriority      model.Priority

	TagPattern    string
	TitleMaxRunes int
	Ellipsis      string

	Weights Weights
}

// standalone matches a single-syllable keyword only when it is not part of a
// longer Hangul word.
func standalone(word string) string {
	return `(?:^|[^\p{Hangul}])` + word + `(?:[^\p{Hangul}]|$)`
}

// DefaultRules returns the rules used for Korean team chat.
func DefaultRules() Rules {
	return Rules{
		ActionPatterns: []string{
			`해\s*줘`,
			`해주세요`,
			`부탁`,
			`진행하(?:자|세요)`,
			`처리`,
			`배포|릴리즈`,
			`테스트`,
			`정리|문서화|Docs?`,
			`업데이트`,
			`(?:회의|미팅).*(?:잡|스케줄|예약|일정)`,
			`리뷰|코드\s*리뷰|PR`,
			`확인\s*좀`,
			`공유\s*해`,
			`보내`,
			`제출`,
		},
		TodoPrefix: "/todo",

		HandlePattern:         `@([가-힣A-Za-z0-9_]+)`,
		AssigneeLabelPattern:  `담당(?:자)?\s*[:：]\s*([^\s,]+)`,
		AssigneeSuffixPattern: `([가-힣A-Za-z0-9_]+)\s*담당`,

		PriorityLabelPattern: `우선\s*순위\s*[:：]?\s*(높음|보통|낮음|상|중|하|P[0-3])`,
		PriorityLabels: map[string]model.Priority{
			"높음": model.PriorityHigh,
			"상":  model.PriorityHigh,
			"P0": model.PriorityHigh,
			"P1": model.PriorityHigh,
			"보통": model.PriorityNormal,
			"중":  model.PriorityNormal,
			"P2": model.PriorityNormal,
			"낮음": model.PriorityLow,
			"하":  model.PriorityLow,
			"P3": model.PriorityLow,
		},
		PriorityRules: []PriorityRule{
			{Level: model.PriorityHigh, Patterns: []string{`긴급|급함|핫픽스|최우선|P0`}},
			{Level: model.PriorityHigh, Patterns: []string{`우선`, standalone(`상`), `P1`}},
			{Level: model.PriorityNormal, Patterns: []string{standalone(`중`), `P2`}},
			{Level: model.PriorityLow, Patterns: []string{standalone(`하`), `P3`, `나중에`}},
		},
		DefaultPriority: model.PriorityNormal,

		TagPattern:    `#([^\s#]+)`,
		TitleMaxRunes: 64,
		Ellipsis:      "…",

		Weights: Weights{
			Base:      50,
			Intent:    20,
			Assignee:  10,
			DueDate:   10,
			Priority:  5,
			Tags:      5,
			TodoFloor: 90,
		},
	}
}
