package dates

import (
	"time"

	"actionsense/pkg/datemath"
)

// --- UseCase Inputs ---

// ResolveInput is a piece of free text and the moment it was written.
// A zero Reference means now.
type ResolveInput struct {
	Text      string
	Reference time.Time
}

// --- UseCase Outputs ---

type ResolveOutput struct {
	Resolved    bool
	Date        datemath.Date
	Rule        datemath.Rule
	RuleVersion string
	Reference   datemath.Date
}
