package gemini

import "time"

const (
	// DefaultModel is the default Gemini model
	DefaultModel = "gemini-2.5-flash"

	// DefaultAPIURL is the default Gemini API endpoint
	DefaultAPIURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	actionItemTemperature = 0.2
	actionItemMaxTokens   = 500
)

// Wrapper keys models tend to put an action item list under.
var actionItemKeys = []string{
	"actionItems",
	"actions",
	"items",
	"list",
	"tasks",
	"todos",
	"action_items",
}
