package schedule

import "errors"

var (
	ErrEmptyText           = errors.New("text is empty")
	ErrTextTooLong         = errors.New("text is too long")
	ErrDateRequired        = errors.New("event has no date")
	ErrInvalidTime         = errors.New("start time is not a valid time of day")
	ErrInvalidDuration     = errors.New("duration must be positive")
	ErrCalendarUnavailable = errors.New("calendar is not configured")
	ErrCalendarFailed      = errors.New("calendar request failed")
)
