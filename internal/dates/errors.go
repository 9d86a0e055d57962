package dates

import "errors"

var (
	ErrInvalidReference = errors.New("reference must be YYYY-MM-DD or RFC3339")
	ErrTextTooLong      = errors.New("text is too long")
)
