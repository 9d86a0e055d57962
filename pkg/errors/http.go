package errors

import "net/http"

// HTTPError is an error that knows how it should be rendered to a client.
type HTTPError struct {
	Code       int    `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError returns a 400 HTTPError.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message, StatusCode: http.StatusBadRequest}
}

// NewNotFoundError returns a 404 HTTPError.
func NewNotFoundError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message, StatusCode: http.StatusNotFound}
}

// NewUnavailableError returns a 503 HTTPError.
func NewUnavailableError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message, StatusCode: http.StatusServiceUnavailable}
}

// Status returns the HTTP status for e, defaulting to 400.
func (e *HTTPError) Status() int {
	if e.StatusCode == 0 {
		return http.StatusBadRequest
	}
	return e.StatusCode
}
