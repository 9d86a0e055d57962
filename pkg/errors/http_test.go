package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPError(t *testing.T) {
	tests := []struct {
		name   string
		err    *HTTPError
		status int
	}{
		{name: "bad request", err: NewHTTPError(10001, "bad"), status: http.StatusBadRequest},
		{name: "not found", err: NewNotFoundError(10002, "missing"), status: http.StatusNotFound},
		{name: "unavailable", err: NewUnavailableError(10003, "down"), status: http.StatusServiceUnavailable},
		{name: "zero status", err: &HTTPError{Code: 1, Message: "x"}, status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Status(); got != tt.status {
				t.Errorf("Status() = %d, want %d", got, tt.status)
			}
			if tt.err.Error() != tt.err.Message {
				t.Errorf("Error() = %q", tt.err.Error())
			}
		})
	}
}

func TestHTTPErrorWrapped(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", NewNotFoundError(10002, "missing"))

	var he *HTTPError
	if !errors.As(wrapped, &he) {
		t.Fatal("errors.As failed on wrapped HTTPError")
	}
	if he.Code != 10002 {
		t.Errorf("Code = %d", he.Code)
	}
}
