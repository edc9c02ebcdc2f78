package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrAuthRequired short-circuits a bearer call when no valid session is
// held locally. The request is never dispatched.
var ErrAuthRequired = errors.New("not authenticated")

// Error is a non-success backend response. The message is taken from the
// response body's "message" field when present.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", http.StatusText(e.StatusCode), e.Message)
	}
	return http.StatusText(e.StatusCode)
}

func (e *Error) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// parseError builds an *Error from a non-2xx response. Backends answer with
// a {message} body; anything else falls back to the raw body text.
func parseError(statusCode int, fallback string, body []byte) error {
	var resp struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &resp); err == nil && resp.Message != "" {
		return &Error{StatusCode: statusCode, Message: resp.Message}
	}
	return &Error{StatusCode: statusCode, Message: fallback}
}

// IsNotFound reports whether err is a backend 404. Appointment listings use
// this to turn "no records" into an empty result instead of a failure.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.IsNotFound()
}
