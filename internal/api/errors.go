package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrSessionExpired means the access token was rejected and could not be refreshed
	ErrSessionExpired = errors.New("session expired, run `hirepaso session login`")

	// ErrServiceUnavailable means the circuit breaker is refusing calls
	ErrServiceUnavailable = errors.New("recruiting service is unavailable, try again shortly")
)

// Error is a non-2xx response from the recruiting API
type Error struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: %d %s", e.Op, e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("%s: %d %s", e.Op, e.StatusCode, e.Message)
}

// ClientError reports a 4xx response. These are the caller's fault and do not trip the breaker.
func (e *Error) ClientError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}

// IsStatus reports whether err is an *Error with the given status code
func IsStatus(err error, code int) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}

// IsNotFound reports whether err is a 404 from the API
func IsNotFound(err error) bool {
	return IsStatus(err, http.StatusNotFound)
}

// errorBody covers the shapes the API uses for failures
type errorBody struct {
	Detail  json.RawMessage `json:"detail"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

const maxMessageLen = 200

// newError builds an *Error from a response body, surfacing detail/message when present
func newError(op string, status int, body []byte) *Error {
	return &Error{Op: op, StatusCode: status, Message: extractMessage(body)}
}

func extractMessage(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		if len(eb.Detail) > 0 {
			var detail string
			if json.Unmarshal(eb.Detail, &detail) == nil {
				return detail
			}
			return truncate(string(eb.Detail))
		}
		if eb.Message != "" {
			return eb.Message
		}
		if eb.Error != "" {
			return eb.Error
		}
	}
	return truncate(strings.TrimSpace(string(body)))
}

func truncate(s string) string {
	if len(s) <= maxMessageLen {
		return s
	}
	return s[:maxMessageLen] + "..."
}
