package kalshi

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors returned by the Kalshi client.
var (
	// ErrInvalidConfig indicates invalid client configuration.
	ErrInvalidConfig = errors.New("invalid kalshi client configuration")
)

// ValidationError is returned for 400 responses. Field names the offending
// parameter when the server reported one.
type ValidationError struct {
	Message string
	Field   string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s (field: %s)", e.Message, e.Field)
	}
	return e.Message
}

// AuthError is returned for 401 responses.
type AuthError struct {
	Message string
}

// Error implements the error interface
func (e *AuthError) Error() string {
	return e.Message
}

// NotFoundError is returned for 404 responses.
type NotFoundError struct {
	Message string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return e.Message
}

// RateLimitError is returned for 429 responses. The client never retries;
// backoff is the caller's decision.
type RateLimitError struct {
	Message string
}

// Error implements the error interface
func (e *RateLimitError) Error() string {
	return e.Message
}

// ServerError is returned for responses with status >= 500.
type ServerError struct {
	Message string
}

// Error implements the error interface
func (e *ServerError) Error() string {
	return e.Message
}

// APIError is returned for any other non-success status. It carries the
// status code and raw response body so the failure can be understood
// without re-issuing the request.
type APIError struct {
	Message      string
	StatusCode   int
	ResponseText string
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("kalshi API error (%d): %s", e.StatusCode, e.Message)
	}
	return e.Message
}

// TransportError indicates the request never received a valid API-level
// answer: connection failure, timeout, or an unreadable response. It is
// deliberately distinct from the status-code error types above.
type TransportError struct {
	Op  string
	Err error
}

// Error implements the error interface
func (e *TransportError) Error() string {
	return fmt.Sprintf("transport failure during %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying cause.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// classify maps an HTTP status code and body to an error from the taxonomy
// above, or nil for success statuses. First match wins.
func classify(status int, body []byte) error {
	text := string(body)
	switch {
	case status == http.StatusBadRequest:
		return &ValidationError{Message: "Validation error: " + text}
	case status == http.StatusUnauthorized:
		return &AuthError{Message: "Authentication failed"}
	case status == http.StatusNotFound:
		return &NotFoundError{Message: "Resource not found"}
	case status == http.StatusTooManyRequests:
		return &RateLimitError{Message: "Rate limit exceeded"}
	case status >= http.StatusInternalServerError:
		return &ServerError{Message: fmt.Sprintf("Server error: %d - %s", status, text)}
	case status >= http.StatusBadRequest:
		return &APIError{Message: "API error: " + text, StatusCode: status, ResponseText: text}
	}
	return nil
}
