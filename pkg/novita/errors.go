package novita

import (
	"errors"
	"fmt"
	"net/http"
)

// Static errors that can be wrapped with context.
var (
	ErrClientClosed   = errors.New("client is closed")
	ErrConfigRequired = errors.New("config is required")
	ErrAPIKeyRequired = errors.New("API key is required")
)

// APIError represents a non-2xx response from the Novita API. It is the
// fallback kind for any status code without a more specific error type.
type APIError struct {
	StatusCode int    `json:"status_code"`
	Code       string `json:"code,omitempty"`
	Message    string `json:"message"`
	// Body is the raw response body, kept for diagnostics. Secret request
	// fields never appear here because the API does not echo them back.
	Body []byte `json:"-"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("API error %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}

	return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
}

// AuthenticationError is returned for 401 responses.
type AuthenticationError struct {
	APIError
}

// BadRequestError is returned for 400 responses.
type BadRequestError struct {
	APIError
}

// NotFoundError is returned for 404 responses. It is distinguished from
// BadRequestError because callers often branch on "does not exist".
type NotFoundError struct {
	APIError
}

// RateLimitError is returned for 429 responses.
type RateLimitError struct {
	APIError
}

// TimeoutError is raised by the transport when no response was received
// before the configured deadline. It never carries a status code.
type TimeoutError struct {
	Err error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request timed out: %v", e.Err)
}

func (e *TimeoutError) Unwrap() error {
	return e.Err
}

// ConfigurationError reports invalid or missing client configuration,
// detected before any network call is attempted.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Message
}

// ValidationError reports a request or response value that violates its
// declared shape. For requests it is returned before any network call.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation error: " + e.Message
	}

	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// NewStatusError maps an HTTP status code and response body to the
// corresponding taxonomy member. Exactly one error kind exists per call.
func NewStatusError(statusCode int, code, message string, body []byte) error {
	base := APIError{StatusCode: statusCode, Code: code, Message: message, Body: body}

	switch statusCode {
	case http.StatusUnauthorized:
		return &AuthenticationError{base}
	case http.StatusBadRequest:
		return &BadRequestError{base}
	case http.StatusNotFound:
		return &NotFoundError{base}
	case http.StatusTooManyRequests:
		return &RateLimitError{base}
	default:
		return &base
	}
}

// IsAuthentication checks if the error is an authentication (401) error.
func IsAuthentication(err error) bool {
	var target *AuthenticationError

	return errors.As(err, &target)
}

// IsBadRequest checks if the error is a bad request (400) error.
func IsBadRequest(err error) bool {
	var target *BadRequestError

	return errors.As(err, &target)
}

// IsNotFound checks if the error is a not found (404) error.
func IsNotFound(err error) bool {
	var target *NotFoundError

	return errors.As(err, &target)
}

// IsRateLimit checks if the error is a rate limit (429) error.
func IsRateLimit(err error) bool {
	var target *RateLimitError

	return errors.As(err, &target)
}

// IsTimeout checks if the error is a transport-level timeout.
func IsTimeout(err error) bool {
	var target *TimeoutError

	return errors.As(err, &target)
}

// IsValidation checks if the error is a request/response validation error.
func IsValidation(err error) bool {
	var target *ValidationError

	return errors.As(err, &target)
}
