package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType categorizes different error types
type ErrorType string

const (
	// Network errors
	ErrorTypeNetwork    ErrorType = "network"
	ErrorTypeTimeout    ErrorType = "timeout"
	ErrorTypeConnection ErrorType = "connection"
	ErrorTypeHTTP       ErrorType = "http"

	// Authentication errors
	ErrorTypeAuth           ErrorType = "auth"
	ErrorTypeAuthRequired   ErrorType = "auth_required"
	ErrorTypeUnauthorized   ErrorType = "unauthorized"
	ErrorTypeForbidden      ErrorType = "forbidden"
	ErrorTypeSessionExpired ErrorType = "session_expired"

	// Validation errors
	ErrorTypeValidation    ErrorType = "validation"
	ErrorTypeFileNotFound  ErrorType = "file_not_found"
	ErrorTypeInvalidFormat ErrorType = "invalid_format"

	// Server errors
	ErrorTypeServer    ErrorType = "server"
	ErrorTypeNotFound  ErrorType = "not_found"
	ErrorTypeConflict  ErrorType = "conflict"
	ErrorTypeRateLimit ErrorType = "rate_limit"

	// Feed errors
	ErrorTypeFeedLoad ErrorType = "feed_load"

	// Engagement errors
	ErrorTypeConcurrentToggle ErrorType = "concurrent_toggle"
	ErrorTypeToggleFailed     ErrorType = "toggle_failed"

	// Attachment errors
	ErrorTypeAttachmentTooLarge  ErrorType = "attachment_too_large"
	ErrorTypeAttachmentWrongType ErrorType = "attachment_wrong_type"
	ErrorTypeAttachmentCapacity  ErrorType = "attachment_capacity"

	// Unknown errors
	ErrorTypeUnknown ErrorType = "unknown"
)

// CLIError represents a structured error with context
type CLIError struct {
	Type       ErrorType
	Message    string
	Cause      error
	Suggestion string
	StatusCode int
	RetryAfter int
}

// Error implements the error interface
func (e *CLIError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// WithSuggestion adds a helpful suggestion to the error
func (e *CLIError) WithSuggestion(suggestion string) *CLIError {
	e.Suggestion = suggestion
	return e
}

// HasSuggestion returns true if the error has a suggestion
func (e *CLIError) HasSuggestion() bool {
	return e.Suggestion != ""
}

// Unwrap returns the underlying error
func (e *CLIError) Unwrap() error {
	return e.Cause
}

// NewCLIError creates a new CLI error
func NewCLIError(errorType ErrorType, message string, cause error) *CLIError {
	return &CLIError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// NetworkError creates a network error
func NetworkError(message string) *CLIError {
	err := NewCLIError(ErrorTypeNetwork, message, nil)
	err.Suggestion = "Check your internet connection and try again."
	return err
}

// TimeoutError creates a timeout error
func TimeoutError() *CLIError {
	err := NewCLIError(ErrorTypeTimeout, "Request timed out", nil)
	err.Suggestion = "The server is taking too long to respond. Try again in a moment."
	return err
}

// AuthError creates an authentication error
func AuthError(message string) *CLIError {
	err := NewCLIError(ErrorTypeAuth, message, nil)
	err.Suggestion = "Update your session with 'neighborbank-cli auth use'."
	return err
}

// AuthRequiredError is returned when an action needs a signed-in identity
func AuthRequiredError(action string) *CLIError {
	err := NewCLIError(ErrorTypeAuthRequired, fmt.Sprintf("Sign-in required to %s", action), nil)
	err.Suggestion = "Run 'neighborbank-cli auth use' with your user id and token."
	return err
}

// SessionExpiredError creates a session expired error
func SessionExpiredError() *CLIError {
	err := NewCLIError(ErrorTypeSessionExpired, "Your session has expired", nil)
	err.Suggestion = "Run 'neighborbank-cli auth use' with a fresh token."
	return err
}

// ForbiddenError creates a forbidden error
func ForbiddenError(message string) *CLIError {
	if message == "" {
		message = "Access denied"
	}
	return NewCLIError(ErrorTypeForbidden, message, nil)
}

// ValidationError creates a validation error
func ValidationError(field, reason string) *CLIError {
	message := fmt.Sprintf("Validation error: %s - %s", field, reason)
	return NewCLIError(ErrorTypeValidation, message, nil)
}

// FileNotFoundError creates a file not found error
func FileNotFoundError(path string) *CLIError {
	err := NewCLIError(ErrorTypeFileNotFound, fmt.Sprintf("File not found: %s", path), nil)
	err.Suggestion = "Check the file path and try again."
	return err
}

// ServerError creates a server error
func ServerError() *CLIError {
	err := NewCLIError(ErrorTypeServer, "Server error", nil)
	err.Suggestion = "The server encountered an error. Try again in a few moments."
	return err
}

// NotFoundError creates a not found error
func NotFoundError(resourceType, identifier string) *CLIError {
	return NewCLIError(ErrorTypeNotFound,
		fmt.Sprintf("%s not found: %s", resourceType, identifier),
		nil)
}

// RateLimitError creates a rate limit error
func RateLimitError(retryAfter int) *CLIError {
	err := NewCLIError(ErrorTypeRateLimit,
		"Rate limit exceeded. Too many requests.",
		nil)
	err.RetryAfter = retryAfter
	err.Suggestion = fmt.Sprintf("Please wait %d seconds before trying again.", retryAfter)
	return err
}

// ConflictError creates a conflict error
func ConflictError(message string) *CLIError {
	return NewCLIError(ErrorTypeConflict, message, nil)
}

// FeedLoadError wraps a failed feed fetch. The same cursor can be retried.
func FeedLoadError(category string, cause error) *CLIError {
	err := NewCLIError(ErrorTypeFeedLoad, fmt.Sprintf("Failed to load feed for category %q", category), cause)
	err.Suggestion = "Posts could not be loaded. Try again."
	return err
}

// ConcurrentToggleError is returned when a toggle for the same key is still in flight
func ConcurrentToggleError(key string) *CLIError {
	return NewCLIError(ErrorTypeConcurrentToggle, fmt.Sprintf("Toggle already in progress: %s", key), nil)
}

// ToggleRequestFailed wraps a failed toggle request. Local state has been rolled back.
func ToggleRequestFailed(key string, cause error) *CLIError {
	err := NewCLIError(ErrorTypeToggleFailed, fmt.Sprintf("Failed to update %s", key), cause)
	err.Suggestion = "Nothing was changed. Try again."
	return err
}

// AttachmentTooLargeError rejects a file at or above the size limit
func AttachmentTooLargeError(name string, size, limit int64) *CLIError {
	err := NewCLIError(ErrorTypeAttachmentTooLarge,
		fmt.Sprintf("%s is too large: %.1f MB (must be under %.0f MB)", name, float64(size)/1024/1024, float64(limit)/1024/1024),
		nil)
	err.Suggestion = "Images must be smaller than 2 MB."
	return err
}

// AttachmentWrongTypeError rejects a file that is not an image
func AttachmentWrongTypeError(name, mimeType string) *CLIError {
	err := NewCLIError(ErrorTypeAttachmentWrongType,
		fmt.Sprintf("%s is not an image (%s)", name, mimeType),
		nil)
	err.Suggestion = "Only image files can be attached."
	return err
}

// AttachmentCapacityError rejects a whole batch that would exceed the limit
func AttachmentCapacityError(current, incoming, limit int) *CLIError {
	err := NewCLIError(ErrorTypeAttachmentCapacity,
		fmt.Sprintf("Cannot attach %d more file(s): %d already attached, limit is %d", incoming, current, limit),
		nil)
	err.Suggestion = fmt.Sprintf("Up to %d images can be attached. Remove some files first.", limit)
	return err
}

// IsType reports whether err is a CLIError of the given type
func IsType(err error, errorType ErrorType) bool {
	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		return cliErr.Type == errorType
	}
	return false
}

// Recoverable reports whether the user can retry or correct the input.
// Not-found and unknown errors are terminal for the current view.
func Recoverable(err error) bool {
	var cliErr *CLIError
	if !errors.As(err, &cliErr) {
		return false
	}
	switch cliErr.Type {
	case ErrorTypeNotFound, ErrorTypeForbidden, ErrorTypeUnknown:
		return false
	default:
		return true
	}
}

// CategorizeError converts a standard error into a CLIError
func CategorizeError(err error) *CLIError {
	if err == nil {
		return nil
	}

	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		return cliErr
	}

	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "connection refused"):
		return NetworkError("Could not connect to server. Make sure it's running.")
	case strings.Contains(errMsg, "context deadline exceeded"), strings.Contains(errMsg, "timeout"):
		return TimeoutError()
	case strings.Contains(errMsg, "401") || strings.Contains(errMsg, "unauthorized"):
		return AuthError("Invalid credentials")
	case strings.Contains(errMsg, "403") || strings.Contains(errMsg, "forbidden"):
		return ForbiddenError("")
	case strings.Contains(errMsg, "404") || strings.Contains(errMsg, "not found"):
		return NotFoundError("Resource", "unknown")
	case strings.Contains(errMsg, "429") || strings.Contains(errMsg, "rate limit"):
		return RateLimitError(60)
	case strings.Contains(errMsg, "500") || strings.Contains(errMsg, "server error"):
		return ServerError()
	default:
		return NewCLIError(ErrorTypeUnknown, errMsg, nil)
	}
}

// FormatError returns a user-friendly error message
func FormatError(err error) string {
	if err == nil {
		return ""
	}

	cliErr := CategorizeError(err)
	var sb strings.Builder

	sb.WriteString("Error")
	if cliErr.Type != ErrorTypeUnknown {
		sb.WriteString(" (")
		sb.WriteString(string(cliErr.Type))
		sb.WriteString(")")
	}
	sb.WriteString(": ")
	sb.WriteString(cliErr.Error())
	sb.WriteString("\n")

	if cliErr.HasSuggestion() {
		sb.WriteString("\nSuggestion: ")
		sb.WriteString(cliErr.Suggestion)
		sb.WriteString("\n")
	}

	if cliErr.Type == ErrorTypeRateLimit && cliErr.RetryAfter > 0 {
		sb.WriteString(fmt.Sprintf("\nRetry in: %d seconds\n", cliErr.RetryAfter))
	}

	return sb.String()
}
