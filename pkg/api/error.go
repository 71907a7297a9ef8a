package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-resty/resty/v2"
	json "github.com/json-iterator/go"
	clierrors "github.com/neighborbank/cli/pkg/errors"
)

// APIError represents an API error response
type APIError struct {
	Code       string
	Message    string
	StatusCode int
	RetryAfter int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("[%d] %s: %s", e.StatusCode, e.Code, e.Message)
}

// ParseError parses an error response from the API
func ParseError(resp *resty.Response) error {
	statusCode := resp.StatusCode()
	retryAfter, _ := strconv.Atoi(resp.Header().Get("Retry-After"))

	// Try to parse as JSON error response
	var errResp ErrorResponse
	if err := json.Unmarshal(resp.Body(), &errResp); err == nil && (errResp.Message != "" || errResp.Error != "") {
		code := errResp.Error
		if code == "" {
			code = http.StatusText(statusCode)
		}
		message := errResp.Message
		if message == "" {
			message = errResp.Error
		}
		return &APIError{
			Code:       code,
			Message:    message,
			StatusCode: statusCode,
			RetryAfter: retryAfter,
		}
	}

	// Fallback to generic error
	return &APIError{
		Code:       "unknown_error",
		Message:    string(resp.Body()),
		StatusCode: statusCode,
		RetryAfter: retryAfter,
	}
}

func statusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// IsUnauthorized checks if error is due to missing/invalid authentication
func IsUnauthorized(err error) bool {
	return statusOf(err) == http.StatusUnauthorized
}

// IsForbidden checks if error is due to insufficient permissions
func IsForbidden(err error) bool {
	return statusOf(err) == http.StatusForbidden
}

// IsNotFound checks if error is due to resource not found
func IsNotFound(err error) bool {
	return statusOf(err) == http.StatusNotFound
}

// IsServerError checks if error is due to server error (5xx)
func IsServerError(err error) bool {
	return statusOf(err) >= 500
}

// CheckResponse checks if response is successful and returns error if not
func CheckResponse(resp *resty.Response, err error) error {
	if err != nil {
		return err
	}

	if !resp.IsSuccess() {
		return ParseError(resp)
	}

	return nil
}

// Classify turns a transport or API error into the CLIError shown to the
// user. resource and id name what was being fetched for not-found errors.
func Classify(err error, resource, id string) error {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return clierrors.CategorizeError(err)
	}

	var cliErr *clierrors.CLIError
	switch {
	case apiErr.StatusCode == http.StatusNotFound:
		cliErr = clierrors.NotFoundError(resource, id)
	case apiErr.StatusCode == http.StatusUnauthorized:
		cliErr = clierrors.AuthRequiredError("continue")
	case apiErr.StatusCode == http.StatusForbidden:
		cliErr = clierrors.ForbiddenError(apiErr.Message)
	case apiErr.StatusCode == http.StatusConflict:
		cliErr = clierrors.ConflictError(apiErr.Message)
	case apiErr.StatusCode == http.StatusTooManyRequests:
		retry := apiErr.RetryAfter
		if retry <= 0 {
			retry = 60
		}
		cliErr = clierrors.RateLimitError(retry)
	case apiErr.StatusCode >= 500:
		cliErr = clierrors.ServerError()
	case apiErr.StatusCode == http.StatusBadRequest:
		cliErr = clierrors.NewCLIError(clierrors.ErrorTypeValidation, apiErr.Message, nil)
	default:
		cliErr = clierrors.NewCLIError(clierrors.ErrorTypeHTTP, apiErr.Message, nil)
	}
	cliErr.StatusCode = apiErr.StatusCode
	if cliErr.Cause == nil && cliErr.Type != clierrors.ErrorTypeNotFound {
		cliErr.Cause = apiErr
	}
	return cliErr
}

// decodeBody parses a bare JSON scalar body such as `4` or `true`, which
// the server sends without a JSON content type.
func decodeBody(resp *resty.Response, target interface{}) error {
	if err := json.Unmarshal(resp.Body(), target); err != nil {
		return fmt.Errorf("unexpected response body %q: %w", string(resp.Body()), err)
	}
	return nil
}
