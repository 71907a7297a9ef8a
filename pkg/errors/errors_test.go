package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCLIError(t *testing.T) {
	cause := errors.New("underlying error")
	err := NewCLIError(ErrorTypeValidation, "Test error", cause)

	require.NotNil(t, err)
	assert.Equal(t, ErrorTypeValidation, err.Type)
	assert.Equal(t, "Test error", err.Message)
	assert.Equal(t, "Test error: underlying error", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestWithSuggestion(t *testing.T) {
	err := NewCLIError(ErrorTypeValidation, "Test", nil).WithSuggestion("Try something else")

	assert.True(t, err.HasSuggestion())
	assert.Equal(t, "Try something else", err.Suggestion)
}

func TestFeedLoadErrorWrapsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := FeedLoadError("3", cause)

	assert.Equal(t, ErrorTypeFeedLoad, err.Type)
	assert.ErrorIs(t, err, cause)
	assert.True(t, Recoverable(err))
	assert.Contains(t, err.Error(), `"3"`)
}

func TestToggleErrors(t *testing.T) {
	concurrent := ConcurrentToggleError("like:community:7")
	assert.True(t, IsType(concurrent, ErrorTypeConcurrentToggle))
	assert.False(t, concurrent.HasSuggestion())

	cause := errors.New("503")
	failed := ToggleRequestFailed("scrap:question:2", cause)
	assert.True(t, IsType(failed, ErrorTypeToggleFailed))
	assert.ErrorIs(t, failed, cause)
	assert.True(t, Recoverable(failed))
}

func TestAttachmentErrors(t *testing.T) {
	tooLarge := AttachmentTooLargeError("big.png", 3*1024*1024, 2*1024*1024)
	assert.Equal(t, ErrorTypeAttachmentTooLarge, tooLarge.Type)
	assert.Contains(t, tooLarge.Message, "3.0 MB")
	assert.Contains(t, tooLarge.Message, "under 2 MB")

	wrongType := AttachmentWrongTypeError("notes.pdf", "application/pdf")
	assert.Equal(t, ErrorTypeAttachmentWrongType, wrongType.Type)
	assert.Contains(t, wrongType.Message, "application/pdf")

	capacity := AttachmentCapacityError(4, 2, 5)
	assert.Equal(t, ErrorTypeAttachmentCapacity, capacity.Type)
	assert.Contains(t, capacity.Suggestion, "5")
}

func TestIsTypeThroughWrapping(t *testing.T) {
	err := fmt.Errorf("loading detail: %w", NotFoundError("Question", "42"))

	assert.True(t, IsType(err, ErrorTypeNotFound))
	assert.False(t, IsType(err, ErrorTypeAuthRequired))
	assert.False(t, IsType(errors.New("plain"), ErrorTypeNotFound))
}

func TestRecoverable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"not found is terminal", NotFoundError("Post", "1"), false},
		{"auth required can be fixed", AuthRequiredError("scrap"), true},
		{"capacity can be fixed", AttachmentCapacityError(5, 1, 5), true},
		{"plain error", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Recoverable(tt.err))
		})
	}
}

func TestCategorizeError(t *testing.T) {
	tests := []struct {
		msg  string
		want ErrorType
	}{
		{"dial tcp: connection refused", ErrorTypeNetwork},
		{"context deadline exceeded", ErrorTypeTimeout},
		{"401 unauthorized", ErrorTypeAuth},
		{"403 forbidden", ErrorTypeForbidden},
		{"404 not found", ErrorTypeNotFound},
		{"429 too many", ErrorTypeRateLimit},
		{"500 internal", ErrorTypeServer},
		{"something odd", ErrorTypeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			assert.Equal(t, tt.want, CategorizeError(errors.New(tt.msg)).Type)
		})
	}

	assert.Nil(t, CategorizeError(nil))

	original := AuthRequiredError("like")
	assert.Same(t, original, CategorizeError(original))
}

func TestFormatError(t *testing.T) {
	assert.Empty(t, FormatError(nil))

	out := FormatError(AttachmentCapacityError(5, 1, 5))
	assert.True(t, strings.HasPrefix(out, "Error (attachment_capacity): "))
	assert.Contains(t, out, "Suggestion: ")

	out = FormatError(RateLimitError(30))
	assert.Contains(t, out, "Retry in: 30 seconds")

	out = FormatError(errors.New("weird"))
	assert.True(t, strings.HasPrefix(out, "Error: weird"))
}
