package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_Creation(t *testing.T) {
	message := "validation failed"
	details := []ValidationDetail{
		{Field: "sort", Message: "unknown sort option"},
		{Field: "page", Message: "page must be a positive integer"},
	}

	err := NewValidationError(message, details...)

	assert.NotNil(t, err)
	assert.Equal(t, message, err.Message)
	assert.Equal(t, message, err.Error())
	assert.Len(t, err.Details, 2)
}

func TestValidationError_IsValidationError_Wrapped(t *testing.T) {
	err := fmt.Errorf("parsing query: %w", NewValidationError("bad page"))

	ve, ok := IsValidationError(err)
	assert.True(t, ok)
	assert.Equal(t, "bad page", ve.Message)
}

func TestValidationError_IsValidationError_WithOtherError(t *testing.T) {
	ve, ok := IsValidationError(errors.New("some other error"))
	assert.False(t, ok)
	assert.Nil(t, ve)
}

func TestFetchError_MessageTakesPrecedence(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := NewFetchError("request failed with status code 500", cause)

	assert.Equal(t, "request failed with status code 500", err.Error())
	assert.True(t, errors.Is(err, cause))
}

func TestFetchError_FallsBackToCause(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := NewFetchError("", cause)

	assert.Equal(t, "dial tcp: connection refused", err.Error())
}

func TestFetchError_FallbackMessage(t *testing.T) {
	assert.Equal(t, FallbackFetchMessage, NewFetchError("", nil).Error())
	assert.Equal(t, FallbackFetchMessage, NewFetchError("", errors.New("")).Error())
}

func TestFetchMessage(t *testing.T) {
	assert.Equal(t, "", FetchMessage(nil))
	assert.Equal(t, "boom", FetchMessage(errors.New("boom")))
	assert.Equal(t, FallbackFetchMessage, FetchMessage(errors.New("")))
}

func TestIsFetchError(t *testing.T) {
	wrapped := fmt.Errorf("loading: %w", NewFetchError("nope", nil))

	fe, ok := IsFetchError(wrapped)
	assert.True(t, ok)
	assert.Equal(t, "nope", fe.Message)

	_, ok = IsFetchError(errors.New("plain"))
	assert.False(t, ok)
}

func TestUnavailableError(t *testing.T) {
	err := NewUnavailableError("products are still loading")

	ue, ok := IsUnavailableError(err)
	assert.True(t, ok)
	assert.Equal(t, "products are still loading", ue.Error())
}

func TestInternalError_Creation(t *testing.T) {
	cause := errors.New("template error")
	err := NewInternalError("failed to render page", cause)

	assert.NotNil(t, err)
	assert.Equal(t, "failed to render page", err.Message)
	assert.Equal(t, cause, err.Cause)
	assert.Contains(t, err.Error(), "failed to render page")
	assert.Contains(t, err.Error(), "template error")
}

func TestInternalError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := NewInternalError("wrapper", cause)

	assert.Equal(t, cause, err.Unwrap())
	assert.True(t, errors.Is(err, cause))
}

func TestInternalError_NilCause(t *testing.T) {
	err := NewInternalError("no cause", nil)

	assert.Equal(t, "no cause", err.Error())
	assert.Nil(t, err.Unwrap())
}
