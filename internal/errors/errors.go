package errors

import (
	"errors"
	"fmt"
)

// FallbackFetchMessage is shown when a failed fetch carries no message of its own.
const FallbackFetchMessage = "Failed to fetch products"

type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError struct {
	Message string
	Details []ValidationDetail
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string, details ...ValidationDetail) *ValidationError {
	return &ValidationError{
		Message: message,
		Details: details,
	}
}

func IsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// FetchError covers every way the product read can fail: transport, status
// code and payload decoding are not told apart.
type FetchError struct {
	Message string
	Cause   error
}

func (e *FetchError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Cause != nil && e.Cause.Error() != "" {
		return e.Cause.Error()
	}
	return FallbackFetchMessage
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

func NewFetchError(message string, cause error) *FetchError {
	return &FetchError{
		Message: message,
		Cause:   cause,
	}
}

func IsFetchError(err error) (*FetchError, bool) {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

// FetchMessage turns any fetch failure into the text shown to the user.
func FetchMessage(err error) string {
	if err == nil {
		return ""
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return FallbackFetchMessage
}

type UnavailableError struct {
	Message string
}

func (e *UnavailableError) Error() string {
	return e.Message
}

func NewUnavailableError(message string) *UnavailableError {
	return &UnavailableError{Message: message}
}

func IsUnavailableError(err error) (*UnavailableError, bool) {
	var ue *UnavailableError
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}

type InternalError struct {
	Message string
	Cause   error
}

func (e *InternalError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *InternalError) Unwrap() error {
	return e.Cause
}

func NewInternalError(message string, cause error) *InternalError {
	return &InternalError{
		Message: message,
		Cause:   cause,
	}
}
