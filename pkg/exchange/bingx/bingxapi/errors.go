package bingxapi

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
)

// ValidationError is returned before any network call when a caller supplied a value
// outside of the accepted domain.
type ValidationError struct {
	Field  string
	Value  interface{}
	Reason string
}

func newValidationError(field string, value interface{}, reason string, args ...interface{}) *ValidationError {
	return &ValidationError{
		Field:  field,
		Value:  value,
		Reason: fmt.Sprintf(reason, args...),
	}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("bingx: invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

// SigningError means the credential is missing or unusable.
type SigningError struct {
	Reason string
}

func (e *SigningError) Error() string {
	return "bingx: signing failed: " + e.Reason
}

// ConfigurationError is an invalid client level setting.
type ConfigurationError struct {
	Setting string
	Value   string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("bingx: invalid %s setting %q", e.Setting, e.Value)
}

// TransportError wraps connection failures, non-2xx responses and bodies that are
// not a parsable envelope.
type TransportError struct {
	Method     string
	URL        string
	StatusCode int
	Body       []byte
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("bingx: %s %s: status %d: %v", e.Method, e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("bingx: %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// RemoteRejection is a well-formed envelope that did not carry the expected data,
// either because the code is not the success code or because a data field is
// missing. It is an expected outcome (insufficient margin, unknown symbol, ...)
// and callers are supposed to branch on it.
type RemoteRejection struct {
	Code    ResponseCode
	Message string

	// Field is set when the envelope was successful but the named field was absent.
	Field string

	// Envelope is the raw response body.
	Envelope json.RawMessage
}

func (e *RemoteRejection) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("bingx: response field %q is missing (code: %s, msg: %s)", e.Field, e.Code, e.Message)
	}
	return fmt.Sprintf("bingx: request rejected (code: %s, msg: %s)", e.Code, e.Message)
}

// IsRemoteRejection reports whether err is (or wraps) a *RemoteRejection and
// returns it.
func IsRemoteRejection(err error) (*RemoteRejection, bool) {
	var rejection *RemoteRejection
	if errors.As(err, &rejection) {
		return rejection, true
	}
	return nil, false
}
