package errors

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Handler source errors
	ErrSourceInvalid   ErrorCode = "SOURCE_INVALID"
	ErrSourceEnumerate ErrorCode = "SOURCE_ENUMERATE"

	// Conversion errors
	ErrNoHandler   ErrorCode = "NO_HANDLER"
	ErrUnknownType ErrorCode = "UNKNOWN_TYPE"
)

// Detail keys. Source, type and property are rendered into Error() in
// that order; other details are only available through GetErrorDetails.
const (
	DetailSource   = "source"
	DetailType     = "type"
	DetailProperty = "property"
	DetailPath     = "path"
	DetailFormat   = "format"
)

var contextKeys = []string{DetailSource, DetailType, DetailProperty}

// PropconvError is a coded error carrying the handler source, target type
// or property it concerns.
type PropconvError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error renders "[CODE] message (source=x type=y): wrapped".
func (e *PropconvError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", e.Code, e.Message)

	var ctx []string
	for _, key := range contextKeys {
		if v, ok := e.Details[key]; ok {
			ctx = append(ctx, fmt.Sprintf("%s=%v", key, v))
		}
	}
	if len(ctx) > 0 {
		fmt.Fprintf(&b, " (%s)", strings.Join(ctx, " "))
	}

	if e.Wrapped != nil {
		fmt.Fprintf(&b, ": %v", e.Wrapped)
	}
	return b.String()
}

// Unwrap implements the errors.Unwrap interface
func (e *PropconvError) Unwrap() error {
	return e.Wrapped
}

// Is matches any PropconvError with the same code.
func (e *PropconvError) Is(target error) bool {
	var targetErr *PropconvError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

func newError(code ErrorCode, message string, wrapped error) *PropconvError {
	return &PropconvError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: wrapped,
	}
}

// New creates a new PropconvError with the given code and message
func New(code ErrorCode, message string) *PropconvError {
	return newError(code, message, nil)
}

// Newf creates a new PropconvError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PropconvError {
	return newError(code, fmt.Sprintf(format, args...), nil)
}

// Wrap wraps err. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) *PropconvError {
	if err == nil {
		return nil
	}
	return newError(code, message, err)
}

// Wrapf wraps err with a formatted message. A nil err yields nil.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PropconvError {
	if err == nil {
		return nil
	}
	return newError(code, fmt.Sprintf(format, args...), err)
}

// WithDetail adds a detail to the error
func (e *PropconvError) WithDetail(key string, value interface{}) *PropconvError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithSource records the handler source the error concerns.
func (e *PropconvError) WithSource(name string) *PropconvError {
	return e.WithDetail(DetailSource, name)
}

// WithType records the target type the error concerns. Types are stored by
// their String() form so details stay printable and comparable.
func (e *PropconvError) WithType(t reflect.Type) *PropconvError {
	if t == nil {
		return e.WithDetail(DetailType, "<nil>")
	}
	return e.WithDetail(DetailType, t.String())
}

// WithTypeName records a target type given by name, as typed by a user.
func (e *PropconvError) WithTypeName(name string) *PropconvError {
	return e.WithDetail(DetailType, name)
}

// WithProperty records the property the error concerns.
func (e *PropconvError) WithProperty(name string) *PropconvError {
	return e.WithDetail(DetailProperty, name)
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var pcErr *PropconvError
	if errors.As(err, &pcErr) {
		return pcErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PropconvError
func GetErrorCode(err error) ErrorCode {
	var pcErr *PropconvError
	if errors.As(err, &pcErr) {
		return pcErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a PropconvError
func GetErrorDetails(err error) map[string]interface{} {
	var pcErr *PropconvError
	if errors.As(err, &pcErr) {
		return pcErr.Details
	}
	return nil
}

// SourceOf returns the handler source recorded anywhere in err's chain.
func SourceOf(err error) string {
	return detailString(err, DetailSource)
}

// TypeOf returns the target type name recorded anywhere in err's chain.
func TypeOf(err error) string {
	return detailString(err, DetailType)
}

func detailString(err error, key string) string {
	for err != nil {
		var pcErr *PropconvError
		if !errors.As(err, &pcErr) {
			return ""
		}
		if v, ok := pcErr.Details[key].(string); ok {
			return v
		}
		err = pcErr.Wrapped
	}
	return ""
}
