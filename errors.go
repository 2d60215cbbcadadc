package stubc

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrNoDefault is matched by a ConfigurationError raised for a result type
	// that has no synthesizable default value.
	ErrNoDefault = errors.New("stubc: no default value")
	// ErrUnstubbedCall is matched by every UnstubbedCallError.
	ErrUnstubbedCall = errors.New("stubc: unstubbed call")
)

// ConfigurationError reports a mock that was configured in a way that cannot
// produce an outcome.
type ConfigurationError struct {
	Method string
	Type   reflect.Type
	Reason string

	noDefault bool
}

func (e *ConfigurationError) Error() string {
	msg := "stubc: invalid configuration"
	if e.Method != "" {
		msg += fmt.Sprintf(" of %s", e.Method)
	}
	if e.Type != nil {
		msg += fmt.Sprintf(" (type %v)", e.Type)
	}

	return msg + ": " + e.Reason
}

func (e *ConfigurationError) Is(target error) bool {
	return e.noDefault && target == ErrNoDefault
}

func noDefaultError(method string, t reflect.Type) *ConfigurationError {
	return &ConfigurationError{
		Method:    method,
		Type:      t,
		Reason:    "result type has no default value; install Return or AlwaysReturn before calling",
		noDefault: true,
	}
}

func configErrorf(method string, format string, args ...interface{}) *ConfigurationError {
	return &ConfigurationError{
		Method: method,
		Reason: fmt.Sprintf(format, args...),
	}
}

// UnstubbedCallError reports a call to a method that has neither a queued
// behavior, an always behavior nor an installed default.
type UnstubbedCallError struct {
	Method string
	Args   []interface{}
}

func (e *UnstubbedCallError) Error() string {
	return fmt.Sprintf("stubc: unstubbed call to %s with args %v", e.Method, e.Args)
}

func (e *UnstubbedCallError) Is(target error) bool {
	return target == ErrUnstubbedCall
}
