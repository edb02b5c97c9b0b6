// FILE: lixenwraith/params/errors.go
package params

import (
	"errors"
	"fmt"
)

var (
	// Registry construction
	ErrDuplicateName = errors.New("duplicate parameter name")
	ErrInvalidName   = errors.New("invalid parameter name")
	ErrSealed        = errors.New("registry is sealed")
	ErrNoTarget      = errors.New("parameter has no target")

	// Lookup
	ErrNotFound = errors.New("parameter not found")

	// Binding
	ErrUnknownParameter   = errors.New("unknown parameter")
	ErrTypeCoercion       = errors.New("value does not match parameter kind")
	ErrOverflow           = errors.New("value exceeds string capacity")
	ErrMissingValue       = errors.New("flag has no value")
	ErrUnexpectedArgument = errors.New("unexpected argument")

	// Sources
	ErrFileNotFound = errors.New("parameter file not found")
	ErrNestedValue  = errors.New("nested values are not supported")

	// ErrUsage is returned by Setup after printing usage; the caller exits non-zero.
	ErrUsage = errors.New("usage requested")
)

// ParamError records a failure tied to one parameter name and, when known, the offending value.
type ParamError struct {
	Op    string // "register", "lookup", "change", "load"
	Name  string
	Value string
	Err   error
}

func (e *ParamError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Name, e.Err)
	}
	return fmt.Sprintf("%s %s=%q: %v", e.Op, e.Name, e.Value, e.Err)
}

func (e *ParamError) Unwrap() error {
	return e.Err
}

func isUnknown(err error) bool {
	return errors.Is(err, ErrUnknownParameter)
}
