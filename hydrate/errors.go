package hydrate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

var (
	ErrNilTarget       = errors.New("hydration target is nil")
	ErrNotPointer      = errors.New("hydration target must be a pointer to a struct")
	ErrConstruction    = errors.New("type cannot be default-constructed")
	ErrUnsupportedType = errors.New("type has no default provider")
	ErrCyclicType      = errors.New("type refers to itself")

	errNilProvided = errors.New("provider returned nil")
)

// ConstructionError reports a type whose default instance could not be built,
// either because its Constructor hook or a registered provider failed.
type ConstructionError struct {
	Type reflect.Type
	Path string // Field path (e.g., "Order.Customer.Address")
	Err  error
}

func (e *ConstructionError) Error() string {
	msg := fmt.Sprintf("cannot construct %s", e.Type)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	if e.Path != "" {
		return fmt.Sprintf("construction error at %s: %s", e.Path, msg)
	}
	return "construction error: " + msg
}

func (e *ConstructionError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrConstruction}
	}
	return []error{ErrConstruction, e.Err}
}

// UnsupportedTypeError reports a field type that matches no default category.
type UnsupportedTypeError struct {
	Type reflect.Type
	Path string
}

func (e *UnsupportedTypeError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("unsupported type error at %s: no default for %s", e.Path, e.Type)
	}
	return fmt.Sprintf("unsupported type error: no default for %s", e.Type)
}

func (e *UnsupportedTypeError) Unwrap() error {
	return ErrUnsupportedType
}

// CyclicTypeError reports a default construction that would recurse into a
// type already being hydrated on the same path.
type CyclicTypeError struct {
	Type  reflect.Type
	Path  string
	Chain []reflect.Type // composite types on the active path, ending with Type
}

func (e *CyclicTypeError) Error() string {
	names := make([]string, 0, len(e.Chain))
	for _, t := range e.Chain {
		names = append(names, t.String())
	}

	msg := fmt.Sprintf("circular type %s (%s)", e.Type, strings.Join(names, " -> "))
	if e.Path != "" {
		return fmt.Sprintf("cyclic type error at %s: %s", e.Path, msg)
	}
	return "cyclic type error: " + msg
}

func (e *CyclicTypeError) Unwrap() error {
	return ErrCyclicType
}
