package finder

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrNotFound is the sentinel every LookupError unwraps to, so callers
// can test any failure from the throwing accessors with errors.Is.
var ErrNotFound = errors.New("value not found")

// LookupError reports that a throwing accessor could not produce a
// value: the resolved source was absent or unconvertible and no
// default was supplied. It carries the requested type and the key (nil
// for identity access) so callers can branch programmatically instead
// of parsing the message.
//
// LookupError supports errors.Is and errors.As:
//
//	v, err := finder.Find[int](data, "port")
//	if errors.Is(err, finder.ErrNotFound) { ... }
//
//	var lerr *finder.LookupError
//	if errors.As(err, &lerr) {
//	    log.Printf("missing %s at key %v", lerr.Type, lerr.Key)
//	}
type LookupError struct {
	// Key is the lookup key, or nil when the accessor targeted the
	// container itself.
	Key any

	// Type is the requested target type.
	Type reflect.Type
}

// Error implements the error interface.
func (e *LookupError) Error() string {
	if e.Key == nil {
		return fmt.Sprintf("finder: no %s value in source", e.Type)
	}
	return fmt.Sprintf("finder: no %s value for key %v", e.Type, e.Key)
}

// Unwrap returns ErrNotFound so errors.Is(err, ErrNotFound) holds for
// every lookup failure.
func (e *LookupError) Unwrap() error {
	return ErrNotFound
}

// Is matches another *LookupError field-wise; a zero field in the
// target acts as a wildcard.
func (e *LookupError) Is(target error) bool {
	t, ok := target.(*LookupError)
	if !ok {
		return false
	}
	if t.Key != nil && t.Key != e.Key {
		return false
	}
	if t.Type != nil && t.Type != e.Type {
		return false
	}
	return true
}

// newLookupError builds the error raised by Find and friends for a
// target type known only through its type parameter.
func newLookupError[T any](key any) *LookupError {
	return &LookupError{Key: key, Type: reflect.TypeFor[T]()}
}
