package finder

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupErrorMessage(t *testing.T) {
	err := &LookupError{Key: "port", Type: reflect.TypeFor[int]()}
	assert.Equal(t, "finder: no int value for key port", err.Error())

	err = &LookupError{Type: reflect.TypeFor[string]()}
	assert.Equal(t, "finder: no string value in source", err.Error())

	err = &LookupError{Key: 7, Type: reflect.TypeFor[[]string]()}
	assert.Equal(t, "finder: no []string value for key 7", err.Error())
}

func TestLookupErrorUnwrap(t *testing.T) {
	err := &LookupError{Key: "k", Type: reflect.TypeFor[int]()}
	assert.ErrorIs(t, err, ErrNotFound)

	wrapped := fmt.Errorf("reading config: %w", err)
	assert.ErrorIs(t, wrapped, ErrNotFound)

	var lerr *LookupError
	assert.True(t, errors.As(wrapped, &lerr))
	assert.Equal(t, "k", lerr.Key)
}

func TestLookupErrorIs(t *testing.T) {
	err := &LookupError{Key: "k", Type: reflect.TypeFor[int]()}

	assert.True(t, errors.Is(err, &LookupError{}))
	assert.True(t, errors.Is(err, &LookupError{Key: "k"}))
	assert.True(t, errors.Is(err, &LookupError{Type: reflect.TypeFor[int]()}))
	assert.False(t, errors.Is(err, &LookupError{Key: "j"}))
	assert.False(t, errors.Is(err, &LookupError{Type: reflect.TypeFor[int64]()}))
	assert.False(t, errors.Is(err, errors.New("value not found")))
}
