package finder

import (
	"iter"
	"reflect"
)

// CoerceEach applies Coerce to every element of a dynamic sequence,
// yielding the elements that convert and dropping the rest. Order is
// preserved and nothing is deduplicated.
//
// The returned sequence is lazy and restartable: each range over it
// walks the source again, and breaking out early stops further
// coercion. A nil or non-sequence source yields nothing.
func CoerceEach[T any](v any) iter.Seq[T] {
	return CoerceEachFunc[T](v, nil)
}

// CoerceEachFunc is CoerceEach with a Builder applied per element.
func CoerceEachFunc[T any](v any, build Builder[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if kindOf(v) != kindSlice {
			return
		}
		rv := reflect.ValueOf(v)
		for i := 0; i < rv.Len(); i++ {
			t, ok := CoerceFunc(rv.Index(i).Interface(), build)
			if !ok {
				continue
			}
			if !yield(t) {
				return
			}
		}
	}
}

// CoerceEachStrict yields one (value, ok) pair per source element
// instead of dropping failures, so the yielded count always equals the
// source length. Callers that must distinguish an empty sequence from
// one whose elements all failed to convert should use this form;
// CoerceEach and CoerceSlice collapse both into absence.
func CoerceEachStrict[T any](v any) iter.Seq2[T, bool] {
	return func(yield func(T, bool) bool) {
		if kindOf(v) != kindSlice {
			return
		}
		rv := reflect.ValueOf(v)
		for i := 0; i < rv.Len(); i++ {
			t, ok := Coerce[T](rv.Index(i).Interface())
			if !yield(t, ok) {
				return
			}
		}
	}
}

// CoerceSlice eagerly materializes CoerceEach. An empty outcome —
// whether from an empty source or from every element failing — is
// reported as absent.
func CoerceSlice[T any](v any) ([]T, bool) {
	return CoerceSliceFunc[T](v, nil)
}

// CoerceSliceFunc is CoerceSlice with a Builder applied per element.
func CoerceSliceFunc[T any](v any, build Builder[T]) ([]T, bool) {
	var out []T
	for t := range CoerceEachFunc(v, build) {
		out = append(out, t)
	}
	if len(out) == 0 {
		return nil, false
	}
	return out, true
}
