package finder

import "reflect"

// resolve locates the lookup target. A nil key means identity access:
// the source itself is the target, which lets a prior lookup's result
// feed straight into a typed conversion. A non-nil key indexes the
// source when it is a mapping; anything else is absent.
func resolve(src, key any) (any, bool) {
	if key == nil {
		return src, true
	}
	switch m := src.(type) {
	case map[string]any:
		s, ok := key.(string)
		if !ok {
			return nil, false
		}
		v, ok := m[s]
		return v, ok
	case map[any]any:
		v, ok := m[key]
		return v, ok
	}
	if kindOf(src) != kindMap {
		return nil, false
	}
	rv := reflect.ValueOf(src)
	kv := reflect.ValueOf(key)
	if !kv.IsValid() || !kv.Type().AssignableTo(rv.Type().Key()) {
		return nil, false
	}
	ev := rv.MapIndex(kv)
	if !ev.IsValid() {
		return nil, false
	}
	return ev.Interface(), true
}

// Lookup resolves key against src (or src itself when key is nil),
// coerces the target to T, and falls back to def when coercion yields
// nothing. With no default the miss is reported as ok=false; a
// supplied default is always "found", so ok only reflects whether
// Lookup produced a value at all.
func Lookup[T any](src, key any, def ...T) (T, bool) {
	return LookupFunc[T](src, key, nil, def...)
}

// LookupFunc is Lookup with a Builder replacing default coercion.
func LookupFunc[T any](src, key any, build Builder[T], def ...T) (T, bool) {
	if target, ok := resolve(src, key); ok {
		if t, ok := CoerceFunc(target, build); ok {
			return t, true
		}
	}
	if len(def) > 0 {
		return def[0], true
	}
	var zero T
	return zero, false
}

// Find is the throwing form of Lookup: a miss with no default returns
// a *LookupError carrying the key and requested type. This is the only
// place a coercion failure becomes an error.
func Find[T any](src, key any, def ...T) (T, error) {
	return FindFunc[T](src, key, nil, def...)
}

// FindFunc is Find with a Builder replacing default coercion.
func FindFunc[T any](src, key any, build Builder[T], def ...T) (T, error) {
	if t, ok := LookupFunc(src, key, build, def...); ok {
		return t, nil
	}
	var zero T
	return zero, newLookupError[T](key)
}

// FindKey is the string-keyed convenience form of Find for the common
// case of JSON-style containers.
func FindKey[T any](src any, key string, def ...T) (T, error) {
	return FindFunc[T](src, key, nil, def...)
}

// FindKeyFunc is FindKey with a Builder replacing default coercion.
func FindKeyFunc[T any](src any, key string, build Builder[T], def ...T) (T, error) {
	return FindFunc(src, key, build, def...)
}

// LookupSlice resolves like Lookup but coerces the target element-wise
// into an eager []T via the sequence rules. When the target is absent,
// not a sequence, or coerces to nothing, the default applies; with no
// default supplied the result is the empty slice, still ok=true. Only
// an explicit nil default yields ok=false, preserving the caller's
// request to see absence.
func LookupSlice[T any](src, key any, def ...[]T) ([]T, bool) {
	return LookupSliceFunc[T](src, key, nil, def...)
}

// LookupSliceFunc is LookupSlice with a Builder applied per element.
func LookupSliceFunc[T any](src, key any, build Builder[T], def ...[]T) ([]T, bool) {
	if target, ok := resolve(src, key); ok {
		if out, ok := CoerceSliceFunc(target, build); ok {
			return out, true
		}
	}
	if len(def) > 0 {
		if def[0] == nil {
			return nil, false
		}
		return def[0], true
	}
	return []T{}, true
}

// FindSlice is the throwing form of LookupSlice. Because the built-in
// default is the empty slice, it errors only when the caller passed an
// explicit nil default and the result was absent.
func FindSlice[T any](src, key any, def ...[]T) ([]T, error) {
	return FindSliceFunc[T](src, key, nil, def...)
}

// FindSliceFunc is FindSlice with a Builder applied per element.
func FindSliceFunc[T any](src, key any, build Builder[T], def ...[]T) ([]T, error) {
	if out, ok := LookupSliceFunc(src, key, build, def...); ok {
		return out, nil
	}
	return nil, newLookupError[[]T](key)
}

// FindSliceKey is the string-keyed convenience form of FindSlice.
func FindSliceKey[T any](src any, key string, def ...[]T) ([]T, error) {
	return FindSliceFunc[T](src, key, nil, def...)
}

// FindSliceKeyFunc is FindSliceKey with a Builder applied per element.
func FindSliceKeyFunc[T any](src any, key string, build Builder[T], def ...[]T) ([]T, error) {
	return FindSliceFunc(src, key, build, def...)
}
