package finder

import "reflect"

// IsValid reports whether v is present. Untyped nil and typed nil
// pointers, maps, and slices all count as absent.
func IsValid(v any) bool {
	return kindOf(v) != kindNull
}

// IsMap reports whether v is a key-value mapping of any key and
// element type.
func IsMap(v any) bool {
	return kindOf(v) == kindMap
}

// IsList reports whether v is an ordered sequence (slice or array).
func IsList(v any) bool {
	return kindOf(v) == kindSlice
}

// IsListOfMap reports whether v is an ordered sequence whose every
// element is a mapping. An empty sequence satisfies this vacuously.
func IsListOfMap(v any) bool {
	if kindOf(v) != kindSlice {
		return false
	}
	rv := reflect.ValueOf(v)
	for i := 0; i < rv.Len(); i++ {
		if !IsMap(rv.Index(i).Interface()) {
			return false
		}
	}
	return true
}

// Equals reports whether v and other are both present, share the exact
// dynamic type, and compare equal in value. The type check is strict:
// int(5) and float64(5) are not equal, so precision classes never
// conflate silently.
func Equals(v, other any) bool {
	if !IsValid(v) || !IsValid(other) {
		return false
	}
	if reflect.TypeOf(v) != reflect.TypeOf(other) {
		return false
	}
	return reflect.DeepEqual(v, other)
}
