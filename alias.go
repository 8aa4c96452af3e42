package finder

// Get is a thin alias of Find for call sites that read better with
// get-style naming (ports of getter-flavored APIs). Semantics are
// identical.
func Get[T any](src, key any, def ...T) (T, error) {
	return FindFunc[T](src, key, nil, def...)
}

// GetFunc is a thin alias of FindFunc.
func GetFunc[T any](src, key any, build Builder[T], def ...T) (T, error) {
	return FindFunc(src, key, build, def...)
}

// GetOk is a thin alias of Lookup.
func GetOk[T any](src, key any, def ...T) (T, bool) {
	return LookupFunc[T](src, key, nil, def...)
}

// GetOkFunc is a thin alias of LookupFunc.
func GetOkFunc[T any](src, key any, build Builder[T], def ...T) (T, bool) {
	return LookupFunc(src, key, build, def...)
}
