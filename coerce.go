package finder

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
)

// Builder fully overrides default coercion for a single call. It
// receives the (present) dynamic value and reports whether it produced
// a result; returning ok=false means absent, exactly like a failed
// default coercion.
type Builder[T any] func(v any) (T, bool)

// Coerce attempts to produce a T from a dynamic value using the
// default rule set. It never panics and never errors: the result is
// either a present T or ok=false.
//
// The rules apply in order, first match wins:
//
//  1. A nil source is absent.
//  2. A value that already is a T is returned unchanged.
//  3. Numeric sources convert to integer, float, and string targets
//     (floats truncate toward zero when an integer is requested).
//  4. String sources parse to numeric targets; unparsable text is
//     absent. json.Number sources behave as numbers.
//  5. String sources convert to bool targets only from the exact
//     literals "true" and "false".
//  6. Sequence sources convert to slice targets element-wise,
//     dropping elements that do not convert. An empty outcome is
//     absent — see CoerceEachStrict for callers that need to tell an
//     empty list from an entirely unconvertible one.
//  7. Mapping sources convert to map[string]any (non-string keys are
//     stringified) and map[any]any targets.
//  8. Anything else is absent.
func Coerce[T any](v any) (T, bool) {
	return CoerceFunc[T](v, nil)
}

// CoerceFunc is Coerce with a Builder. A non-nil build replaces the
// entire default rule set for this call; its result, present or
// absent, is final.
func CoerceFunc[T any](v any, build Builder[T]) (T, bool) {
	var zero T
	if kindOf(v) == kindNull {
		return zero, false
	}
	if build != nil {
		return build(v)
	}
	if t, ok := v.(T); ok {
		return t, true
	}
	rv, ok := coerceValue(v, reflect.TypeFor[T]())
	if !ok {
		return zero, false
	}
	return rv.Interface().(T), true
}

// coerceValue is the rule engine behind Coerce, driven by a structured
// target descriptor so slice and map targets can recurse per element
// without inspecting type names.
func coerceValue(v any, t reflect.Type) (reflect.Value, bool) {
	none := reflect.Value{}
	k := kindOf(v)
	if k == kindNull {
		return none, false
	}
	rv := reflect.ValueOf(v)
	if rv.Type() == t {
		return rv, true
	}
	if rv.Type().AssignableTo(t) {
		// Convert so the caller's type assertion sees exactly t even
		// when the source is an assignable unnamed type.
		return rv.Convert(t), true
	}

	switch t.Kind() {
	case reflect.String:
		switch {
		case k == kindString:
			return rv.Convert(t), true
		case k.isNumeric():
			s, ok := formatNumber(v)
			if !ok {
				return none, false
			}
			return reflect.ValueOf(s).Convert(t), true
		}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		switch {
		case k.isNumeric():
			n, ok := toInt64(v)
			if !ok {
				return none, false
			}
			return reflect.ValueOf(n).Convert(t), true
		case k == kindString:
			n, ok := parseInt64(rv.String())
			if !ok {
				return none, false
			}
			return reflect.ValueOf(n).Convert(t), true
		}

	case reflect.Float32, reflect.Float64:
		switch {
		case k.isNumeric():
			f, ok := toFloat64(v)
			if !ok {
				return none, false
			}
			return reflect.ValueOf(f).Convert(t), true
		case k == kindString:
			f, err := strconv.ParseFloat(rv.String(), 64)
			if err != nil {
				return none, false
			}
			return reflect.ValueOf(f).Convert(t), true
		}

	case reflect.Bool:
		switch {
		case k == kindBool:
			return rv.Convert(t), true
		case k == kindString:
			switch rv.String() {
			case "true":
				return reflect.ValueOf(true).Convert(t), true
			case "false":
				return reflect.ValueOf(false).Convert(t), true
			}
		}

	case reflect.Slice:
		if k != kindSlice {
			return none, false
		}
		elem := t.Elem()
		out := reflect.MakeSlice(t, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			ev, ok := coerceValue(rv.Index(i).Interface(), elem)
			if !ok {
				continue
			}
			out = reflect.Append(out, ev)
		}
		if out.Len() == 0 {
			// Empty and all-elements-dropped are indistinguishable
			// here; both are absent.
			return none, false
		}
		return out, true

	case reflect.Map:
		if k != kindMap {
			return none, false
		}
		switch {
		case t == reflect.TypeFor[map[string]any]():
			return reflect.ValueOf(stringKeyed(v)), true
		case t == reflect.TypeFor[map[any]any]():
			return reflect.ValueOf(looseKeyed(v)), true
		}
	}

	return none, false
}

// stringKeyed copies any mapping shape into a map[string]any,
// stringifying non-string keys.
func stringKeyed(v any) map[string]any {
	switch m := v.(type) {
	case map[string]any:
		return m
	case map[any]any:
		out := make(map[string]any, len(m))
		for key, val := range m {
			if s, ok := key.(string); ok {
				out[s] = val
			} else {
				out[fmt.Sprint(key)] = val
			}
		}
		return out
	}
	rv := reflect.ValueOf(v)
	out := make(map[string]any, rv.Len())
	for it := rv.MapRange(); it.Next(); {
		key := it.Key().Interface()
		if s, ok := key.(string); ok {
			out[s] = it.Value().Interface()
		} else {
			out[fmt.Sprint(key)] = it.Value().Interface()
		}
	}
	return out
}

// looseKeyed copies any mapping shape into a map[any]any.
func looseKeyed(v any) map[any]any {
	switch m := v.(type) {
	case map[any]any:
		return m
	case map[string]any:
		out := make(map[any]any, len(m))
		for key, val := range m {
			out[key] = val
		}
		return out
	}
	rv := reflect.ValueOf(v)
	out := make(map[any]any, rv.Len())
	for it := rv.MapRange(); it.Next(); {
		out[it.Key().Interface()] = it.Value().Interface()
	}
	return out
}

// Number is json.Number under the finder namespace. Decoders
// configured to preserve numeric text produce it, and the coercion
// rules treat it as numeric rather than string.
type Number = json.Number
