package finder

import (
	"encoding/json"
	"reflect"
	"strconv"
)

// kind is the structural classification of a dynamic value. Every
// coercion rule dispatches on this tag rather than probing the value
// with open-ended type assertions.
type kind uint8

const (
	kindNull kind = iota
	kindBool
	kindInt
	kindUint
	kindFloat
	kindNumber // json.Number: numeric payload carried as text
	kindString
	kindSlice
	kindMap
	kindOther
)

// kindOf classifies v. The type switch covers the shapes produced by
// encoding/json and yaml.v3; the reflect fallback catches typed slices,
// typed maps, and typed nils.
func kindOf(v any) kind {
	if v == nil {
		return kindNull
	}
	switch v.(type) {
	case bool:
		return kindBool
	case int, int8, int16, int32, int64:
		return kindInt
	case uint, uint8, uint16, uint32, uint64, uintptr:
		return kindUint
	case float32, float64:
		return kindFloat
	case json.Number:
		return kindNumber
	case string:
		return kindString
	case []any:
		return kindSlice
	case map[string]any, map[any]any:
		return kindMap
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Func, reflect.Chan:
		if rv.IsNil() {
			return kindNull
		}
		return kindOther
	case reflect.Slice:
		if rv.IsNil() {
			return kindNull
		}
		return kindSlice
	case reflect.Array:
		return kindSlice
	case reflect.Map:
		if rv.IsNil() {
			return kindNull
		}
		return kindMap
	case reflect.Bool:
		return kindBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return kindInt
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return kindUint
	case reflect.Float32, reflect.Float64:
		return kindFloat
	case reflect.String:
		return kindString
	default:
		return kindOther
	}
}

// isNumeric reports whether k carries a numeric payload.
func (k kind) isNumeric() bool {
	switch k {
	case kindInt, kindUint, kindFloat, kindNumber:
		return true
	default:
		return false
	}
}

// toInt64 extracts an integral payload from a numeric value,
// truncating floating-point sources.
func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), true
	case uintptr:
		return int64(n), true
	case float32:
		return int64(n), true
	case float64:
		return int64(n), true
	case json.Number:
		return parseInt64(n.String())
	}
	if rv := reflect.ValueOf(v); rv.CanInt() {
		return rv.Int(), true
	} else if rv.CanUint() {
		return int64(rv.Uint()), true
	} else if rv.CanFloat() {
		return int64(rv.Float()), true
	}
	return 0, false
}

// toFloat64 extracts a floating-point payload from a numeric value.
func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case uintptr:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	}
	if rv := reflect.ValueOf(v); rv.CanInt() {
		return float64(rv.Int()), true
	} else if rv.CanUint() {
		return float64(rv.Uint()), true
	} else if rv.CanFloat() {
		return rv.Float(), true
	}
	return 0, false
}

// formatNumber renders a numeric value the way its own type would
// print it (no float artifacts from widening float32).
func formatNumber(v any) (string, bool) {
	switch n := v.(type) {
	case float32:
		return strconv.FormatFloat(float64(n), 'g', -1, 32), true
	case float64:
		return strconv.FormatFloat(n, 'g', -1, 64), true
	case json.Number:
		return n.String(), true
	}
	if rv := reflect.ValueOf(v); rv.CanUint() {
		return strconv.FormatUint(rv.Uint(), 10), true
	} else if rv.CanInt() {
		return strconv.FormatInt(rv.Int(), 10), true
	} else if rv.CanFloat() {
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64), true
	}
	return "", false
}

// parseInt64 parses integral text, accepting floating-point text by
// truncation so "250.75" narrows to 250 when an integer is requested.
func parseInt64(s string) (int64, bool) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i, true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int64(f), true
	}
	return 0, false
}
