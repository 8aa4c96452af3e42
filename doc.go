// Package finder provides typed, coercing access to loosely-typed
// nested data such as decoded JSON or YAML documents.
//
// Given a dynamic value and a statically expected type, finder either
// produces a value of that type through a fixed set of coercion rules
// or reports absence — so call sites never hand-roll type switches to
// read a field. Coercion itself is total and non-erroring: every
// attempt answers "here is your T" or "absent", never "here is why it
// failed". Only the throwing accessors turn absence without a default
// into an error.
//
// # Reading fields
//
// The accessors resolve a key against a container, coerce the result,
// and apply a default-or-fail policy:
//
//	data := map[string]any{
//	    "id":      "101",
//	    "active":  "true",
//	    "balance": "250.75",
//	    "tags":    []any{"vip", "loyal"},
//	}
//
//	id, err := finder.Find[int](data, "id")             // 101
//	active, err := finder.Find[bool](data, "active")    // true
//	balance, err := finder.Find[float64](data, "balance") // 250.75
//	tags, err := finder.FindSlice[string](data, "tags") // ["vip" "loyal"]
//	nick, _ := finder.Lookup(data, "nickname", "Guest") // "Guest"
//
// Nested containers chain naturally, and passing a nil key targets the
// container itself so a prior lookup's result feeds straight into a
// typed conversion:
//
//	doc := map[string]any{"user": map[string]any{"id": "123"}}
//	user, _ := finder.Find[map[string]any](doc, "user")
//	id, _ := finder.Find[int](user, "id")
//
// # Coercion rules
//
// See Coerce for the ordered rule set. Highlights: values already of
// the target type pass through unchanged, numbers and numeric strings
// interconvert (floats truncate toward integers), bools parse only
// from the strict literals "true" and "false", sequences convert
// element-wise with unconvertible elements dropped, and json.Number is
// numeric everywhere.
//
// # Builders
//
// A Builder replaces the default rules for one call, which is how rich
// target types plug in:
//
//	created, err := finder.FindFunc(data, "created_at", builders.Time())
//
// The builders subpackage ships ready-made Builders for uuid.UUID,
// time.Time, and time.Duration.
//
// # Absence
//
// A sequence that coerces to nothing is indistinguishable from an
// absent one: both report absence. Callers that need to tell an empty
// list from an entirely unconvertible one should use CoerceEachStrict,
// which yields a per-element outcome.
//
// # Concurrency
//
// Every operation is a pure function of its inputs: no shared state,
// no I/O, safe for concurrent use without synchronization.
package finder
