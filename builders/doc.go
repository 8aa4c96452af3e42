// Package builders ships ready-made finder.Builder implementations
// for rich target types the default coercion rules do not cover.
//
// A Builder replaces the default rule set for one call:
//
//	id, err := finder.FindFunc(data, "request_id", builders.UUID())
//	created, err := finder.FindFunc(data, "created_at", builders.Time())
//	timeout, err := finder.FindFunc(data, "timeout", builders.Duration())
//
// Each builder follows the coercion contract: it never panics and
// never errors, reporting unconvertible input as absent.
package builders
