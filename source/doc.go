// Package source decodes JSON and YAML documents into the dynamic
// container shapes the finder package operates over.
//
// The finder accessors accept whatever encoding/json or yaml.v3
// produce; this package is the thin front door that gets a document
// into that shape:
//
//	data, err := source.JSON([]byte(`{"id": "101"}`))
//	id, err := finder.Find[int](data, "id")
//
// JSONNumber preserves numeric text as finder.Number (json.Number) so
// large integers survive without float64 rounding. YAML mappings with
// non-string keys decode to map[any]any, which the finder coercion
// rules handle by stringifying keys on demand.
package source
