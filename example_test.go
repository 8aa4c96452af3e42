package finder_test

import (
	"fmt"

	finder "github.com/Mohiuddin655-PUB/object-finder"
)

// Example demonstrates typed access to a JSON-shaped container whose
// values arrive as strings.
func Example() {
	data := map[string]any{
		"id":      "101",
		"active":  "true",
		"balance": "250.75",
		"tags":    []any{"vip", "loyal"},
	}

	id, _ := finder.Find[int](data, "id")
	active, _ := finder.Find[bool](data, "active")
	balance, _ := finder.Find[float64](data, "balance")
	tags, _ := finder.FindSlice[string](data, "tags")
	nickname, _ := finder.Lookup(data, "nickname", "Guest")

	fmt.Println("ID:", id)
	fmt.Println("Active:", active)
	fmt.Println("Balance:", balance)
	fmt.Println("Tags:", tags)
	fmt.Println("Nickname:", nickname)

	// Output:
	// ID: 101
	// Active: true
	// Balance: 250.75
	// Tags: [vip loyal]
	// Nickname: Guest
}

// ExampleFind_nested chains lookups through nested containers.
func ExampleFind_nested() {
	data := map[string]any{
		"user": map[string]any{
			"id":    "123",
			"roles": []any{"admin", "editor"},
		},
	}

	user, _ := finder.Find[map[string]any](data, "user")
	id, _ := finder.Find[int](user, "id")
	roles, _ := finder.FindSlice[string](user, "roles")

	fmt.Println("ID:", id)
	fmt.Println("Roles:", roles)

	// Output:
	// ID: 123
	// Roles: [admin editor]
}

// ExampleCoerceEach shows lazy element-wise coercion dropping the
// elements that do not convert.
func ExampleCoerceEach() {
	for n := range finder.CoerceEach[int]([]any{"1", "2", "x"}) {
		fmt.Println(n)
	}

	// Output:
	// 1
	// 2
}

// ExampleLookup_identity converts a value directly by passing a nil
// key.
func ExampleLookup_identity() {
	n, ok := finder.Lookup[int]("42", nil)
	fmt.Println(n, ok)

	// Output:
	// 42 true
}
