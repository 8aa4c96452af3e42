package finder

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect[T any](v any) []T {
	var out []T
	for t := range CoerceEach[T](v) {
		out = append(out, t)
	}
	return out
}

func TestCoerceEach(t *testing.T) {
	t.Run("drops unconvertible elements in order", func(t *testing.T) {
		assert.Equal(t, []int{1, 2}, collect[int]([]any{"1", "2", "x"}))
	})

	t.Run("no deduplication", func(t *testing.T) {
		assert.Equal(t, []string{"a", "a"}, collect[string]([]any{"a", "a"}))
	})

	t.Run("nil source yields nothing", func(t *testing.T) {
		assert.Nil(t, collect[int](nil))
	})

	t.Run("non-sequence source yields nothing", func(t *testing.T) {
		assert.Nil(t, collect[int]("12"))
	})

	t.Run("nil elements are dropped", func(t *testing.T) {
		assert.Equal(t, []string{"a"}, collect[string]([]any{nil, "a"}))
	})

	t.Run("restartable", func(t *testing.T) {
		seq := CoerceEach[int]([]any{"1", "2"})
		first := 0
		for range seq {
			first++
		}
		second := 0
		for range seq {
			second++
		}
		assert.Equal(t, 2, first)
		assert.Equal(t, 2, second)
	})

	t.Run("lazy under early break", func(t *testing.T) {
		coerced := 0
		seq := CoerceEachFunc([]any{1, 2, 3}, func(v any) (int, bool) {
			coerced++
			return v.(int), true
		})
		for range seq {
			break
		}
		assert.Equal(t, 1, coerced)
	})
}

func TestCoerceEachFunc(t *testing.T) {
	hex := func(v any) (int, bool) {
		s, ok := v.(string)
		if !ok {
			return 0, false
		}
		n, err := strconv.ParseInt(s, 16, 64)
		if err != nil {
			return 0, false
		}
		return int(n), true
	}

	var out []int
	for n := range CoerceEachFunc([]any{"ff", "10", "zz"}, hex) {
		out = append(out, n)
	}
	assert.Equal(t, []int{255, 16}, out)
}

func TestCoerceEachStrict(t *testing.T) {
	t.Run("reports one outcome per element", func(t *testing.T) {
		var values []int
		var oks []bool
		for v, ok := range CoerceEachStrict[int]([]any{"1", "x", "3"}) {
			values = append(values, v)
			oks = append(oks, ok)
		}
		assert.Equal(t, []int{1, 0, 3}, values)
		assert.Equal(t, []bool{true, false, true}, oks)
	})

	t.Run("distinguishes empty from unconvertible", func(t *testing.T) {
		emptyCount := 0
		for range CoerceEachStrict[int]([]any{}) {
			emptyCount++
		}
		assert.Equal(t, 0, emptyCount)

		missCount := 0
		for _, ok := range CoerceEachStrict[int]([]any{"a", "b"}) {
			require.False(t, ok)
			missCount++
		}
		assert.Equal(t, 2, missCount)
	})
}

func TestCoerceSlice(t *testing.T) {
	t.Run("materializes eagerly", func(t *testing.T) {
		got, ok := CoerceSlice[int]([]any{"1", "2", "x"})
		require.True(t, ok)
		assert.Equal(t, []int{1, 2}, got)
	})

	t.Run("empty result is absent", func(t *testing.T) {
		_, ok := CoerceSlice[int]([]any{})
		assert.False(t, ok)

		_, ok = CoerceSlice[int]([]any{"a"})
		assert.False(t, ok)
	})

	t.Run("typed source slices convert", func(t *testing.T) {
		got, ok := CoerceSlice[string]([]int{1, 2})
		require.True(t, ok)
		assert.Equal(t, []string{"1", "2"}, got)
	})
}
