package guard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/guard/pkg/guard"
)

func TestIsNil(t *testing.T) {
	t.Run("untyped nil", func(t *testing.T) {
		assert.True(t, guard.IsNil(nil))
	})

	t.Run("typed nil values", func(t *testing.T) {
		var p *int
		var m map[string]int
		var s []int
		var ch chan int
		var fn func()
		var err error

		assert.True(t, guard.IsNil(p))
		assert.True(t, guard.IsNil(m))
		assert.True(t, guard.IsNil(s))
		assert.True(t, guard.IsNil(ch))
		assert.True(t, guard.IsNil(fn))
		assert.True(t, guard.IsNil(err))
	})

	t.Run("non-nil values", func(t *testing.T) {
		n := 0
		assert.False(t, guard.IsNil(0))
		assert.False(t, guard.IsNil(""))
		assert.False(t, guard.IsNil(false))
		assert.False(t, guard.IsNil(&n))
		assert.False(t, guard.IsNil([]int{}))
		assert.False(t, guard.IsNil(map[string]int{}))
		assert.False(t, guard.IsNil(struct{}{}))
	})
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, guard.IsEmpty[int](nil))
	assert.True(t, guard.IsEmpty([]string{}))
	assert.False(t, guard.IsEmpty([]string{""}))
}

func TestIsEmptyMap(t *testing.T) {
	assert.True(t, guard.IsEmptyMap[string, int](nil))
	assert.True(t, guard.IsEmptyMap(map[string]struct{}{}))
	assert.False(t, guard.IsEmptyMap(map[string]struct{}{"a": {}}))
}

func TestIsBlank(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"empty string", "", true},
		{"spaces only", "   ", true},
		{"tabs and newlines", "\t\n\r ", true},
		{"unicode whitespace", "\u00a0\u2003", true},
		{"padded content", " x ", false},
		{"plain content", "x", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, guard.IsBlank(tt.input))
		})
	}
}

func TestIsBlankPtr(t *testing.T) {
	blank := "  "
	text := "value"

	assert.True(t, guard.IsBlankPtr(nil))
	assert.True(t, guard.IsBlankPtr(&blank))
	assert.False(t, guard.IsBlankPtr(&text))
}
