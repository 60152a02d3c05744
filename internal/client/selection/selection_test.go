package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggle(t *testing.T) {
	s := NewSet()

	s.Toggle(1)
	s.Toggle(2)
	assert.Equal(t, []int64{1, 2}, s.IDs())

	s.Toggle(1)
	assert.Equal(t, []int64{2}, s.IDs())
	assert.False(t, s.Contains(1))
	assert.True(t, s.Contains(2))
}

func TestToggleAll(t *testing.T) {
	visible := []int64{1, 2, 3}

	t.Run("selects visible set", func(t *testing.T) {
		s := NewSet()
		s.ToggleAll(visible)
		assert.Equal(t, visible, s.IDs())
	})

	t.Run("clears when fully selected", func(t *testing.T) {
		s := NewSet()
		s.ToggleAll(visible)
		s.ToggleAll(visible)
		assert.Zero(t, s.Len())
	})

	t.Run("self-inverse from empty", func(t *testing.T) {
		s := NewSet()
		s.ToggleAll(visible)
		s.ToggleAll(visible)
		assert.Empty(t, s.IDs())
	})

	t.Run("partial selection becomes exactly visible", func(t *testing.T) {
		s := NewSet()
		s.Toggle(2)
		s.Toggle(99) // No longer visible after a filter change.
		s.ToggleAll(visible)
		assert.Equal(t, visible, s.IDs())
	})

	t.Run("empty visible list", func(t *testing.T) {
		s := NewSet()
		s.Toggle(5)
		s.ToggleAll(nil)
		assert.Zero(t, s.Len())
	})
}

func TestClear(t *testing.T) {
	s := NewSet()
	s.Toggle(1)
	s.Toggle(2)
	s.Clear()
	assert.Zero(t, s.Len())
	assert.Empty(t, s.IDs())
}
