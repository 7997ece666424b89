package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScratch(t *testing.T) {
	t.Run("inline", func(t *testing.T) {
		var s Scratch[int]
		items := s.Resize(5)
		assert.Len(t, items, 5)
		assert.False(t, s.OnHeap())
		for i := range items {
			items[i] = i * 10
		}

		s.RemoveAt(0)
		s.RemoveAt(2)
		assert.Equal(t, []int{10, 20, 40}, s.Items())
		assert.Equal(t, 3, s.Len())
		assert.Equal(t, 40, s.At(2))
	})

	t.Run("resize clears", func(t *testing.T) {
		var s Scratch[int]
		items := s.Resize(3)
		items[0], items[1], items[2] = 1, 2, 3
		assert.Equal(t, []int{0, 0, 0, 0}, s.Resize(4))
	})

	t.Run("at capacity", func(t *testing.T) {
		var s Scratch[Vec2]
		s.Resize(InlineCapacity)
		assert.False(t, s.OnHeap())
	})

	t.Run("heap", func(t *testing.T) {
		var s Scratch[int]
		items := s.Resize(InlineCapacity + 1)
		assert.True(t, s.OnHeap())
		for i := range items {
			items[i] = i
		}
		s.RemoveAt(InlineCapacity)
		assert.Equal(t, InlineCapacity, s.Len())
		assert.Equal(t, InlineCapacity-1, s.At(InlineCapacity-1))
	})
}
