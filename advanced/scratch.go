package advanced

// InlineCapacity is the largest polygon whose working buffers fit in a Scratch
// without touching the heap.
const InlineCapacity = 32

// Scratch is a small-buffer container for per-call working state. Up to
// InlineCapacity items live in an inline array; anything larger gets a heap
// slice. Callers only ever see the slice returned by Resize, so they don't
// care which storage is active.
//
// The zero value is ready to use. A Scratch must not be copied after Resize.
type Scratch[T any] struct {
	inline [InlineCapacity]T
	items  []T
}

// Resize discards the current contents and returns a zeroed slice of length n.
func (s *Scratch[T]) Resize(n int) []T {
	if n <= InlineCapacity {
		s.items = s.inline[:n]
		clear(s.items)
	} else {
		s.items = make([]T, n)
	}
	return s.items
}

// Items returns the live items.
func (s *Scratch[T]) Items() []T {
	return s.items
}

func (s *Scratch[T]) Len() int {
	return len(s.items)
}

func (s *Scratch[T]) At(i int) T {
	return s.items[i]
}

// RemoveAt deletes the item at i, shifting everything after it down by one.
func (s *Scratch[T]) RemoveAt(i int) {
	copy(s.items[i:], s.items[i+1:])
	s.items = s.items[:len(s.items)-1]
}

// OnHeap reports whether the items outgrew the inline array.
func (s *Scratch[T]) OnHeap() bool {
	return cap(s.items) > InlineCapacity
}
