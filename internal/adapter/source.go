package adapter

// Source is the caller-owned data sequence. The adapter only reads it;
// mutations and the matching observer notifications belong to the caller.
type Source[T any] interface {
	Len() int
	At(i int) T
}

// SliceSource exposes a slice owned by the caller. It holds a pointer so
// appends and truncations made through the caller's variable are visible
// to the adapter without copying.
type SliceSource[T any] struct {
	items *[]T
}

// NewSliceSource wraps the slice behind items
func NewSliceSource[T any](items *[]T) SliceSource[T] {
	return SliceSource[T]{items: items}
}

// Len returns the current length of the slice
func (s SliceSource[T]) Len() int {
	if s.items == nil {
		return 0
	}
	return len(*s.items)
}

// At returns the element at i. An index outside the slice panics.
func (s SliceSource[T]) At(i int) T {
	return (*s.items)[i]
}
