package dynstack

import "unsafe"

// Scoped is a typed buffer carved from the top of a Region whose elements
// live until Release. Buffers must be released in reverse order of
// allocation, which `defer b.Release()` right after allocation gives for free.
//
// A Scoped is a handle held by value. Keep it in one variable and hand it
// on with Move rather than copying it, or two copies may both be released.
//
// A Scoped whose allocation failed is empty: Valid reports false, Data is
// nil and Release does nothing.
type Scoped[T any] struct {
	region *Region // nil when empty, released or moved from
	prior  int     // region cursor before the carve
	end    int     // region cursor after the carve
	depth  int     // live scoped buffers on region once this one was added
	data   []T
}

// Valid reports whether the buffer holds elements.
func (s *Scoped[T]) Valid() bool {
	return s.region != nil
}

// Data returns the elements. The slice must not be used after Release.
func (s *Scoped[T]) Data() []T {
	return s.data
}

// Ptr returns a pointer to the first element, or nil if the buffer is empty.
func (s *Scoped[T]) Ptr() *T {
	return unsafe.SliceData(s.data)
}

// Len returns the number of elements.
func (s *Scoped[T]) Len() int {
	return len(s.data)
}

// Release destroys the elements, last first, and returns their bytes to the
// region. It panics with ErrOrderViolation if a scoped buffer allocated after
// this one is still live. Calling Release again is a no-op.
func (s *Scoped[T]) Release() {
	r := s.region
	if r == nil {
		return
	}
	r.checkTop(s.end, s.depth)
	destroy(s.data)
	r.pop(s.prior, s.end)
	*s = Scoped[T]{}
}

// Move hands the elements to a new buffer and leaves s empty, so a Release
// already deferred on s becomes a no-op.
func (s *Scoped[T]) Move() Scoped[T] {
	m := *s
	*s = Scoped[T]{}
	return m
}
