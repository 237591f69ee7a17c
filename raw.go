package dynstack

import "unsafe"

// Raw is typed storage reserved from a Region with no element lifetimes
// attached. Nothing is initialised on allocation and nothing is destroyed or
// reclaimed when the Raw is dropped; the bytes stay committed until the
// region is Reset.
//
// The caller owns element lifetimes: Construct each slot before use, never
// more than Len of them, and Destruct each constructed slot exactly once.
type Raw[T any] struct {
	data []T
}

// Valid reports whether the reservation succeeded.
func (b *Raw[T]) Valid() bool {
	return b.data != nil
}

// Data returns the reserved slots. Slots that were never constructed hold
// whatever bytes the region held before.
func (b *Raw[T]) Data() []T {
	return b.data
}

// Ptr returns a pointer to the first slot, or nil if the reservation failed.
func (b *Raw[T]) Ptr() *T {
	return unsafe.SliceData(b.data)
}

// Len returns the number of reserved slots.
func (b *Raw[T]) Len() int {
	return len(b.data)
}

// Construct zeroes slot i and calls Init on it if *T implements Initializer.
func (b *Raw[T]) Construct(i int) *T {
	p := &b.data[i]
	var zero T
	*p = zero
	if in, ok := any(p).(Initializer); ok {
		in.Init()
	}
	return p
}

// Destruct calls Destroy on slot i if *T implements Destroyer.
func (b *Raw[T]) Destruct(i int) {
	if d, ok := any(&b.data[i]).(Destroyer); ok {
		d.Destroy()
	}
}
