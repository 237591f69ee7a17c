package dynstack

import (
	"math/bits"
	"reflect"
	"unsafe"

	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"golang.org/x/sys/cpu"
)

// CacheLineSize is an alignment that keeps a buffer from sharing cache lines
// with its neighbours. Pass it to the *Aligned functions.
const CacheLineSize = unsafe.Sizeof(cpu.CacheLinePad{})

// New carves n zeroed elements of T from the top of r, calling Init on each
// if *T implements Initializer. The returned buffer must be released with
// Release, in reverse order of allocation.
// If r cannot hold the elements, the returned buffer is empty and r is unchanged.
func New[T any](r *Region, n int) Scoped[T] {
	return newScoped[T](r, n, alignOf[T](), initZeroed[T])
}

// NewAligned is New with an alignment at least as strict as T's own.
func NewAligned[T any](r *Region, n int, align uintptr) Scoped[T] {
	return newScoped[T](r, n, align, initZeroed[T])
}

// NewForOverwrite is like New but does not zero the memory first.
// This is faster than New but element contents are whatever the region held
// before, so every element must be written before it is read.
func NewForOverwrite[T any](r *Region, n int) Scoped[T] {
	return newScoped[T](r, n, alignOf[T](), initForOverwrite[T])
}

// NewForOverwriteAligned is NewForOverwrite with an alignment override.
func NewForOverwriteAligned[T any](r *Region, n int, align uintptr) Scoped[T] {
	return newScoped[T](r, n, align, initForOverwrite[T])
}

// Reserve carves room for n elements of T without initialising them. The
// reservation is never returned to r: it stays committed until r is Reset
// or discarded. Element lifetimes are up to the caller, see Raw.
func Reserve[T any](r *Region, n int) Raw[T] {
	return ReserveAligned[T](r, n, alignOf[T]())
}

// ReserveAligned is Reserve with an alignment override.
func ReserveAligned[T any](r *Region, n int, align uintptr) Raw[T] {
	data, ok := carveSlice[T](r, n, align)
	if !ok {
		return Raw[T]{}
	}
	initNone(data)
	return Raw[T]{data: data}
}

// WithScoped allocates n zeroed elements of T, passes them to fn and releases
// them when fn returns or panics. It returns ErrExhausted if r cannot hold
// the elements; fn is not called in that case.
func WithScoped[T any](r *Region, n int, fn func([]T) error) error {
	s := New[T](r, n)
	if n > 0 && !s.Valid() {
		return errors.Wrapf(ErrExhausted, "%d elements of %d bytes, %d bytes remaining", n, sizeOf[T](), r.Remaining())
	}
	defer s.Release()
	return fn(s.Data())
}

func newScoped[T any](r *Region, n int, align uintptr, initElems initFunc[T]) Scoped[T] {
	prior, peak := r.off, r.peak
	data, ok := carveSlice[T](r, n, align)
	if !ok {
		return Scoped[T]{}
	}

	// A panicking Init must not leave the span committed with no handle to release it.
	committed := false
	defer func() {
		if !committed {
			r.off, r.peak = prior, peak
		}
	}()
	initElems(data)
	committed = true

	r.live++
	return Scoped[T]{
		region: r,
		prior:  prior,
		end:    r.off,
		depth:  r.live,
		data:   data,
	}
}

// carveSlice validates align against T, then carves n elements of T from r.
func carveSlice[T any](r *Region, n int, align uintptr) ([]T, bool) {
	checkAlignment(align)
	if natural := alignOf[T](); align < natural {
		panic(errors.Wrapf(ErrUnderAligned, "requested %d, element type needs %d", align, natural))
	}
	if n <= 0 {
		return nil, false
	}

	hi, size := bits.Mul(uint(n), uint(sizeOf[T]()))
	if hi != 0 {
		level.Debug(r.logger).Log("msg", "request overflows address space", "elements", n, "element_size", sizeOf[T]())
		return nil, false
	}

	start, ok := r.carve(align, uintptr(size))
	if !ok {
		return nil, false
	}
	if hasPointers[T]() {
		level.Warn(r.logger).Log("msg", "element type holds Go pointers the garbage collector cannot see", "type", reflect.TypeFor[T]())
	}
	return unsafe.Slice((*T)(r.at(start)), n), true
}
