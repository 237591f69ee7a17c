// Package dynstack implements a stack-discipline (LIFO) region allocator for Go.
//
// # Overview
//
// A Region partitions one contiguous, caller-owned byte buffer into typed,
// aligned sub-buffers. Allocation bumps a cursor forward; releasing a buffer
// moves it back. Because buffers must be released in exactly the reverse
// order they were acquired, there is no free list and no fragmentation:
// the region behaves like a second call stack for variable-sized scratch
// arrays. This is particularly useful for:
//
//   - Scratch arrays whose size is only known at run time
//   - Hot loops that must not allocate on the Go heap
//   - Nested algorithms that need temporary workspaces at every level
//
// # Basic Usage
//
//	buf := make([]byte, 64<<10)
//	r := dynstack.NewRegion(buf, nil)
//
//	xs := dynstack.New[float64](r, 128) // zeroed
//	defer xs.Release()
//	if !xs.Valid() {
//	    return errTooBig // region exhausted; nothing was carved
//	}
//
//	ys := dynstack.NewForOverwrite[float64](r, 128) // not zeroed
//	defer ys.Release()
//
// # Scoped and Raw Buffers
//
// New and NewForOverwrite return a Scoped buffer. Its elements are
// initialised on allocation and, on Release, destroyed in reverse index
// order before their bytes return to the region. Element types opt into
// initialisation and teardown by implementing Initializer and Destroyer on
// the pointer receiver; other types start as their zero value.
//
// Reserve returns a Raw buffer: typed storage with nothing initialised and
// nothing ever returned to the region. The caller constructs and destructs
// individual slots with Raw.Construct and Raw.Destruct. Raw bytes stay
// committed until Region.Reset.
//
// # Failure Modes
//
// Asking for more than the region holds is an expected condition: the
// returned buffer is empty (Valid reports false) and the region is unchanged.
//
// Misuse is not. An alignment that is zero, not a power of two or weaker than
// the element type's own, releasing a scoped buffer while a later one is
// still live, and resetting a region with live scoped buffers all panic with
// an error wrapping ErrInvalidAlignment, ErrUnderAligned, ErrOrderViolation or
// ErrLiveBuffers. These indicate a bug in the caller; the region's
// bookkeeping cannot be trusted afterwards.
//
// # Important Notes
//
//   - A Region is not goroutine-safe
//   - The backing buffer must outlive every buffer carved from it
//   - Element types must not contain Go pointers: the backing []byte is not
//     scanned by the garbage collector, so anything referenced only from the
//     region can be collected. Carving such a type logs a warning
//   - Scoped and Raw are handles held by value; allocating and releasing
//     them does not touch the Go heap
//   - Data slices must not be used after Release
//
// # Metrics
//
// The region reports its usage for tuning buffer sizes:
//
//	m := r.Metrics()
//	fmt.Printf("peak: %d of %d bytes\n", m.Peak, m.Capacity)
package dynstack
