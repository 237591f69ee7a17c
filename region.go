package dynstack

import (
	"unsafe"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
)

// Options configures a Region.
type Options struct {
	// Logger receives slow-path events: exhausted requests at debug level,
	// misuse at error level right before the region panics.
	// Default: log.NewNopLogger()
	Logger log.Logger

	// ScrubOnRelease zeroes the bytes of a scoped buffer once its elements
	// are destroyed, so stale slices read zeroes instead of old data.
	// Default: false
	ScrubOnRelease bool
}

// DefaultOptions returns the options used when NewRegion is given nil.
func DefaultOptions() Options {
	return Options{Logger: log.NewNopLogger()}
}

// Region partitions one contiguous buffer into typed sub-buffers that are
// released in reverse order of allocation. Not goroutine-safe.
//
// The region never allocates or frees backing memory: buf belongs to the
// caller and must outlive every buffer carved from it.
type Region struct {
	buf  []byte
	off  int // first unused byte of buf
	live int // scoped buffers not yet released
	peak int

	logger log.Logger
	scrub  bool
}

// NewRegion creates a Region over buf. Options can be nil to use defaults.
func NewRegion(buf []byte, opts *Options) *Region {
	if opts == nil {
		defaultOpts := DefaultOptions()
		opts = &defaultOpts
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.NewNopLogger()
	}
	if buf == nil {
		// Keeps the base pointer non-nil for zero-sized carves.
		buf = []byte{}
	}
	return &Region{
		buf:    buf,
		logger: logger,
		scrub:  opts.ScrubOnRelease,
	}
}

// Remaining returns the number of bytes between the cursor and the end of the region.
func (r *Region) Remaining() int {
	return len(r.buf) - r.off
}

// Reset discards every allocation, raw reservations included, and moves the
// cursor back to the start of the buffer. It panics if a scoped buffer is
// still live.
func (r *Region) Reset() {
	if r.live != 0 {
		level.Error(r.logger).Log("msg", "reset with live scoped buffers", "live", r.live, "used", r.off)
		panic(errors.Wrapf(ErrLiveBuffers, "%d still live", r.live))
	}
	r.off = 0
	r.peak = 0
}

// carve reserves size bytes aligned to align at the cursor and returns the
// offset of the span in buf. Failed attempts leave the region untouched.
func (r *Region) carve(align, size uintptr) (int, bool) {
	remaining := uintptr(r.Remaining())
	pad, ok := carve(align, size, r.cursorAddr(), remaining)
	if !ok {
		level.Debug(r.logger).Log("msg", "region exhausted", "requested", size, "align", align, "remaining", remaining)
		return 0, false
	}

	start := r.off + int(pad)
	r.off = start + int(size)
	if r.off > r.peak {
		r.peak = r.off
	}
	return start, true
}

// cursorAddr is the address of the first unused byte. It is only used for
// alignment arithmetic and never converted back into a pointer.
func (r *Region) cursorAddr() uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(r.buf))) + uintptr(r.off)
}

// at returns a pointer to byte off of the backing buffer. A zero-sized span
// at the very end gets the base pointer instead of a past-the-end one.
func (r *Region) at(off int) unsafe.Pointer {
	base := unsafe.Pointer(unsafe.SliceData(r.buf))
	if off == len(r.buf) {
		return base
	}
	return unsafe.Add(base, off)
}

// checkTop panics unless the scoped buffer ending at end with the given
// depth is the top of the stack.
func (r *Region) checkTop(end, depth int) {
	if r.off == end && r.live == depth {
		return
	}
	level.Error(r.logger).Log("msg", "scoped buffer released out of order",
		"cursor", r.off, "buffer_end", end, "live", r.live, "buffer_depth", depth)
	panic(errors.Wrapf(ErrOrderViolation, "cursor %d, buffer end %d, live %d, buffer depth %d", r.off, end, r.live, depth))
}

// pop returns the bytes of the top scoped buffer to the region.
func (r *Region) pop(prior, end int) {
	if r.scrub {
		clear(r.buf[prior:end])
	}
	r.off = prior
	r.live--
}
