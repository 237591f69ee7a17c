package dynstack

import "github.com/pkg/errors"

// The first four errors describe defects in the calling code. They are never
// returned: the region panics with a wrapped value instead, because the
// bookkeeping can no longer be trusted. Use errors.Is on the recovered value
// to tell them apart.
var (
	// ErrInvalidAlignment indicates an alignment that is zero or not a power of two.
	ErrInvalidAlignment = errors.New("dynstack: alignment must be a non-zero power of two")

	// ErrUnderAligned indicates an alignment override weaker than the element type's own.
	ErrUnderAligned = errors.New("dynstack: alignment weaker than element type alignment")

	// ErrOrderViolation indicates a scoped buffer released while a buffer
	// carved after it is still outstanding.
	ErrOrderViolation = errors.New("dynstack: scoped buffer released out of LIFO order")

	// ErrLiveBuffers indicates a Reset while scoped buffers are still live.
	ErrLiveBuffers = errors.New("dynstack: reset with live scoped buffers")

	// ErrExhausted is returned by WithScoped when the region cannot satisfy the request.
	ErrExhausted = errors.New("dynstack: region exhausted")
)
