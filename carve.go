package dynstack

import "github.com/pkg/errors"

// checkAlignment panics unless align is a non-zero power of two.
func checkAlignment(align uintptr) {
	if align == 0 || align&(align-1) != 0 {
		panic(errors.Wrapf(ErrInvalidAlignment, "got %d", align))
	}
}

// padding returns the smallest offset that moves addr onto an align boundary.
// align must be a power of two.
func padding(addr, align uintptr) uintptr {
	return -addr & (align - 1)
}

// carve finds room for size bytes aligned to align at cursor, given remaining
// free bytes after it. On success it returns the padding to skip before the
// span starts; the caller advances its cursor by pad+size. Nothing is carved
// when remaining is too small, before or after padding.
func carve(align, size, cursor, remaining uintptr) (pad uintptr, ok bool) {
	checkAlignment(align)

	if remaining < size {
		return 0, false
	}

	pad = padding(cursor, align)
	if remaining-size < pad {
		return 0, false
	}
	return pad, true
}
