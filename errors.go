package allocator

import "errors"

var (
	// ErrSizeTooSmall indicates a requested size of zero or less.
	ErrSizeTooSmall = errors.New("allocator: requested size must be greater than zero")

	// ErrSizeTooLarge indicates a requested size whose adjusted footprint
	// exceeds math.MaxInt32.
	ErrSizeTooLarge = errors.New("allocator: requested size exceeds maximum representable footprint")

	// ErrGrowFailed indicates the segment could not be extended to
	// satisfy a request that no free list could fit.
	ErrGrowFailed = errors.New("allocator: segment growth failed")

	// ErrBadPtr indicates a pointer that does not reference a live block
	// the allocator issued. Free and Reallocate return it for any non-null
	// ptr that is out of the segment's bounds, carries an out-of-range
	// class_index, or is already marked free.
	ErrBadPtr = errors.New("allocator: invalid or out-of-bounds pointer")
)
