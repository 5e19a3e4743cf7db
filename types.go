package allocator

// Ptr is a handle into a Segment's backing store: a byte offset, not a raw
// process address. Offset 0 is reserved (the segment's first page is never
// handed out as a block) and doubles as the null sentinel returned on
// failure and accepted as a no-op by Free.
type Ptr uintptr

// NullPtr is the zero value of Ptr and the only value Free treats as a
// no-op rather than a live block.
const NullPtr Ptr = 0

const (
	// HeaderSize is the fixed in-band header width: payload_sz (u32) +
	// alloc (u16) + class_index (u16).
	HeaderSize = 8

	// Alignment is the byte boundary every footprint is rounded up to.
	Alignment = 8

	// MinBlockSize is the smallest footprint (header + payload) a split
	// remainder is allowed to produce; smaller remainders are left
	// attached to the block that was carved from them.
	MinBlockSize = 16

	// ClassCount is the number of size classes, indices [0, ClassCount).
	ClassCount = 28

	// ReallocClass is the size class reserved for blocks produced by
	// Reallocate. It is never probed by ordinary Allocate traffic.
	ReallocClass = 27

	// MinExponent is the exponent of the smallest class's lower bound
	// (class 0 starts at 1<<MinExponent).
	MinExponent = 4

	// HitSensor is the per-class demand threshold at or above which
	// Allocate ends its cross-class probe at the first list with no fit,
	// and splits keep their remainder in the originating class instead of
	// redistributing it by size.
	HitSensor = 150000
)

// Segment is the page-granular heap collaborator the allocator grows
// against. It owns no allocation policy of its own: Init resets it to zero
// pages, Extend appends whole pages and returns the offset the new region
// starts at, Bytes exposes the current backing store, and PageSize reports
// the page granularity Extend operates in.
//
// A grow via Extend is permitted to reallocate the backing store (grow by
// copy); callers must always re-fetch Bytes after any Extend rather than
// reuse a slice obtained before it.
type Segment interface {
	Init(pages int) error
	Extend(pages int) (Ptr, error)
	Bytes() []byte
	PageSize() int
}
