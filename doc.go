// Package allocator implements a segregated free-list memory allocator
// over a page-extensible heap segment.
//
// # Overview
//
// The allocator classifies every request into one of 28 power-of-two size
// classes, keeps one intrusive singly-linked free list per class, and
// serves allocate/free/reallocate against those lists with a first-fit
// search and conditional splitting. A dedicated size class (27) is
// reserved for blocks produced by Reallocate and is never touched by
// ordinary Allocate traffic. Fragmentation is managed purely by the
// size-class discipline; adjacent free blocks are never coalesced.
//
// # Allocator Interface
//
// The core operations are:
//
//   - Allocate(size): reserve size bytes, returning an opaque Ptr handle
//   - Free(ptr): return a block to its size class's free list
//   - Reallocate(ptr, size): grow a live block, with doubling retention;
//     a size that already fits returns ptr unchanged
//   - Validate(): structural consistency check (debug use only)
//
// # Size Classes
//
// Class k (for k < 27) nominally spans footprints (header + payload) in
// [2^(k+4), 2^(k+5)) bytes:
//
//	Class  0:   16 -    31 bytes
//	Class  1:   32 -    63 bytes
//	Class  2:   64 -   127 bytes
//	...
//	Class 26:  1GiB -  2GiB (less one byte)
//	Class 27: reserved for Reallocate traffic
//
// # Adaptive Policy
//
// Each class maintains a hit counter, incremented on every allocation or
// reallocation request mapped to it and decremented on every free of a
// block belonging to it. Once a request's target class counter reaches
// HitSensor, Allocate ends its ascending probe (which starts at class 0) at
// the first class list with no fit and grows the segment instead, so no
// class above the first miss is inspected in that call; and any block
// split out of that class keeps its remainder in the same class instead
// of redistributing it by size. The reallocation class's counter is
// pre-saturated at HitSensor on Init, so reallocated blocks are always
// recycled within the reallocation lane rather than leaking into ordinary
// allocation traffic.
//
// # Usage Example
//
//	seg := segment.New()
//	a := allocator.New(seg)
//
//	ptr, err := a.Allocate(200)
//	if err != nil {
//	    return err
//	}
//	copy(seg.Bytes()[ptr:ptr+200], payload)
//
//	ptr2, err := a.Reallocate(ptr, 400)
//	if err != nil {
//	    return err
//	}
//
//	if err := a.Free(ptr2); err != nil {
//	    return err
//	}
//
// # Pointer Model
//
// Ptr is a byte offset into the segment's backing storage rather than a
// raw process address. Offset 0 is reserved and never a valid block
// start, so it doubles as the null sentinel throughout (free-list
// termination, Allocate/Reallocate failure return, a no-op Free).
//
// # Thread Safety
//
// Allocator is not safe for concurrent use. Callers must serialize access
// externally; none of the operations suspend or block.
package allocator
