package allocator

import (
	"fmt"
	"math"
	"os"
)

// Allocator is a segregated free-list allocator over a Segment. It is not
// safe for concurrent use.
type Allocator struct {
	seg         Segment
	freeLists   [ClassCount]Ptr
	hitCounters [ClassCount]uint32
	stats       allocatorStats
}

// New constructs an Allocator over seg and initializes it.
func New(seg Segment) *Allocator {
	a := &Allocator{seg: seg}
	a.Init()
	return a
}

// Init resets all free lists and hit counters, pre-saturates the
// reallocation class's counter so splits of reallocation-class blocks keep
// their remainder in that class, and resets the segment to zero pages. It reports
// whether the segment reset succeeded.
func (a *Allocator) Init() bool {
	for i := range a.freeLists {
		a.freeLists[i] = 0
	}
	for i := range a.hitCounters {
		a.hitCounters[i] = 0
	}
	a.hitCounters[ReallocClass] = HitSensor
	a.stats = allocatorStats{}

	if err := a.seg.Init(0); err != nil {
		return false
	}
	return true
}

// Allocate reserves size payload bytes and returns a handle to them. It
// rejects size <= 0 and sizes whose adjusted footprint exceeds
// math.MaxInt32, both with a null Ptr.
func (a *Allocator) Allocate(size int) (Ptr, error) {
	a.stats.AllocCalls++

	if size <= 0 {
		return 0, ErrSizeTooSmall
	}
	if size > math.MaxInt32 {
		return 0, ErrSizeTooLarge
	}

	footprint64 := alignUp64(int64(size)+HeaderSize, Alignment)
	if footprint64 > math.MaxInt32 {
		return 0, ErrSizeTooLarge
	}
	footprint := int32(footprint64)
	need := footprint - HeaderSize

	targetClass := classOf(footprint64)
	a.hitCounters[targetClass]++

	mem := a.seg.Bytes()
	var block Ptr
	found := false
	for i := 0; i < ReallocClass; i++ {
		if block, found = a.findFit(mem, need, i, true); found {
			setHeaderClassIndex(mem, block, uint16(i))
			break
		}
		if a.hitCounters[targetClass] >= HitSensor {
			if logAlloc {
				fmt.Fprintf(os.Stderr, "[ALLOC] short-circuit: targetClass=%d hit=%d, stopped probing at class=%d\n",
					targetClass, a.hitCounters[targetClass], i)
			}
			break
		}
	}

	if !found {
		if logAlloc {
			fmt.Fprintf(os.Stderr, "[ALLOC] miss: size=%d need=%d targetClass=%d, growing\n", size, need, targetClass)
		}
		var err error
		block, err = a.extendAndCarve(need, targetClass)
		if err != nil {
			return 0, err
		}
		a.stats.AllocSlowPath++
	} else {
		a.stats.AllocFastPath++
	}

	return payloadPtr(block), nil
}

// Free returns ptr's block to its size class's free list. A null ptr is a
// no-op. A non-null ptr that does not reference a live, in-bounds block
// this allocator issued returns ErrBadPtr without mutating state.
func (a *Allocator) Free(ptr Ptr) error {
	if ptr == 0 {
		return nil
	}

	mem := a.seg.Bytes()
	hdr, err := a.validatePtr(mem, ptr)
	if err != nil {
		return err
	}
	classIndex := headerClassIndex(mem, hdr)

	before := a.hitCounters[classIndex]
	a.hitCounters[classIndex]--
	if a.hitCounters[classIndex] > before {
		debugLogf("Free: hitCounters[%d] wrapped below zero (%d -> %d)", classIndex, before, a.hitCounters[classIndex])
	}

	a.insertFree(mem, int(classIndex), hdr)
	a.stats.FreeCalls++
	return nil
}

// validatePtr checks that ptr references a live, in-bounds block and
// returns its header offset.
func (a *Allocator) validatePtr(mem []byte, ptr Ptr) (Ptr, error) {
	if ptr < HeaderSize || int(ptr) > len(mem) {
		return 0, ErrBadPtr
	}
	hdr := headerPtr(ptr)
	if int(hdr)+HeaderSize > len(mem) {
		return 0, ErrBadPtr
	}

	classIndex := headerClassIndex(mem, hdr)
	if int(classIndex) >= ClassCount {
		return 0, ErrBadPtr
	}

	payload := headerPayloadSize(mem, hdr)
	if int(ptr)+int(payload) > len(mem) {
		return 0, ErrBadPtr
	}
	if headerAlloc(mem, hdr) != 1 {
		return 0, ErrBadPtr
	}

	return hdr, nil
}

// Reallocate resizes ptr's block to hold at least newsz payload bytes. A
// null ptr delegates entirely to Allocate. A non-null ptr that does not
// reference a live, in-bounds block this allocator issued returns
// ErrBadPtr without mutating state. A newsz that already fits within the
// block's current payload is a no-op that returns ptr unchanged. Growth
// is always served from (and returned to) the reallocation class, sized
// at double the caller's adjusted request so repeated small growths
// don't thrash the segment.
func (a *Allocator) Reallocate(ptr Ptr, newsz int) (Ptr, error) {
	if ptr == 0 {
		return a.Allocate(newsz)
	}

	mem := a.seg.Bytes()
	hdr, err := a.validatePtr(mem, ptr)
	if err != nil {
		return 0, err
	}
	oldPayload := headerPayloadSize(mem, hdr)

	if newsz <= 0 {
		return 0, ErrSizeTooSmall
	}
	if newsz > math.MaxInt32 {
		return 0, ErrSizeTooLarge
	}
	if uint32(newsz) <= oldPayload {
		return ptr, nil
	}

	adjusted64 := alignUp64(int64(newsz)+HeaderSize, Alignment) * 2
	if adjusted64 > math.MaxInt32 {
		return 0, ErrSizeTooLarge
	}
	need := int32(adjusted64) - HeaderSize

	a.hitCounters[ReallocClass]++

	block, found := a.findFit(mem, need, ReallocClass, true)
	if found {
		setHeaderClassIndex(mem, block, uint16(ReallocClass))
	} else {
		var err error
		block, err = a.extendAndCarve(need, ReallocClass)
		if err != nil {
			return 0, err
		}
	}

	mem = a.seg.Bytes()
	newPayload := payloadPtr(block)
	copy(mem[newPayload:newPayload+Ptr(oldPayload)], mem[ptr:ptr+Ptr(oldPayload)])
	a.Free(ptr) //nolint:errcheck // Free never fails once ptr references a live block
	return newPayload, nil
}

// extendAndCarve grows the segment by enough whole pages to cover need
// payload bytes, classifies the new block under targetClass, and either
// splits the residual per the adaptive policy or hands the whole grown
// region to the caller when the residual is too small to stand alone.
func (a *Allocator) extendAndCarve(need int32, targetClass int) (Ptr, error) {
	pageSize := a.seg.PageSize()
	footprint := need + HeaderSize
	pages := pagesFor(footprint, pageSize)

	block, err := a.seg.Extend(pages)
	if err != nil {
		return 0, ErrGrowFailed
	}
	a.stats.GrowCalls++

	if logAlloc {
		fmt.Fprintf(os.Stderr, "[ALLOC] grow: pages=%d pageSize=%d need=%d targetClass=%d block=%d\n",
			pages, pageSize, need, targetClass, block)
	}

	mem := a.seg.Bytes()
	totalPayload64 := int64(pages)*int64(pageSize) - HeaderSize
	remainder64 := totalPayload64 - int64(need)

	if remainder64 >= MinBlockSize {
		a.stats.SplitCount++

		tail := block + HeaderSize + Ptr(need)
		setHeaderPayloadSize(mem, tail, uint32(remainder64-HeaderSize))

		destClass := targetClass
		if a.hitCounters[targetClass] < HitSensor {
			destClass = classOf(remainder64)
		}
		a.insertFree(mem, destClass, tail)
		setHeaderPayloadSize(mem, block, uint32(need))

		if logAlloc {
			fmt.Fprintf(os.Stderr, "[ALLOC] grow-split: remainder=%d -> class=%d\n", remainder64, destClass)
		}
	} else {
		setHeaderPayloadSize(mem, block, uint32(totalPayload64))
	}

	setHeaderAlloc(mem, block, 1)
	setHeaderClassIndex(mem, block, uint16(targetClass))
	return block, nil
}
