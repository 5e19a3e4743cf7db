package allocator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestAllocate_HotClassShortCircuit exercises invariant 8: once a target
// class's hit counter has reached HitSensor, Allocate stops probing
// further classes in the same call rather than finding a block parked in
// a higher-indexed list.
func TestAllocate_HotClassShortCircuit(t *testing.T) {
	seg := newFakeSegment(4096)
	a := New(seg)
	mem := seg.Bytes()

	const plantedClass = 5
	var planted Ptr = 256
	setHeaderPayloadSize(mem, planted, 200)
	setHeaderAlloc(mem, planted, 0)
	setHeaderClassIndex(mem, planted, plantedClass)
	setNextPtr(mem, payloadPtr(planted), 0)
	a.freeLists[plantedClass] = planted

	a.hitCounters[0] = HitSensor

	ptr, err := a.Allocate(8)
	require.NoError(t, err)

	require.NotEqual(t, payloadPtr(planted), ptr, "Allocate reused the planted class-%d block despite the saturated short-circuit", plantedClass)
	require.Equal(t, planted, a.freeLists[plantedClass], "planted block was unlinked even though its class should never have been probed")
	require.Equal(t, 1, a.stats.GrowCalls, "the request should have fallen through to segment growth")
}

// TestFree_ReallocClassCounterDropsBelowSensorThenWraps covers the first
// open design question: the hit counter is decremented on every free
// regardless of lane, so a reallocation-class counter can be driven below
// HitSensor, and far enough past zero it wraps (uint32 underflow),
// crossing back above HitSensor from the other direction. This is carried
// as specified rather than patched.
func TestFree_ReallocClassCounterDropsBelowSensorThenWraps(t *testing.T) {
	seg := newFakeSegment(64)
	a := New(seg)
	mem := seg.Bytes()

	var hdr Ptr = 8
	setHeaderClassIndex(mem, hdr, ReallocClass)
	setHeaderAlloc(mem, hdr, 1)
	setHeaderPayloadSize(mem, hdr, 8)

	require.Equal(t, uint32(HitSensor), a.hitCounters[ReallocClass], "precondition")

	require.NoError(t, a.Free(payloadPtr(hdr)))
	require.Equal(t, uint32(HitSensor-1), a.hitCounters[ReallocClass], "a single free should leave the counter below HitSensor")

	// Re-mark the block allocated and free it again, repeatedly, standing
	// in for HitSensor-1 further reallocation-class blocks being freed, to
	// drive the counter down to zero and one step past.
	for i := uint32(0); i < HitSensor-1; i++ {
		setHeaderAlloc(mem, hdr, 1)
		require.NoError(t, a.Free(payloadPtr(hdr)))
	}
	require.Equal(t, uint32(0), a.hitCounters[ReallocClass])

	setHeaderAlloc(mem, hdr, 1)
	require.NoError(t, a.Free(payloadPtr(hdr)))
	require.Equal(t, uint32(math.MaxUint32), a.hitCounters[ReallocClass], "counter should wrap around")
}

func TestFindFit_NoSplitLeavesPayloadSizeUntouched(t *testing.T) {
	seg := newFakeSegment(4096)
	a := New(seg)
	mem := seg.Bytes()

	var block Ptr = 256
	setHeaderPayloadSize(mem, block, 20)
	setHeaderAlloc(mem, block, 0)
	setHeaderClassIndex(mem, block, 0)
	setNextPtr(mem, payloadPtr(block), 0)
	a.freeLists[0] = block

	got, found := a.findFit(mem, 20, 0, true)
	require.True(t, found)
	require.Equal(t, block, got)
	require.Equal(t, uint32(20), headerPayloadSize(mem, block), "payload_sz should be left untouched")
	require.Equal(t, uint16(1), headerAlloc(mem, block))
}

func TestFindFit_SplitInsertsRemainderByClassWhenNotHot(t *testing.T) {
	seg := newFakeSegment(4096)
	a := New(seg)
	mem := seg.Bytes()

	var block Ptr = 256
	setHeaderPayloadSize(mem, block, 200)
	setHeaderAlloc(mem, block, 0)
	setHeaderClassIndex(mem, block, 3)
	setNextPtr(mem, payloadPtr(block), 0)
	a.freeLists[3] = block

	got, found := a.findFit(mem, 20, 3, true)
	require.True(t, found)
	require.Equal(t, block, got)
	require.Equal(t, uint32(20), headerPayloadSize(mem, block))

	remainder := int64(200 - 20 - HeaderSize)
	wantClass := classOf(remainder + HeaderSize)
	require.NotZero(t, a.freeLists[wantClass], "remainder was not filed under classOf(remainder)=%d", wantClass)
}

func TestFindFit_SplitKeepsRemainderInClassWhenHot(t *testing.T) {
	seg := newFakeSegment(4096)
	a := New(seg)
	mem := seg.Bytes()

	var block Ptr = 256
	setHeaderPayloadSize(mem, block, 200)
	setHeaderAlloc(mem, block, 0)
	setHeaderClassIndex(mem, block, 3)
	setNextPtr(mem, payloadPtr(block), 0)
	a.freeLists[3] = block
	a.hitCounters[3] = HitSensor

	_, found := a.findFit(mem, 20, 3, true)
	require.True(t, found, "findFit did not find the planted block")
	require.NotZero(t, a.freeLists[3], "remainder was not kept in the originating class despite the saturated hit counter")
}
