package allocator

import "math/bits"

// classBounds caches each class's inclusive [lower, upper] footprint range
// so tests can report it without recomputing a bit-scan, the
// same table-plus-accessor shape size_classes.go uses for its own
// (tunable) boundary table, specialized here since the 28 classes and
// their power-of-two boundaries are fixed, not configuration.
var classBounds [ClassCount]struct {
	lower int64
	upper int64
}

func init() {
	for i := 0; i < ClassCount; i++ {
		classBounds[i].lower = int64(1) << (i + MinExponent)
		classBounds[i].upper = int64(1)<<(i+MinExponent+1) - 1
	}
}

// classOf returns the size class index for a footprint (header + payload),
// the position of its highest set bit minus MinExponent, clamped to 0 for
// footprints below the smallest class's lower bound. It is total for any
// footprint representable in a 32-bit field; callers are responsible for
// keeping footprint within that range before calling it.
func classOf(footprint int64) int {
	if footprint < int64(1)<<MinExponent {
		return 0
	}
	idx := bits.Len64(uint64(footprint)) - 1 - MinExponent
	if idx < 0 {
		idx = 0
	}
	return idx
}

// classLowerBound and classUpperBound report class i's nominal footprint
// range. For ReallocClass they report the power-of-two range its index
// implies, although blocks in that class are reallocation traffic of any
// footprint.
func classLowerBound(i int) int64 { return classBounds[i].lower }
func classUpperBound(i int) int64 { return classBounds[i].upper }
