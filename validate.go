package allocator

// Validate is a debug-only structural consistency predicate. It holds iff
// every free list contains only blocks marked free, every such block's
// class_index matches the list it is stored in, every list terminates at
// the null sentinel within a bounded number of hops with no cycles, and
// every free block's header and payload lie within the segment's current
// bounds.
//
// It is O(heap size) and is not called from any allocate/free/reallocate
// path; callers reach for it from tests and CLI tooling.
func (a *Allocator) Validate() bool {
	mem := a.seg.Bytes()
	total := len(mem)
	maxHops := total/MinBlockSize + 1

	for classIndex := 0; classIndex < ClassCount; classIndex++ {
		seen := make(map[Ptr]bool)
		cur := a.freeLists[classIndex]
		hops := 0

		for cur != 0 {
			if hops > maxHops {
				return false
			}
			if seen[cur] {
				return false
			}
			seen[cur] = true

			if int(cur)+HeaderSize > total {
				return false
			}
			if headerAlloc(mem, cur) != 0 {
				return false
			}
			if int(headerClassIndex(mem, cur)) != classIndex {
				return false
			}

			payload := headerPayloadSize(mem, cur)
			if int(cur)+HeaderSize+int(payload) > total {
				return false
			}

			cur = nextPtr(mem, payloadPtr(cur))
			hops++
		}
	}

	return true
}
