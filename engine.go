package allocator

import (
	"fmt"
	"os"
)

// findFit scans classIndex's free list for the first block whose payload
// is at least need bytes, unlinks it, and, when maySplit is set and the
// remainder would be at least MinBlockSize, carves a tail block off and
// reinserts it. The remainder's destination class follows the adaptive
// policy: once classIndex's hit counter has reached HitSensor, the
// remainder stays in classIndex rather than being redistributed by its
// own size.
//
// The no-split path intentionally leaves the matched block's payload_sz
// untouched: it already holds the right value, so there is nothing to
// rewrite.
func (a *Allocator) findFit(mem []byte, need int32, classIndex int, maySplit bool) (Ptr, bool) {
	var prev Ptr
	cur := a.freeLists[classIndex]

	for cur != 0 {
		payload := headerPayloadSize(mem, cur)
		if int32(payload) < need {
			prev = cur
			cur = nextPtr(mem, payloadPtr(cur))
			continue
		}

		next := nextPtr(mem, payloadPtr(cur))
		if prev == 0 {
			a.freeLists[classIndex] = next
		} else {
			setNextPtr(mem, payloadPtr(prev), next)
		}

		remainder := int32(payload) - need
		if maySplit && remainder >= MinBlockSize {
			a.stats.SplitCount++

			tail := cur + HeaderSize + Ptr(need)
			setHeaderPayloadSize(mem, tail, uint32(remainder-HeaderSize))

			destClass := classIndex
			if a.hitCounters[classIndex] < HitSensor {
				destClass = classOf(int64(remainder))
			}
			a.insertFree(mem, destClass, tail)
			setHeaderPayloadSize(mem, cur, uint32(need))

			if logAlloc {
				fmt.Fprintf(os.Stderr, "[ALLOC] split: class=%d need=%d remainder=%d -> class=%d\n",
					classIndex, need, remainder, destClass)
			}
		} else if logAlloc {
			fmt.Fprintf(os.Stderr, "[ALLOC] fit: class=%d need=%d payload=%d (no split)\n",
				classIndex, need, payload)
		}

		setHeaderAlloc(mem, cur, 1)
		return cur, true
	}

	return 0, false
}
