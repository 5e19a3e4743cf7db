package allocator

import "encoding/binary"

// A free block's next pointer lives in the first 8 bytes of its payload,
// intrusive and LIFO per class, mirroring the free-cell-list shape of
// fastalloc.go but without the per-class min-heap: first-fit only needs
// O(1) head insert and linear scan, not best-fit-by-heap.

func nextPtr(mem []byte, payload Ptr) Ptr {
	return Ptr(binary.LittleEndian.Uint64(mem[payload : payload+8]))
}

func setNextPtr(mem []byte, payload Ptr, next Ptr) {
	binary.LittleEndian.PutUint64(mem[payload:payload+8], uint64(next))
}

// insertFree pushes block onto classIndex's free list head, marking it
// free and stamping its class_index to match the list it now lives in.
func (a *Allocator) insertFree(mem []byte, classIndex int, block Ptr) {
	setNextPtr(mem, payloadPtr(block), a.freeLists[classIndex])
	a.freeLists[classIndex] = block
	setHeaderAlloc(mem, block, 0)
	setHeaderClassIndex(mem, block, uint16(classIndex))
}
