package allocator

import "encoding/binary"

// Field offsets within the 8-byte header. Modern Go compilers inline and
// optimize binary.LittleEndian calls extremely well, so the header is kept
// as a plain byte layout rather than cast through unsafe.Pointer.
const (
	offsetPayloadSize = 0
	offsetAlloc       = 4
	offsetClassIndex  = 6
)

func payloadPtr(hdr Ptr) Ptr { return hdr + HeaderSize }
func headerPtr(payload Ptr) Ptr { return payload - HeaderSize }

func headerPayloadSize(mem []byte, hdr Ptr) uint32 {
	return binary.LittleEndian.Uint32(mem[hdr+offsetPayloadSize : hdr+offsetPayloadSize+4])
}

func setHeaderPayloadSize(mem []byte, hdr Ptr, v uint32) {
	binary.LittleEndian.PutUint32(mem[hdr+offsetPayloadSize:hdr+offsetPayloadSize+4], v)
}

func headerAlloc(mem []byte, hdr Ptr) uint16 {
	return binary.LittleEndian.Uint16(mem[hdr+offsetAlloc : hdr+offsetAlloc+2])
}

func setHeaderAlloc(mem []byte, hdr Ptr, v uint16) {
	binary.LittleEndian.PutUint16(mem[hdr+offsetAlloc:hdr+offsetAlloc+2], v)
}

func headerClassIndex(mem []byte, hdr Ptr) uint16 {
	return binary.LittleEndian.Uint16(mem[hdr+offsetClassIndex : hdr+offsetClassIndex+2])
}

func setHeaderClassIndex(mem []byte, hdr Ptr, v uint16) {
	binary.LittleEndian.PutUint16(mem[hdr+offsetClassIndex:hdr+offsetClassIndex+2], v)
}
