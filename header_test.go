package allocator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeaderCodec_RoundTripsAllFields(t *testing.T) {
	mem := make([]byte, 64)
	var hdr Ptr = 16

	setHeaderPayloadSize(mem, hdr, 0xDEADBEEF)
	setHeaderAlloc(mem, hdr, 1)
	setHeaderClassIndex(mem, hdr, 27)

	require.Equal(t, uint32(0xDEADBEEF), headerPayloadSize(mem, hdr))
	require.Equal(t, uint16(1), headerAlloc(mem, hdr))
	require.Equal(t, uint16(27), headerClassIndex(mem, hdr))
}

func TestHeaderCodec_FieldsDoNotOverlap(t *testing.T) {
	mem := make([]byte, 64)
	var hdr Ptr = 0

	setHeaderPayloadSize(mem, hdr, 0xFFFFFFFF)
	setHeaderAlloc(mem, hdr, 0)
	setHeaderClassIndex(mem, hdr, 0)

	require.Equal(t, uint16(0), headerAlloc(mem, hdr), "alloc clobbered by payload_sz write")
	require.Equal(t, uint16(0), headerClassIndex(mem, hdr), "class_index clobbered by payload_sz write")
}

func TestPayloadPtrAndHeaderPtr_AreInverses(t *testing.T) {
	var hdr Ptr = 4096
	require.Equal(t, hdr, headerPtr(payloadPtr(hdr)))
}
