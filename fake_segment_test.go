package allocator

// fakeSegment is a minimal in-package Segment used by white-box tests that
// need to reach unexported helpers (classOf, the header codec, findFit)
// directly. It mirrors segment.Arena's layout (a reserved first page,
// grow by copy) without Arena's page-count checks, and lives here to
// avoid that package's import back on this one.
type fakeSegment struct {
	data     []byte
	pageSize int
}

func newFakeSegment(pageSize int) *fakeSegment {
	return &fakeSegment{pageSize: pageSize}
}

func (f *fakeSegment) Init(pages int) error {
	f.data = make([]byte, f.pageSize*(pages+1))
	return nil
}

func (f *fakeSegment) Extend(pages int) (Ptr, error) {
	old := len(f.data)
	grown := make([]byte, old+pages*f.pageSize)
	copy(grown, f.data)
	f.data = grown
	return Ptr(old), nil
}

func (f *fakeSegment) Bytes() []byte { return f.data }
func (f *fakeSegment) PageSize() int { return f.pageSize }
