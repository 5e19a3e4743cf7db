// Package segment provides the default page-granular backing store the
// allocator package grows against.
//
// Arena is a single growable []byte, extended by reallocate-and-copy
// rather than a reserve-then-commit mmap scheme: because the allocator
// addresses it by offset rather than by raw pointer, a grow-by-copy never
// invalidates a previously issued offset, only previously cached []byte
// views, which callers are expected to refresh via Bytes after any Extend.
package segment

import (
	"errors"

	allocator "github.com/MO-Elmu/Heap-Allocator"
)

// DefaultPageSize is used when no Option overrides it, mirroring the
// hive package's own convention of a named page-size constant
// (format.HBINAlignment) rather than a magic number at call sites.
const DefaultPageSize = 4096

// ErrNegativePages indicates a negative page count was requested.
var ErrNegativePages = errors.New("segment: page count must be non-negative")

// ErrNotPositivePages indicates Extend was asked to grow by zero or fewer
// pages.
var ErrNotPositivePages = errors.New("segment: extend requires a positive page count")

// Arena is the default Segment implementation: one contiguous backing
// store, grown by make+copy. Its first page is permanently reserved and
// never handed out as a block, so offset 0 is always safe to use as a
// null sentinel by callers.
type Arena struct {
	data     []byte
	pageSize int
}

// Option configures an Arena at construction time.
type Option func(*Arena)

// WithPageSize overrides DefaultPageSize.
func WithPageSize(pageSize int) Option {
	return func(a *Arena) {
		if pageSize > 0 {
			a.pageSize = pageSize
		}
	}
}

// New constructs an uninitialized Arena. Callers must call Init before
// use.
func New(opts ...Option) *Arena {
	a := &Arena{pageSize: DefaultPageSize}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Init resets the arena to hold pages pages of usable space plus one
// reserved header page, discarding any existing contents.
func (a *Arena) Init(pages int) error {
	if pages < 0 {
		return ErrNegativePages
	}
	a.data = make([]byte, a.pageSize*(pages+1))
	return nil
}

// Extend grows the arena by pages whole pages and returns the offset the
// new region starts at. The returned offset is always a multiple of the
// page size and always greater than zero.
func (a *Arena) Extend(pages int) (allocator.Ptr, error) {
	if pages <= 0 {
		return 0, ErrNotPositivePages
	}
	old := len(a.data)
	grown := make([]byte, old+pages*a.pageSize)
	copy(grown, a.data)
	a.data = grown
	return allocator.Ptr(old), nil
}

// Bytes returns the arena's current backing store. The returned slice is
// only valid until the next call to Extend.
func (a *Arena) Bytes() []byte { return a.data }

// PageSize reports the page granularity Extend grows by.
func (a *Arena) PageSize() int { return a.pageSize }
