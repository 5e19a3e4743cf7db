package segment_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MO-Elmu/Heap-Allocator/segment"
)

func TestInit_ReservesHeaderPage(t *testing.T) {
	a := segment.New()
	require.NoError(t, a.Init(0))
	require.Equal(t, segment.DefaultPageSize, len(a.Bytes()))
}

func TestInit_AllocatesRequestedPagesPlusHeader(t *testing.T) {
	a := segment.New(segment.WithPageSize(1024))
	require.NoError(t, a.Init(3))
	require.Equal(t, 1024*4, len(a.Bytes()))
}

func TestInit_RejectsNegativePages(t *testing.T) {
	a := segment.New()
	require.ErrorIs(t, a.Init(-1), segment.ErrNegativePages)
}

func TestExtend_GrowsByWholePages(t *testing.T) {
	a := segment.New(segment.WithPageSize(256))
	require.NoError(t, a.Init(0))

	off, err := a.Extend(2)
	require.NoError(t, err)
	require.EqualValues(t, 256, off)
	require.Equal(t, 256*3, len(a.Bytes()))
}

func TestExtend_PreservesExistingContents(t *testing.T) {
	a := segment.New(segment.WithPageSize(64))
	require.NoError(t, a.Init(0))
	a.Bytes()[10] = 0xAB

	_, err := a.Extend(1)
	require.NoError(t, err)
	require.Equal(t, byte(0xAB), a.Bytes()[10])
}

func TestExtend_RejectsNonPositivePageCounts(t *testing.T) {
	a := segment.New()
	require.NoError(t, a.Init(0))

	_, err := a.Extend(0)
	require.ErrorIs(t, err, segment.ErrNotPositivePages)

	_, err = a.Extend(-3)
	require.ErrorIs(t, err, segment.ErrNotPositivePages)
}

func TestPageSize_DefaultsAndOverrides(t *testing.T) {
	require.Equal(t, segment.DefaultPageSize, segment.New().PageSize())
	require.Equal(t, 8192, segment.New(segment.WithPageSize(8192)).PageSize())
}
