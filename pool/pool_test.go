package pool_test

import (
	"testing"

	"github.com/arrowgraph/algokit/pool"
	"github.com/arrowgraph/algokit/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferSizeDeterministic(t *testing.T) {
	size, err := pool.BufferSize(8, 4)
	require.NoError(t, err)
	assert.Equal(t, 32, size)

	again, err := pool.BufferSize(8, 4)
	require.NoError(t, err)
	assert.Equal(t, size, again)
}

func TestBufferSizeRejectsBadInput(t *testing.T) {
	_, err := pool.BufferSize(3, 4)
	assert.ErrorIs(t, err, value.ErrInvalidArgument)

	_, err = pool.BufferSize(8, 0)
	assert.ErrorIs(t, err, value.ErrInvalidArgument)
}

func TestCreateRejectsUndersizedBuffer(t *testing.T) {
	buf := make([]byte, 10)
	_, err := pool.Create(8, 4, buf)
	assert.ErrorIs(t, err, value.ErrInvalidArgument)
}

func TestAllocFreeLIFOOrdering(t *testing.T) {
	size, err := pool.BufferSize(8, 3)
	require.NoError(t, err)
	buf := make([]byte, size)
	p, err := pool.Create(8, 3, buf)
	require.NoError(t, err)

	a, err := p.Alloc()
	require.NoError(t, err)
	b, err := p.Alloc()
	require.NoError(t, err)
	c, err := p.Alloc()
	require.NoError(t, err)

	_, err = p.Alloc()
	assert.ErrorIs(t, err, value.ErrOperationFailed)

	require.NoError(t, p.Free(b))
	reused, err := p.Alloc()
	require.NoError(t, err)
	assert.Equal(t, &b[0], &reused[0])

	require.NoError(t, p.Free(a))
	require.NoError(t, p.Free(c))
	require.NoError(t, p.Free(reused))
}

func TestFreeNilIsNoOp(t *testing.T) {
	size, err := pool.BufferSize(8, 2)
	require.NoError(t, err)
	p, err := pool.Create(8, 2, make([]byte, size))
	require.NoError(t, err)
	assert.NoError(t, p.Free(nil))
}

func TestFreeRejectsForeignBlock(t *testing.T) {
	size, err := pool.BufferSize(8, 2)
	require.NoError(t, err)
	p, err := pool.Create(8, 2, make([]byte, size))
	require.NoError(t, err)

	foreign := make([]byte, 8)
	err = p.Free(foreign)
	assert.ErrorIs(t, err, value.ErrInvalidArgument)
}

func TestFreeRejectsMisalignedBlock(t *testing.T) {
	size, err := pool.BufferSize(8, 2)
	require.NoError(t, err)
	buf := make([]byte, size)
	p, err := pool.Create(8, 2, buf)
	require.NoError(t, err)

	misaligned := buf[1:9]
	err = p.Free(misaligned)
	assert.ErrorIs(t, err, value.ErrInvalidArgument)
}

func TestSlotRoundTrip(t *testing.T) {
	size, err := pool.BufferSize(8, 3)
	require.NoError(t, err)
	p, err := pool.Create(8, 3, make([]byte, size))
	require.NoError(t, err)

	elem, err := p.Alloc()
	require.NoError(t, err)
	slot, err := p.SlotOf(elem)
	require.NoError(t, err)
	assert.Equal(t, int32(0), slot)

	back, err := p.AtSlot(slot)
	require.NoError(t, err)
	assert.Equal(t, &elem[0], &back[0])
}

func TestAtSlotRejectsOutOfRange(t *testing.T) {
	size, err := pool.BufferSize(8, 2)
	require.NoError(t, err)
	p, err := pool.Create(8, 2, make([]byte, size))
	require.NoError(t, err)

	_, err = p.AtSlot(-1)
	assert.ErrorIs(t, err, value.ErrInvalidArgument)
	_, err = p.AtSlot(2)
	assert.ErrorIs(t, err, value.ErrInvalidArgument)
}

func TestFreeCountTracksAllocAndFree(t *testing.T) {
	size, err := pool.BufferSize(8, 3)
	require.NoError(t, err)
	p, err := pool.Create(8, 3, make([]byte, size))
	require.NoError(t, err)
	assert.Equal(t, int32(3), p.FreeCount())

	elem, err := p.Alloc()
	require.NoError(t, err)
	assert.Equal(t, int32(2), p.FreeCount())

	require.NoError(t, p.Free(elem))
	assert.Equal(t, int32(3), p.FreeCount())
}

func TestElementSizeAndCapacity(t *testing.T) {
	size, err := pool.BufferSize(16, 5)
	require.NoError(t, err)
	p, err := pool.Create(16, 5, make([]byte, size))
	require.NoError(t, err)
	assert.Equal(t, int32(16), p.ElementSize())
	assert.Equal(t, int32(5), p.Capacity())
}
