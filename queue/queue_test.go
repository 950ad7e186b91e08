package queue_test

import (
	"testing"

	"github.com/arrowgraph/algokit/queue"
	"github.com/arrowgraph/algokit/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQueue(t *testing.T, capacity int32) *queue.Queue {
	t.Helper()
	size, err := queue.BufferSize(capacity)
	require.NoError(t, err)
	q, err := queue.Create(capacity, make([]value.Value, size))
	require.NoError(t, err)
	return q
}

func TestBufferSizeReservesSentinel(t *testing.T) {
	size, err := queue.BufferSize(3)
	require.NoError(t, err)
	assert.Equal(t, 4, size)
}

func TestInsertRemoveFIFOOrdering(t *testing.T) {
	q := newQueue(t, 3)
	require.NoError(t, q.Insert(value.Int(1)))
	require.NoError(t, q.Insert(value.Int(2)))
	require.NoError(t, q.Insert(value.Int(3)))
	assert.Equal(t, int32(3), q.CurrentSize())

	v, err := q.Remove()
	require.NoError(t, err)
	assert.Equal(t, int32(1), v.Int())

	// Wrap-around: insert after a remove to exercise the ring buffer seam.
	require.NoError(t, q.Insert(value.Int(4)))

	v, err = q.Remove()
	require.NoError(t, err)
	assert.Equal(t, int32(2), v.Int())

	v, err = q.Remove()
	require.NoError(t, err)
	assert.Equal(t, int32(3), v.Int())

	v, err = q.Remove()
	require.NoError(t, err)
	assert.Equal(t, int32(4), v.Int())

	assert.Equal(t, int32(0), q.CurrentSize())
}

func TestInsertFullFails(t *testing.T) {
	q := newQueue(t, 1)
	require.NoError(t, q.Insert(value.Int(1)))
	err := q.Insert(value.Int(2))
	assert.ErrorIs(t, err, value.ErrOperationFailed)
}

func TestRemoveEmptyFails(t *testing.T) {
	q := newQueue(t, 1)
	_, err := q.Remove()
	assert.ErrorIs(t, err, value.ErrOperationFailed)
}

func TestCapacityExcludesSentinel(t *testing.T) {
	q := newQueue(t, 5)
	assert.Equal(t, int32(5), q.Capacity())
}
