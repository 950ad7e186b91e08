package stack_test

import (
	"testing"

	"github.com/arrowgraph/algokit/stack"
	"github.com/arrowgraph/algokit/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStack(t *testing.T, capacity int32) *stack.Stack {
	t.Helper()
	size, err := stack.BufferSize(capacity)
	require.NoError(t, err)
	s, err := stack.Create(capacity, make([]value.Value, size))
	require.NoError(t, err)
	return s
}

func TestBufferSizeRejectsBadCapacity(t *testing.T) {
	_, err := stack.BufferSize(0)
	assert.ErrorIs(t, err, value.ErrInvalidArgument)
}

func TestPushPopIdentity(t *testing.T) {
	s := newStack(t, 3)
	require.NoError(t, s.Push(value.Int(1)))
	require.NoError(t, s.Push(value.Int(2)))
	require.NoError(t, s.Push(value.Int(3)))
	assert.Equal(t, int32(3), s.CurrentSize())

	v, err := s.Pop()
	require.NoError(t, err)
	assert.Equal(t, int32(3), v.Int())

	v, err = s.Pop()
	require.NoError(t, err)
	assert.Equal(t, int32(2), v.Int())

	v, err = s.Pop()
	require.NoError(t, err)
	assert.Equal(t, int32(1), v.Int())

	assert.Equal(t, int32(0), s.CurrentSize())
}

func TestPushFullFails(t *testing.T) {
	s := newStack(t, 1)
	require.NoError(t, s.Push(value.Int(1)))
	err := s.Push(value.Int(2))
	assert.ErrorIs(t, err, value.ErrOperationFailed)
}

func TestPopEmptyFails(t *testing.T) {
	s := newStack(t, 1)
	_, err := s.Pop()
	assert.ErrorIs(t, err, value.ErrOperationFailed)
}

func TestCapacity(t *testing.T) {
	s := newStack(t, 5)
	assert.Equal(t, int32(5), s.Capacity())
}
