package queue

import (
	"fmt"

	"github.com/arrowgraph/algokit/value"
)

// Queue is a fixed-capacity FIFO of value.Value, backed by a ring buffer.
type Queue struct {
	buf        []value.Value
	head, tail int32
}

// BufferSize reports the number of value.Value slots a Queue of the given
// capacity requires. One extra slot beyond capacity is reserved as a
// sentinel so full and empty states can be told apart.
func BufferSize(capacity int32) (int, error) {
	if capacity < 1 {
		return 0, fmt.Errorf("queue: %w: capacity must be >= 1", value.ErrInvalidArgument)
	}
	return int(capacity) + 1, nil
}

// Create initializes an empty Queue of the given capacity over buffer,
// which must contain at least BufferSize(capacity) elements.
func Create(capacity int32, buffer []value.Value) (*Queue, error) {
	minSize, err := BufferSize(capacity)
	if err != nil {
		return nil, err
	}
	if buffer == nil || len(buffer) < minSize {
		return nil, fmt.Errorf("queue: %w: buffer too small", value.ErrInvalidArgument)
	}
	return &Queue{buf: buffer[:minSize]}, nil
}

// Capacity returns the maximum number of elements the queue can hold.
func (q *Queue) Capacity() int32 { return int32(len(q.buf)) - 1 }

// CurrentSize returns the number of elements currently in the queue.
func (q *Queue) CurrentSize() int32 {
	nodeCount := int32(len(q.buf))
	return (q.tail - q.head + nodeCount) % nodeCount
}

// Insert appends v to the back of the queue. It fails with
// ErrOperationFailed if the queue is at capacity.
func (q *Queue) Insert(v value.Value) error {
	if q.CurrentSize() == q.Capacity() {
		return fmt.Errorf("queue: %w: queue is full", value.ErrOperationFailed)
	}
	q.buf[q.tail] = v
	q.tail = (q.tail + 1) % int32(len(q.buf))
	return nil
}

// Remove removes and returns the value at the front of the queue. It
// fails with ErrOperationFailed if the queue is empty.
func (q *Queue) Remove() (value.Value, error) {
	if q.CurrentSize() == 0 {
		return value.Value{}, fmt.Errorf("queue: %w: queue is empty", value.ErrOperationFailed)
	}
	v := q.buf[q.head]
	q.buf[q.head] = value.Value{}
	q.head = (q.head + 1) % int32(len(q.buf))
	return v, nil
}
