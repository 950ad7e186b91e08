package heap

import (
	"fmt"

	"github.com/arrowgraph/algokit/value"
)

// Heap is a fixed-capacity binary min-heap of (key, data) pairs, ordered
// by a value.Comparator applied to the key.
type Heap struct {
	buf     []value.Value // buf[0], buf[1] unused; node i occupies buf[2*i], buf[2*i+1]
	count   int32
	compare value.Comparator
}

// BufferSize reports the number of value.Value slots a Heap of the given
// capacity requires: two per node (key, data), plus one unused node at
// index 0 to keep the 1-based child/parent arithmetic uniform.
func BufferSize(capacity int32) (int, error) {
	if capacity < 1 {
		return 0, fmt.Errorf("heap: %w: capacity must be >= 1", value.ErrInvalidArgument)
	}
	return 2 * (int(capacity) + 1), nil
}

// Create initializes an empty Heap of the given capacity over buffer,
// which must contain at least BufferSize(capacity) elements. compare
// orders nodes by key: Insert and Pop maintain the invariant that
// compare(parent.key, child.key) <= 0 for every node.
func Create(capacity int32, compare value.Comparator, buffer []value.Value) (*Heap, error) {
	minSize, err := BufferSize(capacity)
	if err != nil {
		return nil, err
	}
	if compare == nil {
		return nil, fmt.Errorf("heap: %w: compare must not be nil", value.ErrInvalidArgument)
	}
	if buffer == nil || len(buffer) < minSize {
		return nil, fmt.Errorf("heap: %w: buffer too small", value.ErrInvalidArgument)
	}
	return &Heap{buf: buffer[:minSize], compare: compare}, nil
}

// Capacity returns the maximum number of nodes the heap can hold.
func (h *Heap) Capacity() int32 { return int32(len(h.buf))/2 - 1 }

// CurrentSize returns the number of nodes currently in the heap.
func (h *Heap) CurrentSize() int32 { return h.count }

func (h *Heap) keyAt(i int32) value.Value  { return h.buf[2*i] }
func (h *Heap) dataAt(i int32) value.Value { return h.buf[2*i+1] }

func (h *Heap) setNode(i int32, key, data value.Value) {
	h.buf[2*i] = key
	h.buf[2*i+1] = data
}

func (h *Heap) swap(i, j int32) {
	h.buf[2*i], h.buf[2*j] = h.buf[2*j], h.buf[2*i]
	h.buf[2*i+1], h.buf[2*j+1] = h.buf[2*j+1], h.buf[2*i+1]
}

// Peek returns the minimum node's key and data without removing it. It
// fails with ErrOperationFailed if the heap is empty.
func (h *Heap) Peek() (key, data value.Value, err error) {
	if h.count == 0 {
		return value.Value{}, value.Value{}, fmt.Errorf("heap: %w: heap is empty", value.ErrOperationFailed)
	}
	return h.keyAt(1), h.dataAt(1), nil
}

// Insert adds a (key, data) node to the heap, restoring heap order by
// bubbling it up. It fails with ErrOperationFailed if the heap is at
// capacity.
func (h *Heap) Insert(key, data value.Value) error {
	if h.count == h.Capacity() {
		return fmt.Errorf("heap: %w: heap is full", value.ErrOperationFailed)
	}
	h.count++
	i := h.count
	h.setNode(i, key, data)
	for i > 1 {
		parent := i / 2
		if h.compare(h.keyAt(parent), h.keyAt(i)) <= 0 {
			break
		}
		h.swap(parent, i)
		i = parent
	}
	return nil
}

// Pop removes and returns the minimum node's key and data, restoring heap
// order by bubbling the replacement root down. On ties between children,
// the left child is preferred. It fails with ErrOperationFailed if the
// heap is empty.
func (h *Heap) Pop() (key, data value.Value, err error) {
	if h.count == 0 {
		return value.Value{}, value.Value{}, fmt.Errorf("heap: %w: heap is empty", value.ErrOperationFailed)
	}
	minKey, minData := h.keyAt(1), h.dataAt(1)
	h.setNode(1, h.keyAt(h.count), h.dataAt(h.count))
	h.setNode(h.count, value.Value{}, value.Value{})
	h.count--

	i := int32(1)
	for {
		left, right := 2*i, 2*i+1
		smallest := i
		if left <= h.count && h.compare(h.keyAt(left), h.keyAt(smallest)) < 0 {
			smallest = left
		}
		if right <= h.count && h.compare(h.keyAt(right), h.keyAt(smallest)) < 0 {
			smallest = right
		}
		if smallest == i {
			break
		}
		h.swap(i, smallest)
		i = smallest
	}
	return minKey, minData, nil
}

// Validate reports whether the min-heap invariant currently holds over
// every node: each parent's key must compare less than or equal to both
// of its children's keys.
func (h *Heap) Validate() bool {
	for i := int32(2); i <= h.count; i++ {
		if h.compare(h.keyAt(i/2), h.keyAt(i)) > 0 {
			return false
		}
	}
	return true
}
