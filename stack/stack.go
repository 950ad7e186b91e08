package stack

import (
	"fmt"

	"github.com/arrowgraph/algokit/value"
)

// Stack is a fixed-capacity LIFO of value.Value.
type Stack struct {
	buf   []value.Value
	count int32
}

// BufferSize reports the number of value.Value slots a Stack of the given
// capacity requires.
func BufferSize(capacity int32) (int, error) {
	if capacity < 1 {
		return 0, fmt.Errorf("stack: %w: capacity must be >= 1", value.ErrInvalidArgument)
	}
	return int(capacity), nil
}

// Create initializes an empty Stack of the given capacity over buffer,
// which must contain at least BufferSize(capacity) elements.
func Create(capacity int32, buffer []value.Value) (*Stack, error) {
	minSize, err := BufferSize(capacity)
	if err != nil {
		return nil, err
	}
	if buffer == nil || len(buffer) < minSize {
		return nil, fmt.Errorf("stack: %w: buffer too small", value.ErrInvalidArgument)
	}
	return &Stack{buf: buffer[:minSize]}, nil
}

// Capacity returns the maximum number of elements the stack can hold.
func (s *Stack) Capacity() int32 { return int32(len(s.buf)) }

// CurrentSize returns the number of elements currently on the stack.
func (s *Stack) CurrentSize() int32 { return s.count }

// Push places v on top of the stack. It fails with ErrOperationFailed if
// the stack is at capacity.
func (s *Stack) Push(v value.Value) error {
	if s.count == int32(len(s.buf)) {
		return fmt.Errorf("stack: %w: stack is full", value.ErrOperationFailed)
	}
	s.buf[s.count] = v
	s.count++
	return nil
}

// Pop removes and returns the value on top of the stack. It fails with
// ErrOperationFailed if the stack is empty.
func (s *Stack) Pop() (value.Value, error) {
	if s.count == 0 {
		return value.Value{}, fmt.Errorf("stack: %w: stack is empty", value.ErrOperationFailed)
	}
	s.count--
	v := s.buf[s.count]
	s.buf[s.count] = value.Value{}
	return v, nil
}
