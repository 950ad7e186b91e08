package pool

import (
	"encoding/binary"
	"fmt"
	"unsafe"

	"github.com/arrowgraph/algokit/value"
)

const freeListTerminator = -1

// Pool is a fixed-size block allocator over a single contiguous arena.
// All blocks are the same size; allocation and freeing are O(1).
type Pool struct {
	arena        []byte
	elementSize  int32
	elementCount int32
	headIndex    int32 // -1 when every block is in use
	freeCount    int32
}

// BufferSize computes the exact number of arena bytes a Pool with the
// given element size and count requires. elementSize must be at least 4
// (enough to hold the free-list link stored in every free block);
// elementCount must be at least 1.
func BufferSize(elementSize, elementCount int32) (int, error) {
	if elementSize < 4 || elementCount < 1 {
		return 0, fmt.Errorf("pool: %w: elementSize must be >= 4 and elementCount >= 1", value.ErrInvalidArgument)
	}
	return int(elementSize) * int(elementCount), nil
}

// Create initializes a Pool over buffer, which must be at least
// BufferSize(elementSize, elementCount) bytes long. All blocks start free,
// threaded in order: allocating repeatedly from a freshly created Pool
// returns blocks 0, 1, 2, ... until the arena is exhausted.
func Create(elementSize, elementCount int32, buffer []byte) (*Pool, error) {
	minSize, err := BufferSize(elementSize, elementCount)
	if err != nil {
		return nil, err
	}
	if buffer == nil || len(buffer) < minSize {
		return nil, fmt.Errorf("pool: %w: buffer too small", value.ErrInvalidArgument)
	}

	p := &Pool{
		arena:        buffer[:minSize],
		elementSize:  elementSize,
		elementCount: elementCount,
		headIndex:    0,
		freeCount:    elementCount,
	}
	for i := int32(0); i < elementCount; i++ {
		next := i + 1
		if next == elementCount {
			next = freeListTerminator
		}
		binary.LittleEndian.PutUint32(p.blockAt(i)[:4], uint32(next))
	}
	return p, nil
}

// ElementSize returns the fixed size, in bytes, of every block in the pool.
func (p *Pool) ElementSize() int32 { return p.elementSize }

// Capacity returns the total number of blocks the pool was created with.
func (p *Pool) Capacity() int32 { return p.elementCount }

// Alloc returns the block at the current free-list head and advances the
// head to the next free block. It fails with ErrOperationFailed once every
// block is in use.
func (p *Pool) Alloc() ([]byte, error) {
	if p.headIndex == freeListTerminator {
		return nil, fmt.Errorf("pool: %w: arena exhausted", value.ErrOperationFailed)
	}
	elem := p.blockAt(p.headIndex)
	p.headIndex = int32(binary.LittleEndian.Uint32(elem[:4]))
	p.freeCount--
	return elem, nil
}

// FreeCount returns the number of blocks currently available to Alloc.
func (p *Pool) FreeCount() int32 { return p.freeCount }

// Free returns a block previously obtained from Alloc to the pool. Freeing
// a nil slice is a no-op success. Freeing a slice that does not lie within
// this pool's arena, or is not aligned to an element boundary, or is not
// exactly one element long, returns ErrInvalidArgument. There is no
// double-free detection: callers must not free the same block twice.
func (p *Pool) Free(elem []byte) error {
	if elem == nil {
		return nil
	}
	slot, err := p.SlotOf(elem)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(elem[:4], uint32(p.headIndex))
	p.headIndex = slot
	p.freeCount++
	return nil
}

// SlotOf returns the index of elem within this pool's arena. elem must be
// a slice previously returned by Alloc or AtSlot on this pool.
func (p *Pool) SlotOf(elem []byte) (int32, error) {
	if len(elem) != int(p.elementSize) || len(p.arena) == 0 {
		return 0, fmt.Errorf("pool: %w: foreign block", value.ErrInvalidArgument)
	}
	base := uintptr(unsafe.Pointer(&p.arena[0]))
	ptr := uintptr(unsafe.Pointer(&elem[0]))
	if ptr < base || ptr >= base+uintptr(len(p.arena)) {
		return 0, fmt.Errorf("pool: %w: block outside arena", value.ErrInvalidArgument)
	}
	offset := ptr - base
	if offset%uintptr(p.elementSize) != 0 {
		return 0, fmt.Errorf("pool: %w: block misaligned", value.ErrInvalidArgument)
	}
	return int32(offset / uintptr(p.elementSize)), nil
}

// AtSlot returns the block stored at the given slot index.
func (p *Pool) AtSlot(slot int32) ([]byte, error) {
	if slot < 0 || slot >= p.elementCount {
		return nil, fmt.Errorf("pool: %w: slot out of range", value.ErrInvalidArgument)
	}
	return p.blockAt(slot), nil
}

func (p *Pool) blockAt(slot int32) []byte {
	off := int(slot) * int(p.elementSize)
	return p.arena[off : off+int(p.elementSize)]
}
