package value

import (
	"math"
	"unsafe"
)

// Value is a 32-bit-payload union with three interpretations: signed
// integer, single-precision float, or pointer. It carries no tag; the
// caller alone knows which accessor is valid for a given Value.
//
// The pointer payload lives in its own field rather than sharing bits
// with the int/float payload. Packing a live Go pointer into 32 bits
// would truncate it on a 64-bit target and produce a value the garbage
// collector can no longer see — unsound for exactly the kind of
// pointer-carrying data this module stores in graph vertices. Keeping it
// separate preserves the "no tag, three interpretations" contract without
// that hazard.
type Value struct {
	bits uint32
	ptr  unsafe.Pointer
}

// Size is the byte footprint of a single Value, exposed for callers that
// need to reason about a Value-backed buffer's size in bytes (see
// stack.BufferSize, queue.BufferSize, heap.BufferSize) even though this
// module enforces its buffer contract in units of Value, not bytes.
var Size = int(unsafe.Sizeof(Value{}))

// Int wraps a signed integer as a Value.
func Int(i int32) Value { return Value{bits: uint32(i)} }

// Float wraps a single-precision float as a Value.
func Float(f float32) Value { return Value{bits: math.Float32bits(f)} }

// Ptr wraps a pointer as a Value.
func Ptr(p unsafe.Pointer) Value { return Value{ptr: p} }

// Int returns the Value's integer interpretation.
func (v Value) Int() int32 { return int32(v.bits) }

// Float returns the Value's float interpretation.
func (v Value) Float() float32 { return math.Float32frombits(v.bits) }

// Pointer returns the Value's pointer interpretation.
func (v Value) Pointer() unsafe.Pointer { return v.ptr }
