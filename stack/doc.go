// Package stack implements a bounded LIFO container of value.Value.
//
// A Stack never grows: BufferSize reports how many value.Value slots a
// given capacity needs, and Create carves the stack's state out of a
// caller-supplied []value.Value slice. The slice is typed rather than a
// raw byte arena, unlike pool.Pool, because a value.Value may carry a
// live unsafe.Pointer — the garbage collector only traces pointer-typed
// memory, so the backing storage for Value elements must stay
// []value.Value all the way down to the caller-owned buffer.
package stack
