// Package heap implements a bounded binary min-heap of (key, data) nodes,
// ordered by a caller-supplied value.Comparator applied to the key.
//
// The heap uses 1-based array indexing internally (node 0, the first two
// slots of the backing slice, is unused) so that a node at index i has
// children at 2i and 2i+1 and parent at i/2; each node occupies two
// consecutive value.Value slots (key then data). As with stack and queue, the backing storage is a
// typed []value.Value slice rather than a raw byte arena, for the same
// GC-soundness reason.
package heap
