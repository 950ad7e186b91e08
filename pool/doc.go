// Package pool implements a fixed-size block allocator with O(1) Alloc
// and Free over a single caller-supplied byte arena.
//
// A Pool never grows and never shrinks: it is created once over an arena
// sized by BufferSize, and every block it hands out via Alloc is returned
// to the same arena via Free. Free blocks are threaded into an intrusive
// singly-linked free list stored in the first four bytes of each free
// block, encoded and decoded with encoding/binary rather than raw pointer
// casts. This is sound in Go because a Pool's elements are opaque
// fixed-size byte records (used by graph.Graph to store adjacency-list
// nodes); nothing stored in the arena is ever a live Go pointer the
// garbage collector would need to trace.
//
// graph.Graph additionally uses SlotOf/AtSlot to address pool elements by
// a compact int32 index rather than by slice header, so that adjacency
// lists can store "next" links and list heads as plain int32 fields
// instead of Go-level pointers.
package pool
