// Package algokit collects a small set of foundational, allocation-bounded
// data structures and graph algorithms over caller-provisioned memory.
//
// Every container in this module follows the same two-phase construction
// protocol: a BufferSize query that deterministically reports how much
// memory a given configuration needs, followed by a Create call that
// carves its internal state out of caller-supplied storage. Nothing here
// allocates again after construction, nothing performs I/O, and nothing
// synchronizes internally — callers own exclusive access to an object for
// the duration of any mutating call.
//
// Subpackages, in dependency order:
//
//	value/  — the tagged element type (int / float / pointer) and the two
//	          sentinel errors shared by every other package
//	pool/   — O(1) alloc/free over a fixed-size block arena
//	stack/  — bounded LIFO of value.Value
//	queue/  — bounded FIFO (ring buffer) of value.Value
//	heap/   — bounded binary min-heap keyed by a value.Comparator
//	graph/  — directed/undirected graph with a pool-backed adjacency list
//	bfs/    — breadth-first traversal and shortest-path tree over a graph
//	dfs/    — depth-first traversal, entry/exit timestamps, topological sort
//
// See DESIGN.md for the rationale behind each package's design.
package algokit
