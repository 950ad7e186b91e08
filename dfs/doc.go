// Package dfs provides iterative depth-first traversal over a
// graph.Graph, vertex entry/exit timestamps, edge classification, and
// topological sort.
//
// What
//
//   - Traverses a graph iteratively (an explicit stack, not recursion),
//     assigning each vertex a discovery and a finish time.
//   - Delivers three optional callbacks: VertexEarly (on first discovery),
//     Edge (once per traversed edge), VertexLate (once the vertex's
//     adjacency list is exhausted).
//   - Classifies edges as tree, back, forward, or cross, using entry/exit
//     timestamps and the parent tree — the same classification
//     TopologicalSort uses to detect cycles.
//
// Why
//
//   - Entry/exit timestamps and edge classification are the basis for
//     cycle detection and topological ordering over directed graphs.
//
// Determinism
//
//	Each vertex's adjacency list is walked in list order (most recently
//	added edge first), so two runs over the same graph produce the same
//	timestamps and the same topological order.
//
// Complexity
//
//	Time O(V + E), memory O(V) for the traversal state (bit-sets,
//	parent/entry/exit arrays, a per-vertex adjacency cursor, and a stack
//	of capacity V), all allocated once by NewState.
package dfs
