// Package bfs provides breadth-first traversal over a graph.Graph,
// producing a shortest-path tree (in edge count) from a root vertex.
//
// What
//
//   - Explores vertices in non-decreasing distance from a root vertex.
//   - Builds a parent tree: Parent(v) is v's predecessor on the shortest
//     path from root, or -1 for root itself and for unreached vertices.
//   - Delivers three optional callbacks: VertexEarly (on dequeue, before
//     edge exploration), Edge (per outgoing edge explored, except, in an
//     undirected graph, an edge back to an already-processed vertex),
//     VertexLate (after every outgoing edge has been explored).
//
// Why
//
//   - Computes unweighted shortest paths and reachability in O(V + E).
//   - Complements package dfs, on which this module's topological sort
//     and cycle detection are built.
//
// Determinism
//
//	Edges are explored in the graph's adjacency-list order (most recently
//	added edge first, since AddEdge inserts at the list head), so two runs
//	over the same graph produce the same visit order and parent tree.
//
// Complexity
//
//	Time O(V + E), memory O(V) for the traversal state (bit-sets, parent
//	array, and a queue of capacity V), all allocated once by NewState.
package bfs
