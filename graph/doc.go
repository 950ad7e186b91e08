// Package graph implements a fixed-capacity directed or undirected graph
// with stable int32 vertex ids and a pool-backed adjacency list.
//
// A Graph is created once over a vertex and edge capacity fixed for its
// lifetime. Vertex bookkeeping (degrees, user data, the valid-id list and
// its reverse index, adjacency-list heads) is ordinary Go-allocated
// memory, carved out internally by Create; the adjacency-list nodes
// themselves live in a pool.Pool sized by BufferSize and passed in by the
// caller as a byte arena — this is the one part of a Graph an external
// caller provisions and could relocate. Undirected graphs store both
// directions of every logical edge, so their edge pool holds twice the
// requested edge capacity.
package graph
