package bfs

// Callbacks delivers traversal events to the caller. Every field is
// optional; a nil field is simply not called.
type Callbacks struct {
	// VertexEarly fires once per vertex, when it is dequeued and before
	// its outgoing edges are explored.
	VertexEarly func(v int32)

	// Edge fires once per outgoing edge v0→v1 explored, except edges
	// back to an already-processed neighbor in an undirected graph
	// (processed[v0] is set before edges are explored, so the symmetric
	// edge back to a finished neighbor is not reported twice).
	Edge func(v0, v1 int32)

	// VertexLate fires once per vertex, after every outgoing edge has
	// been explored.
	VertexLate func(v int32)
}

func (c Callbacks) vertexEarly(v int32) {
	if c.VertexEarly != nil {
		c.VertexEarly(v)
	}
}

func (c Callbacks) edge(v0, v1 int32) {
	if c.Edge != nil {
		c.Edge(v0, v1)
	}
}

func (c Callbacks) vertexLate(v int32) {
	if c.VertexLate != nil {
		c.VertexLate(v)
	}
}
