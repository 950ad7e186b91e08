package dfs

// Callbacks delivers traversal events to the caller. Every field is
// optional; a nil field is simply not called.
type Callbacks struct {
	// VertexEarly fires once per vertex, the first time it is discovered.
	VertexEarly func(v int32)

	// Edge fires once per directed edge traversal: once for every tree
	// edge, and once for every back/forward/cross edge, except — for
	// undirected graphs — the edge leading straight back to a vertex's
	// own parent and any edge to an already-processed vertex, which are
	// never reported (so each undirected edge is reported once).
	Edge func(v0, v1 int32)

	// VertexLate fires once per vertex, once its adjacency cursor has
	// been fully consumed.
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

// EdgeKind classifies an edge encountered during a depth-first traversal,
// derivable from entry/exit timestamps and the parent tree.
type EdgeKind int

const (
	// TreeEdge leads to a vertex discovered through this very edge.
	TreeEdge EdgeKind = iota
	// BackEdge leads to an active ancestor — the indicator of a cycle.
	BackEdge
	// ForwardEdge leads to an already-finished descendant.
	ForwardEdge
	// CrossEdge leads to an already-finished vertex that is neither an
	// ancestor nor a descendant.
	CrossEdge
)

func (k EdgeKind) String() string {
	switch k {
	case TreeEdge:
		return "tree"
	case BackEdge:
		return "back"
	case ForwardEdge:
		return "forward"
	case CrossEdge:
		return "cross"
	default:
		return "unknown"
	}
}
