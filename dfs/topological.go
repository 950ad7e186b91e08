package dfs

import (
	"fmt"

	"github.com/arrowgraph/algokit/graph"
	"github.com/arrowgraph/algokit/value"
)

// TopologicalSort computes a linear ordering of every valid vertex in g
// such that for every edge u->v, u precedes v. It applies only to
// directed graphs: calling it on an undirected graph fails with
// ErrOperationFailed. out must have length at least
// g.GetCurrentVertexCount(); on success, out[:g.GetCurrentVertexCount()]
// holds the ordering. If g contains a cycle, TopologicalSort returns
// ErrOperationFailed and leaves out's contents undefined, rather than
// panicking on the back edge.
func TopologicalSort(g *graph.Graph, out []int32) error {
	if g == nil {
		return fmt.Errorf("dfs: %w: graph must not be nil", value.ErrInvalidArgument)
	}
	if g.Mode() != graph.Directed {
		return fmt.Errorf("dfs: %w: topological sort requires a directed graph", value.ErrOperationFailed)
	}
	n := g.GetCurrentVertexCount()
	if int32(len(out)) < n {
		return fmt.Errorf("dfs: %w: out buffer too small", value.ErrInvalidArgument)
	}

	st, err := NewState(g)
	if err != nil {
		return err
	}

	nextFreeIndex := n - 1
	cycleDetected := false
	cb := Callbacks{
		Edge: func(v0, v1 int32) {
			kind, err := st.Classify(v0, v1)
			if err == nil && kind == BackEdge {
				cycleDetected = true
			}
		},
		VertexLate: func(v int32) {
			out[nextFreeIndex] = v
			nextFreeIndex--
		},
	}

	visitErr := g.ValidVertexIDs(func(v int32) error {
		if st.Processed(v) {
			return nil
		}
		return Run(g, v, st, cb)
	})
	if visitErr != nil {
		return visitErr
	}
	if cycleDetected {
		return fmt.Errorf("dfs: %w: cycle detected", value.ErrOperationFailed)
	}
	return nil
}
