package bfs_test

import (
	"testing"

	"github.com/arrowgraph/algokit/bfs"
	"github.com/arrowgraph/algokit/graph"
	"github.com/arrowgraph/algokit/value"
)

// BenchmarkRun_Chain measures BFS over a linear chain of N vertices.
func BenchmarkRun_Chain(b *testing.B) {
	const n = 10000
	size, _ := graph.BufferSize(n, n, graph.Undirected)
	g, _ := graph.Create(n, n, graph.Undirected, make([]byte, size))
	ids := make([]int32, n)
	for i := range ids {
		ids[i], _ = g.AddVertex(value.Int(int32(i)))
	}
	for i := 0; i < n-1; i++ {
		_ = g.AddEdge(ids[i], ids[i+1])
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		st, _ := bfs.NewState(g)
		_ = bfs.Run(g, ids[0], st, bfs.Callbacks{})
	}
}
