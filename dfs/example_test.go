package dfs_test

import (
	"fmt"

	"github.com/arrowgraph/algokit/dfs"
	"github.com/arrowgraph/algokit/graph"
	"github.com/arrowgraph/algokit/value"
)

// ExampleTopologicalSort orders a small directed acyclic graph of build
// steps so that every dependency precedes its dependents.
func ExampleTopologicalSort() {
	const n = 4
	size, _ := graph.BufferSize(n, n, graph.Directed)
	g, _ := graph.Create(n, n, graph.Directed, make([]byte, size))

	compile, _ := g.AddVertex(value.Int(0))
	link, _ := g.AddVertex(value.Int(0))
	test, _ := g.AddVertex(value.Int(0))
	pkg, _ := g.AddVertex(value.Int(0))
	_ = g.AddEdge(compile, link)
	_ = g.AddEdge(link, test)
	_ = g.AddEdge(link, pkg)
	_ = g.AddEdge(test, pkg)

	out := make([]int32, g.GetCurrentVertexCount())
	if err := dfs.TopologicalSort(g, out); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(out)
	// Output:
	// [0 1 2 3]
}
