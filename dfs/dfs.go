package dfs

import (
	"fmt"

	"github.com/arrowgraph/algokit/graph"
	"github.com/arrowgraph/algokit/stack"
	"github.com/arrowgraph/algokit/value"
)

const wordBits = 64

// State owns everything a single depth-first traversal needs: discovered
// and processed bit-sets, the parent tree and entry/exit timestamps
// under construction, a per-vertex adjacency cursor snapshotted from the
// graph at creation time, and a stack of capacity equal to the graph's
// vertex capacity. A State may drive several DFS trees in sequence (as
// TopologicalSort does, one per unprocessed vertex) but mutating the
// graph between state creation and traversal completion is undefined.
type State struct {
	vertexCapacity int32
	discovered     []uint64
	processed      []uint64
	parent         []int32
	entryTime      []int32
	exitTime       []int32
	nextEdge       []int32
	s              *stack.Stack
	currentTime    int32
}

func bitWords(vertexCapacity int32) int32 {
	return (vertexCapacity + wordBits - 1) / wordBits
}

// BufferSize reports the byte footprint NewState(g) will allocate
// internally. Deterministic, as every BufferSize in this module is, but
// — like bfs.BufferSize — nothing external is sized from it, since a
// graph.Graph's vertex capacity is already fixed.
func BufferSize(g *graph.Graph) (int, error) {
	if g == nil {
		return 0, fmt.Errorf("dfs: %w: graph must not be nil", value.ErrInvalidArgument)
	}
	v := g.VertexCapacity()
	words := int(bitWords(v))
	stackSize, err := stack.BufferSize(v)
	if err != nil {
		return 0, err
	}
	return 2*words*8 + int(v)*4*4 + stackSize*value.Size, nil
}

// NewState allocates traversal state sized for g's vertex capacity and
// snapshots every valid vertex's adjacency-list cursor.
func NewState(g *graph.Graph) (*State, error) {
	if g == nil {
		return nil, fmt.Errorf("dfs: %w: graph must not be nil", value.ErrInvalidArgument)
	}
	v := g.VertexCapacity()
	words := bitWords(v)
	sSize, err := stack.BufferSize(v)
	if err != nil {
		return nil, err
	}
	s, err := stack.Create(v, make([]value.Value, sSize))
	if err != nil {
		return nil, err
	}

	parent := make([]int32, v)
	nextEdge := make([]int32, v)
	for i := int32(0); i < v; i++ {
		parent[i] = -1
		if g.IsValidVertex(i) {
			cursor, err := g.FirstEdgeCursor(i)
			if err != nil {
				return nil, err
			}
			nextEdge[i] = cursor
		} else {
			nextEdge[i] = -1
		}
	}

	return &State{
		vertexCapacity: v,
		discovered:     make([]uint64, words),
		processed:      make([]uint64, words),
		parent:         parent,
		entryTime:      make([]int32, v),
		exitTime:       make([]int32, v),
		nextEdge:       nextEdge,
		s:              s,
	}, nil
}

func testBit(bits []uint64, i int32) bool {
	return bits[i/wordBits]&(1<<(uint(i)%wordBits)) != 0
}

func setBit(bits []uint64, i int32) {
	bits[i/wordBits] |= 1 << (uint(i) % wordBits)
}

// Discovered reports whether v has been reached by the traversal.
func (s *State) Discovered(v int32) bool {
	return v >= 0 && v < s.vertexCapacity && testBit(s.discovered, v)
}

// Processed reports whether v's adjacency list has been fully explored.
func (s *State) Processed(v int32) bool {
	return v >= 0 && v < s.vertexCapacity && testBit(s.processed, v)
}

// Parent returns v's predecessor in the DFS tree, or -1 if v is a tree
// root or was never reached.
func (s *State) Parent(v int32) (int32, error) {
	if v < 0 || v >= s.vertexCapacity {
		return 0, fmt.Errorf("dfs: %w: vertex id out of range", value.ErrInvalidArgument)
	}
	return s.parent[v], nil
}

// EntryTime and ExitTime return v's discovery and finish timestamps.
// Both are 0 for a vertex never reached.
func (s *State) EntryTime(v int32) (int32, error) {
	if v < 0 || v >= s.vertexCapacity {
		return 0, fmt.Errorf("dfs: %w: vertex id out of range", value.ErrInvalidArgument)
	}
	return s.entryTime[v], nil
}

func (s *State) ExitTime(v int32) (int32, error) {
	if v < 0 || v >= s.vertexCapacity {
		return 0, fmt.Errorf("dfs: %w: vertex id out of range", value.ErrInvalidArgument)
	}
	return s.exitTime[v], nil
}

// Classify reports the kind of the edge v0->v1, given this State's
// current timestamps, parent tree, and discovered/processed status. It
// is meaningful only when called from within (or after) a traversal
// that has visited the edge in question — typically from the Edge
// callback itself.
func (s *State) Classify(v0, v1 int32) (EdgeKind, error) {
	if v0 < 0 || v0 >= s.vertexCapacity || v1 < 0 || v1 >= s.vertexCapacity {
		return 0, fmt.Errorf("dfs: %w: vertex id out of range", value.ErrInvalidArgument)
	}
	if s.parent[v1] == v0 {
		return TreeEdge, nil
	}
	if s.Discovered(v1) && !s.Processed(v1) {
		return BackEdge, nil
	}
	if s.entryTime[v1] > s.entryTime[v0] {
		return ForwardEdge, nil
	}
	return CrossEdge, nil
}

// Run performs a depth-first traversal of g starting at root, invoking
// cb's callbacks as described in package dfs's documentation. st must
// have been obtained from NewState(g); root must not already be
// processed. Run may be called more than once on the same State with
// different unprocessed roots to cover a graph's every component, as
// TopologicalSort does.
func Run(g *graph.Graph, root int32, st *State, cb Callbacks) error {
	if g == nil || st == nil {
		return fmt.Errorf("dfs: %w: graph and state must not be nil", value.ErrInvalidArgument)
	}
	if !g.IsValidVertex(root) {
		return fmt.Errorf("dfs: %w: root is not a valid vertex", value.ErrInvalidArgument)
	}
	if st.Processed(root) {
		return fmt.Errorf("dfs: %w: root has already been processed by this state", value.ErrInvalidArgument)
	}
	directed := g.Mode() == graph.Directed

	if err := st.s.Push(value.Int(root)); err != nil {
		return err
	}

	for st.s.CurrentSize() > 0 {
		item, err := st.s.Pop()
		if err != nil {
			return err
		}
		v0 := item.Int()

		if !st.Discovered(v0) {
			setBit(st.discovered, v0)
			st.currentTime++
			st.entryTime[v0] = st.currentTime
			cb.vertexEarly(v0)
		}

		if st.nextEdge[v0] != -1 {
			cursor := st.nextEdge[v0]
			dest, next, err := g.EdgeAt(cursor)
			if err != nil {
				return err
			}
			st.nextEdge[v0] = next

			if err := st.s.Push(value.Int(v0)); err != nil {
				return err
			}
			v1 := dest
			if !st.Discovered(v1) {
				st.parent[v1] = v0
				cb.edge(v0, v1)
				if err := st.s.Push(value.Int(v1)); err != nil {
					return err
				}
			} else if (!st.Processed(v1) && st.parent[v0] != v1) || directed {
				cb.edge(v0, v1)
			}
		} else {
			cb.vertexLate(v0)
			st.currentTime++
			st.exitTime[v0] = st.currentTime
			setBit(st.processed, v0)
		}
	}
	return nil
}
