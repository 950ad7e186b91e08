package bfs

import (
	"fmt"

	"github.com/arrowgraph/algokit/graph"
	"github.com/arrowgraph/algokit/queue"
	"github.com/arrowgraph/algokit/value"
)

const wordBits = 64

// State owns everything a single BFS traversal needs: discovered and
// processed bit-sets, the parent tree under construction, and a queue of
// capacity equal to the graph's vertex capacity. A State is single-owner
// and serves one traversal only: it has no reset, so each Run needs a
// fresh State from NewState.
type State struct {
	vertexCapacity int32
	discovered     []uint64
	processed      []uint64
	parent         []int32
	q              *queue.Queue
}

func bitWords(vertexCapacity int32) int32 {
	return (vertexCapacity + wordBits - 1) / wordBits
}

// BufferSize reports the byte footprint NewState(g) will allocate
// internally. It is deterministic — repeated calls for the same graph
// return the same value — but, unlike the bounded containers in this
// module, nothing external is sized from it: graph.Graph's vertex
// capacity is already fixed, so BFS state is always self-sized.
func BufferSize(g *graph.Graph) (int, error) {
	if g == nil {
		return 0, fmt.Errorf("bfs: %w: graph must not be nil", value.ErrInvalidArgument)
	}
	v := g.VertexCapacity()
	words := int(bitWords(v))
	queueSize, err := queue.BufferSize(v)
	if err != nil {
		return 0, err
	}
	return 2*words*8 + int(v)*4 + queueSize*value.Size, nil
}

// NewState allocates traversal state sized for g's vertex capacity, with
// every vertex initially undiscovered and parent -1.
func NewState(g *graph.Graph) (*State, error) {
	if g == nil {
		return nil, fmt.Errorf("bfs: %w: graph must not be nil", value.ErrInvalidArgument)
	}
	v := g.VertexCapacity()
	words := bitWords(v)
	qSize, err := queue.BufferSize(v)
	if err != nil {
		return nil, err
	}
	q, err := queue.Create(v, make([]value.Value, qSize))
	if err != nil {
		return nil, err
	}
	parent := make([]int32, v)
	for i := range parent {
		parent[i] = -1
	}
	return &State{
		vertexCapacity: v,
		discovered:     make([]uint64, words),
		processed:      make([]uint64, words),
		parent:         parent,
		q:              q,
	}, nil
}

func testBit(bits []uint64, i int32) bool {
	return bits[i/wordBits]&(1<<(uint(i)%wordBits)) != 0
}

func setBit(bits []uint64, i int32) {
	bits[i/wordBits] |= 1 << (uint(i) % wordBits)
}

// Parent returns v's predecessor in the BFS tree, or -1 if v is root or
// was never reached.
func (s *State) Parent(v int32) (int32, error) {
	if v < 0 || v >= s.vertexCapacity {
		return 0, fmt.Errorf("bfs: %w: vertex id out of range", value.ErrInvalidArgument)
	}
	return s.parent[v], nil
}

// Discovered reports whether v was reached by the traversal.
func (s *State) Discovered(v int32) bool {
	return v >= 0 && v < s.vertexCapacity && testBit(s.discovered, v)
}

// Run performs a breadth-first traversal of g starting at root, invoking
// cb's callbacks as described in package bfs's documentation. st must
// have been obtained from NewState(g) and not yet used for a traversal.
func Run(g *graph.Graph, root int32, st *State, cb Callbacks) error {
	if g == nil || st == nil {
		return fmt.Errorf("bfs: %w: graph and state must not be nil", value.ErrInvalidArgument)
	}
	if !g.IsValidVertex(root) {
		return fmt.Errorf("bfs: %w: root is not a valid vertex", value.ErrInvalidArgument)
	}
	directed := g.Mode() == graph.Directed

	if err := st.q.Insert(value.Int(root)); err != nil {
		return err
	}
	setBit(st.discovered, root)

	for st.q.CurrentSize() > 0 {
		item, err := st.q.Remove()
		if err != nil {
			return err
		}
		v0 := item.Int()
		cb.vertexEarly(v0)
		setBit(st.processed, v0)

		err = g.VisitEdges(v0, func(v1 int32) error {
			if directed || !testBit(st.processed, v1) {
				cb.edge(v0, v1)
			}
			if !testBit(st.discovered, v1) {
				setBit(st.discovered, v1)
				if err := st.q.Insert(value.Int(v1)); err != nil {
					return err
				}
				st.parent[v1] = v0
			}
			return nil
		})
		if err != nil {
			return err
		}
		cb.vertexLate(v0)
	}
	return nil
}
