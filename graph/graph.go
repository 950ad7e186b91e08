package graph

import (
	"encoding/binary"
	"fmt"

	"github.com/arrowgraph/algokit/pool"
	"github.com/arrowgraph/algokit/value"
)

// EdgeMode selects whether a Graph's edges are traversable in one
// direction or both.
type EdgeMode int

const (
	Directed EdgeMode = iota
	Undirected
)

const edgeRecordSize = 12 // destVertex int32, weight int32, next int32

// Graph is a fixed-capacity directed or undirected graph with stable
// int32 vertex ids and a pool-backed adjacency list.
type Graph struct {
	mode           EdgeMode
	vertexCapacity int32
	edgeCapacity   int32

	vertexDegrees        []int32       // -1 marks an unused slot
	vertexData           []value.Value // unused slots carry the free-list link as Int
	validVertexIds       []int32       // first currentVertexCount entries are live
	vertexIdToValidIndex []int32
	vertexEdgesHead      []int32 // -1 or a slot into edgePool
	edgePool             *pool.Pool

	nextFreeVertexId   int32
	currentVertexCount int32
	currentEdgeCount   int32
}

func edgePoolCapacity(edgeCapacity int32, mode EdgeMode) int32 {
	if mode == Undirected {
		return edgeCapacity * 2
	}
	return edgeCapacity
}

// BufferSize reports the arena size the graph's edge pool requires. This
// is the only part of a Graph provisioned from caller-supplied memory;
// vertex-side bookkeeping is allocated internally by Create.
func BufferSize(vertexCapacity, edgeCapacity int32, mode EdgeMode) (int, error) {
	if vertexCapacity < 1 || edgeCapacity < 1 {
		return 0, fmt.Errorf("graph: %w: vertexCapacity and edgeCapacity must be >= 1", value.ErrInvalidArgument)
	}
	return pool.BufferSize(edgeRecordSize, edgePoolCapacity(edgeCapacity, mode))
}

// Create initializes an empty Graph with the given vertex and edge
// capacities and edge mode, using buffer as the edge pool's arena.
func Create(vertexCapacity, edgeCapacity int32, mode EdgeMode, buffer []byte) (*Graph, error) {
	minSize, err := BufferSize(vertexCapacity, edgeCapacity, mode)
	if err != nil {
		return nil, err
	}
	if buffer == nil || len(buffer) < minSize {
		return nil, fmt.Errorf("graph: %w: buffer too small", value.ErrInvalidArgument)
	}
	edgePool, err := pool.Create(edgeRecordSize, edgePoolCapacity(edgeCapacity, mode), buffer)
	if err != nil {
		return nil, err
	}

	g := &Graph{
		mode:                 mode,
		vertexCapacity:       vertexCapacity,
		edgeCapacity:         edgeCapacity,
		vertexDegrees:        make([]int32, vertexCapacity),
		vertexData:           make([]value.Value, vertexCapacity),
		validVertexIds:       make([]int32, vertexCapacity),
		vertexIdToValidIndex: make([]int32, vertexCapacity),
		vertexEdgesHead:      make([]int32, vertexCapacity),
		edgePool:             edgePool,
		nextFreeVertexId:     0,
	}
	for i := int32(0); i < vertexCapacity; i++ {
		g.vertexDegrees[i] = -1
		g.vertexEdgesHead[i] = -1
		next := i + 1
		if next == vertexCapacity {
			next = -1
		}
		g.vertexData[i] = value.Int(next)
	}
	return g, nil
}

// VertexCapacity returns the fixed number of vertex slots the graph was
// created with.
func (g *Graph) VertexCapacity() int32 { return g.vertexCapacity }

// EdgeCapacity returns the fixed logical edge capacity the graph was
// created with.
func (g *Graph) EdgeCapacity() int32 { return g.edgeCapacity }

// Mode returns whether the graph is directed or undirected.
func (g *Graph) Mode() EdgeMode { return g.mode }

// GetCurrentVertexCount returns the number of currently valid vertices.
func (g *Graph) GetCurrentVertexCount() int32 { return g.currentVertexCount }

// GetCurrentEdgeCount returns the number of currently valid logical
// edges (an undirected edge counts once).
func (g *Graph) GetCurrentEdgeCount() int32 { return g.currentEdgeCount }

func (g *Graph) isValidVertex(id int32) bool {
	return id >= 0 && id < g.vertexCapacity && g.vertexDegrees[id] >= 0
}

// IsValidVertex reports whether id currently names a live vertex.
func (g *Graph) IsValidVertex(id int32) bool { return g.isValidVertex(id) }

// AddVertex inserts a new vertex carrying data and returns its id. It
// fails with ErrOperationFailed once the vertex capacity is reached.
func (g *Graph) AddVertex(data value.Value) (int32, error) {
	if g.currentVertexCount == g.vertexCapacity {
		return 0, fmt.Errorf("graph: %w: vertex capacity reached", value.ErrOperationFailed)
	}
	id := g.nextFreeVertexId
	g.nextFreeVertexId = g.vertexData[id].Int()
	g.vertexDegrees[id] = 0
	g.vertexEdgesHead[id] = -1
	g.vertexData[id] = data

	idx := g.currentVertexCount
	g.validVertexIds[idx] = id
	g.vertexIdToValidIndex[id] = idx
	g.currentVertexCount++
	return id, nil
}

// RemoveVertex deletes a vertex and every edge touching it.
func (g *Graph) RemoveVertex(id int32) error {
	if !g.isValidVertex(id) {
		return fmt.Errorf("graph: %w: invalid vertex id", value.ErrInvalidArgument)
	}

	if g.mode == Undirected {
		edge := g.vertexEdgesHead[id]
		for edge != -1 {
			rec, err := g.edgePool.AtSlot(edge)
			if err != nil {
				return err
			}
			dst := readDest(rec)
			next := readNext(rec)

			if _, err := g.unlinkEdge(dst, id); err != nil {
				return err
			}
			if err := g.edgePool.Free(rec); err != nil {
				return err
			}
			g.currentEdgeCount--
			edge = next
		}
	} else {
		edge := g.vertexEdgesHead[id]
		for edge != -1 {
			rec, err := g.edgePool.AtSlot(edge)
			if err != nil {
				return err
			}
			next := readNext(rec)
			if err := g.edgePool.Free(rec); err != nil {
				return err
			}
			g.currentEdgeCount--
			edge = next
		}
		for i := int32(0); i < g.currentVertexCount; i++ {
			v := g.validVertexIds[i]
			if v == id {
				continue
			}
			found, err := g.unlinkEdge(v, id)
			if err != nil {
				return err
			}
			if found {
				g.currentEdgeCount--
			}
		}
	}

	g.vertexData[id] = value.Int(g.nextFreeVertexId)
	g.nextFreeVertexId = id
	g.vertexDegrees[id] = -1
	g.vertexEdgesHead[id] = -1

	removedIdx := g.vertexIdToValidIndex[id]
	lastIdx := g.currentVertexCount - 1
	lastId := g.validVertexIds[lastIdx]
	g.validVertexIds[removedIdx] = lastId
	g.vertexIdToValidIndex[lastId] = removedIdx
	g.currentVertexCount--
	return nil
}

// AddEdge adds an edge from u to v. Adding an edge that already exists is
// a no-op success. Self-edges are rejected with ErrInvalidArgument; pool
// exhaustion is reported as ErrOperationFailed.
func (g *Graph) AddEdge(u, v int32) error {
	if !g.isValidVertex(u) || !g.isValidVertex(v) {
		return fmt.Errorf("graph: %w: invalid vertex id", value.ErrInvalidArgument)
	}
	if u == v {
		return fmt.Errorf("graph: %w: self-edges are not allowed", value.ErrInvalidArgument)
	}
	if _, found, err := g.findEdge(u, v); err != nil {
		return err
	} else if found {
		return nil
	}

	if g.mode == Undirected && g.edgePool.FreeCount() < 2 {
		return fmt.Errorf("graph: %w: edge pool exhausted", value.ErrOperationFailed)
	}

	if err := g.insertEdgeNode(u, v); err != nil {
		return fmt.Errorf("graph: %w: edge pool exhausted", value.ErrOperationFailed)
	}
	if g.mode == Undirected {
		if err := g.insertEdgeNode(v, u); err != nil {
			return fmt.Errorf("graph: %w: edge pool exhausted", value.ErrOperationFailed)
		}
	}
	g.currentEdgeCount++
	return nil
}

// RemoveEdge removes the edge from u to v (and, for undirected graphs,
// the symmetric edge). A missing edge fails with ErrOperationFailed.
func (g *Graph) RemoveEdge(u, v int32) error {
	if !g.isValidVertex(u) || !g.isValidVertex(v) {
		return fmt.Errorf("graph: %w: invalid vertex id", value.ErrInvalidArgument)
	}
	found, err := g.unlinkEdge(u, v)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("graph: %w: edge not found", value.ErrOperationFailed)
	}
	if g.mode == Undirected {
		if _, err := g.unlinkEdge(v, u); err != nil {
			return err
		}
	}
	g.currentEdgeCount--
	return nil
}

// GetVertexDegree returns the out-degree of vertex id.
func (g *Graph) GetVertexDegree(id int32) (int32, error) {
	if !g.isValidVertex(id) {
		return 0, fmt.Errorf("graph: %w: invalid vertex id", value.ErrInvalidArgument)
	}
	return g.vertexDegrees[id], nil
}

// GetVertexEdges writes the destination ids of src's outgoing edges, in
// adjacency-list order, into out. out must have length >= the vertex's
// degree.
func (g *Graph) GetVertexEdges(src int32, out []int32) (int32, error) {
	if !g.isValidVertex(src) {
		return 0, fmt.Errorf("graph: %w: invalid vertex id", value.ErrInvalidArgument)
	}
	degree := g.vertexDegrees[src]
	if int32(len(out)) < degree {
		return 0, fmt.Errorf("graph: %w: out buffer too small", value.ErrInvalidArgument)
	}
	i := int32(0)
	edge := g.vertexEdgesHead[src]
	for edge != -1 {
		rec, err := g.edgePool.AtSlot(edge)
		if err != nil {
			return 0, err
		}
		out[i] = readDest(rec)
		i++
		edge = readNext(rec)
	}
	return degree, nil
}

// VisitEdges calls fn once per outgoing edge of src, in adjacency-list
// order, without allocating. Traversal stops at the first error fn
// returns.
func (g *Graph) VisitEdges(src int32, fn func(dst int32) error) error {
	if !g.isValidVertex(src) {
		return fmt.Errorf("graph: %w: invalid vertex id", value.ErrInvalidArgument)
	}
	edge := g.vertexEdgesHead[src]
	for edge != -1 {
		rec, err := g.edgePool.AtSlot(edge)
		if err != nil {
			return err
		}
		if err := fn(readDest(rec)); err != nil {
			return err
		}
		edge = readNext(rec)
	}
	return nil
}

// ValidVertexIDs calls fn once per currently valid vertex id, in the
// graph's internal (unsorted) order, without allocating.
func (g *Graph) ValidVertexIDs(fn func(id int32) error) error {
	for i := int32(0); i < g.currentVertexCount; i++ {
		if err := fn(g.validVertexIds[i]); err != nil {
			return err
		}
	}
	return nil
}

// FirstEdgeCursor returns the adjacency-list cursor for src's first
// outgoing edge, or -1 if src has none. Combined with EdgeAt, this lets
// callers (dfs.State in particular) snapshot and then step through a
// vertex's edge list one edge at a time, rather than all at once as
// VisitEdges does.
func (g *Graph) FirstEdgeCursor(src int32) (int32, error) {
	if !g.isValidVertex(src) {
		return 0, fmt.Errorf("graph: %w: invalid vertex id", value.ErrInvalidArgument)
	}
	return g.vertexEdgesHead[src], nil
}

// EdgeAt resolves a cursor returned by FirstEdgeCursor or a prior EdgeAt
// call, returning the edge's destination vertex and the cursor for the
// next edge in the same list (-1 if none).
func (g *Graph) EdgeAt(cursor int32) (dest int32, next int32, err error) {
	rec, err := g.edgePool.AtSlot(cursor)
	if err != nil {
		return 0, 0, err
	}
	return readDest(rec), readNext(rec), nil
}

// GetVertexData returns the tagged value stored at vertex id.
func (g *Graph) GetVertexData(id int32) (value.Value, error) {
	if !g.isValidVertex(id) {
		return value.Value{}, fmt.Errorf("graph: %w: invalid vertex id", value.ErrInvalidArgument)
	}
	return g.vertexData[id], nil
}

// SetVertexData overwrites the tagged value stored at vertex id.
func (g *Graph) SetVertexData(id int32, data value.Value) error {
	if !g.isValidVertex(id) {
		return fmt.Errorf("graph: %w: invalid vertex id", value.ErrInvalidArgument)
	}
	g.vertexData[id] = data
	return nil
}

// GetEdgeWeight returns the weight stored on the edge from u to v. The
// weight is carried for callers' use but unused by every algorithm in
// this module.
func (g *Graph) GetEdgeWeight(u, v int32) (int32, error) {
	if !g.isValidVertex(u) || !g.isValidVertex(v) {
		return 0, fmt.Errorf("graph: %w: invalid vertex id", value.ErrInvalidArgument)
	}
	slot, found, err := g.findEdge(u, v)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, fmt.Errorf("graph: %w: edge not found", value.ErrOperationFailed)
	}
	rec, err := g.edgePool.AtSlot(slot)
	if err != nil {
		return 0, err
	}
	return readWeight(rec), nil
}

// SetEdgeWeight overwrites the weight stored on the edge from u to v.
func (g *Graph) SetEdgeWeight(u, v, weight int32) error {
	if !g.isValidVertex(u) || !g.isValidVertex(v) {
		return fmt.Errorf("graph: %w: invalid vertex id", value.ErrInvalidArgument)
	}
	slot, found, err := g.findEdge(u, v)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("graph: %w: edge not found", value.ErrOperationFailed)
	}
	rec, err := g.edgePool.AtSlot(slot)
	if err != nil {
		return err
	}
	writeWeight(rec, weight)
	return nil
}

// Validate performs a full structural audit of the graph's invariants.
func (g *Graph) Validate() error {
	var totalDegree int32
	for i := int32(0); i < g.vertexCapacity; i++ {
		if g.vertexDegrees[i] < -1 {
			return fmt.Errorf("graph: %w: corrupt vertex degree", value.ErrOperationFailed)
		}
		if g.vertexDegrees[i] < 0 {
			continue
		}
		count := int32(0)
		edge := g.vertexEdgesHead[i]
		for edge != -1 {
			rec, err := g.edgePool.AtSlot(edge)
			if err != nil {
				return fmt.Errorf("graph: %w: corrupt adjacency list", value.ErrOperationFailed)
			}
			dst := readDest(rec)
			if !g.isValidVertex(dst) {
				return fmt.Errorf("graph: %w: edge points at invalid vertex", value.ErrOperationFailed)
			}
			count++
			edge = readNext(rec)
		}
		if count != g.vertexDegrees[i] {
			return fmt.Errorf("graph: %w: degree mismatch", value.ErrOperationFailed)
		}
		totalDegree += count
	}

	expectedNodes := g.currentEdgeCount
	if g.mode == Undirected {
		expectedNodes *= 2
	}
	if totalDegree != expectedNodes {
		return fmt.Errorf("graph: %w: edge count mismatch", value.ErrOperationFailed)
	}

	if g.edgePool.Capacity()-g.edgePool.FreeCount() != expectedNodes {
		return fmt.Errorf("graph: %w: pool usage mismatch", value.ErrOperationFailed)
	}

	freeLen := int32(0)
	free := g.nextFreeVertexId
	for free != -1 {
		if free < 0 || free >= g.vertexCapacity {
			return fmt.Errorf("graph: %w: free list index out of range", value.ErrOperationFailed)
		}
		// An acyclic list visits each slot at most once, so a walk longer
		// than vertexCapacity must have looped.
		if freeLen == g.vertexCapacity {
			return fmt.Errorf("graph: %w: free list contains a cycle", value.ErrOperationFailed)
		}
		if g.vertexDegrees[free] != -1 {
			return fmt.Errorf("graph: %w: free list visits a live vertex slot", value.ErrOperationFailed)
		}
		freeLen++
		free = g.vertexData[free].Int()
	}
	if freeLen != g.vertexCapacity-g.currentVertexCount {
		return fmt.Errorf("graph: %w: free list length mismatch", value.ErrOperationFailed)
	}

	for i := int32(0); i < g.currentVertexCount; i++ {
		id := g.validVertexIds[i]
		if !g.isValidVertex(id) || g.vertexIdToValidIndex[id] != i {
			return fmt.Errorf("graph: %w: valid-id index inconsistent", value.ErrOperationFailed)
		}
	}
	return nil
}

// findEdge reports the pool slot of the edge u->v, if any.
func (g *Graph) findEdge(u, v int32) (slot int32, found bool, err error) {
	edge := g.vertexEdgesHead[u]
	for edge != -1 {
		rec, aerr := g.edgePool.AtSlot(edge)
		if aerr != nil {
			return 0, false, aerr
		}
		if readDest(rec) == v {
			return edge, true, nil
		}
		edge = readNext(rec)
	}
	return 0, false, nil
}

// unlinkEdge removes the edge src->dst from src's adjacency list, frees
// its pool node, and decrements src's degree. It does not touch the
// graph's logical edge count, which callers track according to whether
// the removal corresponds to one or two pool nodes.
func (g *Graph) unlinkEdge(src, dst int32) (bool, error) {
	prevSlot := int32(-1)
	edge := g.vertexEdgesHead[src]
	for edge != -1 {
		rec, err := g.edgePool.AtSlot(edge)
		if err != nil {
			return false, err
		}
		next := readNext(rec)
		if readDest(rec) == dst {
			if prevSlot == -1 {
				g.vertexEdgesHead[src] = next
			} else {
				prevRec, err := g.edgePool.AtSlot(prevSlot)
				if err != nil {
					return false, err
				}
				writeNext(prevRec, next)
			}
			if err := g.edgePool.Free(rec); err != nil {
				return false, err
			}
			g.vertexDegrees[src]--
			return true, nil
		}
		prevSlot = edge
		edge = next
	}
	return false, nil
}

func (g *Graph) insertEdgeNode(src, dst int32) error {
	elem, err := g.edgePool.Alloc()
	if err != nil {
		return err
	}
	slot, err := g.edgePool.SlotOf(elem)
	if err != nil {
		return err
	}
	writeDest(elem, dst)
	writeWeight(elem, 0)
	writeNext(elem, g.vertexEdgesHead[src])
	g.vertexEdgesHead[src] = slot
	g.vertexDegrees[src]++
	return nil
}

func readDest(rec []byte) int32   { return int32(binary.LittleEndian.Uint32(rec[0:4])) }
func readWeight(rec []byte) int32 { return int32(binary.LittleEndian.Uint32(rec[4:8])) }
func readNext(rec []byte) int32   { return int32(binary.LittleEndian.Uint32(rec[8:12])) }

func writeDest(rec []byte, v int32)   { binary.LittleEndian.PutUint32(rec[0:4], uint32(v)) }
func writeWeight(rec []byte, v int32) { binary.LittleEndian.PutUint32(rec[4:8], uint32(v)) }
func writeNext(rec []byte, v int32)   { binary.LittleEndian.PutUint32(rec[8:12], uint32(v)) }
