package core

// Builder accumulates edges into temporary per-node adjacency buffers and
// converts them into the three-array CSR layout. It is a construction-time
// structure only: the buffers are released once Build has flattened them.
//
// Growth is explicit doubling, so appends are amortized O(1) and the
// high-water memory stays proportional to the edge count rather than to
// a dense nodeCount x nodeCount matrix.
type Builder struct {
	buffers   [][]int32
	edgeCount int
}

// initialNeighborCap is the starting capacity of a node's adjacency buffer.
const initialNeighborCap = 10

// NewBuilder creates a builder for a graph with the given node count.
// Node IDs must lie in [0, nodeCount).
func NewBuilder(nodeCount int) *Builder {
	return &Builder{
		buffers: make([][]int32, nodeCount),
	}
}

// AddEdge appends one directed edge origin -> dest. Destinations keep their
// insertion order; parallel edges are kept as-is (no dedup).
func (b *Builder) AddEdge(origin, dest int32) {
	buf := b.buffers[origin]
	if len(buf) == cap(buf) {
		newCap := cap(buf) * 2
		if newCap == 0 {
			newCap = initialNeighborCap
		}
		grown := make([]int32, len(buf), newCap)
		copy(grown, buf)
		buf = grown
	}
	b.buffers[origin] = append(buf, dest)
	b.edgeCount++
}

// NodeCount returns the number of nodes the builder was sized for.
func (b *Builder) NodeCount() int {
	return len(b.buffers)
}

// EdgeCount returns the number of edges added so far.
func (b *Builder) EdgeCount() int {
	return b.edgeCount
}

// Build flattens the adjacency buffers into a CSR graph.
//
// rowOffsets is a prefix sum over the per-node counts; columnIndices and
// edgeValues are filled with a single pass in node order, so the result is
// deterministic for a given insertion sequence. Edge values are always 1
// (unweighted graph, kept for forward compatibility with weighted variants).
// The builder's buffers are released and the builder must not be reused.
func (b *Builder) Build() *CSR {
	nodeCount := len(b.buffers)

	g := &CSR{
		nodeCount:     nodeCount,
		edgeCount:     b.edgeCount,
		rowOffsets:    make([]int32, nodeCount+1),
		columnIndices: make([]int32, b.edgeCount),
		edgeValues:    make([]int32, b.edgeCount),
		directed:      true,
	}

	for i, buf := range b.buffers {
		g.rowOffsets[i+1] = g.rowOffsets[i] + int32(len(buf))
	}

	idx := 0
	for _, buf := range b.buffers {
		for _, dest := range buf {
			g.columnIndices[idx] = dest
			g.edgeValues[idx] = 1
			idx++
		}
	}

	// Drop the temporary buffers; only the CSR arrays survive.
	b.buffers = nil

	g.degreeIndex = newDegreeIndex(g)
	return g
}
