package core

// CSR is a directed graph stored in Compressed Sparse Row form.
//
// Three parallel arrays hold the whole structure:
//   - rowOffsets, length nodeCount+1: rowOffsets[i] is the start index into
//     columnIndices of node i's outgoing edges, so the out-degree of i is
//     rowOffsets[i+1]-rowOffsets[i]. Monotonically non-decreasing,
//     rowOffsets[0] == 0, rowOffsets[nodeCount] == edgeCount.
//   - columnIndices, length edgeCount: destination node IDs, in the order
//     edges were inserted.
//   - edgeValues, length edgeCount: always 1 for this unweighted engine.
//
// A CSR is immutable once built, so a single instance can be shared by any
// number of concurrent readers without locking. Node IDs are int32: graphs
// with millions of nodes fit comfortably and the edge array takes half the
// memory of an int64 layout.
type CSR struct {
	nodeCount int
	edgeCount int

	rowOffsets    []int32
	columnIndices []int32
	edgeValues    []int32

	directed bool

	degreeIndex *degreeIndex
}

// compile-time check: CSR satisfies the Graph contract.
var _ Graph = (*CSR)(nil)

// NodeCount returns the total number of nodes.
func (g *CSR) NodeCount() int { return g.nodeCount }

// EdgeCount returns the total number of directed edges.
func (g *CSR) EdgeCount() int { return g.edgeCount }

// IsDirected reports whether the graph is directed. Always true: no reverse
// or undirected adjacency is stored or derived.
func (g *CSR) IsDirected() bool { return g.directed }

// inRange reports whether node is a valid ID.
func (g *CSR) inRange(node int32) bool {
	return node >= 0 && int(node) < g.nodeCount
}

// row returns node i's slice of the column-index array. Internal callers
// must not mutate it.
func (g *CSR) row(node int32) []int32 {
	return g.columnIndices[g.rowOffsets[node]:g.rowOffsets[node+1]]
}

// OutDegree returns the number of outgoing edges of node.
// Out-of-range nodes yield 0; degree queries are total functions.
func (g *CSR) OutDegree(node int32) int {
	if !g.inRange(node) {
		return 0
	}
	return int(g.rowOffsets[node+1] - g.rowOffsets[node])
}

// InDegree counts occurrences of node in the edge array.
//
// No reverse adjacency is maintained, so this is O(EdgeCount) per call.
// Out-of-range nodes yield 0.
func (g *CSR) InDegree(node int32) int {
	if !g.inRange(node) {
		return 0
	}
	count := 0
	for _, dest := range g.columnIndices {
		if dest == node {
			count++
		}
	}
	return count
}

// Neighbors returns a caller-owned copy of node's outgoing destinations in
// edge insertion order. The result is empty (not an error) when node is out
// of range or has no outgoing edges.
func (g *CSR) Neighbors(node int32) []int32 {
	if !g.inRange(node) {
		return []int32{}
	}
	row := g.row(node)
	out := make([]int32, len(row))
	copy(out, row)
	return out
}

// MaxDegreeNode scans all nodes and returns the first one achieving the
// running maximum out-degree. The scan is ascending and the comparison is
// strict, so ties resolve to the lowest node ID. Returns (-1, 0) when the
// graph has no nodes.
func (g *CSR) MaxDegreeNode() (int32, int) {
	maxNode := int32(-1)
	maxDegree := 0
	for i := 0; i < g.nodeCount; i++ {
		if d := g.OutDegree(int32(i)); d > maxDegree {
			maxDegree = d
			maxNode = int32(i)
		}
	}
	return maxNode, maxDegree
}
