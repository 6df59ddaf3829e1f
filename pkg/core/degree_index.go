package core

import "github.com/tidwall/btree"

// DegreeItem associates a node with its out-degree inside the degree index.
type DegreeItem struct {
	Degree int32
	Node   int32
}

// degreeItemLess orders items by out-degree, with the node ID as tie-breaker
// to keep items distinct in the tree.
func degreeItemLess(a, b DegreeItem) bool {
	if a.Degree != b.Degree {
		return a.Degree < b.Degree
	}
	return a.Node > b.Node
}

// degreeIndex is a B-Tree over (outDegree, node), built once at construction.
// It serves repeated hub queries (TopDegree) without rescanning all nodes.
// MaxDegreeNode does not consult it; that operation stays a linear scan with
// the lowest-ID tie-break.
type degreeIndex struct {
	tree *btree.BTreeG[DegreeItem]
}

func newDegreeIndex(g *CSR) *degreeIndex {
	tree := btree.NewBTreeG[DegreeItem](degreeItemLess)
	for i := 0; i < g.nodeCount; i++ {
		tree.Set(DegreeItem{Degree: int32(g.OutDegree(int32(i))), Node: int32(i)})
	}
	return &degreeIndex{tree: tree}
}

// TopDegree returns up to k nodes with the highest out-degree, ordered by
// degree descending and node ID ascending within equal degrees. k <= 0
// yields an empty slice.
func (g *CSR) TopDegree(k int) []DegreeItem {
	out := make([]DegreeItem, 0, max(k, 0))
	if k <= 0 || g.nodeCount == 0 {
		return out
	}
	g.degreeIndex.tree.Reverse(func(item DegreeItem) bool {
		out = append(out, item)
		return len(out) < k
	})
	return out
}
