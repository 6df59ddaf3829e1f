package core

import "gonum.org/v1/gonum/stat"

// Stats summarizes the shape of a built graph. It is computed on demand;
// nothing here is cached between calls.
type Stats struct {
	NodeCount int  `json:"node_count"`
	EdgeCount int  `json:"edge_count"`
	Directed  bool `json:"directed"`

	AvgOutDegree    float64 `json:"avg_out_degree"`
	StdDevOutDegree float64 `json:"std_dev_out_degree"`

	MaxDegreeNode int32 `json:"max_degree_node"`
	MaxDegree     int   `json:"max_degree"`

	// MemoryBytes estimates the CSR footprint: the three arrays, nothing else.
	MemoryBytes int64 `json:"memory_bytes"`
}

// Stats computes summary statistics over the out-degree distribution.
// O(NodeCount) time and O(NodeCount) scratch for the distribution moments.
func (g *CSR) Stats() Stats {
	s := Stats{
		NodeCount:   g.nodeCount,
		EdgeCount:   g.edgeCount,
		Directed:    g.directed,
		MemoryBytes: int64(len(g.rowOffsets)+len(g.columnIndices)+len(g.edgeValues)) * 4,
	}

	s.MaxDegreeNode, s.MaxDegree = g.MaxDegreeNode()

	if g.nodeCount == 0 {
		return s
	}

	degrees := make([]float64, g.nodeCount)
	for i := range degrees {
		degrees[i] = float64(g.OutDegree(int32(i)))
	}
	s.AvgOutDegree = stat.Mean(degrees, nil)
	if g.nodeCount > 1 {
		s.StdDevOutDegree = stat.StdDev(degrees, nil)
	}

	return s
}
