package server

// DegreeResponse reports both degree directions for a node. Degree queries
// are total functions: out-of-range IDs answer with zeros, not errors.
type DegreeResponse struct {
	Node      int32 `json:"node"`
	OutDegree int   `json:"out_degree"`
	InDegree  int   `json:"in_degree"`
}

// NeighborsResponse lists a node's outgoing destinations in edge order.
type NeighborsResponse struct {
	Node      int32   `json:"node"`
	Count     int     `json:"count"`
	Neighbors []int32 `json:"neighbors"`
}

// Hub pairs a node with its out-degree in hub rankings.
type Hub struct {
	Node   int32 `json:"node"`
	Degree int32 `json:"degree"`
}

// HubsResponse is the result of a top-degree query.
type HubsResponse struct {
	Hubs []Hub `json:"hubs"`
}

// BFSRequest defines the body for a breadth-first traversal.
// MaxDepth is optional and defaults to -1 (unbounded); 0 is meaningful
// (start node only), hence the pointer.
type BFSRequest struct {
	Start    int32 `json:"start"`
	MaxDepth *int  `json:"max_depth,omitempty"`
}

// DFSRequest defines the body for a depth-first traversal.
type DFSRequest struct {
	Start int32 `json:"start"`
}

// TraversalResponse carries a visitation order.
type TraversalResponse struct {
	Algorithm string  `json:"algorithm"`
	Start     int32   `json:"start"`
	MaxDepth  int     `json:"max_depth,omitempty"`
	Count     int     `json:"count"`
	Order     []int32 `json:"order"`
}

// AsyncTraversalRequest starts a traversal as a background task. Responsive
// callers use this on very large graphs; the engine itself stays synchronous.
type AsyncTraversalRequest struct {
	Algorithm string `json:"algorithm"` // "bfs" or "dfs"
	Start     int32  `json:"start"`
	MaxDepth  *int   `json:"max_depth,omitempty"` // bfs only
}

// ReloadRequest swaps the dataset behind the engine.
type ReloadRequest struct {
	Path string `json:"path"`
}

// ReloadResponse reports the shape of the freshly loaded graph.
type ReloadResponse struct {
	Path      string `json:"path"`
	NodeCount int    `json:"node_count"`
	EdgeCount int    `json:"edge_count"`
}
