package mcp

// --- Tool Arguments ---

type GraphStatsArgs struct{}

type GraphStatsResult struct {
	NodeCount         int     `json:"node_count"`
	EdgeCount         int     `json:"edge_count"`
	AvgOutDegree      float64 `json:"avg_out_degree"`
	StdDevOutDegree   float64 `json:"std_dev_out_degree"`
	MaxDegreeNode     int32   `json:"max_degree_node"`
	MaxDegree         int     `json:"max_degree"`
	MemoryBytes       int64   `json:"memory_bytes"`
	DatasetPath       string  `json:"dataset_path"`
	HumanReadableNote string  `json:"note,omitempty"`
}

type NodeDegreeArgs struct {
	Node int32 `json:"node" jsonschema:"The node ID to inspect,required"`
}

type NodeDegreeResult struct {
	Node      int32 `json:"node"`
	OutDegree int   `json:"out_degree"`
	InDegree  int   `json:"in_degree"`
}

type NodeNeighborsArgs struct {
	Node int32 `json:"node" jsonschema:"The node ID whose outgoing neighbors to list,required"`
}

type NodeNeighborsResult struct {
	Node      int32   `json:"node"`
	Count     int     `json:"count"`
	Neighbors []int32 `json:"neighbors"`
}

type BFSArgs struct {
	Start    int32 `json:"start" jsonschema:"The node ID to start from,required"`
	MaxDepth *int  `json:"max_depth,omitempty" jsonschema:"Maximum distance from start to expand. Omit or -1 for unbounded, 0 for the start node only"`
	Limit    int   `json:"limit,omitempty" jsonschema:"Truncate the reported order to this many nodes (default 100)"`
}

type DFSArgs struct {
	Start int32 `json:"start" jsonschema:"The node ID to start from,required"`
	Limit int   `json:"limit,omitempty" jsonschema:"Truncate the reported order to this many nodes (default 100)"`
}

type TraversalResult struct {
	Algorithm string  `json:"algorithm"`
	Start     int32   `json:"start"`
	Visited   int     `json:"visited"`
	Order     []int32 `json:"order"`
	Truncated bool    `json:"truncated,omitempty"`
}

// FindHubArgs is validated by an explicit schema in NewMCPServer, so it
// carries no jsonschema tags.
type FindHubArgs struct {
	K int `json:"k,omitempty"`
}

type HubInfo struct {
	Node   int32 `json:"node"`
	Degree int32 `json:"degree"`
}

type FindHubResult struct {
	Hubs []HubInfo `json:"hubs"`
}
