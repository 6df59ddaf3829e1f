package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/sanonone/grafdb/pkg/engine"
)

const defaultOrderLimit = 100

// Service adapts the graph engine to MCP tool handlers. Results are plain
// structs so the SDK can serialize them for the model.
type Service struct {
	engine *engine.Engine
}

func NewService(eng *engine.Engine) *Service {
	return &Service{engine: eng}
}

// --- Tool Handlers ---

func (s *Service) GraphStats(ctx context.Context, req *mcp.CallToolRequest, args GraphStatsArgs) (*mcp.CallToolResult, GraphStatsResult, error) {
	stats := s.engine.Stats()
	return nil, GraphStatsResult{
		NodeCount:       stats.NodeCount,
		EdgeCount:       stats.EdgeCount,
		AvgOutDegree:    stats.AvgOutDegree,
		StdDevOutDegree: stats.StdDevOutDegree,
		MaxDegreeNode:   stats.MaxDegreeNode,
		MaxDegree:       stats.MaxDegree,
		MemoryBytes:     stats.MemoryBytes,
		DatasetPath:     s.engine.DatasetPath(),
	}, nil
}

func (s *Service) NodeDegree(ctx context.Context, req *mcp.CallToolRequest, args NodeDegreeArgs) (*mcp.CallToolResult, NodeDegreeResult, error) {
	return nil, NodeDegreeResult{
		Node:      args.Node,
		OutDegree: s.engine.OutDegree(args.Node),
		InDegree:  s.engine.InDegree(args.Node),
	}, nil
}

func (s *Service) NodeNeighbors(ctx context.Context, req *mcp.CallToolRequest, args NodeNeighborsArgs) (*mcp.CallToolResult, NodeNeighborsResult, error) {
	neighbors := s.engine.Neighbors(args.Node)
	return nil, NodeNeighborsResult{
		Node:      args.Node,
		Count:     len(neighbors),
		Neighbors: neighbors,
	}, nil
}

func (s *Service) BFSTraverse(ctx context.Context, req *mcp.CallToolRequest, args BFSArgs) (*mcp.CallToolResult, TraversalResult, error) {
	maxDepth := -1
	if args.MaxDepth != nil {
		maxDepth = *args.MaxDepth
	}

	order, err := s.engine.BFS(args.Start, maxDepth)
	if err != nil {
		return nil, TraversalResult{}, err
	}
	return nil, truncateResult("bfs", args.Start, order, args.Limit), nil
}

func (s *Service) DFSTraverse(ctx context.Context, req *mcp.CallToolRequest, args DFSArgs) (*mcp.CallToolResult, TraversalResult, error) {
	order, err := s.engine.DFS(args.Start)
	if err != nil {
		return nil, TraversalResult{}, err
	}
	return nil, truncateResult("dfs", args.Start, order, args.Limit), nil
}

func (s *Service) FindHub(ctx context.Context, req *mcp.CallToolRequest, args FindHubArgs) (*mcp.CallToolResult, FindHubResult, error) {
	k := args.K
	if k <= 0 {
		k = 10
	}
	items := s.engine.TopDegree(k)
	hubs := make([]HubInfo, len(items))
	for i, item := range items {
		hubs[i] = HubInfo{Node: item.Node, Degree: item.Degree}
	}
	return nil, FindHubResult{Hubs: hubs}, nil
}

// truncateResult caps the visitation order sent to the model. Full orders on
// web-scale graphs would blow the context window.
func truncateResult(algorithm string, start int32, order []int32, limit int) TraversalResult {
	if limit <= 0 {
		limit = defaultOrderLimit
	}

	res := TraversalResult{
		Algorithm: algorithm,
		Start:     start,
		Visited:   len(order),
		Order:     order,
	}
	if len(order) > limit {
		res.Order = order[:limit]
		res.Truncated = true
	}
	return res
}
