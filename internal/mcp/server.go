package mcp

import (
	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/sanonone/grafdb/pkg/engine"
)

// NewMCPServer exposes the graph engine as MCP tools so LLM agents can
// explore a loaded dataset interactively.
func NewMCPServer(eng *engine.Engine) *mcp.Server {
	service := NewService(eng)

	s := mcp.NewServer(&mcp.Implementation{
		Name:    "GrafDB",
		Version: "0.2.0",
	}, nil)

	// Tool schemas are inferred from the argument structs.

	mcp.AddTool(s, &mcp.Tool{
		Name:        "graph_stats",
		Description: "Summarize the loaded graph: node/edge counts, degree distribution, memory footprint.",
	}, service.GraphStats)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "node_degree",
		Description: "Get the out-degree and in-degree of a node. Unknown IDs answer with zeros.",
	}, service.NodeDegree)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "node_neighbors",
		Description: "List the outgoing neighbors of a node in edge order.",
	}, service.NodeNeighbors)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "bfs_traverse",
		Description: "Run a breadth-first traversal from a start node, optionally bounded by max_depth.",
	}, service.BFSTraverse)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "dfs_traverse",
		Description: "Run a depth-first traversal from a start node.",
	}, service.DFSTraverse)

	// find_hub uses a hand-written schema to express the bound on k, which
	// struct tags cannot.
	mcp.AddTool(s, &mcp.Tool{
		Name:        "find_hub",
		Description: "Find the k nodes with the highest out-degree (the hubs of the graph).",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"k": {
					Type:        "integer",
					Description: "How many hubs to return (default 10).",
					Minimum:     ptrFloat(1),
					Maximum:     ptrFloat(1000),
				},
			},
		},
	}, service.FindHub)

	return s
}

func ptrFloat(v float64) *float64 { return &v }
