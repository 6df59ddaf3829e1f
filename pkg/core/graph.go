// Package core provides the fundamental data structures and logic for the GrafDB engine.
//
// This file defines the Graph interface, the capability set every storage
// backend must expose. External collaborators (the HTTP server, the MCP
// service, client-side fakes in tests) interact with a graph exclusively
// through this contract, so an alternate backend can be substituted without
// touching callers.
package core

// Graph is the read-only query contract over a directed graph.
//
// Degree and neighbor queries are total functions: an out-of-range node
// yields a zero/empty result, never an error. Traversal entry points are
// strict instead and fail with ErrInvalidNode when the start node is outside
// [0, NodeCount). Test writers should not conflate the two policies.
type Graph interface {
	// NodeCount returns the total number of nodes; valid IDs are 0..NodeCount-1.
	NodeCount() int

	// EdgeCount returns the total number of directed edges.
	EdgeCount() int

	// IsDirected reports whether edges are directed. Always true for the CSR engine.
	IsDirected() bool

	// OutDegree returns the number of edges leaving node, 0 if node is out of range.
	OutDegree(node int32) int

	// InDegree returns the number of edges entering node, 0 if node is out of range.
	// No reverse adjacency is stored, so this scans the edge array: O(EdgeCount) per call.
	InDegree(node int32) int

	// Neighbors returns a caller-owned copy of node's outgoing destinations,
	// in edge insertion order. Empty (never nil-vs-error) for out-of-range
	// nodes or nodes without outgoing edges.
	Neighbors(node int32) []int32

	// MaxDegreeNode returns the lowest-ID node with the highest out-degree,
	// or (-1, 0) on an empty graph.
	MaxDegreeNode() (node int32, degree int)

	// BFS returns the breadth-first visitation order from start. maxDepth
	// bounds the depth of nodes whose neighbors are expanded: a node at
	// exactly maxDepth is emitted but not expanded. maxDepth == -1 means
	// unbounded; maxDepth == 0 yields only the start node.
	BFS(start int32, maxDepth int) ([]int32, error)

	// DFS returns the pre-order depth-first visitation order from start.
	DFS(start int32) ([]int32, error)
}
