package core

import "fmt"

// BFS performs a level-order traversal from start and returns the nodes in
// first-discovery order, start first.
//
// maxDepth bounds the depth of nodes whose neighbors are expanded, not the
// depth of nodes emitted: a node at exactly maxDepth enters the result when
// discovered but its neighbors are never explored. maxDepth == -1 removes
// the bound; maxDepth == 0 therefore yields exactly {start}.
//
// The frontier queue is FIFO and neighbors are visited in CSR row order, so
// the output is deterministic. O(NodeCount + EdgeCount) when unbounded.
func (g *CSR) BFS(start int32, maxDepth int) ([]int32, error) {
	if !g.inRange(start) {
		return nil, fmt.Errorf("bfs start node %d out of range [0, %d): %w", start, g.nodeCount, ErrInvalidNode)
	}

	visited := newBitset(g.nodeCount)
	depths := make([]int32, g.nodeCount)

	queue := make([]int32, 1, 64)
	queue[0] = start
	visited.add(start)

	order := make([]int32, 1, 64)
	order[0] = start

	for head := 0; head < len(queue); head++ {
		node := queue[head]
		depth := depths[node]

		// A node at maxDepth was already emitted on enqueue; skip expansion.
		if maxDepth != -1 && int(depth) >= maxDepth {
			continue
		}

		for _, neighbor := range g.row(node) {
			if visited.has(neighbor) {
				continue
			}
			visited.add(neighbor)
			depths[neighbor] = depth + 1
			queue = append(queue, neighbor)
			order = append(order, neighbor)
		}
	}

	return order, nil
}

// DFS performs a pre-order depth-first traversal from start: a node is
// marked and emitted before its unvisited neighbors are explored, in CSR
// row order.
//
// The implementation uses an explicit stack rather than recursion. On the
// graph sizes this engine targets, a path can approach NodeCount and true
// recursion would exhaust the goroutine stack. Neighbors are pushed in
// reverse row order so the pop sequence matches the recursive pre-order
// exactly. O(NodeCount + EdgeCount).
func (g *CSR) DFS(start int32) ([]int32, error) {
	if !g.inRange(start) {
		return nil, fmt.Errorf("dfs start node %d out of range [0, %d): %w", start, g.nodeCount, ErrInvalidNode)
	}

	visited := newBitset(g.nodeCount)
	order := make([]int32, 0, 64)

	stack := make([]int32, 1, 64)
	stack[0] = start

	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited.has(node) {
			// Pushed more than once before its first visit.
			continue
		}
		visited.add(node)
		order = append(order, node)

		row := g.row(node)
		for i := len(row) - 1; i >= 0; i-- {
			if !visited.has(row[i]) {
				stack = append(stack, row[i])
			}
		}
	}

	return order, nil
}
