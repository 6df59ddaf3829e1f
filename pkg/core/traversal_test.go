package core

import (
	"errors"
	"testing"
)

func equalOrder(got, want []int32) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range want {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestBFSScenario(t *testing.T) {
	g := buildGraph(3, [][2]int32{{0, 1}, {0, 2}, {1, 2}})

	order, err := g.BFS(0, -1)
	if err != nil {
		t.Fatalf("BFS failed: %v", err)
	}
	if !equalOrder(order, []int32{0, 1, 2}) {
		t.Errorf("BFS(0, -1) = %v, want [0 1 2]", order)
	}
}

func TestBFSInvalidStart(t *testing.T) {
	g := buildGraph(3, [][2]int32{{0, 1}, {0, 2}, {1, 2}})

	if _, err := g.BFS(5, -1); !errors.Is(err, ErrInvalidNode) {
		t.Errorf("BFS(5, -1) error = %v, want ErrInvalidNode", err)
	}
	if _, err := g.BFS(-1, -1); !errors.Is(err, ErrInvalidNode) {
		t.Errorf("BFS(-1, -1) error = %v, want ErrInvalidNode", err)
	}
}

func TestBFSDepthBound(t *testing.T) {
	// Chain 0 -> 1 -> 2 -> 3 with a branch 1 -> 4.
	g := buildGraph(5, [][2]int32{{0, 1}, {1, 2}, {2, 3}, {1, 4}})

	// maxDepth = 0: the start node is emitted but never expanded.
	order, err := g.BFS(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !equalOrder(order, []int32{0}) {
		t.Errorf("BFS(0, 0) = %v, want [0]", order)
	}

	// maxDepth = 2: nodes at depth 2 are emitted but not expanded,
	// so depth-3 node 3 stays out.
	order, err = g.BFS(0, 2)
	if err != nil {
		t.Fatal(err)
	}
	if !equalOrder(order, []int32{0, 1, 2, 4}) {
		t.Errorf("BFS(0, 2) = %v, want [0 1 2 4]", order)
	}

	// Unbounded reaches everything.
	order, err = g.BFS(0, -1)
	if err != nil {
		t.Fatal(err)
	}
	if !equalOrder(order, []int32{0, 1, 2, 4, 3}) {
		t.Errorf("BFS(0, -1) = %v, want [0 1 2 4 3]", order)
	}
}

func TestBFSVisitsEachNodeOnce(t *testing.T) {
	// Cycle plus parallel edges: every reachable node must appear exactly once.
	g := buildGraph(4, [][2]int32{{0, 1}, {1, 2}, {2, 0}, {0, 1}, {1, 3}})

	order, err := g.BFS(0, -1)
	if err != nil {
		t.Fatal(err)
	}
	seen := make(map[int32]bool)
	for _, n := range order {
		if seen[n] {
			t.Fatalf("node %d visited twice in %v", n, order)
		}
		seen[n] = true
	}
	if len(order) != 4 {
		t.Errorf("BFS visited %d nodes, want 4", len(order))
	}
	if order[0] != 0 {
		t.Errorf("start node not first: %v", order)
	}
}

func TestBFSUnreachableNodesExcluded(t *testing.T) {
	// Node 3 has no incoming path from 0.
	g := buildGraph(4, [][2]int32{{0, 1}, {1, 2}, {3, 0}})

	order, err := g.BFS(0, -1)
	if err != nil {
		t.Fatal(err)
	}
	if !equalOrder(order, []int32{0, 1, 2}) {
		t.Errorf("BFS(0, -1) = %v, want [0 1 2]", order)
	}
}

func TestDFSScenario(t *testing.T) {
	g := buildGraph(3, [][2]int32{{0, 1}, {0, 2}, {1, 2}})

	order, err := g.DFS(0)
	if err != nil {
		t.Fatalf("DFS failed: %v", err)
	}
	if !equalOrder(order, []int32{0, 1, 2}) {
		t.Errorf("DFS(0) = %v, want [0 1 2]", order)
	}
}

func TestDFSPreOrder(t *testing.T) {
	// 0 -> {1, 4}; 1 -> {2, 3}. Recursive pre-order is 0 1 2 3 4;
	// the explicit stack must reproduce it exactly.
	g := buildGraph(5, [][2]int32{{0, 1}, {0, 4}, {1, 2}, {1, 3}})

	order, err := g.DFS(0)
	if err != nil {
		t.Fatal(err)
	}
	if !equalOrder(order, []int32{0, 1, 2, 3, 4}) {
		t.Errorf("DFS(0) = %v, want [0 1 2 3 4]", order)
	}
}

func TestDFSInvalidStart(t *testing.T) {
	g := buildGraph(2, [][2]int32{{0, 1}})
	if _, err := g.DFS(2); !errors.Is(err, ErrInvalidNode) {
		t.Errorf("DFS(2) error = %v, want ErrInvalidNode", err)
	}
}

func TestDFSCycle(t *testing.T) {
	g := buildGraph(3, [][2]int32{{0, 1}, {1, 2}, {2, 0}})

	order, err := g.DFS(0)
	if err != nil {
		t.Fatal(err)
	}
	if !equalOrder(order, []int32{0, 1, 2}) {
		t.Errorf("DFS(0) on cycle = %v, want [0 1 2]", order)
	}
}

func TestDFSDeepChainNoOverflow(t *testing.T) {
	// A path graph whose depth equals the node count. A recursive DFS
	// would blow the stack here; the iterative one must not.
	const n = 200_000
	b := NewBuilder(n)
	for i := int32(0); i < n-1; i++ {
		b.AddEdge(i, i+1)
	}
	g := b.Build()

	order, err := g.DFS(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(order) != n {
		t.Errorf("DFS visited %d nodes, want %d", len(order), n)
	}
	if order[n-1] != n-1 {
		t.Errorf("last visited = %d, want %d", order[n-1], n-1)
	}
}
