package core

import "testing"

func TestTopDegree(t *testing.T) {
	// Degrees: 0 -> 3, 1 -> 1, 2 -> 0, 3 -> 1.
	g := buildGraph(4, [][2]int32{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {3, 2}})

	top := g.TopDegree(3)
	if len(top) != 3 {
		t.Fatalf("TopDegree(3) returned %d items, want 3", len(top))
	}
	if top[0].Node != 0 || top[0].Degree != 3 {
		t.Errorf("top[0] = %+v, want node 0 degree 3", top[0])
	}
	// Degree ties (nodes 1 and 3, degree 1) resolve to the lower ID first.
	if top[1].Node != 1 || top[2].Node != 3 {
		t.Errorf("tie order = [%d %d], want [1 3]", top[1].Node, top[2].Node)
	}
}

func TestTopDegreeAgreesWithMaxDegreeNode(t *testing.T) {
	g := buildGraph(6, [][2]int32{{4, 0}, {4, 1}, {4, 2}, {2, 1}, {0, 5}})

	node, degree := g.MaxDegreeNode()
	top := g.TopDegree(1)
	if len(top) != 1 {
		t.Fatalf("TopDegree(1) returned %d items", len(top))
	}
	if top[0].Node != node || int(top[0].Degree) != degree {
		t.Errorf("TopDegree(1) = %+v, MaxDegreeNode = (%d, %d)", top[0], node, degree)
	}
}

func TestTopDegreeBounds(t *testing.T) {
	g := buildGraph(2, [][2]int32{{0, 1}})

	if got := g.TopDegree(0); len(got) != 0 {
		t.Errorf("TopDegree(0) = %v, want empty", got)
	}
	if got := g.TopDegree(10); len(got) != 2 {
		t.Errorf("TopDegree(10) returned %d items, want all 2", len(got))
	}

	empty := buildGraph(0, nil)
	if got := empty.TopDegree(5); len(got) != 0 {
		t.Errorf("TopDegree on empty graph = %v, want empty", got)
	}
}
