package engine

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sanonone/grafdb/pkg/core"
	"github.com/sanonone/grafdb/pkg/ingest"
)

// writeDataset is a test helper that drops an edge list into a temp file.
func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "edges.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestOpenAndQuery(t *testing.T) {
	eng, err := Open(DefaultOptions(writeDataset(t, "0 1\n0 2\n1 2\n")))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer eng.Close()

	if eng.NodeCount() != 3 || eng.EdgeCount() != 3 {
		t.Errorf("counts = (%d, %d), want (3, 3)", eng.NodeCount(), eng.EdgeCount())
	}
	if !eng.IsDirected() {
		t.Error("IsDirected = false, want true")
	}

	order, err := eng.BFS(0, -1)
	if err != nil {
		t.Fatalf("BFS failed: %v", err)
	}
	if len(order) != 3 || order[0] != 0 {
		t.Errorf("BFS(0, -1) = %v", order)
	}

	if _, err := eng.DFS(9); !errors.Is(err, core.ErrInvalidNode) {
		t.Errorf("DFS(9) error = %v, want ErrInvalidNode", err)
	}
}

func TestOpenMissingDataset(t *testing.T) {
	_, err := Open(DefaultOptions(filepath.Join(t.TempDir(), "nope.txt")))
	if err == nil {
		t.Fatal("Open with a missing dataset should fail")
	}
}

func TestOpenEmptyDataset(t *testing.T) {
	_, err := Open(DefaultOptions(writeDataset(t, "")))
	if !errors.Is(err, ingest.ErrEmptyDataset) {
		t.Errorf("error = %v, want ErrEmptyDataset", err)
	}
}

func TestReloadSwapsGraph(t *testing.T) {
	eng, err := Open(DefaultOptions(writeDataset(t, "0 1\n")))
	if err != nil {
		t.Fatal(err)
	}
	defer eng.Close()

	// A handle grabbed before the reload keeps observing the old graph.
	old := eng.Graph()

	bigger := writeDataset(t, "0 1\n1 2\n2 3\n")
	if err := eng.Reload(bigger); err != nil {
		t.Fatalf("Reload failed: %v", err)
	}

	if eng.NodeCount() != 4 || eng.EdgeCount() != 3 {
		t.Errorf("after reload counts = (%d, %d), want (4, 3)", eng.NodeCount(), eng.EdgeCount())
	}
	if old.NodeCount() != 2 {
		t.Errorf("old handle NodeCount = %d, want 2 (immutability violated)", old.NodeCount())
	}
	if eng.DatasetPath() != bigger {
		t.Errorf("DatasetPath = %q, want %q", eng.DatasetPath(), bigger)
	}
}

func TestReloadFailureKeepsOldGraph(t *testing.T) {
	eng, err := Open(DefaultOptions(writeDataset(t, "0 1\n")))
	if err != nil {
		t.Fatal(err)
	}
	defer eng.Close()

	if err := eng.Reload(writeDataset(t, "broken line\n")); err == nil {
		t.Fatal("Reload with a malformed dataset should fail")
	}
	if eng.NodeCount() != 2 || eng.EdgeCount() != 1 {
		t.Errorf("old graph lost after failed reload: counts = (%d, %d)", eng.NodeCount(), eng.EdgeCount())
	}
}

func TestEngineStatsAndHubs(t *testing.T) {
	eng, err := Open(DefaultOptions(writeDataset(t, "0 1\n0 2\n0 3\n1 2\n")))
	if err != nil {
		t.Fatal(err)
	}
	defer eng.Close()

	s := eng.Stats()
	if s.MaxDegreeNode != 0 || s.MaxDegree != 3 {
		t.Errorf("Stats max = (%d, %d), want (0, 3)", s.MaxDegreeNode, s.MaxDegree)
	}

	top := eng.TopDegree(2)
	if len(top) != 2 || top[0].Node != 0 || top[1].Node != 1 {
		t.Errorf("TopDegree(2) = %+v, want nodes [0 1]", top)
	}
}
