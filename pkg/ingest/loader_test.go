package ingest

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const scenario = "0 1\n0 2\n1 2\n"

func TestLoadScenario(t *testing.T) {
	g, err := Load(strings.NewReader(scenario), Options{})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if g.NodeCount() != 3 {
		t.Errorf("NodeCount = %d, want 3", g.NodeCount())
	}
	if g.EdgeCount() != 3 {
		t.Errorf("EdgeCount = %d, want 3", g.EdgeCount())
	}
	if g.OutDegree(0) != 2 || g.OutDegree(1) != 1 || g.OutDegree(2) != 0 {
		t.Errorf("out-degrees = (%d, %d, %d), want (2, 1, 0)",
			g.OutDegree(0), g.OutDegree(1), g.OutDegree(2))
	}
	if g.InDegree(2) != 2 {
		t.Errorf("InDegree(2) = %d, want 2", g.InDegree(2))
	}
}

func TestLoadNodeCountFromMaxID(t *testing.T) {
	// nodeCount = maxNodeId + 1, even when intermediate IDs never appear.
	g, err := Load(strings.NewReader("0 11342\n"), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if g.NodeCount() != 11343 {
		t.Errorf("NodeCount = %d, want 11343", g.NodeCount())
	}
	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount = %d, want 1", g.EdgeCount())
	}
}

func TestLoadEmptyDataset(t *testing.T) {
	_, err := Load(strings.NewReader(""), Options{})
	if !errors.Is(err, ErrEmptyDataset) {
		t.Errorf("error = %v, want ErrEmptyDataset", err)
	}

	// Whitespace-only input parses zero edges too.
	_, err = Load(strings.NewReader("\n  \n\n"), Options{})
	if !errors.Is(err, ErrEmptyDataset) {
		t.Errorf("whitespace-only error = %v, want ErrEmptyDataset", err)
	}
}

func TestLoadMalformedFailFast(t *testing.T) {
	inputs := []string{
		"0 1\nnot numbers\n",
		"0 1\n2\n",
		"0 1\n1 2 3\n",
		"0 1\n-1 2\n",
	}
	for _, input := range inputs {
		if _, err := Load(strings.NewReader(input), Options{}); !errors.Is(err, ErrMalformedLine) {
			t.Errorf("input %q: error = %v, want ErrMalformedLine", input, err)
		}
	}
}

func TestLoadMalformedSkipAndWarn(t *testing.T) {
	input := "0 1\ngarbage here\n0 2\n-3 4\n1 2\n"
	g, err := Load(strings.NewReader(input), Options{OnMalformed: SkipAndWarn})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	// Exactly the two malformed lines are dropped.
	if g.EdgeCount() != 3 {
		t.Errorf("EdgeCount = %d, want 3", g.EdgeCount())
	}
	if g.NodeCount() != 3 {
		t.Errorf("NodeCount = %d, want 3", g.NodeCount())
	}
}

func TestLoadNonSeekableMatchesSeekable(t *testing.T) {
	input := "0 2\n0 1\n2 0\n1 2\n"

	seekable, err := Load(strings.NewReader(input), Options{})
	if err != nil {
		t.Fatal(err)
	}
	// bytes.Buffer does not implement io.Seeker, forcing the buffered path.
	buffered, err := Load(bytes.NewBufferString(input), Options{})
	if err != nil {
		t.Fatal(err)
	}

	if seekable.EdgeCount() != buffered.EdgeCount() || seekable.NodeCount() != buffered.NodeCount() {
		t.Fatalf("seekable (%d nodes, %d edges) != buffered (%d nodes, %d edges)",
			seekable.NodeCount(), seekable.EdgeCount(), buffered.NodeCount(), buffered.EdgeCount())
	}
	for i := int32(0); int(i) < seekable.NodeCount(); i++ {
		a, b := seekable.Neighbors(i), buffered.Neighbors(i)
		if len(a) != len(b) {
			t.Fatalf("node %d: neighbor count differs (%v vs %v)", i, a, b)
		}
		for j := range a {
			if a[j] != b[j] {
				t.Fatalf("node %d: neighbor order differs (%v vs %v)", i, a, b)
			}
		}
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edges.txt")
	if err := os.WriteFile(path, []byte(scenario), 0644); err != nil {
		t.Fatal(err)
	}

	g, err := LoadFile(path, Options{})
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if g.EdgeCount() != 3 {
		t.Errorf("EdgeCount = %d, want 3", g.EdgeCount())
	}
}

func TestLoadFileNotFound(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.txt"), Options{})
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error = %v, want wrapped fs.ErrNotExist", err)
	}
}

func TestParsePolicy(t *testing.T) {
	if p, err := ParsePolicy(""); err != nil || p != FailFast {
		t.Errorf("ParsePolicy(\"\") = (%v, %v), want (FailFast, nil)", p, err)
	}
	if p, err := ParsePolicy("skip_and_warn"); err != nil || p != SkipAndWarn {
		t.Errorf("ParsePolicy(skip_and_warn) = (%v, %v)", p, err)
	}
	if _, err := ParsePolicy("lenient"); err == nil {
		t.Error("ParsePolicy(lenient) should fail")
	}
}
