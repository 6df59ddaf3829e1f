// Package engine provides the high-level, embedded interface for GrafDB.
//
// It loads edge-list datasets into the immutable CSR core and exposes the
// full query surface, providing a thread-safe graph handle that can be used
// directly within Go applications without network overhead.
//
// Basic usage:
//
//	opts := engine.DefaultOptions("./web-graph.txt")
//	eng, err := engine.Open(opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer eng.Close()
//	order, err := eng.BFS(0, -1)
package engine

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/sanonone/grafdb/pkg/core"
	"github.com/sanonone/grafdb/pkg/ingest"
	"github.com/sanonone/grafdb/pkg/metrics"
)

// Options configures the behavior of the Engine.
type Options struct {
	// DatasetPath is the edge-list file loaded at Open.
	DatasetPath string

	// OnMalformed decides how ingestion treats lines that fail the
	// two-integer format. Default: ingest.FailFast.
	OnMalformed ingest.MalformedPolicy
}

// DefaultOptions returns a standard configuration for the given dataset.
func DefaultOptions(datasetPath string) Options {
	return Options{
		DatasetPath: datasetPath,
		OnMalformed: ingest.FailFast,
	}
}

// Engine is the main entry point for GrafDB.
//
// Construction is a single-owner, build-once-then-freeze phase: the CSR is
// built on the calling goroutine and then shared read-only. The mutex only
// guards the handle swap performed by Reload; queries grab the current
// handle under a read lock and run on the immutable structure, so any
// number of concurrent readers proceed without coordination.
type Engine struct {
	mu    sync.RWMutex
	graph *core.CSR

	datasetPath string
	loadedAt    time.Time
	opts        Options
}

// Open loads the dataset from opts.DatasetPath and returns a ready Engine.
// It blocks until the graph is fully built.
func Open(opts Options) (*Engine, error) {
	e := &Engine{opts: opts}
	if err := e.load(opts.DatasetPath); err != nil {
		return nil, err
	}
	return e, nil
}

// load builds a fresh graph and swaps it in. The old graph, if any, stays
// valid for readers that already hold it.
func (e *Engine) load(path string) error {
	start := time.Now()

	g, err := ingest.LoadFile(path, ingest.Options{OnMalformed: e.opts.OnMalformed})
	if err != nil {
		metrics.DatasetLoadsTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("failed to load dataset %q: %w", path, err)
	}

	e.mu.Lock()
	e.graph = g
	e.datasetPath = path
	e.loadedAt = time.Now()
	e.mu.Unlock()

	metrics.DatasetLoadsTotal.WithLabelValues("ok").Inc()
	metrics.GraphNodes.Set(float64(g.NodeCount()))
	metrics.GraphEdges.Set(float64(g.EdgeCount()))

	slog.Info("dataset loaded",
		"path", path,
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
		"duration", time.Since(start).String(),
	)
	return nil
}

// Reload ingests a new dataset and atomically replaces the current graph.
// On failure the previous graph remains in place untouched.
func (e *Engine) Reload(path string) error {
	return e.load(path)
}

// Close releases the graph handle. The Engine must not be used afterwards.
func (e *Engine) Close() error {
	e.mu.Lock()
	e.graph = nil
	e.mu.Unlock()
	return nil
}

// Graph returns the current graph handle. The returned value is immutable
// and safe to use even across a concurrent Reload.
func (e *Engine) Graph() core.Graph {
	return e.csr()
}

func (e *Engine) csr() *core.CSR {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.graph
}

// DatasetPath returns the path of the currently loaded dataset.
func (e *Engine) DatasetPath() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.datasetPath
}

// LoadedAt returns when the current graph finished building.
func (e *Engine) LoadedAt() time.Time {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.loadedAt
}

// --- Query delegation (the Graph capability set plus the analysis extras) ---

// NodeCount returns the number of nodes in the current graph.
func (e *Engine) NodeCount() int { return e.csr().NodeCount() }

// EdgeCount returns the number of directed edges in the current graph.
func (e *Engine) EdgeCount() int { return e.csr().EdgeCount() }

// IsDirected reports whether the current graph is directed.
func (e *Engine) IsDirected() bool { return e.csr().IsDirected() }

// OutDegree returns the out-degree of node (0 when out of range).
func (e *Engine) OutDegree(node int32) int { return e.csr().OutDegree(node) }

// InDegree returns the in-degree of node (0 when out of range).
func (e *Engine) InDegree(node int32) int { return e.csr().InDegree(node) }

// Neighbors returns a caller-owned copy of node's outgoing destinations.
func (e *Engine) Neighbors(node int32) []int32 { return e.csr().Neighbors(node) }

// MaxDegreeNode returns the lowest-ID node with the highest out-degree.
func (e *Engine) MaxDegreeNode() (int32, int) { return e.csr().MaxDegreeNode() }

// TopDegree returns the k highest out-degree nodes from the degree index.
func (e *Engine) TopDegree(k int) []core.DegreeItem { return e.csr().TopDegree(k) }

// Stats computes summary statistics for the current graph.
func (e *Engine) Stats() core.Stats { return e.csr().Stats() }

// BFS runs a breadth-first traversal on the current graph.
func (e *Engine) BFS(start int32, maxDepth int) ([]int32, error) {
	t := time.Now()
	order, err := e.csr().BFS(start, maxDepth)
	if err == nil {
		metrics.TraversalDuration.WithLabelValues("bfs").Observe(time.Since(t).Seconds())
	}
	return order, err
}

// DFS runs a depth-first traversal on the current graph.
func (e *Engine) DFS(start int32) ([]int32, error) {
	t := time.Now()
	order, err := e.csr().DFS(start)
	if err == nil {
		metrics.TraversalDuration.WithLabelValues("dfs").Observe(time.Since(t).Seconds())
	}
	return order, err
}
