package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Define global variables for metrics.
// We use 'promauto' which automatically registers metrics without complex initialization.

var (
	// 1. HTTP Requests Total (Counter)
	// Counts how many requests arrive, labeled by method, path, and status code.
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "grafdb_http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "path", "status"},
	)

	// 2. HTTP Request Duration (Histogram)
	// Measures server response time.
	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "grafdb_http_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
			// From sub-millisecond degree lookups up to full-graph traversals.
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method", "path"},
	)

	// 3. Graph size (Gauges)
	// Updated whenever a dataset is loaded or reloaded.
	GraphNodes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "grafdb_graph_nodes",
			Help: "Number of nodes in the currently loaded graph",
		},
	)

	GraphEdges = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "grafdb_graph_edges",
			Help: "Number of directed edges in the currently loaded graph",
		},
	)

	// 4. Traversal Duration (Histogram)
	// Labeled by algorithm so BFS and DFS cost can be compared.
	TraversalDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "grafdb_traversal_duration_seconds",
			Help:    "Duration of graph traversals in seconds",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 0.5, 1, 5, 15, 60},
		},
		[]string{"algorithm"},
	)

	// 5. Dataset loads (Counter)
	DatasetLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "grafdb_dataset_loads_total",
			Help: "Total number of dataset load attempts",
		},
		[]string{"result"},
	)
)
