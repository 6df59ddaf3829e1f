// Package client provides a Go client for interacting with the GrafDB API.
//
// It offers a type-safe way to perform all major operations, including:
//   - Graph introspection (Stats, Degree, Neighbors, Hubs).
//   - Traversals, both synchronous (BFS, DFS) and asynchronous (tasks).
//   - System administration (dataset reload, task polling).
//
// The client handles HTTP communication, JSON serialization/deserialization,
// and standardized error handling.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// --- Custom Errors ---

// APIError represents an error returned by the GrafDB API (status >= 400).
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Message)
}

// --- JSON Response Structs ---

// Stats models the response of the graph statistics endpoint.
type Stats struct {
	NodeCount       int     `json:"node_count"`
	EdgeCount       int     `json:"edge_count"`
	Directed        bool    `json:"directed"`
	AvgOutDegree    float64 `json:"avg_out_degree"`
	StdDevOutDegree float64 `json:"std_dev_out_degree"`
	MaxDegreeNode   int32   `json:"max_degree_node"`
	MaxDegree       int     `json:"max_degree"`
	MemoryBytes     int64   `json:"memory_bytes"`
}

// Degree models the degree pair of a single node.
type Degree struct {
	Node      int32 `json:"node"`
	OutDegree int   `json:"out_degree"`
	InDegree  int   `json:"in_degree"`
}

// Neighbors models the adjacency of a single node.
type Neighbors struct {
	Node      int32   `json:"node"`
	Count     int     `json:"count"`
	Neighbors []int32 `json:"neighbors"`
}

// Hub pairs a node with its out-degree in hub rankings.
type Hub struct {
	Node   int32 `json:"node"`
	Degree int32 `json:"degree"`
}

type hubsResponse struct {
	Hubs []Hub `json:"hubs"`
}

// Traversal models the result of a BFS or DFS run.
type Traversal struct {
	Algorithm string  `json:"algorithm"`
	Start     int32   `json:"start"`
	MaxDepth  int     `json:"max_depth"`
	Count     int     `json:"count"`
	Order     []int32 `json:"order"`
}

// Reload models the response of a dataset reload.
type Reload struct {
	Path      string `json:"path"`
	NodeCount int    `json:"node_count"`
	EdgeCount int    `json:"edge_count"`
}

// Task represents an asynchronous traversal on the GrafDB server.
type Task struct {
	ID     string     `json:"id"`
	Status string     `json:"status"`
	Error  string     `json:"error,omitempty"`
	Result *Traversal `json:"result,omitempty"`

	client *Client // Reference to the client for polling.
}

// --- Client ---

// Client is the Go client for interacting with GrafDB.
type Client struct {
	baseURL    string
	authToken  string
	httpClient *http.Client
}

// New creates a new GrafDB client.
func New(host string, port int) *Client {
	return &Client{
		baseURL:    fmt.Sprintf("http://%s:%d", host, port),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// WithAuthToken sets the Bearer token sent with every request.
func (c *Client) WithAuthToken(token string) *Client {
	c.authToken = token
	return c
}

// jsonRequest is a helper method to execute all requests to the API.
// It handles JSON serialization, HTTP calls, and error management.
func (c *Client) jsonRequest(method, endpoint string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal JSON payload: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, c.baseURL+endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("connection error: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		if json.Unmarshal(respBody, &errResp) == nil {
			return nil, &APIError{StatusCode: resp.StatusCode, Message: errResp["error"]}
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: string(respBody)}
	}

	return respBody, nil
}

// --- Graph Methods ---

// Stats returns summary statistics for the loaded graph.
func (c *Client) Stats() (Stats, error) {
	respBody, err := c.jsonRequest(http.MethodGet, "/graph/stats", nil)
	if err != nil {
		return Stats{}, err
	}
	var stats Stats
	if err := json.Unmarshal(respBody, &stats); err != nil {
		return Stats{}, fmt.Errorf("invalid JSON response for stats: %w", err)
	}
	return stats, nil
}

// Degree returns the out-degree and in-degree of a node. Out-of-range IDs
// answer with zeros.
func (c *Client) Degree(node int32) (Degree, error) {
	respBody, err := c.jsonRequest(http.MethodGet, fmt.Sprintf("/graph/nodes/%d/degree", node), nil)
	if err != nil {
		return Degree{}, err
	}
	var d Degree
	if err := json.Unmarshal(respBody, &d); err != nil {
		return Degree{}, fmt.Errorf("invalid JSON response for degree: %w", err)
	}
	return d, nil
}

// Neighbors returns the outgoing neighbors of a node in edge order.
func (c *Client) Neighbors(node int32) (Neighbors, error) {
	respBody, err := c.jsonRequest(http.MethodGet, fmt.Sprintf("/graph/nodes/%d/neighbors", node), nil)
	if err != nil {
		return Neighbors{}, err
	}
	var n Neighbors
	if err := json.Unmarshal(respBody, &n); err != nil {
		return Neighbors{}, fmt.Errorf("invalid JSON response for neighbors: %w", err)
	}
	return n, nil
}

// Hubs returns the k nodes with the highest out-degree.
func (c *Client) Hubs(k int) ([]Hub, error) {
	respBody, err := c.jsonRequest(http.MethodGet, fmt.Sprintf("/graph/hubs?k=%d", k), nil)
	if err != nil {
		return nil, err
	}
	var resp hubsResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("invalid JSON response for hubs: %w", err)
	}
	return resp.Hubs, nil
}

// --- Traversal Methods ---

// BFS runs a breadth-first traversal from start. maxDepth bounds the
// distance from start; pass -1 for an unbounded run, 0 for the start node
// only.
func (c *Client) BFS(start int32, maxDepth int) (Traversal, error) {
	payload := map[string]any{"start": start, "max_depth": maxDepth}
	respBody, err := c.jsonRequest(http.MethodPost, "/graph/traversals/bfs", payload)
	if err != nil {
		return Traversal{}, err
	}
	var t Traversal
	if err := json.Unmarshal(respBody, &t); err != nil {
		return Traversal{}, fmt.Errorf("invalid JSON response for bfs: %w", err)
	}
	return t, nil
}

// DFS runs a depth-first traversal from start.
func (c *Client) DFS(start int32) (Traversal, error) {
	payload := map[string]any{"start": start}
	respBody, err := c.jsonRequest(http.MethodPost, "/graph/traversals/dfs", payload)
	if err != nil {
		return Traversal{}, err
	}
	var t Traversal
	if err := json.Unmarshal(respBody, &t); err != nil {
		return Traversal{}, fmt.Errorf("invalid JSON response for dfs: %w", err)
	}
	return t, nil
}

// AsyncTraversal starts a traversal as a background task on the server.
// algorithm is "bfs" or "dfs"; maxDepth applies to bfs only.
func (c *Client) AsyncTraversal(algorithm string, start int32, maxDepth int) (*Task, error) {
	payload := map[string]any{"algorithm": algorithm, "start": start, "max_depth": maxDepth}
	respBody, err := c.jsonRequest(http.MethodPost, "/graph/traversals/async", payload)
	if err != nil {
		return nil, err
	}
	var task Task
	if err := json.Unmarshal(respBody, &task); err != nil {
		return nil, fmt.Errorf("invalid JSON response for async traversal: %w", err)
	}
	task.client = c
	return &task, nil
}

// --- System Methods ---

// GetTaskStatus retrieves the current status of an asynchronous task.
func (c *Client) GetTaskStatus(taskID string) (*Task, error) {
	respBody, err := c.jsonRequest(http.MethodGet, "/system/tasks/"+taskID, nil)
	if err != nil {
		return nil, err
	}
	var task Task
	if err := json.Unmarshal(respBody, &task); err != nil {
		return nil, fmt.Errorf("invalid JSON response for task status: %w", err)
	}
	task.client = c
	return &task, nil
}

// Reload asks the server to swap the loaded dataset for the one at path.
func (c *Client) Reload(path string) (Reload, error) {
	payload := map[string]string{"path": path}
	respBody, err := c.jsonRequest(http.MethodPost, "/system/reload", payload)
	if err != nil {
		return Reload{}, err
	}
	var r Reload
	if err := json.Unmarshal(respBody, &r); err != nil {
		return Reload{}, fmt.Errorf("invalid JSON response for reload: %w", err)
	}
	return r, nil
}

// --- Task Helpers ---

// Refresh updates the task's status by querying the server.
func (t *Task) Refresh() error {
	if t.client == nil {
		return fmt.Errorf("client is not associated with the task")
	}
	updated, err := t.client.GetTaskStatus(t.ID)
	if err != nil {
		return err
	}
	t.Status = updated.Status
	t.Error = updated.Error
	t.Result = updated.Result
	return nil
}

// Wait blocks until the task is completed, checking its status at regular intervals.
func (t *Task) Wait(interval, timeout time.Duration) error {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-timer.C:
			return fmt.Errorf("timeout exceeded while waiting for task %s", t.ID)
		case <-ticker.C:
			if err := t.Refresh(); err != nil {
				return err
			}
			switch t.Status {
			case "completed":
				return nil
			case "failed":
				return fmt.Errorf("task %s failed with error: %s", t.ID, t.Error)
			case "running", "started":
				// Continue waiting.
			default:
				return fmt.Errorf("unknown task status: %s", t.Status)
			}
		}
	}
}
