package server

import (
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"
	"net/http/pprof"
	"strconv"

	"github.com/sanonone/grafdb/pkg/core"
	"github.com/sanonone/grafdb/pkg/ingest"
)

// registerHTTPHandlers sets up the REST API routes.
func (s *Server) registerHTTPHandlers(mux *http.ServeMux) {
	// Graph queries
	mux.HandleFunc("GET /graph/stats", s.handleStats)
	mux.HandleFunc("GET /graph/nodes/{id}/degree", s.handleNodeDegree)
	mux.HandleFunc("GET /graph/nodes/{id}/neighbors", s.handleNodeNeighbors)
	mux.HandleFunc("GET /graph/hubs", s.handleHubs)

	// Traversals
	mux.HandleFunc("POST /graph/traversals/bfs", s.handleBFS)
	mux.HandleFunc("POST /graph/traversals/dfs", s.handleDFS)
	mux.HandleFunc("POST /graph/traversals/async", s.handleAsyncTraversal)

	// System
	mux.HandleFunc("GET /system/tasks/{id}", s.handleTaskStatus)
	mux.HandleFunc("POST /system/reload", s.handleReload)

	// Debug endpoints (pprof)
	mux.HandleFunc("GET /debug/pprof/", pprof.Index)
	mux.HandleFunc("GET /debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("GET /debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("GET /debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("GET /debug/pprof/trace", pprof.Trace)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	s.writeHTTPResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	s.writeHTTPResponse(w, http.StatusOK, s.Engine.Stats())
}

func (s *Server) handleNodeDegree(w http.ResponseWriter, r *http.Request) {
	node, ok := s.pathNode(w, r)
	if !ok {
		return
	}
	s.writeHTTPResponse(w, http.StatusOK, DegreeResponse{
		Node:      node,
		OutDegree: s.Engine.OutDegree(node),
		InDegree:  s.Engine.InDegree(node),
	})
}

func (s *Server) handleNodeNeighbors(w http.ResponseWriter, r *http.Request) {
	node, ok := s.pathNode(w, r)
	if !ok {
		return
	}
	neighbors := s.Engine.Neighbors(node)
	s.writeHTTPResponse(w, http.StatusOK, NeighborsResponse{
		Node:      node,
		Count:     len(neighbors),
		Neighbors: neighbors,
	})
}

func (s *Server) handleHubs(w http.ResponseWriter, r *http.Request) {
	k := 10
	if raw := r.URL.Query().Get("k"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			s.writeHTTPError(w, http.StatusBadRequest, "query parameter 'k' must be a positive integer")
			return
		}
		k = parsed
	}

	items := s.Engine.TopDegree(k)
	hubs := make([]Hub, len(items))
	for i, item := range items {
		hubs[i] = Hub{Node: item.Node, Degree: item.Degree}
	}
	s.writeHTTPResponse(w, http.StatusOK, HubsResponse{Hubs: hubs})
}

func (s *Server) handleBFS(w http.ResponseWriter, r *http.Request) {
	var req BFSRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeHTTPError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	maxDepth := -1
	if req.MaxDepth != nil {
		maxDepth = *req.MaxDepth
	}

	order, err := s.Engine.BFS(req.Start, maxDepth)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	s.writeHTTPResponse(w, http.StatusOK, TraversalResponse{
		Algorithm: "bfs",
		Start:     req.Start,
		MaxDepth:  maxDepth,
		Count:     len(order),
		Order:     order,
	})
}

func (s *Server) handleDFS(w http.ResponseWriter, r *http.Request) {
	var req DFSRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeHTTPError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	order, err := s.Engine.DFS(req.Start)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	s.writeHTTPResponse(w, http.StatusOK, TraversalResponse{
		Algorithm: "dfs",
		Start:     req.Start,
		Count:     len(order),
		Order:     order,
	})
}

// handleAsyncTraversal runs a traversal on a background worker and returns a
// task handle immediately. The start node is validated up front so an
// obviously bad request fails synchronously.
func (s *Server) handleAsyncTraversal(w http.ResponseWriter, r *http.Request) {
	var req AsyncTraversalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeHTTPError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Algorithm != "bfs" && req.Algorithm != "dfs" {
		s.writeHTTPError(w, http.StatusBadRequest, "algorithm must be 'bfs' or 'dfs'")
		return
	}
	if req.Start < 0 || int(req.Start) >= s.Engine.NodeCount() {
		s.writeHTTPError(w, http.StatusBadRequest, "start node out of range")
		return
	}

	maxDepth := -1
	if req.MaxDepth != nil {
		maxDepth = *req.MaxDepth
	}

	task := s.taskManager.NewTask()

	go func() {
		task.SetStatus(TaskStatusRunning)

		var order []int32
		var err error
		if req.Algorithm == "bfs" {
			order, err = s.Engine.BFS(req.Start, maxDepth)
		} else {
			order, err = s.Engine.DFS(req.Start)
		}
		if err != nil {
			task.SetError(err)
			return
		}
		task.SetResult(&TraversalResponse{
			Algorithm: req.Algorithm,
			Start:     req.Start,
			MaxDepth:  maxDepth,
			Count:     len(order),
			Order:     order,
		})
	}()

	s.writeHTTPResponse(w, http.StatusAccepted, task.View())
}

func (s *Server) handleTaskStatus(w http.ResponseWriter, r *http.Request) {
	task, found := s.taskManager.GetTask(r.PathValue("id"))
	if !found {
		s.writeHTTPError(w, http.StatusNotFound, "task not found")
		return
	}
	s.writeHTTPResponse(w, http.StatusOK, task.View())
}

func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	var req ReloadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Path == "" {
		s.writeHTTPError(w, http.StatusBadRequest, "expected a JSON object with a non-empty 'path'")
		return
	}

	if err := s.Engine.Reload(req.Path); err != nil {
		s.writeEngineError(w, err)
		return
	}
	s.writeHTTPResponse(w, http.StatusOK, ReloadResponse{
		Path:      req.Path,
		NodeCount: s.Engine.NodeCount(),
		EdgeCount: s.Engine.EdgeCount(),
	})
}

// --- Helpers ---

// pathNode parses the {id} path segment. Degree/neighbor handlers accept any
// integer (total-function policy); only non-numeric input is rejected.
func (s *Server) pathNode(w http.ResponseWriter, r *http.Request) (int32, bool) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		s.writeHTTPError(w, http.StatusBadRequest, "node id must be an integer")
		return 0, false
	}
	return int32(id), true
}

// writeEngineError maps engine error taxonomy to HTTP status codes.
func (s *Server) writeEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrInvalidNode):
		s.writeHTTPError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, fs.ErrNotExist):
		s.writeHTTPError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ingest.ErrEmptyDataset), errors.Is(err, ingest.ErrMalformedLine):
		s.writeHTTPError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		s.writeHTTPError(w, http.StatusInternalServerError, err.Error())
	}
}

func (s *Server) writeHTTPResponse(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func (s *Server) writeHTTPError(w http.ResponseWriter, status int, message string) {
	s.writeHTTPResponse(w, status, map[string]string{"error": message})
}
