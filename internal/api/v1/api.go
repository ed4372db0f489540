// Package v1 implements the native REST API.
package v1

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/vodarr/vodarr/internal/backlog"
	"github.com/vodarr/vodarr/internal/events"
	"github.com/vodarr/vodarr/internal/library"
	"github.com/vodarr/vodarr/internal/subscription"
	"github.com/vodarr/vodarr/internal/ytdlp"
	"github.com/vodarr/vodarr/pkg/platform"
)

// Config holds API server configuration.
type Config struct {
	Version string
}

// Server is the v1 API server.
type Server struct {
	deps   ServerDeps
	cfg    Config
	logger *slog.Logger
}

// NewWithDeps creates a v1 API server from explicit dependencies.
func NewWithDeps(deps ServerDeps, cfg Config) (*Server, error) {
	if err := deps.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingDependency, err)
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{deps: deps, cfg: cfg, logger: logger}, nil
}

// RegisterRoutes registers API routes on the given mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	// Subscriptions
	mux.HandleFunc("GET /api/v1/subscriptions", s.listSubscriptions)
	mux.HandleFunc("POST /api/v1/subscriptions", s.addSubscription)
	mux.HandleFunc("DELETE /api/v1/subscriptions/{id}", s.deleteSubscription)
	mux.HandleFunc("POST /api/v1/subscriptions/{id}/pause", s.pauseSubscription)
	mux.HandleFunc("POST /api/v1/subscriptions/{id}/resume", s.resumeSubscription)
	mux.HandleFunc("POST /api/v1/subscriptions/check", s.requireScheduler(s.checkSubscriptions))

	// Backlog tasks
	mux.HandleFunc("GET /api/v1/tasks", s.listTasks)
	mux.HandleFunc("POST /api/v1/tasks", s.createTask)
	mux.HandleFunc("GET /api/v1/tasks/{id}", s.getTask)
	mux.HandleFunc("POST /api/v1/tasks/{id}/pause", s.pauseTask)
	mux.HandleFunc("POST /api/v1/tasks/{id}/resume", s.resumeTask)
	mux.HandleFunc("POST /api/v1/tasks/{id}/cancel", s.cancelTask)
	mux.HandleFunc("GET /api/v1/tasks/{id}/events", s.listTaskEvents)

	// Downloads
	mux.HandleFunc("GET /api/v1/downloads/active", s.listActiveDownloads)
	mux.HandleFunc("POST /api/v1/downloads", s.requireGateway(s.startDownload))

	// History
	mux.HandleFunc("GET /api/v1/history", s.listHistory)

	// Library
	mux.HandleFunc("GET /api/v1/videos", s.listVideos)
	mux.HandleFunc("DELETE /api/v1/videos/{id}", s.deleteVideo)
	mux.HandleFunc("GET /api/v1/collections", s.listCollections)
	mux.HandleFunc("POST /api/v1/collections", s.createCollection)
	mux.HandleFunc("GET /api/v1/collections/{id}/videos", s.listCollectionVideos)
	mux.HandleFunc("POST /api/v1/collections/{id}/videos/{videoID}", s.addCollectionVideo)
	mux.HandleFunc("DELETE /api/v1/collections/{id}/videos/{videoID}", s.removeCollectionVideo)

	// Settings
	mux.HandleFunc("GET /api/v1/settings", s.getSettings)
	mux.HandleFunc("PUT /api/v1/settings", s.updateSettings)

	// System
	mux.HandleFunc("GET /api/v1/events", s.listEvents)
	mux.HandleFunc("GET /api/v1/status", s.getStatus)
	mux.HandleFunc("GET /api/v1/verify", s.verify)
}

// Error response
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, code int, errCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: message, Code: errCode})
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

// writeDomainError maps domain sentinels onto HTTP responses. Anything
// unrecognized is a storage failure.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, platform.ErrUnrecognizedURL):
		writeError(w, http.StatusBadRequest, "INVALID_INPUT", err.Error())
	case errors.Is(err, subscription.ErrDuplicate), errors.Is(err, library.ErrDuplicate):
		writeError(w, http.StatusConflict, "DUPLICATE", err.Error())
	case errors.Is(err, backlog.ErrInvalidTransition):
		writeError(w, http.StatusConflict, "INVALID_STATE", err.Error())
	case errors.Is(err, backlog.ErrStale):
		writeError(w, http.StatusConflict, "CONFLICT", err.Error())
	case errors.Is(err, subscription.ErrNotFound),
		errors.Is(err, backlog.ErrNotFound),
		errors.Is(err, library.ErrNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ytdlp.ErrNotInstalled),
		errors.Is(err, ytdlp.ErrNotFound),
		errors.Is(err, ytdlp.ErrRateLimited),
		errors.Is(err, ytdlp.ErrTimeout):
		writeError(w, http.StatusBadGateway, "RESOLVE_FAILED", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "STORAGE_ERROR", err.Error())
	}
}

// queryInt extracts an optional integer from query string.
func queryInt(r *http.Request, name string, defaultVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return i
}

// queryString extracts an optional string from query string.
func queryString(r *http.Request, name string) *string {
	val := r.URL.Query().Get(name)
	if val == "" {
		return nil
	}
	return &val
}

// publish emits an event when a bus is configured. Publish failures are
// logged, never surfaced to the client.
func (s *Server) publish(e events.Event) {
	if s.deps.Bus == nil {
		return
	}
	if err := s.deps.Bus.Publish(context.Background(), e); err != nil {
		s.logger.Error("failed to publish event", "type", e.EventType(), "error", err)
	}
}

func (s *Server) getStatus(w http.ResponseWriter, r *http.Request) {
	resp := statusResponse{Status: "ok", Version: s.cfg.Version}

	if subs, err := s.deps.Subscriptions.List(); err == nil {
		resp.Subscriptions = len(subs)
	}
	active := backlog.StatusActive
	if _, total, err := s.deps.Tasks.List(backlog.Filter{Status: &active}); err == nil {
		resp.ActiveTasks = total
	}
	if s.deps.Tracker != nil {
		resp.ActiveDownloads = len(s.deps.Tracker.Active())
	}

	writeJSON(w, http.StatusOK, resp)
}
