package v1

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/vodarr/vodarr/internal/backlog"
	"github.com/vodarr/vodarr/internal/events"
	"github.com/vodarr/vodarr/internal/resolver"
	"github.com/vodarr/vodarr/pkg/platform"
)

func (s *Server) listTasks(w http.ResponseWriter, r *http.Request) {
	filter := backlog.Filter{
		Limit:  queryInt(r, "limit", 50),
		Offset: queryInt(r, "offset", 0),
	}
	if statusStr := queryString(r, "status"); statusStr != nil {
		st := backlog.Status(*statusStr)
		filter.Status = &st
	}
	filter.SubscriptionID = queryString(r, "subscriptionId")

	tasks, total, err := s.deps.Tasks.List(filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "STORAGE_ERROR", err.Error())
		return
	}

	resp := listTasksResponse{
		Items:  make([]taskResponse, len(tasks)),
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}
	for i, t := range tasks {
		resp.Items[i] = taskToResponse(t)
	}

	writeJSON(w, http.StatusOK, resp)
}

func taskToResponse(t *backlog.Task) taskResponse {
	return taskResponse{
		ID:                t.ID,
		SubscriptionID:    t.SubscriptionID,
		CollectionID:      t.CollectionID,
		AuthorURL:         t.AuthorURL,
		Author:            t.Author,
		Platform:          string(t.Platform),
		Status:            string(t.Status),
		TotalVideos:       t.TotalVideos,
		DownloadedCount:   t.DownloadedCount,
		SkippedCount:      t.SkippedCount,
		FailedCount:       t.FailedCount,
		CurrentVideoIndex: t.CurrentVideoIndex,
		Error:             t.Error,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
		CompletedAt:       t.CompletedAt,
	}
}

// createTask queues a full-backlog fetch for a channel or playlist URL.
// When the request carries no author name, the resolver supplies one.
func (s *Server) createTask(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}
	if req.URL == "" {
		writeError(w, http.StatusBadRequest, "INVALID_INPUT", "url is required")
		return
	}

	p, kind, err := platform.Classify(req.URL)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_INPUT", err.Error())
		return
	}
	if kind == platform.KindChannelPlaylists {
		writeError(w, http.StatusBadRequest, "INVALID_INPUT",
			"a playlists tab cannot be fetched as a backlog; subscribe to it instead")
		return
	}
	url := platform.Normalize(req.URL)

	author := req.Author
	if author == "" {
		if s.deps.Resolver == nil {
			writeError(w, http.StatusBadRequest, "INVALID_INPUT", "author is required")
			return
		}
		author, err = s.resolveAuthor(r.Context(), p, kind, url)
		if err != nil {
			if errors.Is(err, resolver.ErrUnsupported) {
				writeError(w, http.StatusBadRequest, "INVALID_INPUT", err.Error())
				return
			}
			writeError(w, http.StatusBadGateway, "RESOLVE_FAILED", err.Error())
			return
		}
	}

	task := &backlog.Task{
		SubscriptionID: req.SubscriptionID,
		CollectionID:   req.CollectionID,
		AuthorURL:      url,
		Author:         author,
		Platform:       p,
	}
	if err := s.deps.Tasks.Create(task); err != nil {
		writeDomainError(w, err)
		return
	}

	s.publish(&events.TaskCreated{
		BaseEvent: events.NewBaseEvent(events.EventTaskCreated, events.EntityTask, task.ID),
		Author:    task.Author,
		AuthorURL: task.AuthorURL,
		Platform:  string(task.Platform),
	})
	if s.deps.Runner != nil {
		s.deps.Runner.Notify()
	}

	writeJSON(w, http.StatusCreated, taskToResponse(task))
}

func (s *Server) resolveAuthor(ctx context.Context, p platform.Platform, kind platform.Kind, url string) (string, error) {
	if kind == platform.KindPlaylist {
		info, err := s.deps.Resolver.PlaylistInfo(ctx, p, url)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s - %s", info.Title, info.Channel), nil
	}

	info, err := s.deps.Resolver.AuthorInfo(ctx, p, url)
	if err != nil {
		return "", err
	}
	return info.Name, nil
}

func (s *Server) getTask(w http.ResponseWriter, r *http.Request) {
	task, err := s.deps.Tasks.Get(r.PathValue("id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, taskToResponse(task))
}

func (s *Server) pauseTask(w http.ResponseWriter, r *http.Request) {
	task, err := s.deps.Tasks.Get(r.PathValue("id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if err := s.deps.Tasks.Transition(task, backlog.StatusPaused); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, taskToResponse(task))
}

func (s *Server) resumeTask(w http.ResponseWriter, r *http.Request) {
	task, err := s.deps.Tasks.Get(r.PathValue("id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if err := s.deps.Tasks.Transition(task, backlog.StatusActive); err != nil {
		writeDomainError(w, err)
		return
	}
	if s.deps.Runner != nil {
		s.deps.Runner.Notify()
	}
	writeJSON(w, http.StatusOK, taskToResponse(task))
}

func (s *Server) cancelTask(w http.ResponseWriter, r *http.Request) {
	task, err := s.deps.Tasks.Get(r.PathValue("id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	reason := "cancelled by user"
	var req cancelTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err == nil && req.Reason != "" {
		reason = req.Reason
	} else if err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}

	if err := s.deps.Tasks.Cancel(task, reason); err != nil {
		writeDomainError(w, err)
		return
	}

	s.publish(&events.TaskCancelled{
		BaseEvent: events.NewBaseEvent(events.EventTaskCancelled, events.EntityTask, task.ID),
		Reason:    reason,
	})

	writeJSON(w, http.StatusOK, taskToResponse(task))
}

// listTaskEvents returns the logged lifecycle events for one task.
func (s *Server) listTaskEvents(w http.ResponseWriter, r *http.Request) {
	if s.deps.EventLog == nil {
		writeError(w, http.StatusServiceUnavailable, "NO_EVENT_LOG", "Event log not configured")
		return
	}

	id := r.PathValue("id")
	if _, err := s.deps.Tasks.Get(id); err != nil {
		writeDomainError(w, err)
		return
	}

	raw, err := s.deps.EventLog.ForEntity(events.EntityTask, id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "EVENT_ERROR", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, eventsToResponse(raw))
}
