package v1

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/vodarr/vodarr/internal/events"
)

// listEvents returns logged events. With since=<id> it reads forward from
// that cursor, oldest first; without it, the newest events.
func (s *Server) listEvents(w http.ResponseWriter, r *http.Request) {
	if s.deps.EventLog == nil {
		writeError(w, http.StatusServiceUnavailable, "NO_EVENT_LOG", "Event log not configured")
		return
	}

	limit := queryInt(r, "limit", 50)
	if limit < 0 {
		writeError(w, http.StatusBadRequest, "INVALID_PAGINATION", "limit must be non-negative")
		return
	}
	const maxLimit = 1000
	if limit > maxLimit {
		limit = maxLimit
	}

	var (
		raw []events.RawEvent
		err error
	)
	if since := r.URL.Query().Get("since"); since != "" {
		afterID, perr := strconv.ParseInt(since, 10, 64)
		if perr != nil {
			writeError(w, http.StatusBadRequest, "INVALID_INPUT", "since must be an event id")
			return
		}
		raw, err = s.deps.EventLog.SinceID(afterID, limit)
	} else {
		raw, err = s.deps.EventLog.Recent(limit)
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "EVENT_ERROR", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, eventsToResponse(raw))
}

func eventsToResponse(raw []events.RawEvent) listEventsResponse {
	resp := listEventsResponse{
		Items: make([]eventResponse, len(raw)),
		Total: len(raw),
	}
	for i, e := range raw {
		resp.Items[i] = eventResponse{
			ID:         e.ID,
			EventType:  e.EventType,
			EntityType: e.EntityType,
			EntityID:   e.EntityID,
			Payload:    json.RawMessage(e.Payload),
			OccurredAt: e.OccurredAt.Format(time.RFC3339),
		}
	}
	return resp
}
