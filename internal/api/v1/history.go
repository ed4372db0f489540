package v1

import (
	"net/http"

	"github.com/vodarr/vodarr/internal/history"
)

// listHistory returns download outcomes, newest first. With q= it runs a
// fuzzy title search instead of the filtered listing.
func (s *Server) listHistory(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 50)

	if q := r.URL.Query().Get("q"); q != "" {
		items, err := s.deps.History.Search(q, limit)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "STORAGE_ERROR", err.Error())
			return
		}
		writeJSON(w, http.StatusOK, historyToResponse(items, len(items), limit, 0))
		return
	}

	filter := history.Filter{
		SubscriptionID: queryString(r, "subscriptionId"),
		TaskID:         queryString(r, "taskId"),
		Limit:          limit,
		Offset:         queryInt(r, "offset", 0),
	}
	if statusStr := queryString(r, "status"); statusStr != nil {
		st := history.Status(*statusStr)
		filter.Status = &st
	}

	items, total, err := s.deps.History.List(filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "STORAGE_ERROR", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, historyToResponse(items, total, filter.Limit, filter.Offset))
}

func historyToResponse(items []*history.Item, total, limit, offset int) listHistoryResponse {
	resp := listHistoryResponse{
		Items:  make([]historyItemResponse, len(items)),
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}
	for i, item := range items {
		resp.Items[i] = historyItemResponse{
			ID:             item.ID,
			Title:          item.Title,
			Author:         item.Author,
			SourceURL:      item.SourceURL,
			Status:         string(item.Status),
			Error:          item.Error,
			VideoID:        item.VideoID,
			SubscriptionID: item.SubscriptionID,
			TaskID:         item.TaskID,
			FinishedAt:     item.FinishedAt,
		}
	}
	return resp
}
