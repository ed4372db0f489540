package v1

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vodarr/vodarr/internal/download"
	"github.com/vodarr/vodarr/internal/history"
	"github.com/vodarr/vodarr/pkg/platform"
)

func (s *Server) listActiveDownloads(w http.ResponseWriter, r *http.Request) {
	resp := listActiveDownloadsResponse{Items: []*download.Active{}}
	if s.deps.Tracker != nil {
		resp.Items = s.deps.Tracker.Active()
		resp.Total = len(resp.Items)
	}
	writeJSON(w, http.StatusOK, resp)
}

// startDownload fetches a single video right now, outside any subscription
// or task. The handler blocks until yt-dlp finishes; the outcome lands in
// history either way.
func (s *Server) startDownload(w http.ResponseWriter, r *http.Request) {
	var req startDownloadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}
	if req.URL == "" {
		writeError(w, http.StatusBadRequest, "INVALID_INPUT", "url is required")
		return
	}

	v, err := s.deps.Gateway.Download(r.Context(), download.Request{URL: req.URL})
	if err != nil {
		if errors.Is(err, platform.ErrUnrecognizedURL) {
			writeError(w, http.StatusBadRequest, "INVALID_INPUT", err.Error())
			return
		}
		s.recordDownload(&history.Item{
			SourceURL: req.URL,
			Status:    history.StatusFailed,
			Error:     err.Error(),
		})
		writeError(w, http.StatusBadGateway, "DOWNLOAD_FAILED", err.Error())
		return
	}

	s.recordDownload(&history.Item{
		Title:     v.Title,
		Author:    v.Author,
		SourceURL: v.SourceURL,
		Status:    history.StatusSuccess,
		VideoID:   &v.ID,
	})

	writeJSON(w, http.StatusCreated, videoToResponse(v))
}

func (s *Server) recordDownload(item *history.Item) {
	if err := s.deps.History.Record(item); err != nil {
		s.logger.Error("recording history failed", "url", item.SourceURL, "error", err)
	}
}
