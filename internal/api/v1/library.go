package v1

import (
	"encoding/json"
	"net/http"

	"github.com/vodarr/vodarr/internal/history"
	"github.com/vodarr/vodarr/internal/library"
	"github.com/vodarr/vodarr/pkg/platform"
)

func (s *Server) listVideos(w http.ResponseWriter, r *http.Request) {
	filter := library.VideoFilter{
		Author: queryString(r, "author"),
		Limit:  queryInt(r, "limit", 50),
		Offset: queryInt(r, "offset", 0),
	}
	if platformStr := queryString(r, "platform"); platformStr != nil {
		p := platform.Platform(*platformStr)
		filter.Platform = &p
	}

	videos, total, err := s.deps.Library.ListVideos(filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "STORAGE_ERROR", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, videosToResponse(videos, total, filter.Limit, filter.Offset))
}

func videosToResponse(videos []*library.Video, total, limit, offset int) listVideosResponse {
	resp := listVideosResponse{
		Items:  make([]videoResponse, len(videos)),
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}
	for i, v := range videos {
		resp.Items[i] = videoToResponse(v)
	}
	return resp
}

func videoToResponse(v *library.Video) videoResponse {
	return videoResponse{
		ID:           v.ID,
		SourceID:     v.SourceID,
		Platform:     string(v.Platform),
		Title:        v.Title,
		Author:       v.Author,
		SourceURL:    v.SourceURL,
		FilePath:     v.FilePath,
		DurationSecs: v.DurationSecs,
		DownloadedAt: v.DownloadedAt,
	}
}

// deleteVideo removes a video from the library and records the removal in
// history so the downloader will fetch it again if it reappears upstream.
func (s *Server) deleteVideo(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	v, err := s.deps.Library.GetVideo(id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if err := s.deps.Library.DeleteVideo(id); err != nil {
		writeDomainError(w, err)
		return
	}

	item := &history.Item{
		Title:     v.Title,
		Author:    v.Author,
		SourceURL: v.SourceURL,
		Status:    history.StatusDeleted,
		VideoID:   &v.ID,
	}
	if err := s.deps.History.Record(item); err != nil {
		s.logger.Error("recording history failed", "video_id", id, "error", err)
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listCollections(w http.ResponseWriter, r *http.Request) {
	cols, err := s.deps.Library.ListCollections()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "STORAGE_ERROR", err.Error())
		return
	}

	resp := make([]collectionResponse, len(cols))
	for i, c := range cols {
		resp[i] = collectionToResponse(c)
	}
	writeJSON(w, http.StatusOK, resp)
}

func collectionToResponse(c *library.Collection) collectionResponse {
	return collectionResponse{
		ID:         c.ID,
		Name:       c.Name,
		VideoCount: c.VideoCount,
		CreatedAt:  c.CreatedAt,
	}
}

func (s *Server) createCollection(w http.ResponseWriter, r *http.Request) {
	var req createCollectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "INVALID_INPUT", "name is required")
		return
	}

	c, err := s.deps.Library.CreateCollection(req.Name)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, collectionToResponse(c))
}

func (s *Server) listCollectionVideos(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := s.deps.Library.GetCollection(id); err != nil {
		writeDomainError(w, err)
		return
	}

	filter := library.VideoFilter{
		CollectionID: &id,
		Limit:        queryInt(r, "limit", 50),
		Offset:       queryInt(r, "offset", 0),
	}
	videos, total, err := s.deps.Library.ListVideos(filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "STORAGE_ERROR", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, videosToResponse(videos, total, filter.Limit, filter.Offset))
}

func (s *Server) addCollectionVideo(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	videoID := r.PathValue("videoID")

	if _, err := s.deps.Library.GetCollection(id); err != nil {
		writeDomainError(w, err)
		return
	}
	if _, err := s.deps.Library.GetVideo(videoID); err != nil {
		writeDomainError(w, err)
		return
	}

	if err := s.deps.Library.AddToCollection(id, videoID); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) removeCollectionVideo(w http.ResponseWriter, r *http.Request) {
	if err := s.deps.Library.RemoveFromCollection(r.PathValue("id"), r.PathValue("videoID")); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
