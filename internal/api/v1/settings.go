package v1

import (
	"encoding/json"
	"net/http"

	"github.com/vodarr/vodarr/internal/settings"
)

func (s *Server) getSettings(w http.ResponseWriter, r *http.Request) {
	v, err := s.deps.Settings.Get()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "STORAGE_ERROR", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (s *Server) updateSettings(w http.ResponseWriter, r *http.Request) {
	var v settings.Settings
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}

	if err := s.deps.Settings.Update(&v); err != nil {
		writeError(w, http.StatusInternalServerError, "STORAGE_ERROR", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, &v)
}
