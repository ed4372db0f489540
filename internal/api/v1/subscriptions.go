package v1

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/vodarr/vodarr/internal/subscription"
)

func (s *Server) listSubscriptions(w http.ResponseWriter, r *http.Request) {
	subs, err := s.deps.Subscriptions.List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "STORAGE_ERROR", err.Error())
		return
	}

	resp := listSubscriptionsResponse{
		Items: make([]subscriptionResponse, len(subs)),
		Total: len(subs),
	}
	for i, sub := range subs {
		resp.Items[i] = subscriptionToResponse(sub)
	}

	writeJSON(w, http.StatusOK, resp)
}

func subscriptionToResponse(sub *subscription.Subscription) subscriptionResponse {
	return subscriptionResponse{
		ID:                 sub.ID,
		Author:             sub.Author,
		AuthorURL:          sub.AuthorURL,
		Platform:           string(sub.Platform),
		Type:               string(sub.Type),
		Interval:           sub.Interval,
		LastCheck:          sub.LastCheck,
		LastVideoLink:      sub.LastVideoLink,
		LastShortVideoLink: sub.LastShortVideoLink,
		PlaylistID:         sub.PlaylistID,
		PlaylistTitle:      sub.PlaylistTitle,
		CollectionID:       sub.CollectionID,
		Paused:             sub.Paused,
		DownloadShorts:     sub.DownloadShorts,
		DownloadCount:      sub.DownloadCount,
		CreatedAt:          sub.CreatedAt,
	}
}

func (s *Server) addSubscription(w http.ResponseWriter, r *http.Request) {
	var req addSubscriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}
	if req.URL == "" {
		writeError(w, http.StatusBadRequest, "INVALID_INPUT", "url is required")
		return
	}

	sub, err := s.deps.Subscriptions.Subscribe(r.Context(), subscription.SubscribeRequest{
		URL:            req.URL,
		Interval:       req.Interval,
		Title:          req.Title,
		DownloadShorts: req.DownloadShorts,
		CollectionID:   req.CollectionID,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, subscriptionToResponse(sub))
}

func (s *Server) deleteSubscription(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.deps.Subscriptions.Unsubscribe(id); err != nil {
		writeError(w, http.StatusInternalServerError, "STORAGE_ERROR", err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) pauseSubscription(w http.ResponseWriter, r *http.Request) {
	s.setSubscriptionPaused(w, r, true)
}

func (s *Server) resumeSubscription(w http.ResponseWriter, r *http.Request) {
	s.setSubscriptionPaused(w, r, false)
}

func (s *Server) setSubscriptionPaused(w http.ResponseWriter, r *http.Request, paused bool) {
	id := r.PathValue("id")

	var err error
	if paused {
		err = s.deps.Subscriptions.Pause(id)
	} else {
		err = s.deps.Subscriptions.Resume(id)
	}
	if err != nil {
		writeDomainError(w, err)
		return
	}

	sub, err := s.deps.Subscriptions.Get(id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, subscriptionToResponse(sub))
}

// checkSubscriptions triggers a check cycle outside the regular cadence.
// The check runs in the background; an already-running cycle absorbs the
// request.
func (s *Server) checkSubscriptions(w http.ResponseWriter, r *http.Request) {
	go s.deps.Scheduler.Tick(context.Background())
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "check started"})
}
