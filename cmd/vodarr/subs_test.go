package main

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientSubscriptions_Success(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/api/v1/subscriptions").
		ExpectGET().
		RespondJSON(ListSubscriptionsResponse{
			Items: []SubscriptionResponse{
				{
					ID:            "sub-1",
					Author:        "Some Channel",
					AuthorURL:     "https://www.youtube.com/@somechannel",
					Platform:      "youtube",
					Type:          "author",
					Interval:      60,
					LastCheck:     1700000000000,
					DownloadCount: 12,
				},
				{
					ID:            "sub-2",
					Author:        "Some Channel",
					PlaylistTitle: "Conference Talks",
					Platform:      "youtube",
					Type:          "playlist",
					Interval:      1440,
					Paused:        true,
				},
			},
			Total: 2,
		}).
		Build()
	defer srv.Close()

	client := NewClient(srv.URL)
	subs, err := client.Subscriptions()
	require.NoError(t, err)

	assert.Equal(t, 2, subs.Total)
	require.Len(t, subs.Items, 2)

	assert.Equal(t, "sub-1", subs.Items[0].ID)
	assert.Equal(t, "author", subs.Items[0].Type)
	assert.Equal(t, int64(60), subs.Items[0].Interval)
	assert.Equal(t, int64(12), subs.Items[0].DownloadCount)

	assert.Equal(t, "playlist", subs.Items[1].Type)
	assert.Equal(t, "Conference Talks", subs.Items[1].PlaylistTitle)
	assert.True(t, subs.Items[1].Paused)
}

func TestClientAddSubscription_SendsRequestBody(t *testing.T) {
	var received AddSubscriptionRequest

	srv := newMockServer(t).
		ExpectPath("/api/v1/subscriptions").
		ExpectPOST().
		Handler(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			w.WriteHeader(http.StatusCreated)
			respondJSON(t, w, SubscriptionResponse{
				ID:       "sub-new",
				Author:   "Some Channel",
				Type:     "author",
				Interval: 30,
			})
		}).
		Build()
	defer srv.Close()

	collection := "col-1"
	client := NewClient(srv.URL)
	sub, err := client.AddSubscription(AddSubscriptionRequest{
		URL:            "https://www.youtube.com/@somechannel",
		Interval:       30,
		DownloadShorts: true,
		CollectionID:   &collection,
	})
	require.NoError(t, err)

	assert.Equal(t, "https://www.youtube.com/@somechannel", received.URL)
	assert.Equal(t, int64(30), received.Interval)
	assert.True(t, received.DownloadShorts)
	require.NotNil(t, received.CollectionID)
	assert.Equal(t, "col-1", *received.CollectionID)

	assert.Equal(t, "sub-new", sub.ID)
	assert.Equal(t, int64(30), sub.Interval)
}

func TestClientAddSubscription_Duplicate(t *testing.T) {
	srv := newMockServer(t).
		RespondError(http.StatusConflict, `{"error":"already subscribed","code":"DUPLICATE"}`).
		Build()
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.AddSubscription(AddSubscriptionRequest{URL: "https://www.youtube.com/@somechannel"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "409")
	assert.Contains(t, err.Error(), "DUPLICATE")
}

func TestClientRemoveSubscription(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/api/v1/subscriptions/sub-1").
		ExpectDELETE().
		RespondStatus(http.StatusNoContent).
		Build()
	defer srv.Close()

	client := NewClient(srv.URL)
	require.NoError(t, client.RemoveSubscription("sub-1"))
}

func TestClientRemoveSubscription_NotFound(t *testing.T) {
	srv := newMockServer(t).
		RespondError(http.StatusNotFound, `{"error":"subscription not found","code":"NOT_FOUND"}`).
		Build()
	defer srv.Close()

	client := NewClient(srv.URL)
	err := client.RemoveSubscription("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestClientPauseSubscription(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/api/v1/subscriptions/sub-1/pause").
		ExpectPOST().
		RespondJSON(SubscriptionResponse{ID: "sub-1", Author: "Some Channel", Paused: true}).
		Build()
	defer srv.Close()

	client := NewClient(srv.URL)
	sub, err := client.PauseSubscription("sub-1")
	require.NoError(t, err)
	assert.True(t, sub.Paused)
}

func TestClientResumeSubscription(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/api/v1/subscriptions/sub-1/resume").
		ExpectPOST().
		RespondJSON(SubscriptionResponse{ID: "sub-1", Author: "Some Channel", Paused: false}).
		Build()
	defer srv.Close()

	client := NewClient(srv.URL)
	sub, err := client.ResumeSubscription("sub-1")
	require.NoError(t, err)
	assert.False(t, sub.Paused)
}

func TestClientCheckSubscriptions_Accepted(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/api/v1/subscriptions/check").
		ExpectPOST().
		Handler(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusAccepted)
			respondJSON(t, w, map[string]string{"status": "check started"})
		}).
		Build()
	defer srv.Close()

	client := NewClient(srv.URL)
	require.NoError(t, client.CheckSubscriptions())
}

func TestClientCheckSubscriptions_SchedulerDisabled(t *testing.T) {
	srv := newMockServer(t).
		RespondError(http.StatusServiceUnavailable, `{"error":"Scheduler not configured","code":"SERVICE_UNAVAILABLE"}`).
		Build()
	defer srv.Close()

	client := NewClient(srv.URL)
	err := client.CheckSubscriptions()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestRunCheckCmd_UsesServerFlag(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/api/v1/subscriptions/check").
		ExpectPOST().
		RespondStatus(http.StatusAccepted).
		Build()
	defer srv.Close()

	restore := withServerURL(srv.URL)
	defer restore()

	require.NoError(t, runCheckCmd(checkCmd, nil))
}

func TestFormatInterval(t *testing.T) {
	tests := []struct {
		mins int64
		want string
	}{
		{30, "30m"},
		{60, "1h"},
		{90, "90m"},
		{120, "2h"},
		{1440, "24h"},
	}
	for _, tt := range tests {
		if got := formatInterval(tt.mins); got != tt.want {
			t.Errorf("formatInterval(%d) = %q, want %q", tt.mins, got, tt.want)
		}
	}
}
