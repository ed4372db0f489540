package main

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientStatus_Success(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/api/v1/status").
		ExpectGET().
		RespondJSON(StatusResponse{
			Status:          "ok",
			Version:         "1.0.0",
			Subscriptions:   4,
			ActiveTasks:     1,
			ActiveDownloads: 2,
		}).
		Build()
	defer srv.Close()

	client := NewClient(srv.URL)
	status, err := client.Status()
	require.NoError(t, err)
	assert.Equal(t, "ok", status.Status)
	assert.Equal(t, "1.0.0", status.Version)
	assert.Equal(t, 4, status.Subscriptions)
	assert.Equal(t, 1, status.ActiveTasks)
	assert.Equal(t, 2, status.ActiveDownloads)
}

func TestClientStatus_ServerError(t *testing.T) {
	srv := newMockServer(t).
		RespondError(http.StatusInternalServerError, "internal server error").
		Build()
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Status()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
	assert.Contains(t, err.Error(), "internal server error")
}

func TestClientStatus_ConnectionError(t *testing.T) {
	// Create a server and immediately close it to simulate connection error
	srv := newMockServer(t).Build()
	srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Status()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "request failed")
}

func TestClientStatus_InvalidJSON(t *testing.T) {
	srv := newMockServer(t).
		Handler(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("not valid json"))
		}).
		Build()
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Status()
	require.Error(t, err)
}

func TestClientStatus_EmptyResponse(t *testing.T) {
	srv := newMockServer(t).
		RespondJSON(StatusResponse{}).
		Build()
	defer srv.Close()

	client := NewClient(srv.URL)
	status, err := client.Status()
	require.NoError(t, err)
	assert.Empty(t, status.Status)
	assert.Empty(t, status.Version)
}

func TestClientVerify_Success(t *testing.T) {
	resp := VerifyResponse{
		Checked: 5,
		Passed:  4,
		Problems: []VerifyProblem{
			{
				VideoID: "vid-1",
				Title:   "Missing Lecture",
				Path:    "/downloads/missing.mp4",
				Issue:   "File not found on disk",
				Likely:  "The file was manually deleted or moved",
				Fixes:   []string{"vodarr download https://youtu.be/abc", "vodarr videos rm vid-1"},
			},
		},
	}
	resp.Connections.YtDlp = true
	resp.Connections.YtDlpVersion = "2025.08.11"

	srv := newMockServer(t).
		ExpectPath("/api/v1/verify").
		ExpectGET().
		RespondJSON(resp).
		Build()
	defer srv.Close()

	client := NewClient(srv.URL)
	result, err := client.Verify("")
	require.NoError(t, err)

	assert.True(t, result.Connections.YtDlp)
	assert.Equal(t, "2025.08.11", result.Connections.YtDlpVersion)
	assert.Equal(t, 5, result.Checked)
	assert.Equal(t, 4, result.Passed)

	require.Len(t, result.Problems, 1)
	prob := result.Problems[0]
	assert.Equal(t, "vid-1", prob.VideoID)
	assert.Equal(t, "Missing Lecture", prob.Title)
	assert.Equal(t, "File not found on disk", prob.Issue)
	assert.Len(t, prob.Fixes, 2)
}

func TestClientVerify_WithID(t *testing.T) {
	var receivedPath string

	srv := newMockServer(t).
		ExpectGET().
		Handler(func(w http.ResponseWriter, r *http.Request) {
			receivedPath = r.URL.String()
			respondJSON(t, w, VerifyResponse{Checked: 1, Passed: 1})
		}).
		Build()
	defer srv.Close()

	client := NewClient(srv.URL)
	result, err := client.Verify("vid-123")
	require.NoError(t, err)

	assert.Equal(t, "/api/v1/verify?id=vid-123", receivedPath)
	assert.Equal(t, 1, result.Checked)
	assert.Equal(t, 1, result.Passed)
	assert.Empty(t, result.Problems)
}
