package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Client wraps HTTP calls to the vodarr server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new vodarr API client.
func NewClient(serverURL string) *Client {
	return &Client{
		baseURL: serverURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) get(path string, result any) error {
	resp, err := c.httpClient.Get(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server error %d: %s", resp.StatusCode, string(body))
	}

	return json.NewDecoder(resp.Body).Decode(result)
}

func (c *Client) post(path string, body any, result any) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	resp, err := c.httpClient.Post(c.baseURL+path, "application/json", bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted, http.StatusNoContent:
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server error %d: %s", resp.StatusCode, string(respBody))
	}

	if result != nil && resp.StatusCode != http.StatusNoContent {
		return json.NewDecoder(resp.Body).Decode(result)
	}
	return nil
}

func (c *Client) put(path string, body any, result any) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	req, err := http.NewRequest(http.MethodPut, c.baseURL+path, bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("request creation failed: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server error %d: %s", resp.StatusCode, string(body))
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}
	return nil
}

func (c *Client) delete(path string) error {
	req, err := http.NewRequest(http.MethodDelete, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("request creation failed: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server error %d: %s", resp.StatusCode, string(body))
	}

	return nil
}

// API response types (mirror server types)

type StatusResponse struct {
	Status          string `json:"status"`
	Version         string `json:"version"`
	Subscriptions   int    `json:"subscriptions"`
	ActiveTasks     int    `json:"activeTasks"`
	ActiveDownloads int    `json:"activeDownloads"`
}

type VerifyProblem struct {
	VideoID string   `json:"videoId,omitempty"`
	Title   string   `json:"title,omitempty"`
	Path    string   `json:"path,omitempty"`
	Issue   string   `json:"issue"`
	Likely  string   `json:"likelyCause"`
	Fixes   []string `json:"suggestedFixes"`
}

type VerifyResponse struct {
	Connections struct {
		YtDlp        bool   `json:"ytdlp"`
		YtDlpVersion string `json:"ytdlpVersion,omitempty"`
		YtDlpErr     string `json:"ytdlpError,omitempty"`
	} `json:"connections"`
	Checked  int             `json:"checked"`
	Passed   int             `json:"passed"`
	Problems []VerifyProblem `json:"problems"`
}

type SubscriptionResponse struct {
	ID                 string  `json:"id"`
	Author             string  `json:"author"`
	AuthorURL          string  `json:"authorUrl"`
	Platform           string  `json:"platform"`
	Type               string  `json:"type"`
	Interval           int64   `json:"interval"`
	LastCheck          int64   `json:"lastCheck"`
	LastVideoLink      string  `json:"lastVideoLink,omitempty"`
	LastShortVideoLink string  `json:"lastShortVideoLink,omitempty"`
	PlaylistID         string  `json:"playlistId,omitempty"`
	PlaylistTitle      string  `json:"playlistTitle,omitempty"`
	CollectionID       *string `json:"collectionId,omitempty"`
	Paused             bool    `json:"paused"`
	DownloadShorts     bool    `json:"downloadShorts"`
	DownloadCount      int64   `json:"downloadCount"`
	CreatedAt          string  `json:"createdAt"`
}

type ListSubscriptionsResponse struct {
	Items []SubscriptionResponse `json:"items"`
	Total int                    `json:"total"`
}

type AddSubscriptionRequest struct {
	URL            string  `json:"url"`
	Interval       int64   `json:"interval,omitempty"`
	Title          string  `json:"title,omitempty"`
	DownloadShorts bool    `json:"downloadShorts,omitempty"`
	CollectionID   *string `json:"collectionId,omitempty"`
}

type TaskResponse struct {
	ID                string  `json:"id"`
	SubscriptionID    *string `json:"subscriptionId,omitempty"`
	CollectionID      *string `json:"collectionId,omitempty"`
	AuthorURL         string  `json:"authorUrl"`
	Author            string  `json:"author"`
	Platform          string  `json:"platform"`
	Status            string  `json:"status"`
	TotalVideos       int64   `json:"totalVideos"`
	DownloadedCount   int64   `json:"downloadedCount"`
	SkippedCount      int64   `json:"skippedCount"`
	FailedCount       int64   `json:"failedCount"`
	CurrentVideoIndex int64   `json:"currentVideoIndex"`
	Error             string  `json:"error,omitempty"`
	CreatedAt         string  `json:"createdAt"`
	UpdatedAt         string  `json:"updatedAt"`
	CompletedAt       *string `json:"completedAt,omitempty"`
}

type ListTasksResponse struct {
	Items  []TaskResponse `json:"items"`
	Total  int            `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

type CreateTaskRequest struct {
	URL            string  `json:"url"`
	Author         string  `json:"author,omitempty"`
	SubscriptionID *string `json:"subscriptionId,omitempty"`
	CollectionID   *string `json:"collectionId,omitempty"`
}

type HistoryItemResponse struct {
	ID             string  `json:"id"`
	Title          string  `json:"title,omitempty"`
	Author         string  `json:"author,omitempty"`
	SourceURL      string  `json:"sourceUrl"`
	Status         string  `json:"status"`
	Error          string  `json:"error,omitempty"`
	VideoID        *string `json:"videoId,omitempty"`
	SubscriptionID *string `json:"subscriptionId,omitempty"`
	TaskID         *string `json:"taskId,omitempty"`
	FinishedAt     string  `json:"finishedAt"`
}

type ListHistoryResponse struct {
	Items  []HistoryItemResponse `json:"items"`
	Total  int                   `json:"total"`
	Limit  int                   `json:"limit"`
	Offset int                   `json:"offset"`
}

type VideoResponse struct {
	ID           string  `json:"id"`
	SourceID     string  `json:"sourceId"`
	Platform     string  `json:"platform"`
	Title        string  `json:"title"`
	Author       string  `json:"author"`
	SourceURL    string  `json:"sourceUrl"`
	FilePath     string  `json:"filePath,omitempty"`
	DurationSecs float64 `json:"durationSecs,omitempty"`
	DownloadedAt string  `json:"downloadedAt"`
}

type ListVideosResponse struct {
	Items  []VideoResponse `json:"items"`
	Total  int             `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

type CollectionResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	VideoCount int    `json:"videoCount"`
	CreatedAt  string `json:"createdAt"`
}

type ActiveDownload struct {
	ID             int64  `json:"id"`
	URL            string `json:"url"`
	SubscriptionID string `json:"subscriptionId,omitempty"`
	TaskID         string `json:"taskId,omitempty"`
	StartedAt      string `json:"startedAt"`
}

type ListActiveDownloadsResponse struct {
	Items []ActiveDownload `json:"items"`
	Total int              `json:"total"`
}

type EventResponse struct {
	ID         int64           `json:"id"`
	EventType  string          `json:"eventType"`
	EntityType string          `json:"entityType"`
	EntityID   string          `json:"entityId"`
	Payload    json.RawMessage `json:"payload,omitempty"`
	OccurredAt string          `json:"occurredAt"`
}

type ListEventsResponse struct {
	Items []EventResponse `json:"items"`
	Total int             `json:"total"`
}

type SettingsResponse struct {
	SaveAuthorFilesToCollection bool `json:"saveAuthorFilesToCollection"`
}

// API methods

func (c *Client) Status() (*StatusResponse, error) {
	var resp StatusResponse
	if err := c.get("/api/v1/status", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Verify(videoID string) (*VerifyResponse, error) {
	path := "/api/v1/verify"
	if videoID != "" {
		path += "?id=" + url.QueryEscape(videoID)
	}
	var resp VerifyResponse
	if err := c.get(path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Subscriptions() (*ListSubscriptionsResponse, error) {
	var resp ListSubscriptionsResponse
	if err := c.get("/api/v1/subscriptions", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) AddSubscription(req AddSubscriptionRequest) (*SubscriptionResponse, error) {
	var resp SubscriptionResponse
	if err := c.post("/api/v1/subscriptions", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) RemoveSubscription(id string) error {
	return c.delete("/api/v1/subscriptions/" + url.PathEscape(id))
}

func (c *Client) PauseSubscription(id string) (*SubscriptionResponse, error) {
	var resp SubscriptionResponse
	if err := c.post("/api/v1/subscriptions/"+url.PathEscape(id)+"/pause", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) ResumeSubscription(id string) (*SubscriptionResponse, error) {
	var resp SubscriptionResponse
	if err := c.post("/api/v1/subscriptions/"+url.PathEscape(id)+"/resume", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CheckSubscriptions asks the scheduler for an immediate poll cycle.
func (c *Client) CheckSubscriptions() error {
	return c.post("/api/v1/subscriptions/check", nil, nil)
}

func (c *Client) Tasks(status, subscriptionID string, limit, offset int) (*ListTasksResponse, error) {
	params := url.Values{}
	if status != "" {
		params.Set("status", status)
	}
	if subscriptionID != "" {
		params.Set("subscriptionId", subscriptionID)
	}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("offset", strconv.Itoa(offset))

	var resp ListTasksResponse
	if err := c.get("/api/v1/tasks?"+params.Encode(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) CreateTask(req CreateTaskRequest) (*TaskResponse, error) {
	var resp TaskResponse
	if err := c.post("/api/v1/tasks", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Task(id string) (*TaskResponse, error) {
	var resp TaskResponse
	if err := c.get("/api/v1/tasks/"+url.PathEscape(id), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) PauseTask(id string) (*TaskResponse, error) {
	var resp TaskResponse
	if err := c.post("/api/v1/tasks/"+url.PathEscape(id)+"/pause", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) ResumeTask(id string) (*TaskResponse, error) {
	var resp TaskResponse
	if err := c.post("/api/v1/tasks/"+url.PathEscape(id)+"/resume", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) CancelTask(id, reason string) (*TaskResponse, error) {
	req := map[string]any{}
	if reason != "" {
		req["reason"] = reason
	}
	var resp TaskResponse
	if err := c.post("/api/v1/tasks/"+url.PathEscape(id)+"/cancel", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) TaskEvents(id string) (*ListEventsResponse, error) {
	var resp ListEventsResponse
	if err := c.get("/api/v1/tasks/"+url.PathEscape(id)+"/events", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) History(status, query string, limit, offset int) (*ListHistoryResponse, error) {
	params := url.Values{}
	if status != "" {
		params.Set("status", status)
	}
	if query != "" {
		params.Set("q", query)
	}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("offset", strconv.Itoa(offset))

	var resp ListHistoryResponse
	if err := c.get("/api/v1/history?"+params.Encode(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Videos(author, platformName string, limit, offset int) (*ListVideosResponse, error) {
	params := url.Values{}
	if author != "" {
		params.Set("author", author)
	}
	if platformName != "" {
		params.Set("platform", platformName)
	}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("offset", strconv.Itoa(offset))

	var resp ListVideosResponse
	if err := c.get("/api/v1/videos?"+params.Encode(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) RemoveVideo(id string) error {
	return c.delete("/api/v1/videos/" + url.PathEscape(id))
}

func (c *Client) Collections() ([]CollectionResponse, error) {
	var resp []CollectionResponse
	if err := c.get("/api/v1/collections", &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) CreateCollection(name string) (*CollectionResponse, error) {
	req := map[string]any{"name": name}
	var resp CollectionResponse
	if err := c.post("/api/v1/collections", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) CollectionVideos(id string, limit, offset int) (*ListVideosResponse, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("offset", strconv.Itoa(offset))

	var resp ListVideosResponse
	if err := c.get("/api/v1/collections/"+url.PathEscape(id)+"/videos?"+params.Encode(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) AddCollectionVideo(collectionID, videoID string) error {
	path := "/api/v1/collections/" + url.PathEscape(collectionID) + "/videos/" + url.PathEscape(videoID)
	return c.post(path, nil, nil)
}

func (c *Client) RemoveCollectionVideo(collectionID, videoID string) error {
	path := "/api/v1/collections/" + url.PathEscape(collectionID) + "/videos/" + url.PathEscape(videoID)
	return c.delete(path)
}

func (c *Client) Download(videoURL string) (*VideoResponse, error) {
	req := map[string]any{"url": videoURL}
	var resp VideoResponse
	if err := c.post("/api/v1/downloads", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) ActiveDownloads() (*ListActiveDownloadsResponse, error) {
	var resp ListActiveDownloadsResponse
	if err := c.get("/api/v1/downloads/active", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Events(limit int, since int64) (*ListEventsResponse, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	if since > 0 {
		params.Set("since", strconv.FormatInt(since, 10))
	}

	var resp ListEventsResponse
	if err := c.get("/api/v1/events?"+params.Encode(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Settings() (*SettingsResponse, error) {
	var resp SettingsResponse
	if err := c.get("/api/v1/settings", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) UpdateSettings(req SettingsResponse) (*SettingsResponse, error) {
	var resp SettingsResponse
	if err := c.put("/api/v1/settings", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
