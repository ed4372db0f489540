package events

// Download event types
const (
	EventVideoDownloaded = "video.downloaded"
	EventDownloadFailed  = "download.failed"
	EventDownloadSkipped = "download.skipped"
)

// VideoDownloaded is emitted when a video lands in the library.
type VideoDownloaded struct {
	BaseEvent
	Title          string `json:"title"`
	Author         string `json:"author"`
	SourceURL      string `json:"source_url"`
	FilePath       string `json:"file_path"`
	SubscriptionID string `json:"subscription_id,omitempty"`
	TaskID         string `json:"task_id,omitempty"`
}

// DownloadFailed is emitted when a download attempt fails.
type DownloadFailed struct {
	BaseEvent
	SourceURL      string `json:"source_url"`
	Reason         string `json:"reason"`
	SubscriptionID string `json:"subscription_id,omitempty"`
	TaskID         string `json:"task_id,omitempty"`
}

// DownloadSkipped is emitted when a video is skipped because the library
// already has it.
type DownloadSkipped struct {
	BaseEvent
	SourceURL string `json:"source_url"`
	TaskID    string `json:"task_id,omitempty"`
}
