package events

// Task event types
const (
	EventTaskCreated   = "task.created"
	EventTaskCompleted = "task.completed"
	EventTaskCancelled = "task.cancelled"
)

// TaskCreated is emitted when a backlog download task is queued.
type TaskCreated struct {
	BaseEvent
	Author    string `json:"author"`
	AuthorURL string `json:"author_url"`
	Platform  string `json:"platform"`
}

// TaskCompleted is emitted when a backlog task drains its video list.
type TaskCompleted struct {
	BaseEvent
	Downloaded int64 `json:"downloaded"`
	Skipped    int64 `json:"skipped"`
	Failed     int64 `json:"failed"`
}

// TaskCancelled is emitted when a backlog task is cancelled, either by the
// user or by a fatal discovery failure.
type TaskCancelled struct {
	BaseEvent
	Reason string `json:"reason,omitempty"`
}
