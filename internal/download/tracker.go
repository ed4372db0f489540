package download

import (
	"sort"
	"sync"
	"time"
)

// Active is one in-flight download.
type Active struct {
	ID             int64     `json:"id"`
	URL            string    `json:"url"`
	SubscriptionID string    `json:"subscriptionId,omitempty"`
	TaskID         string    `json:"taskId,omitempty"`
	StartedAt      time.Time `json:"startedAt"`
}

// Tracker keeps the set of in-flight downloads for the status API. Entries
// exist only for the duration of the download; history is the durable record.
type Tracker struct {
	mu     sync.Mutex
	nextID int64
	active map[int64]*Active
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{active: make(map[int64]*Active)}
}

// Begin registers an in-flight download and returns its entry.
func (t *Tracker) Begin(req Request) *Active {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.nextID++
	a := &Active{
		ID:             t.nextID,
		URL:            req.URL,
		SubscriptionID: req.SubscriptionID,
		TaskID:         req.TaskID,
		StartedAt:      time.Now().UTC(),
	}
	t.active[a.ID] = a
	return a
}

// End removes a download from the in-flight set.
func (t *Tracker) End(a *Active) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.active, a.ID)
}

// Active returns a snapshot of in-flight downloads, oldest first.
func (t *Tracker) Active() []*Active {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]*Active, 0, len(t.active))
	for _, a := range t.active {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
