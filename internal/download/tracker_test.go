package download

import "testing"

func TestTracker_BeginEndActive(t *testing.T) {
	tr := NewTracker()

	a := tr.Begin(Request{URL: "https://www.youtube.com/watch?v=a", SubscriptionID: "sub-1"})
	b := tr.Begin(Request{URL: "https://www.youtube.com/watch?v=b", TaskID: "task-1"})

	active := tr.Active()
	if len(active) != 2 {
		t.Fatalf("Active returned %d entries, want 2", len(active))
	}
	if active[0].ID != a.ID || active[1].ID != b.ID {
		t.Errorf("Active order = %d, %d; want oldest first %d, %d",
			active[0].ID, active[1].ID, a.ID, b.ID)
	}
	if active[0].SubscriptionID != "sub-1" {
		t.Errorf("SubscriptionID = %q, want sub-1", active[0].SubscriptionID)
	}
	if active[1].TaskID != "task-1" {
		t.Errorf("TaskID = %q, want task-1", active[1].TaskID)
	}

	tr.End(a)
	active = tr.Active()
	if len(active) != 1 {
		t.Fatalf("Active after End returned %d entries, want 1", len(active))
	}
	if active[0].ID != b.ID {
		t.Errorf("remaining entry = %d, want %d", active[0].ID, b.ID)
	}

	tr.End(b)
	if len(tr.Active()) != 0 {
		t.Error("tracker not empty after all downloads ended")
	}
}

func TestTracker_EndIsIdempotent(t *testing.T) {
	tr := NewTracker()
	a := tr.Begin(Request{URL: "https://www.youtube.com/watch?v=a"})
	tr.End(a)
	tr.End(a)
	if len(tr.Active()) != 0 {
		t.Error("tracker not empty")
	}
}
