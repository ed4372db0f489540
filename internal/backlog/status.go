package backlog

// Status tracks task state.
type Status string

const (
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// validTransitions defines allowed state transitions. Key is the "from"
// status, value is the list of valid "to" statuses.
var validTransitions = map[Status][]Status{
	StatusActive:    {StatusPaused, StatusCompleted, StatusCancelled},
	StatusPaused:    {StatusActive, StatusCancelled},
	StatusCancelled: {StatusActive}, // explicit resume restarts a cancelled task
	StatusCompleted: {},             // terminal
}

// CanTransitionTo returns true if transitioning from s to target is valid.
func (s Status) CanTransitionTo(target Status) bool {
	valid, ok := validTransitions[s]
	if !ok {
		return false
	}
	for _, v := range valid {
		if v == target {
			return true
		}
	}
	return false
}

// IsTerminal returns true if the status ends a task's run. Cancelled tasks
// stay resumable; completed tasks do not.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}
