package backlog

import "errors"

var (
	// ErrNotFound indicates the task does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidTransition indicates a disallowed status change.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrStale indicates the task changed concurrently and the update was
	// not applied.
	ErrStale = errors.New("task changed concurrently")
)
