package subscription

import "errors"

var (
	// ErrNotFound indicates the subscription does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate indicates the author URL is already subscribed.
	ErrDuplicate = errors.New("already subscribed")
)
