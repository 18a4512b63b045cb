package activity

import "errors"

// Errors returned while running a turn.
var (
	ErrNoSender = errors.New("activity: turn has no sender")
)
