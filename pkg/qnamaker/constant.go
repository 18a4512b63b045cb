package qnamaker

import "time"

const (
	// DefaultTop is how many candidates generateAnswer returns when not configured.
	DefaultTop = 1

	// DefaultScoreThreshold matches the QnA Maker SDK default (0-1 scale).
	DefaultScoreThreshold = 0.3

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 15 * time.Second

	// noMatchID is the id QnA Maker uses for its "No good match found in KB." answer.
	noMatchID = -1
)
