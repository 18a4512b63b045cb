package luis

import "time"

const (
	// DefaultSlot is the published slot queried when none is configured.
	DefaultSlot = "production"

	// MaxQueryLength is the longest utterance the prediction endpoint accepts.
	MaxQueryLength = 500

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 15 * time.Second

	instanceKey = "$instance"
)
