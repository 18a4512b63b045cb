package assistant

import "errors"

// Domain-specific errors for the assistant package.
var (
	ErrEmptyText        = errors.New("message text is empty")
	ErrMissingQnA       = errors.New("qna repository is not configured")
	ErrMissingIntent    = errors.New("intent repository is not configured")
	ErrMissingScheduler = errors.New("scheduler repository is not configured")
)
