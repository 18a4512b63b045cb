package scheduler

import "context"

// IScheduler is the dentist scheduler API.
// Implementations are safe for concurrent use.
type IScheduler interface {
	// Availability returns the open time slots as reported by the backend.
	Availability(ctx context.Context) ([]string, error)
	// Schedule books an appointment at the given free-text time.
	Schedule(ctx context.Context, timeText string) error
}
