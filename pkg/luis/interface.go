package luis

import "context"

// ILUIS defines the intent recognition call.
// Implementations are safe for concurrent use.
type ILUIS interface {
	Predict(ctx context.Context, query string) (*PredictionResponse, error)
}
