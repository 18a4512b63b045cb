package assistant

import (
	"context"

	"dentistry-assistant/internal/model"
)

// UseCase is the conversational core of the dentistry assistant.
type UseCase interface {
	// Route answers one user message: a booking, the open slots, a knowledge-base answer, or an apology.
	// It always produces exactly one reply unless an external service fails.
	Route(ctx context.Context, sc model.Scope, input RouteInput) (Reply, error)

	// Greet welcomes every participant that joined the conversation, except the bot itself.
	Greet(ctx context.Context, sc model.Scope, input GreetInput) ([]Reply, error)
}
