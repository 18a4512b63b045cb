package activity

import (
	"context"

	"dentistry-assistant/internal/model"
)

// Event is a named category handlers register against.
type Event string

const (
	EventMessage      Event = "message"
	EventMembersAdded Event = "membersAdded"
)

// NextFunc continues the pipeline with the next registered handler.
type NextFunc func(ctx context.Context) error

// Handler observes one activity. Call next to let later handlers see it too.
type Handler func(ctx context.Context, tc *TurnContext, next NextFunc) error

// Sender delivers outbound activities back to the channel.
type Sender interface {
	SendActivity(ctx context.Context, reply model.Activity) error
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(ctx context.Context, reply model.Activity) error

// SendActivity calls f.
func (f SenderFunc) SendActivity(ctx context.Context, reply model.Activity) error {
	return f(ctx, reply)
}
