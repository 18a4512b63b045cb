package activity

import (
	"context"

	"dentistry-assistant/internal/model"
)

// ActivityHandler dispatches activities to the handlers registered for their event.
// Register everything before the first Run; the table is read-only afterwards.
type ActivityHandler struct {
	handlers map[Event][]Handler
}

// New creates an empty ActivityHandler.
func New() *ActivityHandler {
	return &ActivityHandler{handlers: make(map[Event][]Handler)}
}

// On registers h for event. Handlers run in registration order.
func (ah *ActivityHandler) On(event Event, h Handler) *ActivityHandler {
	ah.handlers[event] = append(ah.handlers[event], h)
	return ah
}

// OnMessage registers h for message activities.
func (ah *ActivityHandler) OnMessage(h Handler) *ActivityHandler {
	return ah.On(EventMessage, h)
}

// OnMembersAdded registers h for conversation updates that add participants.
func (ah *ActivityHandler) OnMembersAdded(h Handler) *ActivityHandler {
	return ah.On(EventMembersAdded, h)
}

// Run dispatches tc to its event's handler chain. Activities without a
// registered event are ignored.
func (ah *ActivityHandler) Run(ctx context.Context, tc *TurnContext) error {
	event, ok := EventOf(tc.Activity)
	if !ok {
		return nil
	}
	return ah.emit(ctx, tc, ah.handlers[event], 0)
}

func (ah *ActivityHandler) emit(ctx context.Context, tc *TurnContext, chain []Handler, i int) error {
	if i >= len(chain) {
		return nil
	}
	return chain[i](ctx, tc, func(ctx context.Context) error {
		return ah.emit(ctx, tc, chain, i+1)
	})
}

// EventOf maps an activity to its event category.
func EventOf(a model.Activity) (Event, bool) {
	switch {
	case a.IsMessage():
		return EventMessage, true
	case a.HasMembersAdded():
		return EventMembersAdded, true
	}
	return "", false
}
