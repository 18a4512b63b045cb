package bot

import (
	"context"
	"fmt"

	"dentistry-assistant/internal/activity"
	"dentistry-assistant/internal/assistant"
	"dentistry-assistant/internal/model"
)

// onMessage sends exactly one reply, or nothing when routing fails.
func (h *handler) onMessage(ctx context.Context, tc *activity.TurnContext, next activity.NextFunc) error {
	sc := model.ScopeFromActivity(tc.Activity)

	reply, err := h.uc.Route(ctx, sc, assistant.RouteInput{Text: tc.Activity.Text})
	if err != nil {
		h.l.Errorf(ctx, "bot.onMessage: user=%s: %v", sc.UserID, err)
		return fmt.Errorf("route message: %w", err)
	}

	if err := tc.SendActivity(ctx, reply.Text); err != nil {
		return fmt.Errorf("send reply: %w", err)
	}
	return next(ctx)
}

func (h *handler) onMembersAdded(ctx context.Context, tc *activity.TurnContext, next activity.NextFunc) error {
	sc := model.ScopeFromActivity(tc.Activity)

	replies, err := h.uc.Greet(ctx, sc, assistant.GreetInput{
		Recipient:    tc.Activity.Recipient,
		MembersAdded: tc.Activity.MembersAdded,
	})
	if err != nil {
		h.l.Errorf(ctx, "bot.onMembersAdded: %v", err)
		return fmt.Errorf("greet members: %w", err)
	}

	for _, r := range replies {
		if r.Recipient == nil {
			err = tc.SendActivity(ctx, r.Text)
		} else {
			err = tc.SendActivityTo(ctx, r.Text, *r.Recipient)
		}
		if err != nil {
			return fmt.Errorf("send welcome: %w", err)
		}
	}
	return next(ctx)
}
