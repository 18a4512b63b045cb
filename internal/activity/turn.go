package activity

import (
	"context"
	"time"

	"dentistry-assistant/internal/model"
)

// TurnContext carries one inbound activity and the means to reply to it.
type TurnContext struct {
	Activity  model.Activity
	sender    Sender
	responses int
}

// NewTurnContext builds a turn for a delivered through s.
func NewTurnContext(a model.Activity, s Sender) *TurnContext {
	return &TurnContext{Activity: a, sender: s}
}

// SendActivity replies with a plain text message.
func (tc *TurnContext) SendActivity(ctx context.Context, text string) error {
	return tc.Send(ctx, tc.reply(text))
}

// SendActivityTo sends text addressed to a specific participant of the conversation.
func (tc *TurnContext) SendActivityTo(ctx context.Context, text string, to model.ChannelAccount) error {
	reply := tc.reply(text)
	reply.Recipient = to
	return tc.Send(ctx, reply)
}

// Send delivers a fully built outbound activity.
func (tc *TurnContext) Send(ctx context.Context, reply model.Activity) error {
	if tc.sender == nil {
		return ErrNoSender
	}
	if err := tc.sender.SendActivity(ctx, reply); err != nil {
		return err
	}
	tc.responses++
	return nil
}

// Responded reports whether anything was sent during this turn.
func (tc *TurnContext) Responded() bool {
	return tc.responses > 0
}

// Responses is the number of activities sent during this turn.
func (tc *TurnContext) Responses() int {
	return tc.responses
}

func (tc *TurnContext) reply(text string) model.Activity {
	in := tc.Activity
	return model.Activity{
		Type:         model.ActivityTypeMessage,
		ChannelID:    in.ChannelID,
		Conversation: in.Conversation,
		From:         in.Recipient,
		Recipient:    in.From,
		Text:         text,
		Speak:        text,
		ReplyToID:    in.ID,
		Timestamp:    time.Now().UTC(),
	}
}
