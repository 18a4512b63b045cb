package usecase

import (
	"context"

	"dentistry-assistant/internal/assistant"
	"dentistry-assistant/internal/model"
)

// Greet welcomes each newly added member other than the bot.
func (uc *implUseCase) Greet(ctx context.Context, sc model.Scope, input assistant.GreetInput) ([]assistant.Reply, error) {
	replies := make([]assistant.Reply, 0, len(input.MembersAdded))
	for _, member := range input.MembersAdded {
		if member.ID == input.Recipient.ID {
			continue
		}
		to := member
		replies = append(replies, assistant.Reply{
			Text:      assistant.WelcomeText,
			Route:     assistant.RouteWelcome,
			Recipient: &to,
		})
		uc.metrics.ObserveRoute(string(assistant.RouteWelcome))
	}

	uc.l.Infof(ctx, "Greet: channel=%s added=%d welcomed=%d", sc.ChannelID, len(input.MembersAdded), len(replies))
	return replies, nil
}
