package usecase_test

import (
	"context"
	"testing"

	"dentistry-assistant/internal/assistant"
	"dentistry-assistant/internal/assistant/usecase"
	"dentistry-assistant/internal/model"
	pkgLog "dentistry-assistant/pkg/log"
)

func TestGreet(t *testing.T) {
	uc, err := usecase.New(pkgLog.NewNop(), &mockQnARepo{}, &mockIntentRepo{}, &mockSchedulerRepo{}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bot := model.ChannelAccount{ID: "bot"}

	tests := []struct {
		name    string
		members []model.ChannelAccount
		want    []string
	}{
		{"bot and two users", []model.ChannelAccount{bot, {ID: "A"}, {ID: "B"}}, []string{"A", "B"}},
		{"only the bot", []model.ChannelAccount{bot}, nil},
		{"single user", []model.ChannelAccount{{ID: "A"}}, []string{"A"}},
		{"nobody", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			replies, err := uc.Greet(context.Background(), model.Scope{}, assistant.GreetInput{
				Recipient:    bot,
				MembersAdded: tt.members,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(replies) != len(tt.want) {
				t.Fatalf("expected %d replies, got %d", len(tt.want), len(replies))
			}
			for i, r := range replies {
				if r.Text != assistant.WelcomeText {
					t.Errorf("unexpected text %q", r.Text)
				}
				if r.Route != assistant.RouteWelcome {
					t.Errorf("unexpected route %s", r.Route)
				}
				if r.Recipient == nil || r.Recipient.ID != tt.want[i] {
					t.Errorf("reply %d addressed to %+v, want %s", i, r.Recipient, tt.want[i])
				}
			}
		})
	}
}
