package telegram

import (
	"strconv"
	"strings"
	"time"

	"dentistry-assistant/internal/model"
	pkgTelegram "dentistry-assistant/pkg/telegram"
)

const (
	channelID    = "telegram"
	startCommand = "/start"
)

// toActivity maps a Telegram message onto an activity. Messages that carry
// neither text nor new members are skipped. A private /start counts as the
// user joining, so first contact gets the welcome instead of a routed answer.
func toActivity(msg *pkgTelegram.Message, self pkgTelegram.User) (model.Activity, bool) {
	if msg == nil || msg.Chat == nil {
		return model.Activity{}, false
	}

	a := model.Activity{
		ID:        strconv.FormatInt(msg.MessageID, 10),
		ChannelID: channelID,
		Conversation: model.ConversationAccount{
			ID:      strconv.FormatInt(msg.Chat.ID, 10),
			IsGroup: msg.Chat.IsGroup(),
		},
		Recipient: account(self),
		Timestamp: time.Unix(msg.Date, 0).UTC(),
	}
	if msg.From != nil {
		a.From = account(*msg.From)
	}

	switch {
	case len(msg.NewChatMembers) > 0:
		a.Type = model.ActivityTypeConversationUpdate
		for _, u := range msg.NewChatMembers {
			a.MembersAdded = append(a.MembersAdded, account(u))
		}
	case isStart(msg):
		a.Type = model.ActivityTypeConversationUpdate
		a.MembersAdded = []model.ChannelAccount{a.From}
	case strings.TrimSpace(msg.Text) != "":
		a.Type = model.ActivityTypeMessage
		a.Text = msg.Text
	default:
		return model.Activity{}, false
	}
	return a, true
}

func isStart(msg *pkgTelegram.Message) bool {
	return msg.From != nil && !msg.Chat.IsGroup() && strings.TrimSpace(msg.Text) == startCommand
}

func account(u pkgTelegram.User) model.ChannelAccount {
	name := u.Username
	if name == "" {
		name = strings.TrimSpace(u.FirstName + " " + u.LastName)
	}
	return model.ChannelAccount{ID: strconv.FormatInt(u.ID, 10), Name: name}
}
