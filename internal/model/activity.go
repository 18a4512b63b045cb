package model

import "time"

// ActivityType names the event category an activity belongs to.
type ActivityType string

const (
	ActivityTypeMessage            ActivityType = "message"
	ActivityTypeConversationUpdate ActivityType = "conversationUpdate"
)

// ChannelAccount identifies a participant (user or bot) on a channel.
type ChannelAccount struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// ConversationAccount identifies the conversation an activity belongs to.
type ConversationAccount struct {
	ID      string `json:"id"`
	IsGroup bool   `json:"isGroup,omitempty"`
}

// Activity is one inbound or outbound chat event.
type Activity struct {
	ID           string              `json:"id,omitempty"`
	Type         ActivityType        `json:"type"`
	ChannelID    string              `json:"channelId,omitempty"`
	Conversation ConversationAccount `json:"conversation"`
	From         ChannelAccount      `json:"from"`
	Recipient    ChannelAccount      `json:"recipient"`
	Text         string              `json:"text,omitempty"`
	Speak        string              `json:"speak,omitempty"`
	MembersAdded []ChannelAccount    `json:"membersAdded,omitempty"`
	ReplyToID    string              `json:"replyToId,omitempty"`
	Timestamp    time.Time           `json:"timestamp,omitempty"`
}

// IsMessage reports whether a is a message activity.
func (a Activity) IsMessage() bool {
	return a.Type == ActivityTypeMessage
}

// HasMembersAdded reports whether a is a conversation update that added participants.
func (a Activity) HasMembersAdded() bool {
	return a.Type == ActivityTypeConversationUpdate && len(a.MembersAdded) > 0
}
