package telegram

import "errors"

// Errors returned by the Telegram transport.
var (
	ErrInvalidChatID = errors.New("telegram: conversation id is not a chat id")
)
