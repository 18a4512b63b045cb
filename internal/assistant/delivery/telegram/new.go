package telegram

import (
	"context"

	"github.com/gin-gonic/gin"

	"dentistry-assistant/internal/activity"
	pkgLog "dentistry-assistant/pkg/log"
	pkgTelegram "dentistry-assistant/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// Messenger sends text back to a Telegram chat. *pkgTelegram.Bot satisfies it.
type Messenger interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

// New creates a Telegram delivery handler. self is the bot account returned by getMe.
func New(l pkgLog.Logger, host *activity.ActivityHandler, bot Messenger, self pkgTelegram.User) Handler {
	return &handler{
		l:    l,
		host: host,
		bot:  bot,
		self: self,
	}
}
