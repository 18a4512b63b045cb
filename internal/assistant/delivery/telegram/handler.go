package telegram

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"dentistry-assistant/internal/activity"
	"dentistry-assistant/internal/model"
	pkgLog "dentistry-assistant/pkg/log"
	pkgResponse "dentistry-assistant/pkg/response"
	pkgTelegram "dentistry-assistant/pkg/telegram"
)

type handler struct {
	l    pkgLog.Logger
	host *activity.ActivityHandler
	bot  Messenger
	self pkgTelegram.User
}

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// The turn runs inline; the webhook is registered with max_connections=1 so
// updates for the bot are processed one at a time.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := context.WithValue(c.Request.Context(), pkgLog.TraceIDKey, uuid.NewString())

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	a, ok := toActivity(update.Message, h.self)
	if !ok {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	tc := activity.NewTurnContext(a, activity.SenderFunc(h.send))
	if err := h.host.Run(ctx, tc); err != nil {
		// Nothing is sent to the user. Telegram still gets a 200 so it does not redeliver.
		h.l.Errorf(ctx, "telegram handler: update=%d chat=%s: %v", update.UpdateID, a.Conversation.ID, err)
		pkgResponse.OK(c, map[string]string{"status": "failed"})
		return
	}

	pkgResponse.OK(c, map[string]any{"status": "processed", "replies": tc.Responses()})
}

func (h *handler) send(ctx context.Context, reply model.Activity) error {
	chatID, err := strconv.ParseInt(reply.Conversation.ID, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidChatID, reply.Conversation.ID)
	}
	return h.bot.SendMessage(ctx, chatID, reply.Text)
}
