package http

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"dentistry-assistant/internal/activity"
	"dentistry-assistant/internal/model"
	pkgLog "dentistry-assistant/pkg/log"
	pkgResponse "dentistry-assistant/pkg/response"
)

var errMissingType = errors.New("activity type is required")

type handler struct {
	l    pkgLog.Logger
	host *activity.ActivityHandler
}

// HandleMessages godoc
// @Summary      Deliver an activity
// @Description  Runs one turn for the posted activity and returns the replies it produced.
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        activity  body      model.Activity  true  "Inbound activity"
// @Success      200       {object}  pkgResponse.Resp{data=MessagesResponse}
// @Failure      400       {object}  pkgResponse.Resp
// @Failure      500       {object}  pkgResponse.Resp
// @Router       /api/messages [post]
func (h *handler) HandleMessages(c *gin.Context) {
	var in model.Activity
	if err := c.ShouldBindJSON(&in); err != nil {
		pkgResponse.Error(c, err, nil)
		return
	}
	if in.Type == "" {
		pkgResponse.Error(c, errMissingType, nil)
		return
	}
	if in.ID == "" {
		in.ID = uuid.NewString()
	}

	ctx := context.WithValue(c.Request.Context(), pkgLog.TraceIDKey, in.ID)

	// Replies are buffered and only returned once the whole turn succeeded.
	replies := make([]model.Activity, 0, 1)
	collect := activity.SenderFunc(func(_ context.Context, reply model.Activity) error {
		reply.ID = uuid.NewString()
		if reply.Timestamp.IsZero() {
			reply.Timestamp = time.Now().UTC()
		}
		replies = append(replies, reply)
		return nil
	})

	if err := h.host.Run(ctx, activity.NewTurnContext(in, collect)); err != nil {
		h.l.Errorf(ctx, "http handler: activity=%s type=%s: %v", in.ID, in.Type, err)
		pkgResponse.InternalError(c, err)
		return
	}

	pkgResponse.OK(c, MessagesResponse{Activities: replies})
}
