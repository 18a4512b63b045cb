package http

import (
	"github.com/gin-gonic/gin"

	"dentistry-assistant/internal/activity"
	pkgLog "dentistry-assistant/pkg/log"
)

// Handler is the Bot Framework style messaging endpoint.
type Handler interface {
	HandleMessages(c *gin.Context)
}

// New creates the HTTP delivery handler.
func New(l pkgLog.Logger, host *activity.ActivityHandler) Handler {
	return &handler{l: l, host: host}
}
