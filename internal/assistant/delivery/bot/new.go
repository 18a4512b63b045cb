package bot

import (
	"dentistry-assistant/internal/activity"
	"dentistry-assistant/internal/assistant"
	pkgLog "dentistry-assistant/pkg/log"
)

type handler struct {
	l  pkgLog.Logger
	uc assistant.UseCase
}

// Register binds the message router and the welcome greeter to host.
func Register(l pkgLog.Logger, uc assistant.UseCase, host *activity.ActivityHandler) {
	h := &handler{l: l, uc: uc}
	host.OnMessage(h.onMessage)
	host.OnMembersAdded(h.onMembersAdded)
}
