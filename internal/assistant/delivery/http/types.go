package http

import "dentistry-assistant/internal/model"

// MessagesResponse carries the activities produced during one turn.
type MessagesResponse struct {
	Activities []model.Activity `json:"activities"`
}
