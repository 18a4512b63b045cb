package repository

import (
	"context"

	"dentistry-assistant/internal/assistant"
)

// QnARepository answers free-form questions from the knowledge base.
type QnARepository interface {
	// GetAnswers returns ranked candidates; an empty slice means no match.
	GetAnswers(ctx context.Context, question string) ([]assistant.Answer, error)
}

// IntentRepository classifies an utterance.
type IntentRepository interface {
	Recognize(ctx context.Context, utterance string) (assistant.IntentPrediction, error)
}

// SchedulerRepository books appointments and reports open slots.
// Both methods return the user-facing text.
type SchedulerRepository interface {
	GetAvailability(ctx context.Context) (string, error)
	ScheduleAppointment(ctx context.Context, timeText string) (string, error)
}
