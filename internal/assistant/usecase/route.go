package usecase

import (
	"context"
	"fmt"
	"strings"

	"dentistry-assistant/internal/assistant"
	"dentistry-assistant/internal/model"
)

// Route answers one message. The knowledge base and the intent service are both
// consulted, in that order, before any decision is made.
func (uc *implUseCase) Route(ctx context.Context, sc model.Scope, input assistant.RouteInput) (assistant.Reply, error) {
	if strings.TrimSpace(input.Text) == "" {
		return assistant.Reply{}, assistant.ErrEmptyText
	}

	uc.l.Infof(ctx, "Route: user=%s channel=%s text=%q", sc.UserID, sc.ChannelID, input.Text)

	answers, err := uc.qna.GetAnswers(ctx, input.Text)
	if err != nil {
		return assistant.Reply{}, fmt.Errorf("get answers: %w", err)
	}

	prediction, err := uc.intent.Recognize(ctx, input.Text)
	if err != nil {
		return assistant.Reply{}, fmt.Errorf("recognize intent: %w", err)
	}

	reply, err := uc.decide(ctx, answers, prediction)
	if err != nil {
		return assistant.Reply{}, err
	}

	uc.metrics.ObserveRoute(string(reply.Route))
	uc.l.Infof(ctx, "Route: user=%s route=%s top_intent=%s score=%.2f answers=%d",
		sc.UserID, reply.Route, prediction.TopIntent, prediction.TopScore(), len(answers))
	return reply, nil
}

func (uc *implUseCase) decide(ctx context.Context, answers []assistant.Answer, p assistant.IntentPrediction) (assistant.Reply, error) {
	if timeEntity, ok := wantsSchedule(p); ok {
		text, err := uc.scheduler.ScheduleAppointment(ctx, timeEntity.Text)
		if err != nil {
			return assistant.Reply{}, fmt.Errorf("schedule appointment: %w", err)
		}
		return assistant.Reply{Text: text, Route: assistant.RouteSchedule}, nil
	}

	if wantsAvailability(p) {
		text, err := uc.scheduler.GetAvailability(ctx)
		if err != nil {
			return assistant.Reply{}, fmt.Errorf("get availability: %w", err)
		}
		return assistant.Reply{Text: text, Route: assistant.RouteAvailability}, nil
	}

	if len(answers) > 0 {
		return assistant.Reply{Text: answers[0].Text, Route: assistant.RouteQnA}, nil
	}

	return assistant.Reply{Text: assistant.FallbackText, Route: assistant.RouteFallback}, nil
}

// wantsSchedule needs a confident ScheduleAppointment intent and a time to book.
// Without a time the message falls through to the remaining rules.
func wantsSchedule(p assistant.IntentPrediction) (assistant.EntityInstance, bool) {
	if !confident(p, assistant.IntentScheduleAppointment) {
		return assistant.EntityInstance{}, false
	}
	return p.FirstEntity(assistant.EntityTime)
}

func wantsAvailability(p assistant.IntentPrediction) bool {
	return confident(p, assistant.IntentGetAvailability)
}

func confident(p assistant.IntentPrediction, intent string) bool {
	return p.TopIntent == intent && p.Score(intent) > assistant.IntentThreshold
}
