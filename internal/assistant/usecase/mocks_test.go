package usecase_test

import (
	"context"

	"dentistry-assistant/internal/assistant"
)

type mockQnARepo struct {
	answers []assistant.Answer
	err     error
	calls   []string
}

func (m *mockQnARepo) GetAnswers(ctx context.Context, question string) ([]assistant.Answer, error) {
	m.calls = append(m.calls, question)
	return m.answers, m.err
}

type mockIntentRepo struct {
	prediction assistant.IntentPrediction
	err        error
	calls      []string
	order      *[]string
}

func (m *mockIntentRepo) Recognize(ctx context.Context, utterance string) (assistant.IntentPrediction, error) {
	m.calls = append(m.calls, utterance)
	if m.order != nil {
		*m.order = append(*m.order, "intent")
	}
	return m.prediction, m.err
}

type mockSchedulerRepo struct {
	availability    string
	availabilityErr error
	scheduleErr     error
	availCalls      int
	scheduled       []string
}

func (m *mockSchedulerRepo) GetAvailability(ctx context.Context) (string, error) {
	m.availCalls++
	return m.availability, m.availabilityErr
}

func (m *mockSchedulerRepo) ScheduleAppointment(ctx context.Context, timeText string) (string, error) {
	m.scheduled = append(m.scheduled, timeText)
	if m.scheduleErr != nil {
		return "", m.scheduleErr
	}
	return "An appointment is set for " + timeText + ".", nil
}

// orderedQnARepo records call order alongside the intent mock.
type orderedQnARepo struct {
	mockQnARepo
	order *[]string
}

func (m *orderedQnARepo) GetAnswers(ctx context.Context, question string) ([]assistant.Answer, error) {
	*m.order = append(*m.order, "qna")
	return m.mockQnARepo.GetAnswers(ctx, question)
}

func prediction(top string, score float64, times ...string) assistant.IntentPrediction {
	p := assistant.IntentPrediction{
		TopIntent: top,
		Intents:   map[string]float64{top: score},
		Entities:  map[string][]assistant.EntityInstance{},
	}
	for _, t := range times {
		p.Entities[assistant.EntityTime] = append(p.Entities[assistant.EntityTime], assistant.EntityInstance{Type: assistant.EntityTime, Text: t})
	}
	return p
}
