package qnamaker

import (
	"context"
	"fmt"
	"time"

	"dentistry-assistant/internal/assistant"
	"dentistry-assistant/internal/assistant/repository"
	pkgLog "dentistry-assistant/pkg/log"
	"dentistry-assistant/pkg/metrics"
	pkgQnA "dentistry-assistant/pkg/qnamaker"
)

type implRepository struct {
	l       pkgLog.Logger
	client  pkgQnA.IQnAMaker
	metrics *metrics.Metrics
}

var _ repository.QnARepository = (*implRepository)(nil)

// New wraps a QnA Maker client as a QnARepository.
func New(l pkgLog.Logger, client pkgQnA.IQnAMaker, m *metrics.Metrics) repository.QnARepository {
	return &implRepository{l: l, client: client, metrics: m}
}

func (r *implRepository) GetAnswers(ctx context.Context, question string) ([]assistant.Answer, error) {
	start := time.Now()
	answers, err := r.client.GenerateAnswer(ctx, question)
	r.metrics.ObserveUpstream(repository.ServiceQnAMaker, start, err)
	if err != nil {
		r.l.Errorf(ctx, "qnamaker.GetAnswers: %v", err)
		return nil, fmt.Errorf("qnamaker: %w", err)
	}

	out := make([]assistant.Answer, 0, len(answers))
	for _, a := range answers {
		out = append(out, assistant.Answer{
			ID:        a.ID,
			Text:      a.Answer,
			Score:     a.Score,
			Questions: a.Questions,
		})
	}
	r.l.Debugf(ctx, "qnamaker.GetAnswers: %d candidates", len(out))
	return out, nil
}
