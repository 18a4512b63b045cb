package luis

import (
	"context"
	"fmt"
	"time"

	"dentistry-assistant/internal/assistant"
	"dentistry-assistant/internal/assistant/repository"
	pkgLUIS "dentistry-assistant/pkg/luis"
	pkgLog "dentistry-assistant/pkg/log"
	"dentistry-assistant/pkg/metrics"
)

type implRepository struct {
	l       pkgLog.Logger
	client  pkgLUIS.ILUIS
	metrics *metrics.Metrics
}

var _ repository.IntentRepository = (*implRepository)(nil)

// New wraps a LUIS client as an IntentRepository.
func New(l pkgLog.Logger, client pkgLUIS.ILUIS, m *metrics.Metrics) repository.IntentRepository {
	return &implRepository{l: l, client: client, metrics: m}
}

func (r *implRepository) Recognize(ctx context.Context, utterance string) (assistant.IntentPrediction, error) {
	start := time.Now()
	resp, err := r.client.Predict(ctx, utterance)
	r.metrics.ObserveUpstream(repository.ServiceLUIS, start, err)
	if err != nil {
		r.l.Errorf(ctx, "luis.Recognize: %v", err)
		return assistant.IntentPrediction{}, fmt.Errorf("luis: %w", err)
	}

	p := toPrediction(resp)
	r.l.Debugf(ctx, "luis.Recognize: top=%s score=%.2f entities=%d", p.TopIntent, p.TopScore(), len(p.Entities))
	return p, nil
}

func toPrediction(resp *pkgLUIS.PredictionResponse) assistant.IntentPrediction {
	p := assistant.IntentPrediction{
		Query:     resp.Query,
		TopIntent: resp.Prediction.TopIntent,
		Intents:   make(map[string]float64, len(resp.Prediction.Intents)),
		Entities:  make(map[string][]assistant.EntityInstance),
	}
	for name, s := range resp.Prediction.Intents {
		p.Intents[name] = s.Score
	}
	for name, instances := range resp.Prediction.Instances() {
		for _, in := range instances {
			p.Entities[name] = append(p.Entities[name], assistant.EntityInstance{
				Type:       in.Type,
				Text:       in.Text,
				StartIndex: in.StartIndex,
				Length:     in.Length,
				Score:      in.Score,
			})
		}
	}
	return p
}
