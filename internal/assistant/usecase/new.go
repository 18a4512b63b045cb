package usecase

import (
	"dentistry-assistant/internal/assistant"
	"dentistry-assistant/internal/assistant/repository"
	pkgLog "dentistry-assistant/pkg/log"
	"dentistry-assistant/pkg/metrics"
)

type implUseCase struct {
	l         pkgLog.Logger
	qna       repository.QnARepository
	intent    repository.IntentRepository
	scheduler repository.SchedulerRepository
	metrics   *metrics.Metrics
}

// New creates the assistant UseCase. Every repository is required.
func New(
	l pkgLog.Logger,
	qna repository.QnARepository,
	intent repository.IntentRepository,
	scheduler repository.SchedulerRepository,
	m *metrics.Metrics,
) (assistant.UseCase, error) {
	switch {
	case qna == nil:
		return nil, assistant.ErrMissingQnA
	case intent == nil:
		return nil, assistant.ErrMissingIntent
	case scheduler == nil:
		return nil, assistant.ErrMissingScheduler
	}
	return &implUseCase{
		l:         l,
		qna:       qna,
		intent:    intent,
		scheduler: scheduler,
		metrics:   m,
	}, nil
}
