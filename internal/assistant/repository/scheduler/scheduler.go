package scheduler

import (
	"context"
	"fmt"
	"time"

	"dentistry-assistant/internal/assistant/repository"
	pkgLog "dentistry-assistant/pkg/log"
	"dentistry-assistant/pkg/metrics"
	pkgScheduler "dentistry-assistant/pkg/scheduler"
)

type implRepository struct {
	l       pkgLog.Logger
	client  pkgScheduler.IScheduler
	metrics *metrics.Metrics
}

var _ repository.SchedulerRepository = (*implRepository)(nil)

// New wraps the dentist scheduler API as a SchedulerRepository.
func New(l pkgLog.Logger, client pkgScheduler.IScheduler, m *metrics.Metrics) repository.SchedulerRepository {
	return &implRepository{l: l, client: client, metrics: m}
}

func (r *implRepository) GetAvailability(ctx context.Context) (string, error) {
	start := time.Now()
	slots, err := r.client.Availability(ctx)
	r.metrics.ObserveUpstream(repository.ServiceScheduler, start, err)
	if err != nil {
		r.l.Errorf(ctx, "scheduler.GetAvailability: %v", err)
		return "", fmt.Errorf("scheduler: %w", err)
	}
	return repository.FormatAvailability(slots), nil
}

func (r *implRepository) ScheduleAppointment(ctx context.Context, timeText string) (string, error) {
	start := time.Now()
	err := r.client.Schedule(ctx, timeText)
	r.metrics.ObserveUpstream(repository.ServiceScheduler, start, err)
	if err != nil {
		r.l.Errorf(ctx, "scheduler.ScheduleAppointment: time=%q: %v", timeText, err)
		return "", fmt.Errorf("scheduler: %w", err)
	}
	r.l.Infof(ctx, "scheduler.ScheduleAppointment: booked %q", timeText)
	return repository.FormatConfirmation(timeText), nil
}
