package gcalendar

import (
	"context"
	"fmt"
	"time"

	"dentistry-assistant/internal/assistant/repository"
	"dentistry-assistant/pkg/datemath"
	pkgCalendar "dentistry-assistant/pkg/gcalendar"
	pkgLog "dentistry-assistant/pkg/log"
	"dentistry-assistant/pkg/metrics"
)

const (
	defaultOpenHour  = 9
	defaultCloseHour = 17
	slotDuration     = time.Hour
	slotLayout       = "3pm"
	eventSummary     = "Dental appointment"
)

// Calendar is the subset of the Google Calendar client the scheduler needs.
type Calendar interface {
	ListEvents(ctx context.Context, req pkgCalendar.ListEventsRequest) ([]pkgCalendar.Event, error)
	CreateEvent(ctx context.Context, req pkgCalendar.CreateEventRequest) (*pkgCalendar.Event, error)
}

// Options configures business hours and the target calendar.
type Options struct {
	CalendarID string
	OpenHour   int
	CloseHour  int
	Now        func() time.Time
}

type implRepository struct {
	l        pkgLog.Logger
	calendar Calendar
	parser   *datemath.Parser
	metrics  *metrics.Metrics
	opt      Options
}

var _ repository.SchedulerRepository = (*implRepository)(nil)

// New builds a SchedulerRepository that books straight into a Google Calendar.
func New(l pkgLog.Logger, cal Calendar, parser *datemath.Parser, m *metrics.Metrics, opt Options) (repository.SchedulerRepository, error) {
	if opt.OpenHour == 0 && opt.CloseHour == 0 {
		opt.OpenHour, opt.CloseHour = defaultOpenHour, defaultCloseHour
	}
	if opt.OpenHour < 0 || opt.CloseHour > 24 || opt.OpenHour >= opt.CloseHour {
		return nil, ErrInvalidHours
	}
	if opt.Now == nil {
		opt.Now = time.Now
	}
	return &implRepository{l: l, calendar: cal, parser: parser, metrics: m, opt: opt}, nil
}

// GetAvailability lists the free one-hour slots left today within business hours.
func (r *implRepository) GetAvailability(ctx context.Context) (string, error) {
	now := r.opt.Now().In(r.parser.Location())
	day := r.parser.StartOfDay(now)
	open := day.Add(time.Duration(r.opt.OpenHour) * time.Hour)
	closing := day.Add(time.Duration(r.opt.CloseHour) * time.Hour)

	start := time.Now()
	events, err := r.calendar.ListEvents(ctx, pkgCalendar.ListEventsRequest{
		CalendarID: r.opt.CalendarID,
		TimeMin:    open,
		TimeMax:    closing,
	})
	r.metrics.ObserveUpstream(repository.ServiceCalendar, start, err)
	if err != nil {
		r.l.Errorf(ctx, "gcalendar.GetAvailability: %v", err)
		return "", fmt.Errorf("gcalendar: %w", err)
	}

	return repository.FormatAvailability(freeSlots(events, open, closing, now)), nil
}

// ScheduleAppointment parses timeText and books a one-hour event. The slot must
// fall inside business hours, lie in the future and overlap no existing event.
func (r *implRepository) ScheduleAppointment(ctx context.Context, timeText string) (string, error) {
	now := r.opt.Now()
	res, err := r.parser.ParseDateTime(timeText, now)
	if err != nil {
		r.l.Warnf(ctx, "gcalendar.ScheduleAppointment: cannot parse %q: %v", timeText, err)
		return "", fmt.Errorf("gcalendar: %w", err)
	}
	from, to := res.AbsoluteTime, res.AbsoluteTime.Add(slotDuration)

	if err := r.checkHours(from, to, now); err != nil {
		r.l.Warnf(ctx, "gcalendar.ScheduleAppointment: %q at %s: %v", timeText, from.Format(time.RFC3339), err)
		return "", err
	}

	start := time.Now()
	events, err := r.calendar.ListEvents(ctx, pkgCalendar.ListEventsRequest{
		CalendarID: r.opt.CalendarID,
		TimeMin:    from,
		TimeMax:    to,
	})
	r.metrics.ObserveUpstream(repository.ServiceCalendar, start, err)
	if err != nil {
		r.l.Errorf(ctx, "gcalendar.ScheduleAppointment: list events: %v", err)
		return "", fmt.Errorf("gcalendar: %w", err)
	}
	if conflicts(events, from, to) {
		r.l.Warnf(ctx, "gcalendar.ScheduleAppointment: %s is taken", from.Format(time.RFC3339))
		return "", fmt.Errorf("%w: %s", ErrSlotTaken, from.Format(time.RFC3339))
	}

	start = time.Now()
	_, err = r.calendar.CreateEvent(ctx, pkgCalendar.CreateEventRequest{
		CalendarID:  r.opt.CalendarID,
		Summary:     eventSummary,
		Description: fmt.Sprintf("Booked via chat for %q", timeText),
		StartTime:   from,
		EndTime:     to,
		Timezone:    r.parser.Location().String(),
	})
	r.metrics.ObserveUpstream(repository.ServiceCalendar, start, err)
	if err != nil {
		r.l.Errorf(ctx, "gcalendar.ScheduleAppointment: %v", err)
		return "", fmt.Errorf("gcalendar: %w", err)
	}

	r.l.Infof(ctx, "gcalendar.ScheduleAppointment: booked %s", from.Format(time.RFC3339))
	return repository.FormatConfirmation(timeText), nil
}

// checkHours keeps [from, to) inside the business day of from and after now.
func (r *implRepository) checkHours(from, to, now time.Time) error {
	if from.Before(now) {
		return ErrSlotInPast
	}
	day := r.parser.StartOfDay(from)
	open := day.Add(time.Duration(r.opt.OpenHour) * time.Hour)
	closing := day.Add(time.Duration(r.opt.CloseHour) * time.Hour)
	if from.Before(open) || to.After(closing) {
		return ErrOutsideHours
	}
	return nil
}

// freeSlots walks [open, closing) hour by hour, keeping slots that start after now and overlap no event.
func freeSlots(events []pkgCalendar.Event, open, closing, now time.Time) []string {
	slots := make([]string, 0)
	for _, ev := range events {
		if ev.AllDay {
			return slots
		}
	}
	for s := open; !s.Add(slotDuration).After(closing); s = s.Add(slotDuration) {
		if s.Before(now) {
			continue
		}
		if overlapsAny(events, s, s.Add(slotDuration)) {
			continue
		}
		slots = append(slots, s.Format(slotLayout))
	}
	return slots
}

// conflicts reports whether [from, to) collides with a timed event or falls on an all-day one.
func conflicts(events []pkgCalendar.Event, from, to time.Time) bool {
	for _, ev := range events {
		if ev.AllDay {
			return true
		}
	}
	return overlapsAny(events, from, to)
}

func overlapsAny(events []pkgCalendar.Event, from, to time.Time) bool {
	for _, ev := range events {
		if ev.StartTime.Before(to) && ev.EndTime.After(from) {
			return true
		}
	}
	return false
}
