package gcalendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"dentistry-assistant/pkg/datemath"
	pkgCalendar "dentistry-assistant/pkg/gcalendar"
	pkgLog "dentistry-assistant/pkg/log"
)

type fakeCalendar struct {
	events  []pkgCalendar.Event
	listErr error
	created []pkgCalendar.CreateEventRequest
	listReq pkgCalendar.ListEventsRequest
}

func (f *fakeCalendar) ListEvents(_ context.Context, req pkgCalendar.ListEventsRequest) ([]pkgCalendar.Event, error) {
	f.listReq = req
	return f.events, f.listErr
}

func (f *fakeCalendar) CreateEvent(_ context.Context, req pkgCalendar.CreateEventRequest) (*pkgCalendar.Event, error) {
	if req.Summary == "" {
		return nil, errors.New("summary required")
	}
	f.created = append(f.created, req)
	return &pkgCalendar.Event{ID: "evt-1", StartTime: req.StartTime, EndTime: req.EndTime}, nil
}

func setup(t *testing.T, cal Calendar, now time.Time) *implRepository {
	t.Helper()
	parser, err := datemath.NewParser("America/Los_Angeles")
	if err != nil {
		t.Fatalf("parser: %v", err)
	}
	repo, err := New(pkgLog.NewNop(), cal, parser, nil, Options{Now: func() time.Time { return now }})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return repo.(*implRepository)
}

func TestNew(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	if _, err := New(pkgLog.NewNop(), &fakeCalendar{}, parser, nil, Options{OpenHour: 17, CloseHour: 9}); !errors.Is(err, ErrInvalidHours) {
		t.Errorf("expected ErrInvalidHours, got %v", err)
	}
	if _, err := New(pkgLog.NewNop(), &fakeCalendar{}, parser, nil, Options{OpenHour: 8, CloseHour: 12}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestGetAvailability(t *testing.T) {
	loc, _ := time.LoadLocation("America/Los_Angeles")
	now := time.Date(2026, 3, 10, 7, 30, 0, 0, loc)

	t.Run("busy hours are removed", func(t *testing.T) {
		cal := &fakeCalendar{events: []pkgCalendar.Event{
			{StartTime: time.Date(2026, 3, 10, 10, 0, 0, 0, loc), EndTime: time.Date(2026, 3, 10, 11, 0, 0, 0, loc)},
			{StartTime: time.Date(2026, 3, 10, 13, 30, 0, 0, loc), EndTime: time.Date(2026, 3, 10, 14, 15, 0, 0, loc)},
		}}
		repo := setup(t, cal, now)

		got, err := repo.GetAvailability(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := "Current time slots available: \n9am\n11am\n12pm\n3pm\n4pm"
		if got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
		if cal.listReq.TimeMin.Hour() != 9 || cal.listReq.TimeMax.Hour() != 17 {
			t.Errorf("unexpected window %v - %v", cal.listReq.TimeMin, cal.listReq.TimeMax)
		}
	})

	t.Run("past slots are skipped", func(t *testing.T) {
		later := time.Date(2026, 3, 10, 15, 5, 0, 0, loc)
		repo := setup(t, &fakeCalendar{}, later)

		got, err := repo.GetAvailability(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "Current time slots available: \n4pm" {
			t.Errorf("unexpected availability %q", got)
		}
	})

	t.Run("all-day event blocks the day", func(t *testing.T) {
		cal := &fakeCalendar{events: []pkgCalendar.Event{{AllDay: true}}}
		repo := setup(t, cal, now)

		got, err := repo.GetAvailability(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "Current time slots available: " {
			t.Errorf("unexpected availability %q", got)
		}
	})

	t.Run("calendar error propagates", func(t *testing.T) {
		repo := setup(t, &fakeCalendar{listErr: errors.New("quota")}, now)
		if _, err := repo.GetAvailability(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestScheduleAppointment(t *testing.T) {
	loc, _ := time.LoadLocation("America/Los_Angeles")
	now := time.Date(2026, 3, 10, 7, 30, 0, 0, loc)
	at := func(h, m int) time.Time { return time.Date(2026, 3, 10, h, m, 0, 0, loc) }

	t.Run("books a one hour event", func(t *testing.T) {
		cal := &fakeCalendar{}
		repo := setup(t, cal, now)

		got, err := repo.ScheduleAppointment(context.Background(), "10am")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "An appointment is set for 10am." {
			t.Errorf("unexpected reply %q", got)
		}
		if len(cal.created) != 1 {
			t.Fatalf("expected 1 event, got %d", len(cal.created))
		}
		ev := cal.created[0]
		if !ev.StartTime.Equal(at(10, 0)) {
			t.Errorf("unexpected start %v", ev.StartTime)
		}
		if ev.EndTime.Sub(ev.StartTime) != time.Hour {
			t.Errorf("expected one hour event")
		}
		if ev.Timezone != "America/Los_Angeles" {
			t.Errorf("unexpected timezone %q", ev.Timezone)
		}
		if !cal.listReq.TimeMin.Equal(at(10, 0)) || !cal.listReq.TimeMax.Equal(at(11, 0)) {
			t.Errorf("conflict check window %v - %v", cal.listReq.TimeMin, cal.listReq.TimeMax)
		}
	})

	t.Run("adjacent events do not conflict", func(t *testing.T) {
		cal := &fakeCalendar{events: []pkgCalendar.Event{
			{StartTime: at(9, 0), EndTime: at(10, 0)},
			{StartTime: at(11, 0), EndTime: at(12, 0)},
		}}
		repo := setup(t, cal, now)

		if _, err := repo.ScheduleAppointment(context.Background(), "10am"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cal.created) != 1 {
			t.Errorf("expected 1 event, got %d", len(cal.created))
		}
	})

	tests := []struct {
		name    string
		text    string
		events  []pkgCalendar.Event
		wantErr error
	}{
		{name: "before opening", text: "8am", wantErr: ErrOutsideHours},
		{name: "runs past closing", text: "4:30pm", wantErr: ErrOutsideHours},
		{name: "middle of the night", text: "tomorrow at 3am", wantErr: ErrOutsideHours},
		{name: "earlier today", text: "today 7am", wantErr: ErrSlotInPast},
		{
			name:    "overlapping event",
			text:    "10am",
			events:  []pkgCalendar.Event{{StartTime: at(10, 30), EndTime: at(11, 0)}},
			wantErr: ErrSlotTaken,
		},
		{
			name:    "all-day event",
			text:    "10am",
			events:  []pkgCalendar.Event{{AllDay: true}},
			wantErr: ErrSlotTaken,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cal := &fakeCalendar{events: tt.events}
			repo := setup(t, cal, now)

			_, err := repo.ScheduleAppointment(context.Background(), tt.text)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if len(cal.created) != 0 {
				t.Errorf("no event should be created, got %d", len(cal.created))
			}
		})
	}

	t.Run("calendar error propagates", func(t *testing.T) {
		cal := &fakeCalendar{listErr: errors.New("quota")}
		repo := setup(t, cal, now)
		if _, err := repo.ScheduleAppointment(context.Background(), "10am"); err == nil {
			t.Fatalf("expected error")
		}
		if len(cal.created) != 0 {
			t.Errorf("no event should be created")
		}
	})

	t.Run("unparseable time is an error", func(t *testing.T) {
		cal := &fakeCalendar{}
		repo := setup(t, cal, now)
		if _, err := repo.ScheduleAppointment(context.Background(), "sometime soon"); err == nil {
			t.Fatalf("expected error")
		}
		if len(cal.created) != 0 {
			t.Errorf("no event should be created")
		}
	})
}
