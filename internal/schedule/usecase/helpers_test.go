package usecase

import (
	"context"
	"testing"
	"time"

	"actionsense/pkg/datemath"
	"actionsense/pkg/gcalendar"
	"actionsense/pkg/log"
)

var testNow = time.Date(2025, 11, 13, 10, 0, 0, 0, time.UTC)

type mockCalendar struct {
	created []gcalendar.CreateEventRequest
	listed  []gcalendar.ListEventsRequest
	events  []gcalendar.Event
	err     error
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	m.created = append(m.created, req)
	if m.err != nil {
		return nil, m.err
	}
	return &gcalendar.Event{ID: "ev-1", HtmlLink: "https://calendar.google.com/ev-1", StartTime: req.StartTime, EndTime: req.EndTime}, nil
}

func (m *mockCalendar) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	m.listed = append(m.listed, req)
	return m.events, m.err
}

func newTestUseCase(t *testing.T, cal *mockCalendar) *implUseCase {
	t.Helper()
	resolver, err := datemath.NewResolverIn(time.UTC, datemath.DefaultRuleSet())
	if err != nil {
		t.Fatalf("resolver: %v", err)
	}
	uc := New(log.NewNop(), resolver, nil, DefaultOptions(), func() time.Time { return testNow })
	if cal != nil {
		uc.calendar = cal
	}
	return uc
}
