package schedule

import (
	"context"

	"actionsense/pkg/gcalendar"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Parse(ctx context.Context, input ParseInput) (ParseOutput, error)
	Export(ctx context.Context, input ExportInput) (ExportOutput, error)
	ListEvents(ctx context.Context, input ListEventsInput) (ListEventsOutput, error)
}

// Calendar is the subset of *gcalendar.Client the scheduler needs.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}
