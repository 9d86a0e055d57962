package usecase

import (
	"context"
	"fmt"
	"strings"

	"actionsense/internal/schedule"
	"actionsense/pkg/gcalendar"
)

func (uc *implUseCase) Export(ctx context.Context, input schedule.ExportInput) (schedule.ExportOutput, error) {
	if uc.calendar == nil {
		return schedule.ExportOutput{}, schedule.ErrCalendarUnavailable
	}

	d := input.Draft
	if d.Date.IsZero() {
		return schedule.ExportOutput{}, schedule.ErrDateRequired
	}
	if !d.TimeExplicit {
		d.StartTime = uc.opts.DefaultStart
	}
	if !d.StartTime.Valid() {
		return schedule.ExportOutput{}, schedule.ErrInvalidTime
	}
	dur := d.Duration
	if dur == 0 {
		dur = uc.opts.DefaultDuration
	}
	if dur < 0 {
		return schedule.ExportOutput{}, schedule.ErrInvalidDuration
	}
	title := strings.TrimSpace(d.Title)
	if title == "" {
		title = defaultTitle
	}

	loc := uc.resolver.Location()
	start := d.Date.At(d.StartTime.Hour, d.StartTime.Minute, loc)
	end := start.Add(dur)

	ev, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.opts.CalendarID,
		Summary:     title,
		Description: describe(input.Description, d.Participants),
		Location:    d.Location,
		StartTime:   start,
		EndTime:     end,
		Timezone:    loc.String(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "schedule.Export: %v", err)
		return schedule.ExportOutput{}, fmt.Errorf("%w: %v", schedule.ErrCalendarFailed, err)
	}

	uc.l.Infof(ctx, "schedule.Export created event %s at %s", ev.ID, start.Format("2006-01-02 15:04"))
	return schedule.ExportOutput{
		EventID: ev.ID,
		Link:    ev.HtmlLink,
		Start:   start,
		End:     end,
	}, nil
}

func (uc *implUseCase) ListEvents(ctx context.Context, input schedule.ListEventsInput) (schedule.ListEventsOutput, error) {
	if uc.calendar == nil {
		return schedule.ListEventsOutput{}, schedule.ErrCalendarUnavailable
	}

	day := input.Date
	if day.IsZero() {
		day = uc.resolver.Today(uc.now())
	}
	loc := uc.resolver.Location()

	items, err := uc.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: uc.opts.CalendarID,
		TimeMin:    day.At(0, 0, loc),
		TimeMax:    day.AddDays(1).At(0, 0, loc),
	})
	if err != nil {
		uc.l.Errorf(ctx, "schedule.ListEvents: %v", err)
		return schedule.ListEventsOutput{}, fmt.Errorf("%w: %v", schedule.ErrCalendarFailed, err)
	}

	events := make([]schedule.Event, 0, len(items))
	for _, it := range items {
		events = append(events, schedule.Event{
			ID:       it.ID,
			Title:    it.Summary,
			Start:    it.StartTime,
			End:      it.EndTime,
			AllDay:   it.AllDay,
			Location: it.Location,
			Link:     it.HtmlLink,
		})
	}
	return schedule.ListEventsOutput{Events: events}, nil
}

// describe appends the @participants to the user's description.
func describe(desc string, participants []string) string {
	desc = strings.TrimSpace(desc)
	if len(participants) == 0 {
		return desc
	}
	line := "참석자: @" + strings.Join(participants, ", @")
	if desc == "" {
		return line
	}
	return desc + "\n" + line
}
