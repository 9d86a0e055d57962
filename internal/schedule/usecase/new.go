package usecase

import (
	"time"

	"actionsense/internal/schedule"
	"actionsense/pkg/datemath"
	"actionsense/pkg/gcalendar"
	"actionsense/pkg/log"
)

const (
	maxTextRunes = 2000
	defaultTitle = "새 일정"
)

// Options are the defaults applied when text leaves something out.
type Options struct {
	DefaultStart    schedule.Clock
	DefaultDuration time.Duration
	CalendarID      string
}

// DefaultOptions starts events at 10:00 for 30 minutes on the primary calendar.
func DefaultOptions() Options {
	return Options{
		DefaultStart:    schedule.Clock{Hour: 10},
		DefaultDuration: 30 * time.Minute,
		CalendarID:      gcalendar.DefaultCalendarID,
	}
}

// implUseCase is the private implementation of schedule.UseCase.
type implUseCase struct {
	l        log.Logger
	resolver *datemath.Resolver
	calendar schedule.Calendar
	opts     Options
	now      func() time.Time
}

// New creates a new schedule UseCase. A nil calendar disables Export and
// ListEvents. A nil clock uses time.Now.
func New(
	l log.Logger,
	resolver *datemath.Resolver,
	calendar schedule.Calendar,
	opts Options,
	now func() time.Time,
) *implUseCase {
	if now == nil {
		now = time.Now
	}
	if opts.DefaultDuration <= 0 {
		opts.DefaultDuration = DefaultOptions().DefaultDuration
	}
	return &implUseCase{
		l:        l,
		resolver: resolver,
		calendar: calendar,
		opts:     opts,
		now:      now,
	}
}
