package usecase

import (
	"time"

	"actionsense/pkg/datemath"
	"actionsense/pkg/log"
)

// MaxTextRunes bounds the text accepted by Resolve.
const MaxTextRunes = 2000

// implUseCase is the private implementation of dates.UseCase.
type implUseCase struct {
	l        log.Logger
	resolver *datemath.Resolver
	now      func() time.Time
}

// New creates a new dates UseCase. A nil clock uses time.Now.
func New(l log.Logger, resolver *datemath.Resolver, now func() time.Time) *implUseCase {
	if now == nil {
		now = time.Now
	}
	return &implUseCase{
		l:        l,
		resolver: resolver,
		now:      now,
	}
}
