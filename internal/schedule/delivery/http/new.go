package http

import (
	"time"

	"actionsense/internal/schedule"
	"actionsense/pkg/log"
)

type handler struct {
	l   log.Logger
	uc  schedule.UseCase
	loc *time.Location
}

// New creates a new HTTP handler for the schedule domain.
func New(l log.Logger, uc schedule.UseCase, loc *time.Location) *handler {
	if loc == nil {
		loc = time.UTC
	}
	return &handler{l: l, uc: uc, loc: loc}
}
