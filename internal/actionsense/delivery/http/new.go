package http

import (
	"time"

	"actionsense/internal/actionsense"
	"actionsense/pkg/log"
)

type handler struct {
	l   log.Logger
	uc  actionsense.UseCase
	loc *time.Location
}

// New creates a new HTTP handler for the actionsense domain. Date-only
// references are read in loc.
func New(l log.Logger, uc actionsense.UseCase, loc *time.Location) *handler {
	if loc == nil {
		loc = time.UTC
	}
	return &handler{
		l:   l,
		uc:  uc,
		loc: loc,
	}
}
