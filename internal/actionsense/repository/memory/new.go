package memory

import (
	"context"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"actionsense/internal/actionsense/repository"
	"actionsense/internal/model"
	"actionsense/pkg/log"
)

type implRepository struct {
	l     log.Logger
	tasks *lru.Cache[string, model.Task]
	now   func() time.Time
}

// New creates an in-process Repository that keeps at most size tasks,
// evicting the least recently used. A nil clock uses time.Now.
func New(l log.Logger, size int, now func() time.Time) (repository.Repository, error) {
	if now == nil {
		now = time.Now
	}
	r := &implRepository{l: l, now: now}

	cache, err := lru.NewWithEvict[string, model.Task](size, r.onEvict)
	if err != nil {
		return nil, fmt.Errorf("actionsense/repository/memory: %w", err)
	}
	r.tasks = cache
	return r, nil
}

func (r *implRepository) onEvict(id string, t model.Task) {
	r.l.Warnf(context.Background(), "actionsense/repository/memory: evicted task %s (%s)", id, t.Title)
}
