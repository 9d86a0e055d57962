package memory

import (
	"context"
	"slices"
	"sort"

	"github.com/google/uuid"

	"actionsense/internal/actionsense/repository"
	"actionsense/internal/model"
)

func (r *implRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	now := r.now()
	t := model.Task{
		ID:          uuid.NewString(),
		Title:       opt.Title,
		Description: opt.Description,
		AssignedTo:  opt.AssignedTo,
		DueDate:     opt.DueDate,
		Priority:    opt.Priority,
		Tags:        slices.Clone(opt.Tags),
		Status:      opt.Status,
		Source:      opt.Source,
		Channel:     opt.Channel,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.tasks.Add(t.ID, t)
	return clone(t), nil
}

func (r *implRepository) GetOneTask(ctx context.Context, opt repository.GetOneTaskOptions) (model.Task, error) {
	t, ok := r.tasks.Get(opt.ID)
	if !ok {
		return model.Task{}, nil
	}
	return clone(t), nil
}

func (r *implRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, int, error) {
	var out []model.Task
	for _, t := range r.tasks.Values() {
		if matches(t, opt) {
			out = append(out, clone(t))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return less(out[i], out[j])
	})
	return out, len(out), nil
}

func (r *implRepository) UpdateTask(ctx context.Context, opt repository.UpdateTaskOptions) (model.Task, error) {
	existing, ok := r.tasks.Peek(opt.Task.ID)
	if !ok {
		return model.Task{}, repository.ErrNotFound
	}
	t := clone(opt.Task)
	t.CreatedAt = existing.CreatedAt
	t.UpdatedAt = r.now()
	r.tasks.Add(t.ID, t)
	return clone(t), nil
}

func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	if !r.tasks.Remove(id) {
		return repository.ErrNotFound
	}
	return nil
}

func matches(t model.Task, opt repository.ListTasksOptions) bool {
	if opt.Status != "" && t.Status != opt.Status {
		return false
	}
	if opt.AssignedTo != "" && t.AssignedTo != opt.AssignedTo {
		return false
	}
	if opt.Priority != "" && t.Priority != opt.Priority {
		return false
	}
	if opt.Tag != "" && !t.HasTag(opt.Tag) {
		return false
	}
	return true
}

// less orders by due date ascending with undated tasks last, then newest first.
func less(a, b model.Task) bool {
	switch {
	case a.HasDueDate() && !b.HasDueDate():
		return true
	case !a.HasDueDate() && b.HasDueDate():
		return false
	case a.HasDueDate() && a.DueDate != b.DueDate:
		return a.DueDate.Before(b.DueDate)
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID < b.ID
}

func clone(t model.Task) model.Task {
	t.Tags = slices.Clone(t.Tags)
	return t
}
