package repository

import (
	"actionsense/internal/model"
	"actionsense/pkg/datemath"
)

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	Title       string
	Description string
	AssignedTo  string
	DueDate     datemath.Date
	Priority    model.Priority
	Tags        []string
	Status      model.Status
	Source      model.Source
	Channel     string
}

// GetOneTaskOptions holds filter parameters for fetching a single Task.
type GetOneTaskOptions struct {
	ID string
}

// ListTasksOptions holds filter parameters for listing Tasks.
// All non-empty fields are applied as AND conditions.
type ListTasksOptions struct {
	Status     model.Status
	AssignedTo string
	Priority   model.Priority
	Tag        string
}

// UpdateTaskOptions carries the full new state of an existing Task.
type UpdateTaskOptions struct {
	Task model.Task
}
