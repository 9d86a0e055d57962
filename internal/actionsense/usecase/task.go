package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"actionsense/internal/actionsense"
	repo "actionsense/internal/actionsense/repository"
	"actionsense/internal/model"
)

// CreateTask stores a new task with status 진행 예정 and progress 0.
func (uc *implUseCase) CreateTask(ctx context.Context, input actionsense.CreateTaskInput) (actionsense.CreateTaskOutput, error) {
	title, err := normalizeTitle(input.Title)
	if err != nil {
		return actionsense.CreateTaskOutput{}, err
	}

	priority := input.Priority
	if priority == "" {
		priority = model.PriorityNormal
	}
	if !priority.IsValid() {
		return actionsense.CreateTaskOutput{}, actionsense.ErrInvalidPriority
	}

	description := strings.TrimSpace(input.Description)
	if description == "" && strings.TrimSpace(input.Preview) != "" {
		description = fmt.Sprintf(acceptedPreviewFormat, strings.TrimSpace(input.Preview))
	}

	source := input.Source
	if source == "" {
		source = model.SourceManual
	}

	task, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		Title:       title,
		Description: description,
		AssignedTo:  strings.TrimSpace(input.AssignedTo),
		DueDate:     input.DueDate,
		Priority:    priority,
		Tags:        input.Tags,
		Status:      model.StatusTodo,
		Source:      source,
		Channel:     input.Channel,
	})
	if err != nil {
		uc.l.Errorf(ctx, "actionsense.usecase.CreateTask: %v", err)
		return actionsense.CreateTaskOutput{}, err
	}

	return actionsense.CreateTaskOutput{Task: task}, nil
}

// ListTasks returns tasks ordered by due date, undated last, newest first on ties.
func (uc *implUseCase) ListTasks(ctx context.Context, input actionsense.ListTasksInput) (actionsense.ListTasksOutput, error) {
	if input.Status != "" && !input.Status.IsValid() {
		return actionsense.ListTasksOutput{}, actionsense.ErrInvalidStatus
	}
	if input.Priority != "" && !input.Priority.IsValid() {
		return actionsense.ListTasksOutput{}, actionsense.ErrInvalidPriority
	}

	tasks, total, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		Status:     input.Status,
		AssignedTo: input.AssignedTo,
		Priority:   input.Priority,
		Tag:        input.Tag,
	})
	if err != nil {
		uc.l.Errorf(ctx, "actionsense.usecase.ListTasks: %v", err)
		return actionsense.ListTasksOutput{}, err
	}

	return actionsense.ListTasksOutput{Tasks: tasks, Total: total}, nil
}

// GetTask returns ErrTaskNotFound when id is unknown.
func (uc *implUseCase) GetTask(ctx context.Context, id string) (actionsense.DetailTaskOutput, error) {
	task, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "actionsense.usecase.GetTask: %v", err)
		return actionsense.DetailTaskOutput{}, err
	}
	if task.ID == "" {
		return actionsense.DetailTaskOutput{}, actionsense.ErrTaskNotFound
	}
	return actionsense.DetailTaskOutput{Task: task}, nil
}

// UpdateTask applies a partial update. Moving progress past zero starts a
// pending task and reaching 100 completes it, unless a status is given.
func (uc *implUseCase) UpdateTask(ctx context.Context, input actionsense.UpdateTaskInput) (actionsense.UpdateTaskOutput, error) {
	task, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "actionsense.usecase.UpdateTask.GetOneTask: %v", err)
		return actionsense.UpdateTaskOutput{}, err
	}
	if task.ID == "" {
		return actionsense.UpdateTaskOutput{}, actionsense.ErrTaskNotFound
	}

	if input.Title != nil {
		if task.Title, err = normalizeTitle(*input.Title); err != nil {
			return actionsense.UpdateTaskOutput{}, err
		}
	}
	if input.AssignedTo != nil {
		task.AssignedTo = strings.TrimSpace(*input.AssignedTo)
	}
	if input.DueDate != nil {
		task.DueDate = *input.DueDate
	}
	if input.Priority != nil {
		if !input.Priority.IsValid() {
			return actionsense.UpdateTaskOutput{}, actionsense.ErrInvalidPriority
		}
		task.Priority = *input.Priority
	}
	if input.Progress != nil {
		if *input.Progress < 0 || *input.Progress > 100 {
			return actionsense.UpdateTaskOutput{}, actionsense.ErrInvalidProgress
		}
		task.Progress = *input.Progress
		if input.Status == nil {
			task.Status = statusForProgress(task.Status, task.Progress)
		}
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return actionsense.UpdateTaskOutput{}, actionsense.ErrInvalidStatus
		}
		task.Status = *input.Status
	}

	updated, err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{Task: task})
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return actionsense.UpdateTaskOutput{}, actionsense.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "actionsense.usecase.UpdateTask: %v", err)
		return actionsense.UpdateTaskOutput{}, err
	}
	return actionsense.UpdateTaskOutput{Task: updated}, nil
}

// DeleteTask returns ErrTaskNotFound when id is unknown.
func (uc *implUseCase) DeleteTask(ctx context.Context, id string) error {
	if err := uc.repo.DeleteTask(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return actionsense.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "actionsense.usecase.DeleteTask: %v", err)
		return err
	}
	return nil
}

func normalizeTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return defaultTitle, nil
	}
	if utf8.RuneCountInString(title) > maxTitleRunes {
		return "", actionsense.ErrTitleTooLong
	}
	return title, nil
}

func statusForProgress(current model.Status, progress int) model.Status {
	switch {
	case progress >= 100:
		return model.StatusDone
	case progress > 0 && current == model.StatusTodo:
		return model.StatusInProgress
	}
	return current
}
