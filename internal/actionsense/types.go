package actionsense

import (
	"time"

	"actionsense/internal/actionsense/detector"
	"actionsense/internal/model"
	"actionsense/pkg/datemath"
)

// --- Analysis ---

// Suggestion is a proposed task for a chat message.
type Suggestion struct {
	Extracted  detector.Extracted
	Confidence float64
	Source     model.Source
	Preview    string
}

// --- UseCase Inputs ---

// AnalyzeInput is one chat message. A zero Reference means now.
type AnalyzeInput struct {
	Text      string
	Channel   string
	Author    string
	Reference time.Time
}

type CreateTaskInput struct {
	Title       string
	Description string
	AssignedTo  string
	DueDate     datemath.Date
	Priority    model.Priority
	Tags        []string
	Channel     string
	Source      model.Source
	// Preview of the accepted suggestion; used as the description when none is given.
	Preview string
}

type ListTasksInput struct {
	Status     model.Status
	AssignedTo string
	Priority   model.Priority
	Tag        string
}

// UpdateTaskInput is a partial update; nil fields are left unchanged.
// A non-nil zero DueDate clears the due date.
type UpdateTaskInput struct {
	ID         string
	Title      *string
	AssignedTo *string
	DueDate    *datemath.Date
	Priority   *model.Priority
	Status     *model.Status
	Progress   *int
}

// --- UseCase Outputs ---

type AnalyzeOutput struct {
	IsAction    bool
	Suggestions []Suggestion // rule suggestion first, then an LLM refinement if any
	AutoCreated *model.Task
}

type CreateTaskOutput struct {
	Task model.Task
}

type ListTasksOutput struct {
	Tasks []model.Task
	Total int
}

type DetailTaskOutput struct {
	Task model.Task
}

type UpdateTaskOutput struct {
	Task model.Task
}
