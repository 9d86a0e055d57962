package actionsense

import (
	"context"

	"actionsense/pkg/gemini"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Analysis
	Analyze(ctx context.Context, input AnalyzeInput) (AnalyzeOutput, error)

	// Task CRUD
	CreateTask(ctx context.Context, input CreateTaskInput) (CreateTaskOutput, error)
	ListTasks(ctx context.Context, input ListTasksInput) (ListTasksOutput, error)
	GetTask(ctx context.Context, id string) (DetailTaskOutput, error)
	UpdateTask(ctx context.Context, input UpdateTaskInput) (UpdateTaskOutput, error)
	DeleteTask(ctx context.Context, id string) error
}

// ActionItemExtractor is the LLM collaborator used when rules are unsure.
// *gemini.Client implements it.
type ActionItemExtractor interface {
	ExtractActionItems(ctx context.Context, text string) ([]gemini.ActionItem, error)
}
