package model

import (
	"time"

	"actionsense/pkg/datemath"
)

// Priority is a task priority as shown to users.
type Priority string

const (
	PriorityHigh   Priority = "높음"
	PriorityNormal Priority = "보통"
	PriorityLow    Priority = "낮음"
)

// IsValid reports whether p is one of the known priorities.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityNormal, PriorityLow:
		return true
	}
	return false
}

// Status is the lifecycle state of a task.
type Status string

const (
	StatusTodo       Status = "진행 예정"
	StatusInProgress Status = "진행 중"
	StatusDone       Status = "완료"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Source records how a task or suggestion was produced.
type Source string

const (
	SourceRule   Source = "rule"
	SourceLLM    Source = "llm"
	SourceManual Source = "manual"
)

// Task is a work item extracted from chat or entered by hand.
type Task struct {
	ID          string
	Title       string
	Description string
	AssignedTo  string
	DueDate     datemath.Date // zero when unknown
	Priority    Priority
	Tags        []string
	Status      Status
	Progress    int // 0..100
	Source      Source
	Channel     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasDueDate reports whether the task has a known due date.
func (t Task) HasDueDate() bool {
	return !t.DueDate.IsZero()
}

// HasTag reports whether tag is attached to the task.
func (t Task) HasTag(tag string) bool {
	for _, tg := range t.Tags {
		if tg == tag {
			return true
		}
	}
	return false
}
