package http

import (
	"strings"
	"time"

	"actionsense/internal/actionsense"
	"actionsense/internal/actionsense/detector"
	"actionsense/internal/model"
	"actionsense/pkg/datemath"
	"actionsense/pkg/response"
)

// --- Request DTOs ---

type analyzeReq struct {
	Text      string `json:"text"      binding:"required" example:"@민수 내일까지 배포 부탁해요"`
	Channel   string `json:"channel"   example:"general"`
	Author    string `json:"author"    example:"지수"`
	Reference string `json:"reference" example:"2025-11-13"`
}

func (r analyzeReq) validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return errTextRequired
	}
	return nil
}

func (r analyzeReq) toInput(loc *time.Location) (actionsense.AnalyzeInput, error) {
	ref, err := datemath.ParseReference(r.Reference, loc)
	if err != nil {
		return actionsense.AnalyzeInput{}, errInvalidReference
	}
	return actionsense.AnalyzeInput{
		Text:      r.Text,
		Channel:   r.Channel,
		Author:    r.Author,
		Reference: ref,
	}, nil
}

// ---

type createTaskReq struct {
	Title       string   `json:"title"       binding:"max=200"`
	Description string   `json:"description" binding:"max=2000"`
	AssignedTo  string   `json:"assigned_to"`
	DueDate     string   `json:"due_date"    example:"2025-11-14"`
	Priority    string   `json:"priority"    example:"보통"`
	Tags        []string `json:"tags"`
	Channel     string   `json:"channel"`
	Source      string   `json:"source"      binding:"omitempty,oneof=rule llm manual"`
	Preview     string   `json:"preview"`
}

func (r createTaskReq) validate() error { return nil }

func (r createTaskReq) toInput() (actionsense.CreateTaskInput, error) {
	due, err := parseDueDate(r.DueDate)
	if err != nil {
		return actionsense.CreateTaskInput{}, err
	}
	return actionsense.CreateTaskInput{
		Title:       r.Title,
		Description: r.Description,
		AssignedTo:  r.AssignedTo,
		DueDate:     due,
		Priority:    model.Priority(r.Priority),
		Tags:        r.Tags,
		Channel:     r.Channel,
		Source:      model.Source(r.Source),
		Preview:     r.Preview,
	}, nil
}

// ---

type listTasksReq struct {
	Status     string `form:"status"`
	AssignedTo string `form:"assignee"`
	Priority   string `form:"priority"`
	Tag        string `form:"tag"`
}

func (r listTasksReq) validate() error { return nil }

func (r listTasksReq) toInput() actionsense.ListTasksInput {
	return actionsense.ListTasksInput{
		Status:     model.Status(r.Status),
		AssignedTo: r.AssignedTo,
		Priority:   model.Priority(r.Priority),
		Tag:        strings.TrimPrefix(r.Tag, "#"),
	}
}

// ---

// updateTaskReq fields are optional; an empty due_date clears the due date.
type updateTaskReq struct {
	ID         string  `json:"-"` // populated from URI param
	Title      *string `json:"title"`
	AssignedTo *string `json:"assigned_to"`
	DueDate    *string `json:"due_date"`
	Priority   *string `json:"priority"`
	Status     *string `json:"status"`
	Progress   *int    `json:"progress"`
}

func (r updateTaskReq) validate() error {
	if r.ID == "" {
		return errIDRequired
	}
	return nil
}

func (r updateTaskReq) toInput() (actionsense.UpdateTaskInput, error) {
	input := actionsense.UpdateTaskInput{
		ID:         r.ID,
		Title:      r.Title,
		AssignedTo: r.AssignedTo,
		Progress:   r.Progress,
	}
	if r.DueDate != nil {
		due, err := parseDueDate(*r.DueDate)
		if err != nil {
			return actionsense.UpdateTaskInput{}, err
		}
		input.DueDate = &due
	}
	if r.Priority != nil {
		p := model.Priority(*r.Priority)
		input.Priority = &p
	}
	if r.Status != nil {
		s := model.Status(*r.Status)
		input.Status = &s
	}
	return input, nil
}

func parseDueDate(s string) (datemath.Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return datemath.Date{}, nil
	}
	d, err := datemath.ParseDate(s)
	if err != nil {
		return datemath.Date{}, errInvalidDueDate
	}
	return d, nil
}

// --- Response DTOs ---

type extractedResp struct {
	Title      string   `json:"title"`
	AssignedTo string   `json:"assigned_to,omitempty"`
	DueDate    string   `json:"due_date,omitempty"`
	DueRule    string   `json:"due_rule,omitempty"`
	Priority   string   `json:"priority"`
	Tags       []string `json:"tags"`
}

func newExtractedResp(ex detector.Extracted) extractedResp {
	tags := ex.Tags
	if tags == nil {
		tags = []string{}
	}
	return extractedResp{
		Title:      ex.Title,
		AssignedTo: ex.AssignedTo,
		DueDate:    ex.DueDate.String(),
		DueRule:    string(ex.DueRule),
		Priority:   string(ex.Priority),
		Tags:       tags,
	}
}

type suggestionResp struct {
	Extracted  extractedResp `json:"extracted"`
	Confidence float64       `json:"confidence" example:"0.9"`
	Source     string        `json:"source"     example:"rule"`
	Preview    string        `json:"preview"`
}

type taskResp struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	AssignedTo  string            `json:"assigned_to,omitempty"`
	DueDate     string            `json:"due_date,omitempty"`
	Priority    string            `json:"priority"`
	Tags        []string          `json:"tags"`
	Status      string            `json:"status"`
	Progress    int               `json:"progress"`
	Source      string            `json:"source"`
	Channel     string            `json:"channel,omitempty"`
	CreatedAt   response.DateTime `json:"created_at" swaggertype:"string"`
	UpdatedAt   response.DateTime `json:"updated_at" swaggertype:"string"`
}

func newTaskResp(t model.Task) taskResp {
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}
	return taskResp{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		AssignedTo:  t.AssignedTo,
		DueDate:     t.DueDate.String(),
		Priority:    string(t.Priority),
		Tags:        tags,
		Status:      string(t.Status),
		Progress:    t.Progress,
		Source:      string(t.Source),
		Channel:     t.Channel,
		CreatedAt:   response.DateTime(t.CreatedAt),
		UpdatedAt:   response.DateTime(t.UpdatedAt),
	}
}

type analyzeResp struct {
	IsAction    bool             `json:"is_action"`
	Suggestions []suggestionResp `json:"suggestions"`
	AutoCreated *taskResp        `json:"auto_created,omitempty"`
}

func (h *handler) newAnalyzeResp(out actionsense.AnalyzeOutput) analyzeResp {
	resp := analyzeResp{
		IsAction:    out.IsAction,
		Suggestions: make([]suggestionResp, len(out.Suggestions)),
	}
	for i, s := range out.Suggestions {
		resp.Suggestions[i] = suggestionResp{
			Extracted:  newExtractedResp(s.Extracted),
			Confidence: s.Confidence,
			Source:     string(s.Source),
			Preview:    s.Preview,
		}
	}
	if out.AutoCreated != nil {
		t := newTaskResp(*out.AutoCreated)
		resp.AutoCreated = &t
	}
	return resp
}

type taskDetailResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newTaskDetailResp(t model.Task) taskDetailResp {
	return taskDetailResp{Task: newTaskResp(t)}
}

type listTasksResp struct {
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
}

func (h *handler) newListTasksResp(out actionsense.ListTasksOutput) listTasksResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listTasksResp{Tasks: tasks, Total: out.Total}
}
