package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	pkgErrors "actionsense/pkg/errors"
	"actionsense/pkg/response"
)

// Analyze godoc
// @Summary     Analyze a chat message
// @Description Detects whether a message asks for action and proposes a task. High-confidence hits are registered automatically and returned as auto_created.
// @Tags        ActionSense
// @Accept      json
// @Produce     json
// @Param       body body analyzeReq true "Chat message"
// @Success     200  {object} analyzeResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/actionsense/analyze [POST]
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAnalyzeReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	input, err := req.toInput(h.loc)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Analyze(ctx, input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newAnalyzeResp(output))
}

// CreateTask godoc
// @Summary     Create a task
// @Description Registers a task, typically an accepted suggestion from /analyze.
// @Tags        ActionSense
// @Accept      json
// @Produce     json
// @Param       body body createTaskReq true "Task fields"
// @Success     201  {object} taskDetailResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/actionsense/tasks [POST]
func (h *handler) CreateTask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateTaskReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	input, err := req.toInput()
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.CreateTask(ctx, input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Created(c, h.newTaskDetailResp(output.Task))
}

// ListTasks godoc
// @Summary     List tasks
// @Description Lists tasks ordered by due date, undated last.
// @Tags        ActionSense
// @Produce     json
// @Param       status   query string false "진행 예정, 진행 중 or 완료"
// @Param       assignee query string false "Assignee"
// @Param       priority query string false "높음, 보통 or 낮음"
// @Param       tag      query string false "Tag without #"
// @Success     200 {object} listTasksResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/actionsense/tasks [GET]
func (h *handler) ListTasks(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListTasksReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ListTasks(ctx, req.toInput())
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newListTasksResp(output))
}

// GetTask godoc
// @Summary     Get a task
// @Tags        ActionSense
// @Produce     json
// @Param       id  path     string true "Task ID"
// @Success     200 {object} taskDetailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/actionsense/tasks/{id} [GET]
func (h *handler) GetTask(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.GetTask(ctx, c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newTaskDetailResp(output.Task))
}

// UpdateTask godoc
// @Summary     Update a task
// @Description Partial update. Setting progress above 0 starts the task and 100 completes it unless status is given.
// @Tags        ActionSense
// @Accept      json
// @Produce     json
// @Param       id   path string        true "Task ID"
// @Param       body body updateTaskReq true "Fields to change"
// @Success     200  {object} taskDetailResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     404  {object} response.Resp "Not Found"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/actionsense/tasks/{id} [PATCH]
func (h *handler) UpdateTask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateTaskReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	input, err := req.toInput()
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.UpdateTask(ctx, input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newTaskDetailResp(output.Task))
}

// DeleteTask godoc
// @Summary     Delete a task
// @Tags        ActionSense
// @Produce     json
// @Param       id  path     string true "Task ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/actionsense/tasks/{id} [DELETE]
func (h *handler) DeleteTask(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.DeleteTask(ctx, c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *handler) respondError(c *gin.Context, err error) {
	mapped := h.mapError(err)
	var he *pkgErrors.HTTPError
	if errors.As(mapped, &he) {
		response.Error(c, mapped, nil)
		return
	}
	h.l.Errorf(c.Request.Context(), "actionsense.delivery.http: %v", err)
	response.InternalError(c, err)
}
