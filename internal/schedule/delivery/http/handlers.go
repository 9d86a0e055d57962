package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	pkgErrors "actionsense/pkg/errors"
	"actionsense/pkg/response"
)

// Parse godoc
// @Summary     Parse an event from text
// @Description Reads date, time, location, @participants and title out of text like "내일 오전 10시에 회의실 A에서 디자인 리뷰". Nothing is written to the calendar.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Event text"
// @Success     200  {object} draftResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	input, err := req.toInput(h.loc)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Parse(ctx, input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newDraftResp(output.Draft))
}

// Export godoc
// @Summary     Create a calendar event
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       body body exportReq true "Reviewed event"
// @Success     201  {object} exportResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     502  {object} response.Resp "Calendar error"
// @Failure     503  {object} response.Resp "Calendar not configured"
// @Router      /api/v1/schedule/events [POST]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExportReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	input, err := req.toInput()
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Export(ctx, input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Created(c, h.newExportResp(output))
}

// ListEvents godoc
// @Summary     List calendar events for a day
// @Tags        Schedule
// @Produce     json
// @Param       date query    string false "YYYY-MM-DD, defaults to today"
// @Success     200  {object} listEventsResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     502  {object} response.Resp "Calendar error"
// @Failure     503  {object} response.Resp "Calendar not configured"
// @Router      /api/v1/schedule/events [GET]
func (h *handler) ListEvents(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListEventsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	input, err := req.toInput()
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ListEvents(ctx, input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newListEventsResp(output))
}

func (h *handler) respondError(c *gin.Context, err error) {
	mapped := h.mapError(err)
	var he *pkgErrors.HTTPError
	if errors.As(mapped, &he) {
		response.Error(c, mapped, nil)
		return
	}
	h.l.Errorf(c.Request.Context(), "schedule.delivery.http: %v", err)
	response.InternalError(c, err)
}
