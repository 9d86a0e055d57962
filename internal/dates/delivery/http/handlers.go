package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	pkgErrors "actionsense/pkg/errors"
	"actionsense/pkg/response"
)

// Resolve godoc
// @Summary     Resolve a relative date
// @Description Finds the calendar date a Korean relative expression such as "다음주 화요일" refers to. Text without a date answers resolved=false.
// @Tags        Dates
// @Accept      json
// @Produce     json
// @Param       body body resolveReq true "Text and optional reference date"
// @Success     200  {object} resolveResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/dates/resolve [POST]
func (h *handler) Resolve(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processResolveReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	input, err := req.toInput(h.loc)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	output, err := h.uc.Resolve(ctx, input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newResolveResp(output))
}

func (h *handler) respondError(c *gin.Context, err error) {
	mapped := h.mapError(err)
	var he *pkgErrors.HTTPError
	if errors.As(mapped, &he) {
		response.Error(c, mapped, nil)
		return
	}
	h.l.Errorf(c.Request.Context(), "dates.delivery.http: %v", err)
	response.InternalError(c, err)
}
