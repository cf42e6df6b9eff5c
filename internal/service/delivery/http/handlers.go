package http

import (
	"github.com/gin-gonic/gin"

	"github.com/nghia89/landingpage-wedding-sub000/pkg/response"
)

// Create godoc
// @Summary     Create a service
// @Tags        Services
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Service data"
// @Success     201 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Conflict"
// @Router      /api/admin/services [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, newServiceResp(output.Service))
}

// List godoc
// @Summary     List services
// @Description Public catalog listing with category and active filters.
// @Tags        Services
// @Produce     json
// @Param       category query string false "Filter by category"
// @Param       isActive query bool   false "Filter by active flag"
// @Param       page     query int    false "Page number (default: 1)"
// @Param       limit    query int    false "Page size (default: 10)"
// @Success     200 {object} response.Resp
// @Router      /api/services [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	items, p := h.newListResp(output)
	response.OKPaged(c, items, p)
}

// Detail godoc
// @Summary     Get service detail
// @Tags        Services
// @Produce     json
// @Param       id path string true "Service ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/services/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errIDRequired)
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newServiceResp(output.Service))
}

// Update godoc
// @Summary     Update a service
// @Tags        Services
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Service ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/admin/services/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newServiceResp(output.Service))
}

// Delete godoc
// @Summary     Delete a service
// @Tags        Services
// @Produce     json
// @Param       id path string true "Service ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/admin/services/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errIDRequired)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
