package http

import (
	"github.com/gin-gonic/gin"

	"github.com/nghia89/landingpage-wedding-sub000/pkg/response"
)

// Create godoc
// @Summary     Create a promotion
// @Tags        Promotions
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Promotion data"
// @Success     201 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/admin/promotions [POST]
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

	response.Created(c, newPromotionResp(output.Promotion))
}

// List godoc
// @Summary     List promotions
// @Description Public campaign listing with an active filter.
// @Tags        Promotions
// @Produce     json
// @Param       isActive query bool false "Filter by active flag"
// @Param       page     query int  false "Page number (default: 1)"
// @Param       limit    query int  false "Page size (default: 10)"
// @Success     200 {object} response.Resp
// @Router      /api/promotions [GET]
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
// @Summary     Get promotion detail
// @Tags        Promotions
// @Produce     json
// @Param       id path string true "Promotion ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/admin/promotions/{id} [GET]
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

	response.OK(c, newPromotionResp(output.Promotion))
}

// Update godoc
// @Summary     Update a promotion
// @Tags        Promotions
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Promotion ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/admin/promotions/{id} [PUT]
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

	response.OK(c, newPromotionResp(output.Promotion))
}

// Delete godoc
// @Summary     Delete a promotion
// @Tags        Promotions
// @Produce     json
// @Param       id path string true "Promotion ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/admin/promotions/{id} [DELETE]
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
