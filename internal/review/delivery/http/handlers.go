package http

import (
	"github.com/gin-gonic/gin"

	"github.com/nghia89/landingpage-wedding-sub000/pkg/response"
)

// Create godoc
// @Summary     Create a review
// @Tags        Reviews
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Review data"
// @Success     201 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/admin/reviews [POST]
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

	response.Created(c, newReviewResp(output.Review))
}

// List godoc
// @Summary     List approved reviews
// @Description Public testimonial listing. Only approved reviews appear here.
// @Tags        Reviews
// @Produce     json
// @Param       rating query int false "Filter by star rating (1-5)"
// @Param       page   query int false "Page number (default: 1)"
// @Param       limit  query int false "Page size (default: 10)"
// @Success     200 {object} response.Resp
// @Router      /api/reviews [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	input := req.toInput()
	approved := true
	input.Approved = &approved

	output, err := h.uc.List(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	items, p := h.newListResp(output)
	response.OKPaged(c, items, p)
}

// AdminList godoc
// @Summary     List all reviews
// @Description Admin listing including unapproved reviews.
// @Tags        Reviews
// @Produce     json
// @Param       rating     query int  false "Filter by star rating (1-5)"
// @Param       isApproved query bool false "Filter by approval flag"
// @Param       page       query int  false "Page number (default: 1)"
// @Param       limit      query int  false "Page size (default: 10)"
// @Success     200 {object} response.Resp
// @Router      /api/admin/reviews [GET]
func (h *handler) AdminList(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAdminListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.AdminList: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	items, p := h.newListResp(output)
	response.OKPaged(c, items, p)
}

// Detail godoc
// @Summary     Get review detail
// @Tags        Reviews
// @Produce     json
// @Param       id path string true "Review ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/admin/reviews/{id} [GET]
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

	response.OK(c, newReviewResp(output.Review))
}

// Update godoc
// @Summary     Update a review
// @Description Partial update; typically used to approve or reject.
// @Tags        Reviews
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Review ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/admin/reviews/{id} [PUT]
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

	response.OK(c, newReviewResp(output.Review))
}

// Delete godoc
// @Summary     Delete a review
// @Tags        Reviews
// @Produce     json
// @Param       id path string true "Review ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/admin/reviews/{id} [DELETE]
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
