package http

import (
	"github.com/gin-gonic/gin"

	"github.com/nghia89/landingpage-wedding-sub000/pkg/response"
)

// Create godoc
// @Summary     Create a consultation booking
// @Description Accepts the public consultation form and queues an admin follow-up.
// @Tags        Bookings
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Booking data"
// @Success     201 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/bookings [POST]
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

	response.Created(c, newBookingResp(output.Booking))
}

// List godoc
// @Summary     List bookings
// @Description Returns a paginated booking list with status/date/search filters.
// @Tags        Bookings
// @Accept      json
// @Produce     json
// @Param       status query string false "Filter by status (pending/confirmed/completed/cancelled)"
// @Param       date   query string false "Filter by consultation date (YYYY-MM-DD)"
// @Param       search query string false "Match customer name or phone"
// @Param       page   query int    false "Page number (default: 1)"
// @Param       limit  query int    false "Page size (default: 10)"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/bookings [GET]
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
// @Summary     Get booking detail
// @Tags        Bookings
// @Produce     json
// @Param       id path string true "Booking ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/bookings/{id} [GET]
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

	response.OK(c, newBookingResp(output.Booking))
}

// Update godoc
// @Summary     Update a booking
// @Description Partial update; empty fields keep their current value.
// @Tags        Bookings
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Booking ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/bookings/{id} [PUT]
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

	response.OK(c, newBookingResp(output.Booking))
}

// Delete godoc
// @Summary     Delete a booking
// @Tags        Bookings
// @Produce     json
// @Param       id path string true "Booking ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/bookings/{id} [DELETE]
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
