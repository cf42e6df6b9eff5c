package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "github.com/nghia89/landingpage-wedding-sub000/pkg/errors"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/paging"
)

// NewOKResp returns a new success envelope with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		Success: true,
		Data:    data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Created sends 201 JSON with data.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, NewOKResp(data))
}

// OKPaged sends 200 JSON with data and a pagination block.
func OKPaged(c *gin.Context, data any, p paging.Pagination) {
	c.JSON(http.StatusOK, Resp{
		Success:    true,
		Data:       data,
		Pagination: &p,
	})
}

// Error sends an error envelope. The status comes from the HTTPError when the
// delivery layer mapped one, otherwise 400.
func Error(c *gin.Context, err error) {
	ErrorWithDetails(c, err, nil)
}

// ErrorWithDetails sends an error envelope with field-level details
// (validation failures).
func ErrorWithDetails(c *gin.Context, err error, details any) {
	status := pkgErrors.StatusOf(err, http.StatusBadRequest)
	c.JSON(status, Resp{
		Success: false,
		Error:   err.Error(),
		Details: details,
	})
}

// InternalError sends 500 with the generic message. The real error stays in
// the logs only.
func InternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Resp{
		Success: false,
		Error:   DefaultErrorMessage,
	})
}

// Unauthorized sends 401.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		Success: false,
		Error:   "Unauthorized",
	})
}

// Forbidden sends 403.
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, Resp{
		Success: false,
		Error:   "Forbidden",
	})
}
