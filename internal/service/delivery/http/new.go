package http

import (
	"github.com/gin-gonic/gin"

	"github.com/nghia89/landingpage-wedding-sub000/internal/service"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/log"
)

// Handler is the public interface for the service HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc service.UseCase
}

// New creates a new HTTP handler for the service domain.
func New(l log.Logger, uc service.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
