package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxKeyRequestID = "request_id"

// RequestID ensures every request has an ID for tracing and logs.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.Request.Header.Get("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(ctxKeyRequestID, rid)
		c.Writer.Header().Set("X-Request-ID", rid)
		c.Next()
	}
}

// GetRequestID extracts the request ID from the gin context when available.
func GetRequestID(c *gin.Context) string {
	if v, ok := c.Get(ctxKeyRequestID); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
