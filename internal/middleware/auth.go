package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/nghia89/landingpage-wedding-sub000/pkg/response"
)

const ctxKeyAdminID = "admin_id"

// Auth verifies the bearer session token issued by the external session
// provider. Tokens are HS256-signed with the shared secret; this service
// never issues them.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			response.Unauthorized(c)
			c.Abort()
			return
		}
		raw := strings.TrimPrefix(header, "Bearer ")

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(m.jwtSecret), nil
		})
		if err != nil || !token.Valid {
			m.l.Warnf(c.Request.Context(), "auth: invalid session token: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		if sub, ok := claims["sub"].(string); ok {
			c.Set(ctxKeyAdminID, sub)
		}
		c.Next()
	}
}

// AdminID extracts the authenticated admin ID from the gin context.
func AdminID(c *gin.Context) string {
	if v, ok := c.Get(ctxKeyAdminID); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
