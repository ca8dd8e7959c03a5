package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/adityawp/casaly/internal/apperr"
	"github.com/adityawp/casaly/pkg/helpers"
	"github.com/adityawp/casaly/pkg/response"
)

// CtxUserIDKey is the Gin context key holding the authenticated subject id.
const CtxUserIDKey = "userID"

// Auth validates the bearer token from the Authorization header and injects
// the subject id into the Gin context. On any failure the request is aborted
// and the downstream handler never runs.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.Error[any](c, http.StatusUnauthorized, "missing bearer token", nil)
			c.Abort()
			return
		}
		claims, err := jwt.Parse(token)
		if err != nil {
			response.Error[any](c, apperr.Status(err), apperr.Message(err), nil)
			c.Abort()
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
