package middleware

import (
	"strconv"
	"strings"

	"meu_delivery/internal/auth"
	"meu_delivery/internal/logger"
	"meu_delivery/pkg/apperrors"
	"meu_delivery/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

// CourierTokenMiddleware requires a bearer token issued to the courier named
// by the :id path parameter.
func CourierTokenMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Cabeçalho Authorization ausente ou inválido."))
			return
		}

		claims, err := tokens.Parse(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			logger.CtxWarn(c.Request.Context(), "Rejected courier token", "error", err.Error())
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			return
		}

		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil || uint(id) != claims.CourierID {
			apperrors.HandleError(c, apperrors.ErrTokenCourierMismatch)
			return
		}

		ctx := logger.WithCourierID(c.Request.Context(), claims.CourierID)
		c.Request = c.Request.WithContext(ctx)
		c.Set(string(contextkeys.CourierIDKey), claims.CourierID)
		c.Next()
	}
}

// GetCourierID returns the courier authenticated by CourierTokenMiddleware.
func GetCourierID(c *gin.Context) (uint, bool) {
	val, exists := c.Get(string(contextkeys.CourierIDKey))
	if !exists {
		return 0, false
	}
	id, ok := val.(uint)
	return id, ok
}
