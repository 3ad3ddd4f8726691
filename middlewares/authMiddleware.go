package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/richardfsdias/trabalho-marmoraria-jacone/utils"
)

// AuthMiddleware rejects requests without a valid bearer token and stows
// the authenticated employee id in the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.Request.Header.Get("Authorization")
		if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"erro": "Token de acesso ausente."})
			c.Abort()
			return
		}

		token := strings.TrimPrefix(auth, "Bearer ")
		funcionarioId, err := utils.FuncionarioIdFromToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"erro": "Token inválido ou expirado."})
			c.Abort()
			return
		}

		ctx := utils.SetTokenInContext(c.Request.Context(), token)
		ctx = utils.SetFuncionarioIdInContext(ctx, funcionarioId)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// CorrelationIdMiddleware tags every request with an id for log tracing,
// honoring one supplied by the caller.
func CorrelationIdMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		correlationId := c.Request.Header.Get("X-Correlation-Id")
		if correlationId == "" {
			correlationId = uuid.NewString()
		}
		ctx := utils.SetCorrelationIdInContext(c.Request.Context(), correlationId)
		c.Request = c.Request.WithContext(ctx)
		c.Writer.Header().Set("X-Correlation-Id", correlationId)
		c.Next()
	}
}
