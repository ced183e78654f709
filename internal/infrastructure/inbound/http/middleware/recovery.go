package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	ports "blog-service/internal/domain/ports/output"
	"blog-service/internal/infrastructure/inbound/http/response"
)

func Recovery(log ports.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.ErrorContext(c.Request.Context(), "Recovered from panic in handler",
			slog.String("path", c.Request.URL.Path),
			slog.Any("panic", recovered))
		response.Error(c, http.StatusInternalServerError, "internal server error")
	})
}
