package middleware

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	ports "blog-service/internal/domain/ports/output"
	"blog-service/internal/infrastructure/logger"
)

const (
	HeaderRequestID = "X-Request-Id"
)

// RequestLogger tags every request with an id, then logs and measures it once the handler chain is done.
func RequestLogger(log ports.Logger, metrics ports.MetricsProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Request = c.Request.WithContext(logger.WithRequestID(c.Request.Context(), requestID))
		c.Writer.Header().Set(HeaderRequestID, requestID)

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		duration := time.Since(start)

		metrics.IncrementHTTPRequests(c.Request.Method, route, status)
		metrics.RecordHTTPRequestDuration(c.Request.Method, route, status, duration)

		attrs := []any{
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("route", route),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("duration", duration),
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("errors", c.Errors.String()))
		}

		switch {
		case c.Writer.Status() >= 500:
			log.ErrorContext(c.Request.Context(), "Request failed", attrs...)
		default:
			log.InfoContext(c.Request.Context(), "Request completed", attrs...)
		}
	}
}
