package delivery_http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	ports "blog-service/internal/domain/ports/output"
	"blog-service/internal/infrastructure/inbound/http/middleware"
)

type Registrar interface {
	Register(r gin.IRouter)
}

// NewRouter mounts the JSON API under /api and the page routes at the root.
func NewRouter(log ports.Logger, metrics ports.MetricsProvider, api []Registrar, pages Registrar) *gin.Engine {
	router := gin.New()
	// RequestLogger wraps Recovery so recovered panics are still logged and counted as 500s.
	router.Use(
		middleware.RequestLogger(log, metrics),
		middleware.Recovery(log),
	)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := router.Group("/api")
	for _, r := range api {
		r.Register(apiGroup)
	}
	if pages != nil {
		pages.Register(router)
	}

	return router
}
