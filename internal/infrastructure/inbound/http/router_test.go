package delivery_http_test

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ports "blog-service/internal/domain/ports/output"
	delivery_http "blog-service/internal/infrastructure/inbound/http"
	"blog-service/internal/infrastructure/logger"
	prometheus_metrics "blog-service/internal/infrastructure/outbound/metrics/prometheus"
)

type pingRegistrar struct{}

func (pingRegistrar) Register(r gin.IRouter) {
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/boom", func(*gin.Context) { panic("boom") })
	r.GET("/whoami", func(c *gin.Context) { c.String(http.StatusOK, logger.RequestID(c.Request.Context())) })
}

// recordingMetrics captures HTTP request metrics. Other metrics are not used by the router.
type recordingMetrics struct {
	ports.MetricsProvider

	mu       sync.Mutex
	requests []string
	timed    int
}

func (m *recordingMetrics) IncrementHTTPRequests(method, route, status string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, method+" "+route+" "+status)
}

func (m *recordingMetrics) RecordHTTPRequestDuration(string, string, string, time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.timed++
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return delivery_http.NewRouter(
		logger.New("test"),
		prometheus_metrics.NewPrometheusMetricsProvider(),
		[]delivery_http.Registrar{pingRegistrar{}},
		nil,
	)
}

func TestRouter_Health(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestRouter_APIGroup(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/ping", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestRouter_RecoversFromPanic(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"internal server error"}`, rec.Body.String())
}

func TestRouter_PanicIsCountedAsServerError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	metrics := &recordingMetrics{}
	router := delivery_http.NewRouter(logger.New("test"), metrics, []delivery_http.Registrar{pingRegistrar{}}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/boom", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, []string{"GET /api/boom 500"}, metrics.requests)
	assert.Equal(t, 1, metrics.timed)
}

func TestRouter_RequestIDReachesHandlers(t *testing.T) {
	t.Run("Propagates incoming header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/whoami", nil)
		req.Header.Set("X-Request-Id", "trace-123")
		rec := httptest.NewRecorder()

		newTestRouter().ServeHTTP(rec, req)

		assert.Equal(t, "trace-123", rec.Body.String())
		assert.Equal(t, "trace-123", rec.Header().Get("X-Request-Id"))
	})

	t.Run("Generates one when missing", func(t *testing.T) {
		rec := httptest.NewRecorder()

		newTestRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/whoami", nil))

		assert.NotEmpty(t, rec.Body.String())
		assert.Equal(t, rec.Header().Get("X-Request-Id"), rec.Body.String())
	})
}
