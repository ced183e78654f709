package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	post_service "blog-service/internal/application/service/post"
	theme_service "blog-service/internal/application/service/theme"
	model "blog-service/internal/domain/models"
	"blog-service/internal/domain/theme"
	"blog-service/internal/infrastructure/config"
	delivery_http "blog-service/internal/infrastructure/inbound/http"
	post_http "blog-service/internal/infrastructure/inbound/http/post"
	"blog-service/internal/infrastructure/inbound/http/view"
	weather_http "blog-service/internal/infrastructure/inbound/http/weather"
	metrics_server "blog-service/internal/infrastructure/inbound/metrics"
	"blog-service/internal/infrastructure/logger"
	"blog-service/internal/infrastructure/markdown"
	prometheus_metrics "blog-service/internal/infrastructure/outbound/metrics/prometheus"
	post_postgres "blog-service/internal/infrastructure/outbound/repository/post/postgres"
	"blog-service/internal/infrastructure/outbound/repository/postgres"
	"blog-service/internal/infrastructure/outbound/weather/openmeteo"
)

func main() {
	cfg := config.MustLoad()
	ctx := context.Background()
	log := logger.New(cfg.Env)

	if cfg.Env != "dev" && cfg.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := postgres.Migrate(cfg.Database, log); err != nil {
		log.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Error("Failed to create postgres pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	metrics := prometheus_metrics.NewPrometheusMetricsProvider()
	metrics.SetServiceHealth(true)

	postRepo := post_postgres.NewPostRepository(pool, log, metrics)
	postService := post_service.NewPostService(postRepo, log, metrics, cfg.ViewCount.Timeout)

	locale := theme.ParseLocale(cfg.Weather.Locale)
	weatherClient := openmeteo.NewClient(cfg.Weather.BaseURL, cfg.Weather.Timeout, log)
	themeService := theme_service.NewThemeService(weatherClient, log, metrics, theme_service.Options{
		DefaultLocation: model.Coordinates{Lat: cfg.Weather.DefaultLat, Lon: cfg.Weather.DefaultLon},
		Timeout:         cfg.Weather.Timeout,
		Locale:          locale,
	})

	renderer := markdown.NewRenderer()

	router := delivery_http.NewRouter(log, metrics,
		[]delivery_http.Registrar{
			post_http.NewPostHTTPService(postService, renderer, log),
			weather_http.NewWeatherHandler(themeService, theme.Default(locale), log),
		},
		view.NewController(postService, themeService, renderer, log),
	)

	httpServer := delivery_http.NewServer(router, delivery_http.Options{
		Address:        cfg.HTTPServer.Address,
		Port:           cfg.HTTPServer.Port,
		ReadTimeout:    cfg.HTTPServer.ReadTimeout,
		WriteTimeout:   cfg.HTTPServer.WriteTimeout,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	}, log)

	metricsServer := metrics_server.NewMetricsServer(cfg.Prometheus.Address, cfg.Prometheus.Port, log)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	done := make(chan bool, 1)
	metricsDone := make(chan bool, 1)

	go func() {
		if err := httpServer.Run(); err != nil {
			log.Error("HTTP server error", slog.String("error", err.Error()))
			select {
			case quit <- syscall.SIGTERM:
			default:
			}
		}
		done <- true
	}()

	go func() {
		if err := metricsServer.Run(); err != nil {
			log.Error("Metrics server error", slog.String("error", err.Error()))
		}
		metricsDone <- true
	}()

	<-quit
	log.Info("Shutting down servers...")

	metrics.SetServiceHealth(false)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", slog.String("error", err.Error()))
	}

	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Metrics server shutdown error", slog.String("error", err.Error()))
	}

	<-done
	<-metricsDone

	postService.Close()
	log.Info("Servers exited")
}
