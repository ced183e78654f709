package weather_http

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
)

type ThemeResolver interface {
	Resolve(ctx context.Context, coords *model.Coordinates) (*model.WeatherReport, model.Theme, error)
}

type WeatherHandler struct {
	themeService ThemeResolver
	fallback     model.Theme
	log          ports.Logger
}

func NewWeatherHandler(themeService ThemeResolver, fallback model.Theme, log ports.Logger) *WeatherHandler {
	return &WeatherHandler{
		themeService: themeService,
		fallback:     fallback,
		log:          log,
	}
}

func (h *WeatherHandler) Register(r gin.IRouter) {
	r.GET("/weather", h.GetWeather)
}

type WeatherResponse struct {
	Success bool                 `json:"success"`
	Weather *model.WeatherReport `json:"weather,omitempty"`
	Theme   model.Theme          `json:"theme"`
	Error   string               `json:"error,omitempty"`
}

// GetWeather always answers 200 so the client can apply the returned theme either way.
func (h *WeatherHandler) GetWeather(c *gin.Context) {
	coords, err := ParseCoordinates(c.Query("lat"), c.Query("lon"))
	if err != nil {
		h.log.DebugContext(c.Request.Context(), "Invalid weather coordinates", slog.String("lat", c.Query("lat")), slog.String("lon", c.Query("lon")))
		c.JSON(http.StatusOK, WeatherResponse{Success: false, Theme: h.fallback, Error: err.Error()})
		return
	}

	report, theme, err := h.themeService.Resolve(c.Request.Context(), coords)
	if err != nil {
		c.JSON(http.StatusOK, WeatherResponse{Success: false, Theme: theme, Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, WeatherResponse{Success: true, Weather: report, Theme: theme})
}

// ParseCoordinates returns nil when both values are empty so the configured default location applies.
func ParseCoordinates(lat, lon string) (*model.Coordinates, error) {
	if lat == "" && lon == "" {
		return nil, nil
	}
	latitude, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return nil, custom_errors.ErrInvalidCoordinate
	}
	longitude, err := strconv.ParseFloat(lon, 64)
	if err != nil {
		return nil, custom_errors.ErrInvalidCoordinate
	}
	return &model.Coordinates{Lat: latitude, Lon: longitude}, nil
}
