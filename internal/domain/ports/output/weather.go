package ports

import (
	"context"

	model "blog-service/internal/domain/models"
)

//go:generate mockery --name WeatherLookup --dir . --output ../../../../mocks/weather --outpkg mocks --filename WeatherLookup.go
type WeatherLookup interface {
	CurrentWeather(ctx context.Context, lat, lon float64) (*model.WeatherReport, error)
}
