package theme_service

import (
	"context"

	model "blog-service/internal/domain/models"
)

// Service resolves the current theme. Resolve always returns a usable theme;
// a non-nil error only reports that the default theme was used as a fallback.
//
//go:generate mockery --name Service --dir . --output ../../../../../mocks/theme --outpkg mocks --filename Service.go
type Service interface {
	Resolve(ctx context.Context, coords *model.Coordinates) (*model.WeatherReport, model.Theme, error)
}
