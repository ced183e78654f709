package theme_service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"

	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
	theme_port "blog-service/internal/domain/ports/input/theme"
	output "blog-service/internal/domain/ports/output"
	"blog-service/internal/domain/theme"
)

const defaultLookupTimeout = 5 * time.Second

type Options struct {
	DefaultLocation model.Coordinates
	Timeout         time.Duration
	Locale          theme.Locale
}

type ThemeService struct {
	lookup   output.WeatherLookup
	log      output.Logger
	metrics  output.MetricsProvider
	validate *validator.Validate
	opts     Options
}

var _ theme_port.Service = (*ThemeService)(nil)

func NewThemeService(
	lookup output.WeatherLookup,
	log output.Logger,
	metrics output.MetricsProvider,
	opts Options,
) *ThemeService {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultLookupTimeout
	}
	if opts.Locale == "" {
		opts.Locale = theme.LocaleKorean
	}
	return &ThemeService{
		lookup:   lookup,
		log:      log,
		metrics:  metrics,
		validate: validator.New(),
		opts:     opts,
	}
}

// Resolve looks up the weather at coords (or the default location when coords is nil)
// and maps it to a theme. It always returns a usable theme. When the lookup fails the
// default theme is returned together with the error that caused the fallback.
func (s *ThemeService) Resolve(ctx context.Context, coords *model.Coordinates) (report *model.WeatherReport, result model.Theme, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.log.ErrorContext(ctx, "Recovered from panic while resolving theme", slog.Any("panic", r))
			report = nil
			result = theme.Default(s.opts.Locale)
			err = fmt.Errorf("%w: %v", custom_errors.ErrWeatherLookup, r)
		}
		s.metrics.IncrementThemeResolutions(string(result.Name), err != nil)
	}()

	location := s.opts.DefaultLocation
	if coords != nil {
		location = *coords
	}
	if verr := s.validate.Struct(location); verr != nil {
		s.log.DebugContext(ctx, "Rejected weather coordinates",
			slog.Float64("lat", location.Lat),
			slog.Float64("lon", location.Lon))
		return nil, theme.Default(s.opts.Locale), fmt.Errorf("%w: %v", custom_errors.ErrInvalidCoordinate, verr)
	}

	lookupCtx, cancel := context.WithTimeout(ctx, s.opts.Timeout)
	defer cancel()

	start := time.Now()
	weather, lerr := s.lookup.CurrentWeather(lookupCtx, location.Lat, location.Lon)
	s.metrics.RecordWeatherLookupDuration(time.Since(start))
	if lerr == nil && weather == nil {
		lerr = custom_errors.ErrWeatherPayload
	}
	if lerr != nil {
		s.metrics.IncrementWeatherLookups(false)
		s.log.WarnContext(ctx, "Weather lookup failed, using default theme",
			slog.Float64("lat", location.Lat),
			slog.Float64("lon", location.Lon),
			slog.String("error", lerr.Error()))
		return nil, theme.Default(s.opts.Locale), fmt.Errorf("%w: %v", custom_errors.ErrWeatherLookup, lerr)
	}
	s.metrics.IncrementWeatherLookups(true)

	result = theme.ForCodeLocalized(weather.Code, s.opts.Locale)
	report = &model.WeatherReport{
		Code:        weather.Code,
		Temp:        weather.Temp,
		Description: result.Label,
	}

	s.log.DebugContext(ctx, "Resolved theme",
		slog.Int("code", weather.Code),
		slog.String("theme", string(result.Name)))
	return report, result, nil
}
