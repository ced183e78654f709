package theme_service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
	"blog-service/internal/domain/theme"
	"blog-service/internal/infrastructure/logger"
	"blog-service/internal/infrastructure/outbound/metrics/prometheus"
	weather_mock "blog-service/mocks/weather"
)

var seoul = model.Coordinates{Lat: 37.5665, Lon: 126.9780}

func newService(t *testing.T, lookup *weather_mock.WeatherLookup, locale theme.Locale) *ThemeService {
	return NewThemeService(lookup, logger.New("test"), prometheus.NewPrometheusMetricsProvider(), Options{
		DefaultLocation: seoul,
		Timeout:         time.Second,
		Locale:          locale,
	})
}

func TestThemeService_Resolve(t *testing.T) {
	tests := []struct {
		name       string
		coords     *model.Coordinates
		mocks      func(lookup *weather_mock.WeatherLookup)
		wantTheme  model.Theme
		wantReport *model.WeatherReport
		wantErr    error
	}{
		{
			name:   "Rain at given coordinates",
			coords: &model.Coordinates{Lat: 35.1796, Lon: 129.0756},
			mocks: func(lookup *weather_mock.WeatherLookup) {
				lookup.On("CurrentWeather", mock.Anything, 35.1796, 129.0756).
					Return(&model.WeatherReport{Code: 61, Temp: 12.5}, nil)
			},
			wantTheme:  model.Theme{Color: "#4A90E2", Name: model.ThemeRain, Label: "비"},
			wantReport: &model.WeatherReport{Code: 61, Temp: 12.5, Description: "비"},
		},
		{
			name:   "Default location when coordinates are absent",
			coords: nil,
			mocks: func(lookup *weather_mock.WeatherLookup) {
				lookup.On("CurrentWeather", mock.Anything, seoul.Lat, seoul.Lon).
					Return(&model.WeatherReport{Code: 0, Temp: 21}, nil)
			},
			wantTheme:  model.Theme{Color: "#00C6BD", Name: model.ThemeClear, Label: "맑음"},
			wantReport: &model.WeatherReport{Code: 0, Temp: 21, Description: "맑음"},
		},
		{
			name:   "Unsupported code maps to default without error",
			coords: nil,
			mocks: func(lookup *weather_mock.WeatherLookup) {
				lookup.On("CurrentWeather", mock.Anything, seoul.Lat, seoul.Lon).
					Return(&model.WeatherReport{Code: 9999, Temp: 3}, nil)
			},
			wantTheme:  theme.Default(theme.LocaleKorean),
			wantReport: &model.WeatherReport{Code: 9999, Temp: 3, Description: "기본"},
		},
		{
			name:   "Lookup failure falls back to default",
			coords: nil,
			mocks: func(lookup *weather_mock.WeatherLookup) {
				lookup.On("CurrentWeather", mock.Anything, seoul.Lat, seoul.Lon).
					Return(nil, errors.New("dial tcp: i/o timeout"))
			},
			wantTheme: theme.Default(theme.LocaleKorean),
			wantErr:   custom_errors.ErrWeatherLookup,
		},
		{
			name:   "Empty lookup result falls back to default",
			coords: nil,
			mocks: func(lookup *weather_mock.WeatherLookup) {
				lookup.On("CurrentWeather", mock.Anything, seoul.Lat, seoul.Lon).Return(nil, nil)
			},
			wantTheme: theme.Default(theme.LocaleKorean),
			wantErr:   custom_errors.ErrWeatherLookup,
		},
		{
			name:      "Invalid coordinates never reach the lookup",
			coords:    &model.Coordinates{Lat: 123, Lon: 0},
			mocks:     func(lookup *weather_mock.WeatherLookup) {},
			wantTheme: theme.Default(theme.LocaleKorean),
			wantErr:   custom_errors.ErrInvalidCoordinate,
		},
		{
			name:   "Panicking lookup still yields a theme",
			coords: nil,
			mocks: func(lookup *weather_mock.WeatherLookup) {
				lookup.On("CurrentWeather", mock.Anything, seoul.Lat, seoul.Lon).
					Panic("decoder exploded")
			},
			wantTheme: theme.Default(theme.LocaleKorean),
			wantErr:   custom_errors.ErrWeatherLookup,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lookup := weather_mock.NewWeatherLookup(t)
			tt.mocks(lookup)
			svc := newService(t, lookup, theme.LocaleKorean)

			report, got, err := svc.Resolve(context.Background(), tt.coords)

			assert.Equal(t, tt.wantTheme, got)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, report)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantReport, report)
		})
	}
}

func TestThemeService_ResolveAppliesTimeout(t *testing.T) {
	lookup := weather_mock.NewWeatherLookup(t)
	lookup.On("CurrentWeather", mock.Anything, seoul.Lat, seoul.Lon).
		Return(func(ctx context.Context, lat, lon float64) (*model.WeatherReport, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})

	svc := NewThemeService(lookup, logger.New("test"), prometheus.NewPrometheusMetricsProvider(), Options{
		DefaultLocation: seoul,
		Timeout:         20 * time.Millisecond,
		Locale:          theme.LocaleEnglish,
	})

	start := time.Now()
	_, got, err := svc.Resolve(context.Background(), nil)

	assert.Less(t, time.Since(start), time.Second)
	assert.ErrorIs(t, err, custom_errors.ErrWeatherLookup)
	assert.Equal(t, model.Theme{Color: "#00C6BD", Name: model.ThemeDefault, Label: "Default"}, got)
}
