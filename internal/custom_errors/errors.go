package custom_errors

import "errors"

// Post errors
var (
	ErrPostNotFound   = errors.New("post not found")
	ErrPostValidation = errors.New("post validation failed")
)

// Request errors
var (
	ErrInvalidInput = errors.New("invalid input")
)

// Database errors
var (
	ErrDatabaseQuery = errors.New("database query failed")
	ErrDatabaseScan  = errors.New("database scan failed")
)

// Weather errors
var (
	ErrWeatherLookup     = errors.New("weather lookup failed")
	ErrWeatherPayload    = errors.New("malformed weather payload")
	ErrInvalidCoordinate = errors.New("invalid coordinates")
)

// Theme errors
var (
	ErrInvalidColor   = errors.New("invalid hex color")
	ErrInvalidPercent = errors.New("percent must be between 0 and 100")
)
