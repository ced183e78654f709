package ports

import "time"

type MetricsProvider interface {
	IncrementHTTPRequests(method, route, status string)
	RecordHTTPRequestDuration(method, route, status string, duration time.Duration)

	IncrementDatabaseQueries(queryType string, success bool)
	RecordDatabaseQueryDuration(queryType string, duration time.Duration)

	IncrementPostOperations(operation string, success bool)
	IncrementViewCountUpdates(success bool)

	IncrementWeatherLookups(success bool)
	RecordWeatherLookupDuration(duration time.Duration)
	IncrementThemeResolutions(theme string, fallback bool)

	SetServiceHealth(healthy bool)
}
