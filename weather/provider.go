package weather

import (
	"context"

	"go-beacon/types"
)

// Provider is the contract the coordinator binds to for weather data.
// Implementations must honor ctx cancellation on every call.
type Provider interface {
	// GetCurrent fetches current conditions for a coordinate.
	GetCurrent(ctx context.Context, lat, lon float64) (types.WeatherCondition, error)

	// GetForecast fetches hourly conditions covering the next hours.
	GetForecast(ctx context.Context, lat, lon float64, hours int) ([]types.WeatherCondition, error)

	// GetAlerts fetches active advisories for a coordinate.
	GetAlerts(ctx context.Context, lat, lon float64) ([]types.WeatherAlert, error)

	// Name returns the provider's name.
	Name() string
}
