package weather

import (
	"context"
	"math"
	"time"

	"go-beacon/types"
)

// MockProvider returns plausible placeholder conditions with no network
// access. Output is deterministic for a given coordinate and every condition
// carries Simulated=true.
type MockProvider struct{}

// NewMockProvider creates the offline provider.
func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

// Name returns the provider name.
func (m *MockProvider) Name() string {
	return "Mock"
}

// GetCurrent returns simulated mild conditions derived from the coordinate.
func (m *MockProvider) GetCurrent(ctx context.Context, lat, lon float64) (types.WeatherCondition, error) {
	if err := ctx.Err(); err != nil {
		return types.WeatherCondition{}, err
	}
	return m.condition(lat, lon, 0), nil
}

// GetForecast returns one simulated reading per 3-hour step of the horizon.
func (m *MockProvider) GetForecast(ctx context.Context, lat, lon float64, hours int) ([]types.WeatherCondition, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	steps := hours / 3
	if steps < 1 {
		steps = 1
	}
	forecast := make([]types.WeatherCondition, 0, steps)
	for i := 0; i < steps; i++ {
		forecast = append(forecast, m.condition(lat, lon, i+1))
	}
	return forecast, nil
}

// GetAlerts returns no active alerts.
func (m *MockProvider) GetAlerts(ctx context.Context, lat, lon float64) ([]types.WeatherAlert, error) {
	return nil, ctx.Err()
}

// condition derives a stable reading from the coordinate so repeated calls
// agree. Latitude shifts temperature, longitude shifts wind.
func (m *MockProvider) condition(lat, lon float64, step int) types.WeatherCondition {
	temp := 70.0 - math.Abs(lat)/3 + float64(step)
	wind := 8.0 + math.Mod(math.Abs(lon), 7)
	return types.WeatherCondition{
		Temperature:   math.Round(temp*10) / 10,
		Humidity:      55,
		WindSpeed:     math.Round(wind*10) / 10,
		WindDirection: 225,
		Pressure:      1013,
		Visibility:    10,
		Conditions:    "partly cloudy (simulated)",
		ObservedAt:    time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC).Add(time.Duration(step) * 3 * time.Hour),
		Simulated:     true,
	}
}

var _ Provider = (*MockProvider)(nil)
