package weather

import (
	"context"
	"fmt"

	"go-beacon/types"

	"golang.org/x/time/rate"
)

// RateLimitedProvider wraps a Provider with request rate limiting so a burst
// of concurrent scenario evaluations cannot exhaust an upstream API quota.
type RateLimitedProvider struct {
	provider Provider
	limiter  *rate.Limiter
	name     string
}

// NewRateLimitedProvider creates a rate limited provider.
// rps is the maximum requests per second allowed (can be fractional),
// burst is the maximum burst size allowed.
func NewRateLimitedProvider(provider Provider, rps float64, burst int) *RateLimitedProvider {
	return &RateLimitedProvider{
		provider: provider,
		limiter:  rate.NewLimiter(rate.Limit(rps), burst),
		name:     fmt.Sprintf("%s [Rate Limited]", provider.Name()),
	}
}

// GetCurrent fetches current conditions, respecting rate limits.
func (r *RateLimitedProvider) GetCurrent(ctx context.Context, lat, lon float64) (types.WeatherCondition, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return types.WeatherCondition{}, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.provider.GetCurrent(ctx, lat, lon)
}

// GetForecast fetches forecast data, respecting rate limits.
func (r *RateLimitedProvider) GetForecast(ctx context.Context, lat, lon float64, hours int) ([]types.WeatherCondition, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.provider.GetForecast(ctx, lat, lon, hours)
}

// GetAlerts fetches alerts, respecting rate limits.
func (r *RateLimitedProvider) GetAlerts(ctx context.Context, lat, lon float64) ([]types.WeatherAlert, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.provider.GetAlerts(ctx, lat, lon)
}

// Name returns the provider name.
func (r *RateLimitedProvider) Name() string {
	return r.name
}

var _ Provider = (*RateLimitedProvider)(nil)
