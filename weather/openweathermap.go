package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go-beacon/types"
)

// OpenWeatherMapProvider fetches conditions from the OpenWeatherMap API.
type OpenWeatherMapProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewOpenWeatherMapProvider creates a provider using the given API key.
func NewOpenWeatherMapProvider(apiKey string) *OpenWeatherMapProvider {
	return &OpenWeatherMapProvider{
		apiKey:  apiKey,
		baseURL: "https://api.openweathermap.org/data/2.5",
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Name returns the provider name.
func (p *OpenWeatherMapProvider) Name() string {
	return "OpenWeatherMap"
}

type owmReading struct {
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
		Pressure int     `json:"pressure"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
		Deg   float64 `json:"deg"`
	} `json:"wind"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Visibility int   `json:"visibility"` // meters
	Dt         int64 `json:"dt"`
}

// GetCurrent fetches current conditions for a coordinate, in imperial units.
func (p *OpenWeatherMapProvider) GetCurrent(ctx context.Context, lat, lon float64) (types.WeatherCondition, error) {
	body, err := p.get(ctx, "/weather", lat, lon)
	if err != nil {
		return types.WeatherCondition{}, err
	}

	var response owmReading
	if err := json.Unmarshal(body, &response); err != nil {
		return types.WeatherCondition{}, fmt.Errorf("failed to parse response: %w", err)
	}
	return readingToCondition(response), nil
}

// GetForecast fetches the 3-hour-step forecast and trims it to the requested
// horizon.
func (p *OpenWeatherMapProvider) GetForecast(ctx context.Context, lat, lon float64, hours int) ([]types.WeatherCondition, error) {
	body, err := p.get(ctx, "/forecast", lat, lon)
	if err != nil {
		return nil, err
	}

	var response struct {
		List []owmReading `json:"list"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	// Entries arrive in 3-hour intervals.
	maxEntries := hours / 3
	if maxEntries < 1 {
		maxEntries = 1
	}
	if maxEntries > len(response.List) {
		maxEntries = len(response.List)
	}

	conditions := make([]types.WeatherCondition, 0, maxEntries)
	for i := 0; i < maxEntries; i++ {
		conditions = append(conditions, readingToCondition(response.List[i]))
	}
	return conditions, nil
}

// GetAlerts is not served by the free OpenWeatherMap tier; it returns an
// empty list so callers fall back to their own risk assessment.
func (p *OpenWeatherMapProvider) GetAlerts(ctx context.Context, lat, lon float64) ([]types.WeatherAlert, error) {
	return nil, nil
}

func (p *OpenWeatherMapProvider) get(ctx context.Context, path string, lat, lon float64) ([]byte, error) {
	params := url.Values{}
	params.Add("lat", strconv.FormatFloat(lat, 'f', 4, 64))
	params.Add("lon", strconv.FormatFloat(lon, 'f', 4, 64))
	params.Add("appid", p.apiKey)
	params.Add("units", "imperial")

	req, err := http.NewRequestWithContext(ctx, "GET", p.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}
	return body, nil
}

func readingToCondition(r owmReading) types.WeatherCondition {
	description := ""
	if len(r.Weather) > 0 {
		description = r.Weather[0].Description
	}
	const metersPerMile = 1609.34
	return types.WeatherCondition{
		Temperature:   r.Main.Temp,
		Humidity:      float64(r.Main.Humidity),
		WindSpeed:     r.Wind.Speed,
		WindDirection: r.Wind.Deg,
		Pressure:      float64(r.Main.Pressure),
		Visibility:    float64(r.Visibility) / metersPerMile,
		Conditions:    description,
		ObservedAt:    time.Unix(r.Dt, 0).UTC(),
	}
}

var _ Provider = (*OpenWeatherMapProvider)(nil)
