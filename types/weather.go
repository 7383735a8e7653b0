package types

import "time"

// WeatherCondition is a read-only snapshot supplied by the weather provider.
type WeatherCondition struct {
	Temperature   float64   `json:"temperature"` // °F
	Humidity      float64   `json:"humidity"`    // %
	WindSpeed     float64   `json:"windSpeed"`   // mph
	WindDirection float64   `json:"windDirection"`
	Pressure      float64   `json:"pressure"`   // hPa
	Visibility    float64   `json:"visibility"` // miles
	Conditions    string    `json:"conditions"`
	ObservedAt    time.Time `json:"observedAt"`
	Simulated     bool      `json:"simulated,omitempty"` // set by mock providers
}

// WeatherAlert is an active advisory for an area.
type WeatherAlert struct {
	Event       string    `json:"event"`
	Severity    string    `json:"severity"`
	Description string    `json:"description"`
	Expires     time.Time `json:"expires"`
}

// RiskLevel is a categorical weather risk band.
type RiskLevel string

const (
	RiskLow     RiskLevel = "low"
	RiskMedium  RiskLevel = "medium"
	RiskHigh    RiskLevel = "high"
	RiskUnknown RiskLevel = "unknown" // weather data unavailable
)

// WeatherRisk is the assessor's output: one band per category plus an
// aggregate, with a recommendation string per triggered threshold.
type WeatherRisk struct {
	Overall         RiskLevel            `json:"overall"`
	Categories      map[string]RiskLevel `json:"categories"`
	Recommendations []string             `json:"recommendations"`
	Simulated       bool                 `json:"simulated,omitempty"`
}

// UnavailableWeatherRisk is the sentinel attached to a plan when the weather
// collaborator fails. It must not alter resource math.
func UnavailableWeatherRisk() WeatherRisk {
	return WeatherRisk{
		Overall:    RiskUnknown,
		Categories: map[string]RiskLevel{},
	}
}
