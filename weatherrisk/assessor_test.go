package weatherrisk

import (
	"testing"

	"go-beacon/types"
)

func mild() types.WeatherCondition {
	return types.WeatherCondition{
		Temperature: 70,
		WindSpeed:   10,
		Visibility:  10,
	}
}

func TestAssessCategories(t *testing.T) {
	cases := []struct {
		name     string
		mutate   func(*types.WeatherCondition)
		category string
		want     types.RiskLevel
	}{
		{"calm wind", func(c *types.WeatherCondition) { c.WindSpeed = 10 }, "wind", types.RiskLow},
		{"gusty wind", func(c *types.WeatherCondition) { c.WindSpeed = 30 }, "wind", types.RiskMedium},
		{"storm wind", func(c *types.WeatherCondition) { c.WindSpeed = 45 }, "wind", types.RiskHigh},
		{"wind at 40 is medium", func(c *types.WeatherCondition) { c.WindSpeed = 40 }, "wind", types.RiskMedium},
		{"mild temp", func(c *types.WeatherCondition) { c.Temperature = 70 }, "temperature", types.RiskLow},
		{"cool temp", func(c *types.WeatherCondition) { c.Temperature = 28 }, "temperature", types.RiskMedium},
		{"hard freeze", func(c *types.WeatherCondition) { c.Temperature = 10 }, "temperature", types.RiskHigh},
		{"extreme heat", func(c *types.WeatherCondition) { c.Temperature = 100 }, "temperature", types.RiskHigh},
		{"hot", func(c *types.WeatherCondition) { c.Temperature = 90 }, "temperature", types.RiskMedium},
		{"clear visibility", func(c *types.WeatherCondition) { c.Visibility = 10 }, "visibility", types.RiskLow},
		{"haze", func(c *types.WeatherCondition) { c.Visibility = 1.5 }, "visibility", types.RiskMedium},
		{"fog", func(c *types.WeatherCondition) { c.Visibility = 0.25 }, "visibility", types.RiskHigh},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			condition := mild()
			tc.mutate(&condition)
			risk := Assess(condition)
			if got := risk.Categories[tc.category]; got != tc.want {
				t.Errorf("%s = %s, want %s", tc.category, got, tc.want)
			}
		})
	}
}

func TestAssessOverallAggregation(t *testing.T) {
	// Two highs: overall high.
	condition := mild()
	condition.WindSpeed = 50
	condition.Temperature = 10
	if risk := Assess(condition); risk.Overall != types.RiskHigh {
		t.Errorf("two highs: overall = %s, want high", risk.Overall)
	}

	// One high: overall medium.
	condition = mild()
	condition.WindSpeed = 50
	if risk := Assess(condition); risk.Overall != types.RiskMedium {
		t.Errorf("one high: overall = %s, want medium", risk.Overall)
	}

	// Two mediums: overall medium.
	condition = mild()
	condition.WindSpeed = 30
	condition.Temperature = 90
	if risk := Assess(condition); risk.Overall != types.RiskMedium {
		t.Errorf("two mediums: overall = %s, want medium", risk.Overall)
	}

	// All calm: overall low, no recommendations.
	risk := Assess(mild())
	if risk.Overall != types.RiskLow {
		t.Errorf("calm: overall = %s, want low", risk.Overall)
	}
	if len(risk.Recommendations) != 0 {
		t.Errorf("calm: %d recommendations, want 0", len(risk.Recommendations))
	}
}

func TestAssessRecommendationsPerThreshold(t *testing.T) {
	condition := mild()
	condition.WindSpeed = 50
	condition.Temperature = 100
	condition.Visibility = 0.25
	risk := Assess(condition)
	if len(risk.Recommendations) != 3 {
		t.Errorf("recommendations = %d, want 3 (one per triggered category)", len(risk.Recommendations))
	}
}

func TestAssessPropagatesSimulatedFlag(t *testing.T) {
	condition := mild()
	condition.Simulated = true
	if risk := Assess(condition); !risk.Simulated {
		t.Error("simulated conditions should produce a simulated risk")
	}
}
