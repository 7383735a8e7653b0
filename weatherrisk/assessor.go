package weatherrisk

import "go-beacon/types"

const (
	// Wind (mph)
	windHighThreshold   = 40.0
	windMediumThreshold = 25.0

	// Temperature (°F)
	tempHighCold   = 20.0
	tempHighHot    = 95.0
	tempMediumCold = 32.0
	tempMediumHot  = 85.0

	// Visibility (miles)
	visibilityHighThreshold   = 0.5
	visibilityMediumThreshold = 2.0
)

// Assess classifies current conditions into per-category risk bands and an
// aggregate rating, with a recommendation per triggered threshold.
// Overall risk is high when two or more categories rate high, medium when
// exactly one rates high or two or more rate medium, and low otherwise.
func Assess(current types.WeatherCondition) types.WeatherRisk {
	risk := types.WeatherRisk{
		Categories: map[string]types.RiskLevel{},
		Simulated:  current.Simulated,
	}

	switch {
	case current.WindSpeed > windHighThreshold:
		risk.Categories["wind"] = types.RiskHigh
		risk.Recommendations = append(risk.Recommendations,
			"Suspend aerial operations and high-profile vehicle movement; secure loose equipment")
	case current.WindSpeed > windMediumThreshold:
		risk.Categories["wind"] = types.RiskMedium
		risk.Recommendations = append(risk.Recommendations,
			"Brief crews on gust hazards; restrict ladder and crane work")
	default:
		risk.Categories["wind"] = types.RiskLow
	}

	switch {
	case current.Temperature < tempHighCold || current.Temperature > tempHighHot:
		risk.Categories["temperature"] = types.RiskHigh
		risk.Recommendations = append(risk.Recommendations,
			"Enforce work-rest cycles and open heating or cooling stations for responders and evacuees")
	case current.Temperature < tempMediumCold || current.Temperature > tempMediumHot:
		risk.Categories["temperature"] = types.RiskMedium
		risk.Recommendations = append(risk.Recommendations,
			"Stage hydration and warming supplies at assembly points")
	default:
		risk.Categories["temperature"] = types.RiskLow
	}

	switch {
	case current.Visibility > 0 && current.Visibility < visibilityHighThreshold:
		risk.Categories["visibility"] = types.RiskHigh
		risk.Recommendations = append(risk.Recommendations,
			"Halt convoy movement until visibility improves; use ground guides for any essential travel")
	case current.Visibility > 0 && current.Visibility < visibilityMediumThreshold:
		risk.Categories["visibility"] = types.RiskMedium
		risk.Recommendations = append(risk.Recommendations,
			"Reduce convoy speeds and increase following distance")
	default:
		risk.Categories["visibility"] = types.RiskLow
	}

	risk.Overall = aggregate(risk.Categories)
	return risk
}

func aggregate(categories map[string]types.RiskLevel) types.RiskLevel {
	highs, mediums := 0, 0
	for _, level := range categories {
		switch level {
		case types.RiskHigh:
			highs++
		case types.RiskMedium:
			mediums++
		}
	}
	switch {
	case highs >= 2:
		return types.RiskHigh
	case highs == 1 || mediums >= 2:
		return types.RiskMedium
	default:
		return types.RiskLow
	}
}
