package coordinator

import (
	"context"
	"fmt"
	"log"
	"time"

	"go-beacon/actions"
	"go-beacon/agencies"
	"go-beacon/db"
	"go-beacon/evacuation"
	"go-beacon/geocode"
	"go-beacon/resources"
	"go-beacon/timeline"
	"go-beacon/traffic"
	"go-beacon/types"
	"go-beacon/weather"
	"go-beacon/weatherrisk"
)

// collaboratorTimeout bounds every weather/traffic/historical call. Past it
// the coordinator proceeds with the degraded substitute.
const collaboratorTimeout = 5 * time.Second

// forecastHorizonHours is how far ahead the weather step looks.
const forecastHorizonHours = 12

// Population impact bands
const (
	bandModerateFloor = 10_000
	bandHighFloor     = 100_000
	bandCriticalFloor = 1_000_000
)

// Coordinator is the single orchestration entry point. It holds no mutable
// state across calls; concurrent invocations are independent.
type Coordinator struct {
	Weather weather.Provider
	Traffic traffic.Provider
	Store   db.HistoricalStore

	// Geocoder resolves a location label to coordinates for scenarios
	// without a lat/long. Failure degrades like a weather failure.
	Geocoder func(ctx context.Context, location string) (lat, lng float64, err error)

	now func() time.Time
}

// New wires a coordinator with its three collaborators.
func New(weatherProvider weather.Provider, trafficProvider traffic.Provider, store db.HistoricalStore) *Coordinator {
	return &Coordinator{
		Weather:  weatherProvider,
		Traffic:  trafficProvider,
		Store:    store,
		Geocoder: geocode.Coordinates,
		now:      time.Now,
	}
}

// CoordinateResponse validates a scenario and derives its response plan.
// Only validation and unsupported-type errors propagate; collaborator
// failures degrade the plan without failing it.
func (c *Coordinator) CoordinateResponse(ctx context.Context, scenario types.EmergencyScenario) (types.EmergencyResponsePlan, error) {
	// 1. Re-validate even if the caller went through the model layer.
	if err := scenario.Validate(); err != nil {
		return types.EmergencyResponsePlan{}, err
	}

	// 2. Population / geographic impact assessment.
	band := populationBand(scenario.PopulationAffected)

	// 3. Weather integration, degraded on any failure.
	risk, weatherAvailable := c.assessWeather(ctx, scenario)

	// 4. Resource estimation.
	allocation, err := resources.Estimate(scenario.IncidentType, scenario.SeverityLevel, scenario.PopulationAffected)
	if err != nil {
		return types.EmergencyResponsePlan{}, err
	}

	// 5. Agency resolution.
	assignment, err := agencies.Resolve(scenario.IncidentType)
	if err != nil {
		return types.EmergencyResponsePlan{}, err
	}

	// 6. Action catalog lookup.
	phases, err := actions.ForScenario(scenario.IncidentType, scenario.SeverityLevel)
	if err != nil {
		return types.EmergencyResponsePlan{}, err
	}

	// 7. Timeline construction.
	duration := time.Duration(scenario.DurationHours) * time.Hour
	if scenario.DurationHours == 0 {
		duration, err = timeline.DefaultDuration(scenario.IncidentType)
		if err != nil {
			return types.EmergencyResponsePlan{}, err
		}
	}
	milestones, err := timeline.Build(duration, scenario.SeverityLevel)
	if err != nil {
		return types.EmergencyResponsePlan{}, err
	}

	// 8. Assembly.
	activation := c.now().UTC()
	plan := types.EmergencyResponsePlan{
		PlanID:             fmt.Sprintf("plan_%s_%s", scenario.ScenarioID, activation.Format("20060102T150405Z")),
		Scenario:           scenario,
		ImmediateActions:   phases.Immediate,
		ShortTermActions:   phases.ShortTerm,
		LongTermRecovery:   phases.Recovery,
		ResourceAllocation: allocation,
		LeadAgency:         assignment.Lead,
		SupportingAgencies: assignment.Supporting,
		CommunicationPlan:  communicationPlan(assignment),
		ActivationTime:     activation,
		EstimatedDuration:  duration,
		KeyMilestones:      milestones,
		RiskFactors: []string{
			fmt.Sprintf("population impact %s (%d people within %.1f mi of %s)",
				band, scenario.PopulationAffected, scenario.AffectedAreaRadius, scenario.Location),
		},
		SuccessCriteria: successCriteria(band, duration),
	}

	if weatherAvailable {
		plan.RiskFactors = append(plan.RiskFactors, fmt.Sprintf("weather risk %s", risk.Overall))
		plan.MitigationActions = append(plan.MitigationActions, risk.Recommendations...)
	} else {
		plan.RiskFactors = append(plan.RiskFactors, "weather data unavailable")
	}

	return plan, nil
}

// assessWeather runs the optional weather step. The second return value is
// false when no usable weather data was obtained; the returned risk is then
// the unavailable sentinel, which never alters resource math.
func (c *Coordinator) assessWeather(ctx context.Context, scenario types.EmergencyScenario) (types.WeatherRisk, bool) {
	lat, lon, ok := c.resolveCoordinates(ctx, scenario)
	if !ok {
		return types.UnavailableWeatherRisk(), false
	}

	current, ok := withFallback(ctx, func(callCtx context.Context) (types.WeatherCondition, error) {
		return c.Weather.GetCurrent(callCtx, lat, lon)
	})
	if !ok {
		log.Printf("weather collaborator unavailable for scenario %s, degrading", scenario.ScenarioID)
		return types.UnavailableWeatherRisk(), false
	}

	risk := weatherrisk.Assess(current)

	// The short forecast can only raise the rating; a forecast failure
	// leaves the current-conditions assessment standing.
	forecast, ok := withFallback(ctx, func(callCtx context.Context) ([]types.WeatherCondition, error) {
		return c.Weather.GetForecast(callCtx, lat, lon, forecastHorizonHours)
	})
	if ok {
		for _, cond := range forecast {
			future := weatherrisk.Assess(cond)
			if riskRank(future.Overall) > riskRank(risk.Overall) {
				risk = future
			}
		}
	}
	return risk, true
}

// resolveCoordinates returns the scenario's coordinates, geocoding the
// location label when none were supplied.
func (c *Coordinator) resolveCoordinates(ctx context.Context, scenario types.EmergencyScenario) (float64, float64, bool) {
	if scenario.HasCoordinates() {
		return *scenario.Latitude, *scenario.Longitude, true
	}
	if c.Geocoder == nil || scenario.Location == "" {
		return 0, 0, false
	}
	callCtx, cancel := context.WithTimeout(ctx, collaboratorTimeout)
	defer cancel()
	lat, lng, err := c.Geocoder(callCtx, scenario.Location)
	if err != nil {
		log.Printf("geocoding %q failed: %v", scenario.Location, err)
		return 0, 0, false
	}
	return lat, lng, true
}

// PlanEvacuation computes routes, clearance times and bottlenecks for a set
// of zones. A traffic collaborator failure degrades to the simulated route
// table rather than failing the call.
func (c *Coordinator) PlanEvacuation(ctx context.Context, zones []types.EvacuationZone, shelters []string) (types.EvacuationPlan, error) {
	routes, ok := withFallback(ctx, func(callCtx context.Context) ([]types.EvacuationRoute, error) {
		return c.Traffic.GetEvacuationRoutes(callCtx, zones, shelters)
	})
	degraded := false
	if !ok {
		log.Println("traffic collaborator unavailable, using simulated route table")
		mock := traffic.NewMockProvider()
		var err error
		routes, err = mock.GetEvacuationRoutes(ctx, zones, shelters)
		if err != nil {
			return types.EvacuationPlan{}, err
		}
		degraded = true
	}

	// Zones that did not pin their routes use every route leaving them.
	assigned := make([]types.EvacuationZone, len(zones))
	copy(assigned, zones)
	for i := range assigned {
		if len(assigned[i].RouteIDs) > 0 {
			continue
		}
		for _, route := range routes {
			if route.Origin == assigned[i].Name {
				assigned[i].RouteIDs = append(assigned[i].RouteIDs, route.RouteID)
			}
		}
	}

	plan, err := evacuation.Plan(assigned, routes)
	if err != nil {
		return types.EvacuationPlan{}, err
	}
	for _, route := range routes {
		if route.Simulated {
			degraded = true
			break
		}
	}
	plan.Degraded = degraded
	return plan, nil
}

// SearchHistorical looks up past incidents matching the query. A store
// failure degrades to an empty result set.
func (c *Coordinator) SearchHistorical(ctx context.Context, query types.HistoricalQuery) []types.HistoricalIncident {
	incidents, ok := withFallback(ctx, func(callCtx context.Context) ([]types.HistoricalIncident, error) {
		return c.Store.Search(callCtx, query)
	})
	if !ok {
		log.Println("historical store unavailable, returning no matches")
		return nil
	}
	return incidents
}

// withFallback runs a collaborator call under the shared timeout and reports
// whether a usable value came back. Used uniformly for all three
// collaborators so degradation handling stays in one place.
func withFallback[T any](ctx context.Context, call func(context.Context) (T, error)) (T, bool) {
	callCtx, cancel := context.WithTimeout(ctx, collaboratorTimeout)
	defer cancel()

	value, err := call(callCtx)
	if err != nil {
		var zero T
		return zero, false
	}
	return value, true
}

func populationBand(population int) string {
	switch {
	case population >= bandCriticalFloor:
		return "critical"
	case population >= bandHighFloor:
		return "high"
	case population >= bandModerateFloor:
		return "moderate"
	default:
		return "low"
	}
}

// communicationPlan names a channel for the lead and one per supporting
// agency.
func communicationPlan(assignment agencies.Assignment) map[string]string {
	plan := map[string]string{
		assignment.Lead: agencies.CommunicationChannel(assignment.Lead),
	}
	for _, agency := range assignment.Supporting {
		plan[agency] = agencies.CommunicationChannel(agency)
	}
	return plan
}

func successCriteria(band string, duration time.Duration) []string {
	return []string{
		"No preventable loss of life after plan activation",
		fmt.Sprintf("All %s-impact population needs addressed within the first operational period", band),
		fmt.Sprintf("Response objectives complete within %.0f hours of activation", duration.Hours()),
	}
}

func riskRank(level types.RiskLevel) int {
	switch level {
	case types.RiskHigh:
		return 3
	case types.RiskMedium:
		return 2
	case types.RiskLow:
		return 1
	default:
		return 0
	}
}
