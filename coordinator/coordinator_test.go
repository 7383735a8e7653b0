package coordinator

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"go-beacon/db"
	"go-beacon/traffic"
	"go-beacon/types"
	"go-beacon/weather"
)

// failingWeather simulates a dead weather collaborator.
type failingWeather struct{}

func (failingWeather) GetCurrent(ctx context.Context, lat, lon float64) (types.WeatherCondition, error) {
	return types.WeatherCondition{}, errors.New("service unavailable")
}

func (failingWeather) GetForecast(ctx context.Context, lat, lon float64, hours int) ([]types.WeatherCondition, error) {
	return nil, errors.New("service unavailable")
}

func (failingWeather) GetAlerts(ctx context.Context, lat, lon float64) ([]types.WeatherAlert, error) {
	return nil, errors.New("service unavailable")
}

func (failingWeather) Name() string { return "failing" }

// failingTraffic simulates a dead traffic collaborator.
type failingTraffic struct{}

func (failingTraffic) GetConditions(ctx context.Context, routeNames []string) ([]types.TrafficCondition, error) {
	return nil, errors.New("service unavailable")
}

func (failingTraffic) GetEvacuationRoutes(ctx context.Context, zones []types.EvacuationZone, shelters []string) ([]types.EvacuationRoute, error) {
	return nil, errors.New("service unavailable")
}

func (failingTraffic) Name() string { return "failing" }

// failingStore simulates an unreachable historical store.
type failingStore struct{}

func (failingStore) Search(ctx context.Context, query types.HistoricalQuery) ([]types.HistoricalIncident, error) {
	return nil, errors.New("store unavailable")
}

func (failingStore) GetByID(ctx context.Context, id string) (types.HistoricalIncident, error) {
	return types.HistoricalIncident{}, errors.New("store unavailable")
}

func (failingStore) Add(ctx context.Context, incident types.HistoricalIncident) error {
	return errors.New("store unavailable")
}

func newTestCoordinator() *Coordinator {
	c := New(weather.NewMockProvider(), traffic.NewMockProvider(), db.NewMemoryStore())
	c.Geocoder = nil
	c.now = func() time.Time {
		return time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	}
	return c
}

func floatPtr(v float64) *float64 { return &v }

func hurricaneScenario() types.EmergencyScenario {
	return types.EmergencyScenario{
		ScenarioID:         "scn-hurricane-1",
		IncidentType:       types.Hurricane,
		SeverityLevel:      4,
		Location:           "Coastal City",
		AffectedAreaRadius: 25,
		PopulationAffected: 500000,
		DurationHours:      72,
		Latitude:           floatPtr(29.76),
		Longitude:          floatPtr(-95.37),
	}
}

func TestCoordinateResponseHurricane(t *testing.T) {
	c := newTestCoordinator()
	plan, err := c.CoordinateResponse(context.Background(), hurricaneScenario())
	if err != nil {
		t.Fatalf("CoordinateResponse failed: %v", err)
	}

	if plan.LeadAgency != "Office of Emergency Management" {
		t.Errorf("lead agency = %q, want Office of Emergency Management", plan.LeadAgency)
	}
	if got := plan.ResourceAllocation.PersonnelDeployment["responders"]; got < 1000 {
		t.Errorf("responders = %d, want >= 1000", got)
	}
	if len(plan.ImmediateActions) == 0 || len(plan.ShortTermActions) == 0 || len(plan.LongTermRecovery) == 0 {
		t.Error("plan has an empty action phase")
	}
	if plan.EstimatedDuration != 72*time.Hour {
		t.Errorf("duration = %v, want 72h", plan.EstimatedDuration)
	}
	if len(plan.KeyMilestones) < 5 {
		t.Errorf("milestones = %d, want >= 5", len(plan.KeyMilestones))
	}
	if last := plan.KeyMilestones[len(plan.KeyMilestones)-1]; last.Offset != 72*time.Hour {
		t.Errorf("final milestone offset = %v, want 72h", last.Offset)
	}
	if plan.PlanID != "plan_scn-hurricane-1_20250601T090000Z" {
		t.Errorf("plan id = %q", plan.PlanID)
	}
	if !plan.ActivationTime.Equal(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)) {
		t.Errorf("activation time = %v", plan.ActivationTime)
	}
}

func TestCoordinateResponseAllTypes(t *testing.T) {
	c := newTestCoordinator()
	for _, incidentType := range types.AllIncidentTypes {
		scenario := types.EmergencyScenario{
			ScenarioID:         "scn-" + strings.ToLower(string(incidentType)),
			IncidentType:       incidentType,
			SeverityLevel:      3,
			Location:           "Test City",
			AffectedAreaRadius: 5,
			PopulationAffected: 20000,
		}
		plan, err := c.CoordinateResponse(context.Background(), scenario)
		if err != nil {
			t.Errorf("CoordinateResponse(%s) failed: %v", incidentType, err)
			continue
		}
		if plan.LeadAgency == "" {
			t.Errorf("%s: empty lead agency", incidentType)
		}
		if plan.EstimatedDuration <= 0 {
			t.Errorf("%s: duration = %v, want > 0 from the type default", incidentType, plan.EstimatedDuration)
		}
		if len(plan.KeyMilestones) < 5 {
			t.Errorf("%s: %d milestones, want >= 5", incidentType, len(plan.KeyMilestones))
		}
	}
}

func TestCoordinateResponseLeadNotSupporting(t *testing.T) {
	c := newTestCoordinator()
	plan, err := c.CoordinateResponse(context.Background(), hurricaneScenario())
	if err != nil {
		t.Fatalf("CoordinateResponse failed: %v", err)
	}
	for _, agency := range plan.SupportingAgencies {
		if agency == plan.LeadAgency {
			t.Errorf("lead %q also listed as supporting", plan.LeadAgency)
		}
	}
	if _, ok := plan.CommunicationPlan[plan.LeadAgency]; !ok {
		t.Error("communication plan missing the lead agency")
	}
	for _, agency := range plan.SupportingAgencies {
		if _, ok := plan.CommunicationPlan[agency]; !ok {
			t.Errorf("communication plan missing supporting agency %q", agency)
		}
	}
}

func TestCoordinateResponseValidation(t *testing.T) {
	c := newTestCoordinator()
	cases := []struct {
		name   string
		mutate func(*types.EmergencyScenario)
		field  string
	}{
		{"missing id", func(s *types.EmergencyScenario) { s.ScenarioID = "" }, "scenarioId"},
		{"bad type", func(s *types.EmergencyScenario) { s.IncidentType = "VOLCANO" }, "incidentType"},
		{"severity zero", func(s *types.EmergencyScenario) { s.SeverityLevel = 0 }, "severityLevel"},
		{"severity six", func(s *types.EmergencyScenario) { s.SeverityLevel = 6 }, "severityLevel"},
		{"zero radius", func(s *types.EmergencyScenario) { s.AffectedAreaRadius = 0 }, "affectedAreaRadius"},
		{"negative population", func(s *types.EmergencyScenario) { s.PopulationAffected = -1 }, "estimatedPopulationAffected"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			scenario := hurricaneScenario()
			tc.mutate(&scenario)
			_, err := c.CoordinateResponse(context.Background(), scenario)
			if err == nil {
				t.Fatal("expected validation error")
			}
			var verr *types.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("error = %v, want *ValidationError", err)
			}
			if verr.Field != tc.field {
				t.Errorf("field = %q, want %q", verr.Field, tc.field)
			}
		})
	}
}

func TestCoordinateResponseWeatherFailureDegrades(t *testing.T) {
	c := newTestCoordinator()
	c.Weather = failingWeather{}

	plan, err := c.CoordinateResponse(context.Background(), hurricaneScenario())
	if err != nil {
		t.Fatalf("CoordinateResponse failed despite weather degradation: %v", err)
	}

	found := false
	for _, factor := range plan.RiskFactors {
		if factor == "weather data unavailable" {
			found = true
		}
	}
	if !found {
		t.Errorf("risk factors %v should note unavailable weather", plan.RiskFactors)
	}

	// Resource math must not change with weather availability.
	healthy, err := newTestCoordinator().CoordinateResponse(context.Background(), hurricaneScenario())
	if err != nil {
		t.Fatalf("CoordinateResponse failed: %v", err)
	}
	if !reflect.DeepEqual(plan.ResourceAllocation, healthy.ResourceAllocation) {
		t.Error("weather availability changed resource allocation")
	}
	if plan.LeadAgency != healthy.LeadAgency {
		t.Error("weather availability changed agency assignment")
	}
}

func TestCoordinateResponseNoCoordinatesNoGeocoder(t *testing.T) {
	c := newTestCoordinator()
	scenario := hurricaneScenario()
	scenario.Latitude = nil
	scenario.Longitude = nil

	plan, err := c.CoordinateResponse(context.Background(), scenario)
	if err != nil {
		t.Fatalf("CoordinateResponse failed: %v", err)
	}
	found := false
	for _, factor := range plan.RiskFactors {
		if factor == "weather data unavailable" {
			found = true
		}
	}
	if !found {
		t.Error("a scenario with no resolvable coordinates should degrade the weather step")
	}
}

func TestCoordinateResponseGeocoderFallback(t *testing.T) {
	c := newTestCoordinator()
	c.Geocoder = func(ctx context.Context, location string) (float64, float64, error) {
		if location != "Coastal City" {
			t.Errorf("geocoder got location %q", location)
		}
		return 29.76, -95.37, nil
	}
	scenario := hurricaneScenario()
	scenario.Latitude = nil
	scenario.Longitude = nil

	plan, err := c.CoordinateResponse(context.Background(), scenario)
	if err != nil {
		t.Fatalf("CoordinateResponse failed: %v", err)
	}
	for _, factor := range plan.RiskFactors {
		if factor == "weather data unavailable" {
			t.Error("geocoded scenario should reach the weather step")
		}
	}
}

func TestCoordinateResponseIdempotent(t *testing.T) {
	c := newTestCoordinator()
	first, err := c.CoordinateResponse(context.Background(), hurricaneScenario())
	if err != nil {
		t.Fatalf("CoordinateResponse failed: %v", err)
	}
	second, err := c.CoordinateResponse(context.Background(), hurricaneScenario())
	if err != nil {
		t.Fatalf("CoordinateResponse failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("identical scenarios produced different plans")
	}
}

func TestPlanEvacuationAssignsRoutesByOrigin(t *testing.T) {
	c := newTestCoordinator()
	zones := []types.EvacuationZone{
		{Name: "Riverside", Population: 9000},
		{Name: "Hillcrest", Population: 4000},
	}

	plan, err := c.PlanEvacuation(context.Background(), zones, []string{"Central Shelter"})
	if err != nil {
		t.Fatalf("PlanEvacuation failed: %v", err)
	}
	if len(plan.Clearances) != 2 {
		t.Fatalf("clearances = %d, want 2", len(plan.Clearances))
	}
	for _, clearance := range plan.Clearances {
		if len(clearance.AssignedRoutes) == 0 {
			t.Errorf("zone %s has no assigned routes", clearance.Zone)
		}
		if clearance.HoursToClear <= 0 {
			t.Errorf("zone %s hoursToClear = %v, want > 0", clearance.Zone, clearance.HoursToClear)
		}
	}
	// Mock routes are simulated, so the plan is degraded.
	if !plan.Degraded {
		t.Error("plan built from simulated routes should be degraded")
	}
}

func TestPlanEvacuationTrafficFailureDegrades(t *testing.T) {
	c := newTestCoordinator()
	c.Traffic = failingTraffic{}
	zones := []types.EvacuationZone{{Name: "Riverside", Population: 9000}}

	plan, err := c.PlanEvacuation(context.Background(), zones, []string{"Central Shelter"})
	if err != nil {
		t.Fatalf("PlanEvacuation failed despite traffic degradation: %v", err)
	}
	if !plan.Degraded {
		t.Error("plan should be flagged degraded after traffic fallback")
	}
	if len(plan.Routes) == 0 {
		t.Error("fallback should still produce a route table")
	}
}

func TestSearchHistorical(t *testing.T) {
	c := newTestCoordinator()
	incidents := c.SearchHistorical(context.Background(), types.HistoricalQuery{
		IncidentType: types.Hurricane,
	})
	if len(incidents) == 0 {
		t.Fatal("expected at least one seeded hurricane incident")
	}
	for _, incident := range incidents {
		if incident.IncidentType != types.Hurricane {
			t.Errorf("incident %s type = %s, want HURRICANE", incident.ID, incident.IncidentType)
		}
	}
}

func TestSearchHistoricalStoreFailure(t *testing.T) {
	c := newTestCoordinator()
	c.Store = failingStore{}
	incidents := c.SearchHistorical(context.Background(), types.HistoricalQuery{Keywords: "flood"})
	if incidents != nil {
		t.Errorf("incidents = %v, want nil on store failure", incidents)
	}
}
