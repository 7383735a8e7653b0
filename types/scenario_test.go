package types

import (
	"errors"
	"testing"
)

func validScenario() EmergencyScenario {
	return EmergencyScenario{
		ScenarioID:         "test-001",
		IncidentType:       Hurricane,
		SeverityLevel:      3,
		Location:           "Coastal City",
		AffectedAreaRadius: 10,
		PopulationAffected: 50000,
	}
}

func TestValidateAccepts(t *testing.T) {
	if err := validScenario().Validate(); err != nil {
		t.Fatalf("valid scenario rejected: %v", err)
	}

	// Boundary values that must pass.
	s := validScenario()
	s.AffectedAreaRadius = 0.01
	s.PopulationAffected = 0
	if err := s.Validate(); err != nil {
		t.Errorf("boundary scenario rejected: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*EmergencyScenario)
		field  string
	}{
		{"empty id", func(s *EmergencyScenario) { s.ScenarioID = "" }, "scenarioId"},
		{"unknown type", func(s *EmergencyScenario) { s.IncidentType = "VOLCANO" }, "incidentType"},
		{"severity low", func(s *EmergencyScenario) { s.SeverityLevel = 0 }, "severityLevel"},
		{"severity high", func(s *EmergencyScenario) { s.SeverityLevel = 6 }, "severityLevel"},
		{"zero radius", func(s *EmergencyScenario) { s.AffectedAreaRadius = 0 }, "affectedAreaRadius"},
		{"negative radius", func(s *EmergencyScenario) { s.AffectedAreaRadius = -1 }, "affectedAreaRadius"},
		{"negative population", func(s *EmergencyScenario) { s.PopulationAffected = -1 }, "estimatedPopulationAffected"},
		{"negative duration", func(s *EmergencyScenario) { s.DurationHours = -2 }, "durationHours"},
		{"latitude range", func(s *EmergencyScenario) { lat := 91.0; s.Latitude = &lat }, "latitude"},
		{"longitude range", func(s *EmergencyScenario) { lng := -181.0; s.Longitude = &lng }, "longitude"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := validScenario()
			tc.mutate(&s)
			err := s.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if validationErr.Field != tc.field {
				t.Errorf("field = %q, want %q", validationErr.Field, tc.field)
			}
		})
	}
}

func TestIncidentTypeValid(t *testing.T) {
	for _, incidentType := range AllIncidentTypes {
		if !incidentType.Valid() {
			t.Errorf("%s should be valid", incidentType)
		}
	}
	if IncidentType("TSUNAMI").Valid() {
		t.Error("TSUNAMI should not be valid")
	}
	if IncidentType("hurricane").Valid() {
		t.Error("incident types are case sensitive")
	}
}

func TestHasCoordinates(t *testing.T) {
	s := validScenario()
	if s.HasCoordinates() {
		t.Error("scenario without lat/long should not report coordinates")
	}
	lat, lng := 40.7, -74.0
	s.Latitude = &lat
	s.Longitude = &lng
	if !s.HasCoordinates() {
		t.Error("scenario with lat/long should report coordinates")
	}
}
