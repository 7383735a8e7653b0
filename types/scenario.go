package types

// IncidentType is the category of emergency being coordinated.
type IncidentType string

const (
	Hurricane             IncidentType = "HURRICANE"
	WinterStorm           IncidentType = "WINTER_STORM"
	Flood                 IncidentType = "FLOOD"
	Fire                  IncidentType = "FIRE"
	PublicHealth          IncidentType = "PUBLIC_HEALTH"
	InfrastructureFailure IncidentType = "INFRASTRUCTURE_FAILURE"
	SecurityIncident      IncidentType = "SECURITY_INCIDENT"
	Earthquake            IncidentType = "EARTHQUAKE"
)

// AllIncidentTypes lists every supported incident type, in declaration order.
var AllIncidentTypes = []IncidentType{
	Hurricane, WinterStorm, Flood, Fire,
	PublicHealth, InfrastructureFailure, SecurityIncident, Earthquake,
}

// Valid reports whether t is one of the supported incident types.
func (t IncidentType) Valid() bool {
	for _, known := range AllIncidentTypes {
		if t == known {
			return true
		}
	}
	return false
}

// EmergencyScenario describes the emergency a caller wants a plan for.
// Immutable once handed to the coordinator.
type EmergencyScenario struct {
	ScenarioID         string            `json:"scenarioId" firestore:"scenarioId"`
	IncidentType       IncidentType      `json:"incidentType" firestore:"incidentType"`
	SeverityLevel      int               `json:"severityLevel" firestore:"severityLevel"` // 1-5
	Location           string            `json:"location" firestore:"location"`
	AffectedAreaRadius float64           `json:"affectedAreaRadius" firestore:"affectedAreaRadius"` // miles
	PopulationAffected int               `json:"estimatedPopulationAffected" firestore:"estimatedPopulationAffected"`
	DurationHours      int               `json:"durationHours,omitempty" firestore:"durationHours"` // 0 means "use type default"
	Latitude           *float64          `json:"latitude,omitempty" firestore:"latitude"`
	Longitude          *float64          `json:"longitude,omitempty" firestore:"longitude"`
	SpecialConditions  map[string]string `json:"specialConditions,omitempty" firestore:"specialConditions"`
}

// Validate enforces the scenario invariants. It returns a *ValidationError
// naming the offending field; it never repairs values.
func (s EmergencyScenario) Validate() error {
	if s.ScenarioID == "" {
		return &ValidationError{Field: "scenarioId", Reason: "must not be empty"}
	}
	if !s.IncidentType.Valid() {
		return &ValidationError{Field: "incidentType", Reason: "unknown incident type " + string(s.IncidentType)}
	}
	if s.SeverityLevel < 1 || s.SeverityLevel > 5 {
		return &ValidationError{Field: "severityLevel", Reason: "must be between 1 and 5"}
	}
	if s.AffectedAreaRadius <= 0 {
		return &ValidationError{Field: "affectedAreaRadius", Reason: "must be greater than zero"}
	}
	if s.PopulationAffected < 0 {
		return &ValidationError{Field: "estimatedPopulationAffected", Reason: "must not be negative"}
	}
	if s.DurationHours < 0 {
		return &ValidationError{Field: "durationHours", Reason: "must be positive when set"}
	}
	if s.Latitude != nil && (*s.Latitude < -90 || *s.Latitude > 90) {
		return &ValidationError{Field: "latitude", Reason: "must be within -90..90"}
	}
	if s.Longitude != nil && (*s.Longitude < -180 || *s.Longitude > 180) {
		return &ValidationError{Field: "longitude", Reason: "must be within -180..180"}
	}
	return nil
}

// HasCoordinates reports whether the scenario carries a usable lat/long pair.
func (s EmergencyScenario) HasCoordinates() bool {
	return s.Latitude != nil && s.Longitude != nil
}
