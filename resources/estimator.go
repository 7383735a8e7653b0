package resources

import (
	"fmt"
	"math"

	"go-beacon/types"
)

const (
	// Personnel scaling
	basePersonnelFloor   = 50
	personsPerResponder  = 1000
	severityLoadPerLevel = 0.10 // +10% personnel per severity level above 1

	// Equipment ratios
	personnelPerVehicle   = 5
	personsPerMedicalUnit = 5000
	personsPerShelter     = 1000
	personnelPerCommUnit  = 20
	commUnitFloor         = 5

	// Budget (USD per unit, rough planning figures)
	costPerResponder = 1800.0
	costPerVehicle   = 950.0
	costOpsOverhead  = 0.25 // fraction of personnel + equipment
)

// typeMultipliers scales personnel by incident type. WINTER_STORM, FLOOD and
// SECURITY_INCIDENT use the documented default of 1.0.
var typeMultipliers = map[types.IncidentType]float64{
	types.Hurricane:             2.0,
	types.Fire:                  1.8,
	types.PublicHealth:          1.5,
	types.Earthquake:            1.5,
	types.InfrastructureFailure: 1.2,
	types.WinterStorm:           1.0,
	types.Flood:                 1.0,
	types.SecurityIncident:      1.0,
}

// Estimate converts (type, severity, population) into concrete resource
// counts. Pure function: identical inputs always yield identical output.
func Estimate(incidentType types.IncidentType, severity, population int) (types.ResourceAllocation, error) {
	if population < 0 {
		// Validation upstream should make this impossible; fail loudly
		// rather than returning a plan that under-represents need.
		return types.ResourceAllocation{}, fmt.Errorf("resource estimate: population %d is negative", population)
	}
	multiplier, ok := typeMultipliers[incidentType]
	if !ok {
		return types.ResourceAllocation{}, fmt.Errorf("resource estimate for %s: %w", incidentType, types.ErrUnsupportedScenarioType)
	}
	if severity < 1 {
		severity = 1
	}

	base := population / personsPerResponder
	if base < basePersonnelFloor {
		base = basePersonnelFloor
	}
	severityFactor := 1.0 + severityLoadPerLevel*float64(severity-1)
	personnel := int(math.Round(float64(base) * multiplier * severityFactor))

	vehicles := personnel / personnelPerVehicle
	medicalUnits := population / personsPerMedicalUnit
	shelters := population / personsPerShelter
	commUnits := personnel / personnelPerCommUnit
	if commUnits < commUnitFloor {
		commUnits = commUnitFloor
	}

	personnelCost := float64(personnel) * costPerResponder
	equipmentCost := float64(vehicles) * costPerVehicle
	opsCost := (personnelCost + equipmentCost) * costOpsOverhead

	return types.ResourceAllocation{
		PersonnelDeployment: map[string]int{
			"responders":          personnel,
			"incident_commanders": commandStaff(personnel),
		},
		EquipmentRequirements: map[string]int{
			"vehicles":            vehicles,
			"medical_units":       medicalUnits,
			"shelters":            shelters,
			"communication_units": commUnits,
		},
		FacilityAssignments: facilityAssignments(incidentType),
		BudgetAllocation: map[string]float64{
			"personnel":  personnelCost,
			"equipment":  equipmentCost,
			"operations": opsCost,
		},
	}, nil
}

// commandStaff sizes the command element: one commander per 50 responders,
// minimum of 1.
func commandStaff(personnel int) int {
	n := personnel / 50
	if n < 1 {
		n = 1
	}
	return n
}

func facilityAssignments(incidentType types.IncidentType) map[string]string {
	assignments := map[string]string{
		"emergency_operations_center": "Primary EOC, activated for the duration of the response",
		"staging_area":                "Resource staging at the nearest suitable open facility",
	}
	switch incidentType {
	case types.Hurricane, types.Flood, types.WinterStorm:
		assignments["shelter_network"] = "Public shelters opened at schools and community centers"
	case types.PublicHealth:
		assignments["treatment_sites"] = "Alternate care sites adjacent to hospital campuses"
	case types.Fire, types.Earthquake:
		assignments["triage_points"] = "Field triage points at the perimeter of the affected area"
	case types.InfrastructureFailure:
		assignments["utility_command"] = "Joint utility restoration command post"
	case types.SecurityIncident:
		assignments["unified_command"] = "Unified command post with law enforcement lead"
	}
	return assignments
}
