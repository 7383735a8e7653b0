package types

import "time"

// Milestone is a named point on the response timeline, offset from the
// plan's activation time.
type Milestone struct {
	Label       string        `json:"label" firestore:"label"`
	Offset      time.Duration `json:"offsetHours" firestore:"offsetHours"`
	Description string        `json:"description" firestore:"description"`
}

// ResourceAllocation holds the computed resource counts for a plan.
// All counts are >= 0 and scale monotonically with population for a fixed
// incident type and severity.
type ResourceAllocation struct {
	PersonnelDeployment   map[string]int     `json:"personnelDeployment" firestore:"personnelDeployment"`
	EquipmentRequirements map[string]int     `json:"equipmentRequirements" firestore:"equipmentRequirements"`
	FacilityAssignments   map[string]string  `json:"facilityAssignments" firestore:"facilityAssignments"`
	BudgetAllocation      map[string]float64 `json:"budgetAllocation,omitempty" firestore:"budgetAllocation"`
}

// EmergencyResponsePlan is the output aggregate of one coordinator
// invocation. Created once, immutable; the caller owns persistence.
type EmergencyResponsePlan struct {
	PlanID             string             `json:"planId" firestore:"planId"`
	Scenario           EmergencyScenario  `json:"scenario" firestore:"scenario"`
	ImmediateActions   []string           `json:"immediateActions" firestore:"immediateActions"`
	ShortTermActions   []string           `json:"shortTermActions" firestore:"shortTermActions"`
	LongTermRecovery   []string           `json:"longTermRecovery" firestore:"longTermRecovery"`
	ResourceAllocation ResourceAllocation `json:"resourceAllocation" firestore:"resourceAllocation"`
	LeadAgency         string             `json:"leadAgency" firestore:"leadAgency"`
	SupportingAgencies []string           `json:"supportingAgencies" firestore:"supportingAgencies"`
	CommunicationPlan  map[string]string  `json:"communicationPlan" firestore:"communicationPlan"`
	ActivationTime     time.Time          `json:"activationTime" firestore:"activationTime"`
	EstimatedDuration  time.Duration      `json:"estimatedDurationHours" firestore:"estimatedDurationHours"`
	KeyMilestones      []Milestone        `json:"keyMilestones" firestore:"keyMilestones"`
	RiskFactors        []string           `json:"riskFactors,omitempty" firestore:"riskFactors"`
	MitigationActions  []string           `json:"mitigationStrategies,omitempty" firestore:"mitigationStrategies"`
	SuccessCriteria    []string           `json:"successCriteria,omitempty" firestore:"successCriteria"`
}
