package timeline

import (
	"fmt"
	"time"

	"go-beacon/types"
)

const (
	minInitialResponse = 2 * time.Hour

	initialFraction       = 0.05
	stabilizationFraction = 0.25
	recoveryFraction      = 0.75
	mutualAidFraction     = 0.15

	mutualAidSeverity = 4
)

// defaultDurations gives the planning duration per incident type when the
// scenario does not carry one.
var defaultDurations = map[types.IncidentType]time.Duration{
	types.Hurricane:             72 * time.Hour,
	types.WinterStorm:           48 * time.Hour,
	types.Flood:                 48 * time.Hour,
	types.Fire:                  24 * time.Hour,
	types.PublicHealth:          168 * time.Hour,
	types.InfrastructureFailure: 36 * time.Hour,
	types.SecurityIncident:      12 * time.Hour,
	types.Earthquake:            96 * time.Hour,
}

// DefaultDuration returns the type-specific planning duration.
func DefaultDuration(incidentType types.IncidentType) (time.Duration, error) {
	d, ok := defaultDurations[incidentType]
	if !ok {
		return 0, fmt.Errorf("default duration for %s: %w", incidentType, types.ErrUnsupportedScenarioType)
	}
	return d, nil
}

// Build produces the ordered milestone list for a response of the given
// duration. Offsets are non-decreasing, the first is zero and the last equals
// the duration; at least five milestones are always returned. Severity >= 4
// adds a mutual aid arrival milestone. Pure function of its inputs.
func Build(duration time.Duration, severity int) ([]types.Milestone, error) {
	if duration <= 0 {
		return nil, fmt.Errorf("timeline build: duration %v must be positive", duration)
	}

	// The initial-response offset is the greater of 2h and 5% of the
	// duration, but capped at the stabilization offset so short responses
	// keep monotone ordering.
	initial := fraction(duration, initialFraction)
	if initial < minInitialResponse {
		initial = minInitialResponse
	}
	stabilization := fraction(duration, stabilizationFraction)
	if initial > stabilization {
		initial = stabilization
	}

	milestones := []types.Milestone{
		{Label: "Activation", Offset: 0,
			Description: "Plan activated, emergency operations center stood up"},
		{Label: "Initial Response Complete", Offset: initial,
			Description: "First operational period objectives met, resources on scene"},
	}

	if severity >= mutualAidSeverity {
		aid := fraction(duration, mutualAidFraction)
		if aid < initial {
			aid = initial
		}
		milestones = append(milestones, types.Milestone{
			Label: "Mutual Aid Forces Arrive", Offset: aid,
			Description: "State and regional mutual aid integrated into command structure",
		})
	}

	milestones = append(milestones,
		types.Milestone{Label: "Stabilization", Offset: stabilization,
			Description: "Life safety threats contained, situation no longer deteriorating"},
		types.Milestone{Label: "Recovery Operations Begin", Offset: fraction(duration, recoveryFraction),
			Description: "Focus shifts from response to restoration and recovery"},
		types.Milestone{Label: "Response Closeout", Offset: duration,
			Description: "Response objectives complete, demobilization finished"},
	)

	return milestones, nil
}

// fraction returns f of d, truncated to whole minutes so repeated builds are
// byte-identical.
func fraction(d time.Duration, f float64) time.Duration {
	return time.Duration(float64(d)*f) / time.Minute * time.Minute
}
