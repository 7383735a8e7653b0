package actions

import (
	"fmt"

	"go-beacon/types"
)

// highSeverityThreshold is the severity level at which the evacuation and
// mutual-aid actions are appended to the immediate phase.
const highSeverityThreshold = 4

// Phases groups the canned action lists for one incident type.
type Phases struct {
	Immediate []string
	ShortTerm []string
	Recovery  []string
}

var catalog = map[types.IncidentType]Phases{
	types.Hurricane: {
		Immediate: []string{
			"Activate the emergency operations center",
			"Issue hurricane warnings via all public alert channels",
			"Pre-position high-water rescue teams and generators",
			"Open storm shelters in the projected impact area",
		},
		ShortTerm: []string{
			"Conduct search and rescue sweeps of flooded neighborhoods",
			"Restore priority power feeds to hospitals and water plants",
			"Establish points of distribution for food and water",
		},
		Recovery: []string{
			"Complete damage assessments and submit disaster declarations",
			"Coordinate debris removal contracts",
			"Transition shelter occupants to temporary housing",
		},
	},
	types.WinterStorm: {
		Immediate: []string{
			"Activate snow emergency routes and parking restrictions",
			"Deploy plow and salt fleets to priority corridors",
			"Open warming centers for vulnerable residents",
		},
		ShortTerm: []string{
			"Clear secondary roads and transit routes",
			"Check on homebound and elderly residents",
			"Coordinate utility crews on downed lines",
		},
		Recovery: []string{
			"Repair pavement and infrastructure damaged by ice",
			"Review fleet readiness and salt stock levels",
			"Reimburse mutual aid and contractor costs",
		},
	},
	types.Flood: {
		Immediate: []string{
			"Issue flood warnings for at-risk basins",
			"Deploy swift-water rescue teams",
			"Close flooded roadways and low water crossings",
			"Distribute sandbags to threatened properties",
		},
		ShortTerm: []string{
			"Pump and dewater critical infrastructure",
			"Inspect levees and drainage systems",
			"Open disaster assistance centers",
		},
		Recovery: []string{
			"Assess structural damage and condemn unsafe buildings",
			"Run muck-out and mold remediation programs",
			"Update floodplain maps and mitigation plans",
		},
	},
	types.Fire: {
		Immediate: []string{
			"Dispatch first-alarm response and request additional alarms as needed",
			"Establish incident command and fire perimeter",
			"Begin evacuation of structures in the fire path",
		},
		ShortTerm: []string{
			"Rotate crews and maintain containment lines",
			"Shelter displaced residents",
			"Investigate origin and cause",
		},
		Recovery: []string{
			"Overhaul and monitor hot spots",
			"Support rebuilding permits and inspections",
			"Counsel and assist displaced families",
		},
	},
	types.PublicHealth: {
		Immediate: []string{
			"Activate the health department incident management team",
			"Issue public health guidance and case definitions",
			"Stand up testing and triage sites",
		},
		ShortTerm: []string{
			"Trace contacts and monitor exposed cohorts",
			"Distribute countermeasures from the strategic stockpile",
			"Expand hospital surge capacity",
		},
		Recovery: []string{
			"Wind down surge sites as case counts fall",
			"Complete epidemiological after-action analysis",
			"Replenish stockpiles and update response plans",
		},
	},
	types.InfrastructureFailure: {
		Immediate: []string{
			"Isolate the failed system and secure the scene",
			"Notify affected customers and critical facilities",
			"Dispatch utility emergency crews",
		},
		ShortTerm: []string{
			"Stand up temporary service via portable equipment",
			"Prioritize restoration for hospitals and water systems",
			"Coordinate traffic control around work zones",
		},
		Recovery: []string{
			"Complete permanent repairs and testing",
			"Conduct root cause analysis",
			"Fund hardening of the failed asset class",
		},
	},
	types.SecurityIncident: {
		Immediate: []string{
			"Secure the scene and establish a perimeter",
			"Account for persons in the affected facility",
			"Notify federal partners per the incident annex",
		},
		ShortTerm: []string{
			"Process the scene and collect evidence",
			"Provide family assistance and reunification",
			"Increase patrols at comparable sites",
		},
		Recovery: []string{
			"Support victims through recovery services",
			"Review and harden site security posture",
			"Complete prosecution support and case files",
		},
	},
	types.Earthquake: {
		Immediate: []string{
			"Initiate rapid visual damage assessment",
			"Deploy urban search and rescue to collapse sites",
			"Shut off damaged gas and water mains",
		},
		ShortTerm: []string{
			"Tag buildings for occupancy safety",
			"Establish camps and shelters for displaced residents",
			"Restore lifeline utilities in priority order",
		},
		Recovery: []string{
			"Demolish or retrofit red-tagged structures",
			"Process individual assistance applications",
			"Update seismic building codes and enforcement",
		},
	},
}

// highSeverityExtras are appended to the immediate phase at severity >= 4
// for every incident type.
var highSeverityExtras = []string{
	"Issue evacuation orders for the affected area",
	"Request state mutual aid activation",
}

// ForScenario returns the immediate/short-term/recovery action lists for an
// incident type, with high-severity additions applied. The returned slices
// are copies.
func ForScenario(incidentType types.IncidentType, severity int) (Phases, error) {
	entry, ok := catalog[incidentType]
	if !ok {
		return Phases{}, fmt.Errorf("action catalog for %s: %w", incidentType, types.ErrUnsupportedScenarioType)
	}

	out := Phases{
		Immediate: append([]string(nil), entry.Immediate...),
		ShortTerm: append([]string(nil), entry.ShortTerm...),
		Recovery:  append([]string(nil), entry.Recovery...),
	}
	if severity >= highSeverityThreshold {
		out.Immediate = append(out.Immediate, highSeverityExtras...)
	}
	return out, nil
}
