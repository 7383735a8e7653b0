package agencies

import (
	"fmt"

	"go-beacon/types"
)

// Assignment pairs a lead agency with its supporting agencies. Supporting
// never contains the lead.
type Assignment struct {
	Lead       string
	Supporting []string
}

// assignments is the full incident type -> agency table. It must stay
// exhaustive over types.AllIncidentTypes; a gap is a defect, not a default.
var assignments = map[types.IncidentType]Assignment{
	types.Hurricane: {
		Lead:       "Office of Emergency Management",
		Supporting: []string{"Fire Department", "Police Department", "Department of Transportation", "Red Cross", "National Guard"},
	},
	types.Flood: {
		Lead:       "Office of Emergency Management",
		Supporting: []string{"Fire Department", "Police Department", "Department of Transportation", "Red Cross"},
	},
	types.WinterStorm: {
		Lead:       "Department of Transportation",
		Supporting: []string{"Office of Emergency Management", "Police Department", "Utilities Department"},
	},
	types.Fire: {
		Lead:       "Fire Department",
		Supporting: []string{"Police Department", "Office of Emergency Management", "Emergency Medical Services"},
	},
	types.PublicHealth: {
		Lead:       "Department of Health",
		Supporting: []string{"Office of Emergency Management", "Hospitals", "Emergency Medical Services"},
	},
	types.InfrastructureFailure: {
		Lead:       "Utilities Department",
		Supporting: []string{"Office of Emergency Management", "Department of Transportation", "Police Department"},
	},
	types.SecurityIncident: {
		Lead:       "Police Department",
		Supporting: []string{"Office of Emergency Management", "Fire Department", "Federal Bureau of Investigation"},
	},
	types.Earthquake: {
		Lead:       "Office of Emergency Management",
		Supporting: []string{"Fire Department", "Police Department", "Urban Search and Rescue", "Utilities Department", "Red Cross"},
	},
}

// Resolve maps an incident type to its lead and supporting agencies.
// The returned slice is a copy; callers may not mutate the table.
func Resolve(incidentType types.IncidentType) (Assignment, error) {
	a, ok := assignments[incidentType]
	if !ok {
		return Assignment{}, fmt.Errorf("agency resolution for %s: %w", incidentType, types.ErrUnsupportedScenarioType)
	}
	supporting := make([]string, len(a.Supporting))
	copy(supporting, a.Supporting)
	return Assignment{Lead: a.Lead, Supporting: supporting}, nil
}

// channels names the coordination channel for each known agency. Agencies
// without an entry fall back to the EOC liaison desk.
var channels = map[string]string{
	"Fire Department":                 "800 MHz interop, fire dispatch talkgroup",
	"Police Department":               "800 MHz interop, law enforcement talkgroup",
	"Department of Transportation":    "DOT operations center hotline",
	"Red Cross":                       "Red Cross duty officer, EOC liaison desk",
	"National Guard":                  "Joint operations center, military liaison",
	"Utilities Department":            "Utility restoration command post line",
	"Hospitals":                       "Hospital coordination net, EMResource",
	"Emergency Medical Services":      "EMS dispatch, medical branch channel",
	"Urban Search and Rescue":         "USAR task force command channel",
	"Federal Bureau of Investigation": "Joint terrorism task force liaison",
	"Office of Emergency Management":  "EOC main floor, WebEOC incident board",
}

// CommunicationChannel returns the coordination channel for an agency.
func CommunicationChannel(agency string) string {
	if ch, ok := channels[agency]; ok {
		return ch
	}
	return "EOC liaison desk"
}
