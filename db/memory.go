package db

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go-beacon/types"
)

// MemoryStore is the offline HistoricalStore used when Firestore credentials
// are absent. Seeded with reference incidents so search and enrichment paths
// stay exercisable.
type MemoryStore struct {
	mu        sync.RWMutex
	incidents map[string]types.HistoricalIncident
}

// NewMemoryStore creates a store pre-loaded with the seed incidents.
func NewMemoryStore() *MemoryStore {
	store := &MemoryStore{incidents: make(map[string]types.HistoricalIncident)}
	for _, incident := range seedIncidents {
		store.incidents[incident.ID] = incident
	}
	return store
}

// Search applies the same filter semantics as the Firestore store.
func (s *MemoryStore) Search(ctx context.Context, query types.HistoricalQuery) ([]types.HistoricalIncident, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matches []types.HistoricalIncident
	for _, incident := range s.incidents {
		if query.IncidentType != "" && incident.IncidentType != query.IncidentType {
			continue
		}
		if query.MinSeverity > 0 && incident.SeverityLevel < query.MinSeverity {
			continue
		}
		if !matchesKeywords(incident, query.Keywords) {
			continue
		}
		matches = append(matches, incident)
	}
	// Stable ordering for deterministic responses.
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
	if query.Limit > 0 && len(matches) > query.Limit {
		matches = matches[:query.Limit]
	}
	return matches, nil
}

// GetByID retrieves a single incident.
func (s *MemoryStore) GetByID(ctx context.Context, id string) (types.HistoricalIncident, error) {
	if err := ctx.Err(); err != nil {
		return types.HistoricalIncident{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	incident, ok := s.incidents[id]
	if !ok {
		return types.HistoricalIncident{}, fmt.Errorf("incident %s not found", id)
	}
	return incident, nil
}

// Add stores a new incident.
func (s *MemoryStore) Add(ctx context.Context, incident types.HistoricalIncident) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if incident.ID == "" {
		return fmt.Errorf("cannot save incident with empty ID")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.incidents[incident.ID] = incident
	return nil
}

var seedIncidents = []types.HistoricalIncident{
	{
		ID:                 "hist-sandy-2012",
		IncidentType:       types.Hurricane,
		Title:              "Hurricane Sandy landfall",
		Description:        "Major hurricane with storm surge flooding coastal neighborhoods and extended power outages",
		Date:               "2012-10-29",
		Location:           "New York, NY",
		SeverityLevel:      5,
		ResponseActions:    []string{"Mass evacuation of surge zones", "Subway system shutdown", "Shelter network activation"},
		ResourcesDeployed:  []string{"National Guard", "High-water vehicles", "Mobile generators"},
		LessonsLearned:     []string{"Fuel distribution failed under sustained outage", "Hospital evacuations started too late"},
		ResponseTimeHours:  6,
		EffectivenessScore: 6.5,
		AgenciesInvolved:   []string{"Office of Emergency Management", "Fire Department", "Police Department", "National Guard"},
		CostUSD:            19e9,
		WeatherConditions:  "80 mph sustained winds, 14 ft surge",
		AffectedPopulation: 8300000,
	},
	{
		ID:                 "hist-campfire-2018",
		IncidentType:       types.Fire,
		Title:              "Camp Fire wildfire",
		Description:        "Fast moving wildfire overran a town within hours, driven by high winds and low humidity",
		Date:               "2018-11-08",
		Location:           "Paradise, CA",
		SeverityLevel:      5,
		ResponseActions:    []string{"Immediate evacuation orders", "Mutual aid strike teams", "Air tanker operations"},
		ResourcesDeployed:  []string{"Strike teams", "Air tankers", "Evacuation buses"},
		LessonsLearned:     []string{"Single egress routes bottlenecked the evacuation", "Alerting did not reach all residents in time"},
		ResponseTimeHours:  1,
		EffectivenessScore: 5.0,
		AgenciesInvolved:   []string{"Fire Department", "Police Department", "Office of Emergency Management"},
		CostUSD:            16.5e9,
		WeatherConditions:  "50 mph gusts, 10% humidity",
		AffectedPopulation: 52000,
	},
	{
		ID:                 "hist-uri-2021",
		IncidentType:       types.WinterStorm,
		Title:              "Winter Storm Uri grid failure",
		Description:        "Prolonged sub-freezing temperatures collapsed generation capacity and froze water systems",
		Date:               "2021-02-13",
		Location:           "Austin, TX",
		SeverityLevel:      4,
		ResponseActions:    []string{"Rolling outage management", "Warming center activation", "Boil water notices"},
		ResourcesDeployed:  []string{"Warming centers", "Water distribution points", "Utility crews"},
		LessonsLearned:     []string{"Generation assets were not winterized", "Outage rotation failed leaving some areas dark for days"},
		ResponseTimeHours:  12,
		EffectivenessScore: 4.5,
		AgenciesInvolved:   []string{"Utilities Department", "Office of Emergency Management", "Department of Transportation"},
		CostUSD:            1.95e11,
		WeatherConditions:  "6°F sustained, ice accumulation",
		AffectedPopulation: 4500000,
	},
	{
		ID:                 "hist-h1n1-2009",
		IncidentType:       types.PublicHealth,
		Title:              "H1N1 influenza response",
		Description:        "Novel influenza strain requiring mass vaccination campaign and hospital surge management",
		Date:               "2009-04-26",
		Location:           "Nationwide",
		SeverityLevel:      3,
		ResponseActions:    []string{"Mass vaccination clinics", "School closure guidance", "Antiviral distribution"},
		ResourcesDeployed:  []string{"Vaccination teams", "Strategic stockpile antivirals"},
		LessonsLearned:     []string{"Vaccine production lagged the first wave", "Guidance changes eroded public trust"},
		ResponseTimeHours:  72,
		EffectivenessScore: 7.0,
		AgenciesInvolved:   []string{"Department of Health", "Hospitals", "Office of Emergency Management"},
		CostUSD:            2e9,
		WeatherConditions:  "n/a",
		AffectedPopulation: 60000000,
	},
	{
		ID:                 "hist-northridge-1994",
		IncidentType:       types.Earthquake,
		Title:              "Northridge earthquake",
		Description:        "M6.7 earthquake collapsing freeway interchanges and apartment buildings before dawn",
		Date:               "1994-01-17",
		Location:           "Los Angeles, CA",
		SeverityLevel:      5,
		ResponseActions:    []string{"Urban search and rescue deployment", "Rapid building safety tagging", "Freeway detour network"},
		ResourcesDeployed:  []string{"USAR task forces", "Building inspectors", "Temporary housing"},
		LessonsLearned:     []string{"Soft-story buildings dominated the casualty count", "Inspection backlog delayed reoccupancy"},
		ResponseTimeHours:  2,
		EffectivenessScore: 7.5,
		AgenciesInvolved:   []string{"Office of Emergency Management", "Fire Department", "Urban Search and Rescue"},
		CostUSD:            2e10,
		WeatherConditions:  "clear, 48°F",
		AffectedPopulation: 3000000,
	},
}

var _ HistoricalStore = (*MemoryStore)(nil)
