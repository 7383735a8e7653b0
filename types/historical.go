package types

// HistoricalIncident is a read-only reference record of a past emergency,
// used to enrich suggestions. Never mutated by the core.
type HistoricalIncident struct {
	ID                 string       `json:"id" firestore:"-"`
	IncidentType       IncidentType `json:"incidentType" firestore:"incidentType"`
	Title              string       `json:"title" firestore:"title"`
	Description        string       `json:"description" firestore:"description"`
	Date               string       `json:"date" firestore:"date"` // ISO 8601
	Location           string       `json:"location" firestore:"location"`
	SeverityLevel      int          `json:"severityLevel" firestore:"severityLevel"`
	ResponseActions    []string     `json:"responseActions" firestore:"responseActions"`
	ResourcesDeployed  []string     `json:"resourcesDeployed" firestore:"resourcesDeployed"`
	LessonsLearned     []string     `json:"lessonsLearned" firestore:"lessonsLearned"`
	ResponseTimeHours  float64      `json:"responseTimeHours" firestore:"responseTimeHours"`
	EffectivenessScore float64      `json:"effectivenessScore" firestore:"effectivenessScore"` // 0-10
	AgenciesInvolved   []string     `json:"agenciesInvolved" firestore:"agenciesInvolved"`
	CostUSD            float64      `json:"costUsd" firestore:"costUsd"`
	WeatherConditions  string       `json:"weatherConditions" firestore:"weatherConditions"`
	AffectedPopulation int          `json:"affectedPopulation" firestore:"affectedPopulation"`
}

// HistoricalQuery filters a historical search. Zero values mean "no filter".
type HistoricalQuery struct {
	Keywords     string       `json:"keywords"`
	IncidentType IncidentType `json:"incidentType,omitempty"`
	MinSeverity  int          `json:"minSeverity,omitempty"`
	Limit        int          `json:"limit,omitempty"`
}

// SituationReport is an ingested field observation from the hazard feed
// watch. Informational only; never feeds plan math.
type SituationReport struct {
	ID         string   `json:"id" firestore:"-"`
	Source     string   `json:"source" firestore:"source"`
	Content    string   `json:"content" firestore:"content"`
	Hazard     string   `json:"hazard" firestore:"hazard"`
	Locations  []string `json:"locations,omitempty" firestore:"locations"`
	Lat        float64  `json:"lat,omitempty" firestore:"lat"`
	Long       float64  `json:"long,omitempty" firestore:"long"`
	ObservedAt string   `json:"observedAt" firestore:"observedAt"`
}
