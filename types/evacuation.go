package types

// EvacuationZone names an area that needs clearing and the routes that can
// serve it.
type EvacuationZone struct {
	Name       string   `json:"name"`
	Population int      `json:"population"`
	RouteIDs   []string `json:"routeIds"`
}

// EvacuationRoute describes one corridor out of a zone.
type EvacuationRoute struct {
	RouteID             string   `json:"routeId"`
	Origin              string   `json:"origin"`
	Destination         string   `json:"destination"`
	DistanceMiles       float64  `json:"distanceMiles"`
	EstimatedTimeMin    int      `json:"estimatedTimeMinutes"`
	CapacityVehiclesHr  int      `json:"capacityVehiclesPerHour"`
	CurrentUsagePercent float64  `json:"currentUsagePercent"` // 0-100
	AlternateRoutes     []string `json:"alternateRoutes,omitempty"`
	Bottlenecks         []string `json:"bottlenecks,omitempty"`
	Simulated           bool     `json:"simulated,omitempty"`
}

// TrafficCondition is a point-in-time congestion reading for a named corridor.
type TrafficCondition struct {
	RouteName       string  `json:"routeName"`
	CongestionLevel string  `json:"congestionLevel"` // light, moderate, heavy
	AverageSpeedMph float64 `json:"averageSpeedMph"`
	Simulated       bool    `json:"simulated,omitempty"`
}

// ZoneClearance is the planner's per-zone output.
type ZoneClearance struct {
	Zone           string   `json:"zone"`
	PeoplePerHour  float64  `json:"peoplePerHour"`
	HoursToClear   float64  `json:"hoursToClear"`
	AssignedRoutes []string `json:"assignedRoutes"`
}

// Bottleneck ranks a route by how many zones depend on it.
type Bottleneck struct {
	RouteID        string `json:"routeId"`
	DependentZones int    `json:"dependentZones"`
	Severity       string `json:"severity"` // high, medium, low
}

// EvacuationPlan bundles the planner's outputs for a set of zones.
type EvacuationPlan struct {
	Routes      []EvacuationRoute `json:"routes"`
	Clearances  []ZoneClearance   `json:"clearances"`
	Bottlenecks []Bottleneck      `json:"bottlenecks"`
	Degraded    bool              `json:"degraded,omitempty"` // traffic data was simulated
}
