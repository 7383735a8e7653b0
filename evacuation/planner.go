package evacuation

import (
	"fmt"
	"sort"

	"go-beacon/types"
)

const (
	// averageOccupancy is the planning factor for people moved per vehicle.
	averageOccupancy = 1.5

	// Bottleneck severity by dependent-zone count
	bottleneckHighZones   = 3
	bottleneckMediumZones = 2
)

// Plan computes per-zone clearance times and a bottleneck ranking from the
// zones and the route table supplied by the traffic provider. Pure function;
// route availability and congestion come entirely from the inputs.
func Plan(zones []types.EvacuationZone, routes []types.EvacuationRoute) (types.EvacuationPlan, error) {
	routesByID := make(map[string]types.EvacuationRoute, len(routes))
	for _, r := range routes {
		routesByID[r.RouteID] = r
	}

	dependents := map[string]int{}
	clearances := make([]types.ZoneClearance, 0, len(zones))

	for _, zone := range zones {
		var vehiclesPerHour float64
		assigned := make([]string, 0, len(zone.RouteIDs))
		for _, id := range zone.RouteIDs {
			route, ok := routesByID[id]
			if !ok {
				return types.EvacuationPlan{}, fmt.Errorf("evacuation plan: zone %s references unknown route %s", zone.Name, id)
			}
			// Usable capacity is what congestion leaves available.
			usable := float64(route.CapacityVehiclesHr) * (1 - route.CurrentUsagePercent/100)
			if usable < 0 {
				usable = 0
			}
			vehiclesPerHour += usable
			assigned = append(assigned, id)
			dependents[id]++
		}

		peoplePerHour := vehiclesPerHour * averageOccupancy
		clearance := types.ZoneClearance{
			Zone:           zone.Name,
			PeoplePerHour:  peoplePerHour,
			AssignedRoutes: assigned,
		}
		if peoplePerHour > 0 {
			clearance.HoursToClear = float64(zone.Population) / peoplePerHour
		} else if zone.Population > 0 {
			// No throughput for a populated zone: report it as unclearable
			// rather than hiding it behind a zero.
			clearance.HoursToClear = -1
		}
		clearances = append(clearances, clearance)
	}

	bottlenecks := make([]types.Bottleneck, 0, len(dependents))
	for id, count := range dependents {
		bottlenecks = append(bottlenecks, types.Bottleneck{
			RouteID:        id,
			DependentZones: count,
			Severity:       bottleneckSeverity(count),
		})
	}
	// Most depended-upon routes first; ties broken by id for stable output.
	sort.Slice(bottlenecks, func(i, j int) bool {
		if bottlenecks[i].DependentZones != bottlenecks[j].DependentZones {
			return bottlenecks[i].DependentZones > bottlenecks[j].DependentZones
		}
		return bottlenecks[i].RouteID < bottlenecks[j].RouteID
	})

	return types.EvacuationPlan{
		Routes:      routes,
		Clearances:  clearances,
		Bottlenecks: bottlenecks,
	}, nil
}

func bottleneckSeverity(dependentZones int) string {
	switch {
	case dependentZones >= bottleneckHighZones:
		return "high"
	case dependentZones == bottleneckMediumZones:
		return "medium"
	default:
		return "low"
	}
}
