package actions

import (
	"errors"
	"reflect"
	"testing"

	"go-beacon/types"
)

func TestForScenarioNonEmptyAllTypes(t *testing.T) {
	for _, incidentType := range types.AllIncidentTypes {
		phases, err := ForScenario(incidentType, 2)
		if err != nil {
			t.Errorf("ForScenario(%s) failed: %v", incidentType, err)
			continue
		}
		if len(phases.Immediate) == 0 {
			t.Errorf("%s: empty immediate actions", incidentType)
		}
		if len(phases.ShortTerm) == 0 {
			t.Errorf("%s: empty short-term actions", incidentType)
		}
		if len(phases.Recovery) == 0 {
			t.Errorf("%s: empty recovery actions", incidentType)
		}
	}
}

func TestForScenarioHighSeverityExtras(t *testing.T) {
	low, err := ForScenario(types.Flood, 3)
	if err != nil {
		t.Fatalf("ForScenario failed: %v", err)
	}
	high, err := ForScenario(types.Flood, 4)
	if err != nil {
		t.Fatalf("ForScenario failed: %v", err)
	}
	if len(high.Immediate) != len(low.Immediate)+len(highSeverityExtras) {
		t.Errorf("severity 4 immediate count = %d, want %d",
			len(high.Immediate), len(low.Immediate)+len(highSeverityExtras))
	}

	found := false
	for _, action := range high.Immediate {
		if action == "Issue evacuation orders for the affected area" {
			found = true
		}
	}
	if !found {
		t.Error("severity 4 immediate actions missing evacuation order")
	}
	for _, action := range low.Immediate {
		if action == "Issue evacuation orders for the affected area" {
			t.Error("severity 3 should not include evacuation order")
		}
	}
}

func TestForScenarioUnknownType(t *testing.T) {
	_, err := ForScenario("ASTEROID", 3)
	if err == nil {
		t.Fatal("expected error for unmapped type")
	}
	if !errors.Is(err, types.ErrUnsupportedScenarioType) {
		t.Errorf("error = %v, want ErrUnsupportedScenarioType", err)
	}
}

func TestForScenarioIdempotent(t *testing.T) {
	first, _ := ForScenario(types.Earthquake, 5)
	second, _ := ForScenario(types.Earthquake, 5)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated lookups differ:\n%+v\n%+v", first, second)
	}
}

func TestForScenarioReturnsCopy(t *testing.T) {
	first, _ := ForScenario(types.Fire, 2)
	first.Immediate[0] = "Mutated"
	second, _ := ForScenario(types.Fire, 2)
	if second.Immediate[0] == "Mutated" {
		t.Error("mutating returned actions leaked into the catalog")
	}
}
