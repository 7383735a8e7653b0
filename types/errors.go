package types

import (
	"errors"
	"fmt"
)

// ValidationError reports a scenario field that failed its invariant.
// It is always surfaced to the caller, never silently repaired.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid scenario: %s %s", e.Field, e.Reason)
}

// ErrUnsupportedScenarioType marks a valid incident type that has no entry in
// one of the rule tables. Tables are meant to be exhaustive, so hitting this
// is a defect, not something to default around.
var ErrUnsupportedScenarioType = errors.New("unsupported scenario type")
