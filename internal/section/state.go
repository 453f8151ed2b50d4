package section

import "fmt"

// State is the lifecycle state gating how a section is scheduled.
// The numeric values are part of the persisted record contract.
type State int

const (
	// Active sections follow normal forgetting-curve scheduling.
	Active State = 0
	// Maintenance sections get long, floor-enforced intervals.
	Maintenance State = 1
	// Inactive sections are not scheduled at all.
	Inactive State = 2
)

var stateNames = map[State]string{
	Active:      "Active",
	Maintenance: "Maintenance",
	Inactive:    "Inactive",
}

// String returns the state name, or "State(n)" for invalid values.
func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// IsValid reports whether s is a known lifecycle state.
func (s State) IsValid() bool {
	_, ok := stateNames[s]
	return ok
}
