// Package outcome defines practice session outcomes: the qualitative
// performance scale, the immutable session record, and the mapping from
// performance to the numeric adjustment factor used by interval scheduling.
package outcome

import (
	"encoding"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidPerformance is returned when parsing an unknown performance name.
var ErrInvalidPerformance = errors.New("outcome: invalid performance")

// Performance is the qualitative assessment of a practice session.
type Performance int

const (
	Poor       Performance = iota + 1 // Frequent breakdowns, little retained.
	Fair                              // Completed with noticeable struggle.
	Good                              // Solid, a few slips.
	Excellent                         // Fluent and secure.
	Incomplete                        // No success after extended effort.
)

var (
	performanceNames = [...]string{
		Poor:       "Poor",
		Fair:       "Fair",
		Good:       "Good",
		Excellent:  "Excellent",
		Incomplete: "Incomplete",
	}
	performanceByName = map[string]Performance{
		"Poor":       Poor,
		"Fair":       Fair,
		"Good":       Good,
		"Excellent":  Excellent,
		"Incomplete": Incomplete,
	}
)

// Compile-time interface checks.
var (
	_ fmt.Stringer             = Performance(0)
	_ json.Marshaler           = Performance(0)
	_ json.Unmarshaler         = (*Performance)(nil)
	_ encoding.TextMarshaler   = Performance(0)
	_ encoding.TextUnmarshaler = (*Performance)(nil)
)

// String returns the performance name. For invalid values it returns
// "Performance(n)".
func (p Performance) String() string {
	if p.IsValid() {
		return performanceNames[p]
	}
	return fmt.Sprintf("Performance(%d)", int(p))
}

// IsValid reports whether p is a known performance level.
func (p Performance) IsValid() bool {
	return p >= Poor && p <= Incomplete
}

// MarshalText implements encoding.TextMarshaler.
func (p Performance) MarshalText() ([]byte, error) {
	if !p.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPerformance, int(p))
	}
	return []byte(performanceNames[p]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Performance) UnmarshalText(text []byte) error {
	v, ok := performanceByName[string(text)]
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidPerformance, text)
	}
	*p = v
	return nil
}

// MarshalJSON implements json.Marshaler. Performance serializes as a string.
func (p Performance) MarshalJSON() ([]byte, error) {
	text, err := p.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON implements json.Unmarshaler. Expects a JSON string.
func (p *Performance) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidPerformance, data)
	}
	return p.UnmarshalText([]byte(s))
}
