// Package section defines the practicable unit of material: a section of a
// music piece, with its difficulty class, lifecycle state, and stage-based
// repetition progress.
package section

import (
	"encoding"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidDifficulty is returned when parsing an unknown difficulty name.
var ErrInvalidDifficulty = errors.New("section: invalid difficulty")

// Difficulty classifies how hard a section is to learn and retain.
type Difficulty int

const (
	Easy Difficulty = iota + 1
	Average
	Difficult
)

var (
	difficultyNames = [...]string{
		Easy:      "Easy",
		Average:   "Average",
		Difficult: "Difficult",
	}
	difficultyByName = map[string]Difficulty{
		"Easy":      Easy,
		"Average":   Average,
		"Difficult": Difficult,
	}
)

var (
	_ fmt.Stringer             = Difficulty(0)
	_ encoding.TextMarshaler   = Difficulty(0)
	_ encoding.TextUnmarshaler = (*Difficulty)(nil)
)

// String returns the difficulty name, or "Difficulty(n)" for invalid values.
func (d Difficulty) String() string {
	if d.IsValid() {
		return difficultyNames[d]
	}
	return fmt.Sprintf("Difficulty(%d)", int(d))
}

// IsValid reports whether d is a known difficulty class.
func (d Difficulty) IsValid() bool {
	return d >= Easy && d <= Difficult
}

// MarshalText implements encoding.TextMarshaler.
func (d Difficulty) MarshalText() ([]byte, error) {
	if !d.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDifficulty, int(d))
	}
	return []byte(difficultyNames[d]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Difficulty) UnmarshalText(text []byte) error {
	v, ok := difficultyByName[string(text)]
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidDifficulty, text)
	}
	*d = v
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d Difficulty) MarshalJSON() ([]byte, error) {
	text, err := d.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Difficulty) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidDifficulty, data)
	}
	return d.UnmarshalText([]byte(s))
}
