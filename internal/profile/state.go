package profile

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hartmut/reprise/internal/calibration"
	"github.com/hartmut/reprise/internal/section"
	"github.com/hartmut/reprise/internal/stability"
)

// stateVersion is bumped when the snapshot document shape changes.
const stateVersion = 1

// State is the complete serialized form of one profile: the practice
// material, per-section scheduling state, and the learned memory models.
// It is written as a snapshot document after every mutating operation and
// restored on startup.
type State struct {
	Version     int                         `json:"version"`
	ProfileID   string                      `json:"profile_id"`
	SavedAt     time.Time                   `json:"saved_at"`
	Pieces      map[string]*section.Piece   `json:"pieces"`
	Sections    map[string]*section.Section `json:"sections"`
	Stability   *stability.SnapshotData     `json:"stability,omitempty"`
	Calibration *calibration.SnapshotData   `json:"calibration,omitempty"`
}

// toDocument converts the state to the generic map form the snapshot
// store persists as JSON.
func (st *State) toDocument() (map[string]any, error) {
	raw, err := json.Marshal(st)
	if err != nil {
		return nil, fmt.Errorf("encode profile state: %w", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("reshape profile state: %w", err)
	}
	return doc, nil
}

// stateFromDocument decodes a snapshot document back into a State.
func stateFromDocument(doc map[string]any) (*State, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("reshape snapshot document: %w", err)
	}
	var st State
	if err := json.Unmarshal(raw, &st); err != nil {
		return nil, fmt.Errorf("decode profile state: %w", err)
	}
	if st.Pieces == nil {
		st.Pieces = make(map[string]*section.Piece)
	}
	if st.Sections == nil {
		st.Sections = make(map[string]*section.Section)
	}
	return &st, nil
}
