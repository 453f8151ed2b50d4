package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/hartmut/reprise/ent"
	"github.com/hartmut/reprise/ent/snapshot"
)

// snapshotRepo implements SnapshotRepo using the ent client.
type snapshotRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *snapshotRepo) Save(ctx context.Context, snap *Snapshot) error {
	seqNum := snap.Sequence
	if seqNum == 0 {
		n, err := r.seq.Next(ctx)
		if err != nil {
			return fmt.Errorf("next sequence: %w", err)
		}
		seqNum = n
	}

	builder := r.client.Snapshot.Create().
		SetProfileID(snap.ProfileID).
		SetSequence(seqNum).
		SetData(snap.Data)
	if !snap.Timestamp.IsZero() {
		builder = builder.SetTimestamp(snap.Timestamp)
	}

	if _, err := builder.Save(ctx); err != nil {
		if isCapacityError(err) {
			return &CapacityError{Err: err}
		}
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Latest(ctx context.Context, profileID string) (*Snapshot, error) {
	s, err := r.client.Snapshot.Query().
		Where(snapshot.ProfileID(profileID)).
		Order(ent.Desc(snapshot.FieldTimestamp)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}
	return &Snapshot{
		ID:        s.ID,
		ProfileID: s.ProfileID,
		Sequence:  s.Sequence,
		Timestamp: s.Timestamp,
		Data:      s.Data,
	}, nil
}

func (r *snapshotRepo) Prune(ctx context.Context, profileID string, keep int) error {
	// Find the timestamp threshold: the Nth most recent snapshot.
	snapshots, err := r.client.Snapshot.Query().
		Where(snapshot.ProfileID(profileID)).
		Order(ent.Desc(snapshot.FieldTimestamp)).
		Offset(keep).
		Limit(1).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}
	if len(snapshots) == 0 {
		return nil // fewer than keep snapshots exist
	}

	threshold := snapshots[0].Timestamp
	_, err = r.client.Snapshot.Delete().
		Where(
			snapshot.ProfileID(profileID),
			snapshot.TimestampLTE(threshold),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

// isCapacityError recognizes storage-capacity failures from the SQLite
// driver so callers can distinguish them from other persistence errors.
func isCapacityError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "database or disk is full") ||
		strings.Contains(msg, "disk I/O error") ||
		strings.Contains(msg, "no space left on device")
}
