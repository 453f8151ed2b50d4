package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendLifecycleEvent(ctx context.Context, data LifecycleEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LifecycleEvent.Create().
		SetSequence(seqNum).
		SetProfileID(data.ProfileID).
		SetSectionID(data.SectionID).
		SetFromState(data.FromState).
		SetToState(data.ToState).
		SetSuppressed(data.Suppressed).
		SetTau(data.Tau).
		SetIntervalDays(data.IntervalDays).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save lifecycle event: %w", err)
	}
	return nil
}
