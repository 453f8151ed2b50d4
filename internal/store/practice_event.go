package store

import (
	"context"
	"fmt"

	"github.com/hartmut/reprise/ent"
	"github.com/hartmut/reprise/ent/practiceevent"
)

// eventRepo implements EventRepo using the ent client.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendPracticeEvent(ctx context.Context, data PracticeEventData) (int, error) {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.PracticeEvent.Create().
		SetSequence(seqNum).
		SetProfileID(data.ProfileID).
		SetSectionID(data.SectionID).
		SetPerformance(data.Performance).
		SetScore(data.Score).
		SetRepetitions(data.Repetitions).
		SetExecutionFailures(data.ExecutionFailures).
		SetMemoryFailures(data.MemoryFailures)

	if data.PieceID != "" {
		builder = builder.SetPieceID(data.PieceID)
	}

	ev, err := builder.Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("save practice event: %w", err)
	}
	return ev.ID, nil
}

func (r *eventRepo) SoftDeletePracticeEvent(ctx context.Context, id int) error {
	err := r.client.PracticeEvent.UpdateOneID(id).
		SetDeleted(true).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("soft-delete practice event %d: %w", id, err)
	}
	return nil
}

func (r *eventRepo) RecentOutcomes(ctx context.Context, sectionID string, lastN int) ([]PracticeEventRecord, error) {
	events, err := r.client.PracticeEvent.Query().
		Where(
			practiceevent.SectionID(sectionID),
			practiceevent.Deleted(false),
		).
		Order(ent.Desc(practiceevent.FieldSequence)).
		Limit(lastN).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent outcomes: %w", err)
	}

	out := make([]PracticeEventRecord, 0, len(events))
	for _, e := range events {
		out = append(out, PracticeEventRecord{
			ID:        e.ID,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			PracticeEventData: PracticeEventData{
				ProfileID:         e.ProfileID,
				SectionID:         e.SectionID,
				PieceID:           e.PieceID,
				Performance:       e.Performance,
				Score:             e.Score,
				Repetitions:       e.Repetitions,
				ExecutionFailures: e.ExecutionFailures,
				MemoryFailures:    e.MemoryFailures,
			},
		})
	}
	return out, nil
}
