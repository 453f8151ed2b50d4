package store

import (
	"context"
	"fmt"

	"github.com/hartmut/reprise/ent"
	"github.com/hartmut/reprise/ent/scheduledsession"
)

// scheduledSessionRepo implements ScheduledSessionRepo using the ent client.
type scheduledSessionRepo struct {
	client *ent.Client
}

func (r *scheduledSessionRepo) GetAllPending(ctx context.Context, sectionID string) ([]ScheduledSessionRecord, error) {
	rows, err := r.client.ScheduledSession.Query().
		Where(
			scheduledsession.SectionID(sectionID),
			scheduledsession.StatusEQ(scheduledsession.StatusPlanned),
		).
		Order(ent.Asc(scheduledsession.FieldScheduledDate)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query pending sessions: %w", err)
	}

	out := make([]ScheduledSessionRecord, 0, len(rows))
	for _, s := range rows {
		out = append(out, recordFromEnt(s))
	}
	return out, nil
}

func (r *scheduledSessionRepo) Add(ctx context.Context, rec ScheduledSessionRecord) error {
	builder := r.client.ScheduledSession.Create().
		SetSessionID(rec.SessionID).
		SetProfileID(rec.ProfileID).
		SetSectionID(rec.SectionID).
		SetScheduledDate(rec.ScheduledDate).
		SetStatus(scheduledsession.Status(rec.Status)).
		SetEstimatedMinutes(rec.EstimatedMinutes).
		SetTau(rec.Tau)
	if rec.PieceID != "" {
		builder = builder.SetPieceID(rec.PieceID)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("add scheduled session: %w", err)
	}
	return nil
}

func (r *scheduledSessionRepo) Remove(ctx context.Context, sessionID string) error {
	_, err := r.client.ScheduledSession.Delete().
		Where(scheduledsession.SessionID(sessionID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("remove scheduled session %s: %w", sessionID, err)
	}
	return nil
}

func (r *scheduledSessionRepo) MarkCompleted(ctx context.Context, sessionID string) error {
	n, err := r.client.ScheduledSession.Update().
		Where(scheduledsession.SessionID(sessionID)).
		SetStatus(scheduledsession.StatusCompleted).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("complete scheduled session %s: %w", sessionID, err)
	}
	if n == 0 {
		return fmt.Errorf("complete scheduled session %s: not found", sessionID)
	}
	return nil
}

func recordFromEnt(s *ent.ScheduledSession) ScheduledSessionRecord {
	return ScheduledSessionRecord{
		SessionID:        s.SessionID,
		ProfileID:        s.ProfileID,
		SectionID:        s.SectionID,
		PieceID:          s.PieceID,
		ScheduledDate:    s.ScheduledDate,
		Status:           string(s.Status),
		EstimatedMinutes: s.EstimatedMinutes,
		Tau:              s.Tau,
	}
}
