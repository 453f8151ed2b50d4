package profile

import (
	"context"

	"github.com/hartmut/reprise/internal/lifecycle"
	"github.com/hartmut/reprise/internal/store"
)

// sessionStore adapts the persisted scheduled-session repository to the
// lifecycle controller's store interface, stamping each record with the
// owning profile.
type sessionStore struct {
	profileID string
	repo      store.ScheduledSessionRepo
}

func (s *sessionStore) GetAllPending(ctx context.Context, sectionID string) ([]lifecycle.ScheduledSession, error) {
	recs, err := s.repo.GetAllPending(ctx, sectionID)
	if err != nil {
		return nil, err
	}
	out := make([]lifecycle.ScheduledSession, 0, len(recs))
	for _, rec := range recs {
		out = append(out, lifecycle.ScheduledSession{
			ID:               rec.SessionID,
			SectionID:        rec.SectionID,
			PieceID:          rec.PieceID,
			ScheduledDate:    rec.ScheduledDate,
			Status:           lifecycle.SessionStatus(rec.Status),
			EstimatedMinutes: rec.EstimatedMinutes,
			Tau:              rec.Tau,
		})
	}
	return out, nil
}

func (s *sessionStore) Add(ctx context.Context, sess lifecycle.ScheduledSession) error {
	return s.repo.Add(ctx, store.ScheduledSessionRecord{
		SessionID:        sess.ID,
		ProfileID:        s.profileID,
		SectionID:        sess.SectionID,
		PieceID:          sess.PieceID,
		ScheduledDate:    sess.ScheduledDate,
		Status:           string(sess.Status),
		EstimatedMinutes: sess.EstimatedMinutes,
		Tau:              sess.Tau,
	})
}

func (s *sessionStore) Remove(ctx context.Context, id string) error {
	return s.repo.Remove(ctx, id)
}

func (s *sessionStore) MarkCompleted(ctx context.Context, id string) error {
	return s.repo.MarkCompleted(ctx, id)
}
