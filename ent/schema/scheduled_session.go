package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ScheduledSession is a planned review entry produced by the scheduler.
// Pending entries are deleted, not completed, when a lifecycle change or
// recomputation invalidates the schedule.
type ScheduledSession struct {
	ent.Schema
}

func (ScheduledSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Unique().
			NotEmpty().
			Comment("Caller-assigned UUID"),
		field.String("profile_id").NotEmpty(),
		field.String("section_id").NotEmpty(),
		field.String("piece_id").Optional(),
		field.Time("scheduled_date"),
		field.Enum("status").
			Values("Planned", "Completed").
			Default("Planned"),
		field.Int("estimated_minutes"),
		field.Float("tau").
			Comment("Tau used to produce the interval; 0 for maintenance"),
	}
}

func (ScheduledSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("section_id", "status"),
		index.Fields("profile_id"),
		index.Fields("scheduled_date"),
	}
}
