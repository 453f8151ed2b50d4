package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LifecycleEvent records a section lifecycle transition for audit and
// operator follow-up (a persisted state change whose scheduling side
// effects failed shows up here alongside the warning log).
type LifecycleEvent struct {
	ent.Schema
}

func (LifecycleEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (LifecycleEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("profile_id").NotEmpty(),
		field.String("section_id").NotEmpty(),
		field.Int("from_state"),
		field.Int("to_state"),
		field.Bool("suppressed").Default(false),
		field.Float("tau").Default(0),
		field.Int("interval_days").Default(0),
	}
}

func (LifecycleEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("section_id"),
	}
}
