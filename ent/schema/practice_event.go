package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PracticeEvent records one completed practice session for a section.
// Events are immutable once written; the deleted flag soft-deletes a
// record, excluding it from calibration and display while keeping it for
// audit.
type PracticeEvent struct {
	ent.Schema
}

func (PracticeEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (PracticeEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("profile_id").NotEmpty(),
		field.String("section_id").NotEmpty(),
		field.String("piece_id").Optional(),
		field.String("performance").NotEmpty(),
		field.Float("score"),
		field.Int("repetitions"),
		field.Int("execution_failures"),
		field.Int("memory_failures"),
		field.Bool("deleted").Default(false),
	}
}

func (PracticeEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("section_id"),
		index.Fields("profile_id"),
	}
}
