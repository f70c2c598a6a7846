package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records one submission evaluation. Attempt history is
// append-only; results are immutable once persisted.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			NotEmpty().
			Unique().
			Comment("UUID of this attempt"),
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the practice session"),
		field.String("slug").
			NotEmpty().
			Comment("Kata this attempt was for"),
		field.String("kata_type").
			NotEmpty().
			Comment("code, explain, shortform, multi-question, ..."),
		field.Float("score").
			Comment("Normalized score, 0-100"),
		field.Bool("passed").
			Comment("Strict completion gate"),
		field.Bool("ungraded").
			Default(false).
			Comment("True when the kata had no grading configuration"),
		field.Int64("duration_ms").
			Default(0).
			Comment("Collaborator-reported wall time"),
		field.String("message").
			Default("").
			Comment("Top-level diagnostic or upstream error, verbatim"),
		field.JSON("sub_results", []map[string]any{}).
			Optional().
			Comment("Itemized per-question or per-test outcomes, in order"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("slug"),
		index.Fields("session_id"),
		index.Fields("passed"),
	}
}
