package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Progress is the mutable best-progress snapshot per kata. Unlike attempt
// events it is upserted in place: one row per slug.
type Progress struct {
	ent.Schema
}

func (Progress) Fields() []ent.Field {
	return []ent.Field{
		field.String("slug").
			NotEmpty().
			Unique().
			Comment("Kata this progress row tracks"),
		field.Float("best_score").
			Default(0).
			Comment("Highest score ever achieved, 0-100"),
		field.Float("last_score").
			Default(0).
			Comment("Score of the most recent attempt"),
		field.Int("attempts").
			Default(0).
			Comment("Total attempts recorded"),
		field.Bool("completed").
			Default(false).
			Comment("Whether the kata was ever passed"),
		field.Time("last_attempt_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("When the kata was last attempted"),
	}
}

func (Progress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("completed"),
		index.Fields("last_attempt_at"),
	}
}
