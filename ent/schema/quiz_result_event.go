package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizResultEvent records one completed quiz run.
type QuizResultEvent struct {
	ent.Schema
}

func (QuizResultEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (QuizResultEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("subject").
			Comment("Subject label active for the quiz"),
		field.Int("total").
			Comment("Number of questions"),
		field.Int("correct").
			Comment("Number answered correctly"),
		field.Bool("retried").
			Default(false).
			Comment("Whether this run was a retry of the same question set"),
	}
}

func (QuizResultEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subject"),
	}
}
