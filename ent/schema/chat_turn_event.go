package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChatTurnEvent records the outcome of one tutoring turn: which response
// mode the classifier chose and whether a quiz was produced. Transcript
// text is deliberately not stored.
type ChatTurnEvent struct {
	ent.Schema
}

func (ChatTurnEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ChatTurnEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("subject").
			Comment("Subject label active for the turn"),
		field.String("response_kind").
			Comment("conversation, doubt_explanation, perspective_explanation, or error"),
		field.Int("mcq_count").
			Default(0).
			Comment("Number of practice questions produced"),
		field.Bool("had_image").
			Default(false).
			Comment("Whether the learner attached an image"),
	}
}

func (ChatTurnEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subject"),
		index.Fields("response_kind"),
	}
}
