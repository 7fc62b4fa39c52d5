package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Share struct{ ent.Schema }

func (Share) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "document_shares"},
	}
}

func (Share) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("document_id", uuid.UUID{}),
		field.UUID("recipient_id", uuid.UUID{}),
		field.Time("created_at").Default(time.Now),
	}
}

func (Share) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", Document.Type).
			Ref("shares").
			Field("document_id").
			Required().
			Unique(),
		edge.From("recipient", User.Type).
			Ref("shares_received").
			Field("recipient_id").
			Required().
			Unique(),
	}
}

func (Share) Indexes() []ent.Index {
	return []ent.Index{
		// one grant per document and recipient
		index.Fields("document_id", "recipient_id").Unique(),
		index.Fields("recipient_id"),
	}
}
