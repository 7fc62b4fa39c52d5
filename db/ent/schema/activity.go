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
	"github.com/joseph-ayodele/docuvault/constants"
	"github.com/joseph-ayodele/docuvault/db/ent/schema/utils"
)

type Activity struct{ ent.Schema }

func (Activity) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "activity_log"},
	}
}

func (Activity) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("user_id", uuid.UUID{}),
		field.UUID("document_id", uuid.UUID{}).Optional().Nillable(),
		field.String("type").NotEmpty().
			Validate(utils.EnumValidator(
				string(constants.ActivityUpload),
				string(constants.ActivityDownload),
				string(constants.ActivityVerification),
				string(constants.ActivityShare),
				string(constants.ActivityUnshare),
			)),
		field.String("detail").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (Activity) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("activities").
			Field("user_id").
			Required().
			Unique(),
		edge.From("document", Document.Type).
			Ref("activities").
			Field("document_id").
			Unique(),
	}
}

func (Activity) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
		index.Fields("created_at"),
	}
}
