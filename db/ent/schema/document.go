package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
	"github.com/joseph-ayodele/docuvault/constants"
	"github.com/joseph-ayodele/docuvault/db/ent/schema/utils"
)

type Document struct{ ent.Schema }

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "documents"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("uploader_id", uuid.UUID{}),
		// sha-256 hex digest of the raw bytes; the dedup key.
		field.String("fingerprint").NotEmpty().MinLen(64).MaxLen(64).Unique().
			SchemaType(map[string]string{dialect.Postgres: "char(64)"}),
		field.String("display_name").NotEmpty(),
		field.String("description").Optional().Nillable(),
		field.String("original_filename").NotEmpty(),
		field.String("stored_path").NotEmpty(),
		field.String("category").
			Validate(utils.EnumValidator(constants.AsStringSlice()...)),
		field.Float32("confidence").Default(0),
		field.String("fraud_status").
			Validate(utils.EnumValidator(fraudStatusStrings()...)),
		field.String("fraud_reason").Optional().Nillable(),
		// set when an admin overrides the heuristic verdict
		field.UUID("reviewed_by", uuid.UUID{}).Optional().Nillable(),
		field.String("ocr_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("uploaded_at").
			Immutable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func fraudStatusStrings() []string {
	out := make([]string, len(constants.AllFraudStatuses))
	for i, s := range constants.AllFraudStatuses {
		out[i] = string(s)
	}
	return out
}

func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY documents -> ONE uploader (FK: documents.uploader_id)
		edge.From("uploader", User.Type).
			Ref("documents").
			Field("uploader_id").
			Required().
			Unique(),
		// ONE document -> MANY shares
		edge.To("shares", Share.Type),
		// ONE document -> MANY activity entries
		edge.To("activities", Activity.Type),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("uploader_id", "uploaded_at"),
		index.Fields("category"),
		index.Fields("fraud_status"),
	}
}
