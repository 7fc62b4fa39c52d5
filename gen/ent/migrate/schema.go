// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ActivityLogColumns holds the columns for the "activity_log" table.
	ActivityLogColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "type", Type: field.TypeString},
		{Name: "detail", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeUUID, Nullable: true},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// ActivityLogTable holds the schema information for the "activity_log" table.
	ActivityLogTable = &schema.Table{
		Name:       "activity_log",
		Columns:    ActivityLogColumns,
		PrimaryKey: []*schema.Column{ActivityLogColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "activity_log_documents_activities",
				Columns:    []*schema.Column{ActivityLogColumns[4]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "activity_log_users_activities",
				Columns:    []*schema.Column{ActivityLogColumns[5]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "activity_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ActivityLogColumns[5], ActivityLogColumns[3]},
			},
			{
				Name:    "activity_created_at",
				Unique:  false,
				Columns: []*schema.Column{ActivityLogColumns[3]},
			},
		},
	}
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "fingerprint", Type: field.TypeString, Unique: true, Size: 64, SchemaType: map[string]string{"postgres": "char(64)"}},
		{Name: "display_name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "original_filename", Type: field.TypeString},
		{Name: "stored_path", Type: field.TypeString},
		{Name: "category", Type: field.TypeString},
		{Name: "confidence", Type: field.TypeFloat32, Default: 0},
		{Name: "fraud_status", Type: field.TypeString},
		{Name: "fraud_reason", Type: field.TypeString, Nullable: true},
		{Name: "reviewed_by", Type: field.TypeUUID, Nullable: true},
		{Name: "ocr_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "uploader_id", Type: field.TypeUUID},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "documents_users_documents",
				Columns:    []*schema.Column{DocumentsColumns[15]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "document_uploader_id_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[15], DocumentsColumns[12]},
			},
			{
				Name:    "document_category",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[6]},
			},
			{
				Name:    "document_fraud_status",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[8]},
			},
		},
	}
	// DocumentSharesColumns holds the columns for the "document_shares" table.
	DocumentSharesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeUUID},
		{Name: "recipient_id", Type: field.TypeUUID},
	}
	// DocumentSharesTable holds the schema information for the "document_shares" table.
	DocumentSharesTable = &schema.Table{
		Name:       "document_shares",
		Columns:    DocumentSharesColumns,
		PrimaryKey: []*schema.Column{DocumentSharesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "document_shares_documents_shares",
				Columns:    []*schema.Column{DocumentSharesColumns[2]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "document_shares_users_shares_received",
				Columns:    []*schema.Column{DocumentSharesColumns[3]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "share_document_id_recipient_id",
				Unique:  true,
				Columns: []*schema.Column{DocumentSharesColumns[2], DocumentSharesColumns[3]},
			},
			{
				Name:    "share_recipient_id",
				Unique:  false,
				Columns: []*schema.Column{DocumentSharesColumns[3]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "role", Type: field.TypeString, Default: "user"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ActivityLogTable,
		DocumentsTable,
		DocumentSharesTable,
		UsersTable,
	}
)

func init() {
	ActivityLogTable.ForeignKeys[0].RefTable = DocumentsTable
	ActivityLogTable.ForeignKeys[1].RefTable = UsersTable
	ActivityLogTable.Annotation = &entsql.Annotation{
		Table: "activity_log",
	}
	DocumentsTable.ForeignKeys[0].RefTable = UsersTable
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	DocumentSharesTable.ForeignKeys[0].RefTable = DocumentsTable
	DocumentSharesTable.ForeignKeys[1].RefTable = UsersTable
	DocumentSharesTable.Annotation = &entsql.Annotation{
		Table: "document_shares",
	}
	UsersTable.Annotation = &entsql.Annotation{
		Table: "users",
	}
}
