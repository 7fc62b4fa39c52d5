package repository

import (
	"context"
	"log/slog"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/joseph-ayodele/docuvault/constants"
	"github.com/joseph-ayodele/docuvault/gen/ent"
	"github.com/joseph-ayodele/docuvault/gen/ent/document"
	"github.com/joseph-ayodele/docuvault/gen/ent/share"
	"github.com/joseph-ayodele/docuvault/internal/common"
	"github.com/joseph-ayodele/docuvault/internal/pipeline"
)

// ListFilter narrows ListDocuments. Zero values mean "no constraint".
type ListFilter struct {
	UploaderID  uuid.UUID
	Category    constants.Category
	FraudStatus constants.FraudStatus
	Query       string
	Limit       int
	Offset      int
}

// CategoryCount is one row of the category breakdown.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// DashboardStats aggregates the admin dashboard counters.
type DashboardStats struct {
	TotalDocuments int
	Verified       int
	Suspicious     int
	Rejected       int
	Pending        int
}

type DocumentRepository interface {
	pipeline.DocumentStore
	GetByID(ctx context.Context, id uuid.UUID) (*pipeline.Record, error)
	ListDocuments(ctx context.Context, filter ListFilter) ([]*pipeline.Record, error)
	ShareDocument(ctx context.Context, documentID, ownerID, recipientID uuid.UUID) error
	UnshareDocument(ctx context.Context, documentID, ownerID, recipientID uuid.UUID) error
	ListSharedWith(ctx context.Context, recipientID uuid.UUID) ([]*pipeline.Record, error)
	IsSharedWith(ctx context.Context, documentID, recipientID uuid.UUID) (bool, error)
	Stats(ctx context.Context) (*DashboardStats, error)
	CountByCategory(ctx context.Context) ([]CategoryCount, error)
}

type documentRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(client *ent.Client, logger *slog.Logger) DocumentRepository {
	return &documentRepository{
		client: client,
		logger: logger,
	}
}

func (r *documentRepository) FindByFingerprint(ctx context.Context, fingerprint string) (*pipeline.Record, error) {
	doc, err := r.client.Document.Query().
		Where(document.Fingerprint(fingerprint)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("fingerprint lookup failed", "error", err)
		return nil, common.WrapError(err, "fingerprint lookup")
	}
	return toRecord(doc), nil
}

func (r *documentRepository) Insert(ctx context.Context, draft pipeline.Draft) (*pipeline.Record, error) {
	builder := r.client.Document.Create().
		SetUploaderID(draft.UploaderID).
		SetFingerprint(draft.Fingerprint).
		SetDisplayName(draft.DisplayName).
		SetOriginalFilename(draft.OriginalFilename).
		SetStoredPath(draft.StoredPath).
		SetCategory(string(draft.Category)).
		SetConfidence(float32(draft.Confidence)).
		SetFraudStatus(string(draft.FraudStatus)).
		SetUploadedAt(draft.UploadedAt)
	if draft.Description != "" {
		builder = builder.SetDescription(draft.Description)
	}
	if draft.FraudReason != "" {
		builder = builder.SetFraudReason(draft.FraudReason)
	}
	if draft.ExtractedText != "" {
		builder = builder.SetOcrText(draft.ExtractedText)
	}

	doc, err := builder.Save(ctx)
	if ent.IsConstraintError(err) {
		// unique fingerprint index won a race with a concurrent upload
		return nil, common.NewAppError("DOCUMENT_EXISTS", "document already exists", common.ErrDuplicateDocument)
	}
	if err != nil {
		r.logger.Error("failed to insert document", "fingerprint", draft.Fingerprint, "error", err)
		return nil, common.WrapError(err, "insert document")
	}
	return toRecord(doc), nil
}

func (r *documentRepository) UpdateFraudStatus(ctx context.Context, id uuid.UUID, status constants.FraudStatus, reason string, reviewerID uuid.UUID) (*pipeline.Record, error) {
	builder := r.client.Document.UpdateOneID(id).
		SetFraudStatus(string(status))
	if reviewerID != uuid.Nil {
		builder = builder.SetReviewedBy(reviewerID)
	}
	if reason == "" {
		builder = builder.ClearFraudReason()
	} else {
		builder = builder.SetFraudReason(reason)
	}
	doc, err := builder.Save(ctx)
	if ent.IsNotFound(err) {
		return nil, common.NewAppError("DOCUMENT_NOT_FOUND", "document not found", common.ErrNotFound)
	}
	if err != nil {
		r.logger.Error("failed to update fraud status", "document_id", id, "error", err)
		return nil, common.WrapError(err, "update fraud status")
	}
	r.logger.Info("fraud status updated", "document_id", id, "status", status, "reviewer_id", reviewerID)
	return toRecord(doc), nil
}

func (r *documentRepository) GetByID(ctx context.Context, id uuid.UUID) (*pipeline.Record, error) {
	doc, err := r.client.Document.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, common.NewAppError("DOCUMENT_NOT_FOUND", "document not found", common.ErrNotFound)
	}
	if err != nil {
		return nil, common.WrapError(err, "get document")
	}
	return toRecord(doc), nil
}

func (r *documentRepository) ListDocuments(ctx context.Context, filter ListFilter) ([]*pipeline.Record, error) {
	q := r.client.Document.Query()
	if filter.UploaderID != uuid.Nil {
		q = q.Where(document.UploaderID(filter.UploaderID))
	}
	if filter.Category != "" {
		q = q.Where(document.Category(string(filter.Category)))
	}
	if filter.FraudStatus != "" {
		q = q.Where(document.FraudStatus(string(filter.FraudStatus)))
	}
	if filter.Query != "" {
		q = q.Where(document.Or(
			document.DisplayNameContainsFold(filter.Query),
			document.OriginalFilenameContainsFold(filter.Query),
		))
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}
	docs, err := q.Order(document.ByUploadedAt(entsql.OrderDesc())).All(ctx)
	if err != nil {
		r.logger.Error("failed to list documents", "error", err)
		return nil, common.WrapError(err, "list documents")
	}
	return toRecords(docs), nil
}

func (r *documentRepository) ShareDocument(ctx context.Context, documentID, ownerID, recipientID uuid.UUID) error {
	owned, err := r.client.Document.Query().
		Where(document.ID(documentID), document.UploaderID(ownerID)).
		Exist(ctx)
	if err != nil {
		return common.WrapError(err, "share lookup")
	}
	if !owned {
		return common.NewAppError("SHARE_FORBIDDEN", "only the uploader can share a document", common.ErrUnauthorized)
	}
	if ownerID == recipientID {
		return common.NewAppError("SHARE_INVALID", "cannot share a document with its uploader", common.ErrInvalidInput)
	}

	err = r.client.Share.Create().
		SetDocumentID(documentID).
		SetRecipientID(recipientID).
		Exec(ctx)
	if ent.IsConstraintError(err) {
		// already shared with this recipient; treat as done
		return nil
	}
	if err != nil {
		r.logger.Error("failed to share document", "document_id", documentID, "error", err)
		return common.WrapError(err, "share document")
	}
	return nil
}

func (r *documentRepository) UnshareDocument(ctx context.Context, documentID, ownerID, recipientID uuid.UUID) error {
	owned, err := r.client.Document.Query().
		Where(document.ID(documentID), document.UploaderID(ownerID)).
		Exist(ctx)
	if err != nil {
		return common.WrapError(err, "unshare lookup")
	}
	if !owned {
		return common.NewAppError("SHARE_FORBIDDEN", "only the uploader can revoke a share", common.ErrUnauthorized)
	}

	n, err := r.client.Share.Delete().
		Where(share.DocumentID(documentID), share.RecipientID(recipientID)).
		Exec(ctx)
	if err != nil {
		return common.WrapError(err, "unshare document")
	}
	if n == 0 {
		return common.NewAppError("SHARE_NOT_FOUND", "no share to revoke", common.ErrNotFound)
	}
	return nil
}

func (r *documentRepository) ListSharedWith(ctx context.Context, recipientID uuid.UUID) ([]*pipeline.Record, error) {
	docs, err := r.client.Share.Query().
		Where(share.RecipientID(recipientID)).
		QueryDocument().
		Order(document.ByUploadedAt(entsql.OrderDesc())).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list shared documents", "recipient_id", recipientID, "error", err)
		return nil, common.WrapError(err, "list shared documents")
	}
	return toRecords(docs), nil
}

func (r *documentRepository) IsSharedWith(ctx context.Context, documentID, recipientID uuid.UUID) (bool, error) {
	ok, err := r.client.Share.Query().
		Where(share.DocumentID(documentID), share.RecipientID(recipientID)).
		Exist(ctx)
	if err != nil {
		return false, common.WrapError(err, "share lookup")
	}
	return ok, nil
}

func (r *documentRepository) Stats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}
	var err error
	if stats.TotalDocuments, err = r.client.Document.Query().Count(ctx); err != nil {
		return nil, common.WrapError(err, "count documents")
	}
	byStatus := map[constants.FraudStatus]*int{
		constants.FraudStatusVerified:   &stats.Verified,
		constants.FraudStatusSuspicious: &stats.Suspicious,
		constants.FraudStatusRejected:   &stats.Rejected,
		constants.FraudStatusPending:    &stats.Pending,
	}
	for status, dst := range byStatus {
		n, err := r.client.Document.Query().
			Where(document.FraudStatus(string(status))).
			Count(ctx)
		if err != nil {
			return nil, common.WrapError(err, "count documents by status")
		}
		*dst = n
	}
	return stats, nil
}

func (r *documentRepository) CountByCategory(ctx context.Context) ([]CategoryCount, error) {
	var rows []CategoryCount
	err := r.client.Document.Query().
		GroupBy(document.FieldCategory).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		r.logger.Error("failed to aggregate categories", "error", err)
		return nil, common.WrapError(err, "category breakdown")
	}
	return rows, nil
}

func toRecord(doc *ent.Document) *pipeline.Record {
	rec := &pipeline.Record{
		ID: doc.ID,
		Draft: pipeline.Draft{
			Fingerprint:      doc.Fingerprint,
			DisplayName:      doc.DisplayName,
			OriginalFilename: doc.OriginalFilename,
			StoredPath:       doc.StoredPath,
			Category:         constants.Category(doc.Category),
			Confidence:       float64(doc.Confidence),
			FraudStatus:      constants.FraudStatus(doc.FraudStatus),
			UploaderID:       doc.UploaderID,
			UploadedAt:       doc.UploadedAt,
		},
		CreatedAt: doc.CreatedAt,
	}
	if doc.Description != nil {
		rec.Description = *doc.Description
	}
	if doc.FraudReason != nil {
		rec.FraudReason = *doc.FraudReason
	}
	if doc.OcrText != nil {
		rec.ExtractedText = *doc.OcrText
	}
	return rec
}

func toRecords(docs []*ent.Document) []*pipeline.Record {
	out := make([]*pipeline.Record, len(docs))
	for i, doc := range docs {
		out[i] = toRecord(doc)
	}
	return out
}
