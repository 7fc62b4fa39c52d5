// Package server exposes the ingestion pipeline and the admin surface over
// gRPC.
package server

import (
	"errors"
	"time"

	"github.com/joseph-ayodele/docuvault/gen/ent"
	docuvaultpb "github.com/joseph-ayodele/docuvault/gen/proto/docuvault/v1"
	"github.com/joseph-ayodele/docuvault/internal/common"
	"github.com/joseph-ayodele/docuvault/internal/pipeline"
)

func toPBDocument(r *pipeline.Record) *docuvaultpb.Document {
	return &docuvaultpb.Document{
		Id:               r.ID.String(),
		UploaderId:       r.UploaderID.String(),
		Fingerprint:      r.Fingerprint,
		DisplayName:      r.DisplayName,
		Description:      r.Description,
		OriginalFilename: r.OriginalFilename,
		StoredPath:       r.StoredPath,
		Category:         string(r.Category),
		Confidence:       r.Confidence,
		FraudStatus:      string(r.FraudStatus),
		FraudReason:      r.FraudReason,
		UploadedAt:       r.UploadedAt.UTC().Format(time.RFC3339),
		CreatedAt:        r.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toPBDocuments(recs []*pipeline.Record) []*docuvaultpb.Document {
	out := make([]*docuvaultpb.Document, 0, len(recs))
	for _, r := range recs {
		out = append(out, toPBDocument(r))
	}
	return out
}

func toPBUser(u *ent.User) *docuvaultpb.User {
	return &docuvaultpb.User{
		Id:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// toStatus maps application sentinels onto gRPC codes.
func toStatus(err error, fallback string) error {
	var appErr *common.AppError
	msg := fallback
	if errors.As(err, &appErr) {
		msg = appErr.Message
	}
	switch {
	case errors.Is(err, common.ErrNotFound):
		return common.NotFoundError(msg)
	case errors.Is(err, common.ErrDuplicateDocument):
		return common.AlreadyExistsError(msg)
	case errors.Is(err, common.ErrInvalidInput):
		return common.InvalidArgumentError(msg)
	case errors.Is(err, common.ErrUnauthorized):
		return common.PermissionDeniedError(msg)
	default:
		return common.InternalError(fallback)
	}
}
