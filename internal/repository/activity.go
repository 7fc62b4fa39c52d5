package repository

import (
	"context"
	"log/slog"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/joseph-ayodele/docuvault/constants"
	"github.com/joseph-ayodele/docuvault/gen/ent"
	"github.com/joseph-ayodele/docuvault/gen/ent/activity"
	"github.com/joseph-ayodele/docuvault/internal/common"
)

type ActivityRepository interface {
	Record(ctx context.Context, userID uuid.UUID, documentID *uuid.UUID, typ constants.ActivityType, detail string) error
	Recent(ctx context.Context, limit int) ([]*ent.Activity, error)
}

type activityRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewActivityRepository(client *ent.Client, logger *slog.Logger) ActivityRepository {
	return &activityRepository{
		client: client,
		logger: logger,
	}
}

// Record appends one audit trail entry. Failures are reported but callers
// treat the trail as best effort.
func (r *activityRepository) Record(ctx context.Context, userID uuid.UUID, documentID *uuid.UUID, typ constants.ActivityType, detail string) error {
	builder := r.client.Activity.Create().
		SetUserID(userID).
		SetType(string(typ))
	if documentID != nil {
		builder = builder.SetDocumentID(*documentID)
	}
	if detail != "" {
		builder = builder.SetDetail(detail)
	}
	if err := builder.Exec(ctx); err != nil {
		r.logger.Error("failed to record activity", "user_id", userID, "type", typ, "error", err)
		return common.WrapError(err, "record activity")
	}
	return nil
}

func (r *activityRepository) Recent(ctx context.Context, limit int) ([]*ent.Activity, error) {
	if limit <= 0 {
		limit = 50
	}
	entries, err := r.client.Activity.Query().
		Order(activity.ByCreatedAt(entsql.OrderDesc())).
		Limit(limit).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list recent activity", "error", err)
		return nil, common.WrapError(err, "recent activity")
	}
	return entries, nil
}
