package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/docuvault/constants"
)

// Draft is the fully-computed document record the pipeline hands to the
// store: fingerprint, classification and fraud screening are decided together
// before any persistence happens.
type Draft struct {
	Fingerprint      string
	DisplayName      string
	Description      string
	OriginalFilename string
	StoredPath       string
	Category         constants.Category
	Confidence       float64
	FraudStatus      constants.FraudStatus
	FraudReason      string
	ExtractedText    string
	UploaderID       uuid.UUID
	UploadedAt       time.Time
}

// Record is a persisted document as the pipeline sees it.
type Record struct {
	ID uuid.UUID
	Draft
	CreatedAt time.Time
}

// DocumentStore is the persistence collaborator boundary. The unique index
// on fingerprint is the real enforcement of "one record per content"; the
// dedup lookup in the pipeline only avoids wasted OCR work.
type DocumentStore interface {
	// FindByFingerprint returns (nil, nil) when no document matches.
	FindByFingerprint(ctx context.Context, fingerprint string) (*Record, error)
	Insert(ctx context.Context, draft Draft) (*Record, error)
	UpdateFraudStatus(ctx context.Context, id uuid.UUID, status constants.FraudStatus, reason string, reviewerID uuid.UUID) (*Record, error)
}
