// Package pipeline coordinates one document ingestion: fingerprint, dedup
// lookup, text extraction, classification, fraud screening, vault placement
// and the single store insert.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/docuvault/constants"
	"github.com/joseph-ayodele/docuvault/internal/classifier"
	"github.com/joseph-ayodele/docuvault/internal/common"
	"github.com/joseph-ayodele/docuvault/internal/fingerprint"
	"github.com/joseph-ayodele/docuvault/internal/fraud"
)

// TextExtractor is the pipeline's view of OCR: best-effort text, never an
// error (failures arrive as the sentinel text).
type TextExtractor interface {
	Extract(ctx context.Context, path string) string
}

// Placer moves an accepted upload into its category directory and returns
// the stored path.
type Placer interface {
	Place(srcPath, originalFilename string, category constants.Category) (string, error)
}

// UploadRequest is one ingestion call. The file at Path is consumed on
// success (moved into the vault).
type UploadRequest struct {
	Path             string
	OriginalFilename string
	DisplayName      string
	Description      string
	UploaderID       uuid.UUID
}

type Processor struct {
	store      DocumentStore
	extractor  TextExtractor
	classifier *classifier.Classifier
	vault      Placer
	logger     *slog.Logger
}

func NewProcessor(store DocumentStore, extractor TextExtractor, cls *classifier.Classifier, v Placer, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{store: store, extractor: extractor, classifier: cls, vault: v, logger: logger}
}

// ProcessUpload runs the whole pipeline for one upload. Input errors and
// duplicates are the only caller-visible failures before persistence;
// extraction, classification and fraud screening degrade locally.
func (p *Processor) ProcessUpload(ctx context.Context, req UploadRequest) (*Record, error) {
	if strings.TrimSpace(req.DisplayName) == "" {
		return nil, common.NewAppError("UPLOAD_INVALID", "display name is required", common.ErrInvalidInput)
	}
	if req.UploaderID == uuid.Nil {
		return nil, common.NewAppError("UPLOAD_INVALID", "uploader is required", common.ErrInvalidInput)
	}
	if req.OriginalFilename == "" {
		req.OriginalFilename = filepath.Base(req.Path)
	}
	ext := constants.NormalizeExt(filepath.Ext(req.OriginalFilename))
	if !constants.IsAllowedExt(ext) {
		return nil, common.NewAppError("UPLOAD_INVALID", fmt.Sprintf("unsupported extension %q", ext), common.ErrInvalidInput)
	}
	if _, err := os.Stat(req.Path); err != nil {
		return nil, common.NewAppError("UPLOAD_INVALID", "uploaded file is not readable", common.ErrInvalidInput)
	}

	fp, err := fingerprint.FingerprintFile(req.Path)
	if err != nil {
		return nil, common.NewAppError("UPLOAD_INVALID", "failed to hash upload", common.ErrInvalidInput)
	}

	// Dedup before any extraction work: content that will be rejected anyway
	// must not reach OCR.
	existing, err := p.store.FindByFingerprint(ctx, fp)
	if err != nil {
		return nil, common.WrapError(err, "dedup lookup")
	}
	if existing != nil {
		p.logger.Info("duplicate upload rejected", "fingerprint", fp, "existing_id", existing.ID)
		return nil, common.NewAppError("DOCUMENT_EXISTS", "document already exists", common.ErrDuplicateDocument)
	}

	text := p.extractor.Extract(ctx, req.Path)
	cls := p.classifier.Classify(req.OriginalFilename, text)
	assessment := fraud.Assess(text, cls.Category, cls.Confidence)

	p.logger.Info("document screened",
		"fingerprint", fp,
		"category", cls.Category,
		"confidence", cls.Confidence,
		"fraud_status", assessment.Status,
		"fraud_reason", assessment.Reason,
	)

	storedPath, err := p.vault.Place(req.Path, req.OriginalFilename, cls.Category)
	if err != nil {
		return nil, common.WrapError(err, "store upload")
	}

	draft := Draft{
		Fingerprint:      fp,
		DisplayName:      strings.TrimSpace(req.DisplayName),
		Description:      req.Description,
		OriginalFilename: req.OriginalFilename,
		StoredPath:       storedPath,
		Category:         cls.Category,
		Confidence:       cls.Confidence,
		FraudStatus:      assessment.Status,
		FraudReason:      assessment.Reason,
		ExtractedText:    text,
		UploaderID:       req.UploaderID,
		UploadedAt:       time.Now().UTC(),
	}

	rec, err := p.store.Insert(ctx, draft)
	if err != nil {
		// The upload already moved into the vault; without a row it would
		// be orphaned there.
		if rmErr := os.Remove(storedPath); rmErr != nil {
			p.logger.Warn("failed to remove unrecorded file", "path", storedPath, "error", rmErr)
		}
		return nil, common.WrapError(err, "insert document")
	}
	p.logger.Info("document ingested", "document_id", rec.ID, "category", rec.Category, "fraud_status", rec.FraudStatus)
	return rec, nil
}

// VerifyBytes re-hashes content and looks the fingerprint up: a hit means
// this exact content was ingested before and is therefore authentic.
func (p *Processor) VerifyBytes(ctx context.Context, content []byte) (*Record, error) {
	return p.VerifyFingerprint(ctx, fingerprint.Fingerprint(content))
}

// VerifyFingerprint looks up a previously issued fingerprint.
func (p *Processor) VerifyFingerprint(ctx context.Context, fp string) (*Record, error) {
	rec, err := p.store.FindByFingerprint(ctx, fp)
	if err != nil {
		return nil, common.WrapError(err, "verify lookup")
	}
	if rec == nil {
		return nil, common.NewAppError("DOCUMENT_NOT_FOUND", "no document matches this content", common.ErrNotFound)
	}
	return rec, nil
}
