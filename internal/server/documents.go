package server

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/joseph-ayodele/docuvault/constants"
	docuvaultpb "github.com/joseph-ayodele/docuvault/gen/proto/docuvault/v1"
	"github.com/joseph-ayodele/docuvault/internal/common"
	"github.com/joseph-ayodele/docuvault/internal/ingest"
	"github.com/joseph-ayodele/docuvault/internal/pipeline"
	"github.com/joseph-ayodele/docuvault/internal/repository"
)

type DocumentsService struct {
	docuvaultpb.UnimplementedDocumentsServiceServer
	processor *pipeline.Processor
	ingestor  *ingest.Ingestor
	docs      repository.DocumentRepository
	activity  repository.ActivityRepository
	logger    *slog.Logger
}

func NewDocumentsService(proc *pipeline.Processor, ing *ingest.Ingestor, docs repository.DocumentRepository, activity repository.ActivityRepository, logger *slog.Logger) *DocumentsService {
	return &DocumentsService{
		processor: proc,
		ingestor:  ing,
		docs:      docs,
		activity:  activity,
		logger:    logger,
	}
}

func (s *DocumentsService) UploadDocument(ctx context.Context, req *docuvaultpb.UploadDocumentRequest) (*docuvaultpb.UploadDocumentResponse, error) {
	uploaderID, err := parseUUIDField(req.GetUploaderId(), "uploader_id")
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.GetDisplayName()) == "" {
		s.logger.Error("upload request missing display_name")
		return nil, status.Error(codes.InvalidArgument, "display_name is required")
	}
	if len(req.GetContent()) == 0 {
		s.logger.Error("upload request missing content")
		return nil, status.Error(codes.InvalidArgument, "content is required")
	}
	original := strings.TrimSpace(req.GetOriginalFilename())
	if original == "" {
		s.logger.Error("upload request missing original_filename")
		return nil, status.Error(codes.InvalidArgument, "original_filename is required")
	}

	// Stage the payload on disk; the pipeline consumes the file on success.
	tmpDir, err := os.MkdirTemp("", "docuvault-upload-*")
	if err != nil {
		s.logger.Error("failed to stage upload", "error", err)
		return nil, common.InternalError("failed to stage upload")
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()
	stagedPath := filepath.Join(tmpDir, filepath.Base(original))
	if err := os.WriteFile(stagedPath, req.GetContent(), 0o600); err != nil {
		s.logger.Error("failed to stage upload", "error", err)
		return nil, common.InternalError("failed to stage upload")
	}

	rec, err := s.processor.ProcessUpload(ctx, pipeline.UploadRequest{
		Path:             stagedPath,
		OriginalFilename: original,
		DisplayName:      req.GetDisplayName(),
		Description:      req.GetDescription(),
		UploaderID:       uploaderID,
	})
	if err != nil {
		s.logger.Error("upload failed", "uploader_id", uploaderID, "error", err)
		return nil, toStatus(err, "upload failed")
	}

	if err := s.activity.Record(ctx, uploaderID, &rec.ID, constants.ActivityUpload, rec.DisplayName); err != nil {
		s.logger.Warn("activity record failed", "document_id", rec.ID, "error", err)
	}
	return &docuvaultpb.UploadDocumentResponse{Document: toPBDocument(rec)}, nil
}

func (s *DocumentsService) VerifyDocument(ctx context.Context, req *docuvaultpb.VerifyDocumentRequest) (*docuvaultpb.VerifyDocumentResponse, error) {
	var (
		rec *pipeline.Record
		err error
	)
	switch {
	case len(req.GetContent()) > 0:
		rec, err = s.processor.VerifyBytes(ctx, req.GetContent())
	case strings.TrimSpace(req.GetFingerprint()) != "":
		rec, err = s.processor.VerifyFingerprint(ctx, strings.TrimSpace(req.GetFingerprint()))
	default:
		return nil, status.Error(codes.InvalidArgument, "content or fingerprint is required")
	}
	if err != nil {
		if status.Code(toStatus(err, "")) == codes.NotFound {
			// unknown content is a negative verification, not an RPC failure
			return &docuvaultpb.VerifyDocumentResponse{Authentic: false}, nil
		}
		s.logger.Error("verification failed", "error", err)
		return nil, toStatus(err, "verification failed")
	}
	return &docuvaultpb.VerifyDocumentResponse{
		Authentic: true,
		Document:  toPBDocument(rec),
	}, nil
}

func (s *DocumentsService) ListDocuments(ctx context.Context, req *docuvaultpb.ListDocumentsRequest) (*docuvaultpb.ListDocumentsResponse, error) {
	filter := repository.ListFilter{
		Query:  strings.TrimSpace(req.GetQuery()),
		Limit:  int(req.GetLimit()),
		Offset: int(req.GetOffset()),
	}
	if id := strings.TrimSpace(req.GetUploaderId()); id != "" {
		uploaderID, err := parseUUIDField(id, "uploader_id")
		if err != nil {
			return nil, err
		}
		filter.UploaderID = uploaderID
	}
	if c := strings.TrimSpace(req.GetCategory()); c != "" {
		cat, ok := constants.Canonicalize(c)
		if !ok {
			return nil, status.Errorf(codes.InvalidArgument, "unknown category %q", c)
		}
		filter.Category = cat
	}
	if fs := strings.TrimSpace(req.GetFraudStatus()); fs != "" {
		if !constants.IsValidFraudStatus(fs) {
			return nil, status.Errorf(codes.InvalidArgument, "unknown fraud_status %q", fs)
		}
		filter.FraudStatus = constants.FraudStatus(fs)
	}

	recs, err := s.docs.ListDocuments(ctx, filter)
	if err != nil {
		s.logger.Error("failed to list documents", "error", err)
		return nil, toStatus(err, "list documents failed")
	}
	return &docuvaultpb.ListDocumentsResponse{Documents: toPBDocuments(recs)}, nil
}

func (s *DocumentsService) ShareDocument(ctx context.Context, req *docuvaultpb.ShareDocumentRequest) (*docuvaultpb.ShareDocumentResponse, error) {
	documentID, ownerID, recipientID, err := parseShareIDs(req.GetDocumentId(), req.GetOwnerId(), req.GetRecipientId())
	if err != nil {
		return nil, err
	}
	if err := s.docs.ShareDocument(ctx, documentID, ownerID, recipientID); err != nil {
		s.logger.Error("share failed", "document_id", documentID, "error", err)
		return nil, toStatus(err, "share failed")
	}
	if err := s.activity.Record(ctx, ownerID, &documentID, constants.ActivityShare, recipientID.String()); err != nil {
		s.logger.Warn("activity record failed", "document_id", documentID, "error", err)
	}
	return &docuvaultpb.ShareDocumentResponse{}, nil
}

func (s *DocumentsService) UnshareDocument(ctx context.Context, req *docuvaultpb.UnshareDocumentRequest) (*docuvaultpb.UnshareDocumentResponse, error) {
	documentID, ownerID, recipientID, err := parseShareIDs(req.GetDocumentId(), req.GetOwnerId(), req.GetRecipientId())
	if err != nil {
		return nil, err
	}
	if err := s.docs.UnshareDocument(ctx, documentID, ownerID, recipientID); err != nil {
		s.logger.Error("unshare failed", "document_id", documentID, "error", err)
		return nil, toStatus(err, "unshare failed")
	}
	if err := s.activity.Record(ctx, ownerID, &documentID, constants.ActivityUnshare, recipientID.String()); err != nil {
		s.logger.Warn("activity record failed", "document_id", documentID, "error", err)
	}
	return &docuvaultpb.UnshareDocumentResponse{}, nil
}

func (s *DocumentsService) ListSharedDocuments(ctx context.Context, req *docuvaultpb.ListSharedDocumentsRequest) (*docuvaultpb.ListSharedDocumentsResponse, error) {
	recipientID, err := parseUUIDField(req.GetRecipientId(), "recipient_id")
	if err != nil {
		return nil, err
	}
	recs, err := s.docs.ListSharedWith(ctx, recipientID)
	if err != nil {
		s.logger.Error("failed to list shared documents", "recipient_id", recipientID, "error", err)
		return nil, toStatus(err, "list shared documents failed")
	}
	return &docuvaultpb.ListSharedDocumentsResponse{Documents: toPBDocuments(recs)}, nil
}

// DownloadDocument returns the stored bytes to the uploader or to a user
// the document was shared with.
func (s *DocumentsService) DownloadDocument(ctx context.Context, req *docuvaultpb.DownloadDocumentRequest) (*docuvaultpb.DownloadDocumentResponse, error) {
	documentID, err := parseUUIDField(req.GetDocumentId(), "document_id")
	if err != nil {
		return nil, err
	}
	requesterID, err := parseUUIDField(req.GetRequesterId(), "requester_id")
	if err != nil {
		return nil, err
	}

	rec, err := s.docs.GetByID(ctx, documentID)
	if err != nil {
		s.logger.Error("download lookup failed", "document_id", documentID, "error", err)
		return nil, toStatus(err, "download failed")
	}
	if rec.UploaderID != requesterID {
		shared, err := s.docs.IsSharedWith(ctx, documentID, requesterID)
		if err != nil {
			s.logger.Error("download share lookup failed", "document_id", documentID, "error", err)
			return nil, toStatus(err, "download failed")
		}
		if !shared {
			s.logger.Warn("download denied", "document_id", documentID, "requester_id", requesterID)
			return nil, status.Error(codes.PermissionDenied, "document is not shared with this user")
		}
	}

	content, err := os.ReadFile(rec.StoredPath)
	if err != nil {
		s.logger.Error("stored file unreadable", "document_id", documentID, "path", rec.StoredPath, "error", err)
		return nil, common.InternalError("stored file unavailable")
	}

	if err := s.activity.Record(ctx, requesterID, &documentID, constants.ActivityDownload, rec.DisplayName); err != nil {
		s.logger.Warn("activity record failed", "document_id", documentID, "error", err)
	}
	return &docuvaultpb.DownloadDocumentResponse{
		FileName: rec.OriginalFilename,
		Content:  content,
	}, nil
}

func (s *DocumentsService) IngestDirectory(ctx context.Context, req *docuvaultpb.IngestDirectoryRequest) (*docuvaultpb.IngestDirectoryResponse, error) {
	uploaderID, err := parseUUIDField(req.GetUploaderId(), "uploader_id")
	if err != nil {
		return nil, err
	}
	root := strings.TrimSpace(req.GetRootPath())
	if root == "" {
		s.logger.Error("ingest directory request missing root_path", "uploader_id", uploaderID)
		return nil, status.Error(codes.InvalidArgument, "root_path is required")
	}

	s.logger.Info("starting directory ingest", "uploader_id", uploaderID, "root", root, "skip_hidden", req.GetSkipHidden())
	results, stats, err := s.ingestor.IngestDirectory(ctx, uploaderID, root, req.GetIncludeExts(), req.GetSkipHidden())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "ingest directory: %v", err)
	}

	out := &docuvaultpb.IngestDirectoryResponse{
		Scanned:      stats.Scanned,
		Matched:      stats.Matched,
		Succeeded:    stats.Succeeded,
		Deduplicated: stats.Deduplicated,
		Failed:       stats.Failed,
		Results:      make([]*docuvaultpb.IngestFileResult, 0, len(results)),
	}
	for _, r := range results {
		out.Results = append(out.Results, &docuvaultpb.IngestFileResult{
			Path:         r.Path,
			DocumentId:   r.DocumentID,
			Category:     string(r.Category),
			FraudStatus:  string(r.FraudStatus),
			Deduplicated: r.Deduplicated,
			Error:        r.Err,
		})
	}
	return out, nil
}

func parseUUIDField(raw, field string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, common.InvalidArgumentErrorf("%s is required", field)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, common.InvalidArgumentErrorf("%s must be a UUID", field)
	}
	return id, nil
}

func parseShareIDs(document, owner, recipient string) (uuid.UUID, uuid.UUID, uuid.UUID, error) {
	documentID, err := parseUUIDField(document, "document_id")
	if err != nil {
		return uuid.Nil, uuid.Nil, uuid.Nil, err
	}
	ownerID, err := parseUUIDField(owner, "owner_id")
	if err != nil {
		return uuid.Nil, uuid.Nil, uuid.Nil, err
	}
	recipientID, err := parseUUIDField(recipient, "recipient_id")
	if err != nil {
		return uuid.Nil, uuid.Nil, uuid.Nil, err
	}
	return documentID, ownerID, recipientID, nil
}
