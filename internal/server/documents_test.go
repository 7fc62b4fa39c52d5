package server

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/joseph-ayodele/docuvault/constants"
	"github.com/joseph-ayodele/docuvault/gen/ent"
	docuvaultpb "github.com/joseph-ayodele/docuvault/gen/proto/docuvault/v1"
	"github.com/joseph-ayodele/docuvault/internal/common"
	"github.com/joseph-ayodele/docuvault/internal/pipeline"
	"github.com/joseph-ayodele/docuvault/internal/repository"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubDocRepo serves a single record and a fixed share table.
type stubDocRepo struct {
	repository.DocumentRepository
	rec    *pipeline.Record
	shared map[uuid.UUID]bool
}

func (s *stubDocRepo) GetByID(_ context.Context, id uuid.UUID) (*pipeline.Record, error) {
	if s.rec == nil || s.rec.ID != id {
		return nil, common.NewAppError("DOCUMENT_NOT_FOUND", "document not found", common.ErrNotFound)
	}
	return s.rec, nil
}

func (s *stubDocRepo) IsSharedWith(_ context.Context, _ uuid.UUID, recipientID uuid.UUID) (bool, error) {
	return s.shared[recipientID], nil
}

type stubActivity struct {
	types []constants.ActivityType
}

func (s *stubActivity) Record(_ context.Context, _ uuid.UUID, _ *uuid.UUID, typ constants.ActivityType, _ string) error {
	s.types = append(s.types, typ)
	return nil
}

func (s *stubActivity) Recent(context.Context, int) ([]*ent.Activity, error) {
	return nil, nil
}

func TestDownloadDocument(t *testing.T) {
	uploader := uuid.New()
	recipient := uuid.New()

	stored := filepath.Join(t.TempDir(), "stored.pdf")
	content := []byte("%PDF-1.4 signed contract payload")
	if err := os.WriteFile(stored, content, 0o600); err != nil {
		t.Fatal(err)
	}

	rec := &pipeline.Record{
		ID: uuid.New(),
		Draft: pipeline.Draft{
			OriginalFilename: "contract_signed.pdf",
			StoredPath:       stored,
			UploaderID:       uploader,
		},
		CreatedAt: time.Now(),
	}
	docs := &stubDocRepo{rec: rec, shared: map[uuid.UUID]bool{recipient: true}}
	activity := &stubActivity{}
	svc := NewDocumentsService(nil, nil, docs, activity, discardLogger())

	// the uploader and a share recipient both get the bytes back
	for _, requester := range []uuid.UUID{uploader, recipient} {
		resp, err := svc.DownloadDocument(context.Background(), &docuvaultpb.DownloadDocumentRequest{
			DocumentId:  rec.ID.String(),
			RequesterId: requester.String(),
		})
		if err != nil {
			t.Fatalf("DownloadDocument(%s): %v", requester, err)
		}
		if resp.GetFileName() != "contract_signed.pdf" {
			t.Fatalf("file_name = %q", resp.GetFileName())
		}
		if !bytes.Equal(resp.GetContent(), content) {
			t.Fatal("returned bytes do not match the stored file")
		}
	}

	if len(activity.types) != 2 || activity.types[0] != constants.ActivityDownload {
		t.Fatalf("activity trail = %v, want two download entries", activity.types)
	}
}

func TestDownloadDocumentDenied(t *testing.T) {
	uploader := uuid.New()
	stranger := uuid.New()

	stored := filepath.Join(t.TempDir(), "stored.pdf")
	if err := os.WriteFile(stored, []byte("payload"), 0o600); err != nil {
		t.Fatal(err)
	}
	rec := &pipeline.Record{
		ID: uuid.New(),
		Draft: pipeline.Draft{
			OriginalFilename: "doc.pdf",
			StoredPath:       stored,
			UploaderID:       uploader,
		},
	}
	docs := &stubDocRepo{rec: rec, shared: map[uuid.UUID]bool{}}
	svc := NewDocumentsService(nil, nil, docs, &stubActivity{}, discardLogger())

	_, err := svc.DownloadDocument(context.Background(), &docuvaultpb.DownloadDocumentRequest{
		DocumentId:  rec.ID.String(),
		RequesterId: stranger.String(),
	})
	if status.Code(err) != codes.PermissionDenied {
		t.Fatalf("stranger download code = %v, want PermissionDenied", status.Code(err))
	}

	_, err = svc.DownloadDocument(context.Background(), &docuvaultpb.DownloadDocumentRequest{
		DocumentId:  uuid.New().String(),
		RequesterId: uploader.String(),
	})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("missing document code = %v, want NotFound", status.Code(err))
	}

	_, err = svc.DownloadDocument(context.Background(), &docuvaultpb.DownloadDocumentRequest{
		DocumentId:  "not-a-uuid",
		RequesterId: uploader.String(),
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("bad id code = %v, want InvalidArgument", status.Code(err))
	}
}
