package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/docuvault/constants"
	"github.com/joseph-ayodele/docuvault/internal/pipeline"
	"github.com/joseph-ayodele/docuvault/internal/repository"
)

type stubDocs struct {
	repository.DocumentRepository
	records []*pipeline.Record
	gotErr  error
}

func (s *stubDocs) ListDocuments(_ context.Context, _ repository.ListFilter) ([]*pipeline.Record, error) {
	return s.records, s.gotErr
}

func TestExportDocumentsXLSX(t *testing.T) {
	uploaded := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	docs := &stubDocs{records: []*pipeline.Record{
		{
			ID: uuid.New(),
			Draft: pipeline.Draft{
				Fingerprint: "aa11",
				DisplayName: "March invoice",
				Category:    constants.Invoice,
				Confidence:  0.8,
				FraudStatus: constants.FraudStatusVerified,
				StoredPath:  "/vault/invoice/1-invoice.pdf",
				UploadedAt:  uploaded,
			},
		},
		{
			ID: uuid.New(),
			Draft: pipeline.Draft{
				Fingerprint: "bb22",
				DisplayName: "Odd scan",
				Category:    constants.Unclassified,
				FraudStatus: constants.FraudStatusSuspicious,
				FraudReason: "Low classification confidence",
				UploadedAt:  uploaded,
			},
		},
	}}

	out, err := NewService(docs, nil).ExportDocumentsXLSX(context.Background(), repository.ListFilter{})
	if err != nil {
		t.Fatalf("ExportDocumentsXLSX: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not a valid workbook: %v", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Documents")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header + 2", len(rows))
	}
	if rows[0][0] != "Uploaded" || rows[0][4] != "Fraud Status" {
		t.Fatalf("unexpected header row: %v", rows[0])
	}
	if rows[1][1] != "March invoice" || rows[1][2] != "invoice" || rows[1][4] != "verified" {
		t.Fatalf("unexpected first data row: %v", rows[1])
	}
	if rows[2][5] != "Low classification confidence" {
		t.Fatalf("fraud reason missing from export: %v", rows[2])
	}
	if rows[1][0] != "2025-03-14 09:30" {
		t.Fatalf("uploaded timestamp = %q", rows[1][0])
	}
}

func TestExportEmptyRegister(t *testing.T) {
	out, err := NewService(&stubDocs{}, nil).ExportDocumentsXLSX(context.Background(), repository.ListFilter{})
	if err != nil {
		t.Fatal(err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(out))
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = f.Close() }()
	rows, err := f.GetRows("Documents")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want header only", len(rows))
	}
}
