package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/docuvault/internal/pipeline"
	"github.com/joseph-ayodele/docuvault/internal/repository"
)

// Service produces XLSX bytes for the document register export.
type Service struct {
	docs   repository.DocumentRepository
	logger *slog.Logger
}

func NewService(docs repository.DocumentRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{docs: docs, logger: logger}
}

// ExportDocumentsXLSX returns an XLSX workbook (as bytes) for the documents
// matching filter. An empty filter exports the whole register.
func (s *Service) ExportDocumentsXLSX(ctx context.Context, filter repository.ListFilter) ([]byte, error) {
	start := time.Now()

	recs, err := s.docs.ListDocuments(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Documents"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Uploaded",
		"Display Name",
		"Category",
		"Confidence",
		"Fraud Status",
		"Fraud Reason",
		"Fingerprint",
		"Stored Path",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range recs {
		writeRow(f, sheet, row, r)
		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 20) // uploaded
	_ = f.SetColWidth(sheet, "B", "B", 32) // name
	_ = f.SetColWidth(sheet, "C", "C", 20) // category
	_ = f.SetColWidth(sheet, "E", "E", 14) // status
	_ = f.SetColWidth(sheet, "F", "F", 36) // reason
	_ = f.SetColWidth(sheet, "G", "G", 66) // fingerprint
	_ = f.SetColWidth(sheet, "H", "H", 60) // path

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("exported document register",
		"rows", len(recs),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, sheet string, row int, r *pipeline.Record) {
	write := func(col int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}

	if !r.UploadedAt.IsZero() {
		write(1, r.UploadedAt.UTC().Format("2006-01-02 15:04"))
	} else {
		write(1, "")
	}
	write(2, r.DisplayName)
	write(3, string(r.Category))
	write(4, fmt.Sprintf("%.2f", r.Confidence))
	write(5, string(r.FraudStatus))
	write(6, r.FraudReason)
	write(7, r.Fingerprint)
	write(8, r.StoredPath)
}
