package ingest

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/docuvault/constants"
	"github.com/joseph-ayodele/docuvault/internal/classifier"
	"github.com/joseph-ayodele/docuvault/internal/pipeline"
	"github.com/joseph-ayodele/docuvault/internal/vault"
)

type mapStore struct {
	records map[string]*pipeline.Record
}

func (s *mapStore) FindByFingerprint(_ context.Context, fp string) (*pipeline.Record, error) {
	return s.records[fp], nil
}

func (s *mapStore) Insert(_ context.Context, d pipeline.Draft) (*pipeline.Record, error) {
	rec := &pipeline.Record{ID: uuid.New(), Draft: d, CreatedAt: time.Now()}
	s.records[d.Fingerprint] = rec
	return rec, nil
}

func (s *mapStore) UpdateFraudStatus(_ context.Context, id uuid.UUID, status constants.FraudStatus, reason string, _ uuid.UUID) (*pipeline.Record, error) {
	for _, rec := range s.records {
		if rec.ID == id {
			rec.FraudStatus = status
			rec.FraudReason = reason
			return rec, nil
		}
	}
	return nil, nil
}

type fixedExtractor struct{ text string }

func (e fixedExtractor) Extract(context.Context, string) string { return e.text }

func newTestIngestor(t *testing.T) *Ingestor {
	t.Helper()
	store := &mapStore{records: map[string]*pipeline.Record{}}
	text := strings.Repeat("official records issued for the account holder on file ", 3)
	proc := pipeline.NewProcessor(
		store,
		fixedExtractor{text: text},
		classifier.NewClassifier(classifier.DefaultRuleset(), nil),
		vault.New(t.TempDir(), nil),
		nil,
	)
	return NewIngestor(proc, nil)
}

func TestIngestDirectory(t *testing.T) {
	root := t.TempDir()
	write := func(rel, content string) {
		t.Helper()
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("invoice_q1.pdf", "invoice bytes one")
	write("nested/notice_board.png", "notice bytes")
	write("nested/duplicate.pdf", "invoice bytes one") // same content as invoice_q1
	write("readme.txt", "not a document")
	write(".hidden/secret.pdf", "hidden bytes")

	u := newTestIngestor(t)
	results, stats, err := u.IngestDirectory(context.Background(), uuid.New(), root, nil, true)
	if err != nil {
		t.Fatalf("IngestDirectory: %v", err)
	}

	if stats.Matched != 3 {
		t.Fatalf("matched = %d, want 3 (txt and hidden excluded)", stats.Matched)
	}
	if stats.Succeeded != 3 || stats.Failed != 0 {
		t.Fatalf("succeeded/failed = %d/%d, want 3/0", stats.Succeeded, stats.Failed)
	}
	if stats.Deduplicated != 1 {
		t.Fatalf("deduplicated = %d, want 1", stats.Deduplicated)
	}

	byPath := map[string]FileResult{}
	for _, res := range results {
		byPath[filepath.Base(res.Path)] = res
	}
	if res := byPath["invoice_q1.pdf"]; res.Category != constants.Invoice {
		t.Fatalf("invoice_q1.pdf category = %s, want invoice", res.Category)
	}
	if res := byPath["duplicate.pdf"]; !res.Deduplicated || res.Err != "" {
		t.Fatalf("duplicate.pdf result = %+v, want deduplicated without error", res)
	}
	if _, seen := byPath["secret.pdf"]; seen {
		t.Fatal("hidden directory was not skipped")
	}
}

func TestIngestDirectoryCustomExtensions(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"a.pdf", "b.jpg"} {
		if err := os.WriteFile(filepath.Join(root, name), []byte(name), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	u := newTestIngestor(t)
	_, stats, err := u.IngestDirectory(context.Background(), uuid.New(), root, []string{".PDF"}, false)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Matched != 1 {
		t.Fatalf("matched = %d, want 1 (only pdf requested)", stats.Matched)
	}
}

func TestIngestDirectoryRequiresRoot(t *testing.T) {
	u := newTestIngestor(t)
	if _, _, err := u.IngestDirectory(context.Background(), uuid.New(), "   ", nil, false); err == nil {
		t.Fatal("expected error for blank root")
	}
}

func TestIsHidden(t *testing.T) {
	if !IsHidden("/tmp/.cache") || IsHidden("/tmp/docs") {
		t.Fatal("IsHidden misjudged a path")
	}
}
