package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/docuvault/constants"
	"github.com/joseph-ayodele/docuvault/internal/classifier"
	"github.com/joseph-ayodele/docuvault/internal/common"
	"github.com/joseph-ayodele/docuvault/internal/vault"
)

// memStore is an in-memory DocumentStore.
type memStore struct {
	byFingerprint map[string]*Record
	inserts       []Draft
}

func newMemStore() *memStore {
	return &memStore{byFingerprint: make(map[string]*Record)}
}

func (s *memStore) FindByFingerprint(_ context.Context, fp string) (*Record, error) {
	return s.byFingerprint[fp], nil
}

func (s *memStore) Insert(_ context.Context, d Draft) (*Record, error) {
	if _, dup := s.byFingerprint[d.Fingerprint]; dup {
		return nil, errors.New("unique constraint violation")
	}
	rec := &Record{ID: uuid.New(), Draft: d, CreatedAt: time.Now()}
	s.byFingerprint[d.Fingerprint] = rec
	s.inserts = append(s.inserts, d)
	return rec, nil
}

func (s *memStore) UpdateFraudStatus(_ context.Context, id uuid.UUID, status constants.FraudStatus, reason string, _ uuid.UUID) (*Record, error) {
	for _, rec := range s.byFingerprint {
		if rec.ID == id {
			rec.FraudStatus = status
			rec.FraudReason = reason
			return rec, nil
		}
	}
	return nil, nil
}

// stubExtractor returns fixed text and counts invocations.
type stubExtractor struct {
	text  string
	calls int
}

func (e *stubExtractor) Extract(_ context.Context, _ string) string {
	e.calls++
	return e.text
}

func newProcessor(t *testing.T, store DocumentStore, ex TextExtractor) *Processor {
	t.Helper()
	cls := classifier.NewClassifier(classifier.DefaultRuleset(), nil)
	v := vault.New(t.TempDir(), nil)
	return NewProcessor(store, ex, cls, v, nil)
}

func writeUpload(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// cleanInvoiceText is over the fraud length floor and free of fake markers.
var cleanInvoiceText = strings.Repeat("monthly services rendered as agreed per order ", 4)

func TestProcessUploadEndToEnd(t *testing.T) {
	store := newMemStore()
	ex := &stubExtractor{text: cleanInvoiceText}
	p := newProcessor(t, store, ex)

	content := []byte("%PDF-1.4 fake invoice bytes")
	rec, err := p.ProcessUpload(context.Background(), UploadRequest{
		Path:             writeUpload(t, "invoice_march.pdf", content),
		OriginalFilename: "invoice_march.pdf",
		DisplayName:      "March invoice",
		Description:      "vendor invoice for march",
		UploaderID:       uuid.New(),
	})
	if err != nil {
		t.Fatalf("ProcessUpload: %v", err)
	}

	if rec.Category != constants.Invoice || rec.Confidence != 0.8 {
		t.Fatalf("classification = {%s %v}, want {invoice 0.8}", rec.Category, rec.Confidence)
	}
	if rec.FraudStatus != constants.FraudStatusVerified || rec.FraudReason != "" {
		t.Fatalf("fraud = {%s %q}, want {verified \"\"}", rec.FraudStatus, rec.FraudReason)
	}
	if len(rec.Fingerprint) != 64 {
		t.Fatalf("fingerprint %q is not a sha-256 hex digest", rec.Fingerprint)
	}
	if ex.calls != 1 {
		t.Fatalf("extractor ran %d times, want 1", ex.calls)
	}
	if len(store.inserts) != 1 {
		t.Fatalf("store got %d inserts, want exactly 1", len(store.inserts))
	}
	if !strings.Contains(rec.StoredPath, string(os.PathSeparator)+"invoice"+string(os.PathSeparator)) {
		t.Fatalf("stored path %q not under the category dir", rec.StoredPath)
	}
	if _, err := os.Stat(rec.StoredPath); err != nil {
		t.Fatalf("stored file missing: %v", err)
	}
}

func TestProcessUploadDeduplicatesWithoutExtraction(t *testing.T) {
	store := newMemStore()
	ex := &stubExtractor{text: cleanInvoiceText}
	p := newProcessor(t, store, ex)

	content := []byte("identical bytes")
	first := UploadRequest{
		Path:             writeUpload(t, "a.pdf", content),
		OriginalFilename: "a.pdf",
		DisplayName:      "first",
		UploaderID:       uuid.New(),
	}
	if _, err := p.ProcessUpload(context.Background(), first); err != nil {
		t.Fatalf("first upload: %v", err)
	}

	second := UploadRequest{
		Path:             writeUpload(t, "b.pdf", content), // same bytes, different name
		OriginalFilename: "b.pdf",
		DisplayName:      "second",
		UploaderID:       uuid.New(),
	}
	_, err := p.ProcessUpload(context.Background(), second)
	if !errors.Is(err, common.ErrDuplicateDocument) {
		t.Fatalf("second upload err = %v, want ErrDuplicateDocument", err)
	}
	if ex.calls != 1 {
		t.Fatalf("extractor ran %d times; duplicates must not be re-extracted", ex.calls)
	}
	if len(store.inserts) != 1 {
		t.Fatalf("store got %d inserts, want 1", len(store.inserts))
	}
}

func TestProcessUploadInputErrors(t *testing.T) {
	p := newProcessor(t, newMemStore(), &stubExtractor{})
	uploader := uuid.New()

	cases := []struct {
		name string
		req  UploadRequest
	}{
		{"missing display name", UploadRequest{Path: writeUpload(t, "x.pdf", []byte("x")), OriginalFilename: "x.pdf", UploaderID: uploader}},
		{"missing uploader", UploadRequest{Path: writeUpload(t, "x.pdf", []byte("x")), OriginalFilename: "x.pdf", DisplayName: "x"}},
		{"unsupported extension", UploadRequest{Path: writeUpload(t, "x.exe", []byte("x")), OriginalFilename: "x.exe", DisplayName: "x", UploaderID: uploader}},
		{"missing file", UploadRequest{Path: filepath.Join(t.TempDir(), "gone.pdf"), OriginalFilename: "gone.pdf", DisplayName: "x", UploaderID: uploader}},
	}
	for _, tc := range cases {
		_, err := p.ProcessUpload(context.Background(), tc.req)
		if !errors.Is(err, common.ErrInvalidInput) {
			t.Errorf("%s: err = %v, want ErrInvalidInput", tc.name, err)
		}
	}
}

func TestProcessUploadUnreadableContentStillIngests(t *testing.T) {
	// Extraction failure degrades to the sentinel; the document still lands,
	// unclassified and rejected by the short-text check.
	store := newMemStore()
	ex := &stubExtractor{text: "OCR Extraction Failed"}
	p := newProcessor(t, store, ex)

	rec, err := p.ProcessUpload(context.Background(), UploadRequest{
		Path:             writeUpload(t, "scan0001.png", []byte("garbage")),
		OriginalFilename: "scan0001.png",
		DisplayName:      "unreadable scan",
		UploaderID:       uuid.New(),
	})
	if err != nil {
		t.Fatalf("ProcessUpload: %v", err)
	}
	if rec.Category != constants.Unclassified || rec.Confidence != 0 {
		t.Fatalf("classification = {%s %v}, want {unclassified 0}", rec.Category, rec.Confidence)
	}
	if rec.FraudStatus != constants.FraudStatusRejected {
		t.Fatalf("fraud status = %s, want rejected (sentinel is short text)", rec.FraudStatus)
	}
}

// failingStore rejects every insert.
type failingStore struct{ *memStore }

func (s *failingStore) Insert(context.Context, Draft) (*Record, error) {
	return nil, errors.New("insert rejected")
}

func TestProcessUploadRemovesFileOnInsertFailure(t *testing.T) {
	store := &failingStore{newMemStore()}
	ex := &stubExtractor{text: cleanInvoiceText}
	vaultRoot := t.TempDir()
	cls := classifier.NewClassifier(classifier.DefaultRuleset(), nil)
	p := NewProcessor(store, ex, cls, vault.New(vaultRoot, nil), nil)

	_, err := p.ProcessUpload(context.Background(), UploadRequest{
		Path:             writeUpload(t, "invoice_april.pdf", []byte("%PDF-1.4 april")),
		OriginalFilename: "invoice_april.pdf",
		DisplayName:      "April invoice",
		UploaderID:       uuid.New(),
	})
	if err == nil {
		t.Fatal("expected the insert failure to surface")
	}

	entries, err := os.ReadDir(filepath.Join(vaultRoot, "invoice"))
	if err != nil && !os.IsNotExist(err) {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Fatalf("vault kept %d files for a document that was never recorded", len(entries))
	}
}

func TestVerifyBytes(t *testing.T) {
	store := newMemStore()
	p := newProcessor(t, store, &stubExtractor{text: cleanInvoiceText})

	content := []byte("authentic content")
	if _, err := p.ProcessUpload(context.Background(), UploadRequest{
		Path:             writeUpload(t, "doc.pdf", content),
		OriginalFilename: "doc.pdf",
		DisplayName:      "doc",
		UploaderID:       uuid.New(),
	}); err != nil {
		t.Fatal(err)
	}

	rec, err := p.VerifyBytes(context.Background(), content)
	if err != nil {
		t.Fatalf("VerifyBytes: %v", err)
	}
	if rec.DisplayName != "doc" {
		t.Fatalf("verify returned the wrong document: %q", rec.DisplayName)
	}

	if _, err := p.VerifyBytes(context.Background(), []byte("never seen")); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("unknown content err = %v, want ErrNotFound", err)
	}
}
