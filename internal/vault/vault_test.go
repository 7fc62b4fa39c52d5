package vault

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/joseph-ayodele/docuvault/constants"
)

func TestPlaceMovesIntoCategoryDir(t *testing.T) {
	root := t.TempDir()
	v := New(root, nil)
	v.now = func() time.Time { return time.UnixMilli(1700000000000) }

	src := filepath.Join(t.TempDir(), "upload.tmp")
	if err := os.WriteFile(src, []byte("bytes"), 0o644); err != nil {
		t.Fatal(err)
	}

	stored, err := v.Place(src, "invoice march.pdf", constants.Invoice)
	if err != nil {
		t.Fatalf("Place: %v", err)
	}

	want := filepath.Join(root, "invoice", "1700000000000-invoice-march.pdf")
	if stored != want {
		t.Fatalf("stored path = %q, want %q", stored, want)
	}
	if _, err := os.Stat(stored); err != nil {
		t.Fatalf("stored file missing: %v", err)
	}
	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Fatal("source file should be gone after placement")
	}
}

func TestPlaceMissingSource(t *testing.T) {
	v := New(t.TempDir(), nil)
	if _, err := v.Place(filepath.Join(t.TempDir(), "gone.pdf"), "gone.pdf", constants.Notice); err == nil {
		t.Fatal("expected error for missing source")
	}
}

func TestSanitizeFilename(t *testing.T) {
	cases := map[string]string{
		"invoice march.pdf":   "invoice-march.pdf",
		"a  b\tc.png":         "a-b-c.png",
		"../../etc/passwd":    "passwd",
		"":                    "document",
		"plain.pdf":           "plain.pdf",
		"tabs\tand\nnewlines": "tabs-and-newlines",
	}
	for in, want := range cases {
		if got := SanitizeFilename(in); got != want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPlaceKeepsDistinctNamesForRepeatedUploads(t *testing.T) {
	root := t.TempDir()
	v := New(root, nil)

	var stored []string
	for i := 0; i < 2; i++ {
		src := filepath.Join(t.TempDir(), "doc.pdf")
		if err := os.WriteFile(src, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
		ts := time.UnixMilli(int64(1700000000000 + i))
		v.now = func() time.Time { return ts }
		p, err := v.Place(src, "doc.pdf", constants.Report)
		if err != nil {
			t.Fatal(err)
		}
		stored = append(stored, p)
	}
	if stored[0] == stored[1] {
		t.Fatalf("repeated uploads must not overwrite each other: %q", stored[0])
	}
	if !strings.HasPrefix(filepath.Base(stored[0]), "17000000000") {
		t.Fatalf("stored name should start with the timestamp, got %q", stored[0])
	}
}
