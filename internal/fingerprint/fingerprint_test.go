package fingerprint

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFingerprintDeterministic(t *testing.T) {
	b := []byte("invoice for march, total due 1,204.00")
	if Fingerprint(b) != Fingerprint(b) {
		t.Fatal("same bytes must produce the same fingerprint")
	}
}

func TestFingerprintDistinguishesContent(t *testing.T) {
	inputs := [][]byte{
		[]byte(""),
		[]byte("a"),
		[]byte("b"),
		[]byte("invoice_march.pdf"),
		[]byte("invoice_march.pdf "),
	}
	seen := make(map[string]int)
	for i, in := range inputs {
		fp := Fingerprint(in)
		if len(fp) != 64 {
			t.Fatalf("fingerprint %q has length %d, want 64 hex chars", fp, len(fp))
		}
		if j, dup := seen[fp]; dup {
			t.Fatalf("inputs %d and %d collided on %s", i, j, fp)
		}
		seen[fp] = i
	}
}

func TestFingerprintFileMatchesBytes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.pdf")
	content := []byte("some scanned document bytes")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := FingerprintFile(path)
	if err != nil {
		t.Fatalf("FingerprintFile: %v", err)
	}
	if want := Fingerprint(content); got != want {
		t.Fatalf("FingerprintFile = %s, want %s", got, want)
	}
}

func TestFingerprintFileMissing(t *testing.T) {
	if _, err := FingerprintFile(filepath.Join(t.TempDir(), "nope.pdf")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
