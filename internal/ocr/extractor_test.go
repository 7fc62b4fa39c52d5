package ocr

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// fakeEngine stands in for poppler/tesseract.
type fakeEngine struct {
	rasterErr    error
	rasterWrites bool // actually write the png the way pdftoppm would
	text         string
	recognizeErr error

	rasterCalls    int
	recognizeCalls int
	recognizedPath string
	recognizedLang string
}

func (f *fakeEngine) RasterizePage(_ context.Context, _ string, outDir, outPrefix string, page int) error {
	f.rasterCalls++
	if f.rasterErr != nil {
		return f.rasterErr
	}
	if f.rasterWrites {
		name := outPrefix + "-1.png"
		return os.WriteFile(filepath.Join(outDir, name), []byte("png"), 0o644)
	}
	return nil
}

func (f *fakeEngine) RecognizeText(_ context.Context, path, lang string) (string, error) {
	f.recognizeCalls++
	f.recognizedPath = path
	f.recognizedLang = lang
	if f.recognizeErr != nil {
		return "", f.recognizeErr
	}
	return f.text, nil
}

func writeTemp(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("content"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestExtractImageGoesStraightToOCR(t *testing.T) {
	eng := &fakeEngine{text: "recognized text"}
	ex := NewExtractor(eng, nil)

	got := ex.Extract(context.Background(), writeTemp(t, "scan.jpg"))
	if got != "recognized text" {
		t.Fatalf("Extract = %q, want recognized text", got)
	}
	if eng.rasterCalls != 0 {
		t.Fatalf("image input must not be rasterized, got %d calls", eng.rasterCalls)
	}
	if eng.recognizedLang != "eng" {
		t.Fatalf("language = %q, want eng", eng.recognizedLang)
	}
}

func TestExtractPDFRasterizesFirstThenCleansUp(t *testing.T) {
	eng := &fakeEngine{rasterWrites: true, text: "page one text"}
	ex := NewExtractor(eng, nil)

	pdf := writeTemp(t, "notice.pdf")
	got := ex.Extract(context.Background(), pdf)
	if got != "page one text" {
		t.Fatalf("Extract = %q", got)
	}
	if eng.rasterCalls != 1 {
		t.Fatalf("raster calls = %d, want 1", eng.rasterCalls)
	}
	wantRaster := filepath.Join(filepath.Dir(pdf), "notice-1.png")
	if eng.recognizedPath != wantRaster {
		t.Fatalf("OCR ran on %q, want discovered raster %q", eng.recognizedPath, wantRaster)
	}
	if _, err := os.Stat(wantRaster); !os.IsNotExist(err) {
		t.Fatalf("temp raster %q should be removed after OCR", wantRaster)
	}
}

func TestExtractRasterizeFailureYieldsSentinel(t *testing.T) {
	eng := &fakeEngine{rasterErr: errors.New("pdftoppm exploded")}
	ex := NewExtractor(eng, nil)

	if got := ex.Extract(context.Background(), writeTemp(t, "broken.pdf")); got != FailedText {
		t.Fatalf("Extract = %q, want sentinel", got)
	}
	if eng.recognizeCalls != 0 {
		t.Fatal("OCR must not run when rasterization fails")
	}
}

func TestExtractMissingRasterOutputYieldsSentinel(t *testing.T) {
	// Rasterizer "succeeds" but writes nothing; discovery finds no file.
	eng := &fakeEngine{rasterWrites: false, text: "unreachable"}
	ex := NewExtractor(eng, nil)

	if got := ex.Extract(context.Background(), writeTemp(t, "empty.pdf")); got != FailedText {
		t.Fatalf("Extract = %q, want sentinel", got)
	}
}

func TestExtractOCRErrorYieldsSentinelAndRemovesRaster(t *testing.T) {
	eng := &fakeEngine{rasterWrites: true, recognizeErr: errors.New("tesseract crashed")}
	ex := NewExtractor(eng, nil)

	pdf := writeTemp(t, "crash.pdf")
	if got := ex.Extract(context.Background(), pdf); got != FailedText {
		t.Fatalf("Extract = %q, want sentinel", got)
	}
	raster := filepath.Join(filepath.Dir(pdf), "crash-1.png")
	if _, err := os.Stat(raster); !os.IsNotExist(err) {
		t.Fatalf("temp raster %q should be removed even when OCR fails", raster)
	}
}

func TestExtractEmptyOCRResultYieldsSentinel(t *testing.T) {
	for _, text := range []string{"", "   \n\t "} {
		eng := &fakeEngine{text: text}
		ex := NewExtractor(eng, nil)
		if got := ex.Extract(context.Background(), writeTemp(t, "blank.png")); got != FailedText {
			t.Fatalf("Extract(%q) = %q, want sentinel", text, got)
		}
	}
}

func TestExtractKeepsRealText(t *testing.T) {
	long := strings.Repeat("word ", 50)
	eng := &fakeEngine{text: long}
	ex := NewExtractor(eng, nil)
	if got := ex.Extract(context.Background(), writeTemp(t, "scan.png")); got != long {
		t.Fatal("real OCR output must pass through unchanged")
	}
}
