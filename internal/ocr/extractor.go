package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joseph-ayodele/docuvault/constants"
)

// FailedText is the sentinel standing in for "extraction produced nothing
// usable". The extractor never surfaces an error; downstream stages treat
// this value like ordinary text.
const FailedText = "OCR Extraction Failed"

const language = "eng"

// Extractor turns a document file into best-effort plain text. PDFs are
// rasterized (page 1 only) before OCR; raster images go straight to OCR.
type Extractor struct {
	engine Engine
	logger *slog.Logger
}

func NewExtractor(engine Engine, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{engine: engine, logger: logger}
}

// Extract returns the recognized text for the file at path, or FailedText.
// A document with unreadable content is still ingestible, so rasterization
// and OCR failures are absorbed here rather than raised to the caller.
func (e *Extractor) Extract(ctx context.Context, path string) string {
	target := path
	var raster string

	if constants.MapExtToFormat(filepath.Ext(path)) == constants.PDF {
		out, err := e.rasterizeFirstPage(ctx, path)
		if err != nil {
			e.logger.Error("pdf rasterization failed", "path", path, "error", err)
			return FailedText
		}
		raster = out
		target = out
	}
	if raster != "" {
		// Temp raster is scoped to this call: remove it whatever OCR does.
		defer func() {
			if rmErr := os.Remove(raster); rmErr != nil {
				e.logger.Warn("failed to remove temp raster", "path", raster, "error", rmErr)
			}
		}()
	}

	txt, err := e.engine.RecognizeText(ctx, target, language)
	if err != nil {
		e.logger.Error("ocr failed", "path", target, "error", err)
		return FailedText
	}
	if strings.TrimSpace(txt) == "" {
		return FailedText
	}
	return txt
}

// rasterizeFirstPage converts page 1 of the PDF into a PNG next to the source
// file and locates it by prefix+suffix match, since the rasterizer does not
// report the generated name.
func (e *Extractor) rasterizeFirstPage(ctx context.Context, pdfPath string) (string, error) {
	outDir := filepath.Dir(pdfPath)
	base := strings.TrimSuffix(filepath.Base(pdfPath), filepath.Ext(pdfPath))

	if err := e.engine.RasterizePage(ctx, pdfPath, outDir, base, 1); err != nil {
		return "", err
	}

	entries, err := os.ReadDir(outDir)
	if err != nil {
		return "", err
	}
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, base) && strings.HasSuffix(name, ".png") {
			return filepath.Join(outDir, name), nil
		}
	}
	return "", fmt.Errorf("pdf was converted, but no image was found in %s", outDir)
}
