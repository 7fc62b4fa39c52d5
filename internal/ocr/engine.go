package ocr

import (
	"context"
	"fmt"
	"path/filepath"
)

// Engine abstracts the two external capabilities the extractor needs:
// rasterizing one page of a paginated document, and recognizing text in a
// raster image. Production shells out to poppler and tesseract; tests inject
// deterministic fakes.
type Engine interface {
	// RasterizePage renders the given page of src as a PNG into outDir.
	// The generated file's name starts with outPrefix; the exact name is not
	// reported and must be discovered by listing outDir.
	RasterizePage(ctx context.Context, src, outDir, outPrefix string, page int) error

	// RecognizeText OCRs the file at path and returns the decoded text.
	RecognizeText(ctx context.Context, path, lang string) (string, error)
}

// EngineConfig configures the poppler/tesseract engine.
type EngineConfig struct {
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	DPI         int // rasterization DPI, default 300
	TessdataDir string
}

// PopplerTesseract implements Engine with the poppler-utils and tesseract
// command line tools.
type PopplerTesseract struct {
	cfg    EngineConfig
	runner Runner
}

func NewPopplerTesseract(cfg EngineConfig) *PopplerTesseract {
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	return &PopplerTesseract{cfg: cfg, runner: execRunner{}}
}

func (p *PopplerTesseract) RasterizePage(ctx context.Context, src, outDir, outPrefix string, page int) error {
	// pdftoppm -f <page> -l <page> -r <dpi> -png <src> <outDir>/<outPrefix>
	prefix := filepath.Join(outDir, outPrefix)
	_, errb, err := p.runner.Run(ctx, p.cfg.Pdftoppm,
		"-f", fmt.Sprintf("%d", page),
		"-l", fmt.Sprintf("%d", page),
		"-r", fmt.Sprintf("%d", p.cfg.DPI),
		"-png", src, prefix)
	if err != nil {
		return fmt.Errorf("pdftoppm: %w (%s)", err, truncate(string(errb), 512))
	}
	return nil
}

func (p *PopplerTesseract) RecognizeText(ctx context.Context, path, lang string) (string, error) {
	args := []string{path, "stdout", "-l", lang}
	if p.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", p.cfg.TessdataDir)
	}

	// tesseract <file> stdout -l <lang>
	out, errb, err := p.runner.Run(ctx, p.cfg.Tesseract, args...)
	if err != nil {
		return "", fmt.Errorf("tesseract: %w (%s)", err, truncate(string(errb), 512))
	}
	return string(out), nil
}
