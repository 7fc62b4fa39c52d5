// classify runs the extraction, classification and fraud screening stages on
// a local file without touching any database. Useful for tuning rule tables.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/joseph-ayodele/docuvault/internal/classifier"
	"github.com/joseph-ayodele/docuvault/internal/common"
	"github.com/joseph-ayodele/docuvault/internal/fingerprint"
	"github.com/joseph-ayodele/docuvault/internal/fraud"
	"github.com/joseph-ayodele/docuvault/internal/ocr"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "classify <path>")
		os.Exit(2)
	}
	path := os.Args[1]

	cfg := common.LoadConfig()
	ruleset := classifier.DefaultRuleset()
	if cfg.Classifier.RulesetPath != "" {
		var err error
		ruleset, err = classifier.LoadRuleset(cfg.Classifier.RulesetPath)
		if err != nil {
			logger.Error("failed to load ruleset", "path", cfg.Classifier.RulesetPath, "error", err)
			os.Exit(1)
		}
	}

	fp, err := fingerprint.FingerprintFile(path)
	if err != nil {
		logger.Error("failed to hash file", "path", path, "error", err)
		os.Exit(1)
	}

	engine := ocr.NewPopplerTesseract(ocr.EngineConfig{
		Pdftoppm:    cfg.OCR.Pdftoppm,
		Tesseract:   cfg.OCR.Tesseract,
		DPI:         cfg.OCR.DPI,
		TessdataDir: cfg.OCR.TessdataDir,
	})
	extractor := ocr.NewExtractor(engine, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	start := time.Now()
	text := extractor.Extract(ctx, path)
	cls := classifier.NewClassifier(ruleset, logger).Classify(path, text)
	assessment := fraud.Assess(text, cls.Category, cls.Confidence)

	logger.Info("classification complete",
		"path", path,
		"fingerprint", fp,
		"text_length", len(text),
		"category", cls.Category,
		"confidence", cls.Confidence,
		"fraud_status", assessment.Status,
		"fraud_reason", assessment.Reason,
		"duration_ms", time.Since(start).Milliseconds(),
	)
}
