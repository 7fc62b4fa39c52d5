// Package ingest discovers documents on disk and feeds them through the
// upload pipeline: one-shot directory walks for backfills and an fsnotify
// watcher for drop folders.
package ingest

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/docuvault/constants"
	"github.com/joseph-ayodele/docuvault/internal/common"
	"github.com/joseph-ayodele/docuvault/internal/pipeline"
)

type FileResult struct {
	Path         string
	DocumentID   string
	Category     constants.Category
	FraudStatus  constants.FraudStatus
	Deduplicated bool
	Err          string
}

type DirStats struct {
	Scanned      uint32
	Matched      uint32
	Succeeded    uint32
	Deduplicated uint32
	Failed       uint32
}

type Ingestor struct {
	proc   *pipeline.Processor
	logger *slog.Logger
}

func NewIngestor(proc *pipeline.Processor, logger *slog.Logger) *Ingestor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Ingestor{proc: proc, logger: logger}
}

// IngestDirectory walks root, filters by includeExts (or the defaults), skips
// hidden entries if requested, and runs each file through the pipeline.
// Returns per-file results plus aggregate stats.
func (u *Ingestor) IngestDirectory(ctx context.Context, uploaderID uuid.UUID, root string, includeExts []string, skipHidden bool) ([]FileResult, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root_path is required")
	}

	exts := map[string]struct{}{}
	if len(includeExts) == 0 {
		exts = constants.AllowedExtensions
	} else {
		for _, e := range includeExts {
			e = constants.NormalizeExt(strings.TrimSpace(e))
			if e != "" {
				exts[e] = struct{}{}
			}
		}
	}

	var results []FileResult
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		stats.Scanned++
		if walkErr != nil {
			results = append(results, FileResult{Path: path, Err: walkErr.Error()})
			stats.Failed++
			return nil // continue walking
		}
		if skipHidden && IsHidden(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		ext := constants.NormalizeExt(filepath.Ext(path))
		if _, ok := exts[ext]; !ok {
			return nil
		}
		stats.Matched++

		res := u.IngestPath(ctx, uploaderID, path)
		results = append(results, res)
		switch {
		case res.Err != "":
			stats.Failed++
		case res.Deduplicated:
			stats.Succeeded++
			stats.Deduplicated++
		default:
			stats.Succeeded++
		}
		return nil
	})

	if err != nil {
		return results, stats, err
	}
	u.logger.Info("directory ingest finished",
		"root", root,
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"succeeded", stats.Succeeded,
		"deduplicated", stats.Deduplicated,
		"failed", stats.Failed,
	)
	return results, stats, nil
}

// IngestPath runs one file through the pipeline. Duplicates count as a
// successful (already ingested) outcome, not an error.
func (u *Ingestor) IngestPath(ctx context.Context, uploaderID uuid.UUID, path string) FileResult {
	base := filepath.Base(path)
	rec, err := u.proc.ProcessUpload(ctx, pipeline.UploadRequest{
		Path:             path,
		OriginalFilename: base,
		DisplayName:      strings.TrimSuffix(base, filepath.Ext(base)),
		UploaderID:       uploaderID,
	})
	if errors.Is(err, common.ErrDuplicateDocument) {
		return FileResult{Path: path, Deduplicated: true}
	}
	if err != nil {
		return FileResult{Path: path, Err: err.Error()}
	}
	return FileResult{
		Path:        path,
		DocumentID:  rec.ID.String(),
		Category:    rec.Category,
		FraudStatus: rec.FraudStatus,
	}
}

// IsHidden checks if a file or directory is hidden (starts with '.').
func IsHidden(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".")
}
