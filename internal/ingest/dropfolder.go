package ingest

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/docuvault/internal/async"
	"github.com/joseph-ayodele/docuvault/internal/pipeline"
)

// DropFolder bridges the filesystem watcher and the worker queue: every
// document dropped under the watched roots becomes a queued upload for the
// configured uploader.
type DropFolder struct {
	queue      async.Queue
	uploaderID uuid.UUID
	logger     *slog.Logger
}

func NewDropFolder(queue async.Queue, uploaderID uuid.UUID, logger *slog.Logger) *DropFolder {
	if logger == nil {
		logger = slog.Default()
	}
	return &DropFolder{queue: queue, uploaderID: uploaderID, logger: logger}
}

// Run watches cfg.Roots and enqueues every dropped document until ctx is
// cancelled. Watcher errors are logged and watching continues.
func (d *DropFolder) Run(ctx context.Context, cfg WatchConfig) error {
	events, errs, err := StartWatcher(ctx, cfg, d.logger)
	if err != nil {
		return err
	}
	d.logger.Info("drop folder watcher started", "roots", cfg.Roots)

	for {
		select {
		case <-ctx.Done():
			d.logger.Info("drop folder watcher stopped")
			return ctx.Err()
		case path, ok := <-events:
			if !ok {
				return nil
			}
			base := filepath.Base(path)
			_ = d.queue.Enqueue(ctx, async.Job{
				Upload: pipeline.UploadRequest{
					Path:             path,
					OriginalFilename: base,
					DisplayName:      strings.TrimSuffix(base, filepath.Ext(base)),
					UploaderID:       d.uploaderID,
				},
				SubmittedAt: time.Now(),
			})
		case err, ok := <-errs:
			if ok && err != nil {
				d.logger.Warn("watch error, continuing", "error", err)
			}
		}
	}
}
