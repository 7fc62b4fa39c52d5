package async

import (
	"context"
	"time"

	"github.com/joseph-ayodele/docuvault/internal/pipeline"
)

// Job is one queued ingestion. The file at Upload.Path must stay in place
// until a worker picks the job up.
type Job struct {
	Upload      pipeline.UploadRequest
	SubmittedAt time.Time
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
