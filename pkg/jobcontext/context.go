package jobcontext

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type KeyContext string

var keyJob KeyContext = "job"

// JobMetadata describes one ingestion run
type JobMetadata struct {
	JobID     uuid.UUID
	JobType   string
	Filename  string
	StartTime time.Time
}

// JobBegin attaches fresh job metadata to ctx. A non-positive timeout leaves
// the deadline to the parent context.
func JobBegin(parentCtx context.Context, jobType, filename string, timeout time.Duration) (context.Context, context.CancelFunc) {
	ctx, cancel := parentCtx, context.CancelFunc(func() {})
	if timeout > 0 {
		ctx, cancel = context.WithTimeout(parentCtx, timeout)
	}

	meta := &JobMetadata{
		JobID:     uuid.New(),
		JobType:   jobType,
		Filename:  filename,
		StartTime: time.Now(),
	}
	return context.WithValue(ctx, keyJob, meta), cancel
}

// GetJobMetadata returns the metadata set by JobBegin, if any
func GetJobMetadata(ctx context.Context) (*JobMetadata, bool) {
	meta, ok := ctx.Value(keyJob).(*JobMetadata)
	return meta, ok
}

// GetJobID extracts the job ID from context
func GetJobID(ctx context.Context) (uuid.UUID, bool) {
	meta, ok := GetJobMetadata(ctx)
	if !ok {
		return uuid.Nil, false
	}
	return meta.JobID, true
}

// Elapsed reports time since JobBegin, or zero outside a job
func Elapsed(ctx context.Context) time.Duration {
	meta, ok := GetJobMetadata(ctx)
	if !ok {
		return 0
	}
	return time.Since(meta.StartTime)
}

// Fields returns log fields identifying the job in ctx
func Fields(ctx context.Context) []zap.Field {
	meta, ok := GetJobMetadata(ctx)
	if !ok {
		return nil
	}
	return []zap.Field{
		zap.String("job_id", meta.JobID.String()),
		zap.String("job_type", meta.JobType),
	}
}

// Logger decorates logger with the job fields from ctx
func Logger(ctx context.Context, logger *zap.Logger) *zap.Logger {
	if fields := Fields(ctx); len(fields) > 0 {
		return logger.With(fields...)
	}
	return logger
}
