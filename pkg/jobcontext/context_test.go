package jobcontext

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestJobBegin(t *testing.T) {
	ctx, cancel := JobBegin(context.Background(), "meeting", "standup.mp3", time.Minute)
	defer cancel()

	meta, ok := GetJobMetadata(ctx)
	require.True(t, ok)
	assert.NotEqual(t, uuid.Nil, meta.JobID)
	assert.Equal(t, "standup.mp3", meta.Filename)

	id, ok := GetJobID(ctx)
	require.True(t, ok)
	assert.Equal(t, meta.JobID, id)

	_, hasDeadline := ctx.Deadline()
	assert.True(t, hasDeadline)
	assert.GreaterOrEqual(t, Elapsed(ctx), time.Duration(0))
}

func TestJobBegin_NoTimeout(t *testing.T) {
	ctx, cancel := JobBegin(context.Background(), "meeting", "a.wav", 0)
	defer cancel()

	_, hasDeadline := ctx.Deadline()
	assert.False(t, hasDeadline)
}

func TestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	base := zap.New(core)

	Logger(context.Background(), base).Info("outside")
	ctx, cancel := JobBegin(context.Background(), "meeting", "a.wav", 0)
	defer cancel()
	Logger(ctx, base).Info("inside")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.NotContains(t, entries[0].ContextMap(), "job_id")
	id, _ := GetJobID(ctx)
	assert.Equal(t, id.String(), entries[1].ContextMap()["job_id"])
	assert.Nil(t, Fields(context.Background()))
}
