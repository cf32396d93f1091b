package ai

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-analyzer/internal/testutil"
	usecaseerrors "github.com/johnquangdev/meeting-analyzer/internal/usecase/errors"
	pkgai "github.com/johnquangdev/meeting-analyzer/pkg/ai"
	"github.com/johnquangdev/meeting-analyzer/pkg/config"
)

const validResponse = `{"minutes":"Short meeting.","tasks":[{"task_description":"Write notes","assignee":"Arjun","due_date":"tomorrow"}]}`

func newTestGateway(p pkgai.Provider, maxAttempts uint64) *Gateway {
	return NewGateway(testutil.NewHolder(p), config.GatewayConfig{
		PollInterval:    time.Millisecond,
		PollMaxAttempts: maxAttempts,
	}, zap.NewNop())
}

func TestGateway_HappyPath(t *testing.T) {
	ctx := context.Background()
	fake := testutil.NewFakeProvider(validResponse)
	fake.States = []pkgai.FileState{pkgai.FileStateProcessing, pkgai.FileStateProcessing, pkgai.FileStateActive}
	g := newTestGateway(fake, 10)

	file, err := g.Submit(ctx, "/tmp/upload-1.mp3", "standup.mp3")
	require.NoError(t, err)

	ready, err := g.AwaitReady(ctx, file)
	require.NoError(t, err)
	assert.Equal(t, pkgai.FileStateActive, ready.State)
	assert.Equal(t, "fake://standup.mp3", ready.URI)
	assert.Equal(t, 3, fake.StatusCalls)

	result, err := g.Analyze(ctx, ready)
	require.NoError(t, err)
	assert.Equal(t, "Short meeting.", result.Minutes)
	require.Len(t, fake.Prompts, 1)
	assert.Equal(t, AnalysisPrompt, fake.Prompts[0])

	g.Release(ctx, file)
	assert.Equal(t, 1, fake.DeleteCount(file.Name))
}

func TestGateway_NotConfigured(t *testing.T) {
	ctx := context.Background()
	holder := pkgai.NewProviderHolder()
	require.NoError(t, holder.Init(nil))
	g := NewGateway(holder, config.GatewayConfig{}, nil)

	_, err := g.Submit(ctx, "x", "x.mp3")
	assert.ErrorIs(t, err, usecaseerrors.ErrNotConfigured)

	_, err = g.AwaitReady(ctx, &pkgai.File{Name: "f"})
	assert.ErrorIs(t, err, usecaseerrors.ErrNotConfigured)

	_, err = g.Analyze(ctx, &pkgai.File{Name: "f"})
	assert.ErrorIs(t, err, usecaseerrors.ErrNotConfigured)

	g.Release(ctx, &pkgai.File{Name: "f"})
}

func TestGateway_UploadError(t *testing.T) {
	fake := testutil.NewFakeProvider(validResponse)
	fake.UploadErr = testutil.ErrFake
	g := newTestGateway(fake, 10)

	_, err := g.Submit(context.Background(), "x", "x.mp3")
	assert.ErrorIs(t, err, usecaseerrors.ErrUpload)
	assert.ErrorIs(t, err, testutil.ErrFake)
}

func TestGateway_AwaitReady_Failed(t *testing.T) {
	fake := testutil.NewFakeProvider(validResponse)
	fake.States = []pkgai.FileState{pkgai.FileStateProcessing, pkgai.FileStateFailed}
	g := newTestGateway(fake, 10)

	_, err := g.AwaitReady(context.Background(), &pkgai.File{Name: "files/1"})
	require.ErrorIs(t, err, usecaseerrors.ErrRemoteProcessing)
	assert.Contains(t, err.Error(), "transcoding failed")
	assert.Equal(t, 2, fake.StatusCalls)
}

func TestGateway_AwaitReady_Exhausted(t *testing.T) {
	fake := testutil.NewFakeProvider(validResponse)
	fake.States = []pkgai.FileState{pkgai.FileStateProcessing}
	g := newTestGateway(fake, 4)

	_, err := g.AwaitReady(context.Background(), &pkgai.File{Name: "files/1"})
	assert.ErrorIs(t, err, usecaseerrors.ErrRemoteProcessing)
	assert.Equal(t, 4, fake.StatusCalls)
}

func TestGateway_AwaitReady_ContextCancelled(t *testing.T) {
	fake := testutil.NewFakeProvider(validResponse)
	fake.States = []pkgai.FileState{pkgai.FileStateProcessing}
	g := newTestGateway(fake, 0)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := g.AwaitReady(ctx, &pkgai.File{Name: "files/1"})
	assert.ErrorIs(t, err, usecaseerrors.ErrRemoteProcessing)
}

func TestGateway_AwaitReady_AlreadyActive(t *testing.T) {
	fake := testutil.NewFakeProvider(validResponse)
	g := newTestGateway(fake, 1)

	file := &pkgai.File{Name: "files/1", State: pkgai.FileStateActive}
	ready, err := g.AwaitReady(context.Background(), file)
	require.NoError(t, err)
	assert.Same(t, file, ready)
	assert.Zero(t, fake.StatusCalls)
}

func TestGateway_Analyze_Malformed(t *testing.T) {
	fake := testutil.NewFakeProvider(`{"summary":"wrong keys"}`)
	g := newTestGateway(fake, 1)

	_, err := g.Analyze(context.Background(), &pkgai.File{Name: "files/1"})
	assert.ErrorIs(t, err, usecaseerrors.ErrMalformedResponse)
}

func TestGateway_Analyze_TransportError(t *testing.T) {
	fake := testutil.NewFakeProvider(validResponse)
	fake.GenerateErr = testutil.ErrFake
	g := newTestGateway(fake, 1)

	_, err := g.Analyze(context.Background(), &pkgai.File{Name: "files/1"})
	assert.ErrorIs(t, err, usecaseerrors.ErrRemoteProcessing)
}

func TestGateway_Release_SwallowsErrors(t *testing.T) {
	fake := testutil.NewFakeProvider(validResponse)
	fake.DeleteErr = testutil.ErrFake
	g := newTestGateway(fake, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g.Release(ctx, &pkgai.File{Name: "files/9"})
	g.Release(ctx, nil)
	assert.Equal(t, 1, fake.DeleteCount("files/9"))
}
