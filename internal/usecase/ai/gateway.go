package ai

import (
	"context"
	"errors"
	"fmt"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-analyzer/internal/domain/entities"
	usecaseerrors "github.com/johnquangdev/meeting-analyzer/internal/usecase/errors"
	pkgai "github.com/johnquangdev/meeting-analyzer/pkg/ai"
	"github.com/johnquangdev/meeting-analyzer/pkg/jobcontext"
	"github.com/johnquangdev/meeting-analyzer/pkg/config"
)

const releaseTimeout = 30 * time.Second

var errStillProcessing = errors.New("file is still processing")

// Gateway wraps the remote AI provider: upload, wait, analyze, release
type Gateway struct {
	holder      *pkgai.ProviderHolder
	interval    time.Duration
	maxAttempts uint64
	logger      *zap.Logger
}

// NewGateway creates a gateway over the process-wide provider holder
func NewGateway(holder *pkgai.ProviderHolder, cfg config.GatewayConfig, logger *zap.Logger) *Gateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	interval := cfg.PollInterval
	if interval <= 0 {
		interval = 2 * time.Second
	}
	return &Gateway{
		holder:      holder,
		interval:    interval,
		maxAttempts: cfg.PollMaxAttempts,
		logger:      logger,
	}
}

func (g *Gateway) provider() (pkgai.Provider, error) {
	p, err := g.holder.Get()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", usecaseerrors.ErrNotConfigured, err)
	}
	return p, nil
}

// Submit uploads the audio at path and returns the remote handle
func (g *Gateway) Submit(ctx context.Context, path, filename string) (*pkgai.File, error) {
	p, err := g.provider()
	if err != nil {
		return nil, err
	}

	file, err := p.Upload(ctx, path, filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", usecaseerrors.ErrUpload, err)
	}

	jobcontext.Logger(ctx, g.logger).Info("Audio uploaded",
		zap.String("provider", p.Name()),
		zap.String("file", file.Name),
		zap.String("filename", filename),
	)
	return file, nil
}

// AwaitReady polls the file at a fixed interval until it is active. A failed
// terminal state, an exhausted attempt budget, or a cancelled context all end
// in ErrRemoteProcessing.
func (g *Gateway) AwaitReady(ctx context.Context, file *pkgai.File) (*pkgai.File, error) {
	p, err := g.provider()
	if err != nil {
		return nil, err
	}
	if file.State == pkgai.FileStateActive {
		return file, nil
	}

	var ready *pkgai.File
	attempts := 0
	operation := func() error {
		attempts++
		current, err := p.Status(ctx, file.Name)
		if err != nil {
			jobcontext.Logger(ctx, g.logger).Warn("Failed to poll file status",
				zap.String("file", file.Name),
				zap.Int("attempt", attempts),
				zap.Error(err),
			)
			return err
		}

		switch current.State {
		case pkgai.FileStateActive:
			ready = current
			return nil
		case pkgai.FileStateFailed:
			msg := current.Error
			if msg == "" {
				msg = "remote processing reported failure"
			}
			return backoff.Permanent(errors.New(msg))
		default:
			return errStillProcessing
		}
	}

	var b backoff.BackOff = backoff.NewConstantBackOff(g.interval)
	if g.maxAttempts > 0 {
		b = backoff.WithMaxRetries(b, g.maxAttempts-1)
	}

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return nil, fmt.Errorf("%w: file %s: %w", usecaseerrors.ErrRemoteProcessing, file.Name, err)
	}

	jobcontext.Logger(ctx, g.logger).Info("File ready",
		zap.String("file", ready.Name),
		zap.Int("attempts", attempts),
	)

	// Keep fields only known from the upload response
	if ready.URI == "" {
		ready.URI = file.URI
	}
	if ready.MIMEType == "" {
		ready.MIMEType = file.MIMEType
	}
	return ready, nil
}

// Analyze asks the model for minutes and tasks and parses the reply
func (g *Gateway) Analyze(ctx context.Context, file *pkgai.File) (*entities.AnalysisResult, error) {
	p, err := g.provider()
	if err != nil {
		return nil, err
	}

	content, err := p.Generate(ctx, file, AnalysisPrompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", usecaseerrors.ErrRemoteProcessing, err)
	}

	result, err := ParseAnalysis(content)
	if err != nil {
		jobcontext.Logger(ctx, g.logger).Warn("Unparseable analysis response",
			zap.String("file", file.Name),
			zap.Int("length", len(content)),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", usecaseerrors.ErrMalformedResponse, err)
	}

	jobcontext.Logger(ctx, g.logger).Info("Analysis parsed",
		zap.String("file", file.Name),
		zap.Int("tasks", len(result.Tasks)),
	)
	return result, nil
}

// Release deletes the remote file. Failures are logged, never returned.
// It runs even when ctx is already cancelled.
func (g *Gateway) Release(ctx context.Context, file *pkgai.File) {
	if file == nil || file.Name == "" {
		return
	}
	p, err := g.provider()
	if err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), releaseTimeout)
	defer cancel()

	if err := p.Delete(ctx, file.Name); err != nil {
		jobcontext.Logger(ctx, g.logger).Warn("Failed to release remote file",
			zap.String("file", file.Name),
			zap.Error(err),
		)
		return
	}
	jobcontext.Logger(ctx, g.logger).Debug("Remote file released", zap.String("file", file.Name))
}
