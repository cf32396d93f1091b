package meeting

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-analyzer/internal/domain/entities"
	"github.com/johnquangdev/meeting-analyzer/internal/domain/repositories"
	usecaseerrors "github.com/johnquangdev/meeting-analyzer/internal/usecase/errors"
	pkgai "github.com/johnquangdev/meeting-analyzer/pkg/ai"
	"github.com/johnquangdev/meeting-analyzer/pkg/jobcontext"
)

// UnassignedPolicy decides what happens to a task whose assignee matches no user
type UnassignedPolicy string

const (
	// UnassignedKeep stores the task with a NULL assignee
	UnassignedKeep UnassignedPolicy = "null"
	// UnassignedSkip drops the task
	UnassignedSkip UnassignedPolicy = "skip"
)

// JobTypeIngest tags ingestion runs in logs
const JobTypeIngest = "meeting_ingest"

// Stage names used in logs
const (
	StageReceived  = "received"
	StageSubmitted = "submitted"
	StageReady     = "ready"
	StageAnalyzed  = "analyzed"
	StagePersisted = "persisted"
)

// TranscriptionGateway is the remote AI round trip used by the workflow
type TranscriptionGateway interface {
	Submit(ctx context.Context, path, filename string) (*pkgai.File, error)
	AwaitReady(ctx context.Context, file *pkgai.File) (*pkgai.File, error)
	Analyze(ctx context.Context, file *pkgai.File) (*entities.AnalysisResult, error)
	Release(ctx context.Context, file *pkgai.File)
}

// AudioArchiver keeps a copy of ingested audio
type AudioArchiver interface {
	Archive(ctx context.Context, meetingID uint, filename, path string) (string, error)
}

// Options configures the ingestion workflow
type Options struct {
	TempDir          string
	UnassignedPolicy UnassignedPolicy
	Archiver         AudioArchiver
	// Timeout bounds a whole ingestion run; 0 leaves it to the caller's context.
	Timeout time.Duration
}

// Service runs meeting ingestion and meeting lookups
type Service struct {
	gateway     TranscriptionGateway
	meetingRepo repositories.MeetingRepository
	userRepo    repositories.UserRepository
	opts        Options
	logger      *zap.Logger
}

// NewService creates a new meeting service
func NewService(
	gateway TranscriptionGateway,
	meetingRepo repositories.MeetingRepository,
	userRepo repositories.UserRepository,
	opts Options,
	logger *zap.Logger,
) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.UnassignedPolicy == "" {
		opts.UnassignedPolicy = UnassignedKeep
	}
	return &Service{
		gateway:     gateway,
		meetingRepo: meetingRepo,
		userRepo:    userRepo,
		opts:        opts,
		logger:      logger,
	}
}

// Upload is an audio file received from a client
type Upload struct {
	Filename string
	Content  io.Reader
}

// MeetingInfo identifies the stored meeting
type MeetingInfo struct {
	ID       uint   `json:"id"`
	Filename string `json:"filename"`
}

// ProcessResult is returned after a successful ingestion. Results is the
// analysis exactly as the model produced it.
type ProcessResult struct {
	MeetingInfo MeetingInfo     `json:"meeting_info"`
	Results     json.RawMessage `json:"results"`
}

// Process runs one ingestion: the upload is spooled to a temp file, sent to
// the gateway, analyzed, and stored as a meeting with its tasks. The temp file
// is removed and the remote handle released on every path.
func (s *Service) Process(ctx context.Context, upload Upload, requester *entities.User) (result *ProcessResult, err error) {
	if upload.Content == nil || upload.Filename == "" {
		return nil, usecaseerrors.ErrMissingFile
	}

	ctx, cancel := jobcontext.JobBegin(ctx, JobTypeIngest, upload.Filename, s.opts.Timeout)
	defer cancel()

	logger := jobcontext.Logger(ctx, s.logger).With(zap.String("filename", upload.Filename))
	if requester != nil {
		logger = logger.With(zap.String("requested_by", requester.Username))
	}
	defer func() {
		if err != nil {
			logger.Error("Meeting ingestion failed", zap.Duration("elapsed", jobcontext.Elapsed(ctx)), zap.Error(err))
		}
	}()

	// Received
	path, err := s.spool(upload)
	if err != nil {
		return nil, err
	}
	defer func() {
		if rmErr := os.Remove(path); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
			logger.Warn("Failed to remove temp file", zap.String("path", path), zap.Error(rmErr))
		}
	}()
	logger.Info("Upload received", zap.String("stage", StageReceived), zap.String("path", path))

	// Submitted
	handle, err := s.gateway.Submit(ctx, path, upload.Filename)
	if err != nil {
		return nil, err
	}
	defer s.gateway.Release(ctx, handle)
	logger.Info("Audio submitted", zap.String("stage", StageSubmitted), zap.String("file", handle.Name))

	// Ready
	ready, err := s.gateway.AwaitReady(ctx, handle)
	if err != nil {
		return nil, err
	}
	logger.Info("Audio ready", zap.String("stage", StageReady))

	// Analyzed
	analysis, err := s.gateway.Analyze(ctx, ready)
	if err != nil {
		return nil, err
	}
	logger.Info("Audio analyzed", zap.String("stage", StageAnalyzed), zap.Int("tasks", len(analysis.Tasks)))

	// Persisted
	meeting, tasks, err := s.persist(ctx, upload.Filename, analysis)
	if err != nil {
		return nil, err
	}
	logger.Info("Meeting saved",
		zap.String("stage", StagePersisted),
		zap.Uint("meeting_id", meeting.ID),
		zap.Int("tasks", len(tasks)),
		zap.Duration("elapsed", jobcontext.Elapsed(ctx)),
	)

	if s.opts.Archiver != nil {
		key, archErr := s.opts.Archiver.Archive(ctx, meeting.ID, upload.Filename, path)
		if archErr != nil {
			logger.Warn("Failed to archive audio", zap.Uint("meeting_id", meeting.ID), zap.Error(archErr))
		} else {
			logger.Info("Audio archived", zap.Uint("meeting_id", meeting.ID), zap.String("object", key))
		}
	}

	return &ProcessResult{
		MeetingInfo: MeetingInfo{ID: meeting.ID, Filename: meeting.Filename},
		Results:     analysis.Raw,
	}, nil
}

// spool copies the upload into a uniquely named file under the temp dir
func (s *Service) spool(upload Upload) (string, error) {
	ext := strings.ToLower(filepath.Ext(filepath.Base(upload.Filename)))
	f, err := os.CreateTemp(s.opts.TempDir, "upload-*"+ext)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := io.Copy(f, upload.Content); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}
	return f.Name(), nil
}

// persist resolves assignees and stores the meeting and its tasks
func (s *Service) persist(ctx context.Context, filename string, analysis *entities.AnalysisResult) (*entities.Meeting, []*entities.Task, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load users: %w", err)
	}
	byName := make(map[string]uint, len(users))
	for _, u := range users {
		key := entities.NormalizeUsername(u.Username)
		if _, taken := byName[key]; !taken {
			byName[key] = u.ID
		}
	}

	tasks := make([]*entities.Task, 0, len(analysis.Tasks))
	for _, extracted := range analysis.Tasks {
		var assigneeID *uint
		if id, ok := byName[extracted.AssigneeKey()]; ok && extracted.AssigneeKey() != "" {
			assigneeID = &id
		} else if s.opts.UnassignedPolicy == UnassignedSkip {
			jobcontext.Logger(ctx, s.logger).Info("Dropping unassigned task",
				zap.String("assignee", string(extracted.Assignee)),
				zap.String("task", string(extracted.Description)),
			)
			continue
		}
		tasks = append(tasks, entities.NewTask(string(extracted.Description), string(extracted.DueDate), assigneeID))
	}

	meeting := entities.NewMeeting(filename, analysis.Minutes)
	if err := s.meetingRepo.CreateWithTasks(ctx, meeting, tasks); err != nil {
		return nil, nil, fmt.Errorf("failed to save meeting: %w", err)
	}
	return meeting, tasks, nil
}

// GetMeeting returns a meeting with its tasks
func (s *Service) GetMeeting(ctx context.Context, id uint) (*entities.Meeting, error) {
	meeting, err := s.meetingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, entities.ErrMeetingNotFound) {
			return nil, usecaseerrors.ErrMeetingNotFound
		}
		return nil, err
	}
	return meeting, nil
}

// ListMeetings returns meetings newest first
func (s *Service) ListMeetings(ctx context.Context, limit, offset int) ([]*entities.Meeting, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.meetingRepo.List(ctx, limit, offset)
}
