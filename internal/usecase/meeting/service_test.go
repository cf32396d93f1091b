package meeting

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-analyzer/internal/adapter/repository"
	"github.com/johnquangdev/meeting-analyzer/internal/domain/entities"
	"github.com/johnquangdev/meeting-analyzer/internal/testutil"
	usecaseai "github.com/johnquangdev/meeting-analyzer/internal/usecase/ai"
	usecaseerrors "github.com/johnquangdev/meeting-analyzer/internal/usecase/errors"
	pkgai "github.com/johnquangdev/meeting-analyzer/pkg/ai"
	"github.com/johnquangdev/meeting-analyzer/pkg/config"
)

const analysisJSON = `{
  "minutes": "Team agreed on the launch plan.",
  "tasks": [
    {"task_description": "Prepare slides", "assignee": " Priya ", "due_date": "Friday"},
    {"task_description": "Email vendor", "assignee": "Zed", "due_date": null},
    {"task_description": "Book room", "assignee": null, "due_date": "next week"}
  ]
}`

type harness struct {
	db      *gorm.DB
	fake    *testutil.FakeProvider
	svc     *Service
	tempDir string
	users   map[string]*entities.User
}

func newHarness(t *testing.T, response string, policy UnassignedPolicy, archiver AudioArchiver) *harness {
	t.Helper()
	db := testutil.NewSQLiteDB(t)
	users := testutil.SeedUsers(t, db, "priya", "raghav")
	fake := testutil.NewFakeProvider(response)
	gateway := usecaseai.NewGateway(testutil.NewHolder(fake), config.GatewayConfig{
		PollInterval:    time.Millisecond,
		PollMaxAttempts: 5,
	}, zap.NewNop())

	tempDir := t.TempDir()
	svc := NewService(gateway,
		repository.NewMeetingRepository(db),
		repository.NewUserRepository(db),
		Options{TempDir: tempDir, UnassignedPolicy: policy, Archiver: archiver},
		zap.NewNop(),
	)
	return &harness{db: db, fake: fake, svc: svc, tempDir: tempDir, users: users}
}

func (h *harness) upload() Upload {
	return Upload{Filename: "launch.mp3", Content: strings.NewReader("ID3 fake audio")}
}

func (h *harness) countRows(t *testing.T, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, h.db.Model(model).Count(&n).Error)
	return n
}

func (h *harness) assertTempDirEmpty(t *testing.T) {
	t.Helper()
	entries, err := os.ReadDir(h.tempDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestProcess_Success(t *testing.T) {
	h := newHarness(t, analysisJSON, UnassignedKeep, nil)
	ctx := context.Background()

	result, err := h.svc.Process(ctx, h.upload(), h.users["raghav"])
	require.NoError(t, err)

	assert.Equal(t, "launch.mp3", result.MeetingInfo.Filename)
	assert.NotZero(t, result.MeetingInfo.ID)
	assert.JSONEq(t, analysisJSON, string(result.Results))

	assert.EqualValues(t, 1, h.countRows(t, &entities.Meeting{}))
	assert.EqualValues(t, 3, h.countRows(t, &entities.Task{}))

	meeting, err := h.svc.GetMeeting(ctx, result.MeetingInfo.ID)
	require.NoError(t, err)
	assert.Equal(t, "Team agreed on the launch plan.", meeting.SummaryText())
	require.Len(t, meeting.Tasks, 3)

	prepare := meeting.Tasks[0]
	require.NotNil(t, prepare.AssigneeID)
	assert.Equal(t, h.users["priya"].ID, *prepare.AssigneeID)
	assert.Equal(t, "Friday", prepare.DueDate)
	assert.Equal(t, entities.TaskStatusToDo, prepare.Status)
	assert.Equal(t, meeting.ID, prepare.MeetingID)

	assert.Nil(t, meeting.Tasks[1].AssigneeID)
	assert.Nil(t, meeting.Tasks[2].AssigneeID)
	assert.Equal(t, "next week", meeting.Tasks[2].DueDate)

	require.Len(t, h.fake.Uploaded, 1)
	assert.True(t, strings.HasSuffix(h.fake.Uploaded[0], ".mp3"))
	assert.Equal(t, 1, h.fake.DeleteCount("files/1"))
	h.assertTempDirEmpty(t)
}

func TestProcess_SkipPolicyDropsUnmatched(t *testing.T) {
	h := newHarness(t, analysisJSON, UnassignedSkip, nil)

	result, err := h.svc.Process(context.Background(), h.upload(), nil)
	require.NoError(t, err)

	meeting, err := h.svc.GetMeeting(context.Background(), result.MeetingInfo.ID)
	require.NoError(t, err)
	require.Len(t, meeting.Tasks, 1)
	assert.Equal(t, "Prepare slides", meeting.Tasks[0].Description)

	// The raw results still echo every extracted task
	assert.Contains(t, string(result.Results), "Email vendor")
}

func TestProcess_ReleaseOnGatewayFailures(t *testing.T) {
	cases := map[string]struct {
		setup  func(f *testutil.FakeProvider)
		target error
	}{
		"remote processing failed": {
			setup:  func(f *testutil.FakeProvider) { f.States = []pkgai.FileState{pkgai.FileStateFailed} },
			target: usecaseerrors.ErrRemoteProcessing,
		},
		"never ready": {
			setup:  func(f *testutil.FakeProvider) { f.States = []pkgai.FileState{pkgai.FileStateProcessing} },
			target: usecaseerrors.ErrRemoteProcessing,
		},
		"analysis transport": {
			setup:  func(f *testutil.FakeProvider) { f.GenerateErr = testutil.ErrFake },
			target: usecaseerrors.ErrRemoteProcessing,
		},
		"malformed analysis": {
			setup:  func(f *testutil.FakeProvider) { f.Response = `{"minutes": "only minutes"}` },
			target: usecaseerrors.ErrMalformedResponse,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			h := newHarness(t, analysisJSON, UnassignedKeep, nil)
			tc.setup(h.fake)

			_, err := h.svc.Process(context.Background(), h.upload(), nil)
			require.ErrorIs(t, err, tc.target)

			assert.Equal(t, 1, h.fake.DeleteCount("files/1"))
			assert.Len(t, h.fake.Deleted, 1)
			assert.Zero(t, h.countRows(t, &entities.Meeting{}))
			h.assertTempDirEmpty(t)
		})
	}
}

func TestProcess_UploadFailureHasNothingToRelease(t *testing.T) {
	h := newHarness(t, analysisJSON, UnassignedKeep, nil)
	h.fake.UploadErr = testutil.ErrFake

	_, err := h.svc.Process(context.Background(), h.upload(), nil)
	require.ErrorIs(t, err, usecaseerrors.ErrUpload)
	assert.Empty(t, h.fake.Deleted)
	h.assertTempDirEmpty(t)
}

func TestProcess_ReleaseOnPersistenceFailure(t *testing.T) {
	h := newHarness(t, analysisJSON, UnassignedKeep, nil)
	require.NoError(t, h.db.Exec("DROP TABLE task_updates").Error)
	require.NoError(t, h.db.Exec("DROP TABLE tasks").Error)

	_, err := h.svc.Process(context.Background(), h.upload(), nil)
	require.Error(t, err)

	assert.Equal(t, 1, h.fake.DeleteCount("files/1"))
	assert.Zero(t, h.countRows(t, &entities.Meeting{}))
	h.assertTempDirEmpty(t)
}

func TestProcess_NotConfigured(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	holder := pkgai.NewProviderHolder()
	require.NoError(t, holder.Init(nil))
	tempDir := t.TempDir()
	svc := NewService(usecaseai.NewGateway(holder, config.GatewayConfig{}, nil),
		repository.NewMeetingRepository(db), repository.NewUserRepository(db),
		Options{TempDir: tempDir}, nil)

	_, err := svc.Process(context.Background(), Upload{Filename: "a.wav", Content: strings.NewReader("x")}, nil)
	assert.ErrorIs(t, err, usecaseerrors.ErrNotConfigured)

	entries, err := os.ReadDir(tempDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestProcess_MissingFile(t *testing.T) {
	h := newHarness(t, analysisJSON, UnassignedKeep, nil)

	_, err := h.svc.Process(context.Background(), Upload{Filename: "a.mp3"}, nil)
	assert.ErrorIs(t, err, usecaseerrors.ErrMissingFile)

	_, err = h.svc.Process(context.Background(), Upload{Content: strings.NewReader("x")}, nil)
	assert.ErrorIs(t, err, usecaseerrors.ErrMissingFile)
	assert.Empty(t, h.fake.Uploaded)
}

type recordingArchiver struct {
	meetingID uint
	content   string
	err       error
}

func (a *recordingArchiver) Archive(_ context.Context, meetingID uint, _ string, path string) (string, error) {
	a.meetingID = meetingID
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	a.content = string(b)
	return "meetings/1/launch.mp3", a.err
}

func TestProcess_Archive(t *testing.T) {
	archiver := &recordingArchiver{}
	h := newHarness(t, analysisJSON, UnassignedKeep, archiver)

	result, err := h.svc.Process(context.Background(), h.upload(), nil)
	require.NoError(t, err)
	assert.Equal(t, result.MeetingInfo.ID, archiver.meetingID)
	assert.Equal(t, "ID3 fake audio", archiver.content)
	h.assertTempDirEmpty(t)
}

func TestProcess_ArchiveFailureIsIgnored(t *testing.T) {
	archiver := &recordingArchiver{err: errors.New("bucket unavailable")}
	h := newHarness(t, analysisJSON, UnassignedKeep, archiver)

	_, err := h.svc.Process(context.Background(), h.upload(), nil)
	require.NoError(t, err)
	assert.EqualValues(t, 1, h.countRows(t, &entities.Meeting{}))
}

func TestGetMeeting_NotFound(t *testing.T) {
	h := newHarness(t, analysisJSON, UnassignedKeep, nil)

	_, err := h.svc.GetMeeting(context.Background(), 404)
	assert.ErrorIs(t, err, usecaseerrors.ErrMeetingNotFound)
}

func TestListMeetings(t *testing.T) {
	h := newHarness(t, analysisJSON, UnassignedKeep, nil)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := h.svc.Process(ctx, h.upload(), nil)
		require.NoError(t, err)
	}

	meetings, err := h.svc.ListMeetings(ctx, 0, -1)
	require.NoError(t, err)
	assert.Len(t, meetings, 2)
}
