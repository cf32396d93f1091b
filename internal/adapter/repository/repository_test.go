package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-analyzer/internal/domain/entities"
	"github.com/johnquangdev/meeting-analyzer/internal/testutil"
)

func TestUserRepository_Lookups(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewSQLiteDB(t)
	repo := NewUserRepository(db)

	require.NoError(t, repo.Create(ctx, entities.NewUser("priya", "pass123")))
	require.NoError(t, repo.Create(ctx, entities.NewUser("raghav", "pass456")))

	u, err := repo.FindByUsername(ctx, "priya")
	require.NoError(t, err)
	assert.Equal(t, "pass123", u.Password)

	_, err = repo.FindByUsername(ctx, "Priya")
	assert.ErrorIs(t, err, entities.ErrUserNotFound)

	u, err = repo.FindByUsernameFold(ctx, "PRIYA")
	require.NoError(t, err)
	assert.Equal(t, "priya", u.Username)

	byID, err := repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.Username, byID.Username)

	_, err = repo.FindByID(ctx, 9999)
	assert.ErrorIs(t, err, entities.ErrUserNotFound)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "priya", all[0].Username)

	err = repo.Create(ctx, entities.NewUser("priya", "again"))
	assert.Error(t, err)

	err = repo.Create(ctx, entities.NewUser("", "x"))
	assert.ErrorIs(t, err, entities.ErrInvalidUsername)
}

func TestMeetingRepository_CreateWithTasks(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewSQLiteDB(t)
	users := testutil.SeedUsers(t, db, "anjali")
	meetings := NewMeetingRepository(db)
	tasks := NewTaskRepository(db)

	assignee := users["anjali"].ID
	meeting := entities.NewMeeting("standup.mp3", "We agreed on things.")
	batch := []*entities.Task{
		entities.NewTask("Draft the report", "Friday", &assignee),
		entities.NewTask("Book a room", "", nil),
	}
	require.NoError(t, meetings.CreateWithTasks(ctx, meeting, batch))
	require.NotZero(t, meeting.ID)

	for _, task := range batch {
		assert.NotZero(t, task.ID)
		assert.Equal(t, meeting.ID, task.MeetingID)
	}

	found, err := meetings.FindByID(ctx, meeting.ID)
	require.NoError(t, err)
	assert.Equal(t, "We agreed on things.", found.SummaryText())
	require.Len(t, found.Tasks, 2)
	assert.Equal(t, entities.TaskStatusToDo, found.Tasks[0].Status)
	assert.False(t, found.Tasks[0].IsLocked)
	assert.Nil(t, found.Tasks[1].AssigneeID)

	mine, err := tasks.ListByAssignee(ctx, assignee)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Friday", mine[0].DueDate)

	byMeeting, err := tasks.ListByMeeting(ctx, meeting.ID)
	require.NoError(t, err)
	assert.Len(t, byMeeting, 2)

	_, err = meetings.FindByID(ctx, 9999)
	assert.ErrorIs(t, err, entities.ErrMeetingNotFound)

	list, err := meetings.List(ctx, 10, 0)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestMeetingRepository_CreateWithTasks_RollsBack(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewSQLiteDB(t)
	meetings := NewMeetingRepository(db)

	missing := uint(4242)
	err := meetings.CreateWithTasks(ctx, entities.NewMeeting("a.wav", "x"), []*entities.Task{
		entities.NewTask("Orphan", "", &missing),
	})
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&entities.Meeting{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestTaskRepository_Updates(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewSQLiteDB(t)
	meetings := NewMeetingRepository(db)
	repo := NewTaskRepository(db)

	task := entities.NewTask("Ship it", "", nil)
	require.NoError(t, meetings.CreateWithTasks(ctx, entities.NewMeeting("b.mp3", ""), []*entities.Task{task}))

	require.NoError(t, repo.AppendUpdate(ctx, entities.NewTaskUpdate(task.ID, "started"), entities.TaskStatusInProgress))
	require.NoError(t, repo.AppendUpdate(ctx, entities.NewTaskUpdate(task.ID, "still going"), ""))

	got, err := repo.FindByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.TaskStatusInProgress, got.Status)

	updates, err := repo.ListUpdates(ctx, task.ID)
	require.NoError(t, err)
	require.Len(t, updates, 2)
	assert.Equal(t, "started", updates[0].Comment)

	require.NoError(t, repo.SetStatus(ctx, task.ID, entities.TaskStatusDone))
	got, err = repo.FindByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.TaskStatusDone, got.Status)

	assert.ErrorIs(t, repo.SetStatus(ctx, 9999, entities.TaskStatusDone), entities.ErrTaskNotFound)
	_, err = repo.FindByID(ctx, 9999)
	assert.ErrorIs(t, err, entities.ErrTaskNotFound)
}
