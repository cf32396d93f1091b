package repositories

import (
	"context"

	"github.com/johnquangdev/meeting-analyzer/internal/domain/entities"
)

// TaskRepository defines persistence operations for tasks and their updates
type TaskRepository interface {
	FindByID(ctx context.Context, id uint) (*entities.Task, error)
	ListByAssignee(ctx context.Context, userID uint) ([]*entities.Task, error)
	ListByMeeting(ctx context.Context, meetingID uint) ([]*entities.Task, error)
	SetStatus(ctx context.Context, taskID uint, status entities.TaskStatus) error

	// AppendUpdate records a comment and, when status is non-empty, changes the
	// task status in the same transaction
	AppendUpdate(ctx context.Context, update *entities.TaskUpdate, status entities.TaskStatus) error
	ListUpdates(ctx context.Context, taskID uint) ([]*entities.TaskUpdate, error)
}
