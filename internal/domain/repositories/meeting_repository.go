package repositories

import (
	"context"

	"github.com/johnquangdev/meeting-analyzer/internal/domain/entities"
)

// MeetingRepository defines persistence operations for meetings
type MeetingRepository interface {
	// CreateWithTasks inserts the meeting and then its tasks in one transaction.
	// Each task's MeetingID is set to the new meeting's ID.
	CreateWithTasks(ctx context.Context, meeting *entities.Meeting, tasks []*entities.Task) error

	// FindByID finds a meeting and preloads its tasks
	FindByID(ctx context.Context, id uint) (*entities.Meeting, error)

	// List returns meetings newest first
	List(ctx context.Context, limit, offset int) ([]*entities.Meeting, error)
}
