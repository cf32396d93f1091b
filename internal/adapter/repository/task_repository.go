package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-analyzer/internal/domain/entities"
)

// TaskRepository implements the task repository interface using GORM
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// FindByID finds a task by ID
func (r *TaskRepository) FindByID(ctx context.Context, id uint) (*entities.Task, error) {
	var task entities.Task
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return &task, nil
}

// ListByAssignee lists tasks assigned to a user
func (r *TaskRepository) ListByAssignee(ctx context.Context, userID uint) ([]*entities.Task, error) {
	var tasks []*entities.Task
	if err := r.db.WithContext(ctx).
		Where("assignee_id = ?", userID).
		Order("id ASC").
		Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("failed to list tasks by assignee: %w", err)
	}
	return tasks, nil
}

// ListByMeeting lists tasks created from a meeting
func (r *TaskRepository) ListByMeeting(ctx context.Context, meetingID uint) ([]*entities.Task, error) {
	var tasks []*entities.Task
	if err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Order("id ASC").
		Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("failed to list tasks by meeting: %w", err)
	}
	return tasks, nil
}

// SetStatus changes the status of a task
func (r *TaskRepository) SetStatus(ctx context.Context, taskID uint, status entities.TaskStatus) error {
	result := r.db.WithContext(ctx).
		Model(&entities.Task{}).
		Where("id = ?", taskID).
		Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update task status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return entities.ErrTaskNotFound
	}
	return nil
}

// AppendUpdate records a comment and optionally changes the task status
func (r *TaskRepository) AppendUpdate(ctx context.Context, update *entities.TaskUpdate, status entities.TaskStatus) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(update).Error; err != nil {
			return fmt.Errorf("failed to create task update: %w", err)
		}
		if status == "" {
			return nil
		}
		if err := tx.Model(&entities.Task{}).
			Where("id = ?", update.TaskID).
			Update("status", status).Error; err != nil {
			return fmt.Errorf("failed to update task status: %w", err)
		}
		return nil
	})
}

// ListUpdates returns the updates of a task, oldest first
func (r *TaskRepository) ListUpdates(ctx context.Context, taskID uint) ([]*entities.TaskUpdate, error) {
	var updates []*entities.TaskUpdate
	if err := r.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Order("timestamp ASC, id ASC").
		Find(&updates).Error; err != nil {
		return nil, fmt.Errorf("failed to list task updates: %w", err)
	}
	return updates, nil
}
