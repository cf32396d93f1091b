package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-analyzer/internal/domain/entities"
)

// MeetingRepository implements the meeting repository interface using GORM
type MeetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(db *gorm.DB) *MeetingRepository {
	return &MeetingRepository{db: db}
}

// CreateWithTasks inserts the meeting, then its tasks, in a single transaction
func (r *MeetingRepository) CreateWithTasks(ctx context.Context, meeting *entities.Meeting, tasks []*entities.Task) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tasks").Create(meeting).Error; err != nil {
			return fmt.Errorf("failed to create meeting: %w", err)
		}

		if len(tasks) == 0 {
			return nil
		}

		for _, task := range tasks {
			task.MeetingID = meeting.ID
		}
		if err := tx.Omit("Updates").Create(&tasks).Error; err != nil {
			return fmt.Errorf("failed to create tasks: %w", err)
		}
		return nil
	})
}

// FindByID finds a meeting and preloads its tasks
func (r *MeetingRepository) FindByID(ctx context.Context, id uint) (*entities.Meeting, error) {
	var meeting entities.Meeting
	if err := r.db.WithContext(ctx).
		Preload("Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Where("id = ?", id).
		First(&meeting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to find meeting: %w", err)
	}
	return &meeting, nil
}

// List returns meetings newest first
func (r *MeetingRepository) List(ctx context.Context, limit, offset int) ([]*entities.Meeting, error) {
	var meetings []*entities.Meeting
	if err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&meetings).Error; err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}
	return meetings, nil
}
