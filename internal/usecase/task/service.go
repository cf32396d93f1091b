package task

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-analyzer/internal/domain/entities"
	"github.com/johnquangdev/meeting-analyzer/internal/domain/repositories"
	usecaseerrors "github.com/johnquangdev/meeting-analyzer/internal/usecase/errors"
)

// Service handles follow-up on extracted tasks by their assignees
type Service struct {
	taskRepo repositories.TaskRepository
	logger   *zap.Logger
}

// NewService creates a new task service
func NewService(taskRepo repositories.TaskRepository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		taskRepo: taskRepo,
		logger:   logger,
	}
}

// ListMyTasks returns the tasks assigned to user
func (s *Service) ListMyTasks(ctx context.Context, user *entities.User) ([]*entities.Task, error) {
	return s.taskRepo.ListByAssignee(ctx, user.ID)
}

// AddUpdate appends a comment to a task assigned to user. A non-empty status
// is applied in the same write unless the task is locked.
func (s *Service) AddUpdate(ctx context.Context, user *entities.User, taskID uint, comment string, status entities.TaskStatus) (*entities.TaskUpdate, error) {
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return nil, fmt.Errorf("%w: comment is required", usecaseerrors.ErrInvalidInput)
	}
	if status != "" && !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", usecaseerrors.ErrInvalidInput, status)
	}

	task, err := s.ownedTask(ctx, user, taskID)
	if err != nil {
		return nil, err
	}
	if status != "" && status != task.Status && task.IsLocked {
		return nil, usecaseerrors.ErrTaskLocked
	}

	update := entities.NewTaskUpdate(task.ID, comment)
	if err := s.taskRepo.AppendUpdate(ctx, update, status); err != nil {
		return nil, err
	}

	s.logger.Info("Task updated",
		zap.Uint("task_id", task.ID),
		zap.String("username", user.Username),
		zap.String("status", string(status)),
	)
	return update, nil
}

// ListUpdates returns the update history of a task assigned to user
func (s *Service) ListUpdates(ctx context.Context, user *entities.User, taskID uint) ([]*entities.TaskUpdate, error) {
	task, err := s.ownedTask(ctx, user, taskID)
	if err != nil {
		return nil, err
	}
	return s.taskRepo.ListUpdates(ctx, task.ID)
}

func (s *Service) ownedTask(ctx context.Context, user *entities.User, taskID uint) (*entities.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, entities.ErrTaskNotFound) {
			return nil, usecaseerrors.ErrTaskNotFound
		}
		return nil, err
	}
	if !task.IsAssignedTo(user.ID) {
		return nil, usecaseerrors.ErrForbidden
	}
	return task, nil
}
