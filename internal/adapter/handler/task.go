package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-analyzer/errors"
	taskDTO "github.com/johnquangdev/meeting-analyzer/internal/adapter/dto/task"
	"github.com/johnquangdev/meeting-analyzer/internal/adapter/presenter"
	"github.com/johnquangdev/meeting-analyzer/internal/domain/entities"
	httpmw "github.com/johnquangdev/meeting-analyzer/internal/infrastructure/http/middleware"
	taskUsecase "github.com/johnquangdev/meeting-analyzer/internal/usecase/task"
)

// Task handles follow-up on tasks by their assignees
type Task struct {
	taskService *taskUsecase.Service
	logger      *zap.Logger
}

// NewTask creates a new task handler
func NewTask(taskService *taskUsecase.Service, logger *zap.Logger) *Task {
	return &Task{
		taskService: taskService,
		logger:      logger,
	}
}

// AddUpdate handles POST /tasks/:id/updates
// @Summary      Add a task update
// @Description  Appends a comment to a task assigned to the caller and optionally changes its status.
// @Tags         Tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  int                       true  "Task ID"
// @Param        request  body  task.AddUpdateRequest  true  "Update"
// @Success      201  {object}  task.TaskUpdateResponse
// @Failure      400  {object}  map[string]interface{}  "Invalid request"
// @Failure      403  {object}  map[string]interface{}  "Task is not assigned to you"
// @Failure      404  {object}  map[string]interface{}  "Task not found"
// @Failure      409  {object}  map[string]interface{}  "Task is locked"
// @Router       /tasks/{id}/updates [post]
func (h *Task) AddUpdate(c echo.Context) error {
	user, ok := httpmw.GetUser(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}
	id, err := parseID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req taskDTO.AddUpdateRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, validationError(err))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, validationError(err))
	}

	update, err := h.taskService.AddUpdate(c.Request().Context(), user, id, req.Comment, entities.TaskStatus(req.Status))
	if err != nil {
		return HandleError(h.logger, c, toAppError(err, c.Param("id")))
	}
	return c.JSON(http.StatusCreated, presenter.ToTaskUpdateResponse(update))
}

// ListUpdates handles GET /tasks/:id/updates
// @Summary      List task updates
// @Tags         Tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Task ID"
// @Success      200  {array}   task.TaskUpdateResponse
// @Failure      403  {object}  map[string]interface{}  "Task is not assigned to you"
// @Failure      404  {object}  map[string]interface{}  "Task not found"
// @Router       /tasks/{id}/updates [get]
func (h *Task) ListUpdates(c echo.Context) error {
	user, ok := httpmw.GetUser(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}
	id, err := parseID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	updates, err := h.taskService.ListUpdates(c.Request().Context(), user, id)
	if err != nil {
		return HandleError(h.logger, c, toAppError(err, c.Param("id")))
	}
	return c.JSON(http.StatusOK, presenter.ToTaskUpdateListResponse(updates))
}
