package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-analyzer/errors"
	authDTO "github.com/johnquangdev/meeting-analyzer/internal/adapter/dto/auth"
	"github.com/johnquangdev/meeting-analyzer/internal/adapter/presenter"
	httpmw "github.com/johnquangdev/meeting-analyzer/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/meeting-analyzer/internal/usecase/auth"
	taskUsecase "github.com/johnquangdev/meeting-analyzer/internal/usecase/task"
)

// Auth handles login and the current user's endpoints
type Auth struct {
	authService *auth.Service
	taskService *taskUsecase.Service
	logger      *zap.Logger
}

// NewAuth creates a new auth handler
func NewAuth(authService *auth.Service, taskService *taskUsecase.Service, logger *zap.Logger) *Auth {
	return &Auth{
		authService: authService,
		taskService: taskService,
		logger:      logger,
	}
}

// Login handles POST /token
// @Summary      Log in
// @Description  Exchanges a username and password for a bearer token. The token is the username.
// @Tags         Auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username  formData  string  true  "Username (case-insensitive)"
// @Param        password  formData  string  true  "Password"
// @Success      200  {object}  auth.TokenResponse
// @Failure      400  {object}  map[string]interface{}  "Incorrect username or password"
// @Router       /token [post]
func (h *Auth) Login(c echo.Context) error {
	var req authDTO.LoginRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, validationError(err))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, validationError(err))
	}

	resp, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return HandleError(h.logger, c, toAppError(err, ""))
	}

	return c.JSON(http.StatusOK, presenter.ToTokenResponse(resp))
}

// Me handles GET /users/me
// @Summary      Current user
// @Tags         Users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  auth.UserResponse
// @Failure      401  {object}  map[string]interface{}  "Not authenticated"
// @Router       /users/me [get]
func (h *Auth) Me(c echo.Context) error {
	user, ok := httpmw.GetUser(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}
	return c.JSON(http.StatusOK, presenter.ToUserResponse(user))
}

// MyTasks handles GET /users/me/tasks
// @Summary      Tasks assigned to the current user
// @Tags         Users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   task.TaskResponse
// @Failure      401  {object}  map[string]interface{}  "Not authenticated"
// @Router       /users/me/tasks [get]
func (h *Auth) MyTasks(c echo.Context) error {
	user, ok := httpmw.GetUser(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	tasks, err := h.taskService.ListMyTasks(c.Request().Context(), user)
	if err != nil {
		return HandleError(h.logger, c, toAppError(err, ""))
	}
	return c.JSON(http.StatusOK, presenter.ToTaskListResponse(tasks))
}
