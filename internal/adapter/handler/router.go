package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/johnquangdev/meeting-analyzer/docs"
	"github.com/johnquangdev/meeting-analyzer/internal/adapter/dto/common"
	httpmw "github.com/johnquangdev/meeting-analyzer/internal/infrastructure/http/middleware"
	pkgai "github.com/johnquangdev/meeting-analyzer/pkg/ai"
	"github.com/johnquangdev/meeting-analyzer/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg            *config.Config
	providers      *pkgai.ProviderHolder
	resolver       httpmw.TokenResolver
	authHandler    *Auth
	meetingHandler *Meeting
	taskHandler    *Task
}

// NewRouter creates a new router with all handlers
func NewRouter(
	cfg *config.Config,
	providers *pkgai.ProviderHolder,
	resolver httpmw.TokenResolver,
	authHandler *Auth,
	meetingHandler *Meeting,
	taskHandler *Task,
) *Router {
	return &Router{
		cfg:            cfg,
		providers:      providers,
		resolver:       resolver,
		authHandler:    authHandler,
		meetingHandler: meetingHandler,
		taskHandler:    taskHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	requireAuth := httpmw.EchoAuth(rt.resolver)
	optionalAuth := httpmw.EchoOptionalAuth(rt.resolver)

	e.GET("/", rt.root)
	e.GET("/health", rt.healthCheck)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Auth
	e.POST("/token", rt.authHandler.Login)
	users := e.Group("/users/me", requireAuth)
	users.GET("", rt.authHandler.Me)
	users.GET("/tasks", rt.authHandler.MyTasks)

	// Meetings
	e.POST("/process-meeting/", rt.meetingHandler.ProcessMeeting, optionalAuth)
	e.POST("/process-audio/", rt.meetingHandler.ProcessAudio)
	e.GET("/meetings", rt.meetingHandler.ListMeetings)
	e.GET("/meetings/:id", rt.meetingHandler.GetMeeting)

	// Tasks
	tasks := e.Group("/tasks", requireAuth)
	tasks.POST("/:id/updates", rt.taskHandler.AddUpdate)
	tasks.GET("/:id/updates", rt.taskHandler.ListUpdates)
}

// root returns the welcome message
func (rt *Router) root(c echo.Context) error {
	return c.JSON(http.StatusOK, common.MessageResponse{
		Message: "Welcome to the Meeting Analyzer API",
	})
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, common.HealthResponse{
		Status:      "ok",
		Environment: rt.cfg.Server.Environment,
		AIProvider:  rt.cfg.AI.Provider,
		AIReady:     rt.providers.Configured(),
	})
}
