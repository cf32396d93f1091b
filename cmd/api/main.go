package main

import (
	"context"
	stdErrors "errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/johnquangdev/meeting-analyzer/pkg/validator"

	"github.com/johnquangdev/meeting-analyzer/internal/adapter/handler"
	"github.com/johnquangdev/meeting-analyzer/internal/adapter/repository"
	"github.com/johnquangdev/meeting-analyzer/internal/infrastructure/database"
	httpmw "github.com/johnquangdev/meeting-analyzer/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/meeting-analyzer/internal/infrastructure/storage"
	aiuse "github.com/johnquangdev/meeting-analyzer/internal/usecase/ai"
	"github.com/johnquangdev/meeting-analyzer/internal/usecase/auth"
	"github.com/johnquangdev/meeting-analyzer/internal/usecase/meeting"
	"github.com/johnquangdev/meeting-analyzer/internal/usecase/task"
	pkgai "github.com/johnquangdev/meeting-analyzer/pkg/ai"
	"github.com/johnquangdev/meeting-analyzer/pkg/config"
)

// @title           Meeting Analyzer API
// @version         1.0
// @description     Upload meeting audio and get minutes and assigned action items back.

// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token returned by /token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg.Server.Environment)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()
	e.HTTPErrorHandler = handler.ErrorHandler(logger)

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${id} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	e.Use(middleware.BodyLimit(cfg.Ingest.MaxUploadSize))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	// Initialize Database
	log.Printf("📦 Connecting to database (%s)...", cfg.Database.Driver)
	db, err := database.NewDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	if cfg.Database.AutoMigrate {
		log.Println("🔄 Applying migrations...")
		n, err := database.Migrate(db, cfg.Database.Driver)
		if err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		log.Printf("✅ Applied %d migration(s)", n)
	} else {
		log.Println("🔄 Skipping migrations; DB_AUTO_MIGRATE is off")
	}

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	userRepo := repository.NewUserRepository(db)
	meetingRepo := repository.NewMeetingRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	// Initialize AI provider
	log.Printf("🤖 Initializing AI provider (%s)...", cfg.AI.Provider)
	providers := pkgai.NewProviderHolder()
	provider, err := pkgai.NewProvider(context.Background(), cfg.AI)
	switch {
	case stdErrors.Is(err, pkgai.ErrNotConfigured):
		log.Printf("⚠️  AI provider not configured: %v. Audio processing will fail until a key is set.", err)
		provider = nil
	case err != nil:
		log.Fatalf("Failed to initialize AI provider: %v", err)
	}
	if err := providers.Init(provider); err != nil {
		log.Fatalf("Failed to register AI provider: %v", err)
	}
	gateway := aiuse.NewGateway(providers, cfg.Gateway, logger)

	// Initialize audio archive
	opts := meeting.Options{
		TempDir:          cfg.Ingest.TempDir,
		UnassignedPolicy: meeting.UnassignedPolicy(cfg.Ingest.UnassignedPolicy),
		Timeout:          cfg.Ingest.Timeout,
	}
	if cfg.Storage.Enabled {
		log.Println("🗄️  Connecting to object storage...")
		archive, err := storage.NewAudioArchive(context.Background(), cfg.Storage)
		if err != nil {
			log.Printf("⚠️  Audio archive disabled: %v", err)
		} else {
			opts.Archiver = archive
			log.Printf("✅ Archiving audio to bucket %s", cfg.Storage.BucketName)
		}
	}

	// Initialize services
	log.Println("✨ Initializing services...")
	authService := auth.NewService(userRepo, logger)
	taskService := task.NewService(taskRepo, logger)
	meetingService := meeting.NewService(gateway, meetingRepo, userRepo, opts, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	var resolver httpmw.TokenResolver = authService
	if cfg.Server.TokenCacheTTL > 0 {
		cached := httpmw.NewCachedResolver(authService, cfg.Server.TokenCacheTTL)
		defer cached.Close()
		resolver = cached
	}
	router := handler.NewRouter(cfg, providers, resolver,
		handler.NewAuth(authService, taskService, logger),
		handler.NewMeeting(meetingService, logger),
		handler.NewTask(taskService, logger),
	)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}

func newLogger(environment string) (*zap.Logger, error) {
	if environment == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
