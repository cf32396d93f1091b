package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-analyzer/internal/adapter/repository"
	"github.com/johnquangdev/meeting-analyzer/internal/infrastructure/database"
	"github.com/johnquangdev/meeting-analyzer/internal/usecase/auth"
	"github.com/johnquangdev/meeting-analyzer/pkg/config"
)

func main() {
	log.Println("🚀 Seeding demo users...")

	// Load configuration from .env
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Println("📦 Connecting to database...")
	db, err := database.NewDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	if _, err := database.Migrate(db, cfg.Database.Driver); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	svc := auth.NewService(repository.NewUserRepository(db), logger)
	n, err := svc.EnsureUsers(context.Background(), auth.DefaultUsers)
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}

	log.Printf("✅ Created %d user(s), %d already existed", n, len(auth.DefaultUsers)-n)
	for _, u := range auth.DefaultUsers {
		log.Printf("   %-8s password=%s", u.Username, u.Password)
	}
}
