package main

import (
	"flag"
	"log"

	"github.com/johnquangdev/meeting-analyzer/internal/infrastructure/database"
	"github.com/johnquangdev/meeting-analyzer/pkg/config"
)

func main() {
	down := flag.Bool("down", false, "roll back instead of applying")
	steps := flag.Int("steps", 1, "migrations to roll back with -down (0 = all)")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.NewDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	if *down {
		log.Printf("🔄 Rolling back %d migration(s)...", *steps)
		n, err := database.Rollback(db, cfg.Database.Driver, *steps)
		if err != nil {
			log.Fatalf("Failed to roll back migrations: %v", err)
		}
		log.Printf("✅ Rolled back %d migration(s)", n)
		return
	}

	log.Println("🔄 Applying migrations...")
	n, err := database.Migrate(db, cfg.Database.Driver)
	if err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}
	log.Printf("✅ Successfully applied %d migration(s)!", n)
}
