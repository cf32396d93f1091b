package database

import (
	"embed"
	"fmt"
	"log"
	"time"

	"github.com/glebarez/sqlite"
	migrate "github.com/rubenv/sql-migrate"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/johnquangdev/meeting-analyzer/pkg/config"
)

//go:embed migrations
var migrationFiles embed.FS

// migrationDialects maps our driver names onto sql-migrate dialects
var migrationDialects = map[string]string{
	config.DriverSQLite:   "sqlite3",
	config.DriverPostgres: "postgres",
}

// NewDB opens the configured database using GORM
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := Open(cfg.Database.Driver, cfg.GetDatabaseDSN(), cfg.Server.Environment)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// Connection pool settings
	if cfg.Database.Driver == config.DriverPostgres {
		sqlDB.SetMaxOpenConns(cfg.Database.MaxConns)
		sqlDB.SetMaxIdleConns(cfg.Database.MinConns)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	log.Printf("✅ Database connected (%s)", cfg.Database.Driver)

	return db, nil
}

// Open creates a GORM connection for the given driver and DSN and pings it
func Open(driver, dsn, environment string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case config.DriverPostgres:
		dialector = postgres.Open(dsn)
	case config.DriverSQLite:
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	// Configure GORM logger
	gormLogger := logger.Default.LogMode(logger.Info)
	switch environment {
	case "production":
		gormLogger = logger.Default.LogMode(logger.Error)
	case "test":
		gormLogger = logger.Default.LogMode(logger.Silent)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormLogger,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// SQLite allows a single writer; one connection keeps transactions from
	// tripping over each other.
	if driver == config.DriverSQLite {
		sqlDB.SetMaxOpenConns(1)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// Migrate applies the embedded migrations for the driver and returns how many
// ran. Already-applied migrations are skipped, so it is safe on every start.
func Migrate(db *gorm.DB, driver string) (int, error) {
	return exec(db, driver, migrate.Up, 0)
}

// Rollback reverts up to max applied migrations (0 reverts all)
func Rollback(db *gorm.DB, driver string, max int) (int, error) {
	return exec(db, driver, migrate.Down, max)
}

func exec(db *gorm.DB, driver string, dir migrate.MigrationDirection, max int) (int, error) {
	dialect, ok := migrationDialects[driver]
	if !ok {
		return 0, fmt.Errorf("unsupported database driver %q", driver)
	}

	migrations := &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrationFiles,
		Root:       "migrations/" + driver,
	}

	sqlDB, err := db.DB()
	if err != nil {
		return 0, fmt.Errorf("failed to get db connection during migrate, error: %v", err)
	}

	n, err := migrate.ExecMax(sqlDB, dialect, migrations, dir, max)
	if err != nil {
		return 0, fmt.Errorf("failed to apply migration, error: %v", err)
	}

	return n, nil
}

// CloseDB closes the database connection
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	log.Println("✅ Database connection closed")
	return nil
}
