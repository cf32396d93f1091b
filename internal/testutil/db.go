package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-analyzer/internal/domain/entities"
	"github.com/johnquangdev/meeting-analyzer/internal/infrastructure/database"
	"github.com/johnquangdev/meeting-analyzer/pkg/config"
)

// NewSQLiteDB opens a migrated SQLite database inside the test's temp dir
func NewSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "agent.db") + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	db, err := database.Open(config.DriverSQLite, dsn, "test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.CloseDB(db) })

	_, err = database.Migrate(db, config.DriverSQLite)
	require.NoError(t, err)

	return db
}

// SeedUsers inserts users with a shared password and returns them by username
func SeedUsers(t *testing.T, db *gorm.DB, usernames ...string) map[string]*entities.User {
	t.Helper()

	users := make(map[string]*entities.User, len(usernames))
	for _, name := range usernames {
		u := entities.NewUser(name, "secret")
		require.NoError(t, db.WithContext(context.Background()).Create(u).Error)
		users[name] = u
	}
	return users
}
