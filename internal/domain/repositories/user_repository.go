package repositories

import (
	"context"

	"github.com/johnquangdev/meeting-analyzer/internal/domain/entities"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *entities.User) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uint) (*entities.User, error)

	// FindByUsername finds a user whose username equals the value exactly
	FindByUsername(ctx context.Context, username string) (*entities.User, error)

	// FindByUsernameFold finds a user by username, ignoring case
	FindByUsernameFold(ctx context.Context, username string) (*entities.User, error)

	// List returns all users ordered by ID
	List(ctx context.Context) ([]*entities.User, error)
}
