package auth

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-analyzer/internal/domain/entities"
	"github.com/johnquangdev/meeting-analyzer/internal/domain/repositories"
	usecaseerrors "github.com/johnquangdev/meeting-analyzer/internal/usecase/errors"
)

// TokenType is the token_type reported by the login endpoint
const TokenType = "bearer"

// Service is the placeholder identity scheme: the bearer token is the
// username and passwords are compared in plain text. It offers no security.
type Service struct {
	userRepo repositories.UserRepository
	logger   *zap.Logger
}

// NewService creates a new identity service
func NewService(userRepo repositories.UserRepository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		userRepo: userRepo,
		logger:   logger,
	}
}

// LoginResponse represents the token issued at login
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login looks the username up case-insensitively and compares the password
// exactly. The token is the stored username.
func (s *Service) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	user, err := s.userRepo.FindByUsernameFold(ctx, username)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return nil, usecaseerrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !user.PasswordMatches(password) {
		s.logger.Info("Login rejected", zap.String("username", user.Username))
		return nil, usecaseerrors.ErrInvalidCredentials
	}

	return &LoginResponse{
		AccessToken: user.Username,
		TokenType:   TokenType,
	}, nil
}

// Resolve returns the user whose username equals the token verbatim
func (s *Service) Resolve(ctx context.Context, token string) (*entities.User, error) {
	if token == "" {
		return nil, usecaseerrors.ErrUnauthenticated
	}

	user, err := s.userRepo.FindByUsername(ctx, token)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return nil, usecaseerrors.ErrUnauthenticated
		}
		return nil, fmt.Errorf("failed to resolve token: %w", err)
	}
	return user, nil
}

// Credentials is a username and plain-text password pair
type Credentials struct {
	Username string
	Password string
}

// DefaultUsers are the demo accounts created by the seed command
var DefaultUsers = []Credentials{
	{Username: "priya", Password: "pass123"},
	{Username: "raghav", Password: "pass456"},
	{Username: "anjali", Password: "pass789"},
	{Username: "arjun", Password: "pass101"},
	{Username: "meena", Password: "pass112"},
}

// EnsureUsers creates the users that do not exist yet and returns how many
// were created. Existing users are left untouched.
func (s *Service) EnsureUsers(ctx context.Context, users []Credentials) (int, error) {
	created := 0
	for _, cred := range users {
		_, err := s.userRepo.FindByUsername(ctx, cred.Username)
		if err == nil {
			continue
		}
		if !errors.Is(err, entities.ErrUserNotFound) {
			return created, fmt.Errorf("failed to look up user %s: %w", cred.Username, err)
		}

		if err := s.userRepo.Create(ctx, entities.NewUser(cred.Username, cred.Password)); err != nil {
			return created, err
		}
		created++
		s.logger.Info("User created", zap.String("username", cred.Username))
	}
	return created, nil
}
