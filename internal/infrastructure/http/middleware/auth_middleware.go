package middleware

import (
	"context"
	stdErrors "errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/meeting-analyzer/errors"
	"github.com/johnquangdev/meeting-analyzer/internal/domain/entities"
	usecaseerrors "github.com/johnquangdev/meeting-analyzer/internal/usecase/errors"
)

const (
	// UserContextKey is the echo context key for the authenticated user
	UserContextKey = "user"
	// UserIDContextKey is the echo context key for the authenticated user's ID
	UserIDContextKey = "user_id"
)

// TokenResolver maps a bearer token to a user
type TokenResolver interface {
	Resolve(ctx context.Context, token string) (*entities.User, error)
}

// EchoAuth requires a bearer token and sets "user" and "user_id" in the echo
// context
func EchoAuth(resolver TokenResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := ExtractToken(c)
			if token == "" {
				return errors.ErrUnauthenticated()
			}
			if err := authenticate(c, resolver, token); err != nil {
				return err
			}
			return next(c)
		}
	}
}

// EchoOptionalAuth resolves a bearer token when one is sent. A token that
// does not resolve is still rejected.
func EchoOptionalAuth(resolver TokenResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := ExtractToken(c)
			if token != "" {
				if err := authenticate(c, resolver, token); err != nil {
					return err
				}
			}
			return next(c)
		}
	}
}

func authenticate(c echo.Context, resolver TokenResolver, token string) error {
	user, err := resolver.Resolve(c.Request().Context(), token)
	if err != nil {
		if stdErrors.Is(err, usecaseerrors.ErrUnauthenticated) {
			return errors.ErrInvalidToken()
		}
		return errors.ErrInternal(err)
	}
	c.Set(UserContextKey, user)
	c.Set(UserIDContextKey, user.ID)
	return nil
}

// GetUser returns the authenticated user, if any
func GetUser(c echo.Context) (*entities.User, bool) {
	user, ok := c.Get(UserContextKey).(*entities.User)
	return user, ok && user != nil
}

// ExtractToken reads the bearer token from the Authorization header, falling
// back to the access_token cookie
func ExtractToken(c echo.Context) string {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return strings.TrimSpace(parts[1])
		}
	}

	if cookie, err := c.Cookie("access_token"); err == nil {
		return cookie.Value
	}
	return ""
}
