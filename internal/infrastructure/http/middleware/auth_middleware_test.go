package middleware

import (
	"context"
	stdErrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-analyzer/errors"
	"github.com/johnquangdev/meeting-analyzer/internal/domain/entities"
	usecaseerrors "github.com/johnquangdev/meeting-analyzer/internal/usecase/errors"
)

type mapResolver map[string]*entities.User

func (m mapResolver) Resolve(_ context.Context, token string) (*entities.User, error) {
	if u, ok := m[token]; ok {
		return u, nil
	}
	return nil, usecaseerrors.ErrUnauthenticated
}

var resolver = mapResolver{"priya": {ID: 1, Username: "priya"}}

func run(t *testing.T, mw echo.MiddlewareFunc, header string) (*entities.User, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	var seen *entities.User
	err := mw(func(c echo.Context) error {
		seen, _ = GetUser(c)
		return nil
	})(c)
	return seen, err
}

func appCode(t *testing.T, err error) errors.ErrorCode {
	t.Helper()
	var appErr errors.AppError
	require.True(t, stdErrors.As(err, &appErr))
	return appErr.Code
}

func TestEchoAuth(t *testing.T) {
	mw := EchoAuth(resolver)

	user, err := run(t, mw, "Bearer priya")
	require.NoError(t, err)
	assert.Equal(t, "priya", user.Username)

	_, err = run(t, mw, "")
	assert.Equal(t, errors.ErrorCode_UNAUTHENTICATED, appCode(t, err))

	_, err = run(t, mw, "Bearer nobody")
	assert.Equal(t, errors.ErrorCode_AUTH_INVALID_TOKEN, appCode(t, err))

	_, err = run(t, mw, "Basic cHJpeWE6cGFzcw==")
	assert.Equal(t, errors.ErrorCode_UNAUTHENTICATED, appCode(t, err))
}

func TestEchoOptionalAuth(t *testing.T) {
	mw := EchoOptionalAuth(resolver)

	user, err := run(t, mw, "")
	require.NoError(t, err)
	assert.Nil(t, user)

	user, err = run(t, mw, "bearer priya")
	require.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)

	_, err = run(t, mw, "Bearer nobody")
	assert.Equal(t, errors.ErrorCode_AUTH_INVALID_TOKEN, appCode(t, err))
}
