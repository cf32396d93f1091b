package middleware

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-analyzer/internal/domain/entities"
	usecaseerrors "github.com/johnquangdev/meeting-analyzer/internal/usecase/errors"
)

type countingResolver struct {
	calls int
	users map[string]*entities.User
}

func (r *countingResolver) Resolve(_ context.Context, token string) (*entities.User, error) {
	r.calls++
	if u, ok := r.users[token]; ok {
		return u, nil
	}
	return nil, usecaseerrors.ErrUnauthenticated
}

func TestCachedResolver(t *testing.T) {
	inner := &countingResolver{users: map[string]*entities.User{
		"priya": {ID: 1, Username: "priya"},
	}}
	r := NewCachedResolver(inner, time.Minute)
	defer r.Close()

	for i := 0; i < 3; i++ {
		u, err := r.Resolve(context.Background(), "priya")
		require.NoError(t, err)
		assert.Equal(t, uint(1), u.ID)
	}
	assert.Equal(t, 1, inner.calls)

	for i := 0; i < 2; i++ {
		_, err := r.Resolve(context.Background(), "ghost")
		assert.ErrorIs(t, err, usecaseerrors.ErrUnauthenticated)
	}
	assert.Equal(t, 3, inner.calls)
}
