package auth_test

import (
	"context"
	"testing"

	"file-gateway/core/database"
	"file-gateway/feature/auth"

	"github.com/stretchr/testify/assert"
)

func newTestService(t *testing.T) *auth.Service {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	assert.NoError(t, err)

	svc, err := auth.NewService(db)
	assert.NoError(t, err)
	return svc
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc := newTestService(t)
		assert.NoError(t, svc.Register(ctx, "alice", "s3cret"))
	})

	t.Run("DuplicateUsername", func(t *testing.T) {
		svc := newTestService(t)
		assert.NoError(t, svc.Register(ctx, "alice", "s3cret"))
		assert.ErrorIs(t, svc.Register(ctx, "alice", "other"), auth.ErrUsernameTaken)
	})

	t.Run("BlankInput", func(t *testing.T) {
		svc := newTestService(t)
		assert.ErrorIs(t, svc.Register(ctx, "  ", "pw"), auth.ErrBadCredentialsInput)
		assert.ErrorIs(t, svc.Register(ctx, "bob", ""), auth.ErrBadCredentialsInput)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc := newTestService(t)
		assert.NoError(t, svc.Register(ctx, "alice", "s3cret"))
		assert.NoError(t, svc.Login(ctx, "alice", "s3cret"))
	})

	t.Run("WrongPassword", func(t *testing.T) {
		svc := newTestService(t)
		assert.NoError(t, svc.Register(ctx, "alice", "s3cret"))
		assert.ErrorIs(t, svc.Login(ctx, "alice", "nope"), auth.ErrInvalidCredentials)
	})

	t.Run("UnknownUser", func(t *testing.T) {
		svc := newTestService(t)
		assert.ErrorIs(t, svc.Login(ctx, "ghost", "pw"), auth.ErrInvalidCredentials)
	})
}
