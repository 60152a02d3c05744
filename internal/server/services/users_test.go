package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apetrenko/contentgen/internal/api"
	"github.com/apetrenko/contentgen/internal/common"
)

func newUserService(repo *fakeUserRepo) *UserService {
	return NewUserService(repo, []byte("test-secret"), time.Hour, testLogger())
}

func TestRegister(t *testing.T) {
	repo := newFakeUserRepo()
	s := newUserService(repo)

	resp, err := s.Register(context.Background(), &api.RegisterRequest{
		Username: "alice", Email: "alice@example.com", Password: "secret1",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, "alice", resp.User.Username)
	assert.True(t, resp.User.IsActive)
	assert.False(t, resp.User.IsAdmin)
}

func TestRegisterValidation(t *testing.T) {
	s := newUserService(newFakeUserRepo())

	tests := []struct {
		name string
		req  api.RegisterRequest
	}{
		{"short username", api.RegisterRequest{Username: "ab", Email: "a@b.com", Password: "secret1"}},
		{"bad email", api.RegisterRequest{Username: "alice", Email: "nope", Password: "secret1"}},
		{"short password", api.RegisterRequest{Username: "alice", Email: "a@b.com", Password: "12345"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Register(context.Background(), &tt.req)
			assert.ErrorIs(t, err, common.ErrValidation)
		})
	}
}

func TestRegisterDuplicate(t *testing.T) {
	s := newUserService(newFakeUserRepo())
	req := &api.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "secret1"}

	_, err := s.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = s.Register(context.Background(), req)
	assert.ErrorIs(t, err, common.ErrConflict)
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepo()
	s := newUserService(repo)

	_, err := s.Register(context.Background(), &api.RegisterRequest{
		Username: "alice", Email: "alice@example.com", Password: "secret1",
	})
	require.NoError(t, err)

	t.Run("ok", func(t *testing.T) {
		resp, err := s.Login(context.Background(), &api.LoginRequest{Username: "alice", Password: "secret1"})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := s.Login(context.Background(), &api.LoginRequest{Username: "alice", Password: "wrong"})
		assert.ErrorIs(t, err, common.ErrUnauthorized)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := s.Login(context.Background(), &api.LoginRequest{Username: "bob", Password: "secret1"})
		assert.ErrorIs(t, err, common.ErrUnauthorized)
	})

	t.Run("disabled account", func(t *testing.T) {
		u, err := repo.GetByUsername(context.Background(), "alice")
		require.NoError(t, err)
		u.IsActive = false
		defer func() { u.IsActive = true }()

		_, err = s.Login(context.Background(), &api.LoginRequest{Username: "alice", Password: "secret1"})
		assert.ErrorIs(t, err, common.ErrForbidden)
	})
}

func TestGetByID(t *testing.T) {
	repo := newFakeUserRepo()
	s := newUserService(repo)

	resp, err := s.Register(context.Background(), &api.RegisterRequest{
		Username: "alice", Email: "alice@example.com", Password: "secret1",
	})
	require.NoError(t, err)

	u, err := s.GetByID(context.Background(), resp.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)

	_, err = s.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, common.ErrNotFound)
}
