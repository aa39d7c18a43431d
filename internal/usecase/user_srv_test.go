package usecase

import (
	"context"
	"testing"

	"movie-catalog/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetProfile(t *testing.T) {
	userRepo := newUserRepoStub(&entity.User{
		Base: entity.Base{ID: 1}, Username: "alice", Email: "alice@example.com",
	})
	svc := NewUserService(userRepo, zap.NewNop())

	profile, err := svc.GetProfile(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), profile.ID)
	assert.Equal(t, "alice", profile.Username)
	assert.Equal(t, "alice@example.com", profile.Email)
}

func TestGetProfileNotFound(t *testing.T) {
	svc := NewUserService(newUserRepoStub(), zap.NewNop())

	_, err := svc.GetProfile(context.Background(), 404)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestDeleteAccount(t *testing.T) {
	userRepo := newUserRepoStub(&entity.User{
		Base: entity.Base{ID: 1}, Username: "alice",
	})
	svc := NewUserService(userRepo, zap.NewNop())

	require.NoError(t, svc.DeleteAccount(context.Background(), 1))
	assert.Empty(t, userRepo.users)
}

func TestDeleteAccountNotFound(t *testing.T) {
	svc := NewUserService(newUserRepoStub(), zap.NewNop())

	err := svc.DeleteAccount(context.Background(), 404)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
