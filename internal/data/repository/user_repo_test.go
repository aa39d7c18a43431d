package repository

import (
	"context"
	"testing"
	"time"

	"movie-catalog/internal/data/entity"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var userRowColumns = []string{"id", "username", "email", "password", "created_at", "updated_at"}

func newUserRepo(t *testing.T) (UserRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return NewUserRepository(mock, zap.NewNop()), mock
}

func TestUserRepositoryCreate(t *testing.T) {
	repo, mock := newUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("alice", "alice@example.com", "$2a$10$hash",
			pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(5)))

	now := time.Now()
	user := &entity.User{
		Base:         entity.Base{CreatedAt: now, UpdatedAt: now},
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$hash",
	}

	require.NoError(t, repo.Create(context.Background(), user))
	assert.Equal(t, int64(5), user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryCreateDuplicateEmail(t *testing.T) {
	repo, mock := newUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("alice", "alice@example.com", "",
			pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	user := &entity.User{Username: "alice", Email: "alice@example.com"}

	err := repo.Create(context.Background(), user)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email already registered")
}

func TestUserRepositoryCreateDuplicateUsername(t *testing.T) {
	repo, mock := newUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("alice", "alice@example.com", "",
			pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})

	user := &entity.User{Username: "alice", Email: "alice@example.com"}

	err := repo.Create(context.Background(), user)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "username already taken")
}

func TestUserRepositoryFindByEmailMissing(t *testing.T) {
	repo, mock := newUserRepo(t)

	mock.ExpectQuery("SELECT(.|\n)*FROM users").
		WithArgs("ghost@example.com").
		WillReturnRows(pgxmock.NewRows(userRowColumns))

	user, err := repo.FindByEmail(context.Background(), "ghost@example.com")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserRepositoryFindByID(t *testing.T) {
	repo, mock := newUserRepo(t)

	now := time.Now()
	mock.ExpectQuery("SELECT(.|\n)*FROM users").
		WithArgs(int64(5)).
		WillReturnRows(pgxmock.NewRows(userRowColumns).
			AddRow(int64(5), "alice", "alice@example.com", "$2a$10$hash", now, now))

	user, err := repo.FindByID(context.Background(), 5)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "alice", user.Username)
}

func TestUserRepositoryDelete(t *testing.T) {
	repo, mock := newUserRepo(t)

	mock.ExpectExec("DELETE FROM users").
		WithArgs(int64(5)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	require.NoError(t, repo.Delete(context.Background(), 5))
	assert.NoError(t, mock.ExpectationsWereMet())
}
