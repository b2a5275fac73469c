package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"microblog_backend/internal/feature/auth/domain/entity"
	"microblog_backend/internal/feature/auth/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.User{}, &SessionModel{})
	require.NoError(t, err, "failed to migrate tables")

	return db
}

func TestUserGorm_Create(t *testing.T) {
	t.Run("successful user creation", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)

		user := &entity.User{
			Username:     "alice",
			PasswordHash: "hashed_password",
		}

		err := repo.Create(context.Background(), user)

		assert.NoError(t, err)
		assert.NotZero(t, user.ID, "ID is not set")
		assert.False(t, user.CreatedAt.IsZero(), "CreatedAt is not set")
	})

	t.Run("duplicate username returns the typed error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)

		err := repo.Create(context.Background(), &entity.User{Username: "alice", PasswordHash: "h1"})
		require.NoError(t, err)

		err = repo.Create(context.Background(), &entity.User{Username: "alice", PasswordHash: "h2"})

		assert.ErrorIs(t, err, usecase.ErrUsernameTaken)
	})
}

func TestUserGorm_FindByUsername(t *testing.T) {
	t.Run("existing user", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)

		created := &entity.User{Username: "alice", PasswordHash: "hash"}
		require.NoError(t, repo.Create(context.Background(), created))

		found, err := repo.FindByUsername(context.Background(), "alice")

		require.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)
		assert.Equal(t, "hash", found.PasswordHash)
	})

	t.Run("missing user", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)

		_, err := repo.FindByUsername(context.Background(), "nobody")

		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}

func TestUserGorm_FindByID(t *testing.T) {
	t.Run("existing user", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)

		created := &entity.User{Username: "alice", PasswordHash: "hash"}
		require.NoError(t, repo.Create(context.Background(), created))

		found, err := repo.FindByID(context.Background(), created.ID)

		require.NoError(t, err)
		assert.Equal(t, "alice", found.Username)
	})

	t.Run("missing user", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)

		_, err := repo.FindByID(context.Background(), 42)

		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}
